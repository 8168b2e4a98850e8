package doctor

import (
	"context"
	"fmt"

	validation "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/cema-health/records-api/internal/email"
	"github.com/cema-health/records-api/internal/model"
	"github.com/cema-health/records-api/internal/repository"
	"github.com/cema-health/records-api/internal/service/event"
	apperrors "github.com/cema-health/records-api/pkg/errors"
	"github.com/cema-health/records-api/pkg/logger"
	"github.com/cema-health/records-api/pkg/token"
)

// DoctorService provisions clinician accounts and their credentials.
type DoctorService interface {
	// Provision creates the doctor, rotates its credentials so exactly one
	// key is active, and mails the plaintext key. Create-only: an existing
	// email fails as a conflict before any credential work.
	Provision(ctx context.Context, req *model.ProvisionDoctorRequest) (*model.Doctor, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
}

type Service struct {
	doctors  repository.DoctorRepository
	keys     repository.APIKeyRepository
	tokens   token.Generator
	emailSvc email.Service
	events   *event.Service
	logger   *logger.Logger
}

var validate = validation.New()

func NewService(
	doctors repository.DoctorRepository,
	keys repository.APIKeyRepository,
	tokens token.Generator,
	emailSvc email.Service,
	events *event.Service,
	logger *logger.Logger,
) *Service {
	return &Service{
		doctors:  doctors,
		keys:     keys,
		tokens:   tokens,
		emailSvc: emailSvc,
		events:   events,
		logger:   logger,
	}
}

func (s *Service) Provision(ctx context.Context, req *model.ProvisionDoctorRequest) (*model.Doctor, error) {
	if req.Name == "" {
		return nil, apperrors.Validation("name is required")
	}
	if err := validate.Var(req.Email, "required,email"); err != nil {
		return nil, apperrors.Validation("a valid email is required")
	}

	doctor := &model.Doctor{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		IsAdmin: req.IsAdmin,
	}

	if err := s.doctors.Create(ctx, doctor); err != nil {
		return nil, err
	}

	key, err := s.tokens.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate api key: %w", err)
	}

	// Deactivation of prior keys and issuance of the new one run in one
	// transaction inside Rotate, so the doctor ends up with exactly one
	// active key even under concurrent provisioning.
	if _, err := s.keys.Rotate(ctx, doctor.ID, key); err != nil {
		return nil, fmt.Errorf("failed to rotate api keys: %w", err)
	}

	// Delivery failure never rolls back the doctor or the key.
	go func() {
		if err := s.emailSvc.SendAPIKey(context.Background(), doctor.Name, doctor.Email, key); err != nil {
			s.logger.Error(err, "failed to email api key", "doctor_id", doctor.ID.String())
		}
	}()

	s.events.Emit(ctx, model.EventDoctorProvisioned, doctor)

	return doctor, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	return s.doctors.Get(ctx, id)
}
