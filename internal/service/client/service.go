package client

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cema-health/records-api/internal/model"
	"github.com/cema-health/records-api/internal/repository"
	"github.com/cema-health/records-api/internal/service/event"
	apperrors "github.com/cema-health/records-api/pkg/errors"
)

type ClientService interface {
	// Register creates a patient record attributed to the authenticated
	// doctor; the creator is never client-supplied.
	Register(ctx context.Context, doctorID uuid.UUID, req *model.RegisterClientRequest) (*model.Client, error)
	List(ctx context.Context) ([]*model.ClientSummary, error)
	Search(ctx context.Context, query string) ([]*model.ClientSummary, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*model.ClientProfile, error)
}

type Service struct {
	repo   repository.ClientRepository
	events *event.Service
}

func NewService(repo repository.ClientRepository, events *event.Service) *Service {
	return &Service{repo: repo, events: events}
}

func (s *Service) Register(ctx context.Context, doctorID uuid.UUID, req *model.RegisterClientRequest) (*model.Client, error) {
	if req.FirstName == "" || req.LastName == "" {
		return nil, apperrors.Validation("first_name and last_name required")
	}

	var dob *time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse(model.DateOfBirthFormat, req.DateOfBirth)
		if err != nil {
			return nil, apperrors.Validation("invalid date_of_birth format")
		}
		dob = &parsed
	}

	client := &model.Client{
		ID:           uuid.New(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DateOfBirth:  dob,
		RegisteredAt: time.Now().UTC(),
		CreatedByID:  doctorID,
	}
	if req.Gender != "" {
		client.Gender = &req.Gender
	}
	if req.ContactInfo != "" {
		client.ContactInfo = &req.ContactInfo
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}

	s.events.Emit(ctx, model.EventClientRegistered, client)

	return client, nil
}

func (s *Service) List(ctx context.Context) ([]*model.ClientSummary, error) {
	return s.repo.List(ctx)
}

func (s *Service) Search(ctx context.Context, query string) ([]*model.ClientSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.Validation("query parameter 'q' is required")
	}
	return s.repo.Search(ctx, query)
}

func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (*model.ClientProfile, error) {
	return s.repo.GetProfile(ctx, id)
}
