package program

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cema-health/records-api/internal/model"
	"github.com/cema-health/records-api/internal/repository"
	"github.com/cema-health/records-api/internal/service/event"
	apperrors "github.com/cema-health/records-api/pkg/errors"
)

type ProgramService interface {
	Create(ctx context.Context, doctorID uuid.UUID, req *model.CreateProgramRequest) (*model.HealthProgram, error)
	List(ctx context.Context) ([]*model.HealthProgram, error)
}

type Service struct {
	repo   repository.ProgramRepository
	events *event.Service
}

func NewService(repo repository.ProgramRepository, events *event.Service) *Service {
	return &Service{repo: repo, events: events}
}

func (s *Service) Create(ctx context.Context, doctorID uuid.UUID, req *model.CreateProgramRequest) (*model.HealthProgram, error) {
	if req.Name == "" {
		return nil, apperrors.Validation("program name is required")
	}

	program := &model.HealthProgram{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
		CreatedByID: doctorID,
	}

	// A duplicate name surfaces from the storage unique constraint as a
	// conflict; nothing partial persists.
	if err := s.repo.Create(ctx, program); err != nil {
		return nil, err
	}

	s.events.Emit(ctx, model.EventProgramCreated, program)

	return program, nil
}

func (s *Service) List(ctx context.Context) ([]*model.HealthProgram, error) {
	return s.repo.List(ctx)
}
