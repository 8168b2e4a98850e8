package enrollment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cema-health/records-api/internal/model"
	"github.com/cema-health/records-api/internal/repository"
	"github.com/cema-health/records-api/internal/service/event"
)

type EnrollmentService interface {
	// Enroll enrolls the client into the requested programs. Unknown program
	// ids are silently dropped, duplicates (in the request or against prior
	// enrollments) are skipped, and only the newly created enrollments are
	// returned. An unknown client fails the whole call with not found.
	Enroll(ctx context.Context, clientID uuid.UUID, programIDs []uuid.UUID) ([]*model.Enrollment, error)
}

type Service struct {
	enrollments repository.EnrollmentRepository
	clients     repository.ClientRepository
	programs    repository.ProgramRepository
	events      *event.Service
}

func NewService(
	enrollments repository.EnrollmentRepository,
	clients repository.ClientRepository,
	programs repository.ProgramRepository,
	events *event.Service,
) *Service {
	return &Service{
		enrollments: enrollments,
		clients:     clients,
		programs:    programs,
		events:      events,
	}
}

func (s *Service) Enroll(ctx context.Context, clientID uuid.UUID, programIDs []uuid.UUID) ([]*model.Enrollment, error) {
	// The client is resolved once up front; its absence is an error for the
	// whole call, unlike unknown program ids below.
	client, err := s.clients.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}

	// Dedupe the request while keeping order; callers may repeat ids.
	seen := make(map[uuid.UUID]bool, len(programIDs))
	unique := make([]uuid.UUID, 0, len(programIDs))
	for _, id := range programIDs {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	// Ids that resolve to no program are dropped without any signal back to
	// the caller. Best effort, not a validation failure.
	programs, err := s.programs.GetByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	known := make(map[uuid.UUID]bool, len(programs))
	for _, p := range programs {
		known[p.ID] = true
	}

	now := time.Now().UTC()
	staged := make([]*model.Enrollment, 0, len(unique))
	for _, id := range unique {
		if !known[id] {
			continue
		}
		staged = append(staged, &model.Enrollment{
			ID:         uuid.New(),
			ClientID:   client.ID,
			ProgramID:  id,
			EnrolledAt: now,
			Status:     model.EnrollmentStatusActive,
		})
	}

	// One transaction for the whole batch; pairs already enrolled fall out
	// on the storage unique constraint and are not returned.
	created, err := s.enrollments.CreateBatch(ctx, staged)
	if err != nil {
		return nil, err
	}

	for _, e := range created {
		s.events.Emit(ctx, model.EventClientEnrolled, e)
	}

	return created, nil
}
