package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cema-health/records-api/internal/model"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
	GetByEmail(ctx context.Context, email string) (*model.Doctor, error)
}

// APIKeyRepository is the credential store. Keys are flipped inactive, never
// deleted.
type APIKeyRepository interface {
	// Lookup returns the key row matching the exact key string, active or
	// not; the guard checks the active flag.
	Lookup(ctx context.Context, key string) (*model.APIKey, error)
	// Rotate deactivates every active key for the doctor and inserts a fresh
	// active one, all inside a single transaction.
	Rotate(ctx context.Context, doctorID uuid.UUID, key string) (*model.APIKey, error)
	DeactivateAll(ctx context.Context, doctorID uuid.UUID) error
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.APIKey, error)
}

type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	Get(ctx context.Context, id uuid.UUID) (*model.Client, error)
	List(ctx context.Context) ([]*model.ClientSummary, error)
	Search(ctx context.Context, query string) ([]*model.ClientSummary, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*model.ClientProfile, error)
}

type ProgramRepository interface {
	Create(ctx context.Context, program *model.HealthProgram) error
	Get(ctx context.Context, id uuid.UUID) (*model.HealthProgram, error)
	List(ctx context.Context) ([]*model.HealthProgram, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.HealthProgram, error)
}

type EnrollmentRepository interface {
	// CreateBatch persists the staged enrollments as one transaction and
	// returns only the rows actually inserted; pairs that already exist are
	// skipped via the storage unique constraint.
	CreateBatch(ctx context.Context, enrollments []*model.Enrollment) ([]*model.Enrollment, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*model.Enrollment, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *model.OutboxEvent) error
	GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
	MarkProcessed(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
}
