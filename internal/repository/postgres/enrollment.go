package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cema-health/records-api/internal/model"
	"github.com/cema-health/records-api/internal/repository"
)

type enrollmentRepository struct {
	BaseRepository
}

func NewEnrollmentRepository(db *sqlx.DB) repository.EnrollmentRepository {
	return &enrollmentRepository{NewBaseRepository(db)}
}

// CreateBatch inserts the staged enrollments in one transaction. The unique
// constraint on (client_id, program_id) absorbs concurrent duplicates:
// ON CONFLICT DO NOTHING makes a lost race equivalent to "already enrolled",
// and only rows that actually inserted are returned.
func (r *enrollmentRepository) CreateBatch(ctx context.Context, enrollments []*model.Enrollment) ([]*model.Enrollment, error) {
	if len(enrollments) == 0 {
		return nil, nil
	}

	created := []*model.Enrollment{}
	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO enrollments (id, client_id, program_id, enrolled_at, status)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (client_id, program_id) DO NOTHING
			RETURNING id
		`
		for _, e := range enrollments {
			var id uuid.UUID
			err := tx.GetContext(ctx, &id, query, e.ID, e.ClientID, e.ProgramID, e.EnrolledAt, e.Status)
			if err != nil {
				if IsNoRows(err) {
					// Conflict target hit: the pair exists already.
					continue
				}
				return fmt.Errorf("failed to insert enrollment: %w", err)
			}
			created = append(created, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *enrollmentRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*model.Enrollment, error) {
	query := `
		SELECT id, client_id, program_id, enrolled_at, status
		FROM enrollments
		WHERE client_id = $1
		ORDER BY enrolled_at
	`

	enrollments := []*model.Enrollment{}
	if err := r.GetDB().SelectContext(ctx, &enrollments, query, clientID); err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return enrollments, nil
}
