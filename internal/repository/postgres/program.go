package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/cema-health/records-api/internal/model"
	"github.com/cema-health/records-api/internal/repository"
	apperrors "github.com/cema-health/records-api/pkg/errors"
)

type programRepository struct {
	BaseRepository
}

func NewProgramRepository(db *sqlx.DB) repository.ProgramRepository {
	return &programRepository{NewBaseRepository(db)}
}

func (r *programRepository) Create(ctx context.Context, program *model.HealthProgram) error {
	query := `
		INSERT INTO health_programs (id, name, description, created_at, created_by_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.GetDB().ExecContext(ctx, query,
		program.ID,
		program.Name,
		program.Description,
		program.CreatedAt,
		program.CreatedByID,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return apperrors.Conflict("program name already exists", err)
		}
		return fmt.Errorf("failed to create program: %w", err)
	}
	return nil
}

func (r *programRepository) Get(ctx context.Context, id uuid.UUID) (*model.HealthProgram, error) {
	query := `
		SELECT id, name, description, created_at, created_by_id
		FROM health_programs WHERE id = $1
	`

	var program model.HealthProgram
	if err := r.GetDB().GetContext(ctx, &program, query, id); err != nil {
		if IsNoRows(err) {
			return nil, apperrors.NotFound("program")
		}
		return nil, fmt.Errorf("failed to get program: %w", err)
	}
	return &program, nil
}

func (r *programRepository) List(ctx context.Context) ([]*model.HealthProgram, error) {
	query := `
		SELECT id, name, description, created_at, created_by_id
		FROM health_programs
		ORDER BY created_at
	`

	programs := []*model.HealthProgram{}
	if err := r.GetDB().SelectContext(ctx, &programs, query); err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	return programs, nil
}

func (r *programRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.HealthProgram, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, name, description, created_at, created_by_id
		FROM health_programs
		WHERE id = ANY($1)
	`

	programs := []*model.HealthProgram{}
	if err := r.GetDB().SelectContext(ctx, &programs, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("failed to get programs: %w", err)
	}
	return programs, nil
}
