package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cema-health/records-api/internal/model"
	"github.com/cema-health/records-api/internal/repository"
	apperrors "github.com/cema-health/records-api/pkg/errors"
)

type doctorRepository struct {
	BaseRepository
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{NewBaseRepository(db)}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (id, name, email, is_admin)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.GetDB().ExecContext(ctx, query,
		doctor.ID,
		doctor.Name,
		doctor.Email,
		doctor.IsAdmin,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return apperrors.Conflict("email already registered", err)
		}
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

func (r *doctorRepository) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	query := `SELECT id, name, email, is_admin FROM doctors WHERE id = $1`

	var doctor model.Doctor
	if err := r.GetDB().GetContext(ctx, &doctor, query, id); err != nil {
		if IsNoRows(err) {
			return nil, apperrors.NotFound("doctor")
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) GetByEmail(ctx context.Context, email string) (*model.Doctor, error) {
	query := `SELECT id, name, email, is_admin FROM doctors WHERE email = $1`

	var doctor model.Doctor
	if err := r.GetDB().GetContext(ctx, &doctor, query, email); err != nil {
		if IsNoRows(err) {
			return nil, apperrors.NotFound("doctor")
		}
		return nil, fmt.Errorf("failed to get doctor by email: %w", err)
	}
	return &doctor, nil
}
