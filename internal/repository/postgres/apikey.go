package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cema-health/records-api/internal/model"
	"github.com/cema-health/records-api/internal/repository"
)

type apiKeyRepository struct {
	BaseRepository
}

func NewAPIKeyRepository(db *sqlx.DB) repository.APIKeyRepository {
	return &apiKeyRepository{NewBaseRepository(db)}
}

func (r *apiKeyRepository) Lookup(ctx context.Context, key string) (*model.APIKey, error) {
	query := `
		SELECT id, key, doctor_id, created_at, is_active
		FROM api_keys
		WHERE key = $1
	`

	var apiKey model.APIKey
	if err := r.GetDB().GetContext(ctx, &apiKey, query, key); err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up api key: %w", err)
	}
	return &apiKey, nil
}

// Rotate runs deactivation and issuance as one transaction so two concurrent
// provisioning calls cannot leave a doctor with more than one active key.
func (r *apiKeyRepository) Rotate(ctx context.Context, doctorID uuid.UUID, key string) (*model.APIKey, error) {
	apiKey := &model.APIKey{
		ID:        uuid.New(),
		Key:       key,
		DoctorID:  doctorID,
		CreatedAt: time.Now().UTC(),
		IsActive:  true,
	}

	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		deactivate := `
			UPDATE api_keys SET is_active = FALSE
			WHERE doctor_id = $1 AND is_active = TRUE
		`
		if _, err := tx.ExecContext(ctx, deactivate, doctorID); err != nil {
			return fmt.Errorf("failed to deactivate previous keys: %w", err)
		}

		insert := `
			INSERT INTO api_keys (id, key, doctor_id, created_at, is_active)
			VALUES ($1, $2, $3, $4, $5)
		`
		if _, err := tx.ExecContext(ctx, insert,
			apiKey.ID, apiKey.Key, apiKey.DoctorID, apiKey.CreatedAt, apiKey.IsActive,
		); err != nil {
			return fmt.Errorf("failed to insert api key: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return apiKey, nil
}

func (r *apiKeyRepository) DeactivateAll(ctx context.Context, doctorID uuid.UUID) error {
	query := `
		UPDATE api_keys SET is_active = FALSE
		WHERE doctor_id = $1 AND is_active = TRUE
	`
	if _, err := r.GetDB().ExecContext(ctx, query, doctorID); err != nil {
		return fmt.Errorf("failed to deactivate api keys: %w", err)
	}
	return nil
}

func (r *apiKeyRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.APIKey, error) {
	query := `
		SELECT id, key, doctor_id, created_at, is_active
		FROM api_keys
		WHERE doctor_id = $1
		ORDER BY created_at DESC
	`

	var keys []*model.APIKey
	if err := r.GetDB().SelectContext(ctx, &keys, query, doctorID); err != nil {
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}
	return keys, nil
}
