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

type clientRepository struct {
	BaseRepository
}

func NewClientRepository(db *sqlx.DB) repository.ClientRepository {
	return &clientRepository{NewBaseRepository(db)}
}

func (r *clientRepository) Create(ctx context.Context, client *model.Client) error {
	query := `
		INSERT INTO clients (
			id, first_name, last_name, date_of_birth, gender,
			contact_info, registered_at, created_by_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.GetDB().ExecContext(ctx, query,
		client.ID,
		client.FirstName,
		client.LastName,
		client.DateOfBirth,
		client.Gender,
		client.ContactInfo,
		client.RegisteredAt,
		client.CreatedByID,
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (r *clientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	query := `
		SELECT id, first_name, last_name, date_of_birth, gender,
		       contact_info, registered_at, created_by_id
		FROM clients WHERE id = $1
	`

	var client model.Client
	if err := r.GetDB().GetContext(ctx, &client, query, id); err != nil {
		if IsNoRows(err) {
			return nil, apperrors.NotFound("client")
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]*model.ClientSummary, error) {
	query := `
		SELECT id, first_name, last_name
		FROM clients
		ORDER BY registered_at DESC
	`

	summaries := []*model.ClientSummary{}
	if err := r.GetDB().SelectContext(ctx, &summaries, query); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return summaries, nil
}

func (r *clientRepository) Search(ctx context.Context, q string) ([]*model.ClientSummary, error) {
	query := `
		SELECT id, first_name, last_name
		FROM clients
		WHERE first_name ILIKE $1 OR last_name ILIKE $1
		ORDER BY registered_at DESC
	`

	summaries := []*model.ClientSummary{}
	if err := r.GetDB().SelectContext(ctx, &summaries, query, "%"+q+"%"); err != nil {
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}
	return summaries, nil
}

// GetProfile assembles the client and its enrollment summaries with an
// explicit join rather than object-graph traversal.
func (r *clientRepository) GetProfile(ctx context.Context, id uuid.UUID) (*model.ClientProfile, error) {
	client, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT e.program_id, p.name AS program_name, e.enrolled_at, e.status
		FROM enrollments e
		JOIN health_programs p ON p.id = e.program_id
		WHERE e.client_id = $1
		ORDER BY e.enrolled_at
	`

	programs := []model.EnrollmentSummary{}
	if err := r.GetDB().SelectContext(ctx, &programs, query, id); err != nil {
		return nil, fmt.Errorf("failed to load enrollments: %w", err)
	}

	return &model.ClientProfile{Client: *client, Programs: programs}, nil
}
