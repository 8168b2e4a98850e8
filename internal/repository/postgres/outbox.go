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

type outboxRepository struct {
	BaseRepository
}

func NewOutboxRepository(db *sqlx.DB) repository.OutboxRepository {
	return &outboxRepository{NewBaseRepository(db)}
}

func (r *outboxRepository) Create(ctx context.Context, event *model.OutboxEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.Status = model.OutboxStatusPending
	event.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO outbox_events (id, event_type, payload, status, retry_count, created_at)
		VALUES ($1, $2, $3, $4, 0, $5)
	`
	_, err := r.GetDB().ExecContext(ctx, query,
		event.ID, event.EventType, event.Payload, event.Status, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create outbox event: %w", err)
	}
	return nil
}

// GetPendingEvents claims up to limit pending events, skipping rows another
// worker already holds.
func (r *outboxRepository) GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error) {
	events := []*model.OutboxEvent{}
	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			SELECT id, event_type, payload, status, error_message, retry_count, created_at, processed_at
			FROM outbox_events
			WHERE status = $1
			ORDER BY created_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		`
		return tx.SelectContext(ctx, &events, query, model.OutboxStatusPending, limit)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get pending events: %w", err)
	}
	return events, nil
}

func (r *outboxRepository) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE outbox_events
		SET status = $1, processed_at = NOW(), error_message = NULL
		WHERE id = $2
	`
	if _, err := r.GetDB().ExecContext(ctx, query, model.OutboxStatusProcessed, id); err != nil {
		return fmt.Errorf("failed to mark event processed: %w", err)
	}
	return nil
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	query := `
		UPDATE outbox_events
		SET status = $1, error_message = $2, retry_count = retry_count + 1
		WHERE id = $3
	`
	if _, err := r.GetDB().ExecContext(ctx, query, model.OutboxStatusFailed, errMsg, id); err != nil {
		return fmt.Errorf("failed to mark event failed: %w", err)
	}
	return nil
}
