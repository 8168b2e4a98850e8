package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cema-health/records-api/internal/model"
	"github.com/cema-health/records-api/internal/repository"
	"github.com/cema-health/records-api/pkg/logger"
)

// Service appends domain events to the outbox table. The worker publishes
// them out of band, so the request path never blocks on the broker.
type Service struct {
	repo   repository.OutboxRepository
	logger *logger.Logger
}

func NewService(repo repository.OutboxRepository, logger *logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Emit stages an event; failures are logged and swallowed because event
// delivery is best effort relative to the write that triggered it.
func (s *Service) Emit(ctx context.Context, eventType string, payload interface{}) {
	if s == nil || s.repo == nil {
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error(fmt.Errorf("marshal payload: %w", err), "failed to stage event", "event_type", eventType)
		return
	}

	if err := s.repo.Create(ctx, &model.OutboxEvent{
		EventType: eventType,
		Payload:   raw,
	}); err != nil {
		s.logger.Error(err, "failed to stage event", "event_type", eventType)
	}
}
