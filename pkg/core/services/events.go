package services

import (
	"context"
	"time"

	"github.com/wadjakorntonsri/go-catalog-api/pkg/core/domain"
	"github.com/wadjakorntonsri/go-catalog-api/pkg/ports"
	"go.uber.org/zap"
)

// notifier publishes catalog events after a write has committed.
// A failed publish is logged and never returned to the caller.
type notifier struct {
	events ports.EventPublisher
	logger *zap.Logger
}

func (n notifier) notify(ctx context.Context, entity, action string, id int64, payload interface{}) {
	if n.events == nil {
		return
	}
	event := domain.CatalogEvent{
		Entity:     entity,
		Action:     action,
		ID:         id,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	if err := n.events.Publish(ctx, event); err != nil {
		n.logger.Warn("failed to publish catalog event",
			zap.String("key", event.Key()),
			zap.Error(err),
		)
	}
}
