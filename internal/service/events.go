package service

import (
	"context"

	"showcase/internal/domain"
	"showcase/internal/logger"

	"go.uber.org/zap"
)

// publishEvent sends an event after a committed write. Failures are logged only; the
// write has already succeeded.
func publishEvent(ctx context.Context, publisher domain.EventPublisher, eventType string, payload interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, domain.NewEvent(eventType, payload)); err != nil {
		logger.Get().Warn("Failed to publish event", zap.String("type", eventType), zap.Error(err))
	}
}
