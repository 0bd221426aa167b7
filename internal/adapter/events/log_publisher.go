package events

import (
	"context"

	"showcase/internal/domain"

	"go.uber.org/zap"
)

// LogPublisher records events in the log instead of sending them anywhere. It is used
// when no broker is configured.
type LogPublisher struct {
	log *zap.Logger
}

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, event domain.Event) error {
	p.log.Info("Event publishing is disabled, skipping event", zap.String("type", event.Type))
	return nil
}

func (p *LogPublisher) Close() error { return nil }

// NewPublisher returns an AMQP publisher, or a LogPublisher when url is empty.
func NewPublisher(url, exchange string, log *zap.Logger) (domain.EventPublisher, error) {
	if url == "" {
		log.Warn("AMQP URL is empty, event publishing is disabled")
		return NewLogPublisher(log), nil
	}
	return NewAMQPPublisher(url, exchange)
}
