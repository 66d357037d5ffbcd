package messaging

import (
	"context"
	"log/slog"

	"tableorders/internal/core/domain/model/order"
)

// LogPublisher writes events to the log. It is used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger.With("component", "event-publisher")}
}

func (p *LogPublisher) Publish(ctx context.Context, events ...order.DomainEvent) error {
	for _, e := range events {
		m := NewMessage(e)
		p.logger.InfoContext(ctx, "order event",
			"event", m.Event,
			"order_id", m.Order.ID,
			"table", m.Order.TableNumber,
			"status", m.Order.Status,
			"from_status", m.FromStatus,
			"total", m.Order.Total,
		)
	}
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
