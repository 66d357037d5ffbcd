package messaging

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tableorders/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQConfig holds connection settings. VHost defaults to "/".
type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	VHost    string
	Exchange string
}

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher publishes persistent JSON messages to a durable topic exchange.
// The routing key is "order.<event>", e.g. order.OrderPlaced.
type RabbitMQPublisher struct {
	conn     *amqp.Connection
	ch       amqpChannel
	exchange string
	mu       sync.Mutex
}

func DialRabbitMQ(cfg RabbitMQConfig) (*RabbitMQPublisher, error) {
	if cfg.VHost == "" {
		cfg.VHost = "/"
	}
	url := fmt.Sprintf("amqp://%s:%s@%s:%d/%s", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.VHost)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err = ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &RabbitMQPublisher{conn: conn, ch: ch, exchange: cfg.Exchange}, nil
}

func newRabbitMQPublisherWithChannel(ch amqpChannel, exchange string) *RabbitMQPublisher {
	return &RabbitMQPublisher{ch: ch, exchange: exchange}
}

// RoutingKey returns the routing key used for e.
func RoutingKey(e order.DomainEvent) string {
	return "order." + e.EventName()
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, events ...order.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, e := range events {
		id, body, err := encode(e)
		if err != nil {
			return err
		}

		err = p.ch.PublishWithContext(ctx, p.exchange, RoutingKey(e), false, false, amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    id,
			Type:         e.EventName(),
			Timestamp:    time.Now(),
			Body:         body,
		})
		if err != nil {
			return fmt.Errorf("rabbitmq: publish %s for order %s: %w", e.EventName(), id, err)
		}
	}
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	var err error
	if p.ch != nil {
		err = p.ch.Close()
	}
	if p.conn != nil {
		if cErr := p.conn.Close(); cErr != nil && err == nil {
			err = cErr
		}
	}
	return err
}
