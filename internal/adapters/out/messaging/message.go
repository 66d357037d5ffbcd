// Package messaging delivers order domain events to external brokers.
// All publishers share one JSON message shape keyed by order id.
package messaging

import (
	"encoding/json"
	"time"

	"tableorders/internal/core/domain/model/order"
)

// LinePayload is one order line on the wire.
type LinePayload struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// OrderPayload is the wire form of an order. Money is a decimal string.
type OrderPayload struct {
	ID          string        `json:"id"`
	TableNumber int           `json:"tableNumber"`
	Lines       []LinePayload `json:"lines"`
	Total       string        `json:"total"`
	Status      string        `json:"status"`
	CreatedAt   string        `json:"createdAt"`
}

// Message is the envelope published for every domain event.
type Message struct {
	Event      string       `json:"event"`
	OccurredAt string       `json:"occurredAt"`
	FromStatus string       `json:"fromStatus,omitempty"`
	Order      OrderPayload `json:"order"`
}

func NewOrderPayload(s order.Snapshot) OrderPayload {
	lines := make([]LinePayload, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, LinePayload{
			ProductID: l.ProductID(),
			Name:      l.Name(),
			UnitPrice: l.UnitPrice().String(),
			Quantity:  l.Quantity(),
		})
	}

	return OrderPayload{
		ID:          s.ID.String(),
		TableNumber: s.Table.Int(),
		Lines:       lines,
		Total:       s.Total.String(),
		Status:      s.Status.String(),
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewMessage(e order.DomainEvent) Message {
	m := Message{
		Event:      e.EventName(),
		OccurredAt: e.OccurredAt().UTC().Format(time.RFC3339Nano),
		Order:      NewOrderPayload(e.Snapshot()),
	}
	if changed, ok := e.(order.OrderStatusChanged); ok {
		m.FromStatus = changed.From().String()
	}
	return m
}

// encode returns the routing key and the JSON body of e.
func encode(e order.DomainEvent) (string, []byte, error) {
	body, err := json.Marshal(NewMessage(e))
	if err != nil {
		return "", nil, err
	}
	return e.AggregateID().String(), body, nil
}
