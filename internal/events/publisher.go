// Package events publishes order lifecycle notifications. Publishing is
// best-effort: a failed publish never fails the order.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// OrderPlaced is emitted once per successful checkout.
type OrderPlaced struct {
	OrderID   string    `json:"orderId"`
	OwnerID   string    `json:"ownerId"`
	Total     int64     `json:"total"`
	ItemCount int       `json:"itemCount"`
	PlacedAt  time.Time `json:"placedAt"`
}

type Publisher interface {
	OrderPlaced(ctx context.Context, e OrderPlaced) error
}

// Kafka publishes events to a broker topic.
type Kafka struct {
	writer *kafka.Writer
}

// NewKafka builds a publisher writing to the given brokers and topic.
func NewKafka(brokers []string, topic string) *Kafka {
	return &Kafka{writer: &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}}
}

func (p *Kafka) OrderPlaced(ctx context.Context, e OrderPlaced) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.OrderID),
		Value: payload,
	})
}

func (p *Kafka) Close() error {
	return p.writer.Close()
}

// Noop is used when no broker is configured.
type Noop struct{}

func (Noop) OrderPlaced(context.Context, OrderPlaced) error { return nil }
