package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/service"

	"github.com/segmentio/kafka-go"
)

// OrderEventProducer publishes order events for the notification
// collaborator (WhatsApp/email sender). Implements service.EventBus.
type OrderEventProducer struct {
	writer *kafka.Writer
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	return &OrderEventProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

type envelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

func (p *OrderEventProducer) publish(ctx context.Context, key string, env envelope) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	value, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

func (p *OrderEventProducer) PublishOrderCreated(ctx context.Context, e service.OrderCreatedEvent) error {
	return p.publish(ctx, e.OrderID, envelope{Type: "order.created", Payload: e})
}

func (p *OrderEventProducer) PublishOrderStatusChanged(ctx context.Context, e service.OrderStatusChangedEvent) error {
	return p.publish(ctx, e.OrderID, envelope{Type: "order.status_changed", Payload: e})
}

func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}
