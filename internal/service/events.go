package service

import (
	"context"
	"time"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/models"
)

type OrderItemEvent struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type OrderCreatedEvent struct {
	OrderID       string           `json:"order_id"`
	CustomerName  string           `json:"customer_name"`
	CustomerPhone string           `json:"customer_phone"`
	Items         []OrderItemEvent `json:"items"`
	Total         float64          `json:"total"`
	CreatedAt     time.Time        `json:"created_at"`
}

type OrderStatusChangedEvent struct {
	OrderID   string             `json:"order_id"`
	Status    models.OrderStatus `json:"status"`
	Notes     string             `json:"notes,omitempty"`
	ChangedAt time.Time          `json:"changed_at"`
}

// EventBus feeds the notification collaborator (WhatsApp/email sender).
// A nil bus disables publishing.
type EventBus interface {
	PublishOrderCreated(ctx context.Context, e OrderCreatedEvent) error
	PublishOrderStatusChanged(ctx context.Context, e OrderStatusChangedEvent) error
}
