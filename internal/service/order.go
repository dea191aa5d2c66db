package service

import (
	"context"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/models"
)

type CreateOrderItem struct {
	ProductID string
	Quantity  int
}

type CreateOrderInput struct {
	Items           []CreateOrderItem
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string
	DeliveryMethod  string
	Notes           string
}

// OrderPatch edits customer-facing details of an existing order. Status,
// items and total are deliberately absent: status moves only through
// UpdateStatus, and the total is a creation-time price snapshot.
type OrderPatch struct {
	CustomerName    *string
	CustomerPhone   *string
	CustomerEmail   *string
	CustomerAddress *string
	DeliveryMethod  *string
	Notes           *string
	AdminNotes      *string
}

type OrderListFilter struct {
	Status *models.OrderStatus
}

type OrderService interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context, f OrderListFilter) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus, notes string) (*models.Order, error)
	UpdateOrder(ctx context.Context, id string, patch OrderPatch) (*models.Order, error)

	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id string) (*models.Customer, error)
	UpsertCustomer(ctx context.Context, c models.Customer) (*models.Customer, error)
}
