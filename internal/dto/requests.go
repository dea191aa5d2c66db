package dto

import (
	"encoding/json"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/models"
)

type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Stock       *int     `json:"stock"`
	Active      *bool    `json:"active"`

	Discount      float64  `json:"discount"`
	OriginalPrice float64  `json:"originalPrice"`
	Brand         string   `json:"brand"`
	Tags          []string `json:"tags"`
	Featured      bool     `json:"featured"`
	Recommended   bool     `json:"recommended"`
	MinStock      int      `json:"minStock"`
	SKU           string   `json:"sku"`
}

// UpdateProductRequest uses pointers throughout: absent fields stay
// untouched; explicit zero values are applied.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	Stock       *int     `json:"stock"`
	Active      *bool    `json:"active"`

	Discount      *float64  `json:"discount"`
	OriginalPrice *float64  `json:"originalPrice"`
	Brand         *string   `json:"brand"`
	Tags          *[]string `json:"tags"`
	Featured      *bool     `json:"featured"`
	Recommended   *bool     `json:"recommended"`
	MinStock      *int      `json:"minStock"`
	SKU           *string   `json:"sku"`
}

type AdjustStockRequest struct {
	Quantity *int   `json:"quantity"`
	Reason   string `json:"reason"`
}

type IncrementSalesRequest struct {
	Quantity int `json:"quantity"`
}

type OrderItemRequest struct {
	Product  OrderItemProduct `json:"product"`
	Quantity int              `json:"quantity"`
}

// OrderItemProduct is the client's product reference inside a cart line.
// Only the id is trusted; price and stock are re-read server-side.
type OrderItemProduct struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items"`
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	CustomerEmail   string             `json:"customerEmail"`
	CustomerAddress string             `json:"customerAddress"`
	ShippingAddress string             `json:"shippingAddress"`
	DeliveryMethod  string             `json:"deliveryMethod"`
	Notes           string             `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type UpdateOrderRequest struct {
	CustomerName    *string `json:"customerName"`
	CustomerPhone   *string `json:"customerPhone"`
	CustomerEmail   *string `json:"customerEmail"`
	CustomerAddress *string `json:"customerAddress"`
	DeliveryMethod  *string `json:"deliveryMethod"`
	Notes           *string `json:"notes"`
	AdminNotes      *string `json:"adminNotes"`

	// Present so they can be rejected explicitly rather than ignored.
	Status *string          `json:"status"`
	Total  *float64         `json:"total"`
	Items  *json.RawMessage `json:"items"`
}

type UpdateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type UpdateCategoriesRequest struct {
	Categories []models.Category `json:"categories"`
}
