package models

import "time"

type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Category    string     `json:"category"`
	Image       string     `json:"image"`
	Stock       int        `json:"stock"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`

	Discount      float64  `json:"discount,omitempty"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Brand         string   `json:"brand,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Featured      bool     `json:"featured,omitempty"`
	Recommended   bool     `json:"recommended,omitempty"`
	ViewCount     int      `json:"viewCount,omitempty"`
	SalesCount    int      `json:"salesCount,omitempty"`
	MinStock      int      `json:"minStock,omitempty"`
	SKU           string   `json:"sku,omitempty"`
}

// EffectivePrice is the unit price an order pays: the discounted price
// when a discount percentage is set, the list price otherwise.
func (p *Product) EffectivePrice() float64 {
	if p.Discount > 0 {
		return p.Price * (1 - p.Discount/100)
	}
	return p.Price
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusInTransit OrderStatus = "in_transit"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ValidStatus reports whether s is one of the five order states.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusInTransit,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is expected after s.
// The service does not enforce this; the UI offers forward moves only.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OrderItem snapshots the product at purchase time. Later price or name
// edits never alter historical orders.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type StatusChange struct {
	Status OrderStatus `json:"status"`
	Date   time.Time   `json:"date"`
	Notes  string      `json:"notes,omitempty"`
}

type Order struct {
	ID              string         `json:"id"`
	Items           []OrderItem    `json:"items"`
	Total           float64        `json:"total"`
	CustomerName    string         `json:"customerName"`
	CustomerPhone   string         `json:"customerPhone"`
	CustomerEmail   string         `json:"customerEmail,omitempty"`
	CustomerAddress string         `json:"customerAddress,omitempty"`
	DeliveryMethod  string         `json:"deliveryMethod"`
	Notes           string         `json:"notes,omitempty"`
	AdminNotes      string         `json:"adminNotes,omitempty"`
	Status          OrderStatus    `json:"status"`
	StatusHistory   []StatusChange `json:"statusHistory,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`

	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
	InTransitAt *time.Time `json:"inTransitAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

// Customer is a denormalized aggregate recomputed after each order from
// that customer. Keyed by normalized phone number.
type Customer struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email,omitempty"`
	Address       string     `json:"address,omitempty"`
	TotalOrders   int        `json:"totalOrders"`
	TotalSpent    float64    `json:"totalSpent"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastOrderDate *time.Time `json:"lastOrderDate,omitempty"`
}

type MovementType string

const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementAdjustment MovementType = "adjustment"
)

// StockMovement is an immutable audit record written on every stock
// mutation. Quantity is the absolute delta.
type StockMovement struct {
	ID            string       `json:"id"`
	ProductID     string       `json:"productId"`
	ProductName   string       `json:"productName"`
	Type          MovementType `json:"type"`
	Quantity      int          `json:"quantity"`
	PreviousStock int          `json:"previousStock"`
	NewStock      int          `json:"newStock"`
	Reason        string       `json:"reason"`
	CreatedAt     time.Time    `json:"createdAt"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type Settings struct {
	WhatsappNumber string    `json:"whatsappNumber"`
	StoreName      string    `json:"storeName"`
	StoreEmail     string    `json:"storeEmail"`
	StoreAddress   string    `json:"storeAddress"`
	Currency       string    `json:"currency"`
	TaxRate        float64   `json:"taxRate"`
	ShippingCost   float64   `json:"shippingCost"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty"`
}

// DefaultSettings mirror the storefront's out-of-the-box configuration.
func DefaultSettings() Settings {
	return Settings{
		WhatsappNumber: "573001234567",
		StoreName:      "TechStore",
		StoreEmail:     "contacto@techstore.com",
		StoreAddress:   "Bogotá, Colombia",
		Currency:       "USD",
		TaxRate:        0,
		ShippingCost:   0,
	}
}

// DefaultCategories are served until an admin replaces the list.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Laptops", Icon: "💻"},
		{ID: "2", Name: "Smartphones", Icon: "📱"},
		{ID: "3", Name: "Audio", Icon: "🎧"},
		{ID: "4", Name: "Accesorios", Icon: "⌨️"},
		{ID: "5", Name: "Tablets", Icon: "📲"},
		{ID: "6", Name: "Gaming", Icon: "🎮"},
	}
}
