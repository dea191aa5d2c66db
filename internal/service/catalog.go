package service

import (
	"context"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/models"
)

// ProductInput carries the fields accepted at creation. Name, Price and
// Stock are required; everything else falls back to a default.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
	Stock       int
	Active      *bool

	Discount      float64
	OriginalPrice float64
	Brand         string
	Tags          []string
	Featured      bool
	Recommended   bool
	MinStock      int
	SKU           string
}

// ProductPatch updates only the fields that are set. ID and CreatedAt are
// never touched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Image       *string
	Stock       *int
	Active      *bool

	Discount      *float64
	OriginalPrice *float64
	Brand         *string
	Tags          *[]string
	Featured      *bool
	Recommended   *bool
	MinStock      *int
	SKU           *string
}

// ProductFilter narrows the full catalog scan. Zero values mean "no
// constraint"; all predicates are applied in memory.
type ProductFilter struct {
	ActiveOnly bool
	Category   string
	Brand      string
	Tag        string
	PriceMin   *float64
	PriceMax   *float64
	InStock    bool
	Discounted bool
	Featured   bool
	Query      string // substring match on name/description
}

type CatalogService interface {
	CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, error)
	SoftDeleteProduct(ctx context.Context, id string) (*models.Product, error)
	AdjustStock(ctx context.Context, id string, newStock int, reason string) (*models.Product, error)
	IncrementViewCount(ctx context.Context, id string) (*models.Product, error)
	IncrementSalesCount(ctx context.Context, id string, quantity int) (*models.Product, error)
	ListStockMovements(ctx context.Context, productID string) ([]models.StockMovement, error)
}
