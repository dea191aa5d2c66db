package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/models"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/repository"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/service"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/store"

	"go.uber.org/zap"
)

func setupCatalog(t *testing.T) (service.CatalogService, *repository.Repository) {
	t.Helper()
	repo := repository.New(store.NewMemoryStore())
	svc := service.NewCatalogService(repo, service.NewKeyedLocks(), zap.NewNop())
	return svc, repo
}

func mustCreate(t *testing.T, svc service.CatalogService, in service.ProductInput) *models.Product {
	t.Helper()
	p, err := svc.CreateProduct(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	return p
}

func TestCreateProduct_DefaultsAndValidation(t *testing.T) {
	svc, _ := setupCatalog(t)
	ctx := context.Background()

	p := mustCreate(t, svc, service.ProductInput{Name: "Widget", Price: 9.99, Stock: 3})
	if !p.Active {
		t.Fatalf("expected active=true by default")
	}
	if p.Category != "General" {
		t.Fatalf("expected default category, got %q", p.Category)
	}
	if p.Stock < 0 {
		t.Fatalf("stock must be >= 0, got %d", p.Stock)
	}
	if p.ID == "" || p.CreatedAt.IsZero() {
		t.Fatalf("id/createdAt not stamped: %+v", p)
	}

	if _, err := svc.CreateProduct(ctx, service.ProductInput{Price: 1, Stock: 1}); !errors.Is(err, service.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if _, err := svc.CreateProduct(ctx, service.ProductInput{Name: "x", Price: -1, Stock: 1}); !errors.Is(err, service.ErrPriceNegative) {
		t.Fatalf("expected ErrPriceNegative, got %v", err)
	}
	if _, err := svc.CreateProduct(ctx, service.ProductInput{Name: "x", Price: 1, Stock: -1}); !errors.Is(err, service.ErrStockNegative) {
		t.Fatalf("expected ErrStockNegative, got %v", err)
	}

	inactive := false
	p2 := mustCreate(t, svc, service.ProductInput{Name: "Hidden", Price: 1, Stock: 1, Active: &inactive})
	if p2.Active {
		t.Fatalf("explicit active=false must be honored")
	}
}

func TestUpdateProduct_RoundTrip(t *testing.T) {
	svc, _ := setupCatalog(t)
	ctx := context.Background()

	p := mustCreate(t, svc, service.ProductInput{Name: "Widget", Price: 10, Stock: 5})

	newPrice := 42.5
	updated, err := svc.UpdateProduct(ctx, p.ID, service.ProductPatch{Price: &newPrice})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if updated.Price != newPrice {
		t.Fatalf("price not updated: %v", updated.Price)
	}

	got, err := svc.GetProduct(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if got.Price != newPrice {
		t.Fatalf("round-trip price mismatch: %v", got.Price)
	}
	if !got.CreatedAt.Equal(p.CreatedAt) {
		t.Fatalf("createdAt changed on update: %v vs %v", got.CreatedAt, p.CreatedAt)
	}
	if got.ID != p.ID {
		t.Fatalf("id changed on update")
	}

	if _, err := svc.UpdateProduct(ctx, "nope", service.ProductPatch{}); !errors.Is(err, service.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestSoftDelete_ExcludedFromActiveListing(t *testing.T) {
	svc, _ := setupCatalog(t)
	ctx := context.Background()

	p := mustCreate(t, svc, service.ProductInput{Name: "Widget", Price: 10, Stock: 5})

	if _, err := svc.SoftDeleteProduct(ctx, p.ID); err != nil {
		t.Fatalf("SoftDeleteProduct: %v", err)
	}

	// still readable by id
	got, err := svc.GetProduct(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetProduct after delete: %v", err)
	}
	if got.Active || got.DeletedAt == nil {
		t.Fatalf("expected inactive with deletedAt, got %+v", got)
	}

	active, err := svc.ListProducts(ctx, service.ProductFilter{ActiveOnly: true})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("soft-deleted product still in active listing")
	}

	all, err := svc.ListProducts(ctx, service.ProductFilter{})
	if err != nil {
		t.Fatalf("ListProducts all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("soft-deleted product must stay in unfiltered scans, got %d", len(all))
	}
}

func TestAdjustStock_MovementTypes(t *testing.T) {
	svc, _ := setupCatalog(t)
	ctx := context.Background()

	p := mustCreate(t, svc, service.ProductInput{Name: "Widget", Price: 10, Stock: 5})

	cases := []struct {
		newStock int
		wantType models.MovementType
		wantQty  int
	}{
		{8, models.MovementIn, 3},
		{2, models.MovementOut, 6},
		{2, models.MovementAdjustment, 0},
	}
	for _, tc := range cases {
		updated, err := svc.AdjustStock(ctx, p.ID, tc.newStock, "restock")
		if err != nil {
			t.Fatalf("AdjustStock(%d): %v", tc.newStock, err)
		}
		if updated.Stock != tc.newStock {
			t.Fatalf("stock = %d, want %d", updated.Stock, tc.newStock)
		}
		movements, err := svc.ListStockMovements(ctx, p.ID)
		if err != nil {
			t.Fatalf("ListStockMovements: %v", err)
		}
		m := movements[0] // newest first
		if m.Type != tc.wantType || m.Quantity != tc.wantQty {
			t.Fatalf("movement = %s/%d, want %s/%d", m.Type, m.Quantity, tc.wantType, tc.wantQty)
		}
	}

	if _, err := svc.AdjustStock(ctx, p.ID, -1, ""); !errors.Is(err, service.ErrStockNegative) {
		t.Fatalf("expected ErrStockNegative, got %v", err)
	}
	if _, err := svc.AdjustStock(ctx, "nope", 1, ""); !errors.Is(err, service.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCounters(t *testing.T) {
	svc, _ := setupCatalog(t)
	ctx := context.Background()

	p := mustCreate(t, svc, service.ProductInput{Name: "Widget", Price: 10, Stock: 5})

	for i := 0; i < 3; i++ {
		if _, err := svc.IncrementViewCount(ctx, p.ID); err != nil {
			t.Fatalf("IncrementViewCount: %v", err)
		}
	}
	updated, err := svc.IncrementSalesCount(ctx, p.ID, 2)
	if err != nil {
		t.Fatalf("IncrementSalesCount: %v", err)
	}
	if updated.ViewCount != 3 || updated.SalesCount != 2 {
		t.Fatalf("counters = views %d, sales %d", updated.ViewCount, updated.SalesCount)
	}

	if _, err := svc.IncrementSalesCount(ctx, p.ID, 0); !errors.Is(err, service.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestListProducts_Filters(t *testing.T) {
	svc, _ := setupCatalog(t)
	ctx := context.Background()

	mustCreate(t, svc, service.ProductInput{Name: "MacBook Pro", Description: "laptop", Price: 2499, Category: "Laptops", Brand: "Apple", Stock: 3, Tags: []string{"premium"}})
	mustCreate(t, svc, service.ProductInput{Name: "Magic Keyboard", Price: 99, Category: "Accesorios", Brand: "Apple", Stock: 0, Discount: 10})
	mustCreate(t, svc, service.ProductInput{Name: "Galaxy S24", Price: 1299, Category: "Smartphones", Brand: "Samsung", Stock: 7, Featured: true})

	check := func(f service.ProductFilter, want int) {
		t.Helper()
		got, err := svc.ListProducts(ctx, f)
		if err != nil {
			t.Fatalf("ListProducts(%+v): %v", f, err)
		}
		if len(got) != want {
			t.Fatalf("ListProducts(%+v) = %d products, want %d", f, len(got), want)
		}
	}

	check(service.ProductFilter{Category: "laptops"}, 1)
	check(service.ProductFilter{Brand: "Apple"}, 2)
	check(service.ProductFilter{InStock: true}, 2)
	check(service.ProductFilter{Discounted: true}, 1)
	check(service.ProductFilter{Featured: true}, 1)
	check(service.ProductFilter{Tag: "premium"}, 1)
	check(service.ProductFilter{Query: "keyboard"}, 1)
	check(service.ProductFilter{Query: "laptop"}, 1) // matches description
	min, max := 100.0, 1500.0
	check(service.ProductFilter{PriceMin: &min, PriceMax: &max}, 1)
}
