package service_test

import (
	"context"
	"testing"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/models"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/repository"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/service"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/store"

	"go.uber.org/zap"
)

func TestComputeDashboard(t *testing.T) {
	repo := repository.New(store.NewMemoryStore())
	locks := service.NewKeyedLocks()
	catalog := service.NewCatalogService(repo, locks, zap.NewNop())
	orders := service.NewOrderService(repo, locks, nil, zap.NewNop())
	analytics := service.NewAnalyticsService(repo, 0) // 0 falls back to the default threshold
	ctx := context.Background()

	mk := func(name string, price float64, stock int) *models.Product {
		t.Helper()
		p, err := catalog.CreateProduct(ctx, service.ProductInput{Name: name, Price: price, Stock: stock})
		if err != nil {
			t.Fatalf("CreateProduct: %v", err)
		}
		return p
	}

	big := mk("Plenty", 10, 50)
	mk("Low", 20, 4)
	mk("Empty", 30, 0)
	deleted := mk("Gone", 40, 99)
	if _, err := catalog.SoftDeleteProduct(ctx, deleted.ID); err != nil {
		t.Fatalf("SoftDeleteProduct: %v", err)
	}

	o1, err := orders.CreateOrder(ctx, service.CreateOrderInput{
		Items:        []service.CreateOrderItem{{ProductID: big.ID, Quantity: 2}},
		CustomerName: "Ana",
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	o2, err := orders.CreateOrder(ctx, service.CreateOrderInput{
		Items:        []service.CreateOrderItem{{ProductID: big.ID, Quantity: 1}},
		CustomerName: "Luis",
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if _, err := orders.UpdateStatus(ctx, o2.ID, models.OrderStatusCancelled, ""); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	stats, err := analytics.ComputeDashboard(ctx)
	if err != nil {
		t.Fatalf("ComputeDashboard: %v", err)
	}

	// soft-deleted products are excluded from product counts
	if stats.TotalProducts != 3 {
		t.Fatalf("totalProducts = %d, want 3", stats.TotalProducts)
	}
	if stats.TotalOrders != 2 {
		t.Fatalf("totalOrders = %d, want 2", stats.TotalOrders)
	}
	// revenue sums every order, cancelled included
	if want := o1.Total + o2.Total; stats.TotalRevenue != want {
		t.Fatalf("totalRevenue = %v, want %v", stats.TotalRevenue, want)
	}
	if stats.PendingOrders != 1 {
		t.Fatalf("pendingOrders = %d, want 1", stats.PendingOrders)
	}
	if stats.LowStockProducts != 2 { // stock 4 and stock 0, both < 10
		t.Fatalf("lowStockProducts = %d, want 2", stats.LowStockProducts)
	}
	if stats.ProductsOutOfStock != 1 {
		t.Fatalf("productsOutOfStock = %d, want 1", stats.ProductsOutOfStock)
	}
	if len(stats.RecentOrders) != 2 {
		t.Fatalf("recentOrders = %d, want 2", len(stats.RecentOrders))
	}
	// "top products" ranks by remaining stock
	if len(stats.TopProducts) == 0 || stats.TopProducts[0].ID != big.ID {
		t.Fatalf("topProducts[0] should be the highest-stock active product")
	}
}

func TestComputeDashboard_RecentOrdersCap(t *testing.T) {
	repo := repository.New(store.NewMemoryStore())
	locks := service.NewKeyedLocks()
	catalog := service.NewCatalogService(repo, locks, zap.NewNop())
	orders := service.NewOrderService(repo, locks, nil, zap.NewNop())
	analytics := service.NewAnalyticsService(repo, 10)
	ctx := context.Background()

	p, err := catalog.CreateProduct(ctx, service.ProductInput{Name: "Widget", Price: 5, Stock: 100})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	for i := 0; i < 7; i++ {
		if _, err := orders.CreateOrder(ctx, service.CreateOrderInput{
			Items:        []service.CreateOrderItem{{ProductID: p.ID, Quantity: 1}},
			CustomerName: "Ana",
		}); err != nil {
			t.Fatalf("CreateOrder %d: %v", i, err)
		}
	}

	stats, err := analytics.ComputeDashboard(ctx)
	if err != nil {
		t.Fatalf("ComputeDashboard: %v", err)
	}
	if len(stats.RecentOrders) != 5 {
		t.Fatalf("recentOrders = %d, want capped at 5", len(stats.RecentOrders))
	}
	if stats.TotalOrders != 7 {
		t.Fatalf("totalOrders = %d, want 7", stats.TotalOrders)
	}
}
