package service

import (
	"context"
	"sort"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/models"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/repository"
)

const DefaultLowStockThreshold = 10

type DashboardStats struct {
	TotalProducts      int              `json:"totalProducts"`
	TotalOrders        int              `json:"totalOrders"`
	TotalRevenue       float64          `json:"totalRevenue"`
	PendingOrders      int              `json:"pendingOrders"`
	LowStockProducts   int              `json:"lowStockProducts"`
	ProductsOutOfStock int              `json:"productsOutOfStock"`
	RecentOrders       []models.Order   `json:"recentOrders"`
	TopProducts        []models.Product `json:"topProducts"`
}

type AnalyticsService interface {
	ComputeDashboard(ctx context.Context) (*DashboardStats, error)
}

type analyticsService struct {
	repo              *repository.Repository
	lowStockThreshold int
}

func NewAnalyticsService(repo *repository.Repository, lowStockThreshold int) AnalyticsService {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	return &analyticsService{
		repo:              repo,
		lowStockThreshold: lowStockThreshold,
	}
}

// ComputeDashboard rescans every product and order on each call. The
// catalog is small by design; there is no cached aggregate to go stale.
//
// Two oddities are kept from the storefront this replaces: revenue sums
// every order regardless of status, cancelled included, and "top
// products" ranks by remaining stock, not sales. Admin dashboards built
// against the old numbers keep matching.
func (s *analyticsService) ComputeDashboard(ctx context.Context) (*DashboardStats, error) {
	products, err := s.repo.Products.List(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.Orders.List(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Active {
			active = append(active, p)
		}
	}

	stats := &DashboardStats{
		TotalProducts: len(active),
		TotalOrders:   len(orders),
	}

	for _, p := range active {
		if p.Stock < s.lowStockThreshold {
			stats.LowStockProducts++
		}
		if p.Stock == 0 {
			stats.ProductsOutOfStock++
		}
	}

	for _, o := range orders {
		stats.TotalRevenue += o.Total
		if o.Status == models.OrderStatusPending {
			stats.PendingOrders++
		}
	}

	// orders arrive newest first from the repo
	stats.RecentOrders = orders
	if len(stats.RecentOrders) > 5 {
		stats.RecentOrders = stats.RecentOrders[:5]
	}

	sort.Slice(active, func(i, j int) bool {
		return active[i].Stock > active[j].Stock
	})
	stats.TopProducts = active
	if len(stats.TopProducts) > 5 {
		stats.TopProducts = stats.TopProducts[:5]
	}

	return stats, nil
}
