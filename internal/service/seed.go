package service

import (
	"context"
	"time"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/models"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/repository"

	"go.uber.org/zap"
)

type SeedService interface {
	// Init seeds the demo catalog when no products exist. Idempotent:
	// the second call reports the existing count and writes nothing.
	Init(ctx context.Context) (seeded bool, count int, err error)
	// Reset deletes every product and order. Operational/testing tool.
	Reset(ctx context.Context) error
}

type seedService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewSeedService(repo *repository.Repository, log *zap.Logger) SeedService {
	return &seedService{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

type seedProduct struct {
	id          string
	name        string
	description string
	price       float64
	category    string
	image       string
	stock       int
}

// The demo catalog the storefront ships with.
var demoCatalog = []seedProduct{
	{"1", "MacBook Pro M3", "Potencia profesional para creativos y desarrolladores con chip M3", 2499, "Laptops", "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=500", 15},
	{"2", "iPhone 15 Pro", "Innovación en cada detalle con titanio premium y chip A17 Pro", 1199, "Smartphones", "https://images.unsplash.com/photo-1678652197950-91e8739d59d8?w=500", 25},
	{"3", "AirPods Max", "Audio de alta fidelidad con cancelación de ruido activa", 549, "Audio", "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500", 8},
	{"4", "Magic Keyboard", "Teclado inalámbrico con diseño elegante y teclas precisas", 99, "Accesorios", "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=500", 30},
	{"5", "iPad Pro 12.9\"", "Rendimiento extremo con chip M2 y pantalla Liquid Retina XDR", 1099, "Tablets", "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=500", 12},
	{"6", "PlayStation 5", "Consola de nueva generación con gráficos 4K y SSD ultra rápido", 499, "Gaming", "https://images.unsplash.com/photo-1606813907291-d86efa9b94db?w=500", 5},
	{"7", "Samsung Galaxy S24 Ultra", "Smartphone Android premium con S Pen y cámara de 200MP", 1299, "Smartphones", "https://images.unsplash.com/photo-1610945415295-d9bbf067e59c?w=500", 18},
	{"8", "Sony WH-1000XM5", "Audífonos premium con la mejor cancelación de ruido del mercado", 399, "Audio", "https://images.unsplash.com/photo-1545127398-14699f92334b?w=500", 22},
}

func (s *seedService) Init(ctx context.Context) (bool, int, error) {
	count, err := s.repo.Products.Count(ctx)
	if err != nil {
		return false, 0, err
	}
	if count > 0 {
		return false, count, nil
	}

	now := s.now()
	for _, sp := range demoCatalog {
		p := &models.Product{
			ID:          sp.id,
			Name:        sp.name,
			Description: sp.description,
			Price:       sp.price,
			Category:    sp.category,
			Image:       sp.image,
			Stock:       sp.stock,
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.repo.Products.Save(ctx, p); err != nil {
			return false, 0, err
		}
	}

	s.log.Info("demo data initialized", zap.Int("products", len(demoCatalog)))
	return true, len(demoCatalog), nil
}

func (s *seedService) Reset(ctx context.Context) error {
	products, err := s.repo.Products.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range products {
		if err := s.repo.Products.Delete(ctx, p.ID); err != nil {
			return err
		}
	}

	orders, err := s.repo.Orders.List(ctx)
	if err != nil {
		return err
	}
	for _, o := range orders {
		if err := s.repo.Orders.Delete(ctx, o.ID); err != nil {
			return err
		}
	}

	s.log.Info("database reset completed",
		zap.Int("products", len(products)),
		zap.Int("orders", len(orders)))
	return nil
}
