package service

import (
	"context"
	"strings"
	"time"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/models"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultProductImage = "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500"

type catalogService struct {
	repo  *repository.Repository
	locks *KeyedLocks
	log   *zap.Logger
	now   func() time.Time
}

func NewCatalogService(repo *repository.Repository, locks *KeyedLocks, log *zap.Logger) CatalogService {
	return &catalogService{
		repo:  repo,
		locks: locks,
		log:   log,
		now:   time.Now,
	}
}

func (s *catalogService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrNameRequired
	}
	if in.Price < 0 {
		return nil, ErrPriceNegative
	}
	if in.Stock < 0 {
		return nil, ErrStockNegative
	}

	now := s.now()
	p := &models.Product{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Image:       in.Image,
		Stock:       in.Stock,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,

		Discount:      in.Discount,
		OriginalPrice: in.OriginalPrice,
		Brand:         in.Brand,
		Tags:          in.Tags,
		Featured:      in.Featured,
		Recommended:   in.Recommended,
		MinStock:      in.MinStock,
		SKU:           strings.TrimSpace(in.SKU),
	}
	if p.Category == "" {
		p.Category = "General"
	}
	if p.Image == "" {
		p.Image = defaultProductImage
	}
	if in.Active != nil {
		p.Active = *in.Active
	}

	if err := s.repo.Products.Save(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info("product created", zap.String("id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*models.Product, error) {
	s.locks.lock(productLockKey(id))
	defer s.locks.unlock(productLockKey(id))

	p, err := s.repo.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return nil, ErrPriceNegative
		}
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Stock != nil {
		if *patch.Stock < 0 {
			return nil, ErrStockNegative
		}
		p.Stock = *patch.Stock
	}
	if patch.Active != nil {
		p.Active = *patch.Active
	}
	if patch.Discount != nil {
		p.Discount = *patch.Discount
	}
	if patch.OriginalPrice != nil {
		p.OriginalPrice = *patch.OriginalPrice
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Tags != nil {
		p.Tags = *patch.Tags
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.Recommended != nil {
		p.Recommended = *patch.Recommended
	}
	if patch.MinStock != nil {
		p.MinStock = *patch.MinStock
	}
	if patch.SKU != nil {
		p.SKU = strings.TrimSpace(*patch.SKU)
	}

	p.UpdatedAt = s.now()

	if err := s.repo.Products.Save(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info("product updated", zap.String("id", p.ID))
	return p, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	p, err := s.repo.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *catalogService) ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	products, err := s.repo.Products.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchProduct(p, f) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func matchProduct(p models.Product, f ProductFilter) bool {
	if f.ActiveOnly && !p.Active {
		return false
	}
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Brand != "" && !strings.EqualFold(p.Brand, f.Brand) {
		return false
	}
	if f.Tag != "" {
		found := false
		for _, t := range p.Tags {
			if strings.EqualFold(t, f.Tag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.PriceMin != nil && p.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && p.Price > *f.PriceMax {
		return false
	}
	if f.InStock && p.Stock <= 0 {
		return false
	}
	if f.Discounted && p.Discount <= 0 {
		return false
	}
	if f.Featured && !p.Featured {
		return false
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		lq := strings.ToLower(q)
		if !strings.Contains(strings.ToLower(p.Name), lq) &&
			!strings.Contains(strings.ToLower(p.Description), lq) {
			return false
		}
	}
	return true
}

// SoftDeleteProduct marks the record inactive. It stays readable by id and
// in unfiltered scans so historical orders keep resolving.
func (s *catalogService) SoftDeleteProduct(ctx context.Context, id string) (*models.Product, error) {
	s.locks.lock(productLockKey(id))
	defer s.locks.unlock(productLockKey(id))

	p, err := s.repo.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	now := s.now()
	p.Active = false
	p.DeletedAt = &now
	p.UpdatedAt = now

	if err := s.repo.Products.Save(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info("product soft deleted", zap.String("id", p.ID))
	return p, nil
}

// AdjustStock sets the absolute stock level and records the movement.
// The write order is movement first, product second: a crash in between
// leaves an audit entry without the matching stock value, never a silent
// stock change.
func (s *catalogService) AdjustStock(ctx context.Context, id string, newStock int, reason string) (*models.Product, error) {
	if newStock < 0 {
		return nil, ErrStockNegative
	}

	s.locks.lock(productLockKey(id))
	defer s.locks.unlock(productLockKey(id))

	p, err := s.repo.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	if reason == "" {
		reason = "Manual adjustment"
	}

	if err := s.recordMovement(ctx, p, newStock, reason); err != nil {
		return nil, err
	}

	p.Stock = newStock
	p.UpdatedAt = s.now()
	if err := s.repo.Products.Save(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info("product stock updated",
		zap.String("id", p.ID),
		zap.Int("newStock", newStock))
	return p, nil
}

func (s *catalogService) recordMovement(ctx context.Context, p *models.Product, newStock int, reason string) error {
	delta := newStock - p.Stock
	typ := models.MovementAdjustment
	switch {
	case delta > 0:
		typ = models.MovementIn
	case delta < 0:
		typ = models.MovementOut
		delta = -delta
	}

	m := &models.StockMovement{
		ID:            uuid.NewString(),
		ProductID:     p.ID,
		ProductName:   p.Name,
		Type:          typ,
		Quantity:      delta,
		PreviousStock: p.Stock,
		NewStock:      newStock,
		Reason:        reason,
		CreatedAt:     s.now(),
	}
	return s.repo.Movements.Save(ctx, m)
}

// IncrementViewCount bumps a non-critical metric. Cross-process races are
// accepted; in-process callers are serialized by the product lock.
func (s *catalogService) IncrementViewCount(ctx context.Context, id string) (*models.Product, error) {
	s.locks.lock(productLockKey(id))
	defer s.locks.unlock(productLockKey(id))

	p, err := s.repo.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	p.ViewCount++
	p.UpdatedAt = s.now()
	if err := s.repo.Products.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *catalogService) IncrementSalesCount(ctx context.Context, id string, quantity int) (*models.Product, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	s.locks.lock(productLockKey(id))
	defer s.locks.unlock(productLockKey(id))

	p, err := s.repo.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	p.SalesCount += quantity
	p.UpdatedAt = s.now()
	if err := s.repo.Products.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *catalogService) ListStockMovements(ctx context.Context, productID string) ([]models.StockMovement, error) {
	movements, err := s.repo.Movements.List(ctx)
	if err != nil {
		return nil, err
	}
	if productID == "" {
		return movements, nil
	}
	out := make([]models.StockMovement, 0, len(movements))
	for _, m := range movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func productLockKey(id string) string { return "product:" + id }
