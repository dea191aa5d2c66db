package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/models"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/store"
)

type ProductRepo interface {
	Save(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type productRepo struct {
	kv store.Store
}

func NewProductRepo(kv store.Store) ProductRepo { return &productRepo{kv: kv} }

func productKey(id string) string { return store.PrefixProduct + id }

func (r *productRepo) Save(ctx context.Context, p *models.Product) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal product %s: %w", p.ID, err)
	}
	return r.kv.Set(ctx, productKey(p.ID), raw)
}

// GetByID returns (nil, nil) when the product does not exist; the service
// layer maps that to its not-found error.
func (r *productRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	raw, err := r.kv.Get(ctx, productKey(id))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var p models.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("unmarshal product %s: %w", id, err)
	}
	return &p, nil
}

// List scans every product record, soft-deleted ones included, sorted by
// createdAt descending.
func (r *productRepo) List(ctx context.Context) ([]models.Product, error) {
	raws, err := r.kv.GetByPrefix(ctx, store.PrefixProduct)
	if err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(raws))
	for _, raw := range raws {
		var p models.Product
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("unmarshal product: %w", err)
		}
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	return r.kv.Delete(ctx, productKey(id))
}

func (r *productRepo) Count(ctx context.Context) (int, error) {
	raws, err := r.kv.GetByPrefix(ctx, store.PrefixProduct)
	if err != nil {
		return 0, err
	}
	return len(raws), nil
}
