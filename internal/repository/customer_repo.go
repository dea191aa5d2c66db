package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/models"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/store"
)

type CustomerRepo interface {
	Save(ctx context.Context, c *models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
}

type customerRepo struct {
	kv store.Store
}

func NewCustomerRepo(kv store.Store) CustomerRepo { return &customerRepo{kv: kv} }

func customerKey(id string) string { return store.PrefixCustomer + id }

func (r *customerRepo) Save(ctx context.Context, c *models.Customer) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal customer %s: %w", c.ID, err)
	}
	return r.kv.Set(ctx, customerKey(c.ID), raw)
}

func (r *customerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	raw, err := r.kv.Get(ctx, customerKey(id))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var c models.Customer
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("unmarshal customer %s: %w", id, err)
	}
	return &c, nil
}

// List returns customers sorted by last order date descending.
func (r *customerRepo) List(ctx context.Context) ([]models.Customer, error) {
	raws, err := r.kv.GetByPrefix(ctx, store.PrefixCustomer)
	if err != nil {
		return nil, err
	}
	customers := make([]models.Customer, 0, len(raws))
	for _, raw := range raws {
		var c models.Customer
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("unmarshal customer: %w", err)
		}
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool {
		return lastOrder(customers[i]).After(lastOrder(customers[j]))
	})
	return customers, nil
}

func lastOrder(c models.Customer) time.Time {
	if c.LastOrderDate != nil {
		return *c.LastOrderDate
	}
	return time.Time{}
}
