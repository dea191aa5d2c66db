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

type OrderRepo interface {
	Save(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	Delete(ctx context.Context, id string) error
}

type orderRepo struct {
	kv store.Store
}

func NewOrderRepo(kv store.Store) OrderRepo { return &orderRepo{kv: kv} }

func orderKey(id string) string { return store.PrefixOrder + id }

func (r *orderRepo) Save(ctx context.Context, o *models.Order) error {
	raw, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal order %s: %w", o.ID, err)
	}
	return r.kv.Set(ctx, orderKey(o.ID), raw)
}

func (r *orderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	raw, err := r.kv.Get(ctx, orderKey(id))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var o models.Order
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("unmarshal order %s: %w", id, err)
	}
	return &o, nil
}

// List returns every order, newest first.
func (r *orderRepo) List(ctx context.Context) ([]models.Order, error) {
	raws, err := r.kv.GetByPrefix(ctx, store.PrefixOrder)
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(raws))
	for _, raw := range raws {
		var o models.Order
		if err := json.Unmarshal(raw, &o); err != nil {
			return nil, fmt.Errorf("unmarshal order: %w", err)
		}
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *orderRepo) Delete(ctx context.Context, id string) error {
	return r.kv.Delete(ctx, orderKey(id))
}
