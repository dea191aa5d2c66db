package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/models"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/store"
)

// MovementRepo persists the stock audit trail. Movements are append-only:
// there is no update and no delete.
type MovementRepo interface {
	Save(ctx context.Context, m *models.StockMovement) error
	List(ctx context.Context) ([]models.StockMovement, error)
}

type movementRepo struct {
	kv store.Store
}

func NewMovementRepo(kv store.Store) MovementRepo { return &movementRepo{kv: kv} }

func movementKey(id string) string { return store.PrefixStockMovement + id }

func (r *movementRepo) Save(ctx context.Context, m *models.StockMovement) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal stock movement %s: %w", m.ID, err)
	}
	return r.kv.Set(ctx, movementKey(m.ID), raw)
}

func (r *movementRepo) List(ctx context.Context) ([]models.StockMovement, error) {
	raws, err := r.kv.GetByPrefix(ctx, store.PrefixStockMovement)
	if err != nil {
		return nil, err
	}
	movements := make([]models.StockMovement, 0, len(raws))
	for _, raw := range raws {
		var m models.StockMovement
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal stock movement: %w", err)
		}
		movements = append(movements, m)
	}
	sort.Slice(movements, func(i, j int) bool {
		return movements[i].CreatedAt.After(movements[j].CreatedAt)
	})
	return movements, nil
}
