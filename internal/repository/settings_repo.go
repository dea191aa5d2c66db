package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/models"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/store"
)

// SettingsRepo holds the two singleton documents: store settings and the
// category list.
type SettingsRepo interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	SaveSettings(ctx context.Context, s *models.Settings) error
	GetCategories(ctx context.Context) ([]models.Category, error)
	SaveCategories(ctx context.Context, cats []models.Category) error
}

type settingsRepo struct {
	kv store.Store
}

func NewSettingsRepo(kv store.Store) SettingsRepo { return &settingsRepo{kv: kv} }

// GetSettings returns (nil, nil) when nothing has been stored yet; the
// service falls back to defaults.
func (r *settingsRepo) GetSettings(ctx context.Context) (*models.Settings, error) {
	raw, err := r.kv.Get(ctx, store.KeySettings)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s models.Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	return &s, nil
}

func (r *settingsRepo) SaveSettings(ctx context.Context, s *models.Settings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return r.kv.Set(ctx, store.KeySettings, raw)
}

func (r *settingsRepo) GetCategories(ctx context.Context) ([]models.Category, error) {
	raw, err := r.kv.Get(ctx, store.KeyCategories)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cats []models.Category
	if err := json.Unmarshal(raw, &cats); err != nil {
		return nil, fmt.Errorf("unmarshal categories: %w", err)
	}
	return cats, nil
}

func (r *settingsRepo) SaveCategories(ctx context.Context, cats []models.Category) error {
	raw, err := json.Marshal(cats)
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}
	return r.kv.Set(ctx, store.KeyCategories, raw)
}
