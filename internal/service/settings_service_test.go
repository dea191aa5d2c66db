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

func TestSettings_DefaultsThenStored(t *testing.T) {
	repo := repository.New(store.NewMemoryStore())
	svc := service.NewSettingsService(repo, zap.NewNop())
	ctx := context.Background()

	got, err := svc.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if got.StoreName != "TechStore" || got.WhatsappNumber == "" {
		t.Fatalf("expected defaults, got %+v", got)
	}

	updated, err := svc.UpdateSettings(ctx, models.Settings{
		StoreName:      "MiTienda",
		WhatsappNumber: "573009998877",
		Currency:       "COP",
	})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if updated.UpdatedAt.IsZero() {
		t.Fatalf("updatedAt not stamped")
	}

	got, err = svc.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings after update: %v", err)
	}
	if got.StoreName != "MiTienda" || got.Currency != "COP" {
		t.Fatalf("stored settings not returned: %+v", got)
	}
}

func TestCategories_DefaultsAndReplacement(t *testing.T) {
	repo := repository.New(store.NewMemoryStore())
	svc := service.NewSettingsService(repo, zap.NewNop())
	ctx := context.Background()

	cats, err := svc.GetCategories(ctx)
	if err != nil {
		t.Fatalf("GetCategories: %v", err)
	}
	if len(cats) != 6 {
		t.Fatalf("expected 6 default categories, got %d", len(cats))
	}

	if _, err := svc.UpdateCategories(ctx, nil); !errors.Is(err, service.ErrCategoriesRequired) {
		t.Fatalf("expected ErrCategoriesRequired, got %v", err)
	}

	replacement := []models.Category{{ID: "1", Name: "Todo", Icon: "🛒"}}
	if _, err := svc.UpdateCategories(ctx, replacement); err != nil {
		t.Fatalf("UpdateCategories: %v", err)
	}

	cats, err = svc.GetCategories(ctx)
	if err != nil {
		t.Fatalf("GetCategories after update: %v", err)
	}
	if len(cats) != 1 || cats[0].Name != "Todo" {
		t.Fatalf("replacement not stored: %+v", cats)
	}
}
