package service

import (
	"context"
	"time"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/models"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/repository"

	"go.uber.org/zap"
)

type SettingsService interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, s models.Settings) (*models.Settings, error)
	GetCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategories(ctx context.Context, cats []models.Category) ([]models.Category, error)
}

type settingsService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewSettingsService(repo *repository.Repository, log *zap.Logger) SettingsService {
	return &settingsService{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

func (s *settingsService) GetSettings(ctx context.Context) (*models.Settings, error) {
	stored, err := s.repo.Settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		def := models.DefaultSettings()
		return &def, nil
	}
	return stored, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, in models.Settings) (*models.Settings, error) {
	in.UpdatedAt = s.now()
	if err := s.repo.Settings.SaveSettings(ctx, &in); err != nil {
		return nil, err
	}
	s.log.Info("settings updated")
	return &in, nil
}

func (s *settingsService) GetCategories(ctx context.Context) ([]models.Category, error) {
	stored, err := s.repo.Settings.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return models.DefaultCategories(), nil
	}
	return stored, nil
}

func (s *settingsService) UpdateCategories(ctx context.Context, cats []models.Category) ([]models.Category, error) {
	if len(cats) == 0 {
		return nil, ErrCategoriesRequired
	}
	if err := s.repo.Settings.SaveCategories(ctx, cats); err != nil {
		return nil, err
	}
	s.log.Info("categories updated", zap.Int("count", len(cats)))
	return cats, nil
}
