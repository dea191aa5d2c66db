package http

import (
	"net/http"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/dto"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/models"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler groups the back-office surface: dashboard analytics,
// settings, categories and the init/reset operational tools.
type AdminHandler struct {
	analytics service.AnalyticsService
	settings  service.SettingsService
	seed      service.SeedService
	log       *zap.Logger
}

func NewAdminHandler(analytics service.AnalyticsService, settings service.SettingsService, seed service.SeedService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		analytics: analytics,
		settings:  settings,
		seed:      seed,
		log:       log,
	}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.analytics.ComputeDashboard(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.settings.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req models.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	settings, err := h.settings.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings, "message": "Settings updated successfully"})
}

func (h *AdminHandler) GetCategories(c *gin.Context) {
	categories, err := h.settings.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *AdminHandler) UpdateCategories(c *gin.Context) {
	var req dto.UpdateCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	categories, err := h.settings.UpdateCategories(c.Request.Context(), req.Categories)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories, "message": "Categories updated successfully"})
}

func (h *AdminHandler) Init(c *gin.Context) {
	seeded, count, err := h.seed.Init(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if !seeded {
		c.JSON(http.StatusOK, gin.H{"message": "Data already exists", "count": count})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Demo data initialized successfully", "count": count})
}

func (h *AdminHandler) Reset(c *gin.Context) {
	if err := h.seed.Reset(c.Request.Context()); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database reset successfully"})
}
