package http

import (
	"errors"
	"net/http"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/dto"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto the HTTP taxonomy:
// validation 400, not found 404, insufficient stock 400 with availability
// detail, anything else 500 with a best-effort diagnostic. Every 500 is
// logged; nothing is swallowed.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	if ise, ok := service.AsInsufficientStock(err); ok {
		c.JSON(http.StatusBadRequest, dto.NewInsufficientStockError(ise.Error(), ise.ProductID))
		return
	}

	switch {
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, dto.NewNotFoundError(err.Error()))
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrCustomerNameRequired),
		errors.Is(err, service.ErrEmptyItems),
		errors.Is(err, service.ErrPriceNegative),
		errors.Is(err, service.ErrStockNegative),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrImmutableOrderField),
		errors.Is(err, service.ErrCategoriesRequired):
		c.JSON(http.StatusBadRequest, dto.NewValidationError(err.Error(), nil))
	default:
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(err.Error()))
	}
}

func bindError(c *gin.Context, log *zap.Logger, err error) {
	log.Warn("invalid request body", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", nil))
}
