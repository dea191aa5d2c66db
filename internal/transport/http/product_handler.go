package http

import (
	"net/http"
	"strconv"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/dto"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	catalog service.CatalogService
	log     *zap.Logger
}

func NewProductHandler(catalog service.CatalogService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{catalog: catalog, log: log}
}

// List is public. Query parameters map onto the in-memory filter; all of
// them optional.
func (h *ProductHandler) List(c *gin.Context) {
	f := service.ProductFilter{
		ActiveOnly: c.Query("active") == "true",
		Category:   c.Query("category"),
		Brand:      c.Query("brand"),
		Tag:        c.Query("tag"),
		InStock:    c.Query("inStock") == "true",
		Discounted: c.Query("discounted") == "true",
		Featured:   c.Query("featured") == "true",
		Query:      c.Query("q"),
	}
	if v := c.Query("priceMin"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceMin = &min
		}
	}
	if v := c.Query("priceMax"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			f.PriceMax = &max
		}
	}

	products, err := h.catalog.ListProducts(c.Request.Context(), f)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	var fields []dto.FieldError
	if req.Name == "" {
		fields = append(fields, dto.FieldError{Field: "name", Message: "required"})
	}
	if req.Price == nil {
		fields = append(fields, dto.FieldError{Field: "price", Message: "required"})
	}
	if req.Stock == nil {
		fields = append(fields, dto.FieldError{Field: "stock", Message: "required"})
	}
	if len(fields) > 0 {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("missing required fields: name, price, stock", fields))
		return
	}

	p, err := h.catalog.CreateProduct(c.Request.Context(), service.ProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         *req.Price,
		Category:      req.Category,
		Image:         req.Image,
		Stock:         *req.Stock,
		Active:        req.Active,
		Discount:      req.Discount,
		OriginalPrice: req.OriginalPrice,
		Brand:         req.Brand,
		Tags:          req.Tags,
		Featured:      req.Featured,
		Recommended:   req.Recommended,
		MinStock:      req.MinStock,
		SKU:           req.SKU,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": p, "message": "Product created successfully"})
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	p, err := h.catalog.UpdateProduct(c.Request.Context(), c.Param("id"), service.ProductPatch{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		Image:         req.Image,
		Stock:         req.Stock,
		Active:        req.Active,
		Discount:      req.Discount,
		OriginalPrice: req.OriginalPrice,
		Brand:         req.Brand,
		Tags:          req.Tags,
		Featured:      req.Featured,
		Recommended:   req.Recommended,
		MinStock:      req.MinStock,
		SKU:           req.SKU,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p, "message": "Product updated successfully"})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if _, err := h.catalog.SoftDeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (h *ProductHandler) AdjustStock(c *gin.Context) {
	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}
	if req.Quantity == nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("quantity is required",
			[]dto.FieldError{{Field: "quantity", Message: "required"}}))
		return
	}

	p, err := h.catalog.AdjustStock(c.Request.Context(), c.Param("id"), *req.Quantity, req.Reason)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p, "message": "Stock updated successfully"})
}

func (h *ProductHandler) IncrementViews(c *gin.Context) {
	p, err := h.catalog.IncrementViewCount(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

func (h *ProductHandler) IncrementSales(c *gin.Context) {
	var req dto.IncrementSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	p, err := h.catalog.IncrementSalesCount(c.Request.Context(), c.Param("id"), req.Quantity)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

func (h *ProductHandler) ListStockMovements(c *gin.Context) {
	movements, err := h.catalog.ListStockMovements(c.Request.Context(), c.Query("productId"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"movements": movements, "count": len(movements)})
}
