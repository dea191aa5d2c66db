package http

import (
	"net/http"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/dto"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/models"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orders service.OrderService
	log    *zap.Logger
}

func NewOrderHandler(orders service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, log: log}
}

// Create handles guest checkout: no auth required, but quantities and
// totals are never trusted from the client.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	items := make([]service.CreateOrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.CreateOrderItem{
			ProductID: it.Product.ID,
			Quantity:  it.Quantity,
		})
	}

	address := req.CustomerAddress
	if address == "" {
		address = req.ShippingAddress
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), service.CreateOrderInput{
		Items:           items,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: address,
		DeliveryMethod:  req.DeliveryMethod,
		Notes:           req.Notes,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order, "message": "Order created successfully"})
}

func (h *OrderHandler) List(c *gin.Context) {
	var f service.OrderListFilter
	if s := c.Query("status"); s != "" {
		status := models.OrderStatus(s)
		if !models.ValidStatus(status) {
			c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid status filter", nil))
			return
		}
		f.Status = &status
	}

	orders, err := h.orders.ListOrders(c.Request.Context(), f)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"),
		models.OrderStatus(req.Status), req.Notes)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "message": "Order status updated successfully"})
}

func (h *OrderHandler) Update(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}
	if req.Status != nil || req.Total != nil || req.Items != nil {
		respondError(c, h.log, service.ErrImmutableOrderField)
		return
	}

	order, err := h.orders.UpdateOrder(c.Request.Context(), c.Param("id"), service.OrderPatch{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
		DeliveryMethod:  req.DeliveryMethod,
		Notes:           req.Notes,
		AdminNotes:      req.AdminNotes,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "message": "Order updated successfully"})
}

func (h *OrderHandler) ListCustomers(c *gin.Context) {
	customers, err := h.orders.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers, "count": len(customers)})
}

func (h *OrderHandler) GetCustomer(c *gin.Context) {
	customer, err := h.orders.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

func (h *OrderHandler) UpdateCustomer(c *gin.Context) {
	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	customer, err := h.orders.UpsertCustomer(c.Request.Context(), models.Customer{
		ID:      c.Param("id"),
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer, "message": "Customer updated successfully"})
}
