package http

import (
	"github.com/fcbt5uhrtd65/ProjectStore/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Services struct {
	Catalog   service.CatalogService
	Orders    service.OrderService
	Analytics service.AnalyticsService
	Settings  service.SettingsService
	Seed      service.SeedService
}

// Router builds the REST surface. Storefront reads and guest checkout are
// public; everything that mutates the catalog or reads back-office data
// requires a bearer token.
func Router(svcs Services, verifier TokenVerifier, log *zap.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	products := NewProductHandler(svcs.Catalog, log)
	orders := NewOrderHandler(svcs.Orders, log)
	admin := NewAdminHandler(svcs.Analytics, svcs.Settings, svcs.Seed, log)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public storefront
	r.GET("/products", products.List)
	r.GET("/products/:id", products.Get)
	r.PATCH("/products/:id/views", products.IncrementViews)
	r.PATCH("/products/:id/sales", products.IncrementSales)
	r.POST("/orders", orders.Create) // guest checkout
	r.GET("/categories", admin.GetCategories)
	r.GET("/settings", admin.GetSettings)
	r.POST("/init", admin.Init)

	auth := r.Group("/", AuthRequired(verifier, log))
	{
		auth.POST("/products", products.Create)
		auth.PUT("/products/:id", products.Update)
		auth.DELETE("/products/:id", products.Delete)
		auth.PATCH("/products/:id/stock", products.AdjustStock)
		auth.GET("/stock-movements", products.ListStockMovements)

		auth.GET("/orders", orders.List)
		auth.GET("/orders/:id", orders.Get)
		auth.PATCH("/orders/:id/status", orders.UpdateStatus)
		auth.PUT("/orders/:id", orders.Update)

		auth.GET("/customers", orders.ListCustomers)
		auth.GET("/customers/:id", orders.GetCustomer)
		auth.PUT("/customers/:id", orders.UpdateCustomer)

		auth.PUT("/categories", admin.UpdateCategories)
		auth.PUT("/settings", admin.UpdateSettings)

		auth.GET("/analytics/dashboard", admin.Dashboard)
		auth.POST("/reset", admin.Reset)
	}

	return r
}
