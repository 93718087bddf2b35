package routes

import (
	"github.com/gin-gonic/gin"

	"extinsia/internal/interfaces/http/handlers"
	"extinsia/internal/interfaces/http/middleware"
	"extinsia/internal/shared/authorization"
)

type CatalogRouteConfig struct {
	ProductHandler      *handlers.ProductHandler
	ExtinguisherHandler *handlers.ExtinguisherHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupCatalogRoutes configures the two catalog route groups. Deleting
// catalog entries is admin only; stored tickets keep their price
// snapshots either way.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	products := engine.Group("/products")
	products.Use(cfg.AuthMiddleware.RequireAuth())
	{
		products.POST("", cfg.ProductHandler.CreateProduct)
		products.GET("", cfg.ProductHandler.ListProducts)

		products.GET("/:code", cfg.ProductHandler.GetProduct)
		products.PATCH("/:code", cfg.ProductHandler.UpdateProduct)
		products.DELETE("/:code",
			authorization.RequireAdmin(),
			cfg.ProductHandler.DeleteProduct)
	}

	extinguishers := engine.Group("/extinguishers")
	extinguishers.Use(cfg.AuthMiddleware.RequireAuth())
	{
		extinguishers.POST("", cfg.ExtinguisherHandler.CreateExtinguisher)
		extinguishers.GET("", cfg.ExtinguisherHandler.ListExtinguishers)

		extinguishers.GET("/:code", cfg.ExtinguisherHandler.GetExtinguisher)
		extinguishers.PATCH("/:code", cfg.ExtinguisherHandler.UpdateExtinguisher)
		extinguishers.DELETE("/:code",
			authorization.RequireAdmin(),
			cfg.ExtinguisherHandler.DeleteExtinguisher)
	}
}
