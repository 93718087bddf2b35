package routes

import (
	"github.com/gin-gonic/gin"

	"extinsia/internal/interfaces/http/handlers"
	"extinsia/internal/interfaces/http/middleware"
	"extinsia/internal/shared/authorization"
)

type CustomerRouteConfig struct {
	CustomerHandler *handlers.CustomerHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupCustomerRoutes(engine *gin.Engine, cfg *CustomerRouteConfig) {
	customers := engine.Group("/customers")
	customers.Use(cfg.AuthMiddleware.RequireAuth())
	{
		customers.POST("", cfg.CustomerHandler.CreateCustomer)
		customers.GET("", cfg.CustomerHandler.ListCustomers)

		customers.GET("/:code", cfg.CustomerHandler.GetCustomer)
		customers.PATCH("/:code", cfg.CustomerHandler.UpdateCustomer)
		customers.DELETE("/:code",
			authorization.RequireAdmin(),
			cfg.CustomerHandler.DeleteCustomer)
	}
}
