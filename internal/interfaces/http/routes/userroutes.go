package routes

import (
	"github.com/gin-gonic/gin"

	"extinsia/internal/interfaces/http/handlers"
	"extinsia/internal/interfaces/http/middleware"
	"extinsia/internal/shared/authorization"
)

// UserRouteConfig holds dependencies for account management routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures account management routes. All of them are
// admin only: staff accounts never manage other accounts.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		users.POST("", cfg.UserHandler.RegisterUser)
		users.GET("", cfg.UserHandler.ListUsers)

		// Email keyed routes (must come BEFORE /:code to avoid conflicts)
		users.PATCH("/email/:email", cfg.UserHandler.UpdateUser)
		users.DELETE("/email/:email", cfg.UserHandler.DeleteUser)

		users.GET("/:code", cfg.UserHandler.GetUser)
	}
}
