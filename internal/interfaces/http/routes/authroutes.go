package routes

import (
	"github.com/gin-gonic/gin"

	"extinsia/internal/interfaces/http/handlers"
)

type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
}

func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/refresh", cfg.AuthHandler.Refresh)
	}
}
