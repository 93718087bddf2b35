package routes

import (
	"github.com/gin-gonic/gin"

	"extinsia/internal/interfaces/http/handlers"
	"extinsia/internal/interfaces/http/middleware"
	"extinsia/internal/shared/authorization"
)

type ReminderRouteConfig struct {
	ReminderHandler *handlers.ReminderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupReminderRoutes(engine *gin.Engine, cfg *ReminderRouteConfig) {
	reminders := engine.Group("/reminders")
	reminders.Use(cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		reminders.POST("/run", cfg.ReminderHandler.RunReminders)
	}
}
