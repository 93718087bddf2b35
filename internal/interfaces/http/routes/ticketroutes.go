package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "extinsia/internal/interfaces/http/handlers/ticket"
	"extinsia/internal/interfaces/http/middleware"
	"extinsia/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", cfg.TicketHandler.CreateTicket)
		tickets.GET("", cfg.TicketHandler.ListTickets)

		tickets.GET("/:code", cfg.TicketHandler.GetTicket)
		tickets.PATCH("/:code", cfg.TicketHandler.UpdateTicket)
		tickets.DELETE("/:code",
			authorization.RequireAdmin(),
			cfg.TicketHandler.DeleteTicket)
	}
}
