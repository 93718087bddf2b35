package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"extinsia/internal/application/ticket/usecases"
	"extinsia/internal/shared/errors"
	"extinsia/internal/shared/logger"
	"extinsia/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		updateTicketUC: updateTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		deleteTicketUC: deleteTicketUC,
		logger:         logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
//
//	@Summary		Create a service ticket
//	@Description	Create a ticket for a customer, resolving every cart line against the product and extinguisher catalogs
//	@Tags			tickets
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			ticket	body		CreateTicketRequest	true	"Ticket data"
//	@Success		201		{object}	utils.APIResponse	"Ticket created successfully"
//	@Failure		400		{object}	utils.APIResponse	"Validation error or unknown item code"
//	@Failure		404		{object}	utils.APIResponse	"Customer not found"
//	@Router			/tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:code
//
//	@Summary		Get a ticket
//	@Tags			tickets
//	@Produce		json
//	@Security		Bearer
//	@Param			code	path		string				true	"Ticket code (TIC-n)"
//	@Success		200		{object}	utils.APIResponse	"Ticket"
//	@Failure		404		{object}	utils.APIResponse	"Ticket not found"
//	@Router			/tickets/{code} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketCode: c.Param("code"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
//
//	@Summary		List tickets
//	@Description	List every ticket, optionally filtered by customer code
//	@Tags			tickets
//	@Produce		json
//	@Security		Bearer
//	@Param			codigo_cliente	query		string				false	"Customer code (CLI-n)"
//	@Success		200				{object}	utils.APIResponse	"Tickets"
//	@Failure		404				{object}	utils.APIResponse	"Filter customer not found"
//	@Router			/tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		CustomerCode: c.Query("codigo_cliente"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket handles PATCH /tickets/:code
//
//	@Summary		Update a ticket
//	@Description	Change the service label and/or replace the cart; a replaced cart is re-resolved against the catalogs
//	@Tags			tickets
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			code	path		string				true	"Ticket code (TIC-n)"
//	@Param			ticket	body		UpdateTicketRequest	true	"Fields to change"
//	@Success		200		{object}	utils.APIResponse	"Ticket updated successfully"
//	@Failure		400		{object}	utils.APIResponse	"Validation error or unknown item code"
//	@Failure		404		{object}	utils.APIResponse	"Ticket not found"
//	@Router			/tickets/{code} [patch]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(c.Param("code")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// DeleteTicket handles DELETE /tickets/:code
//
//	@Summary		Delete a ticket
//	@Tags			tickets
//	@Produce		json
//	@Security		Bearer
//	@Param			code	path		string				true	"Ticket code (TIC-n)"
//	@Success		204		{object}	nil					"Deleted"
//	@Failure		404		{object}	utils.APIResponse	"Ticket not found"
//	@Router			/tickets/{code} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketCode: c.Param("code"),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
