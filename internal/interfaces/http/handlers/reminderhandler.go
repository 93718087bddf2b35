package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"extinsia/internal/application/notification"
	"extinsia/internal/shared/errors"
	"extinsia/internal/shared/logger"
	"extinsia/internal/shared/utils"
)

type ReminderHandler struct {
	reminderService *notification.ReminderService
	logger          logger.Interface
}

func NewReminderHandler(reminderService *notification.ReminderService) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
		logger:          logger.NewLogger(),
	}
}

type RunRemindersRequest struct {
	Month string `json:"mes"`
}

// RunReminders handles POST /reminders/run. An empty month targets the
// next calendar month.
func (h *ReminderHandler) RunReminders(c *gin.Context) {
	var req RunRemindersRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for run reminders", "error", err)
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
			return
		}
	}

	result, err := h.reminderService.Run(c.Request.Context(), req.Month)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reminders dispatched", result)
}
