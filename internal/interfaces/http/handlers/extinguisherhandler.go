package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appcatalog "extinsia/internal/application/catalog"
	"extinsia/internal/shared/errors"
	"extinsia/internal/shared/logger"
	"extinsia/internal/shared/utils"
)

type ExtinguisherHandler struct {
	extinguisherService *appcatalog.ExtinguisherService
	logger              logger.Interface
}

func NewExtinguisherHandler(extinguisherService *appcatalog.ExtinguisherService) *ExtinguisherHandler {
	return &ExtinguisherHandler{
		extinguisherService: extinguisherService,
		logger:              logger.NewLogger(),
	}
}

type CreateExtinguisherRequest struct {
	Name      string  `json:"nombre" binding:"required"`
	Price     int64   `json:"precio"`
	AgentType string  `json:"tipo" binding:"required"`
	Capacity  float64 `json:"capacidad" binding:"required"`
}

type UpdateExtinguisherRequest struct {
	Name      string   `json:"nombre"`
	Price     *int64   `json:"precio"`
	AgentType string   `json:"tipo"`
	Capacity  *float64 `json:"capacidad"`
}

// CreateExtinguisher handles POST /extinguishers
func (h *ExtinguisherHandler) CreateExtinguisher(c *gin.Context) {
	var req CreateExtinguisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create extinguisher", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.extinguisherService.Create(c.Request.Context(), appcatalog.CreateExtinguisherRequest{
		Name:      req.Name,
		Price:     req.Price,
		AgentType: req.AgentType,
		Capacity:  req.Capacity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Extinguisher created successfully")
}

// ListExtinguishers handles GET /extinguishers. Query params switch to
// the search variants: nombre (partial name), tipo (extinguishing
// agent), capacidad_min/capacidad_max (kg range).
func (h *ExtinguisherHandler) ListExtinguishers(c *gin.Context) {
	ctx := c.Request.Context()

	if query := c.Query("nombre"); query != "" {
		result, err := h.extinguisherService.Search(ctx, query)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", result)
		return
	}

	if agentType := c.Query("tipo"); agentType != "" {
		result, err := h.extinguisherService.SearchByAgentType(ctx, agentType)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", result)
		return
	}

	if c.Query("capacidad_min") != "" || c.Query("capacidad_max") != "" {
		min, err := strconv.ParseFloat(c.DefaultQuery("capacidad_min", "0"), 64)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("capacidad_min must be a number"))
			return
		}
		var max *float64
		if raw := c.Query("capacidad_max"); raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				utils.ErrorResponseWithError(c, errors.NewValidationError("capacidad_max must be a number"))
				return
			}
			max = &parsed
		}

		result, err := h.extinguisherService.SearchByCapacityRange(ctx, min, max)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", result)
		return
	}

	result, err := h.extinguisherService.List(ctx)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetExtinguisher handles GET /extinguishers/:code
func (h *ExtinguisherHandler) GetExtinguisher(c *gin.Context) {
	result, err := h.extinguisherService.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateExtinguisher handles PATCH /extinguishers/:code
func (h *ExtinguisherHandler) UpdateExtinguisher(c *gin.Context) {
	var req UpdateExtinguisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update extinguisher", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.extinguisherService.Update(c.Request.Context(), c.Param("code"), appcatalog.UpdateExtinguisherRequest{
		Name:      req.Name,
		Price:     req.Price,
		AgentType: req.AgentType,
		Capacity:  req.Capacity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Extinguisher updated successfully", result)
}

// DeleteExtinguisher handles DELETE /extinguishers/:code
func (h *ExtinguisherHandler) DeleteExtinguisher(c *gin.Context) {
	if err := h.extinguisherService.Delete(c.Request.Context(), c.Param("code")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
