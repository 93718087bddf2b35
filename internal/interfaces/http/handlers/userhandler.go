package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appuser "extinsia/internal/application/user"
	"extinsia/internal/shared/errors"
	"extinsia/internal/shared/logger"
	"extinsia/internal/shared/utils"
)

type UserHandler struct {
	userService *appuser.Service
	logger      logger.Interface
}

func NewUserHandler(userService *appuser.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger.NewLogger(),
	}
}

type RegisterUserRequest struct {
	Name     string `json:"nombre" binding:"required" validate:"required,min=2,max=120"`
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
	Password string `json:"contrasena" binding:"required" validate:"required,min=8"`
	Role     string `json:"rol" validate:"omitempty,oneof=admin staff"`
}

// UpdateUserRequest carries a partial account update keyed by the
// current email. Empty fields keep the stored values.
type UpdateUserRequest struct {
	Name     string `json:"nombre" validate:"omitempty,min=2,max=120"`
	NewEmail string `json:"nuevo_email" validate:"omitempty,email"`
	Password string `json:"contrasena" validate:"omitempty,min=8"`
}

// RegisterUser handles POST /users
//
//	@Summary		Register an account
//	@Description	Create a staff or admin account; unknown roles fall back to staff
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			user	body		RegisterUserRequest	true	"Account data"
//	@Success		201		{object}	utils.APIResponse	"Account created"
//	@Failure		400		{object}	utils.APIResponse	"Validation error"
//	@Failure		409		{object}	utils.APIResponse	"Email already registered"
//	@Router			/users [post]
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register user", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.userService.Register(c.Request.Context(), appuser.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Account created successfully")
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.userService.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetUser handles GET /users/:code
func (h *UserHandler) GetUser(c *gin.Context) {
	result, err := h.userService.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateUser handles PATCH /users/email/:email
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update user", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.userService.Update(c.Request.Context(), c.Param("email"), appuser.UpdateRequest{
		Name:     req.Name,
		NewEmail: req.NewEmail,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Account updated successfully", result)
}

// DeleteUser handles DELETE /users/email/:email
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.Delete(c.Request.Context(), c.Param("email")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
