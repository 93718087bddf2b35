package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appuser "extinsia/internal/application/user"
	"extinsia/internal/shared/errors"
	"extinsia/internal/shared/logger"
	"extinsia/internal/shared/utils"
)

type AuthHandler struct {
	userService *appuser.Service
	logger      logger.Interface
}

func NewAuthHandler(userService *appuser.Service) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		logger:      logger.NewLogger(),
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"contrasena" binding:"required"`
}

// Login handles POST /auth/login
//
//	@Summary		Log in
//	@Description	Exchange email and password for an access/refresh token pair
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		LoginRequest		true	"Login credentials"
//	@Success		200			{object}	utils.APIResponse	"Tokens and account profile"
//	@Failure		401			{object}	utils.APIResponse	"Invalid email or password"
//	@Failure		403			{object}	utils.APIResponse	"Account temporarily locked"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.userService.Login(c.Request.Context(), appuser.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh handles POST /auth/refresh
//
//	@Summary		Refresh tokens
//	@Description	Exchange a refresh token for a new access/refresh pair
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			token	body		RefreshRequest		true	"Refresh token"
//	@Success		200		{object}	utils.APIResponse	"New token pair"
//	@Failure		401		{object}	utils.APIResponse	"Invalid refresh token"
//	@Router			/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for token refresh", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.userService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Token refreshed", result)
}
