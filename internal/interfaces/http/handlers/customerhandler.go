package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appcustomer "extinsia/internal/application/customer"
	"extinsia/internal/shared/errors"
	"extinsia/internal/shared/logger"
	"extinsia/internal/shared/utils"
)

type CustomerHandler struct {
	customerService *appcustomer.Service
	logger          logger.Interface
}

func NewCustomerHandler(customerService *appcustomer.Service) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger.NewLogger(),
	}
}

type CreateCustomerRequest struct {
	CompanyName  string `json:"nombre_empresa" binding:"required" validate:"required,min=2,max=255"`
	ManagerName  string `json:"nombre_encargado" binding:"required" validate:"required,min=2,max=255"`
	Address      string `json:"direccion" binding:"required" validate:"required"`
	Phone        string `json:"celular" binding:"required" validate:"required,min=7,max=20"`
	RenewalMonth string `json:"mes_vencimiento" binding:"required" validate:"required"`
}

// UpdateCustomerRequest carries a partial update: empty fields keep the
// stored values.
type UpdateCustomerRequest struct {
	CompanyName  string `json:"nombre_empresa"`
	ManagerName  string `json:"nombre_encargado"`
	Address      string `json:"direccion"`
	Phone        string `json:"celular"`
	RenewalMonth string `json:"mes_vencimiento"`
}

// CreateCustomer handles POST /customers
//
//	@Summary		Register a customer
//	@Description	Register a company with its manager, contact data and yearly renewal month
//	@Tags			customers
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			customer	body		CreateCustomerRequest	true	"Customer data"
//	@Success		201			{object}	utils.APIResponse		"Customer created"
//	@Failure		400			{object}	utils.APIResponse		"Validation error"
//	@Failure		409			{object}	utils.APIResponse		"Company name already registered"
//	@Router			/customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create customer", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.customerService.Create(c.Request.Context(), appcustomer.CreateCustomerRequest{
		CompanyName:  req.CompanyName,
		ManagerName:  req.ManagerName,
		Address:      req.Address,
		Phone:        req.Phone,
		RenewalMonth: req.RenewalMonth,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Customer created successfully")
}

// ListCustomers handles GET /customers. A nombre query switches to a
// case-insensitive search over company and manager names; a
// mes_vencimiento query lists the customers due that month.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	ctx := c.Request.Context()

	if query := c.Query("nombre"); query != "" {
		result, err := h.customerService.Search(ctx, query)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", result)
		return
	}

	if month := c.Query("mes_vencimiento"); month != "" {
		result, err := h.customerService.ListByRenewalMonth(ctx, month)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", result)
		return
	}

	result, err := h.customerService.List(ctx)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetCustomer handles GET /customers/:code
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	result, err := h.customerService.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateCustomer handles PATCH /customers/:code
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update customer", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.customerService.Update(c.Request.Context(), c.Param("code"), appcustomer.UpdateCustomerRequest{
		CompanyName:  req.CompanyName,
		ManagerName:  req.ManagerName,
		Address:      req.Address,
		Phone:        req.Phone,
		RenewalMonth: req.RenewalMonth,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Customer updated successfully", result)
}

// DeleteCustomer handles DELETE /customers/:code
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.customerService.Delete(c.Request.Context(), c.Param("code")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
