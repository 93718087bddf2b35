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

type ProductHandler struct {
	productService *appcatalog.ProductService
	logger         logger.Interface
}

func NewProductHandler(productService *appcatalog.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger.NewLogger(),
	}
}

type CreateProductRequest struct {
	Name  string `json:"nombre" binding:"required"`
	Price int64  `json:"precio"`
}

type UpdateProductRequest struct {
	Name  string `json:"nombre"`
	Price *int64 `json:"precio"`
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create product", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.productService.Create(c.Request.Context(), appcatalog.CreateProductRequest{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Product created successfully")
}

// ListProducts handles GET /products. Query params switch to the search
// variants: nombre (partial name), precio_min/precio_max (price range).
func (h *ProductHandler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if query := c.Query("nombre"); query != "" {
		result, err := h.productService.Search(ctx, query)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", result)
		return
	}

	if c.Query("precio_min") != "" || c.Query("precio_max") != "" {
		min, err := strconv.ParseInt(c.DefaultQuery("precio_min", "0"), 10, 64)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("precio_min must be a number"))
			return
		}
		var max *int64
		if raw := c.Query("precio_max"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				utils.ErrorResponseWithError(c, errors.NewValidationError("precio_max must be a number"))
				return
			}
			max = &parsed
		}

		result, err := h.productService.SearchByPriceRange(ctx, min, max)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", result)
		return
	}

	result, err := h.productService.List(ctx)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetProduct handles GET /products/:code
func (h *ProductHandler) GetProduct(c *gin.Context) {
	result, err := h.productService.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateProduct handles PATCH /products/:code
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update product", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.productService.Update(c.Request.Context(), c.Param("code"), appcatalog.UpdateProductRequest{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product updated successfully", result)
}

// DeleteProduct handles DELETE /products/:code
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productService.Delete(c.Request.Context(), c.Param("code")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
