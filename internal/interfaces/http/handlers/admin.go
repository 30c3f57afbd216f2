package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-gateway/internal/upstream"
)

// AdminHandler handles back-office catalog management requests. Every
// route behind it requires an admin token; the gateway forwards the
// caller's own bearer so the backend enforces authorization too.
type AdminHandler struct {
	api *upstream.Client
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(api *upstream.Client) *AdminHandler {
	return &AdminHandler{api: api}
}

// ListProducts returns the unfiltered catalog, drafts included
// @Router /admin/products [get]
func (h *AdminHandler) ListProducts(c *gin.Context) {
	products, pagination, err := h.api.AdminListProducts(c.Request.Context(), middleware.GetAccessTokenFromContext(c))
	if err != nil {
		respondUpstreamError(c, err, "Products not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products":   products,
			"pagination": pagination,
		},
	})
}

// ListSupplierProducts returns the products belonging to one supplier
// @Router /admin/suppliers/{id}/products [get]
func (h *AdminHandler) ListSupplierProducts(c *gin.Context) {
	supplierID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	products, pagination, err := h.api.SupplierProducts(c.Request.Context(), middleware.GetAccessTokenFromContext(c), supplierID)
	if err != nil {
		respondUpstreamError(c, err, "Supplier not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Supplier products retrieved successfully",
		"data": gin.H{
			"products":   products,
			"pagination": pagination,
		},
	})
}

// ListOrders returns every order across all customers
// @Router /admin/orders [get]
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, pagination, err := h.api.AdminListOrders(c.Request.Context(), middleware.GetAccessTokenFromContext(c))
	if err != nil {
		respondUpstreamError(c, err, "Orders not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data": gin.H{
			"orders":     orders,
			"pagination": pagination,
		},
	})
}

// CreateProduct creates a product
// @Router /admin/products [post]
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var input upstream.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.api.CreateProduct(c.Request.Context(), middleware.GetAccessTokenFromContext(c), &input)
	if err != nil {
		respondUpstreamError(c, err, "Product not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"data":    product,
	})
}

// UpdateProduct updates a product
// @Router /admin/products/{id} [put]
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var input upstream.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.api.UpdateProduct(c.Request.Context(), middleware.GetAccessTokenFromContext(c), id, &input)
	if err != nil {
		respondUpstreamError(c, err, "Product not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"data":    product,
	})
}

// DeleteProduct deletes a product
// @Router /admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.api.DeleteProduct(c.Request.Context(), middleware.GetAccessTokenFromContext(c), id); err != nil {
		respondUpstreamError(c, err, "Product not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// CreateCategory creates a category
// @Router /admin/categories [post]
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var input upstream.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	category, err := h.api.CreateCategory(c.Request.Context(), middleware.GetAccessTokenFromContext(c), &input)
	if err != nil {
		respondUpstreamError(c, err, "Category not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Category created successfully",
		"data":    category,
	})
}

// UpdateCategory updates a category
// @Router /admin/categories/{id} [put]
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var input upstream.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	category, err := h.api.UpdateCategory(c.Request.Context(), middleware.GetAccessTokenFromContext(c), id, &input)
	if err != nil {
		respondUpstreamError(c, err, "Category not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category updated successfully",
		"data":    category,
	})
}

// DeleteCategory deletes a category
// @Router /admin/categories/{id} [delete]
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.api.DeleteCategory(c.Request.Context(), middleware.GetAccessTokenFromContext(c), id); err != nil {
		respondUpstreamError(c, err, "Category not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category deleted successfully",
	})
}
