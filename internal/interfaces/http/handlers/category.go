package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-gateway/internal/upstream"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	api *upstream.Client
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(api *upstream.Client) *CategoryHandler {
	return &CategoryHandler{api: api}
}

// ListCategories returns the flat category list
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.api.ListCategories(c.Request.Context(), middleware.GetAccessTokenFromContext(c))
	if err != nil {
		respondUpstreamError(c, err, "Categories not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// GetCategoryTree returns the nested category hierarchy
// @Router /categories/tree [get]
func (h *CategoryHandler) GetCategoryTree(c *gin.Context) {
	tree, err := h.api.CategoryTree(c.Request.Context(), middleware.GetAccessTokenFromContext(c))
	if err != nil {
		respondUpstreamError(c, err, "Categories not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category tree retrieved successfully",
		"data":    tree,
	})
}
