package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/domain/catalog"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-gateway/internal/upstream"
)

// ProductHandler handles storefront catalog HTTP requests
type ProductHandler struct {
	catalogService *catalog.Service
	config         *config.Config
}

// NewProductHandler creates a new product handler
func NewProductHandler(api *upstream.Client, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		catalogService: catalog.NewService(api, cfg),
		config:         cfg,
	}
}

// ListProducts returns one page of the filtered, sorted catalog
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	req := &catalog.BrowseRequest{
		Filter: catalog.Filter{
			CategorySlug: c.Query("category"),
			MinPrice:     parsePriceQuery(c, "min_price"),
			MaxPrice:     parsePriceQuery(c, "max_price"),
			InStockOnly:  c.Query("in_stock") == "true",
			FeaturedOnly: c.Query("featured") == "true",
		},
		Sort: c.Query("sort"),
		Page: parsePageQuery(c),
	}

	resp, err := h.catalogService.Browse(c.Request.Context(), middleware.GetAccessTokenFromContext(c), req)
	if err != nil {
		respondUpstreamError(c, err, "Products not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    resp,
	})
}

// GetProduct returns the full detail view for a single product
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.catalogService.GetProduct(c.Request.Context(), middleware.GetAccessTokenFromContext(c), id)
	if err != nil {
		respondUpstreamError(c, err, "Product not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    detail,
	})
}

func parsePriceQuery(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

func parsePageQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return page
}
