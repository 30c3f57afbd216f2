package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/your-org/storefront-gateway/internal/domain/wishlist"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-gateway/internal/upstream"
)

// WishlistHandler handles wishlist HTTP requests
type WishlistHandler struct {
	wishlistService *wishlist.Service
	api             *upstream.Client
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(redisClient *redis.Client, api *upstream.Client) *WishlistHandler {
	store := wishlist.NewRedisMirrorStore(redisClient)
	return &WishlistHandler{
		wishlistService: wishlist.NewService(api, store),
		api:             api,
	}
}

// AddWishlistItemRequest is the payload for saving a product
type AddWishlistItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
}

// GetItems returns the customer's saved products
// @Router /wishlist [get]
func (h *WishlistHandler) GetItems(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	items, err := h.wishlistService.Items(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve wishlist",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist retrieved successfully",
		"data": gin.H{
			"items": items,
			"count": len(items),
		},
	})
}

// GetCount returns how many products the customer has saved
// @Router /wishlist/count [get]
func (h *WishlistHandler) GetCount(c *gin.Context) {
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	count, err := h.wishlistService.Count(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve wishlist count",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist count retrieved successfully",
		"data":    gin.H{"count": count},
	})
}

// CheckItem reports whether a product is saved
// @Router /wishlist/check/{id} [get]
func (h *WishlistHandler) CheckItem(c *gin.Context) {
	productID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	customerID, _ := middleware.GetCustomerIDFromContext(c)
	saved, err := h.wishlistService.Contains(c.Request.Context(), customerID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to check wishlist",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist checked successfully",
		"data":    gin.H{"saved": saved},
	})
}

// AddItem saves a product to the customer's wishlist
// @Router /wishlist/items [post]
func (h *WishlistHandler) AddItem(c *gin.Context) {
	var req AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	token := middleware.GetAccessTokenFromContext(c)
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	product, err := h.api.GetProduct(c.Request.Context(), token, req.ProductID)
	if err != nil {
		respondUpstreamError(c, err, "Product not found")
		return
	}

	item, err := h.wishlistService.Add(c.Request.Context(), token, customerID, *product)
	if err != nil {
		h.respondWishlistError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product saved successfully",
		"data":    item,
	})
}

// RemoveItem removes a product from the customer's wishlist
// @Router /wishlist/items/{id} [delete]
func (h *WishlistHandler) RemoveItem(c *gin.Context) {
	productID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	token := middleware.GetAccessTokenFromContext(c)
	customerID, _ := middleware.GetCustomerIDFromContext(c)

	if err := h.wishlistService.Remove(c.Request.Context(), token, customerID, productID); err != nil {
		h.respondWishlistError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product removed successfully",
	})
}

func (h *WishlistHandler) respondWishlistError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wishlist.ErrToggleInFlight):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Wishlist update already in progress for this product",
		})
	case errors.Is(err, wishlist.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found in wishlist",
		})
	default:
		respondUpstreamError(c, err, "Wishlist not found")
	}
}
