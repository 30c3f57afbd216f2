package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/domain/cart"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-gateway/internal/upstream"
)

// CartHandler handles shopping cart HTTP requests
type CartHandler struct {
	cartService *cart.Service
	api         *upstream.Client
	config      *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(redisClient *redis.Client, api *upstream.Client, cfg *config.Config) *CartHandler {
	store := cart.NewRedisStore(redisClient, cfg.Cart.TTL)
	return &CartHandler{
		cartService: cart.NewService(store),
		api:         api,
		config:      cfg,
	}
}

// AddToCartRequest represents the payload for adding a product to the cart
type AddToCartRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// UpdateQuantityRequest represents the payload for changing a line quantity
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// GetCart retrieves the current cart
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	owner := h.ownerKey(c)

	resp, err := h.cartService.Get(c.Request.Context(), owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    resp,
	})
}

// AddToCart adds a product to the cart using a fresh stock snapshot
// @Router /cart/items [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.api.GetProduct(c.Request.Context(), middleware.GetAccessTokenFromContext(c), req.ProductID)
	if err != nil {
		if upstream.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load product",
		})
		return
	}

	owner := h.ownerKey(c)
	resp, err := h.cartService.Add(c.Request.Context(), owner, *product, req.Quantity)
	if err != nil {
		if err == cart.ErrOutOfStock {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Product is out of stock",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add item to cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    resp,
	})
}

// UpdateCartItem changes the quantity of a cart line
// @Router /cart/items/{id} [put]
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	productID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	owner := h.ownerKey(c)
	resp, err := h.cartService.UpdateQuantity(c.Request.Context(), owner, productID, req.Quantity)
	if err != nil {
		if err == cart.ErrItemNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Item not found in cart",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    resp,
	})
}

// RemoveFromCart removes a product from the cart
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	productID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	owner := h.ownerKey(c)
	resp, err := h.cartService.Remove(c.Request.Context(), owner, productID)
	if err != nil {
		if err == cart.ErrItemNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Item not found in cart",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove item from cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    resp,
	})
}

// ClearCart removes every item from the cart
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	owner := h.ownerKey(c)
	if err := h.cartService.Clear(c.Request.Context(), owner); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// ownerKey resolves the cart owner, preferring the authenticated customer
// over the anonymous session.
func (h *CartHandler) ownerKey(c *gin.Context) string {
	customerID, _ := middleware.GetCustomerIDFromContext(c)
	return cart.OwnerKey(customerID, h.getOrCreateSessionID(c))
}

// getOrCreateSessionID gets the session ID from the cookie or creates a new one
func (h *CartHandler) getOrCreateSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie("session_id")
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()

		// Session cookie lasts 24 hours
		c.SetCookie("session_id", sessionID, 86400, "/", "", false, true)
	}

	return sessionID
}
