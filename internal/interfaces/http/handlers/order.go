package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/storefront-gateway/internal/domain/order"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-gateway/internal/upstream"
)

// OrderHandler handles customer order HTTP requests
type OrderHandler struct {
	orderService *order.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(api *upstream.Client) *OrderHandler {
	return &OrderHandler{
		orderService: order.NewService(api),
	}
}

// CancelOrderRequest carries the optional cancellation reason
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// ListOrders returns the customer's order history
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, pagination, err := h.orderService.List(c.Request.Context(), middleware.GetAccessTokenFromContext(c))
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

// GetOrder returns a single order
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	view, err := h.orderService.Get(c.Request.Context(), middleware.GetAccessTokenFromContext(c), id)
	if err != nil {
		respondUpstreamError(c, err, "Order not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    view,
	})
}

// CancelOrder cancels an order that has not shipped yet
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	// The body is optional; an empty reason is fine
	var req CancelOrderRequest
	_ = c.ShouldBindJSON(&req)

	view, err := h.orderService.Cancel(c.Request.Context(), middleware.GetAccessTokenFromContext(c), id, req.Reason)
	if err != nil {
		if upstream.IsConflict(err) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order can no longer be cancelled",
			})
			return
		}
		respondUpstreamError(c, err, "Order not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order cancelled successfully",
		"data":    view,
	})
}
