// internal/upstream/orders.go
package upstream

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// OrderStatus is the server-owned order status enumeration. The gateway
// never computes transitions; it only requests them and reflects the
// upstream's authoritative response.
type OrderStatus string

const (
	OrderStatusDraft      OrderStatus = "draft"
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// PaymentStatus is the server-owned payment status enumeration
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
	PaymentStatusAuthorized PaymentStatus = "authorized"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
)

// Order is an order record as the commerce API transmits it
type Order struct {
	ID            uint          `json:"id"`
	OrderNumber   string        `json:"orderNumber"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Subtotal      Amount        `json:"subtotal"`
	ShippingCost  Amount        `json:"shippingCost"`
	TaxAmount     Amount        `json:"taxAmount"`
	DiscountTotal Amount        `json:"discountTotal"`
	Total         Amount        `json:"total"`
	Currency      string        `json:"currency"`
	Items         []OrderItem   `json:"items,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// OrderItem is a line item on an order
type OrderItem struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"productId"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitPrice Amount `json:"unitPrice"`
	Total     Amount `json:"total"`
}

// ListOrders retrieves the calling customer's orders
func (c *Client) ListOrders(ctx context.Context, token string) ([]Order, *Pagination, error) {
	var orders []Order
	pagination, err := c.do(ctx, http.MethodGet, "/orders", token, nil, &orders)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, pagination, nil
}

// AdminListOrders retrieves every order across all customers. Requires
// an admin token.
func (c *Client) AdminListOrders(ctx context.Context, token string) ([]Order, *Pagination, error) {
	var orders []Order
	pagination, err := c.do(ctx, http.MethodGet, "/orders/admin/all", token, nil, &orders)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list all orders: %w", err)
	}
	return orders, pagination, nil
}

// GetOrder retrieves a single order
func (c *Client) GetOrder(ctx context.Context, token string, id uint) (*Order, error) {
	var order Order
	if _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), token, nil, &order); err != nil {
		return nil, fmt.Errorf("failed to get order %d: %w", id, err)
	}
	return &order, nil
}

// CancelOrder requests cancellation of an order. The reason is optional;
// the upstream decides whether the transition is allowed.
func (c *Client) CancelOrder(ctx context.Context, token string, id uint, reason string) (*Order, error) {
	var body interface{}
	if reason != "" {
		body = map[string]string{"reason": reason}
	}
	var order Order
	if _, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/cancel", id), token, body, &order); err != nil {
		return nil, fmt.Errorf("failed to cancel order %d: %w", id, err)
	}
	return &order, nil
}
