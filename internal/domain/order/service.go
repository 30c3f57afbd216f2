// internal/domain/order/service.go
package order

import (
	"context"

	"github.com/your-org/storefront-gateway/internal/upstream"
)

// Service handles order retrieval and cancellation requests. Status
// transitions are computed nowhere in this package: the gateway forwards
// the request and reflects whatever the commerce API answers.
type Service struct {
	api *upstream.Client
}

// NewService creates a new order service
func NewService(api *upstream.Client) *Service {
	return &Service{api: api}
}

// View is an order decorated with the cancel affordance for the UI
type View struct {
	upstream.Order
	CanCancel bool `json:"canCancel"`
}

// CanBeCancelled reports whether the cancel control should be offered for
// an order. This only gates the UI affordance; the upstream still decides
// whether the transition is allowed.
func CanBeCancelled(o upstream.Order) bool {
	switch o.Status {
	case upstream.OrderStatusDraft, upstream.OrderStatusPending, upstream.OrderStatusProcessing:
		return true
	}
	return false
}

// List retrieves the calling customer's orders
func (s *Service) List(ctx context.Context, token string) ([]View, *upstream.Pagination, error) {
	orders, pagination, err := s.api.ListOrders(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	views := make([]View, len(orders))
	for i, o := range orders {
		views[i] = View{Order: o, CanCancel: CanBeCancelled(o)}
	}
	return views, pagination, nil
}

// Get retrieves a single order
func (s *Service) Get(ctx context.Context, token string, id uint) (*View, error) {
	o, err := s.api.GetOrder(ctx, token, id)
	if err != nil {
		return nil, err
	}
	return &View{Order: *o, CanCancel: CanBeCancelled(*o)}, nil
}

// Cancel requests cancellation of an order with an optional reason and
// returns the upstream's authoritative view of the order afterwards
func (s *Service) Cancel(ctx context.Context, token string, id uint, reason string) (*View, error) {
	o, err := s.api.CancelOrder(ctx, token, id, reason)
	if err != nil {
		return nil, err
	}
	return &View{Order: *o, CanCancel: CanBeCancelled(*o)}, nil
}
