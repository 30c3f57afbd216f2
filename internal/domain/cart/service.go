// internal/domain/cart/service.go
package cart

import (
	"context"
	"time"

	"github.com/your-org/storefront-gateway/internal/upstream"
)

// Service handles cart business logic over snapshot storage
type Service struct {
	store Store
}

// NewService creates a new cart service
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Response is a cart with its computed totals
type Response struct {
	Items     []Item    `json:"items"`
	Totals    Totals    `json:"totals"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnerKey derives the storage key for a cart: the customer id for
// authenticated sessions, the anonymous session id otherwise.
func OwnerKey(customerID, sessionID string) string {
	if customerID != "" {
		return "customer:" + customerID
	}
	return "session:" + sessionID
}

// Get retrieves the owner's cart
func (s *Service) Get(ctx context.Context, owner string) (*Response, error) {
	cart, err := s.store.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	return s.respond(cart), nil
}

// Add puts a product snapshot in the cart. Adding a product already
// present merges quantities; the merged quantity is clamped to the stock
// captured in the snapshot.
func (s *Service) Add(ctx context.Context, owner string, product upstream.Product, quantity int) (*Response, error) {
	if product.Quantity <= 0 {
		return nil, ErrOutOfStock
	}

	cart, err := s.store.Load(ctx, owner)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ID == product.ID {
			newQuantity := cart.Items[i].Quantity + quantity
			if newQuantity > cart.Items[i].Stock {
				newQuantity = cart.Items[i].Stock
			}
			cart.Items[i].Quantity = newQuantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, NewItem(product, quantity))
	}

	cart.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(ctx, owner, cart); err != nil {
		return nil, err
	}
	return s.respond(cart), nil
}

// UpdateQuantity sets the quantity of a cart item, clamped to the item's
// snapshot stock. Quantity zero removes the item.
func (s *Service) UpdateQuantity(ctx context.Context, owner string, productID uint, quantity int) (*Response, error) {
	cart, err := s.store.Load(ctx, owner)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ID != productID {
			continue
		}
		found = true
		if quantity <= 0 {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		} else {
			if quantity > cart.Items[i].Stock {
				quantity = cart.Items[i].Stock
			}
			cart.Items[i].Quantity = quantity
		}
		break
	}
	if !found {
		return nil, ErrItemNotFound
	}

	cart.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(ctx, owner, cart); err != nil {
		return nil, err
	}
	return s.respond(cart), nil
}

// Remove deletes an item from the cart
func (s *Service) Remove(ctx context.Context, owner string, productID uint) (*Response, error) {
	return s.UpdateQuantity(ctx, owner, productID, 0)
}

// Clear removes the whole cart, as on checkout completion
func (s *Service) Clear(ctx context.Context, owner string) error {
	return s.store.Delete(ctx, owner)
}

func (s *Service) respond(cart *Cart) *Response {
	return &Response{
		Items:     cart.Items,
		Totals:    calculateTotals(cart.Items),
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}
}

func calculateTotals(items []Item) Totals {
	totals := Totals{ItemCount: len(items)}
	for _, item := range items {
		totals.TotalQuantity += item.Quantity
		totals.Subtotal += item.Price * float64(item.Quantity)
		if item.OriginalPrice != nil && *item.OriginalPrice > item.Price {
			totals.Savings += (*item.OriginalPrice - item.Price) * float64(item.Quantity)
		}
	}
	totals.Total = totals.Subtotal
	return totals
}
