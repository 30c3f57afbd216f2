// internal/domain/wishlist/service.go
package wishlist

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-gateway/internal/upstream"
)

// Service handles wishlist reconciliation: the remote wishlist resources
// live on the commerce API, and each customer's denormalized mirror lives
// in the MirrorStore. Mutations go remote-first; the mirror only changes
// after the upstream call succeeds.
type Service struct {
	api   *upstream.Client
	store MirrorStore

	// One outstanding toggle per (customer, product). Toggles for
	// different products are not serialized against each other.
	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewService creates a new wishlist service
func NewService(api *upstream.Client, store MirrorStore) *Service {
	return &Service{
		api:      api,
		store:    store,
		inflight: make(map[string]struct{}),
	}
}

// Items returns the customer's local mirror
func (s *Service) Items(ctx context.Context, customerID string) ([]Item, error) {
	return s.store.Items(ctx, customerID)
}

// Count returns the number of items in the customer's mirror
func (s *Service) Count(ctx context.Context, customerID string) (int, error) {
	items, err := s.store.Items(ctx, customerID)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Contains reports whether a product is present in the customer's mirror
func (s *Service) Contains(ctx context.Context, customerID string, productID uint) (bool, error) {
	items, err := s.store.Items(ctx, customerID)
	if err != nil {
		return false, err
	}
	id := strconv.FormatUint(uint64(productID), 10)
	for _, item := range items {
		if item.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// ResolveTargetWishlist picks the wishlist an add should go to: the first
// of the customer's existing wishlists, or a lazily created private
// wishlist named "My Wishlist" when none exist. Failure is reported to the
// caller, who decides whether a degraded sentinel is acceptable.
func (s *Service) ResolveTargetWishlist(ctx context.Context, token string) (string, error) {
	wishlists, err := s.api.ListWishlists(ctx, token)
	if err != nil {
		return "", fmt.Errorf("failed to resolve target wishlist: %w", err)
	}
	if len(wishlists) > 0 {
		return wishlists[0].ID, nil
	}

	created, err := s.api.CreateWishlist(ctx, token, &upstream.WishlistInput{
		Name:     DefaultWishlistName,
		IsPublic: false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create default wishlist: %w", err)
	}
	return created.ID, nil
}

// Add adds a product to the customer's wishlist. The target wishlist is
// resolved first; if resolution fails the add degrades to the sentinel
// wishlist id rather than aborting. On upstream success the snapshot is
// inserted into the mirror idempotently; on failure the mirror is left
// untouched.
func (s *Service) Add(ctx context.Context, token, customerID string, product upstream.Product) (*Item, error) {
	if err := s.beginToggle(customerID, product.ID); err != nil {
		return nil, err
	}
	defer s.endToggle(customerID, product.ID)

	wishlistID, err := s.ResolveTargetWishlist(ctx, token)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"product_id":  product.ID,
		}).WithError(err).Warn("Wishlist resolution failed, degrading to sentinel wishlist")
		wishlistID = SentinelWishlistID
	}

	if _, err := s.api.AddWishlistItem(ctx, token, wishlistID, &upstream.WishlistItemInput{
		ProductID: product.ID,
	}); err != nil {
		return nil, err
	}

	item := NewItem(product)
	items, err := s.store.Items(ctx, customerID)
	if err != nil {
		return nil, err
	}
	for _, existing := range items {
		if existing.ID == item.ID {
			// Already mirrored; adding again is a no-op
			return &existing, nil
		}
	}
	items = append(items, item)
	if err := s.store.Save(ctx, customerID, items); err != nil {
		return nil, err
	}
	return &item, nil
}

// Remove removes a product from the customer's wishlist. The underlying
// wishlist item is located by fetching the default wishlist resource and
// scanning its items for the one pointing at the product; deletion is then
// keyed by that item's own id, because the endpoint identifies items, not
// products. Any failing step fails the operation and leaves the mirror
// unchanged.
func (s *Service) Remove(ctx context.Context, token, customerID string, productID uint) error {
	if err := s.beginToggle(customerID, productID); err != nil {
		return err
	}
	defer s.endToggle(customerID, productID)

	remote, err := s.api.GetWishlist(ctx, token, SentinelWishlistID)
	if err != nil {
		return err
	}

	var target *upstream.WishlistItem
	for i := range remote.Items {
		entry := &remote.Items[i]
		if entry.ProductID == productID ||
			(entry.Product != nil && entry.Product.ID == productID) {
			target = entry
			break
		}
	}
	if target == nil {
		return ErrItemNotFound
	}

	if err := s.api.DeleteWishlistItem(ctx, token, remote.ID, target.ID); err != nil {
		return err
	}

	items, err := s.store.Items(ctx, customerID)
	if err != nil {
		return err
	}
	id := strconv.FormatUint(uint64(productID), 10)
	kept := make([]Item, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return s.store.Save(ctx, customerID, kept)
}

func toggleKey(customerID string, productID uint) string {
	return fmt.Sprintf("%s:%d", customerID, productID)
}

func (s *Service) beginToggle(customerID string, productID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := toggleKey(customerID, productID)
	if _, busy := s.inflight[key]; busy {
		return ErrToggleInFlight
	}
	s.inflight[key] = struct{}{}
	return nil
}

func (s *Service) endToggle(customerID string, productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, toggleKey(customerID, productID))
}
