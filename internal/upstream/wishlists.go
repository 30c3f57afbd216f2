// internal/upstream/wishlists.go
package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListWishlists retrieves every wishlist belonging to the calling customer
func (c *Client) ListWishlists(ctx context.Context, token string) ([]Wishlist, error) {
	var wishlists []Wishlist
	if _, err := c.do(ctx, http.MethodGet, "/wishlists", token, nil, &wishlists); err != nil {
		return nil, fmt.Errorf("failed to list wishlists: %w", err)
	}
	return wishlists, nil
}

// GetWishlist retrieves one wishlist, including its items
func (c *Client) GetWishlist(ctx context.Context, token, id string) (*Wishlist, error) {
	var wishlist Wishlist
	path := "/wishlists/" + url.PathEscape(id)
	if _, err := c.do(ctx, http.MethodGet, path, token, nil, &wishlist); err != nil {
		return nil, fmt.Errorf("failed to get wishlist %s: %w", id, err)
	}
	return &wishlist, nil
}

// CreateWishlist creates a wishlist for the calling customer
func (c *Client) CreateWishlist(ctx context.Context, token string, input *WishlistInput) (*Wishlist, error) {
	var wishlist Wishlist
	if _, err := c.do(ctx, http.MethodPost, "/wishlists", token, input, &wishlist); err != nil {
		return nil, fmt.Errorf("failed to create wishlist: %w", err)
	}
	return &wishlist, nil
}

// UpdateWishlist updates a wishlist's name, description or visibility
func (c *Client) UpdateWishlist(ctx context.Context, token, id string, input *WishlistInput) (*Wishlist, error) {
	var wishlist Wishlist
	path := "/wishlists/" + url.PathEscape(id)
	if _, err := c.do(ctx, http.MethodPut, path, token, input, &wishlist); err != nil {
		return nil, fmt.Errorf("failed to update wishlist %s: %w", id, err)
	}
	return &wishlist, nil
}

// DeleteWishlist deletes a wishlist
func (c *Client) DeleteWishlist(ctx context.Context, token, id string) error {
	path := "/wishlists/" + url.PathEscape(id)
	if _, err := c.do(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("failed to delete wishlist %s: %w", id, err)
	}
	return nil
}

// AddWishlistItem adds a product to a wishlist
func (c *Client) AddWishlistItem(ctx context.Context, token, wishlistID string, input *WishlistItemInput) (*WishlistItem, error) {
	var item WishlistItem
	path := "/wishlists/" + url.PathEscape(wishlistID) + "/items"
	if _, err := c.do(ctx, http.MethodPost, path, token, input, &item); err != nil {
		return nil, fmt.Errorf("failed to add item to wishlist %s: %w", wishlistID, err)
	}
	return &item, nil
}

// UpdateWishlistItem updates the notes on a wishlist item
func (c *Client) UpdateWishlistItem(ctx context.Context, token, wishlistID, itemID string, notes string) (*WishlistItem, error) {
	var item WishlistItem
	body := map[string]string{"notes": notes}
	path := "/wishlists/" + url.PathEscape(wishlistID) + "/items/" + url.PathEscape(itemID)
	if _, err := c.do(ctx, http.MethodPut, path, token, body, &item); err != nil {
		return nil, fmt.Errorf("failed to update wishlist item %s: %w", itemID, err)
	}
	return &item, nil
}

// DeleteWishlistItem removes an item from a wishlist. The endpoint is keyed
// by the wishlist item's own id, not the product id it points at.
func (c *Client) DeleteWishlistItem(ctx context.Context, token, wishlistID, itemID string) error {
	path := "/wishlists/" + url.PathEscape(wishlistID) + "/items/" + url.PathEscape(itemID)
	if _, err := c.do(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("failed to delete wishlist item %s: %w", itemID, err)
	}
	return nil
}

// MoveWishlistItem moves an item into another wishlist
func (c *Client) MoveWishlistItem(ctx context.Context, token, wishlistID, itemID, targetWishlistID string) error {
	body := map[string]string{"targetWishlistId": targetWishlistID}
	path := "/wishlists/" + url.PathEscape(wishlistID) + "/items/" + url.PathEscape(itemID) + "/move"
	if _, err := c.do(ctx, http.MethodPost, path, token, body, nil); err != nil {
		return fmt.Errorf("failed to move wishlist item %s: %w", itemID, err)
	}
	return nil
}
