// internal/domain/wishlist/store.go
package wishlist

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const mirrorTTL = 30 * 24 * time.Hour

// MirrorStore persists each customer's denormalized wishlist mirror
type MirrorStore interface {
	Items(ctx context.Context, customerID string) ([]Item, error)
	Save(ctx context.Context, customerID string, items []Item) error
}

// RedisMirrorStore keeps wishlist mirrors as JSON blobs in Redis
type RedisMirrorStore struct {
	client *redis.Client
}

// NewRedisMirrorStore creates a Redis-backed mirror store
func NewRedisMirrorStore(client *redis.Client) *RedisMirrorStore {
	return &RedisMirrorStore{client: client}
}

func mirrorKey(customerID string) string {
	return fmt.Sprintf("wishlist:mirror:%s", customerID)
}

// Items loads a customer's mirror; a missing key is an empty mirror
func (s *RedisMirrorStore) Items(ctx context.Context, customerID string) ([]Item, error) {
	data, err := s.client.Get(ctx, mirrorKey(customerID)).Result()
	if err == redis.Nil {
		return []Item{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load wishlist mirror: %w", err)
	}

	var items []Item
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, fmt.Errorf("failed to decode wishlist mirror: %w", err)
	}
	return items, nil
}

// Save replaces a customer's mirror
func (s *RedisMirrorStore) Save(ctx context.Context, customerID string, items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode wishlist mirror: %w", err)
	}
	if err := s.client.Set(ctx, mirrorKey(customerID), data, mirrorTTL).Err(); err != nil {
		return fmt.Errorf("failed to save wishlist mirror: %w", err)
	}
	return nil
}
