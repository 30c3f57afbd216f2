// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists cart snapshots per owner key
type Store interface {
	Load(ctx context.Context, owner string) (*Cart, error)
	Save(ctx context.Context, owner string, cart *Cart) error
	Delete(ctx context.Context, owner string) error
}

// RedisStore keeps carts as JSON blobs in Redis with a TTL
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed cart store
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func cartKey(owner string) string {
	return fmt.Sprintf("cart:%s", owner)
}

// Load retrieves a cart; a missing key yields a fresh empty cart
func (s *RedisStore) Load(ctx context.Context, owner string) (*Cart, error) {
	data, err := s.client.Get(ctx, cartKey(owner)).Result()
	if err == redis.Nil {
		now := time.Now().UTC()
		return &Cart{
			Items:     []Item{},
			CreatedAt: now,
			UpdatedAt: now,
		}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &cart, nil
}

// Save stores a cart, refreshing its TTL
func (s *RedisStore) Save(ctx context.Context, owner string, cart *Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(owner), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Delete removes a cart entirely
func (s *RedisStore) Delete(ctx context.Context, owner string) error {
	return s.client.Del(ctx, cartKey(owner)).Err()
}
