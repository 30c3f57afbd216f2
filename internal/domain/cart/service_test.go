package cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-gateway/internal/upstream"
)

// memoryStore is an in-memory Store for tests
type memoryStore struct {
	carts map[string]*Cart
}

func newMemoryStore() *memoryStore {
	return &memoryStore{carts: map[string]*Cart{}}
}

func (s *memoryStore) Load(ctx context.Context, owner string) (*Cart, error) {
	if cart, ok := s.carts[owner]; ok {
		return cart, nil
	}
	return &Cart{Items: []Item{}, CreatedAt: time.Now().UTC()}, nil
}

func (s *memoryStore) Save(ctx context.Context, owner string, cart *Cart) error {
	s.carts[owner] = cart
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, owner string) error {
	delete(s.carts, owner)
	return nil
}

func testProduct(id uint, price float64, stock int) upstream.Product {
	return upstream.Product{
		ID:       id,
		Name:     "Product",
		Price:    upstream.Amount(price),
		Quantity: stock,
	}
}

func TestOwnerKey(t *testing.T) {
	assert.Equal(t, "customer:42", OwnerKey("42", "abc"))
	assert.Equal(t, "session:abc", OwnerKey("", "abc"))
}

func TestAddClampsToStock(t *testing.T) {
	service := NewService(newMemoryStore())
	ctx := context.Background()

	resp, err := service.Add(ctx, "session:a", testProduct(1, 100, 3), 10)
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.Equal(t, 3, resp.Items[0].Stock)
}

func TestAddOutOfStock(t *testing.T) {
	service := NewService(newMemoryStore())

	_, err := service.Add(context.Background(), "session:a", testProduct(1, 100, 0), 1)
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestAddMergesExistingLine(t *testing.T) {
	service := NewService(newMemoryStore())
	ctx := context.Background()

	_, err := service.Add(ctx, "session:a", testProduct(1, 100, 5), 2)
	require.NoError(t, err)

	resp, err := service.Add(ctx, "session:a", testProduct(1, 100, 5), 2)
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 4, resp.Items[0].Quantity)

	// A third add pushes past the snapshot stock and clamps
	resp, err = service.Add(ctx, "session:a", testProduct(1, 100, 5), 3)
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Items[0].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	service := NewService(newMemoryStore())
	ctx := context.Background()

	_, err := service.Add(ctx, "session:a", testProduct(1, 100, 5), 1)
	require.NoError(t, err)

	resp, err := service.UpdateQuantity(ctx, "session:a", 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Items[0].Quantity)

	// Above stock clamps
	resp, err = service.UpdateQuantity(ctx, "session:a", 1, 99)
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Items[0].Quantity)

	// Zero removes the line
	resp, err = service.UpdateQuantity(ctx, "session:a", 1, 0)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)

	_, err = service.UpdateQuantity(ctx, "session:a", 1, 2)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestTotals(t *testing.T) {
	service := NewService(newMemoryStore())
	ctx := context.Background()

	discounted := testProduct(1, 100, 10)
	original := upstream.Amount(150)
	discounted.CompareAtPrice = &original

	_, err := service.Add(ctx, "session:a", discounted, 2)
	require.NoError(t, err)

	resp, err := service.Add(ctx, "session:a", testProduct(2, 50, 10), 1)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Totals.ItemCount)
	assert.Equal(t, 3, resp.Totals.TotalQuantity)
	assert.Equal(t, 250.0, resp.Totals.Subtotal)
	assert.Equal(t, 100.0, resp.Totals.Savings)
	assert.Equal(t, 250.0, resp.Totals.Total)
}

func TestClear(t *testing.T) {
	store := newMemoryStore()
	service := NewService(store)
	ctx := context.Background()

	_, err := service.Add(ctx, "session:a", testProduct(1, 100, 5), 1)
	require.NoError(t, err)

	require.NoError(t, service.Clear(ctx, "session:a"))

	resp, err := service.Get(ctx, "session:a")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}
