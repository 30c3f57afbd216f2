package wishlist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/upstream"
)

// memoryMirror is an in-memory MirrorStore for tests
type memoryMirror struct {
	mirrors map[string][]Item
}

func newMemoryMirror() *memoryMirror {
	return &memoryMirror{mirrors: map[string][]Item{}}
}

func (s *memoryMirror) Items(ctx context.Context, customerID string) ([]Item, error) {
	return s.mirrors[customerID], nil
}

func (s *memoryMirror) Save(ctx context.Context, customerID string, items []Item) error {
	s.mirrors[customerID] = items
	return nil
}

func newTestService(t *testing.T, handler http.Handler) (*Service, *memoryMirror, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api := upstream.NewClient(&config.Config{
		Upstream: config.UpstreamConfig{
			BaseURL:        srv.URL,
			RequestTimeout: 5 * time.Second,
		},
	})
	store := newMemoryMirror()
	return NewService(api, store), store, srv
}

func readJSON(r *http.Request, out interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}

func testProduct(id uint, price float64) upstream.Product {
	return upstream.Product{
		ID:       id,
		Name:     "Runner",
		Slug:     "runner",
		Price:    upstream.Amount(price),
		Quantity: 10,
	}
}

func TestAddUsesFirstExistingWishlist(t *testing.T) {
	var addPath string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /wishlists", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "data": [{"id": "wl-1", "name": "My Wishlist"}]}`))
	})
	mux.HandleFunc("POST /wishlists/{id}/items", func(w http.ResponseWriter, r *http.Request) {
		addPath = r.URL.Path
		w.Write([]byte(`{"status": "success", "data": {"id": "item-1", "productId": 7}}`))
	})

	service, store, _ := newTestService(t, mux)

	item, err := service.Add(context.Background(), "token", "cust-1", testProduct(7, 2500))
	require.NoError(t, err)

	assert.Equal(t, "/wishlists/wl-1/items", addPath)
	assert.Equal(t, "7", item.ID)
	assert.Equal(t, 2500.0, item.Price)

	mirrored, _ := store.Items(context.Background(), "cust-1")
	require.Len(t, mirrored, 1)
}

func TestAddCreatesDefaultWishlistWhenNoneExist(t *testing.T) {
	var createdName string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /wishlists", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "data": []}`))
	})
	mux.HandleFunc("POST /wishlists", func(w http.ResponseWriter, r *http.Request) {
		var input upstream.WishlistInput
		require.NoError(t, readJSON(r, &input))
		createdName = input.Name
		w.Write([]byte(`{"status": "success", "data": {"id": "wl-new", "name": "My Wishlist"}}`))
	})
	mux.HandleFunc("POST /wishlists/wl-new/items", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "data": {"id": "item-1", "productId": 7}}`))
	})

	service, _, _ := newTestService(t, mux)

	_, err := service.Add(context.Background(), "token", "cust-1", testProduct(7, 2500))
	require.NoError(t, err)
	assert.Equal(t, DefaultWishlistName, createdName)
}

func TestAddDegradesToSentinelOnResolutionFailure(t *testing.T) {
	var addPath string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /wishlists", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status": "error", "error": "boom"}`))
	})
	mux.HandleFunc("POST /wishlists/{id}/items", func(w http.ResponseWriter, r *http.Request) {
		addPath = r.URL.Path
		w.Write([]byte(`{"status": "success", "data": {"id": "item-1", "productId": 7}}`))
	})

	service, _, _ := newTestService(t, mux)

	_, err := service.Add(context.Background(), "token", "cust-1", testProduct(7, 2500))
	require.NoError(t, err)
	assert.Equal(t, "/wishlists/default/items", addPath)
}

func TestAddLeavesMirrorUntouchedOnUpstreamFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /wishlists", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "data": [{"id": "wl-1"}]}`))
	})
	mux.HandleFunc("POST /wishlists/wl-1/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status": "error", "error": "boom"}`))
	})

	service, store, _ := newTestService(t, mux)

	_, err := service.Add(context.Background(), "token", "cust-1", testProduct(7, 2500))
	require.Error(t, err)

	mirrored, _ := store.Items(context.Background(), "cust-1")
	assert.Empty(t, mirrored)
}

func TestAddIsIdempotentInMirror(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /wishlists", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "data": [{"id": "wl-1"}]}`))
	})
	mux.HandleFunc("POST /wishlists/wl-1/items", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "data": {"id": "item-1", "productId": 7}}`))
	})

	service, store, _ := newTestService(t, mux)
	ctx := context.Background()

	_, err := service.Add(ctx, "token", "cust-1", testProduct(7, 2500))
	require.NoError(t, err)
	_, err = service.Add(ctx, "token", "cust-1", testProduct(7, 2500))
	require.NoError(t, err)

	mirrored, _ := store.Items(ctx, "cust-1")
	assert.Len(t, mirrored, 1)
}

func TestRemoveDeletesByItemID(t *testing.T) {
	var deletePath string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /wishlists/default", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "success",
			"data": {
				"id": "wl-1",
				"items": [
					{"id": "item-9", "productId": 5},
					{"id": "item-12", "productId": 7}
				]
			}
		}`))
	})
	mux.HandleFunc("DELETE /wishlists/wl-1/items/{itemID}", func(w http.ResponseWriter, r *http.Request) {
		deletePath = r.URL.Path
		w.Write([]byte(`{"status": "success", "message": "deleted"}`))
	})

	service, store, _ := newTestService(t, mux)
	ctx := context.Background()

	// Seed the mirror with the product being removed plus one other
	require.NoError(t, store.Save(ctx, "cust-1", []Item{{ID: "5"}, {ID: "7"}}))

	require.NoError(t, service.Remove(ctx, "token", "cust-1", 7))

	// Deletion is keyed by the wishlist item's id, not the product's
	assert.Equal(t, "/wishlists/wl-1/items/item-12", deletePath)

	mirrored, _ := store.Items(ctx, "cust-1")
	require.Len(t, mirrored, 1)
	assert.Equal(t, "5", mirrored[0].ID)
}

func TestRemoveMissingProduct(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /wishlists/default", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "data": {"id": "wl-1", "items": []}}`))
	})

	service, _, _ := newTestService(t, mux)

	err := service.Remove(context.Background(), "token", "cust-1", 7)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveLeavesMirrorOnUpstreamFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /wishlists/default", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "success",
			"data": {"id": "wl-1", "items": [{"id": "item-12", "productId": 7}]}
		}`))
	})
	mux.HandleFunc("DELETE /wishlists/wl-1/items/item-12", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status": "error", "error": "boom"}`))
	})

	service, store, _ := newTestService(t, mux)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "cust-1", []Item{{ID: "7"}}))

	require.Error(t, service.Remove(ctx, "token", "cust-1", 7))

	mirrored, _ := store.Items(ctx, "cust-1")
	assert.Len(t, mirrored, 1)
}

func TestToggleGuardRejectsConcurrentToggle(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once

	mux := http.NewServeMux()
	mux.HandleFunc("GET /wishlists", func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() { close(started) })
		<-release
		w.Write([]byte(`{"status": "success", "data": [{"id": "wl-1"}]}`))
	})
	mux.HandleFunc("POST /wishlists/wl-1/items", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "data": {"id": "item-1", "productId": 7}}`))
	})

	service, _, _ := newTestService(t, mux)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := service.Add(ctx, "token", "cust-1", testProduct(7, 2500))
		done <- err
	}()

	<-started

	// Same product while the first toggle is still running
	_, err := service.Add(ctx, "token", "cust-1", testProduct(7, 2500))
	assert.ErrorIs(t, err, ErrToggleInFlight)

	close(release)
	require.NoError(t, <-done)

	// Once the first toggle finishes the product is free again, and a
	// different product was never serialized against it to begin with
	_, err = service.Add(ctx, "token", "cust-1", testProduct(8, 1000))
	require.NoError(t, err)
}

func TestContains(t *testing.T) {
	service, store, _ := newTestService(t, http.NewServeMux())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "cust-1", []Item{{ID: "7"}}))

	saved, err := service.Contains(ctx, "cust-1", 7)
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = service.Contains(ctx, "cust-1", 8)
	require.NoError(t, err)
	assert.False(t, saved)
}
