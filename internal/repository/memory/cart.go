package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/TNRIN/DRESS/internal/domain"
	apperrors "github.com/TNRIN/DRESS/pkg/errors"
)

// CartRepository implements repository.CartRepository in process memory. It
// is the fallback backend used when no Redis is configured, and what the
// service tests run against. Snapshots are stored as serialized JSON so the
// backend behaves like the Redis one, including lazy expiry on read.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

// NewCartRepository creates an empty in-memory cart repository.
func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string][]byte)}
}

// Get retrieves a cart snapshot by session ID.
func (r *CartRepository) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	r.mu.RLock()
	data, ok := r.carts[sessionID]
	r.mu.RUnlock()

	if !ok {
		return nil, apperrors.NotFound("cart", sessionID)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, apperrors.Corrupted("cart", err)
	}

	if cart.Expired(time.Now().UTC()) {
		r.mu.Lock()
		delete(r.carts, sessionID)
		r.mu.Unlock()
		return nil, apperrors.NotFound("cart", sessionID)
	}

	return &cart, nil
}

// Save persists a cart snapshot.
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	if !cart.ExpiresAt.After(time.Now()) {
		return fmt.Errorf("save cart: expiry %v is not in the future", cart.ExpiresAt)
	}

	r.mu.Lock()
	r.carts[cart.SessionID] = data
	r.mu.Unlock()
	return nil
}

// Delete removes a persisted cart by session ID.
func (r *CartRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.carts, sessionID)
	r.mu.Unlock()
	return nil
}

// put stores a raw snapshot directly; test hook for corrupt data scenarios.
func (r *CartRepository) put(sessionID string, data []byte) {
	r.mu.Lock()
	r.carts[sessionID] = data
	r.mu.Unlock()
}
