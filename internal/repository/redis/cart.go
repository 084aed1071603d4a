package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/TNRIN/DRESS/internal/domain"
	apperrors "github.com/TNRIN/DRESS/pkg/errors"
)

const keyPrefix = "cart:"

// CartRepository implements repository.CartRepository on Redis. The key TTL
// tracks the cart's absolute expiry, so Redis discards stale carts on its
// own; the expiry check in Get covers clock drift between writer and store.
type CartRepository struct {
	client *redis.Client
}

// NewCartRepository creates a Redis-backed cart repository.
func NewCartRepository(client *redis.Client) *CartRepository {
	return &CartRepository{client: client}
}

// Get retrieves a cart snapshot by session ID.
func (r *CartRepository) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	key := keyPrefix + sessionID

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFound("cart", sessionID)
		}
		return nil, fmt.Errorf("redis get cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, apperrors.Corrupted("cart", err)
	}

	if cart.Expired(time.Now().UTC()) {
		// Clear the remnant so the next read starts fresh.
		_ = r.client.Del(ctx, key).Err()
		return nil, apperrors.NotFound("cart", sessionID)
	}

	return &cart, nil
}

// Save persists a cart with a TTL matching its absolute expiry.
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	key := keyPrefix + cart.SessionID

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	ttl := time.Until(cart.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("save cart: expiry %v is not in the future", cart.ExpiresAt)
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}

	return nil
}

// Delete removes a persisted cart by session ID.
func (r *CartRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("redis del cart: %w", err)
	}
	return nil
}
