package repository

import (
	"context"

	"github.com/TNRIN/DRESS/internal/domain"
)

// CartRepository is the key-value persistence capability for carts. Two
// interchangeable backends implement it (Redis and in-process memory); the
// backend is selected once at startup and callers never see the difference.
type CartRepository interface {
	// Get retrieves the cart for a session. Returns an error matching
	// apperrors.ErrNotFound when no cart is stored, and one matching
	// apperrors.ErrCorrupted when the stored snapshot fails to decode.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)

	// Save persists the cart snapshot, overwriting any existing one. The
	// backend honors the cart's absolute expiry.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete erases the persisted cart for a session. Deleting an absent
	// cart is not an error.
	Delete(ctx context.Context, sessionID string) error
}

// CatalogSource loads the full product list from its backing document.
type CatalogSource interface {
	Load(ctx context.Context) ([]domain.Product, error)
}

// SettingsSource loads the store settings document.
type SettingsSource interface {
	Load(ctx context.Context) (domain.StoreSettings, error)
}
