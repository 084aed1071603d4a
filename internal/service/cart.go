package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/TNRIN/DRESS/internal/domain"
	"github.com/TNRIN/DRESS/internal/event"
	"github.com/TNRIN/DRESS/internal/repository"
	apperrors "github.com/TNRIN/DRESS/pkg/errors"
)

// AddItemInput carries the product reference for a cart addition. Quantity
// below one and blank variant fields are normalized, never rejected.
type AddItemInput struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Image     string  `json:"image"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
}

// CartService implements the cart lifecycle over a session-keyed repository.
// Every mutation refreshes the cart expiry, so the clock restarts on each
// interaction rather than on creation alone.
type CartService struct {
	repo                  repository.CartRepository
	settings              *SettingsService
	producer              *event.Producer
	logger                *slog.Logger
	ttl                   time.Duration
	freeShippingThreshold float64
}

func NewCartService(
	repo repository.CartRepository,
	settings *SettingsService,
	producer *event.Producer,
	logger *slog.Logger,
	ttl time.Duration,
	freeShippingThreshold float64,
) *CartService {
	return &CartService{
		repo:                  repo,
		settings:              settings,
		producer:              producer,
		logger:                logger,
		ttl:                   ttl,
		freeShippingThreshold: freeShippingThreshold,
	}
}

// Get returns the cart for the session. A missing, expired or unreadable
// snapshot yields a fresh empty cart; corruption is cleaned up in passing.
func (s *CartService) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return s.emptyCart(sessionID), nil
		case errors.Is(err, apperrors.ErrCorrupted):
			s.logger.WarnContext(ctx, "discarding corrupted cart snapshot",
				slog.String("session_id", sessionID),
				slog.String("error", err.Error()),
			)
			if delErr := s.repo.Delete(ctx, sessionID); delErr != nil {
				s.logger.ErrorContext(ctx, "failed to delete corrupted cart",
					slog.String("session_id", sessionID),
					slog.String("error", delErr.Error()),
				)
			}
			return s.emptyCart(sessionID), nil
		default:
			return nil, err
		}
	}
	return cart, nil
}

// AddItem validates the product reference, merges it into the cart and
// persists the result. Lines with the same product, size and color collapse
// into one with summed quantity.
func (s *CartService) AddItem(ctx context.Context, sessionID string, input AddItemInput) (*domain.Cart, error) {
	if input.ProductID <= 0 {
		return nil, apperrors.InvalidInput("product id must be positive")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}
	if input.UnitPrice <= 0 {
		return nil, apperrors.InvalidInput("unit price must be positive")
	}
	if strings.TrimSpace(input.Image) == "" {
		return nil, apperrors.InvalidInput("product image is required")
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}
	size := input.Size
	if strings.TrimSpace(size) == "" {
		size = domain.DefaultSize
	}
	color := input.Color
	if strings.TrimSpace(color) == "" {
		color = domain.DefaultColor
	}

	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if idx := cart.FindItemIndex(input.ProductID, size, color); idx >= 0 {
		cart.Items[idx].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, domain.LineItem{
			ProductID: input.ProductID,
			Name:      input.Name,
			Size:      size,
			Color:     color,
			UnitPrice: input.UnitPrice,
			Image:     input.Image,
			Quantity:  quantity,
		})
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("session_id", sessionID),
		slog.Int("product_id", input.ProductID),
		slog.Int("quantity", quantity),
	)
	s.publishUpdated(ctx, cart)
	return cart, nil
}

// UpdateQuantity sets the quantity of the line at index, clamping to a
// minimum of one. An out-of-range index leaves the cart untouched.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, index, quantity int) (*domain.Cart, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(cart.Items) {
		s.logger.DebugContext(ctx, "quantity update for missing cart line ignored",
			slog.String("session_id", sessionID),
			slog.Int("index", index),
		)
		return cart, nil
	}

	if quantity < 1 {
		quantity = 1
	}
	cart.Items[index].Quantity = quantity

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	s.publishUpdated(ctx, cart)
	return cart, nil
}

// RemoveItem deletes the line at index. An out-of-range index leaves the
// cart untouched.
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, index int) (*domain.Cart, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(cart.Items) {
		s.logger.DebugContext(ctx, "removal of missing cart line ignored",
			slog.String("session_id", sessionID),
			slog.Int("index", index),
		)
		return cart, nil
	}

	cart.Items = append(cart.Items[:index], cart.Items[index+1:]...)

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	s.publishUpdated(ctx, cart)
	return cart, nil
}

// Clear discards the cart for the session. Clearing an absent cart is a
// no-op.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return apperrors.InvalidInput("session id is required")
	}
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return err
	}
	if s.producer != nil {
		if err := s.producer.PublishCartCleared(ctx, sessionID); err != nil {
			s.logger.WarnContext(ctx, "failed to publish cart.cleared event",
				slog.String("session_id", sessionID),
				slog.String("error", err.Error()),
			)
		}
	}
	return nil
}

// Shipping returns the shipping fee for the cart. The fee is waived only
// when the subtotal strictly exceeds the free-shipping threshold.
func (s *CartService) Shipping(cart *domain.Cart) float64 {
	if cart.Subtotal() > s.freeShippingThreshold {
		return 0
	}
	return s.settings.ShippingFee()
}

func (s *CartService) save(ctx context.Context, cart *domain.Cart) error {
	now := time.Now().UTC()
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = now
	}
	cart.UpdatedAt = now
	cart.ExpiresAt = now.Add(s.ttl)
	return s.repo.Save(ctx, cart)
}

func (s *CartService) publishUpdated(ctx context.Context, cart *domain.Cart) {
	if s.producer == nil {
		return
	}
	if err := s.producer.PublishCartUpdated(ctx, cart); err != nil {
		s.logger.WarnContext(ctx, "failed to publish cart.updated event",
			slog.String("session_id", cart.SessionID),
			slog.String("error", err.Error()),
		)
	}
}

func (s *CartService) emptyCart(sessionID string) *domain.Cart {
	now := time.Now().UTC()
	return &domain.Cart{
		SessionID: sessionID,
		Items:     []domain.LineItem{},
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
}
