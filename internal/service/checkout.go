package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/TNRIN/DRESS/internal/domain"
	"github.com/TNRIN/DRESS/internal/event"
	apperrors "github.com/TNRIN/DRESS/pkg/errors"
)

// CheckoutService turns the session cart into a handoff order: a numbered,
// human-readable summary wrapped in a wa.me deep link pointing at the store
// admin. Nothing is persisted server-side beyond clearing the cart.
type CheckoutService struct {
	carts    *CartService
	settings *SettingsService
	producer *event.Producer
	logger   *slog.Logger
}

func NewCheckoutService(carts *CartService, settings *SettingsService, producer *event.Producer, logger *slog.Logger) *CheckoutService {
	return &CheckoutService{
		carts:    carts,
		settings: settings,
		producer: producer,
		logger:   logger,
	}
}

// Compose builds the order for the session cart, publishes the order event
// and clears the cart. An empty cart is rejected.
func (s *CheckoutService) Compose(ctx context.Context, sessionID string, customer domain.Customer) (*domain.Order, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperrors.InvalidInput("cart is empty")
	}

	subtotal := cart.Subtotal()
	shipping := s.carts.Shipping(cart)

	order := &domain.Order{
		Number:    s.settings.NextOrderNumber(),
		Customer:  customer,
		Items:     cart.Items,
		Subtotal:  subtotal,
		Shipping:  shipping,
		Total:     subtotal + shipping,
		CreatedAt: time.Now().UTC(),
	}
	order.Summary = s.buildSummary(order)
	order.DeepLink = s.buildDeepLink(order.Summary)

	if s.producer != nil {
		if err := s.producer.PublishOrderPlaced(ctx, sessionID, order); err != nil {
			s.logger.WarnContext(ctx, "failed to publish order.placed event",
				slog.String("order_number", order.Number),
				slog.String("error", err.Error()),
			)
		}
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear cart after checkout",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "order composed",
		slog.String("order_number", order.Number),
		slog.Int("item_count", len(order.Items)),
		slog.Float64("total", order.Total),
	)
	return order, nil
}

// buildSummary renders the order as a WhatsApp message. Asterisk pairs mark
// bold sections in WhatsApp's formatting.
func (s *CheckoutService) buildSummary(order *domain.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*New Order: %s*\n\n", order.Number)

	b.WriteString("*Customer Information:*\n")
	fmt.Fprintf(&b, "Name: %s\n", order.Customer.Name)
	fmt.Fprintf(&b, "Phone: %s\n", order.Customer.Phone)
	if order.Customer.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", order.Customer.Email)
	}
	fmt.Fprintf(&b, "Address: %s\n", order.Customer.Address)
	if order.Customer.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", order.Customer.Notes)
	}
	b.WriteString("\n*Order Items:*\n")

	for i, item := range order.Items {
		fmt.Fprintf(&b, "%d. %s - %s, %s\n", i+1, item.Name, item.Size, item.Color)
		fmt.Fprintf(&b, "   Quantity: %d x %s = %s\n",
			item.Quantity,
			s.settings.FormatCurrency(item.UnitPrice),
			s.settings.FormatCurrency(item.LineTotal()),
		)
	}

	b.WriteString("\n*Order Summary:*\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", s.settings.FormatCurrency(order.Subtotal))
	if order.Shipping == 0 {
		b.WriteString("Shipping: Free\n")
	} else {
		fmt.Fprintf(&b, "Shipping: %s\n", s.settings.FormatCurrency(order.Shipping))
	}
	fmt.Fprintf(&b, "Total: %s", s.settings.FormatCurrency(order.Total))

	return b.String()
}

func (s *CheckoutService) buildDeepLink(summary string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.settings.AdminContact(), url.QueryEscape(summary))
}
