package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/TNRIN/DRESS/internal/domain"
	pkgkafka "github.com/TNRIN/DRESS/pkg/kafka"
)

// Kafka topics for storefront domain events. Presentation layers subscribe
// to cart topics instead of being re-rendered from inside the store.
const (
	TopicCartUpdated = "storefront.cart.updated"
	TopicCartCleared = "storefront.cart.cleared"
	TopicOrderPlaced = "storefront.order.placed"
)

const (
	aggregateCart  = "cart"
	aggregateOrder = "order"
	source         = "storefront"
)

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	SessionID string            `json:"session_id"`
	Items     []domain.LineItem `json:"items"`
	ItemCount int               `json:"item_count"`
	Subtotal  float64           `json:"subtotal"`
}

// CartClearedData is the payload for a cart.cleared event.
type CartClearedData struct {
	SessionID string `json:"session_id"`
}

// OrderPlacedData is the payload for an order.placed event.
type OrderPlacedData struct {
	Number    string  `json:"number"`
	SessionID string  `json:"session_id"`
	ItemCount int     `json:"item_count"`
	Total     float64 `json:"total"`
}

// Producer publishes storefront domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates an event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{kafka: kafka, logger: logger}
}

// PublishCartUpdated publishes a cart.updated event.
func (p *Producer) PublishCartUpdated(ctx context.Context, cart *domain.Cart) error {
	data := CartUpdatedData{
		SessionID: cart.SessionID,
		Items:     cart.Items,
		ItemCount: cart.ItemCount(),
		Subtotal:  cart.Subtotal(),
	}

	ev, err := pkgkafka.NewEvent(TopicCartUpdated, cart.SessionID, aggregateCart, source, data)
	if err != nil {
		return fmt.Errorf("create cart.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartUpdated, ev); err != nil {
		return fmt.Errorf("publish cart.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.updated event",
		slog.String("session_id", cart.SessionID),
		slog.Int("item_count", cart.ItemCount()),
	)

	return nil
}

// PublishCartCleared publishes a cart.cleared event.
func (p *Producer) PublishCartCleared(ctx context.Context, sessionID string) error {
	ev, err := pkgkafka.NewEvent(TopicCartCleared, sessionID, aggregateCart, source, CartClearedData{SessionID: sessionID})
	if err != nil {
		return fmt.Errorf("create cart.cleared event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartCleared, ev); err != nil {
		return fmt.Errorf("publish cart.cleared event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.cleared event",
		slog.String("session_id", sessionID),
	)

	return nil
}

// PublishOrderPlaced publishes an order.placed event.
func (p *Producer) PublishOrderPlaced(ctx context.Context, sessionID string, order *domain.Order) error {
	data := OrderPlacedData{
		Number:    order.Number,
		SessionID: sessionID,
		ItemCount: len(order.Items),
		Total:     order.Total,
	}

	ev, err := pkgkafka.NewEvent(TopicOrderPlaced, order.Number, aggregateOrder, source, data)
	if err != nil {
		return fmt.Errorf("create order.placed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicOrderPlaced, ev); err != nil {
		return fmt.Errorf("publish order.placed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published order.placed event",
		slog.String("order_number", order.Number),
	)

	return nil
}
