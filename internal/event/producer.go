package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/koraytemur/hirdavat/internal/cart"
	pkgkafka "github.com/koraytemur/hirdavat/pkg/kafka"
)

// Kafka topic constants for storefront domain events.
const (
	TopicCartUpdated = "storefront.cart.updated"
	TopicCartCleared = "storefront.cart.cleared"
	TopicOrderPlaced = "storefront.order.placed"
)

// Aggregate type constants.
const (
	AggregateTypeCart  = "cart"
	AggregateTypeOrder = "order"
)

// Source identifier for events originating from this service.
const SourceStorefront = "storefront-service"

// CartItemData is the item payload within cart events.
type CartItemData struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	DeviceID  string          `json:"device_id"`
	Items     []CartItemData  `json:"items"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Total     decimal.Decimal `json:"total"`
}

// CartClearedData is the payload for a cart.cleared event.
type CartClearedData struct {
	DeviceID string `json:"device_id"`
}

// OrderPlacedData is the payload for an order.placed event.
type OrderPlacedData struct {
	DeviceID    string          `json:"device_id"`
	OrderID     string          `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	Total       decimal.Decimal `json:"total"`
	ItemCount   int             `json:"item_count"`
}

// Producer publishes storefront domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the storefront service.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishCartUpdated publishes a cart.updated event for the given session.
func (p *Producer) PublishCartUpdated(ctx context.Context, deviceID string, lines []cart.Line, totals cart.Totals) error {
	items := make([]CartItemData, len(lines))
	itemCount := 0
	for i, l := range lines {
		items[i] = CartItemData{
			ProductID: l.Product.ID,
			SKU:       l.Product.SKU,
			Price:     l.Product.Price,
			Quantity:  l.Quantity,
		}
		itemCount += l.Quantity
	}

	data := CartUpdatedData{
		DeviceID:  deviceID,
		Items:     items,
		ItemCount: itemCount,
		Subtotal:  totals.Subtotal,
		Total:     totals.Total,
	}

	event, err := pkgkafka.NewEvent(TopicCartUpdated, deviceID, AggregateTypeCart, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartUpdated, event); err != nil {
		return fmt.Errorf("publish cart.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.updated event",
		slog.String("device_id", deviceID),
		slog.Int("item_count", itemCount),
	)

	return nil
}

// PublishCartCleared publishes a cart.cleared event.
func (p *Producer) PublishCartCleared(ctx context.Context, deviceID string) error {
	data := CartClearedData{DeviceID: deviceID}

	event, err := pkgkafka.NewEvent(TopicCartCleared, deviceID, AggregateTypeCart, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.cleared event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartCleared, event); err != nil {
		return fmt.Errorf("publish cart.cleared event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.cleared event",
		slog.String("device_id", deviceID),
	)

	return nil
}

// PublishOrderPlaced publishes an order.placed event after a successful
// checkout.
func (p *Producer) PublishOrderPlaced(ctx context.Context, data OrderPlacedData) error {
	event, err := pkgkafka.NewEvent(TopicOrderPlaced, data.OrderID, AggregateTypeOrder, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create order.placed event: %w", err)
	}
	event.WithMetadata("device_id", data.DeviceID)

	if err := p.kafka.Publish(ctx, TopicOrderPlaced, event); err != nil {
		return fmt.Errorf("publish order.placed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published order.placed event",
		slog.String("order_id", data.OrderID),
		slog.String("order_number", data.OrderNumber),
	)

	return nil
}
