package service

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/koraytemur/hirdavat/internal/backend"
	"github.com/koraytemur/hirdavat/internal/cart"
	"github.com/koraytemur/hirdavat/internal/domain"
	"github.com/koraytemur/hirdavat/internal/event"
	"github.com/koraytemur/hirdavat/internal/i18n"
	apperrors "github.com/koraytemur/hirdavat/pkg/errors"
)

// Backend is the slice of the catalog backend API the storefront consumes.
type Backend interface {
	Categories(ctx context.Context, activeOnly bool) ([]domain.Category, error)
	Products(ctx context.Context, query backend.ProductQuery) ([]domain.Product, error)
	Product(ctx context.Context, id string) (*domain.Product, error)
	ValidateDiscount(ctx context.Context, code string, orderAmount decimal.Decimal) (*domain.Discount, error)
	CreateOrder(ctx context.Context, req backend.CreateOrderRequest) (*domain.Order, error)
	ProcessMockPayment(ctx context.Context, orderID string, success bool) (*backend.PaymentResult, error)
}

// Publisher is the slice of the event producer the storefront uses.
type Publisher interface {
	PublishCartUpdated(ctx context.Context, deviceID string, lines []cart.Line, totals cart.Totals) error
	PublishCartCleared(ctx context.Context, deviceID string) error
	PublishOrderPlaced(ctx context.Context, data event.OrderPlacedData) error
}

// CartItemView is one cart line as served to the UI, localized for the
// session language.
type CartItemView struct {
	Product   domain.LocalizedProduct `json:"product"`
	Quantity  int                     `json:"quantity"`
	LineTotal decimal.Decimal         `json:"line_total"`
}

// CartView is the full cart as served to the UI.
type CartView struct {
	Items     []CartItemView   `json:"items"`
	ItemCount int              `json:"item_count"`
	Discount  *domain.Discount `json:"discount,omitempty"`
	Subtotal  decimal.Decimal  `json:"subtotal"`
	Tax       decimal.Decimal  `json:"tax"`
	Total     decimal.Decimal  `json:"total"`
}

// CheckoutInput holds the parameters for placing an order.
type CheckoutInput struct {
	Customer      domain.CustomerInfo
	PaymentMethod string
	Notes         string
}

// Storefront implements the storefront use cases on top of the per-device
// cart engines, the catalog backend, and the event producer.
type Storefront struct {
	sessions *Sessions
	backend  Backend
	producer Publisher
	logger   *slog.Logger
}

// NewStorefront creates the storefront service.
func NewStorefront(sessions *Sessions, backend Backend, producer Publisher, logger *slog.Logger) *Storefront {
	return &Storefront{
		sessions: sessions,
		backend:  backend,
		producer: producer,
		logger:   logger,
	}
}

// GetCart returns the current cart for the device, localized for its session
// language.
func (s *Storefront) GetCart(ctx context.Context, deviceID string) *CartView {
	eng := s.sessions.Get(ctx, deviceID)
	return s.viewOf(eng)
}

// AddToCart fetches the product snapshot from the backend and merges it into
// the device's cart.
func (s *Storefront) AddToCart(ctx context.Context, deviceID, productID string, quantity int) (*CartView, error) {
	if quantity < 1 {
		return nil, apperrors.InvalidInput("quantity must be at least 1")
	}

	product, err := s.backend.Product(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, apperrors.InvalidInput("product is not available")
	}

	eng := s.sessions.Get(ctx, deviceID)
	eng.Add(*product, quantity)

	s.publishCartUpdated(ctx, deviceID, eng)

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("device_id", deviceID),
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
	)

	return s.viewOf(eng), nil
}

// UpdateQuantity changes a line's quantity; zero or less removes the line.
// Updating a product that is not in the cart is a no-op.
func (s *Storefront) UpdateQuantity(ctx context.Context, deviceID, productID string, quantity int) *CartView {
	eng := s.sessions.Get(ctx, deviceID)
	eng.UpdateQuantity(productID, quantity)

	s.publishCartUpdated(ctx, deviceID, eng)

	s.logger.InfoContext(ctx, "cart quantity updated",
		slog.String("device_id", deviceID),
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
	)

	return s.viewOf(eng)
}

// RemoveFromCart drops the matching line. Removing an absent product is a
// no-op.
func (s *Storefront) RemoveFromCart(ctx context.Context, deviceID, productID string) *CartView {
	eng := s.sessions.Get(ctx, deviceID)
	eng.Remove(productID)

	s.publishCartUpdated(ctx, deviceID, eng)

	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("device_id", deviceID),
		slog.String("product_id", productID),
	)

	return s.viewOf(eng)
}

// ClearCart empties the cart and drops any applied discount.
func (s *Storefront) ClearCart(ctx context.Context, deviceID string) {
	eng := s.sessions.Get(ctx, deviceID)
	eng.Clear()

	if err := s.producer.PublishCartCleared(ctx, deviceID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("device_id", deviceID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "cart cleared", slog.String("device_id", deviceID))
}

// ApplyDiscount validates the code with the backend against the cart's
// undiscounted subtotal and applies the returned discount. Applying a new
// code replaces any previous one.
func (s *Storefront) ApplyDiscount(ctx context.Context, deviceID, code string) (*CartView, error) {
	eng := s.sessions.Get(ctx, deviceID)
	if eng.IsEmpty() {
		return nil, apperrors.InvalidInput("cannot apply a discount to an empty cart")
	}

	discount, err := s.backend.ValidateDiscount(ctx, code, lineSubtotal(eng.Lines()))
	if err != nil {
		return nil, err
	}

	eng.SetDiscount(discount)

	s.logger.InfoContext(ctx, "discount applied",
		slog.String("device_id", deviceID),
		slog.String("code", discount.Code),
		slog.String("type", discount.DiscountType),
	)

	return s.viewOf(eng), nil
}

// RemoveDiscount drops the applied discount, if any.
func (s *Storefront) RemoveDiscount(ctx context.Context, deviceID string) *CartView {
	eng := s.sessions.Get(ctx, deviceID)
	eng.SetDiscount(nil)
	return s.viewOf(eng)
}

// Checkout places an order for the cart's contents, triggers the mock
// payment, and clears the cart on success.
func (s *Storefront) Checkout(ctx context.Context, deviceID string, input CheckoutInput) (*domain.Order, error) {
	eng := s.sessions.Get(ctx, deviceID)
	lines := eng.Lines()
	if len(lines) == 0 {
		return nil, apperrors.InvalidInput("cannot check out an empty cart")
	}

	items := make([]backend.OrderItemRequest, len(lines))
	for i, l := range lines {
		items[i] = backend.OrderItemRequest{ProductID: l.Product.ID, Quantity: l.Quantity}
	}

	order, err := s.backend.CreateOrder(ctx, backend.CreateOrderRequest{
		Items:         items,
		Customer:      input.Customer,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	})
	if err != nil {
		return nil, err
	}

	// Payment is a mock flow; a failure leaves the order pending and the
	// backend owns the retry story.
	if result, err := s.backend.ProcessMockPayment(ctx, order.ID, true); err != nil {
		s.logger.WarnContext(ctx, "mock payment failed",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	} else {
		order.PaymentStatus = result.PaymentStatus
	}

	itemCount := eng.ItemCount()
	eng.Clear()

	if err := s.producer.PublishOrderPlaced(ctx, event.OrderPlacedData{
		DeviceID:    deviceID,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Total:       order.Total,
		ItemCount:   itemCount,
	}); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order.placed event",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}
	if err := s.producer.PublishCartCleared(ctx, deviceID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("device_id", deviceID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("device_id", deviceID),
		slog.String("order_id", order.ID),
		slog.String("order_number", order.OrderNumber),
	)

	return order, nil
}

// ListCategories returns active categories localized for the session language.
func (s *Storefront) ListCategories(ctx context.Context, deviceID string) ([]domain.LocalizedCategory, error) {
	categories, err := s.backend.Categories(ctx, true)
	if err != nil {
		return nil, err
	}

	lang := s.sessions.Get(ctx, deviceID).Language()
	out := make([]domain.LocalizedCategory, len(categories))
	for i, c := range categories {
		out[i] = c.Localize(lang)
	}
	return out, nil
}

// ListProducts returns products matching the query, localized for the
// session language.
func (s *Storefront) ListProducts(ctx context.Context, deviceID string, query backend.ProductQuery) ([]domain.LocalizedProduct, error) {
	products, err := s.backend.Products(ctx, query)
	if err != nil {
		return nil, err
	}

	lang := s.sessions.Get(ctx, deviceID).Language()
	out := make([]domain.LocalizedProduct, len(products))
	for i, p := range products {
		out[i] = p.Localize(lang)
	}
	return out, nil
}

// GetProduct returns one product localized for the session language.
func (s *Storefront) GetProduct(ctx context.Context, deviceID, productID string) (*domain.LocalizedProduct, error) {
	product, err := s.backend.Product(ctx, productID)
	if err != nil {
		return nil, err
	}

	lang := s.sessions.Get(ctx, deviceID).Language()
	localized := product.Localize(lang)
	return &localized, nil
}

// Language returns the session's active language code.
func (s *Storefront) Language(ctx context.Context, deviceID string) string {
	return s.sessions.Get(ctx, deviceID).Language()
}

// SetLanguage switches the session language, returning the normalized code.
func (s *Storefront) SetLanguage(ctx context.Context, deviceID, lang string) string {
	eng := s.sessions.Get(ctx, deviceID)
	eng.SetLanguage(lang)

	s.logger.InfoContext(ctx, "language changed",
		slog.String("device_id", deviceID),
		slog.String("language", eng.Language()),
	)

	return eng.Language()
}

// Translations returns the full translation table for the session language.
func (s *Storefront) Translations(ctx context.Context, deviceID string) (string, map[string]string) {
	lang := s.sessions.Get(ctx, deviceID).Language()
	return lang, i18n.Table(lang)
}

// viewOf builds the UI-facing cart view from the engine state.
func (s *Storefront) viewOf(eng *cart.Engine) *CartView {
	lines := eng.Lines()
	totals := eng.Totals()
	lang := eng.Language()

	items := make([]CartItemView, len(lines))
	itemCount := 0
	for i, l := range lines {
		qty := decimal.NewFromInt(int64(l.Quantity))
		items[i] = CartItemView{
			Product:   l.Product.Localize(lang),
			Quantity:  l.Quantity,
			LineTotal: l.Product.Price.Mul(qty).Round(2),
		}
		itemCount += l.Quantity
	}

	return &CartView{
		Items:     items,
		ItemCount: itemCount,
		Discount:  eng.Discount(),
		Subtotal:  totals.Subtotal,
		Tax:       totals.Tax,
		Total:     totals.Total,
	}
}

// publishCartUpdated emits a cart.updated event, logging failures instead of
// surfacing them.
func (s *Storefront) publishCartUpdated(ctx context.Context, deviceID string, eng *cart.Engine) {
	if err := s.producer.PublishCartUpdated(ctx, deviceID, eng.Lines(), eng.Totals()); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("device_id", deviceID),
			slog.String("error", err.Error()),
		)
	}
}

// lineSubtotal sums price x quantity over the given lines, before discount
// and tax. Used as the order amount for discount validation.
func lineSubtotal(lines []cart.Line) decimal.Decimal {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return subtotal
}
