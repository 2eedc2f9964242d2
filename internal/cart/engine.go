package cart

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/koraytemur/hirdavat/internal/domain"
	"github.com/koraytemur/hirdavat/internal/i18n"
	"github.com/koraytemur/hirdavat/internal/repository"
)

// Engine owns the cart state for one device session. All mutations go through
// its methods; after each mutation the line list is mirrored to the key-value
// store in the background. The in-memory state is authoritative: a persist
// failure is logged and never rolled back.
type Engine struct {
	mu       sync.Mutex
	cart     Cart
	language string

	cartKey string
	langKey string

	persister *persister
	logger    *slog.Logger
}

// NewEngine creates a cart engine for the given device session. Call Restore
// to load any persisted snapshot, and Close to flush pending writes.
func NewEngine(kv repository.KV, deviceID string, logger *slog.Logger) *Engine {
	return &Engine{
		language:  i18n.DefaultLanguage,
		cartKey:   "cart:" + deviceID,
		langKey:   "language:" + deviceID,
		persister: newPersister(kv, logger),
		logger:    logger,
	}
}

// Restore loads the persisted language preference and cart snapshot. A
// missing key or malformed snapshot leaves the empty defaults in place; no
// error is surfaced.
func (e *Engine) Restore(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if data, err := e.persister.kv.Get(ctx, e.langKey); err == nil {
		e.language = i18n.Normalize(string(data))
	}

	data, err := e.persister.kv.Get(ctx, e.cartKey)
	if err != nil {
		return
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		e.logger.WarnContext(ctx, "discarding malformed cart snapshot",
			slog.String("key", e.cartKey),
			slog.String("error", err.Error()),
		)
		return
	}
	e.cart.replaceLines(lines)
}

// Add merges the product into the cart and schedules a persist.
func (e *Engine) Add(product domain.Product, quantity int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart.Add(product, quantity)
	e.persistLocked()
}

// Remove drops the matching line and schedules a persist. No-op if absent.
func (e *Engine) Remove(productID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart.Remove(productID)
	e.persistLocked()
}

// UpdateQuantity changes a line's quantity (zero or less removes the line)
// and schedules a persist.
func (e *Engine) UpdateQuantity(productID string, quantity int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart.UpdateQuantity(productID, quantity)
	e.persistLocked()
}

// Clear empties the cart, drops the applied discount, and schedules a persist
// of the now-empty line list.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart.Clear()
	e.persistLocked()
}

// SetDiscount replaces the applied discount. The discount is not persisted;
// only line items are mirrored, matching the snapshot format.
func (e *Engine) SetDiscount(d *domain.Discount) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart.SetDiscount(d)
}

// Discount returns the currently applied discount, or nil.
func (e *Engine) Discount() *domain.Discount {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cart.Discount()
}

// Lines returns a copy of the cart lines in insertion order.
func (e *Engine) Lines() []Line {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cart.Lines()
}

// ItemCount returns the total quantity across all lines.
func (e *Engine) ItemCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cart.ItemCount()
}

// IsEmpty reports whether the cart has no lines.
func (e *Engine) IsEmpty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cart.IsEmpty()
}

// Totals computes the current cart totals.
func (e *Engine) Totals() Totals {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cart.Totals()
}

// Language returns the session's active language code.
func (e *Engine) Language() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.language
}

// SetLanguage switches the session language and schedules a persist of the
// preference. Unsupported codes are normalized to the default language.
func (e *Engine) SetLanguage(lang string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.language = i18n.Normalize(lang)
	e.persister.enqueue(e.langKey, []byte(e.language))
}

// T translates key for the session's active language.
func (e *Engine) T(key string) string {
	return i18n.T(e.Language(), key)
}

// Close flushes any pending persist and stops the background worker.
func (e *Engine) Close() {
	e.persister.close()
}

// persistLocked snapshots the line list and hands it to the background
// persister. Callers must hold e.mu.
func (e *Engine) persistLocked() {
	data, err := json.Marshal(e.cart.Lines())
	if err != nil {
		// Lines hold only JSON-encodable fields; this should not happen.
		e.logger.Error("marshal cart snapshot", slog.String("error", err.Error()))
		return
	}
	e.persister.enqueue(e.cartKey, data)
}
