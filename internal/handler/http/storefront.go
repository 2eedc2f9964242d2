package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/koraytemur/hirdavat/internal/backend"
	"github.com/koraytemur/hirdavat/internal/domain"
	"github.com/koraytemur/hirdavat/internal/service"
	apperrors "github.com/koraytemur/hirdavat/pkg/errors"
	"github.com/koraytemur/hirdavat/pkg/validator"
)

// StorefrontHandler handles HTTP requests for the storefront endpoints.
type StorefrontHandler struct {
	service *service.Storefront
	logger  *slog.Logger
}

// NewStorefrontHandler creates a new storefront HTTP handler.
func NewStorefrontHandler(svc *service.Storefront, logger *slog.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		service: svc,
		logger:  logger,
	}
}

// --- Request DTOs ---

// AddItemRequest is the JSON request body for adding an item to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// UpdateQuantityRequest is the JSON request body for updating an item's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ApplyDiscountRequest is the JSON request body for applying a discount code.
type ApplyDiscountRequest struct {
	Code string `json:"code" validate:"required"`
}

// SetLanguageRequest is the JSON request body for switching the session language.
type SetLanguageRequest struct {
	Language string `json:"language" validate:"required"`
}

// CheckoutCustomer carries the customer details for an order.
type CheckoutCustomer struct {
	Name       string `json:"name" validate:"required,min=2,max=200"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// CheckoutRequest is the JSON request body for placing an order.
type CheckoutRequest struct {
	Customer      CheckoutCustomer `json:"customer" validate:"required"`
	PaymentMethod string           `json:"payment_method" validate:"required,oneof=card ideal bancontact cash_on_delivery"`
	Notes         string           `json:"notes" validate:"max=1000"`
}

// --- Response envelope ---

type response struct {
	Data  any            `json:"data,omitempty"`
	Error *errorResponse `json:"error,omitempty"`
}

type errorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type languageResponse struct {
	Language string `json:"language"`
}

type translationsResponse struct {
	Language     string            `json:"language"`
	Translations map[string]string `json:"translations"`
}

// --- Cart handlers ---

// GetCart handles GET /api/v1/cart
func (h *StorefrontHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDFromContext(r.Context())
	if !ok {
		h.writeMissingDevice(w)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: h.service.GetCart(r.Context(), deviceID)})
}

// AddItem handles POST /api/v1/cart/items
func (h *StorefrontHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDFromContext(r.Context())
	if !ok {
		h.writeMissingDevice(w)
		return
	}

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		h.writeValidationError(w, err)
		return
	}

	cart, err := h.service.AddToCart(r.Context(), deviceID, req.ProductID, req.Quantity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: cart})
}

// UpdateItemQuantity handles PUT /api/v1/cart/items/{productId}
func (h *StorefrontHandler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDFromContext(r.Context())
	if !ok {
		h.writeMissingDevice(w)
		return
	}

	productID := chi.URLParam(r, "productId")
	if productID == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "productId is required"},
		})
		return
	}

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	cart := h.service.UpdateQuantity(r.Context(), deviceID, productID, req.Quantity)
	writeJSON(w, http.StatusOK, response{Data: cart})
}

// RemoveItem handles DELETE /api/v1/cart/items/{productId}
func (h *StorefrontHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDFromContext(r.Context())
	if !ok {
		h.writeMissingDevice(w)
		return
	}

	productID := chi.URLParam(r, "productId")
	if productID == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "productId is required"},
		})
		return
	}

	cart := h.service.RemoveFromCart(r.Context(), deviceID, productID)
	writeJSON(w, http.StatusOK, response{Data: cart})
}

// ClearCart handles DELETE /api/v1/cart
func (h *StorefrontHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDFromContext(r.Context())
	if !ok {
		h.writeMissingDevice(w)
		return
	}

	h.service.ClearCart(r.Context(), deviceID)
	writeJSON(w, http.StatusOK, response{Data: map[string]string{"status": "cleared"}})
}

// ApplyDiscount handles POST /api/v1/cart/discount
func (h *StorefrontHandler) ApplyDiscount(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDFromContext(r.Context())
	if !ok {
		h.writeMissingDevice(w)
		return
	}

	var req ApplyDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		h.writeValidationError(w, err)
		return
	}

	cart, err := h.service.ApplyDiscount(r.Context(), deviceID, req.Code)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: cart})
}

// RemoveDiscount handles DELETE /api/v1/cart/discount
func (h *StorefrontHandler) RemoveDiscount(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDFromContext(r.Context())
	if !ok {
		h.writeMissingDevice(w)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: h.service.RemoveDiscount(r.Context(), deviceID)})
}

// Checkout handles POST /api/v1/checkout
func (h *StorefrontHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDFromContext(r.Context())
	if !ok {
		h.writeMissingDevice(w)
		return
	}

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		h.writeValidationError(w, err)
		return
	}

	order, err := h.service.Checkout(r.Context(), deviceID, service.CheckoutInput{
		Customer: domain.CustomerInfo{
			Name:       req.Customer.Name,
			Email:      req.Customer.Email,
			Phone:      req.Customer.Phone,
			Address:    req.Customer.Address,
			City:       req.Customer.City,
			PostalCode: req.Customer.PostalCode,
			Country:    req.Customer.Country,
		},
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{Data: order})
}

// --- Catalog handlers ---

// ListCategories handles GET /api/v1/categories
func (h *StorefrontHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDFromContext(r.Context())
	if !ok {
		h.writeMissingDevice(w)
		return
	}

	categories, err := h.service.ListCategories(r.Context(), deviceID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: categories})
}

// ListProducts handles GET /api/v1/products
func (h *StorefrontHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDFromContext(r.Context())
	if !ok {
		h.writeMissingDevice(w)
		return
	}

	query := backend.ProductQuery{
		CategoryID: r.URL.Query().Get("category_id"),
		Search:     r.URL.Query().Get("search"),
		ActiveOnly: true,
		Skip:       queryInt(r, "skip", 0),
		Limit:      queryInt(r, "limit", 50),
	}

	products, err := h.service.ListProducts(r.Context(), deviceID, query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: products})
}

// GetProduct handles GET /api/v1/products/{productId}
func (h *StorefrontHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDFromContext(r.Context())
	if !ok {
		h.writeMissingDevice(w)
		return
	}

	productID := chi.URLParam(r, "productId")
	if productID == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "productId is required"},
		})
		return
	}

	product, err := h.service.GetProduct(r.Context(), deviceID, productID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: product})
}

// --- Session handlers ---

// GetLanguage handles GET /api/v1/session/language
func (h *StorefrontHandler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDFromContext(r.Context())
	if !ok {
		h.writeMissingDevice(w)
		return
	}

	lang := h.service.Language(r.Context(), deviceID)
	writeJSON(w, http.StatusOK, response{Data: languageResponse{Language: lang}})
}

// SetLanguage handles PUT /api/v1/session/language
func (h *StorefrontHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDFromContext(r.Context())
	if !ok {
		h.writeMissingDevice(w)
		return
	}

	var req SetLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		h.writeValidationError(w, err)
		return
	}

	lang := h.service.SetLanguage(r.Context(), deviceID, req.Language)
	writeJSON(w, http.StatusOK, response{Data: languageResponse{Language: lang}})
}

// GetTranslations handles GET /api/v1/session/translations
func (h *StorefrontHandler) GetTranslations(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceIDFromContext(r.Context())
	if !ok {
		h.writeMissingDevice(w)
		return
	}

	lang, table := h.service.Translations(r.Context(), deviceID)
	writeJSON(w, http.StatusOK, response{Data: translationsResponse{Language: lang, Translations: table}})
}

// --- Helpers ---

func (h *StorefrontHandler) writeMissingDevice(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, response{
		Error: &errorResponse{Code: "UNAUTHORIZED", Message: "X-Device-ID header is required"},
	})
}

func (h *StorefrontHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.Status, response{
			Error: &errorResponse{Code: appErr.Code, Message: appErr.Message},
		})
		return
	}

	status := apperrors.HTTPStatus(err)
	code := "INTERNAL_ERROR"
	message := "an internal error occurred"

	if errors.Is(err, apperrors.ErrNotFound) {
		code = "NOT_FOUND"
		message = "resource not found"
		status = http.StatusNotFound
	} else if errors.Is(err, apperrors.ErrInvalidInput) {
		code = "INVALID_INPUT"
		message = err.Error()
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
	}

	writeJSON(w, status, response{
		Error: &errorResponse{Code: code, Message: message},
	})
}

func (h *StorefrontHandler) writeValidationError(w http.ResponseWriter, err error) {
	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{
				Code:    "VALIDATION_ERROR",
				Message: "request validation failed",
				Fields:  valErr.Fields(),
			},
		})
		return
	}

	writeJSON(w, http.StatusBadRequest, response{
		Error: &errorResponse{Code: "INVALID_INPUT", Message: err.Error()},
	})
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}
