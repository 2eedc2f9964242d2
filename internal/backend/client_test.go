package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koraytemur/hirdavat/internal/domain"
	apperrors "github.com/koraytemur/hirdavat/pkg/errors"
	"github.com/koraytemur/hirdavat/pkg/httpclient"
)

func testConfig() httpclient.Config {
	return httpclient.Config{
		Timeout:         5 * time.Second,
		MaxRetries:      0,
		RetryWaitMin:    time.Millisecond,
		RetryWaitMax:    time.Millisecond,
		MaxConnsPerHost: 10,
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, testConfig())
}

func TestProduct(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/products/p1", r.URL.Path)

		_ = json.NewEncoder(w).Encode(domain.Product{
			ID:       "p1",
			Name:     domain.MultilingualText{NL: "Hamer", EN: "Hammer"},
			Price:    decimal.RequireFromString("12.50"),
			Stock:    4,
			IsActive: true,
		})
	})

	product, err := client.Product(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
	assert.Equal(t, "Hamer", product.Name.NL)
	assert.Equal(t, "12.50", product.Price.StringFixed(2))
	assert.True(t, product.InStock())
}

func TestProduct_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Product not found"})
	})

	_, err := client.Product(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Product not found", appErr.Message)
}

func TestProducts_QueryParameters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "tools", q.Get("category_id"))
		assert.Equal(t, "hamer", q.Get("search"))
		assert.Equal(t, "true", q.Get("active_only"))
		assert.Equal(t, "20", q.Get("skip"))
		assert.Equal(t, "10", q.Get("limit"))

		_ = json.NewEncoder(w).Encode([]domain.Product{{ID: "p1"}, {ID: "p2"}})
	})

	products, err := client.Products(context.Background(), ProductQuery{
		CategoryID: "tools",
		Search:     "hamer",
		ActiveOnly: true,
		Skip:       20,
		Limit:      10,
	})
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestCategories(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/categories", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("active_only"))

		_ = json.NewEncoder(w).Encode([]domain.Category{
			{ID: "tools", Name: domain.MultilingualText{NL: "Gereedschap"}},
		})
	})

	categories, err := client.Categories(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "tools", categories[0].ID)
}

func TestValidateDiscount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/discounts/validate/SAVE10", r.URL.Path)
		assert.Equal(t, "30", r.URL.Query().Get("order_amount"))

		_ = json.NewEncoder(w).Encode(domain.Discount{
			ID:            "d1",
			Code:          "SAVE10",
			DiscountType:  domain.DiscountTypePercentage,
			DiscountValue: decimal.RequireFromString("10"),
			IsActive:      true,
		})
	})

	d, err := client.ValidateDiscount(context.Background(), "SAVE10", decimal.RequireFromString("30"))
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", d.Code)
	assert.Equal(t, domain.DiscountTypePercentage, d.DiscountType)
}

func TestValidateDiscount_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Minimum order amount not met"})
	})

	_, err := client.ValidateDiscount(context.Background(), "SAVE10", decimal.RequireFromString("5"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDiscountRejected))

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Minimum order amount not met", appErr.Message)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Status)
}

func TestCreateOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)

		var req CreateOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Items, 1)
		assert.Equal(t, "p1", req.Items[0].ProductID)
		assert.Equal(t, 2, req.Items[0].Quantity)
		assert.Equal(t, "Jan Jansen", req.Customer.Name)

		_ = json.NewEncoder(w).Encode(domain.Order{
			ID:          "o1",
			OrderNumber: "ORD-2026-0001",
			Status:      domain.OrderStatusPending,
		})
	})

	order, err := client.CreateOrder(context.Background(), CreateOrderRequest{
		Items:         []OrderItemRequest{{ProductID: "p1", Quantity: 2}},
		Customer:      domain.CustomerInfo{Name: "Jan Jansen", Email: "jan@example.com"},
		PaymentMethod: "ideal",
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-2026-0001", order.OrderNumber)
}

func TestProcessMockPayment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payment/mock", r.URL.Path)
		assert.Equal(t, "o1", r.URL.Query().Get("order_id"))
		assert.Equal(t, "true", r.URL.Query().Get("success"))

		_ = json.NewEncoder(w).Encode(PaymentResult{
			OrderID:       "o1",
			PaymentStatus: "paid",
			Message:       "Payment processed",
		})
	})

	result, err := client.ProcessMockPayment(context.Background(), "o1", true)
	require.NoError(t, err)
	assert.Equal(t, "paid", result.PaymentStatus)
}

func TestBackendError_MapsToBadGateway(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Product(context.Background(), "p1")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "BACKEND_ERROR", appErr.Code)
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
}

func TestUnreachableBackend(t *testing.T) {
	client := New("http://127.0.0.1:1", testConfig())

	_, err := client.Product(context.Background(), "p1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBackendUnavail))
}
