// Package backend is the typed client for the catalog/order REST backend.
// The storefront never re-validates what the backend owns: discount rules,
// stock accounting, and order lifecycle all live upstream.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/koraytemur/hirdavat/internal/domain"
	apperrors "github.com/koraytemur/hirdavat/pkg/errors"
	"github.com/koraytemur/hirdavat/pkg/httpclient"
)

// Client calls the catalog backend REST API.
type Client struct {
	baseURL string
	http    *httpclient.Client
}

// New creates a backend client for the given base URL (e.g.
// "http://backend:8000"). All endpoints live under its /api path.
func New(baseURL string, cfg httpclient.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api",
		http:    httpclient.New(cfg),
	}
}

// ProductQuery narrows a product listing.
type ProductQuery struct {
	CategoryID string
	Search     string
	ActiveOnly bool
	Skip       int
	Limit      int
}

// OrderQuery narrows an order listing.
type OrderQuery struct {
	Status string
	Skip   int
	Limit  int
}

// OrderItemRequest is one line of an order creation request.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	Items         []OrderItemRequest  `json:"items"`
	Customer      domain.CustomerInfo `json:"customer"`
	PaymentMethod string              `json:"payment_method"`
	Notes         string              `json:"notes,omitempty"`
}

// SalesReport is the admin sales report aggregation.
type SalesReport struct {
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	TotalOrders  int             `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	DailySales   []DailySales    `json:"daily_sales"`
}

// DailySales is one day's slice of the sales report.
type DailySales struct {
	Date    string          `json:"date"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// PaymentResult is the response of the mock payment endpoint.
type PaymentResult struct {
	OrderID       string `json:"order_id"`
	PaymentStatus string `json:"payment_status"`
	Message       string `json:"message"`
}

// Categories lists catalog categories.
func (c *Client) Categories(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	q := url.Values{}
	q.Set("active_only", strconv.FormatBool(activeOnly))

	var out []domain.Category
	if err := c.get(ctx, "/categories", q, &out); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

// Category fetches a single category by ID.
func (c *Client) Category(ctx context.Context, id string) (*domain.Category, error) {
	var out domain.Category
	if err := c.get(ctx, "/categories/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, fmt.Errorf("get category %s: %w", id, err)
	}
	return &out, nil
}

// Products lists catalog products matching the query.
func (c *Client) Products(ctx context.Context, query ProductQuery) ([]domain.Product, error) {
	q := url.Values{}
	if query.CategoryID != "" {
		q.Set("category_id", query.CategoryID)
	}
	if query.Search != "" {
		q.Set("search", query.Search)
	}
	if query.ActiveOnly {
		q.Set("active_only", "true")
	}
	if query.Skip > 0 {
		q.Set("skip", strconv.Itoa(query.Skip))
	}
	if query.Limit > 0 {
		q.Set("limit", strconv.Itoa(query.Limit))
	}

	var out []domain.Product
	if err := c.get(ctx, "/products", q, &out); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

// Product fetches a single product by ID.
func (c *Client) Product(ctx context.Context, id string) (*domain.Product, error) {
	var out domain.Product
	if err := c.get(ctx, "/products/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return &out, nil
}

// UpdateStock adjusts a product's stock by quantity (negative decrements) and
// returns the new stock level.
func (c *Client) UpdateStock(ctx context.Context, id string, quantity int) (int, error) {
	q := url.Values{}
	q.Set("quantity", strconv.Itoa(quantity))

	var out struct {
		NewStock int `json:"new_stock"`
	}
	if err := c.do(ctx, http.MethodPatch, "/products/"+url.PathEscape(id)+"/stock", q, nil, &out); err != nil {
		return 0, fmt.Errorf("update stock for %s: %w", id, err)
	}
	return out.NewStock, nil
}

// CreateOrder places an order with the backend.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	var out domain.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, req, &out); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &out, nil
}

// Orders lists orders matching the query.
func (c *Client) Orders(ctx context.Context, query OrderQuery) ([]domain.Order, error) {
	q := url.Values{}
	if query.Status != "" {
		q.Set("status", query.Status)
	}
	if query.Skip > 0 {
		q.Set("skip", strconv.Itoa(query.Skip))
	}
	if query.Limit > 0 {
		q.Set("limit", strconv.Itoa(query.Limit))
	}

	var out []domain.Order
	if err := c.get(ctx, "/orders", q, &out); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

// Order fetches a single order by ID.
func (c *Client) Order(ctx context.Context, id string) (*domain.Order, error) {
	var out domain.Order
	if err := c.get(ctx, "/orders/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return &out, nil
}

// UpdateOrderStatus transitions an order's status.
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) error {
	q := url.Values{}
	q.Set("status", status)
	if err := c.do(ctx, http.MethodPatch, "/orders/"+url.PathEscape(id)+"/status", q, nil, nil); err != nil {
		return fmt.Errorf("update order %s status: %w", id, err)
	}
	return nil
}

// UpdatePaymentStatus transitions an order's payment status.
func (c *Client) UpdatePaymentStatus(ctx context.Context, id, paymentStatus string) error {
	q := url.Values{}
	q.Set("payment_status", paymentStatus)
	if err := c.do(ctx, http.MethodPatch, "/orders/"+url.PathEscape(id)+"/payment", q, nil, nil); err != nil {
		return fmt.Errorf("update order %s payment status: %w", id, err)
	}
	return nil
}

// Discounts lists discount codes.
func (c *Client) Discounts(ctx context.Context, activeOnly bool) ([]domain.Discount, error) {
	q := url.Values{}
	q.Set("active_only", strconv.FormatBool(activeOnly))

	var out []domain.Discount
	if err := c.get(ctx, "/discounts", q, &out); err != nil {
		return nil, fmt.Errorf("list discounts: %w", err)
	}
	return out, nil
}

// ValidateDiscount asks the backend to validate a discount code against the
// given order amount. The backend checks minimum order amount, usage cap,
// validity window, and active flag; a rejection surfaces as
// errors.ErrDiscountRejected.
func (c *Client) ValidateDiscount(ctx context.Context, code string, orderAmount decimal.Decimal) (*domain.Discount, error) {
	q := url.Values{}
	q.Set("order_amount", orderAmount.String())

	var out domain.Discount
	err := c.get(ctx, "/discounts/validate/"+url.PathEscape(code), q, &out)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Status == http.StatusBadRequest {
			return nil, apperrors.DiscountRejected(appErr.Message)
		}
		return nil, fmt.Errorf("validate discount %s: %w", code, err)
	}
	return &out, nil
}

// Customers lists customers.
func (c *Client) Customers(ctx context.Context, skip, limit int) ([]domain.Customer, error) {
	q := url.Values{}
	if skip > 0 {
		q.Set("skip", strconv.Itoa(skip))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out []domain.Customer
	if err := c.get(ctx, "/customers", q, &out); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return out, nil
}

// Customer fetches a single customer by ID.
func (c *Client) Customer(ctx context.Context, id string) (*domain.Customer, error) {
	var out domain.Customer
	if err := c.get(ctx, "/customers/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, fmt.Errorf("get customer %s: %w", id, err)
	}
	return &out, nil
}

// DashboardStats fetches the admin dashboard aggregation.
func (c *Client) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var out domain.DashboardStats
	if err := c.get(ctx, "/admin/dashboard", nil, &out); err != nil {
		return nil, fmt.Errorf("get dashboard stats: %w", err)
	}
	return &out, nil
}

// SalesReport fetches the admin sales report for the given date range
// (YYYY-MM-DD, either side may be empty).
func (c *Client) SalesReport(ctx context.Context, startDate, endDate string) (*SalesReport, error) {
	q := url.Values{}
	if startDate != "" {
		q.Set("start_date", startDate)
	}
	if endDate != "" {
		q.Set("end_date", endDate)
	}

	var out SalesReport
	if err := c.get(ctx, "/admin/reports/sales", q, &out); err != nil {
		return nil, fmt.Errorf("get sales report: %w", err)
	}
	return &out, nil
}

// ProcessMockPayment triggers the backend's mock payment flow for an order.
func (c *Client) ProcessMockPayment(ctx context.Context, orderID string, success bool) (*PaymentResult, error) {
	q := url.Values{}
	q.Set("order_id", orderID)
	q.Set("success", strconv.FormatBool(success))

	var out PaymentResult
	if err := c.do(ctx, http.MethodPost, "/payment/mock", q, nil, &out); err != nil {
		return nil, fmt.Errorf("process mock payment for %s: %w", orderID, err)
	}
	return &out, nil
}

// --- transport helpers ---

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return apperrors.BackendUnavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorFromResponse maps a backend error response to an AppError. The backend
// reports failures as {"detail": "..."}.
func (c *Client) errorFromResponse(resp *http.Response) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	message := http.StatusText(resp.StatusCode)

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && json.Unmarshal(data, &payload) == nil && payload.Detail != "" {
		message = payload.Detail
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return &apperrors.AppError{
			Code:    "NOT_FOUND",
			Message: message,
			Status:  http.StatusNotFound,
			Err:     apperrors.ErrNotFound,
		}
	case http.StatusBadRequest:
		return &apperrors.AppError{
			Code:    "INVALID_INPUT",
			Message: message,
			Status:  http.StatusBadRequest,
			Err:     apperrors.ErrInvalidInput,
		}
	default:
		return &apperrors.AppError{
			Code:    "BACKEND_ERROR",
			Message: message,
			Status:  http.StatusBadGateway,
			Err:     apperrors.ErrBackendUnavail,
		}
	}
}
