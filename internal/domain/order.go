package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order status constants.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Payment status constants.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// OrderItem is a single line of a placed order, priced at order time.
type OrderItem struct {
	ProductID   string           `json:"product_id"`
	ProductName MultilingualText `json:"product_name"`
	Quantity    int              `json:"quantity"`
	Price       decimal.Decimal  `json:"price"`
	Total       decimal.Decimal  `json:"total"`
}

// CustomerInfo holds the customer details captured at checkout.
type CustomerInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Order represents an order as returned by the backend.
type Order struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"order_number"`
	Items         []OrderItem     `json:"items"`
	Customer      CustomerInfo    `json:"customer"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Customer represents a returning customer as tracked by the backend.
type Customer struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	City        string          `json:"city"`
	PostalCode  string          `json:"postal_code"`
	Country     string          `json:"country"`
	TotalOrders int             `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DashboardStats aggregates the admin dashboard numbers.
type DashboardStats struct {
	TotalProducts    int             `json:"total_products"`
	TotalOrders      int             `json:"total_orders"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalCustomers   int             `json:"total_customers"`
	PendingOrders    int             `json:"pending_orders"`
	LowStockProducts int             `json:"low_stock_products"`
	RecentOrders     []Order         `json:"recent_orders"`
	TopProducts      []Product       `json:"top_products"`
}

// ValidOrderStatuses returns the set of valid order statuses.
func ValidOrderStatuses() []string {
	return []string{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// IsValidOrderStatus checks whether the given string is a valid order status.
func IsValidOrderStatus(s string) bool {
	for _, v := range ValidOrderStatuses() {
		if v == s {
			return true
		}
	}
	return false
}
