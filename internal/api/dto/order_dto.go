package dto

import (
	"github.com/shopspring/decimal"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// ProductResponse mirrors a catalog row.
type ProductResponse struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// PlaceOrderRequest is the body for placing a single order directly.
// DeliveryDate is YYYY-MM-DD; empty means today.
type PlaceOrderRequest struct {
	ProductID    int64  `json:"product_id"`
	Quantity     int    `json:"quantity"`
	DeliveryDate string `json:"delivery_date"`
}

// PlaceOrderResponse echoes the created ledger row.
type PlaceOrderResponse struct {
	ID           int64              `json:"id"`
	ProductID    int64              `json:"product_id"`
	Quantity     int                `json:"quantity"`
	DeliveryDate string             `json:"delivery_date"`
	Status       domain.OrderStatus `json:"status"`
}

// OrderSummaryResponse is an order joined with its reference data.
type OrderSummaryResponse struct {
	ID           int64              `json:"id"`
	CustomerName string             `json:"customer_name"`
	ProductName  string             `json:"product_name"`
	UnitPrice    decimal.Decimal    `json:"unit_price"`
	Quantity     int                `json:"quantity"`
	DeliveryDate string             `json:"delivery_date"`
	Status       domain.OrderStatus `json:"status"`
}

// StatsResponse carries the fulfillment counters.
type StatsResponse struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Delivered int64 `json:"delivered"`
}

// RevenueResponse carries the delivered-orders revenue total.
type RevenueResponse struct {
	Total decimal.Decimal `json:"total"`
}
