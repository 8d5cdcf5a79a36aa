package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus enumerates the order delivery lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Valid reports whether the status is a known value.
func (s OrderStatus) Valid() bool {
	return s == OrderStatusPending || s == OrderStatusDelivered
}

// DeliveryDateLayout is the calendar-date format used on the wire and in the ledger.
const DeliveryDateLayout = "2006-01-02"

// Order is a durable record of one confirmed purchase line. Quantity, product
// and delivery date are immutable after creation; only the status flips.
type Order struct {
	ID           int64
	UserID       string
	ProductID    int64
	Quantity     int
	DeliveryDate time.Time
	Status       OrderStatus
	CreatedAt    time.Time
}

// OrderSummary is an order joined with its customer and product reference data,
// as returned by the admin listing.
type OrderSummary struct {
	ID           int64
	CustomerName string
	ProductName  string
	UnitPrice    decimal.Decimal
	Quantity     int
	DeliveryDate time.Time
	Status       OrderStatus
}

// OrderStats are the headline fulfillment counters.
// Pending + Delivered always equals Total.
type OrderStats struct {
	Total     int64
	Pending   int64
	Delivered int64
}
