package events

import (
	"time"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrdersPlaced   EventType = "orders_placed"
	EventOrderDelivered EventType = "order_delivered"
	EventOrderDeleted   EventType = "order_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrdersPlacedPayload describes a successful checkout.
type OrdersPlacedPayload struct {
	OrderIDs     []int64 `json:"order_ids"`
	DeliveryDate string  `json:"delivery_date"`
}

// OrderDeliveredPayload describes a status flip to delivered.
type OrderDeliveredPayload struct {
	OrderID        int64              `json:"order_id"`
	PreviousStatus domain.OrderStatus `json:"previous_status"`
}

// OrderDeletedPayload describes a ledger removal.
type OrderDeletedPayload struct {
	OrderID int64              `json:"order_id"`
	Status  domain.OrderStatus `json:"status"`
}
