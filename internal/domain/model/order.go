package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes the fulfilment lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// OrderStatuses lists every known status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusRefunded,
}

// Valid reports whether s belongs to the status enumeration.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order describes a customer order as seen by store administration.
type Order struct {
	ID        int64
	Status    OrderStatus
	Total     decimal.Decimal
	Items     []OrderLineItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderLineItem references the product, and optionally the variant, an order reserved stock for.
type OrderLineItem struct {
	ProductID int64
	VariantID *int64
	Quantity  int
}

// OrderStatusHistoryEntry is an append-only record of an applied transition.
type OrderStatusHistoryEntry struct {
	ID        int64
	OrderID   int64
	Status    OrderStatus
	Note      string
	AdminID   int64
	CreatedAt time.Time
}

// TransitionResult describes an applied single-order transition.
type TransitionResult struct {
	OrderID        int64
	PreviousStatus OrderStatus
	Status         OrderStatus
	Message        string
	RestockedItems int
}

// OrderDetails aggregates an order with its history and reachable statuses.
type OrderDetails struct {
	Order       Order
	History     []OrderStatusHistoryEntry
	NextAllowed []OrderStatus
}
