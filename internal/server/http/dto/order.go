package dto

import "time"

// TransitionRequest describes a single order status change.
type TransitionRequest struct {
	Status string `json:"status"`
}

// TransitionResponse reports an applied status change.
type TransitionResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	OrderID        int64  `json:"order_id"`
	PreviousStatus string `json:"previous_status"`
	Status         string `json:"status"`
	RestockedItems int    `json:"restocked_items"`
}

// OrderItemResponse describes an order line.
type OrderItemResponse struct {
	ProductID int64  `json:"product_id"`
	VariantID *int64 `json:"variant_id,omitempty"`
	Quantity  int    `json:"quantity"`
}

// HistoryEntryResponse describes one recorded status change.
type HistoryEntryResponse struct {
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	AdminID   int64     `json:"admin_id"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderDetailsResponse aggregates an order with its history.
type OrderDetailsResponse struct {
	Success     bool                   `json:"success"`
	ID          int64                  `json:"id"`
	Status      string                 `json:"status"`
	Total       string                 `json:"total"`
	Items       []OrderItemResponse    `json:"items"`
	History     []HistoryEntryResponse `json:"history"`
	NextAllowed []string               `json:"next_allowed"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}
