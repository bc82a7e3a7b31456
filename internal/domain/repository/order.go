package repository

import (
	"context"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// OrderRepository describes transactional persistence operations with orders.
type OrderRepository interface {
	// GetForUpdate loads the order and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, orderID int64) (*model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	LineItems(ctx context.Context, orderID int64) ([]model.OrderLineItem, error)
	// TransitionMany moves the orders currently in from to to and returns the ids that changed.
	TransitionMany(ctx context.Context, orderIDs []int64, from, to model.OrderStatus) ([]int64, error)
}

// OrderReader provides read-only order queries outside a transaction.
type OrderReader interface {
	Get(ctx context.Context, orderID int64) (*model.Order, error)
	History(ctx context.Context, orderID int64) ([]model.OrderStatusHistoryEntry, error)
}
