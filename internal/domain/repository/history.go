package repository

import (
	"context"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// HistoryRepository appends order status history entries.
type HistoryRepository interface {
	Append(ctx context.Context, entry model.OrderStatusHistoryEntry) error
	// AppendMany writes one entry per order id in a single statement.
	AppendMany(ctx context.Context, orderIDs []int64, status model.OrderStatus, note string, adminID int64) error
}
