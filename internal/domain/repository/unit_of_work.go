package repository

import "context"

// Tx exposes repositories bound to one database transaction.
type Tx interface {
	Orders() OrderRepository
	History() HistoryRepository
	Inventory() InventoryRepository
	Products() ProductRepository
}

// UnitOfWork runs fn atomically. A non-nil error from fn rolls every change back.
type UnitOfWork interface {
	WithinTransaction(ctx context.Context, fn func(tx Tx) error) error
}
