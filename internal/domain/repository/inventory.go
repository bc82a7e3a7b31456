package repository

import "context"

// InventoryRepository adjusts stock counters. Restore methods report false when the counter
// row no longer exists.
type InventoryRepository interface {
	RestoreProduct(ctx context.Context, productID int64, quantity int) (bool, error)
	RestoreVariant(ctx context.Context, variantID int64, quantity int) (bool, error)
}
