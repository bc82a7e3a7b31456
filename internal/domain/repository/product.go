package repository

import "context"

// ProductRepository applies catalog-wide product changes.
type ProductRepository interface {
	SetActive(ctx context.Context, productIDs []int64, active bool) (int64, error)
	// Delete removes images and variants before the products themselves and returns deleted product rows.
	Delete(ctx context.Context, productIDs []int64) (int64, error)
}
