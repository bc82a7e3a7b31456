package postgres

import "context"

// --- InventoryRepository implementation ---

type inventoryRepository struct {
	db querier
}

func (r *inventoryRepository) RestoreProduct(ctx context.Context, productID int64, quantity int) (bool, error) {
	const query = `UPDATE products SET stock_quantity = stock_quantity + $1, updated_at=NOW() WHERE id=$2`
	tag, err := r.db.Exec(ctx, query, quantity, productID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *inventoryRepository) RestoreVariant(ctx context.Context, variantID int64, quantity int) (bool, error) {
	const query = `UPDATE product_variants SET stock_quantity = stock_quantity + $1 WHERE id=$2`
	tag, err := r.db.Exec(ctx, query, quantity, variantID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// --- ProductRepository implementation ---

type productRepository struct {
	db querier
}

func (r *productRepository) SetActive(ctx context.Context, productIDs []int64, active bool) (int64, error) {
	const query = `UPDATE products SET is_active=$1, updated_at=NOW() WHERE id = ANY($2)`
	tag, err := r.db.Exec(ctx, query, active, productIDs)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *productRepository) Delete(ctx context.Context, productIDs []int64) (int64, error) {
	dependents := []string{
		`DELETE FROM product_images WHERE product_id = ANY($1)`,
		`DELETE FROM product_variants WHERE product_id = ANY($1)`,
	}
	for _, stmt := range dependents {
		if _, err := r.db.Exec(ctx, stmt, productIDs); err != nil {
			return 0, err
		}
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = ANY($1)`, productIDs)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
