package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
)

const selectOrder = `SELECT id, status, total::text, created_at, updated_at FROM orders WHERE id=$1`

type orderRepository struct {
	db querier
}

type orderReader struct {
	db querier
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		order model.Order
		total string
	)
	if err := row.Scan(&order.ID, &order.Status, &total, &order.CreatedAt, &order.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	amount, err := decimal.NewFromString(total)
	if err != nil {
		return nil, fmt.Errorf("order %d total: %w", order.ID, err)
	}
	order.Total = amount
	return &order, nil
}

func lineItems(ctx context.Context, db querier, orderID int64) ([]model.OrderLineItem, error) {
	const query = `SELECT product_id, COALESCE(variant_id, 0), quantity FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderLineItem
	for rows.Next() {
		var (
			item      model.OrderLineItem
			variantID int64
		)
		if err := rows.Scan(&item.ProductID, &variantID, &item.Quantity); err != nil {
			return nil, err
		}
		if variantID > 0 {
			item.VariantID = &variantID
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) GetForUpdate(ctx context.Context, orderID int64) (*model.Order, error) {
	return scanOrder(r.db.QueryRow(ctx, selectOrder+` FOR UPDATE`, orderID))
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`
	tag, err := r.db.Exec(ctx, query, status, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) LineItems(ctx context.Context, orderID int64) ([]model.OrderLineItem, error) {
	return lineItems(ctx, r.db, orderID)
}

func (r *orderRepository) TransitionMany(ctx context.Context, orderIDs []int64, from, to model.OrderStatus) ([]int64, error) {
	const query = `UPDATE orders SET status=$1, updated_at=NOW()
                   WHERE id = ANY($2) AND status=$3
                   RETURNING id`
	rows, err := r.db.Query(ctx, query, to, orderIDs, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var changed []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		changed = append(changed, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	slices.Sort(changed)
	return changed, nil
}

// --- OrderReader implementation ---

func (r *orderReader) Get(ctx context.Context, orderID int64) (*model.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, selectOrder, orderID))
	if err != nil {
		return nil, err
	}
	if order.Items, err = lineItems(ctx, r.db, orderID); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderReader) History(ctx context.Context, orderID int64) ([]model.OrderStatusHistoryEntry, error) {
	const query = `SELECT id, order_id, status, COALESCE(note, ''), admin_id, created_at
                   FROM order_status_history WHERE order_id=$1 ORDER BY created_at, id`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderStatusHistoryEntry
	for rows.Next() {
		var e model.OrderStatusHistoryEntry
		if err := rows.Scan(&e.ID, &e.OrderID, &e.Status, &e.Note, &e.AdminID, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- HistoryRepository implementation ---

type historyRepository struct {
	db querier
}

func (r *historyRepository) Append(ctx context.Context, entry model.OrderStatusHistoryEntry) error {
	const query = `INSERT INTO order_status_history (order_id, status, note, admin_id) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, entry.OrderID, entry.Status, entry.Note, entry.AdminID)
	return err
}

func (r *historyRepository) AppendMany(ctx context.Context, orderIDs []int64, status model.OrderStatus, note string, adminID int64) error {
	const query = `INSERT INTO order_status_history (order_id, status, note, admin_id)
                   SELECT unnest($1::bigint[]), $2, $3, $4`
	_, err := r.db.Exec(ctx, query, orderIDs, status, note, adminID)
	return err
}
