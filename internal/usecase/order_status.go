package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/domain/repository"
)

// EventOrderStatusChanged is recorded after every committed transition.
const EventOrderStatusChanged = "order.status_changed"

// OrderStatusUseCase validates and applies single-order status changes.
type OrderStatusUseCase struct {
	uow      repository.UnitOfWork
	orders   repository.OrderReader
	activity model.ActivityLog
	logger   *slog.Logger
}

// NewOrderStatusUseCase constructs OrderStatusUseCase.
func NewOrderStatusUseCase(uow repository.UnitOfWork, orders repository.OrderReader, activity model.ActivityLog, logger *slog.Logger) *OrderStatusUseCase {
	return &OrderStatusUseCase{uow: uow, orders: orders, activity: activity, logger: logger}
}

// Transition moves the order to requested if the status graph allows it. The status update,
// the history entry and any inventory restoration commit together or not at all.
func (u *OrderStatusUseCase) Transition(ctx context.Context, orderID int64, requested model.OrderStatus, adminID int64) (*model.TransitionResult, error) {
	if orderID <= 0 {
		return nil, fmt.Errorf("%w: order id must be positive", domainErrors.ErrInvalidInput)
	}
	if adminID <= 0 {
		return nil, fmt.Errorf("%w: admin id must be positive", domainErrors.ErrInvalidInput)
	}
	if !requested.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", domainErrors.ErrInvalidInput, requested)
	}

	var result model.TransitionResult
	err := u.uow.WithinTransaction(ctx, func(tx repository.Tx) error {
		order, err := tx.Orders().GetForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return fmt.Errorf("%w: order %d", domainErrors.ErrNotFound, orderID)
			}
			return err
		}

		from := order.Status
		if !CanTransition(from, requested) {
			return fmt.Errorf("%w: order %d cannot move from %s to %s", domainErrors.ErrInvalidTransition, orderID, from, requested)
		}

		if err := tx.Orders().UpdateStatus(ctx, orderID, requested); err != nil {
			return err
		}

		entry := model.OrderStatusHistoryEntry{
			OrderID: orderID,
			Status:  requested,
			Note:    transitionNote(from, requested),
			AdminID: adminID,
		}
		if err := tx.History().Append(ctx, entry); err != nil {
			return err
		}

		restocked := 0
		if restoresInventory(from, requested) {
			if restocked, err = u.restoreInventory(ctx, tx, orderID); err != nil {
				return err
			}
		}

		result = model.TransitionResult{
			OrderID:        orderID,
			PreviousStatus: from,
			Status:         requested,
			Message:        fmt.Sprintf("Order #%d status updated from %s to %s", orderID, from, requested),
			RestockedItems: restocked,
		}
		return nil
	})
	if err != nil {
		return nil, classify(u.logger, err, "order status transition",
			slog.Int64("order_id", orderID),
			slog.String("requested", string(requested)),
			slog.Int64("admin_id", adminID),
		)
	}

	u.activity.Record(ctx, EventOrderStatusChanged, map[string]any{
		"order_id":        orderID,
		"from":            string(result.PreviousStatus),
		"to":              string(result.Status),
		"admin_id":        adminID,
		"restocked_items": result.RestockedItems,
	})

	return &result, nil
}

// Details returns the order with its history and the statuses it may move to next.
func (u *OrderStatusUseCase) Details(ctx context.Context, orderID int64) (*model.OrderDetails, error) {
	if orderID <= 0 {
		return nil, fmt.Errorf("%w: order id must be positive", domainErrors.ErrInvalidInput)
	}

	order, err := u.orders.Get(ctx, orderID)
	if err != nil {
		return nil, classify(u.logger, err, "order lookup", slog.Int64("order_id", orderID))
	}

	history, err := u.orders.History(ctx, orderID)
	if err != nil {
		return nil, classify(u.logger, err, "order history lookup", slog.Int64("order_id", orderID))
	}

	return &model.OrderDetails{
		Order:       *order,
		History:     history,
		NextAllowed: AllowedTransitions(order.Status),
	}, nil
}

// restoreInventory returns the number of line items whose stock counter was found and restored.
func (u *OrderStatusUseCase) restoreInventory(ctx context.Context, tx repository.Tx, orderID int64) (int, error) {
	items, err := tx.Orders().LineItems(ctx, orderID)
	if err != nil {
		return 0, err
	}

	restored := 0
	for _, item := range items {
		var ok bool
		if item.VariantID != nil {
			ok, err = tx.Inventory().RestoreVariant(ctx, *item.VariantID, item.Quantity)
		} else {
			ok, err = tx.Inventory().RestoreProduct(ctx, item.ProductID, item.Quantity)
		}
		if err != nil {
			return 0, err
		}
		if !ok {
			attrs := []any{
				slog.Int64("order_id", orderID),
				slog.Int64("product_id", item.ProductID),
				slog.Int("quantity", item.Quantity),
			}
			if item.VariantID != nil {
				attrs = append(attrs, slog.Int64("variant_id", *item.VariantID))
			}
			u.logger.Warn("stock counter missing, item not restocked", attrs...)
			continue
		}
		restored++
	}
	return restored, nil
}
