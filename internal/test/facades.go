package test

import (
	"context"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// AdminFacadeStub implements handlers.AdminFacade with overridable behaviour.
type AdminFacadeStub struct {
	DetailsFn    func(ctx context.Context, orderID int64) (*model.OrderDetails, error)
	TransitionFn func(ctx context.Context, orderID int64, status string, adminID int64) (*model.TransitionResult, error)
	BulkFn       func(ctx context.Context, req model.BulkActionRequest, perms model.PermissionCheck) (*model.BulkResult, error)
	HealthErr    error
}

// OrderDetails returns DetailsFn result or an empty pending order.
func (s AdminFacadeStub) OrderDetails(ctx context.Context, orderID int64) (*model.OrderDetails, error) {
	if s.DetailsFn != nil {
		return s.DetailsFn(ctx, orderID)
	}
	return &model.OrderDetails{Order: model.Order{ID: orderID, Status: model.OrderStatusPending}}, nil
}

// TransitionOrder returns TransitionFn result or echoes the requested status.
func (s AdminFacadeStub) TransitionOrder(ctx context.Context, orderID int64, status string, adminID int64) (*model.TransitionResult, error) {
	if s.TransitionFn != nil {
		return s.TransitionFn(ctx, orderID, status, adminID)
	}
	return &model.TransitionResult{OrderID: orderID, Status: model.OrderStatus(status)}, nil
}

// ExecuteBulk returns BulkFn result or reports every target as affected.
func (s AdminFacadeStub) ExecuteBulk(ctx context.Context, req model.BulkActionRequest, perms model.PermissionCheck) (*model.BulkResult, error) {
	if s.BulkFn != nil {
		return s.BulkFn(ctx, req, perms)
	}
	return &model.BulkResult{Scope: req.Scope, Action: req.Action, Affected: int64(len(req.TargetIDs))}, nil
}

// Health returns HealthErr.
func (s AdminFacadeStub) Health(context.Context) error {
	return s.HealthErr
}
