package app

import (
	"context"

	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/metrics"
	"github.com/polkiloo/storeadmin/internal/usecase"
)

// HealthChecker reports whether backing storage is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// AdminFacade exposes store administration use cases to transport adapters.
type AdminFacade struct {
	orders  *usecase.OrderStatusUseCase
	bulk    *usecase.BulkActionUseCase
	health  HealthChecker
	metrics *metrics.Metrics
}

func NewAdminFacade(orders *usecase.OrderStatusUseCase, bulk *usecase.BulkActionUseCase, health HealthChecker, m *metrics.Metrics) *AdminFacade {
	return &AdminFacade{orders: orders, bulk: bulk, health: health, metrics: m}
}

func (f *AdminFacade) OrderDetails(ctx context.Context, orderID int64) (*model.OrderDetails, error) {
	return f.orders.Details(ctx, orderID)
}

// TransitionOrder parses the raw status name; unknown names are reported as invalid input.
func (f *AdminFacade) TransitionOrder(ctx context.Context, orderID int64, status string, adminID int64) (*model.TransitionResult, error) {
	requested, err := usecase.ParseOrderStatus(status)
	if err != nil {
		f.metrics.ObserveFailure("transition")
		return nil, err
	}
	result, err := f.orders.Transition(ctx, orderID, requested, adminID)
	if err != nil {
		f.metrics.ObserveFailure("transition")
		return nil, err
	}
	f.metrics.ObserveTransition(result)
	return result, nil
}

func (f *AdminFacade) ExecuteBulk(ctx context.Context, req model.BulkActionRequest, perms model.PermissionCheck) (*model.BulkResult, error) {
	result, err := f.bulk.Execute(ctx, req, perms)
	if err != nil {
		f.metrics.ObserveFailure("bulk")
		return nil, err
	}
	f.metrics.ObserveBulk(result)
	return result, nil
}

func (f *AdminFacade) Health(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
