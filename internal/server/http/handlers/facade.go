package handlers

import (
	"context"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// OrderFacade encapsulates single-order operations exposed via HTTP.
type OrderFacade interface {
	OrderDetails(ctx context.Context, orderID int64) (*model.OrderDetails, error)
	TransitionOrder(ctx context.Context, orderID int64, status string, adminID int64) (*model.TransitionResult, error)
}

// BulkFacade applies batch actions.
type BulkFacade interface {
	ExecuteBulk(ctx context.Context, req model.BulkActionRequest, perms model.PermissionCheck) (*model.BulkResult, error)
}

// HealthFacade reports readiness.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// AdminFacade aggregates the full set of operations used across handlers.
type AdminFacade interface {
	OrderFacade
	BulkFacade
	HealthFacade
}
