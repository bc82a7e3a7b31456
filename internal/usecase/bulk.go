package usecase

import (
	"context"
	"fmt"
	"log/slog"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/domain/repository"
)

// EventBulkPrefix prefixes the activity event recorded once per bulk call.
const EventBulkPrefix = "bulk."

type bulkScope struct {
	capability model.Capability
	actions    []model.BulkAction
}

func (s bulkScope) allows(action model.BulkAction) bool {
	for _, a := range s.actions {
		if a == action {
			return true
		}
	}
	return false
}

var bulkScopes = map[model.BulkScope]bulkScope{
	model.BulkScopeProducts: {
		capability: model.CapabilityManageProducts,
		actions: []model.BulkAction{
			model.BulkActionActivate,
			model.BulkActionDeactivate,
			model.BulkActionDelete,
			model.BulkActionExportSelected,
		},
	},
	model.BulkScopeOrders: {
		capability: model.CapabilityManageOrders,
		actions: []model.BulkAction{
			model.BulkActionMarkProcessing,
			model.BulkActionMarkShipped,
			model.BulkActionMarkDelivered,
			model.BulkActionExportSelected,
		},
	},
}

var bulkStatusTargets = map[model.BulkAction]model.OrderStatus{
	model.BulkActionMarkProcessing: model.OrderStatusProcessing,
	model.BulkActionMarkShipped:    model.OrderStatusShipped,
	model.BulkActionMarkDelivered:  model.OrderStatusDelivered,
}

// BulkActionUseCase applies one named action to a batch of entities atomically.
type BulkActionUseCase struct {
	uow      repository.UnitOfWork
	activity model.ActivityLog
	logger   *slog.Logger
}

// NewBulkActionUseCase constructs BulkActionUseCase.
func NewBulkActionUseCase(uow repository.UnitOfWork, activity model.ActivityLog, logger *slog.Logger) *BulkActionUseCase {
	return &BulkActionUseCase{uow: uow, activity: activity, logger: logger}
}

// Execute validates the request, checks the scope's capability and then runs the action for
// every target inside one transaction.
func (u *BulkActionUseCase) Execute(ctx context.Context, req model.BulkActionRequest, perms model.PermissionCheck) (*model.BulkResult, error) {
	scope, ok := bulkScopes[req.Scope]
	if !ok {
		return nil, fmt.Errorf("%w: unknown bulk scope %q", domainErrors.ErrInvalidInput, req.Scope)
	}
	if !scope.allows(req.Action) {
		return nil, fmt.Errorf("%w: %q is not a %s action", domainErrors.ErrUnknownAction, req.Action, req.Scope)
	}

	ids := NormalizeIDs(req.TargetIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no valid target ids", domainErrors.ErrInvalidInput)
	}
	if req.AdminID <= 0 {
		return nil, fmt.Errorf("%w: admin id must be positive", domainErrors.ErrInvalidInput)
	}
	if perms == nil || !perms.Has(scope.capability) {
		return nil, fmt.Errorf("%w: %s requires %s", domainErrors.ErrForbidden, req.Action, scope.capability)
	}

	result := model.BulkResult{Scope: req.Scope, Action: req.Action}

	if req.Action == model.BulkActionExportSelected {
		result.Message = fmt.Sprintf("%d selected %s prepared for export", len(ids), req.Scope)
		u.record(ctx, req, ids, result)
		return &result, nil
	}

	err := u.uow.WithinTransaction(ctx, func(tx repository.Tx) error {
		switch req.Action {
		case model.BulkActionActivate, model.BulkActionDeactivate:
			n, err := tx.Products().SetActive(ctx, ids, req.Action == model.BulkActionActivate)
			if err != nil {
				return err
			}
			result.Affected = n
		case model.BulkActionDelete:
			n, err := tx.Products().Delete(ctx, ids)
			if err != nil {
				return err
			}
			result.Affected = n
		case model.BulkActionMarkProcessing, model.BulkActionMarkShipped, model.BulkActionMarkDelivered:
			to := bulkStatusTargets[req.Action]
			from, ok := predecessor(to)
			if !ok {
				return fmt.Errorf("%w: no status leads to %s", domainErrors.ErrInvalidTransition, to)
			}
			changed, err := tx.Orders().TransitionMany(ctx, ids, from, to)
			if err != nil {
				return err
			}
			if len(changed) > 0 {
				if err := tx.History().AppendMany(ctx, changed, to, transitionNote(from, to)+" (bulk action)", req.AdminID); err != nil {
					return err
				}
			}
			result.Affected = int64(len(changed))
			result.AffectedIDs = changed
		default:
			return fmt.Errorf("%w: %q", domainErrors.ErrUnknownAction, req.Action)
		}
		return nil
	})
	if err != nil {
		return nil, classify(u.logger, err, "bulk action",
			slog.String("scope", string(req.Scope)),
			slog.String("action", string(req.Action)),
			slog.Int("targets", len(ids)),
		)
	}

	result.Message = fmt.Sprintf("%s applied to %d of %d selected %s", req.Action, result.Affected, len(ids), req.Scope)
	u.record(ctx, req, ids, result)
	return &result, nil
}

func (u *BulkActionUseCase) record(ctx context.Context, req model.BulkActionRequest, ids []int64, result model.BulkResult) {
	u.activity.Record(ctx, EventBulkPrefix+string(req.Action), map[string]any{
		"scope":      string(req.Scope),
		"action":     string(req.Action),
		"affected":   result.Affected,
		"target_ids": ids,
		"admin_id":   req.AdminID,
	})
}
