package usecase

import (
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
)

var transitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusPending:    {model.OrderStatusConfirmed, model.OrderStatusCancelled},
	model.OrderStatusConfirmed:  {model.OrderStatusProcessing, model.OrderStatusCancelled},
	model.OrderStatusProcessing: {model.OrderStatusShipped, model.OrderStatusCancelled},
	model.OrderStatusShipped:    {model.OrderStatusDelivered},
	model.OrderStatusDelivered:  {model.OrderStatusRefunded},
	model.OrderStatusCancelled:  {},
	model.OrderStatusRefunded:   {},
}

// CanTransition reports whether the graph has an edge from -> to.
func CanTransition(from, to model.OrderStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns a copy of the statuses reachable from s in one step.
func AllowedTransitions(s model.OrderStatus) []model.OrderStatus {
	allowed := transitions[s]
	result := make([]model.OrderStatus, len(allowed))
	copy(result, allowed)
	return result
}

// IsTerminal reports whether no transition leaves s.
func IsTerminal(s model.OrderStatus) bool {
	return len(transitions[s]) == 0
}

// ParseOrderStatus normalizes raw input into a known status.
func ParseOrderStatus(raw string) (model.OrderStatus, error) {
	status := model.OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !status.Valid() {
		return "", fmt.Errorf("%w: unknown order status %q", domainErrors.ErrInvalidInput, raw)
	}
	return status, nil
}

// restoresInventory is true only for cancellations of orders that held reserved stock.
func restoresInventory(from, to model.OrderStatus) bool {
	if to != model.OrderStatusCancelled {
		return false
	}
	return from == model.OrderStatusConfirmed || from == model.OrderStatusProcessing
}

// predecessor returns the first status, in lifecycle order, with an edge into to.
func predecessor(to model.OrderStatus) (model.OrderStatus, bool) {
	for _, from := range model.OrderStatuses {
		if CanTransition(from, to) {
			return from, true
		}
	}
	return "", false
}

func transitionNote(from, to model.OrderStatus) string {
	return fmt.Sprintf("Status changed from %s to %s", from, to)
}
