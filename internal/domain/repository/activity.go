package repository

import (
	"context"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// ActivityRepository persists audit events.
type ActivityRepository interface {
	Append(ctx context.Context, entry model.ActivityEntry) error
}
