package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

type activityRepository struct {
	db querier
}

func (r *activityRepository) Append(ctx context.Context, entry model.ActivityEntry) error {
	payload, err := json.Marshal(entry.Payload)
	if err != nil {
		return fmt.Errorf("encode activity payload: %w", err)
	}
	const query = `INSERT INTO activity_log (event_id, event, payload, occurred_at) VALUES ($1, $2, $3, $4)`
	_, err = r.db.Exec(ctx, query, entry.ID, entry.Event, payload, entry.OccurredAt)
	return err
}
