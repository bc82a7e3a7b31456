package worker

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/storeadmin/internal/config"
	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/domain/repository"
)

// Module wires the activity writer as the application's model.ActivityLog.
var Module = fx.Options(
	fx.Provide(
		newActivityWriter,
		func(w *ActivityWriter) model.ActivityLog { return w },
	),
)

type writerParams struct {
	fx.In

	Repo   repository.ActivityRepository
	Config *config.Config
	Logger *slog.Logger
}

func newActivityWriter(p writerParams) *ActivityWriter {
	return NewActivityWriter(p.Repo, p.Config.ActivityWorkers, p.Config.ActivityBuffer, p.Logger)
}
