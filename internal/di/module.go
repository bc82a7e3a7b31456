package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/storeadmin/internal/app"
	"github.com/polkiloo/storeadmin/internal/config"
	"github.com/polkiloo/storeadmin/internal/logger"
	"github.com/polkiloo/storeadmin/internal/metrics"
	"github.com/polkiloo/storeadmin/internal/server/http/router"
	"github.com/polkiloo/storeadmin/internal/storage/postgres"
	"github.com/polkiloo/storeadmin/internal/usecase"
	"github.com/polkiloo/storeadmin/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		postgres.Module,
		worker.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
