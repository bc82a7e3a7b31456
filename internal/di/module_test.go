package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/storeadmin/internal/app"
	"github.com/polkiloo/storeadmin/internal/config"
	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/domain/repository"
	"github.com/polkiloo/storeadmin/internal/storage/postgres"
	"github.com/polkiloo/storeadmin/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		LogLevel:        slog.LevelInfo,
		ActivityWorkers: 1,
		ActivityBuffer:  1,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	store := test.NewMemoryStore()
	store.AddOrder(model.Order{ID: 1, Status: model.OrderStatusPending})

	var facade *app.AdminFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(fx.Annotate(store, fx.As(new(repository.UnitOfWork)))),
			fx.Replace(fx.Annotate(store, fx.As(new(repository.OrderReader)))),
			fx.Replace(fx.Annotate(&test.ActivityRepositoryStub{}, fx.As(new(repository.ActivityRepository)))),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected admin facade instance")
	}

	result, err := facade.TransitionOrder(context.Background(), 1, "confirmed", 9)
	if err != nil {
		t.Fatalf("transition through composed graph failed: %v", err)
	}
	if result.Status != model.OrderStatusConfirmed {
		t.Fatalf("unexpected status %q", result.Status)
	}
}
