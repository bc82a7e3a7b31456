package usecase

import (
	"errors"
	"log/slog"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
)

var domainFailures = []error{
	domainErrors.ErrNotFound,
	domainErrors.ErrInvalidInput,
	domainErrors.ErrInvalidTransition,
	domainErrors.ErrForbidden,
	domainErrors.ErrUnknownAction,
	domainErrors.ErrStoreFailure,
}

// classify passes domain errors through and hides everything else behind ErrStoreFailure.
func classify(logger *slog.Logger, err error, op string, attrs ...any) error {
	for _, known := range domainFailures {
		if errors.Is(err, known) {
			return err
		}
	}
	logger.Error(op+" failed", append(attrs, slog.String("error", err.Error()))...)
	return domainErrors.ErrStoreFailure
}
