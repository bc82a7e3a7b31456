package usecase

import "go.uber.org/fx"

// Module provides the order lifecycle use cases to the fx container.
var Module = fx.Provide(
	NewOrderStatusUseCase,
	NewBulkActionUseCase,
)
