package components

import (
	"table-orders/internal/pkg/clock"
	"table-orders/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewOrderUseCase,
		usecase.NewMenuUseCase,
	),
)
