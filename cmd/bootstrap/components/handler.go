package components

import (
	"table-orders/internal/handler"
	"table-orders/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewMenuHandler,
	),
	fx.Invoke(handler.NewRouter),
)
