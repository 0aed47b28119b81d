package components

import (
	repo_impl "table-orders/internal/infra/repository"
	"table-orders/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(usecase.OrderRepository)),
		),
		fx.Annotate(
			repo_impl.NewMenuRepository,
			fx.As(new(usecase.MenuRepository)),
		),
	),
)
