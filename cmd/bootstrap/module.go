package bootstrap

import (
	"table-orders/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	MigrationModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
