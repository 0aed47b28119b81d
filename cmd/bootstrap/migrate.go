package bootstrap

import (
	"context"
	"log/slog"

	"table-orders/internal/infra/migrate"
	"table-orders/internal/infra/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// MigrationModule applies pending migrations and seeds the menu catalog
// before anything starts serving requests.
var MigrationModule = fx.Module("migration",
	fx.Invoke(runMigrations),
)

func runMigrations(pool *pgxpool.Pool) error {
	if err := migrate.Up(pool); err != nil {
		return err
	}
	slog.Info("database migrations applied")

	if err := repository.NewMenuRepository(pool).EnsureCatalog(context.Background()); err != nil {
		return err
	}
	slog.Info("menu catalog ready")

	return nil
}
