//go:build e2e

package dbtest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TestMenuItems is the fixed catalog used across e2e tests so assertions on
// names and cooking times stay deterministic.
var TestMenuItems = []struct {
	ID          int32
	ItemName    string
	CookingTime int32
}{
	{1, "Soup", 10},
	{2, "Steak", 14},
	{3, "Salad", 5},
}

// SeedMenu replaces the catalog with the fixed test menu.
func SeedMenu(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, `TRUNCATE menu_items CASCADE`); err != nil {
		return err
	}
	for _, item := range TestMenuItems {
		_, err := pool.Exec(ctx,
			`INSERT INTO menu_items (id, item_name, cooking_time) VALUES ($1, $2, $3)`,
			item.ID, item.ItemName, item.CookingTime)
		if err != nil {
			return err
		}
	}
	return nil
}

// ResetDB clears order state between subtests. The catalog is left in place.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `TRUNCATE orders`)
	return err
}
