package repository

import (
	"context"
	"math/rand/v2"

	"table-orders/internal/infra"
	"table-orders/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// catalogDishes is the canonical menu used to seed an empty catalog. Cooking
// times are not part of the canon; they are rolled on each seeding.
var catalogDishes = []string{
	"Borscht", "Pelmeni", "Blini", "Olivier Salad", "Shchi",
	"Beef Stroganoff", "Pirozhki", "Solyanka", "Golubtsy", "Kotlety",
	"Caesar Salad", "Margherita Pizza", "Spaghetti Carbonara", "Lasagna", "Risotto",
	"Minestrone", "Bruschetta", "Tiramisu", "Panna Cotta", "Gnocchi",
	"Miso Soup", "Sushi Roll", "Tempura", "Ramen", "Udon",
	"Tonkatsu", "Onigiri", "Yakitori", "Gyoza", "Sashimi",
	"Tom Yum", "Pad Thai", "Green Curry", "Spring Rolls", "Fried Rice",
	"Peking Duck", "Mapo Tofu", "Dim Sum", "Chow Mein", "Hot Pot",
	"Croissant", "Onion Soup", "Ratatouille", "Quiche Lorraine", "Crepes",
	"Bouillabaisse", "Coq au Vin", "Escargots", "Creme Brulee", "Souffle",
}

const (
	cookingTimeMin  = 5
	cookingTimeSpan = 10 // cooking_time is uniform in [5, 15)
)

type MenuRepository struct {
	pool *pgxpool.Pool
}

func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

func (r *MenuRepository) List(ctx context.Context) ([]*queries.MenuItemView, error) {
	const query = `
		SELECT id, item_name, cooking_time
		FROM menu_items
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	defer rows.Close()

	views := make([]*queries.MenuItemView, 0)
	for rows.Next() {
		var v queries.MenuItemView
		if err := rows.Scan(&v.ID, &v.ItemName, &v.CookingTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read menu items", err)
	}
	return views, nil
}

// EnsureCatalog seeds the menu on first start. A fully populated catalog is
// left untouched; a partial one is rebuilt, which also cascades away any
// orders referencing it.
func (r *MenuRepository) EnsureCatalog(ctx context.Context) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin catalog seeding", err)
	}
	defer tx.Rollback(ctx)

	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&count); err != nil {
		return infra.WrapRepoErr("failed to count menu items", err)
	}
	if count >= int64(len(catalogDishes)) {
		return nil
	}

	if _, err := tx.Exec(ctx, `TRUNCATE menu_items CASCADE`); err != nil {
		return infra.WrapRepoErr("failed to reset menu items", err)
	}

	batch := &pgx.Batch{}
	for i, name := range catalogDishes {
		batch.Queue(
			`INSERT INTO menu_items (id, item_name, cooking_time) VALUES ($1, $2, $3)`,
			int32(i+1), name, int32(cookingTimeMin+rand.IntN(cookingTimeSpan)),
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return infra.WrapRepoErr("failed to seed menu items", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit catalog seeding", err)
	}
	return nil
}
