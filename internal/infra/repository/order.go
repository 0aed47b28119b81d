package repository

import (
	"context"

	"table-orders/internal/domain/order"
	"table-orders/internal/infra"
	"table-orders/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

const completeOrderColumns = `
	o.id AS order_id,
	o.table_number,
	o.menu_item_id,
	o.created_at,
	m.item_name,
	m.cooking_time
`

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (uuid.UUID, error) {
	const query = `
		INSERT INTO orders (id, table_number, menu_item_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query, o.ID, o.TableNumber, o.MenuItemID, o.CreatedAt).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}
	return id, nil
}

func (r *OrderRepository) FindByTable(ctx context.Context, tableNumber int32) ([]*queries.CompleteOrderView, error) {
	const query = `
		SELECT ` + completeOrderColumns + `
		FROM orders o
		JOIN menu_items m ON m.id = o.menu_item_id
		WHERE o.table_number = $1
		ORDER BY o.created_at DESC, o.id DESC`

	rows, err := r.pool.Query(ctx, query, tableNumber)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list table orders", err)
	}
	defer rows.Close()

	views := make([]*queries.CompleteOrderView, 0)
	for rows.Next() {
		var v queries.CompleteOrderView
		if err := rows.Scan(&v.OrderID, &v.TableNumber, &v.MenuItemID, &v.CreatedAt, &v.ItemName, &v.CookingTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan table order", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read table orders", err)
	}
	return views, nil
}

func (r *OrderRepository) FindLatestItem(ctx context.Context, menuItemID, tableNumber int32) (*queries.CompleteOrderView, error) {
	const query = `
		SELECT ` + completeOrderColumns + `
		FROM orders o
		JOIN menu_items m ON m.id = o.menu_item_id
		WHERE o.menu_item_id = $1 AND o.table_number = $2
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT 1`

	var v queries.CompleteOrderView
	err := r.pool.QueryRow(ctx, query, menuItemID, tableNumber).
		Scan(&v.OrderID, &v.TableNumber, &v.MenuItemID, &v.CreatedAt, &v.ItemName, &v.CookingTime)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find latest table order", err)
	}
	return &v, nil
}

// DeleteLatestItem removes the newest matching order in a single statement so
// that selection and deletion cannot interleave with a concurrent delete.
// SKIP LOCKED makes concurrent callers fall through to the next-newest row
// instead of blocking on (and then missing) the same one.
func (r *OrderRepository) DeleteLatestItem(ctx context.Context, menuItemID, tableNumber int32) (int64, error) {
	const query = `
		DELETE FROM orders
		WHERE id = (
			SELECT id FROM orders
			WHERE menu_item_id = $1 AND table_number = $2
			ORDER BY created_at DESC, id DESC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)`

	tag, err := r.pool.Exec(ctx, query, menuItemID, tableNumber)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete latest table order", err)
	}
	return tag.RowsAffected(), nil
}

func (r *OrderRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	const query = `DELETE FROM orders WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete order", err)
	}
	return tag.RowsAffected(), nil
}

// UpdateOrder intentionally does nothing. Orders are immutable once placed;
// corrections are modeled as delete-then-create.
func (r *OrderRepository) UpdateOrder() error {
	return nil
}
