//go:build unit

package usecase_test

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"table-orders/internal/domain/order"
	"table-orders/internal/infra"
	"table-orders/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeOrderRepository is an in-memory implementation of the order repository
// contract. It mirrors the relational semantics the use cases rely on: the
// catalog referential check on create, and "latest" selection ordered by
// created_at descending with the identifier as deterministic tie-break.
type fakeOrderRepository struct {
	mu    sync.Mutex
	menu  map[int32]order.MenuItem
	items map[uuid.UUID]order.Order
}

func newFakeOrderRepository(menu ...order.MenuItem) *fakeOrderRepository {
	r := &fakeOrderRepository{
		menu:  make(map[int32]order.MenuItem),
		items: make(map[uuid.UUID]order.Order),
	}
	for _, m := range menu {
		r.menu[m.ID] = m
	}
	return r
}

func (r *fakeOrderRepository) Create(_ context.Context, o *order.Order) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.menu[o.MenuItemID]; !ok {
		return uuid.Nil, infra.WrapRepoErr("failed to create order",
			&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})
	}
	r.items[o.ID] = *o
	return o.ID, nil
}

func (r *fakeOrderRepository) FindByTable(_ context.Context, tableNumber int32) ([]*queries.CompleteOrderView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*queries.CompleteOrderView
	for _, o := range r.items {
		if o.TableNumber == tableNumber {
			result = append(result, r.toView(o))
		}
	}
	sortNewestFirst(result)
	if result == nil {
		result = []*queries.CompleteOrderView{}
	}
	return result, nil
}

func (r *fakeOrderRepository) FindLatestItem(_ context.Context, menuItemID, tableNumber int32) (*queries.CompleteOrderView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	latest := r.latestLocked(menuItemID, tableNumber)
	if latest == nil {
		return nil, infra.WrapRepoErr("failed to find order", pgx.ErrNoRows)
	}
	return r.toView(*latest), nil
}

func (r *fakeOrderRepository) DeleteLatestItem(_ context.Context, menuItemID, tableNumber int32) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	latest := r.latestLocked(menuItemID, tableNumber)
	if latest == nil {
		return 0, nil
	}
	delete(r.items, latest.ID)
	return 1, nil
}

func (r *fakeOrderRepository) DeleteByID(_ context.Context, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

func (r *fakeOrderRepository) UpdateOrder() error {
	return nil
}

func (r *fakeOrderRepository) latestLocked(menuItemID, tableNumber int32) *order.Order {
	var latest *order.Order
	for id := range r.items {
		o := r.items[id]
		if o.MenuItemID != menuItemID || o.TableNumber != tableNumber {
			continue
		}
		if latest == nil || newer(o, *latest) {
			latest = &o
		}
	}
	return latest
}

func (r *fakeOrderRepository) toView(o order.Order) *queries.CompleteOrderView {
	m := r.menu[o.MenuItemID]
	return &queries.CompleteOrderView{
		OrderID:     o.ID,
		TableNumber: o.TableNumber,
		MenuItemID:  o.MenuItemID,
		CreatedAt:   o.CreatedAt,
		ItemName:    m.ItemName,
		CookingTime: m.CookingTime,
	}
}

// newer reports whether a sorts before b under created_at DESC, id DESC.
func newer(a, b order.Order) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return bytes.Compare(a.ID[:], b.ID[:]) > 0
}

type fakeMenuRepository struct {
	menu []order.MenuItem
}

func newFakeMenuRepository(menu ...order.MenuItem) *fakeMenuRepository {
	return &fakeMenuRepository{menu: menu}
}

func (r *fakeMenuRepository) List(_ context.Context) ([]*queries.MenuItemView, error) {
	views := make([]*queries.MenuItemView, 0, len(r.menu))
	for _, m := range r.menu {
		views = append(views, &queries.MenuItemView{
			ID:          m.ID,
			ItemName:    m.ItemName,
			CookingTime: m.CookingTime,
		})
	}
	return views, nil
}

func sortNewestFirst(views []*queries.CompleteOrderView) {
	sort.Slice(views, func(i, j int) bool {
		if !views[i].CreatedAt.Equal(views[j].CreatedAt) {
			return views[i].CreatedAt.After(views[j].CreatedAt)
		}
		return bytes.Compare(views[i].OrderID[:], views[j].OrderID[:]) > 0
	})
}
