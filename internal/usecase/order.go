package usecase

import (
	"context"
	"errors"

	"table-orders/internal/domain/order"
	"table-orders/internal/infra"
	"table-orders/internal/pkg/clock"
	"table-orders/internal/pkg/errs"
	"table-orders/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrUnknownMenuItem = errors.New("menu item does not exist")
)

// OrderRepository is the storage capability contract the order use cases depend
// on. Any backend implementing it can serve the use cases; tests substitute an
// in-memory fake.
type OrderRepository interface {
	// Create persists a new order row and returns its identifier.
	Create(ctx context.Context, o *order.Order) (uuid.UUID, error)
	// FindByTable returns all orders for a table joined with catalog data,
	// newest first. No matches yields an empty slice, not an error.
	FindByTable(ctx context.Context, tableNumber int32) ([]*queries.CompleteOrderView, error)
	// FindLatestItem returns the most-recently-created order matching the
	// (menu item, table) pair, or a NOT_FOUND kind error when none exists.
	FindLatestItem(ctx context.Context, menuItemID, tableNumber int32) (*queries.CompleteOrderView, error)
	// DeleteLatestItem removes exactly the most-recently-created matching
	// order and reports the number of rows removed (0 or 1). Selection and
	// deletion happen in one atomic statement.
	DeleteLatestItem(ctx context.Context, menuItemID, tableNumber int32) (int64, error)
	// DeleteByID removes one order by identifier, reporting rows removed.
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
	// UpdateOrder is unsupported by design: updates are realized as
	// delete-then-create. It exists for interface completeness and is a no-op.
	UpdateOrder() error
}

type OrderUseCase interface {
	Create(ctx context.Context, tableNumber, menuItemID int32) (uuid.UUID, error)
	GetTableOrders(ctx context.Context, tableNumber int32) ([]*queries.CompleteOrderView, error)
	GetTableOrderItem(ctx context.Context, menuItemID, tableNumber int32) (*queries.CompleteOrderView, error)
	DeleteTableOrderItem(ctx context.Context, menuItemID, tableNumber int32) (int64, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) (int64, error)
}

type orderUseCaseImpl struct {
	repo  OrderRepository
	clock clock.Clock
}

func NewOrderUseCase(repo OrderRepository, clk clock.Clock) OrderUseCase {
	return &orderUseCaseImpl{
		repo:  repo,
		clock: clk,
	}
}

func (u *orderUseCaseImpl) Create(ctx context.Context, tableNumber, menuItemID int32) (uuid.UUID, error) {
	o := order.New(tableNumber, menuItemID, u.clock.Now())

	id, err := u.repo.Create(ctx, o)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, errs.Mark(err, ErrUnknownMenuItem)
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (u *orderUseCaseImpl) GetTableOrders(ctx context.Context, tableNumber int32) ([]*queries.CompleteOrderView, error) {
	return u.repo.FindByTable(ctx, tableNumber)
}

func (u *orderUseCaseImpl) GetTableOrderItem(ctx context.Context, menuItemID, tableNumber int32) (*queries.CompleteOrderView, error) {
	view, err := u.repo.FindLatestItem(ctx, menuItemID, tableNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (u *orderUseCaseImpl) DeleteTableOrderItem(ctx context.Context, menuItemID, tableNumber int32) (int64, error) {
	return u.repo.DeleteLatestItem(ctx, menuItemID, tableNumber)
}

func (u *orderUseCaseImpl) DeleteOrder(ctx context.Context, id uuid.UUID) (int64, error) {
	return u.repo.DeleteByID(ctx, id)
}
