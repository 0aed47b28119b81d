package usecase

import (
	"context"

	"table-orders/internal/usecase/queries"
)

// MenuRepository exposes the read-only catalog.
type MenuRepository interface {
	List(ctx context.Context) ([]*queries.MenuItemView, error)
}

type MenuUseCase interface {
	ListMenuItems(ctx context.Context) ([]*queries.MenuItemView, error)
}

type menuUseCaseImpl struct {
	repo MenuRepository
}

func NewMenuUseCase(repo MenuRepository) MenuUseCase {
	return &menuUseCaseImpl{repo: repo}
}

func (u *menuUseCaseImpl) ListMenuItems(ctx context.Context) ([]*queries.MenuItemView, error) {
	return u.repo.List(ctx)
}
