package order

import (
	"time"

	"github.com/google/uuid"
)

// Order is a single prepared-item request: one menu item for one table.
// There is no multi-item basket; a table ordering three dishes places three orders.
type Order struct {
	ID          uuid.UUID
	TableNumber int32
	MenuItemID  int32
	CreatedAt   time.Time
}

// New builds an order with a fresh random (v4) identifier and the supplied
// creation instant, normalized to UTC. It performs no I/O and cannot fail:
// whether menuItemID references a real catalog entry is left to the
// referential constraint in storage.
func New(tableNumber, menuItemID int32, now time.Time) *Order {
	return &Order{
		ID:          uuid.New(),
		TableNumber: tableNumber,
		MenuItemID:  menuItemID,
		CreatedAt:   now.UTC(),
	}
}

// MenuItem is a catalog entry. The catalog is seeded once at bootstrap and is
// read-only afterwards; orders reference entries by ID.
type MenuItem struct {
	ID          int32
	ItemName    string
	CookingTime int32 // minutes
}
