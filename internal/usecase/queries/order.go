package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// CompleteOrderView joins an order with its catalog entry. It is produced only
// by read operations and never written back.
type CompleteOrderView struct {
	OrderID     uuid.UUID `json:"order_id"`
	TableNumber int32     `json:"table_number"`
	MenuItemID  int32     `json:"menu_item_id"`
	CreatedAt   time.Time `json:"created_at"`
	ItemName    string    `json:"item_name"`
	CookingTime int32     `json:"cooking_time"`
}

type MenuItemView struct {
	ID          int32  `json:"id"`
	ItemName    string `json:"item_name"`
	CookingTime int32  `json:"cooking_time"`
}
