package response

import (
	"time"

	"table-orders/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateOrderResponse struct {
	OrderID uuid.UUID `json:"order_id"`
}

type CompleteOrderResponse struct {
	OrderID     uuid.UUID `json:"order_id"`
	TableNumber int32     `json:"table_number"`
	MenuItemID  int32     `json:"menu_item_id"`
	CreatedAt   time.Time `json:"created_at"`
	ItemName    string    `json:"item_name"`
	CookingTime int32     `json:"cooking_time"`
}

type MenuItemResponse struct {
	ID          int32  `json:"id"`
	ItemName    string `json:"item_name"`
	CookingTime int32  `json:"cooking_time"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromCompleteOrderView(v *queries.CompleteOrderView) *CompleteOrderResponse {
	return &CompleteOrderResponse{
		OrderID:     v.OrderID,
		TableNumber: v.TableNumber,
		MenuItemID:  v.MenuItemID,
		CreatedAt:   v.CreatedAt,
		ItemName:    v.ItemName,
		CookingTime: v.CookingTime,
	}
}

func FromCompleteOrderViews(views []*queries.CompleteOrderView) []*CompleteOrderResponse {
	responses := make([]*CompleteOrderResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromCompleteOrderView(v))
	}
	return responses
}

func FromMenuItemViews(views []*queries.MenuItemView) []*MenuItemResponse {
	responses := make([]*MenuItemResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, &MenuItemResponse{
			ID:          v.ID,
			ItemName:    v.ItemName,
			CookingTime: v.CookingTime,
		})
	}
	return responses
}
