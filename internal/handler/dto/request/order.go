package request

type CreateOrderRequest struct {
	// binding:"required" would reject table 0 and item 0, which are valid
	// wire values, so presence is not enforced here.
	TableNumber int32 `json:"table_number"`
	MenuItemID  int32 `json:"menu_item_id"`
}
