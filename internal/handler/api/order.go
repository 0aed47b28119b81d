package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "table-orders/internal/handler/dto/request"
	resdto "table-orders/internal/handler/dto/response"
	"table-orders/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderUseCase usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

// @Summary Place an order
// @Description Place a new order for a table
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 200 {object} resdto.CreateOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.orderUseCase.Create(c.Request.Context(), req.TableNumber, req.MenuItemID)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownMenuItem) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "This menu item doesn't exist.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.CreateOrderResponse{OrderID: id})
}

// @Summary List table orders
// @Description List all orders placed for a table, newest first
// @Tags orders
// @Produce json
// @Param table_number path int true "Table number"
// @Success 200 {array} resdto.CompleteOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tables/{table_number}/orders [get]
func (h *OrderHandler) GetTableOrders(c *gin.Context) {
	tableNumber, ok := pathInt32(c, "table_number")
	if !ok {
		return
	}

	views, err := h.orderUseCase.GetTableOrders(c.Request.Context(), tableNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if len(views) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No orders found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCompleteOrderViews(views))
}

// @Summary Get a table order item
// @Description Get the most recent order of an item for a table
// @Tags orders
// @Produce json
// @Param table_number path int true "Table number"
// @Param menu_item_id path int true "Menu item ID"
// @Success 200 {object} resdto.CompleteOrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tables/{table_number}/menu_items/{menu_item_id} [get]
func (h *OrderHandler) GetTableOrderItem(c *gin.Context) {
	tableNumber, ok := pathInt32(c, "table_number")
	if !ok {
		return
	}
	menuItemID, ok := pathInt32(c, "menu_item_id")
	if !ok {
		return
	}

	view, err := h.orderUseCase.GetTableOrderItem(c.Request.Context(), menuItemID, tableNumber)
	if err != nil {
		if errors.Is(err, usecase.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No order found.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCompleteOrderView(view))
}

// @Summary Retract a table order item
// @Description Delete the most recent order of an item for a table
// @Tags orders
// @Produce json
// @Param table_number path int true "Table number"
// @Param menu_item_id path int true "Menu item ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tables/{table_number}/menu_items/{menu_item_id} [delete]
func (h *OrderHandler) DeleteTableOrderItem(c *gin.Context) {
	tableNumber, ok := pathInt32(c, "table_number")
	if !ok {
		return
	}
	menuItemID, ok := pathInt32(c, "menu_item_id")
	if !ok {
		return
	}

	deleted, err := h.orderUseCase.DeleteTableOrderItem(c.Request.Context(), menuItemID, tableNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No orders found to delete.",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Order deleted."})
}

// @Summary Delete an order
// @Description Delete a single order by its identifier
// @Tags orders
// @Produce json
// @Param order_id path string true "Order ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{order_id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	deleted, err := h.orderUseCase.DeleteOrder(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No order found.",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Order deleted."})
}

func pathInt32(c *gin.Context, name string) (int32, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name + " format",
		})
		return 0, false
	}
	return int32(v), true
}
