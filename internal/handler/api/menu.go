package api

import (
	"net/http"

	resdto "table-orders/internal/handler/dto/response"
	"table-orders/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuUseCase usecase.MenuUseCase
}

func NewMenuHandler(menuUseCase usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{
		menuUseCase: menuUseCase,
	}
}

// @Summary List menu items
// @Description List the full menu catalog
// @Tags menu
// @Produce json
// @Success 200 {array} resdto.MenuItemResponse
// @Failure 500 {object} map[string]string
// @Router /menu_items [get]
func (h *MenuHandler) ListMenuItems(c *gin.Context) {
	views, err := h.menuUseCase.ListMenuItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMenuItemViews(views))
}
