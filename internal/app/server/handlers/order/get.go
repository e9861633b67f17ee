package order

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"opne/internal/app/domains/apimodel/response"
	"opne/internal/app/pkg/errorx"
	"opne/internal/app/pkg/ginx"
)

// Get 获取订单详情接口
// GET /api/v1/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		ginx.BadRequest(c, "order_id required")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, errorx.ErrOrderNotFound) {
			ginx.NotFound(c, "order not found")
			return
		}
		log.Printf("[ERROR] get order failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.ToOrderResponse(order))
}
