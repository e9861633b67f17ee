package order

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"opne/internal/app/domains/apimodel/request"
	"opne/internal/app/domains/apimodel/response"
	"opne/internal/app/pkg/errorx"
	"opne/internal/app/pkg/ginx"
)

// UpdatePriority 人工调整优先级接口
// PUT /api/v1/orders/:id/priority
// 人工调整会置 manual_priority_override，后续自动重算跳过该订单
func (h *OrderHandler) UpdatePriority(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		ginx.BadRequest(c, "order_id required")
		return
	}

	var req request.UpdatePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	order, err := h.orderService.UpdatePriority(c.Request.Context(), orderID, req.PriorityLevel, true)
	if err != nil {
		switch {
		case errors.Is(err, errorx.ErrOrderNotFound):
			ginx.NotFound(c, "order not found")
		case errors.Is(err, errorx.ErrInvalidPriority):
			ginx.BadRequest(c, err.Error())
		default:
			log.Printf("[ERROR] update order priority failed: %v", err)
			ginx.InternalError(c, err.Error())
		}
		return
	}

	ginx.Success(c, response.ToOrderResponse(order))
}
