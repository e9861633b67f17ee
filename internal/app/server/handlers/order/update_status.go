package order

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"opne/internal/app/domains/apimodel/request"
	"opne/internal/app/domains/apimodel/response"
	"opne/internal/app/domains/entity/etorder"
	"opne/internal/app/pkg/errorx"
	"opne/internal/app/pkg/ginx"
)

// UpdateStatus 更新订单状态接口
// PUT /api/v1/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		ginx.BadRequest(c, "order_id required")
		return
	}

	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), orderID, etorder.Status(req.Status), req.ChangedBy, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, errorx.ErrOrderNotFound):
			ginx.NotFound(c, "order not found")
		case errors.Is(err, errorx.ErrInvalidStatus):
			ginx.BadRequest(c, err.Error())
		default:
			log.Printf("[ERROR] update order status failed: %v", err)
			ginx.InternalError(c, err.Error())
		}
		return
	}

	ginx.Success(c, response.ToOrderResponse(order))
}
