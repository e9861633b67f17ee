package order

import (
	"log"

	"github.com/gin-gonic/gin"

	"opne/internal/app/domains/apimodel/response"
	"opne/internal/app/pkg/ginx"
)

// Recalculate 全量重算接口
// POST /api/v1/orders/recalculate
// 对所有活跃且未被人工覆盖的订单重算优先级
func (h *OrderHandler) Recalculate(c *gin.Context) {
	updated, failed, err := h.orderService.RecalculateAll(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] recalculate priorities failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, &response.RecalculateResponse{
		Updated: updated,
		Failed:  failed,
	})
}
