package order

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"opne/internal/app/domains/apimodel/request"
	"opne/internal/app/pkg/errorx"
	"opne/internal/app/pkg/ginx"
)

// Bulk 批量操作接口
// POST /api/v1/orders/bulk
// 逐单执行，单条失败不中断；返回成功/失败计数与错误样例
func (h *OrderHandler) Bulk(c *gin.Context) {
	var req request.BulkOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	result, err := h.bulkService.Apply(c.Request.Context(), req.Action, req.OrderIDs, req.ToBulkPayload())
	if err != nil {
		switch {
		case errors.Is(err, errorx.ErrUnknownAction),
			errors.Is(err, errorx.ErrValidation),
			errors.Is(err, errorx.ErrInvalidStatus),
			errors.Is(err, errorx.ErrInvalidPriority):
			ginx.BadRequest(c, err.Error())
		default:
			log.Printf("[ERROR] bulk operation failed: %v", err)
			ginx.InternalError(c, err.Error())
		}
		return
	}

	ginx.Success(c, result)
}
