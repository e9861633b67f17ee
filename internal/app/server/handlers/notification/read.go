package notification

import (
	"log"

	"github.com/gin-gonic/gin"

	"opne/internal/app/domains/apimodel/request"
	"opne/internal/app/domains/apimodel/response"
	"opne/internal/app/pkg/ginx"
)

// MarkRead 标记通知已读接口
// PUT /api/v1/notifications/read
// 幂等：重复标记已读的通知不报错
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var req request.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	marked, err := h.notifyService.MarkRead(c.Request.Context(), req.NotificationIDs)
	if err != nil {
		log.Printf("[ERROR] mark notifications read failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, &response.MarkReadResponse{MarkedCount: marked})
}
