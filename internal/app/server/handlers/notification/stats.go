package notification

import (
	"log"

	"github.com/gin-gonic/gin"

	"opne/internal/app/pkg/ginx"
)

// Stats 通知统计接口
// GET /api/v1/notifications/stats
func (h *NotificationHandler) Stats(c *gin.Context) {
	stats, err := h.notifyService.GetStats(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] get notification stats failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, stats)
}
