package alert

import (
	"log"

	"github.com/gin-gonic/gin"

	"opne/internal/app/domains/apimodel/request"
	"opne/internal/app/pkg/ginx"
)

// Acknowledge 确认告警接口
// PUT /api/v1/alerts/acknowledge
// 幂等：已确认的告警不会被二次更新
func (h *AlertHandler) Acknowledge(c *gin.Context) {
	var req request.AcknowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	acked, err := h.notifyService.Acknowledge(c.Request.Context(), req.AlertIDs, req.AcknowledgedBy)
	if err != nil {
		log.Printf("[ERROR] acknowledge alerts failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, gin.H{"acknowledged_count": acked})
}
