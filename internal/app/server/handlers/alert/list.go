package alert

import (
	"log"

	"github.com/gin-gonic/gin"

	"opne/internal/app/domains/apimodel/response"
	"opne/internal/app/pkg/ginx"
)

// List 未确认告警列表接口
// GET /api/v1/alerts
func (h *AlertHandler) List(c *gin.Context) {
	alerts, err := h.notifyService.ListUnacknowledged(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] list alerts failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.ToAlertResponses(alerts))
}
