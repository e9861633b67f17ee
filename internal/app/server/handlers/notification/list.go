package notification

import (
	"log"

	"github.com/gin-gonic/gin"

	"opne/internal/app/domains/apimodel/response"
	"opne/internal/app/domains/entity/etnotify"
	"opne/internal/app/pkg/ginx"
)

// List 未读通知列表接口
// GET /api/v1/notifications?recipient_type=admin
// recipient_type 省略时返回全部受众的未读通知
func (h *NotificationHandler) List(c *gin.Context) {
	recipientType := c.Query("recipient_type")
	switch etnotify.RecipientType(recipientType) {
	case "", etnotify.RecipientAdmin, etnotify.RecipientFulfillment, etnotify.RecipientCustomerService:
	default:
		ginx.BadRequest(c, "recipient_type must be one of: admin, fulfillment, customer_service")
		return
	}

	notifications, err := h.notifyService.ListUnread(c.Request.Context(), etnotify.RecipientType(recipientType))
	if err != nil {
		log.Printf("[ERROR] list notifications failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.ToNotificationResponses(notifications))
}
