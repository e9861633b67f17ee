package alert

import (
	"opne/internal/app/domains/services/svnotify"
)

// AlertHandler 告警 HTTP 处理器
type AlertHandler struct {
	notifyService *svnotify.NotifyService
}

// NewAlertHandler 创建告警处理器实例
func NewAlertHandler(notifyService *svnotify.NotifyService) *AlertHandler {
	return &AlertHandler{
		notifyService: notifyService,
	}
}
