package notification

import (
	"opne/internal/app/domains/services/svnotify"
)

// NotificationHandler 通知 HTTP 处理器
type NotificationHandler struct {
	notifyService *svnotify.NotifyService
}

// NewNotificationHandler 创建通知处理器实例
func NewNotificationHandler(notifyService *svnotify.NotifyService) *NotificationHandler {
	return &NotificationHandler{
		notifyService: notifyService,
	}
}
