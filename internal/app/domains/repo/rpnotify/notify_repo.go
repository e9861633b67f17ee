package rpnotify

import (
	"context"
	"time"

	"opne/internal/app/domains/entity/etnotify"
)

// NotificationRepository 通知存储接口
type NotificationRepository interface {
	// Insert 写入一条通知
	Insert(ctx context.Context, notification *etnotify.Notification) error

	// ListUnread 查询某受众的未读通知（按创建时间倒序），受众为空时不过滤
	ListUnread(ctx context.Context, recipientType etnotify.RecipientType) ([]*etnotify.Notification, error)

	// MarkRead 批量标记已读，返回受影响条数
	MarkRead(ctx context.Context, ids []string) (int64, error)

	// DeleteReadBefore 清理已读且早于截止时间的通知，返回删除条数
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// CountUnreadByRecipient 按受众统计未读条数
	CountUnreadByRecipient(ctx context.Context) (map[string]int64, error)
}

// AlertRepository 告警存储接口
type AlertRepository interface {
	// Insert 写入一条告警
	Insert(ctx context.Context, alert *etnotify.Alert) error

	// ListUnacknowledged 查询未确认告警（按创建时间倒序）
	ListUnacknowledged(ctx context.Context) ([]*etnotify.Alert, error)

	// Acknowledge 批量确认告警，返回受影响条数
	Acknowledge(ctx context.Context, ids []string, acknowledgedBy string) (int64, error)

	// DeleteAcknowledgedBefore 清理已确认且早于截止时间的告警，返回删除条数
	DeleteAcknowledgedBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// CountUnacknowledgedByType 按告警类型统计未确认条数
	CountUnacknowledgedByType(ctx context.Context) (map[string]int64, error)
}
