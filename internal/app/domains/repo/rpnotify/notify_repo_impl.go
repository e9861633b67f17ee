package rpnotify

import (
	"context"
	"time"

	"gorm.io/gorm"

	"opne/internal/app/domains/entity/etnotify"
	"opne/internal/app/infra/persistence/entity"
)

// NotificationRepositoryImpl 通知存储实现（MySQL）
type NotificationRepositoryImpl struct {
	db *gorm.DB
}

// NewNotificationRepository 创建通知存储实例
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

// Insert 写入一条通知
func (r *NotificationRepositoryImpl) Insert(ctx context.Context, n *etnotify.Notification) error {
	po := &entity.OrderNotification{
		ID:               n.ID,
		OrderID:          n.OrderID,
		NotificationType: n.Type,
		RecipientType:    string(n.RecipientType),
		Message:          n.Message,
		IsRead:           n.IsRead,
		CreatedAt:        n.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(po).Error
}

// ListUnread 查询某受众的未读通知
func (r *NotificationRepositoryImpl) ListUnread(ctx context.Context, recipientType etnotify.RecipientType) ([]*etnotify.Notification, error) {
	query := r.db.WithContext(ctx).
		Model(&entity.OrderNotification{}).
		Where("is_read = ?", false)
	if recipientType != "" {
		query = query.Where("recipient_type = ?", string(recipientType))
	}

	var pos []entity.OrderNotification
	if err := query.Order("created_at DESC").Find(&pos).Error; err != nil {
		return nil, err
	}

	notifications := make([]*etnotify.Notification, 0, len(pos))
	for i := range pos {
		notifications = append(notifications, notificationToDomain(&pos[i]))
	}
	return notifications, nil
}

// MarkRead 批量标记已读
func (r *NotificationRepositoryImpl) MarkRead(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Model(&entity.OrderNotification{}).
		Where("id IN ? AND is_read = ?", ids, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

// DeleteReadBefore 清理已读且过期的通知
func (r *NotificationRepositoryImpl) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&entity.OrderNotification{})
	return result.RowsAffected, result.Error
}

// CountUnreadByRecipient 按受众统计未读条数
func (r *NotificationRepositoryImpl) CountUnreadByRecipient(ctx context.Context) (map[string]int64, error) {
	type row struct {
		RecipientType string
		Count         int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&entity.OrderNotification{}).
		Select("recipient_type, COUNT(*) AS count").
		Where("is_read = ?", false).
		Group("recipient_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.RecipientType] = r.Count
	}
	return counts, nil
}

// notificationToDomain GORM 模型转换为领域对象
func notificationToDomain(po *entity.OrderNotification) *etnotify.Notification {
	return &etnotify.Notification{
		ID:            po.ID,
		OrderID:       po.OrderID,
		Type:          po.NotificationType,
		RecipientType: etnotify.RecipientType(po.RecipientType),
		Message:       po.Message,
		IsRead:        po.IsRead,
		CreatedAt:     po.CreatedAt,
	}
}

// AlertRepositoryImpl 告警存储实现（MySQL）
type AlertRepositoryImpl struct {
	db *gorm.DB
}

// NewAlertRepository 创建告警存储实例
func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &AlertRepositoryImpl{db: db}
}

// Insert 写入一条告警
func (r *AlertRepositoryImpl) Insert(ctx context.Context, a *etnotify.Alert) error {
	po := &entity.PriorityAlert{
		ID:             a.ID,
		OrderID:        a.OrderID,
		AlertType:      a.Type,
		Message:        a.Message,
		IsAcknowledged: a.IsAcknowledged,
		AcknowledgedBy: a.AcknowledgedBy,
		AcknowledgedAt: a.AcknowledgedAt,
		CreatedAt:      a.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(po).Error
}

// ListUnacknowledged 查询未确认告警
func (r *AlertRepositoryImpl) ListUnacknowledged(ctx context.Context) ([]*etnotify.Alert, error) {
	var pos []entity.PriorityAlert
	err := r.db.WithContext(ctx).
		Where("is_acknowledged = ?", false).
		Order("created_at DESC").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}

	alerts := make([]*etnotify.Alert, 0, len(pos))
	for i := range pos {
		alerts = append(alerts, alertToDomain(&pos[i]))
	}
	return alerts, nil
}

// Acknowledge 批量确认告警
func (r *AlertRepositoryImpl) Acknowledge(ctx context.Context, ids []string, acknowledgedBy string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&entity.PriorityAlert{}).
		Where("id IN ? AND is_acknowledged = ?", ids, false).
		Updates(map[string]interface{}{
			"is_acknowledged": true,
			"acknowledged_by": acknowledgedBy,
			"acknowledged_at": now,
		})
	return result.RowsAffected, result.Error
}

// DeleteAcknowledgedBefore 清理已确认且过期的告警
func (r *AlertRepositoryImpl) DeleteAcknowledgedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("is_acknowledged = ? AND created_at < ?", true, cutoff).
		Delete(&entity.PriorityAlert{})
	return result.RowsAffected, result.Error
}

// CountUnacknowledgedByType 按告警类型统计未确认条数
func (r *AlertRepositoryImpl) CountUnacknowledgedByType(ctx context.Context) (map[string]int64, error) {
	type row struct {
		AlertType string
		Count     int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&entity.PriorityAlert{}).
		Select("alert_type, COUNT(*) AS count").
		Where("is_acknowledged = ?", false).
		Group("alert_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.AlertType] = r.Count
	}
	return counts, nil
}

// alertToDomain GORM 模型转换为领域对象
func alertToDomain(po *entity.PriorityAlert) *etnotify.Alert {
	return &etnotify.Alert{
		ID:             po.ID,
		OrderID:        po.OrderID,
		Type:           po.AlertType,
		Message:        po.Message,
		IsAcknowledged: po.IsAcknowledged,
		AcknowledgedBy: po.AcknowledgedBy,
		AcknowledgedAt: po.AcknowledgedAt,
		CreatedAt:      po.CreatedAt,
	}
}
