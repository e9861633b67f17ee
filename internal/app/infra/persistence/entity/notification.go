package entity

import "time"

// OrderNotification 订单通知实体
type OrderNotification struct {
	ID               string    `gorm:"column:id;primaryKey;type:varchar(64)"`
	OrderID          string    `gorm:"column:order_id;type:varchar(64);not null;index:idx_order"`
	NotificationType string    `gorm:"column:notification_type;type:varchar(32);not null"`
	RecipientType    string    `gorm:"column:recipient_type;type:varchar(32);not null;index:idx_recipient_read"`
	Message          string    `gorm:"column:message;type:varchar(512);not null"`
	IsRead           bool      `gorm:"column:is_read;not null;default:0;index:idx_recipient_read"`
	CreatedAt        time.Time `gorm:"column:created_at;not null;index:idx_created_at"`
}

// TableName 指定表名
func (OrderNotification) TableName() string {
	return "order_notifications"
}

// PriorityAlert 优先级告警实体
type PriorityAlert struct {
	ID             string     `gorm:"column:id;primaryKey;type:varchar(64)"`
	OrderID        string     `gorm:"column:order_id;type:varchar(64);not null;index:idx_order"`
	AlertType      string     `gorm:"column:alert_type;type:varchar(32);not null"`
	Message        string     `gorm:"column:message;type:varchar(512);not null"`
	IsAcknowledged bool       `gorm:"column:is_acknowledged;not null;default:0;index:idx_acked"`
	AcknowledgedBy string     `gorm:"column:acknowledged_by;type:varchar(64)"`
	AcknowledgedAt *time.Time `gorm:"column:acknowledged_at"`
	CreatedAt      time.Time  `gorm:"column:created_at;not null;index:idx_created_at"`
}

// TableName 指定表名
func (PriorityAlert) TableName() string {
	return "priority_alerts"
}
