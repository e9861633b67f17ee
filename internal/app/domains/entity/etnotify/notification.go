package etnotify

import "time"

// RecipientType 通知受众
type RecipientType string

const (
	RecipientAdmin           RecipientType = "admin"
	RecipientFulfillment     RecipientType = "fulfillment"
	RecipientCustomerService RecipientType = "customer_service"
)

// 通知类型常量
const (
	NotifyTypePriorityAssigned  = "priority_assigned"
	NotifyTypePriorityIncreased = "priority_increased"
	NotifyTypeHighValueOrder    = "high_value_order"
	NotifyTypeVIPOrder          = "vip_order"
	NotifyTypeExpressShipping   = "express_shipping"
	NotifyTypeStatusChange      = "status_change"
)

// Notification 订单通知（信息性，已读后过保留期即清理）
type Notification struct {
	ID            string
	OrderID       string
	Type          string
	RecipientType RecipientType
	Message       string
	IsRead        bool
	CreatedAt     time.Time
}

// 告警类型常量
const (
	AlertTypeUrgentPriority  = "urgent_priority"
	AlertTypeHighValueOrder  = "high_value_order"
	AlertTypeVIPOrder        = "vip_order"
	AlertTypeExpressPriority = "express_priority"
)

// Alert 优先级告警（需人工确认，确认后过保留期即清理）
type Alert struct {
	ID             string
	OrderID        string
	Type           string
	Message        string
	IsAcknowledged bool
	AcknowledgedBy string
	AcknowledgedAt *time.Time
	CreatedAt      time.Time
}
