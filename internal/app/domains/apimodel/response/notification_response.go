package response

import "time"

// NotificationResponse 通知响应（DTO）
type NotificationResponse struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	Type          string    `json:"type"`
	RecipientType string    `json:"recipient_type"`
	Message       string    `json:"message"`
	IsRead        bool      `json:"is_read"`
	CreatedAt     time.Time `json:"created_at"`
}

// AlertResponse 告警响应（DTO）
type AlertResponse struct {
	ID             string     `json:"id"`
	OrderID        string     `json:"order_id"`
	Type           string     `json:"type"`
	Message        string     `json:"message"`
	IsAcknowledged bool       `json:"is_acknowledged"`
	AcknowledgedBy string     `json:"acknowledged_by,omitempty"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// MarkReadResponse 标记已读结果
type MarkReadResponse struct {
	MarkedCount int64 `json:"marked_count"`
}
