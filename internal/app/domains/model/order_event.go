package model

import "time"

// 事件类型常量
const (
	EventInsert = "insert"
	EventUpdate = "update"
)

// OrderChangeEvent 订单变更事件（标准化）
// 生命周期管理器 → 事件队列 → 变更监听器 的消息传递
type OrderChangeEvent struct {
	RequestID string         `json:"request_id"`         // 链路追踪用
	Event     string         `json:"event"`              // insert / update
	Previous  *OrderSnapshot `json:"previous,omitempty"` // 变更前快照（update 时携带）
	Current   *OrderSnapshot `json:"current"`            // 变更后快照
	EmittedAt int64          `json:"emitted_at"`         // 发出时间戳（Unix timestamp）
}

// OrderSnapshot 订单快照（通知/告警派生所需的最小字段集）
type OrderSnapshot struct {
	ID                  string    `json:"id"`
	OrderNumber         string    `json:"order_number"`
	CustomerEmail       string    `json:"customer_email"`
	TotalAmount         float64   `json:"total_amount"`
	Status              string    `json:"status"`
	PriorityLevel       int       `json:"priority_level"`
	PriorityScore       int       `json:"priority_score"`
	FulfillmentPriority string    `json:"fulfillment_priority"`
	ShippingMethod      string    `json:"shipping_method"`
	IsExpressShipping   bool      `json:"is_express_shipping"`
	IsVIPCustomer       bool      `json:"is_vip_customer"`
	IsHighValue         bool      `json:"is_high_value"`
	PlacedAt            time.Time `json:"placed_at"`
}

// DashboardEnvelope 实时广播信封（推给看板订阅者）
// 只是刷新提示，不承担可靠投递；持久化的通知/告警才是事实来源
type DashboardEnvelope struct {
	Type      string         `json:"type"`
	Order     *OrderSnapshot `json:"order"`
	Timestamp int64          `json:"timestamp"`
}
