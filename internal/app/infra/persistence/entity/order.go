package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Order 订单实体（含优先级字段）
type Order struct {
	// 基础字段
	ID            string `gorm:"column:id;primaryKey;type:varchar(64)"`
	OrderNumber   string `gorm:"column:order_number;type:varchar(32);not null;uniqueIndex:uk_order_number"`
	CustomerID    *int64 `gorm:"column:customer_id;index:idx_customer"`
	CustomerEmail string `gorm:"column:customer_email;type:varchar(255);not null;index:idx_email"`

	// 金额
	Subtotal       float64 `gorm:"column:subtotal;type:decimal(12,2);not null;default:0"`
	TaxAmount      float64 `gorm:"column:tax_amount;type:decimal(12,2);not null;default:0"`
	ShippingAmount float64 `gorm:"column:shipping_amount;type:decimal(12,2);not null;default:0"`
	DiscountAmount float64 `gorm:"column:discount_amount;type:decimal(12,2);not null;default:0"`
	TotalAmount    float64 `gorm:"column:total_amount;type:decimal(12,2);not null;default:0;index:idx_total"`

	// 状态与优先级
	Status                 string `gorm:"column:status;type:varchar(16);not null;default:'pending';index:idx_status_override"`
	PriorityLevel          int    `gorm:"column:priority_level;not null;default:3;index:idx_priority"`
	PriorityScore          int    `gorm:"column:priority_score;not null;default:50"`
	AutoPriorityAssigned   bool   `gorm:"column:auto_priority_assigned;not null;default:0"`
	ManualPriorityOverride bool   `gorm:"column:manual_priority_override;not null;default:0;index:idx_status_override"`
	FulfillmentPriority    string `gorm:"column:fulfillment_priority;type:varchar(8);not null;default:'normal'"`

	// 配送与客户分类
	ShippingMethod    string `gorm:"column:shipping_method;type:varchar(32);not null;default:'standard'"`
	IsExpressShipping bool   `gorm:"column:is_express_shipping;not null;default:0"`
	IsVIPCustomer     bool   `gorm:"column:is_vip_customer;not null;default:0"`
	IsRepeatCustomer  bool   `gorm:"column:is_repeat_customer;not null;default:0"`
	IsHighValue       bool   `gorm:"column:is_high_value;not null;default:0"`

	// 描述性标签（JSON 数组）
	Tags datatypes.JSON `gorm:"column:tags;type:json"`

	// 时间戳
	PlacedAt    time.Time  `gorm:"column:placed_at;not null;index:idx_placed_at"`
	ConfirmedAt *time.Time `gorm:"column:confirmed_at"`
	ShippedAt   *time.Time `gorm:"column:shipped_at"`
	DeliveredAt *time.Time `gorm:"column:delivered_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单明细实体
type OrderItem struct {
	ID                   string  `gorm:"column:id;primaryKey;type:varchar(64)"`
	OrderID              string  `gorm:"column:order_id;type:varchar(64);not null;index:idx_order"`
	ProductName          string  `gorm:"column:product_name;type:varchar(255);not null"`
	SKU                  string  `gorm:"column:sku;type:varchar(64)"`
	Quantity             int     `gorm:"column:quantity;not null;default:1"`
	UnitPrice            float64 `gorm:"column:unit_price;type:decimal(12,2);not null;default:0"`
	LineTotal            float64 `gorm:"column:line_total;type:decimal(12,2);not null;default:0"`
	IsDigital            bool    `gorm:"column:is_digital;not null;default:0"`
	NeedsSpecialHandling bool    `gorm:"column:needs_special_handling;not null;default:0"`
	CreatedAt            time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderStatusHistory 状态流转历史实体（追加写入）
type OrderStatusHistory struct {
	ID             string    `gorm:"column:id;primaryKey;type:varchar(64)"`
	OrderID        string    `gorm:"column:order_id;type:varchar(64);not null;index:idx_order"`
	PreviousStatus string    `gorm:"column:previous_status;type:varchar(16);not null"`
	NewStatus      string    `gorm:"column:new_status;type:varchar(16);not null"`
	ChangedBy      string    `gorm:"column:changed_by;type:varchar(64)"`
	Reason         string    `gorm:"column:reason;type:varchar(255)"`
	PriorityBefore int       `gorm:"column:priority_before;not null;default:3"`
	PriorityAfter  int       `gorm:"column:priority_after;not null;default:3"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (OrderStatusHistory) TableName() string {
	return "order_status_history"
}
