package etorder

import (
	"errors"
	"time"
)

// 错误定义
var (
	ErrInvalidOrderID     = errors.New("order ID cannot be empty")
	ErrInvalidOrderNumber = errors.New("order number cannot be empty")
	ErrInvalidEmail       = errors.New("customer email cannot be empty")
	ErrEmptyItems         = errors.New("order must have at least one item")
	ErrInvalidStatus      = errors.New("invalid order status")
)

// Order 订单聚合根（领域对象）
type Order struct {
	ID            string  // 订单ID (UUID)
	OrderNumber   string  // 订单号（展示用）
	CustomerID    *int64  // 客户ID（可选，游客下单为空）
	CustomerEmail string  // 客户邮箱

	// 金额
	Subtotal       float64
	TaxAmount      float64
	ShippingAmount float64
	DiscountAmount float64
	TotalAmount    float64

	// 生命周期状态
	Status Status

	// 优先级字段
	PriorityLevel          int                 // 1-5，1 最紧急
	PriorityScore          int                 // 1-100
	AutoPriorityAssigned   bool                // 由引擎自动计算
	ManualPriorityOverride bool                // 人工覆盖后自动重算跳过
	FulfillmentPriority    FulfillmentPriority // 履约队列路由用

	// 配送
	ShippingMethod    string
	IsExpressShipping bool

	// 客户分类标记
	IsVIPCustomer    bool
	IsRepeatCustomer bool
	IsHighValue      bool

	// 描述性标签
	Tags []string

	// 时间戳
	PlacedAt    time.Time
	ConfirmedAt *time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// 订单明细
	Items []*OrderItem
}

// Status 订单状态
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// ValidStatus 判断状态合法性
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// ActiveStatuses 重算清扫覆盖的状态集合（仍在履约链路上的订单）
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusProcessing}
}

// FulfillmentPriority 履约优先级
type FulfillmentPriority string

const (
	FulfillmentUrgent FulfillmentPriority = "urgent"
	FulfillmentHigh   FulfillmentPriority = "high"
	FulfillmentNormal FulfillmentPriority = "normal"
	FulfillmentLow    FulfillmentPriority = "low"
)

// OrderItem 订单明细（值对象，本子系统内创建后不可变）
type OrderItem struct {
	ID                   string
	OrderID              string
	ProductName          string
	SKU                  string
	Quantity             int
	UnitPrice            float64
	LineTotal            float64
	IsDigital            bool
	NeedsSpecialHandling bool
}

// NewOrder 创建订单（工厂方法）
func NewOrder(id, orderNumber, customerEmail string, items []*OrderItem) (*Order, error) {
	// 业务规则校验
	if id == "" {
		return nil, ErrInvalidOrderID
	}
	if orderNumber == "" {
		return nil, ErrInvalidOrderNumber
	}
	if customerEmail == "" {
		return nil, ErrInvalidEmail
	}
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}

	now := time.Now()
	return &Order{
		ID:            id,
		OrderNumber:   orderNumber,
		CustomerEmail: customerEmail,
		Status:        StatusPending,
		Items:         items,
		PlacedAt:      now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// ApplyStatusTimestamp 按目标状态打时间戳（领域行为）
func (o *Order) ApplyStatusTimestamp(newStatus Status, at time.Time) {
	switch newStatus {
	case StatusConfirmed:
		o.ConfirmedAt = &at
	case StatusShipped:
		o.ShippedAt = &at
	case StatusDelivered:
		o.DeliveredAt = &at
	}
}
