package request

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	CustomerID     *int64       `json:"customer_id" example:"1001"`
	CustomerEmail  string       `json:"customer_email" binding:"required,email" example:"alice@example.com"`
	Subtotal       float64      `json:"subtotal" binding:"required,gt=0" example:"199.99"`
	TaxAmount      float64      `json:"tax_amount" binding:"gte=0" example:"16.00"`
	ShippingAmount float64      `json:"shipping_amount" binding:"gte=0" example:"9.99"`
	DiscountAmount float64      `json:"discount_amount" binding:"gte=0" example:"0"`
	TotalAmount    float64      `json:"total_amount" binding:"required,gt=0" example:"225.98"`
	ShippingMethod string       `json:"shipping_method" example:"express"`
	Items          []*OrderItem `json:"items" binding:"required,min=1,dive"`
}

// OrderItem 订单明细
type OrderItem struct {
	ProductName          string  `json:"product_name" binding:"required" example:"Wireless Keyboard"`
	SKU                  string  `json:"sku" example:"KB-2042"`
	Quantity             int     `json:"quantity" binding:"required,gt=0" example:"2"`
	UnitPrice            float64 `json:"unit_price" binding:"required,gte=0" example:"99.99"`
	IsDigital            bool    `json:"is_digital" example:"false"`
	NeedsSpecialHandling bool    `json:"needs_special_handling" example:"false"`
}

// UpdateStatusRequest 更新订单状态请求
type UpdateStatusRequest struct {
	Status    string `json:"status" binding:"required,oneof=pending confirmed processing shipped delivered cancelled" example:"confirmed"`
	ChangedBy string `json:"changed_by" example:"ops-console"`
	Reason    string `json:"reason" example:"payment verified"`
}

// UpdatePriorityRequest 人工调整优先级请求
type UpdatePriorityRequest struct {
	PriorityLevel int `json:"priority_level" binding:"required,min=1,max=5" example:"1"`
}

// BulkOperationRequest 批量操作请求
// order_ids 是否必填取决于 action（recalculate_priorities 忽略），由服务层校验
type BulkOperationRequest struct {
	Action   string       `json:"action" binding:"required" example:"update_status"`
	OrderIDs []string     `json:"order_ids"`
	Payload  *BulkPayload `json:"payload"`
}

// BulkPayload 批量操作参数
type BulkPayload struct {
	Status        string `json:"status" example:"confirmed"`
	PriorityLevel int    `json:"priority_level" example:"2"`
	ChangedBy     string `json:"changed_by" example:"ops-console"`
}

// MarkReadRequest 标记通知已读请求
type MarkReadRequest struct {
	NotificationIDs []string `json:"notification_ids" binding:"required,min=1"`
}
