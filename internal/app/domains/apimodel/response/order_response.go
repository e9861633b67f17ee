package response

import "time"

// OrderResponse 订单响应（DTO）
type OrderResponse struct {
	ID            string `json:"id"`
	OrderNumber   string `json:"order_number"`
	CustomerID    *int64 `json:"customer_id,omitempty"`
	CustomerEmail string `json:"customer_email"`

	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `json:"tax_amount"`
	ShippingAmount float64 `json:"shipping_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	TotalAmount    float64 `json:"total_amount"`

	Status string `json:"status"`

	PriorityLevel          int    `json:"priority_level"`
	PriorityScore          int    `json:"priority_score"`
	PriorityLabel          string `json:"priority_label"`
	AutoPriorityAssigned   bool   `json:"auto_priority_assigned"`
	ManualPriorityOverride bool   `json:"manual_priority_override"`
	FulfillmentPriority    string `json:"fulfillment_priority"`

	ShippingMethod    string `json:"shipping_method"`
	IsExpressShipping bool   `json:"is_express_shipping"`
	IsVIPCustomer     bool   `json:"is_vip_customer"`
	IsRepeatCustomer  bool   `json:"is_repeat_customer"`
	IsHighValue       bool   `json:"is_high_value"`

	Tags []string `json:"tags"`

	PlacedAt    time.Time  `json:"placed_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	ShippedAt   *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Items []*OrderItemResponse `json:"items,omitempty"`
}

// OrderItemResponse 订单明细响应（DTO）
type OrderItemResponse struct {
	ID                   string  `json:"id"`
	ProductName          string  `json:"product_name"`
	SKU                  string  `json:"sku"`
	Quantity             int     `json:"quantity"`
	UnitPrice            float64 `json:"unit_price"`
	LineTotal            float64 `json:"line_total"`
	IsDigital            bool    `json:"is_digital"`
	NeedsSpecialHandling bool    `json:"needs_special_handling"`
}

// RecalculateResponse 重算结果响应
type RecalculateResponse struct {
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}
