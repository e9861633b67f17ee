package request

import (
	"opne/internal/app/domains/services/svbulk"
	"opne/internal/app/domains/services/svorder"
)

// ToCreateOrderInput 将 Request DTO 转换为服务层入参
func (r *CreateOrderRequest) ToCreateOrderInput() *svorder.CreateOrderInput {
	items := make([]svorder.CreateOrderItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, svorder.CreateOrderItemInput{
			ProductName:          it.ProductName,
			SKU:                  it.SKU,
			Quantity:             it.Quantity,
			UnitPrice:            it.UnitPrice,
			IsDigital:            it.IsDigital,
			NeedsSpecialHandling: it.NeedsSpecialHandling,
		})
	}
	return &svorder.CreateOrderInput{
		CustomerID:     r.CustomerID,
		CustomerEmail:  r.CustomerEmail,
		Subtotal:       r.Subtotal,
		TaxAmount:      r.TaxAmount,
		ShippingAmount: r.ShippingAmount,
		DiscountAmount: r.DiscountAmount,
		TotalAmount:    r.TotalAmount,
		ShippingMethod: r.ShippingMethod,
		Items:          items,
	}
}

// ToBulkPayload 转换批量操作参数
func (r *BulkOperationRequest) ToBulkPayload() *svbulk.Payload {
	if r.Payload == nil {
		return &svbulk.Payload{}
	}
	return &svbulk.Payload{
		Status:        r.Payload.Status,
		PriorityLevel: r.Payload.PriorityLevel,
		ChangedBy:     r.Payload.ChangedBy,
	}
}
