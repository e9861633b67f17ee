package response

import (
	"opne/internal/app/domains/entity/etnotify"
	"opne/internal/app/domains/entity/etorder"
	"opne/internal/app/domains/priority"
)

// ToOrderResponse 将领域对象转换为 Response DTO
func ToOrderResponse(order *etorder.Order) *OrderResponse {
	if order == nil {
		return nil
	}
	items := make([]*OrderItemResponse, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, &OrderItemResponse{
			ID:                   it.ID,
			ProductName:          it.ProductName,
			SKU:                  it.SKU,
			Quantity:             it.Quantity,
			UnitPrice:            it.UnitPrice,
			LineTotal:            it.LineTotal,
			IsDigital:            it.IsDigital,
			NeedsSpecialHandling: it.NeedsSpecialHandling,
		})
	}
	return &OrderResponse{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		CustomerID:    order.CustomerID,
		CustomerEmail: order.CustomerEmail,

		Subtotal:       order.Subtotal,
		TaxAmount:      order.TaxAmount,
		ShippingAmount: order.ShippingAmount,
		DiscountAmount: order.DiscountAmount,
		TotalAmount:    order.TotalAmount,

		Status: string(order.Status),

		PriorityLevel:          order.PriorityLevel,
		PriorityScore:          order.PriorityScore,
		PriorityLabel:          priority.LevelToLabel(order.PriorityLevel),
		AutoPriorityAssigned:   order.AutoPriorityAssigned,
		ManualPriorityOverride: order.ManualPriorityOverride,
		FulfillmentPriority:    string(order.FulfillmentPriority),

		ShippingMethod:    order.ShippingMethod,
		IsExpressShipping: order.IsExpressShipping,
		IsVIPCustomer:     order.IsVIPCustomer,
		IsRepeatCustomer:  order.IsRepeatCustomer,
		IsHighValue:       order.IsHighValue,

		Tags: order.Tags,

		PlacedAt:    order.PlacedAt,
		ConfirmedAt: order.ConfirmedAt,
		ShippedAt:   order.ShippedAt,
		DeliveredAt: order.DeliveredAt,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,

		Items: items,
	}
}

// ToNotificationResponses 批量转换通知
func ToNotificationResponses(notifications []*etnotify.Notification) []*NotificationResponse {
	result := make([]*NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, &NotificationResponse{
			ID:            n.ID,
			OrderID:       n.OrderID,
			Type:          n.Type,
			RecipientType: string(n.RecipientType),
			Message:       n.Message,
			IsRead:        n.IsRead,
			CreatedAt:     n.CreatedAt,
		})
	}
	return result
}

// ToAlertResponses 批量转换告警
func ToAlertResponses(alerts []*etnotify.Alert) []*AlertResponse {
	result := make([]*AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		result = append(result, &AlertResponse{
			ID:             a.ID,
			OrderID:        a.OrderID,
			Type:           a.Type,
			Message:        a.Message,
			IsAcknowledged: a.IsAcknowledged,
			AcknowledgedBy: a.AcknowledgedBy,
			AcknowledgedAt: a.AcknowledgedAt,
			CreatedAt:      a.CreatedAt,
		})
	}
	return result
}
