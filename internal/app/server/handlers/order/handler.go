package order

import (
	"opne/internal/app/domains/services/svbulk"
	"opne/internal/app/domains/services/svorder"
)

// OrderHandler 订单 HTTP 处理器
type OrderHandler struct {
	orderService *svorder.OrderService
	bulkService  *svbulk.BulkService
}

// NewOrderHandler 创建订单处理器实例
func NewOrderHandler(orderService *svorder.OrderService, bulkService *svbulk.BulkService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		bulkService:  bulkService,
	}
}
