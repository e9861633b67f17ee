package order

import (
	"log"

	"github.com/gin-gonic/gin"

	"opne/internal/app/domains/apimodel/request"
	"opne/internal/app/domains/apimodel/response"
	"opne/internal/app/pkg/ginx"
)

// Create 创建订单接口
// POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req.ToCreateOrderInput())
	if err != nil {
		log.Printf("[ERROR] create order failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.ToOrderResponse(order))
}
