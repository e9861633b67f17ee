package routers

import (
	"github.com/gin-gonic/gin"

	"opne/internal/app/server/handlers/alert"
	"opne/internal/app/server/handlers/dashboard"
	"opne/internal/app/server/handlers/notification"
	"opne/internal/app/server/handlers/order"
	"opne/internal/app/server/middlewares"
)

// SetupRoutes 配置所有路由，使用 Route Group 分类
func SetupRoutes(
	orderHandler *order.OrderHandler,
	dashboardHandler *dashboard.DashboardHandler,
	notificationHandler *notification.NotificationHandler,
	alertHandler *alert.AlertHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.CORS())
	r.Use(middlewares.Logger())
	r.Use(middlewares.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "opne",
			"message": "Service is running",
		})
	})

	v1 := r.Group("/api/v1")
	{
		orders := v1.Group("/orders")
		{
			orders.POST("", orderHandler.Create)
			orders.POST("/bulk", orderHandler.Bulk)
			orders.POST("/recalculate", orderHandler.Recalculate)
			orders.GET("/:id", orderHandler.Get)
			orders.PUT("/:id/status", orderHandler.UpdateStatus)
			orders.PUT("/:id/priority", orderHandler.UpdatePriority)
		}

		dashboards := v1.Group("/dashboard")
		{
			dashboards.GET("/orders", dashboardHandler.List)
		}

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.List)
			notifications.GET("/stats", notificationHandler.Stats)
			notifications.PUT("/read", notificationHandler.MarkRead)
		}

		alerts := v1.Group("/alerts")
		{
			alerts.GET("", alertHandler.List)
			alerts.PUT("/acknowledge", alertHandler.Acknowledge)
		}
	}

	return r
}
