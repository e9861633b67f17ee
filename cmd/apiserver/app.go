package main

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"opne/internal/app/config"
	"opne/internal/app/domains/repo/rpcustomer"
	"opne/internal/app/domains/repo/rpnotify"
	"opne/internal/app/domains/repo/rporder"
	"opne/internal/app/domains/repo/rprule"
	"opne/internal/app/domains/services/svbulk"
	"opne/internal/app/domains/services/svdashboard"
	"opne/internal/app/domains/services/svnotify"
	"opne/internal/app/domains/services/svorder"
	"opne/internal/app/infra/mq/lmstfy"
	"opne/internal/app/infra/persistence/redis"
	"opne/internal/app/jobs"
	"opne/internal/app/listener"
	"opne/internal/app/pkg/logger"
	"opne/internal/app/server/handlers/alert"
	"opne/internal/app/server/handlers/dashboard"
	"opne/internal/app/server/handlers/notification"
	"opne/internal/app/server/handlers/order"
	"opne/internal/app/server/routers"
)

// App 应用实例（HTTP 引擎 + 后台组件）
type App struct {
	Engine         *gin.Engine
	ChangeListener *listener.ChangeListener
	CleanupJob     *jobs.CleanupJob
	Logger         logger.Logger
}

// InitializeApp 手工依赖注入，自底向上组装
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	appLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger failed: %w", err)
	}

	// 基础设施：MySQL
	db, err := gorm.Open(mysql.Open(cfg.MySQL.DSN), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("init database failed: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("get sql.DB failed: %w", err)
	}

	// 基础设施：Redis（看板广播）
	redisClient, err := redis.NewPubSubClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("init redis failed: %w", err)
	}

	// 基础设施：Lmstfy（变更事件队列）
	lmstfyClient, err := lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Port, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token)
	if err != nil {
		_ = redisClient.Close()
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("init lmstfy failed: %w", err)
	}
	eventQueue := lmstfy.NewEventQueue(lmstfyClient, cfg.Lmstfy.EventQueue)

	// Repository 层
	orderRepo := rporder.NewOrderRepository(db)
	ruleRepo := rprule.NewRuleRepository(db)
	customerRepo := rpcustomer.NewCustomerRepository(db)
	notificationRepo := rpnotify.NewNotificationRepository(db)
	alertRepo := rpnotify.NewAlertRepository(db)

	// Service 层
	orderService := svorder.NewOrderService(orderRepo, ruleRepo, customerRepo, eventQueue, appLogger)
	bulkService := svbulk.NewBulkService(orderService, appLogger)
	notifyService := svnotify.NewNotifyService(notificationRepo, alertRepo, redisClient, cfg.Broadcast.Channel, appLogger)
	dashboardService := svdashboard.NewDashboardService(orderRepo, customerRepo, appLogger)

	// 后台组件
	changeListener := listener.NewChangeListener(
		lmstfyClient,
		notifyService,
		&listener.Config{
			QueueName:    cfg.Lmstfy.EventQueue,
			Timeout:      time.Duration(cfg.Listener.Timeout) * time.Second,
			TTR:          time.Duration(cfg.Listener.TTR) * time.Second,
			PollInterval: cfg.Listener.PollInterval,
		},
		appLogger,
	)
	cleanupJob := jobs.NewCleanupJob(
		notificationRepo,
		alertRepo,
		&jobs.CleanupConfig{
			Interval:      cfg.Cleanup.Interval,
			RetentionDays: cfg.Cleanup.RetentionDays,
			PassTimeout:   cfg.Cleanup.PassTimeout,
		},
		appLogger,
	)

	// Handler 层 + 路由
	orderHandler := order.NewOrderHandler(orderService, bulkService)
	dashboardHandler := dashboard.NewDashboardHandler(dashboardService)
	notificationHandler := notification.NewNotificationHandler(notifyService)
	alertHandler := alert.NewAlertHandler(notifyService)

	engine := routers.SetupRoutes(orderHandler, dashboardHandler, notificationHandler, alertHandler)

	cleanup := func() {
		_ = redisClient.Close()
		_ = sqlDB.Close()
		_ = appLogger.Sync()
	}

	return &App{
		Engine:         engine,
		ChangeListener: changeListener,
		CleanupJob:     cleanupJob,
		Logger:         appLogger,
	}, cleanup, nil
}
