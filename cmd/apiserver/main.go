package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"opne/internal/app/config"
)

func main() {
	// 1. 加载配置
	cfg, err := config.LoadDefault()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	// 2. 初始化应用（HTTP Server + 变更监听器 + 清理任务）
	app, cleanup, err := InitializeApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer cleanup()

	// 3. 创建 HTTP Server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: app.Engine,
	}

	// 4. 启动变更监听器（后台 goroutine）
	backgroundCtx, cancelBackground := context.WithCancel(context.Background())
	listenerErrChan := make(chan error, 1)

	go func() {
		log.Printf("Starting change listener...")
		listenerErrChan <- app.ChangeListener.Start(backgroundCtx)
	}()

	// 5. 启动清理任务（后台 goroutine）
	go func() {
		log.Printf("Starting cleanup job...")
		app.CleanupJob.Start(backgroundCtx)
	}()

	// 6. 启动 HTTP Server（后台 goroutine）
	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Starting HTTP server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	// 7. 优雅停机处理
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Println("Received shutdown signal, gracefully shutting down...")
		gracefulShutdown(server, app, cancelBackground)
	case err := <-serverErrChan:
		log.Fatalf("HTTP server error: %v", err)
	case err := <-listenerErrChan:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("Change listener error: %v", err)
		}
	}

	log.Println("Application stopped")
}

// gracefulShutdown 优雅停机
func gracefulShutdown(server *http.Server, app *App, cancelBackground context.CancelFunc) {
	// 1. 停止后台组件
	log.Println("Stopping background workers...")
	app.ChangeListener.Shutdown()
	app.CleanupJob.Shutdown()
	cancelBackground()
	time.Sleep(1 * time.Second) // 等待监听器处理完当前消息

	// 2. 停止 HTTP Server
	log.Println("Stopping HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped gracefully")
	}

	log.Println("All services stopped gracefully")
}
