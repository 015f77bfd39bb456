package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"

	"github.com/syrwx/parfum-djonkoud-sub000/internal/database"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/global"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Khởi tạo logger với cấu hình mặc định
	// Logger sẽ tự động đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	// Log thông tin khởi tạo bằng logger mới
	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server.
// Server dừng graceful khi nhận SIGINT/SIGTERM: Fiber drain các request đang
// chạy rồi mới trả về, sau đó đóng kết nối MongoDB.
func main_thread() {
	// Khởi tạo app với cấu hình
	app := InitFiberApp()

	// Khởi động server với cấu hình listen
	cfg := global.ServerConfig
	address := ":" + cfg.Address

	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server...")

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listenConfig := fiber.ListenConfig{
		GracefulContext: shutdownCtx,
		OnShutdownSuccess: func() {
			log.Info("Fiber server stopped gracefully")
		},
	}
	if err := app.Listen(address, listenConfig); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}

	// Đóng kết nối MongoDB sau khi server đã dừng
	if err := database.CloseInstance(global.MongoDB_Session); err != nil {
		log.Errorf("Error closing MongoDB connection: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Đăng ký các subscriber cho event thay đổi dữ liệu (audit log)
	InitEventSubscribers()

	// Khởi tạo dữ liệu mặc định
	InitDefaultData()

	// Chạy Fiber server trên main thread
	main_thread()
}
