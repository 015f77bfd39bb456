package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/syrwx/parfum-djonkoud-sub000/config"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/api/events"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/database"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/global"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/logger"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Products = "products"
	global.MongoDB_ColNames.Orders = "orders"
	global.MongoDB_ColNames.AdminUsers = "admin_users"
	global.MongoDB_ColNames.Settings = "settings"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, msisdn_intl, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
// Index của các collection được tạo trong InitRegistry, sau khi database đã đăng ký vào registry.
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công
}

// InitEventSubscribers đăng ký các handler phản ứng với thay đổi dữ liệu.
// Hiện tại: audit log — mọi thao tác ghi qua base service được ghi vào audit logger.
func InitEventSubscribers() {
	auditLog := logger.GetAuditLogger()
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		auditLog.WithFields(map[string]interface{}{
			"collection": e.CollectionName,
			"operation":  e.Operation,
			"document":   e.Document,
		}).Info("Data changed")
	})
	logrus.Info("Registered data change subscribers")
}
