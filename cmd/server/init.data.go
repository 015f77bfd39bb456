package main

import (
	"context"

	authsvc "github.com/syrwx/parfum-djonkoud-sub000/internal/api/auth/service"
	settingssvc "github.com/syrwx/parfum-djonkoud-sub000/internal/api/settings/service"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/global"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu mặc định cho cửa hàng:
// bản ghi admin duy nhất và document settings singleton.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("Starting InitDefaultData...")

	ctx := context.Background()

	// 1. Tạo tài khoản admin nếu chưa có (email/mật khẩu lấy từ config)
	adminService, err := authsvc.NewAdminUserService()
	if err != nil {
		log.Fatalf("Failed to initialize admin user service: %v", err)
	}
	cfg := global.ServerConfig
	if err := adminService.EnsureAdminAccount(ctx, "Administrateur", cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to ensure admin account: %v", err)
	}
	log.Info("Admin account ensured")

	// 2. Tạo document settings mặc định nếu chưa có
	settingsService, err := settingssvc.NewSettingsService()
	if err != nil {
		log.Fatalf("Failed to initialize settings service: %v", err)
	}
	if err := settingsService.EnsureDefault(ctx); err != nil {
		log.Fatalf("Failed to ensure default settings: %v", err)
	}
	log.Info("Default settings ensured")

	log.Info("InitDefaultData completed successfully")
}
