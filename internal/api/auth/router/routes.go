// Package router đăng ký các route thuộc domain auth: đăng nhập/đăng xuất quản trị.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "github.com/syrwx/parfum-djonkoud-sub000/internal/api/auth/handler"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/api/middleware"
	apirouter "github.com/syrwx/parfum-djonkoud-sub000/internal/api/router"
)

// Register đăng ký các route auth lên /api.
func Register(api fiber.Router, r *apirouter.Router) error {
	adminAuthHandler, err := authhdl.NewAdminAuthHandler()
	if err != nil {
		return fmt.Errorf("create admin auth handler: %w", err)
	}

	// Login là route public
	apirouter.RegisterRouteWithMiddleware(api, "/auth", "POST", "/login", nil, adminAuthHandler.HandleLogin)

	// Logout yêu cầu token hợp lệ
	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(api, "/auth", "POST", "/logout", []fiber.Handler{authMiddleware}, adminAuthHandler.HandleLogout)

	return nil
}
