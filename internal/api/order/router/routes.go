// Package router đăng ký các route thuộc domain order: tạo đơn, danh sách,
// chuyển trạng thái.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/syrwx/parfum-djonkoud-sub000/internal/api/middleware"
	orderhdl "github.com/syrwx/parfum-djonkoud-sub000/internal/api/order/handler"
	apirouter "github.com/syrwx/parfum-djonkoud-sub000/internal/api/router"
)

// Register đăng ký các route đơn hàng lên /api.
// Tạo đơn là public (checkout); xem danh sách và chuyển trạng thái là admin.
func Register(api fiber.Router, r *apirouter.Router) error {
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("create order handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()

	apirouter.RegisterRouteWithMiddleware(api, "/orders", "POST", "", nil, orderHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(api, "/orders", "GET", "", []fiber.Handler{authMiddleware}, orderHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(api, "/orders", "PUT", "/:id/status", []fiber.Handler{authMiddleware}, orderHandler.HandleUpdateStatus)

	return nil
}
