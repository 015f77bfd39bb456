// Package router đăng ký các route thuộc domain catalog: sản phẩm.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "github.com/syrwx/parfum-djonkoud-sub000/internal/api/catalog/handler"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/api/middleware"
	apirouter "github.com/syrwx/parfum-djonkoud-sub000/internal/api/router"
)

// Register đăng ký các route sản phẩm lên /api.
// GET danh sách là public (storefront); các mutation yêu cầu token quản trị
// và đều đi qua đường invalidate cache trong service.
func Register(api fiber.Router, r *apirouter.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("create product handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()

	apirouter.RegisterRouteWithMiddleware(api, "/products", "GET", "", nil, productHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(api, "/products", "POST", "", []fiber.Handler{authMiddleware}, productHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(api, "/products", "PUT", "/:id", []fiber.Handler{authMiddleware}, productHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(api, "/products", "DELETE", "/:id", []fiber.Handler{authMiddleware}, productHandler.HandleDelete)

	return nil
}
