// Package router đăng ký các route thuộc domain settings: cấu hình singleton
// và tra cứu định tuyến tư vấn viên.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/syrwx/parfum-djonkoud-sub000/internal/api/middleware"
	apirouter "github.com/syrwx/parfum-djonkoud-sub000/internal/api/router"
	settingshdl "github.com/syrwx/parfum-djonkoud-sub000/internal/api/settings/handler"
)

// Register đăng ký các route settings lên /api.
func Register(api fiber.Router, r *apirouter.Router) error {
	settingsHandler, err := settingshdl.NewSettingsHandler()
	if err != nil {
		return fmt.Errorf("create settings handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()

	apirouter.RegisterRouteWithMiddleware(api, "/settings", "GET", "", nil, settingsHandler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(api, "/settings", "PUT", "", []fiber.Handler{authMiddleware}, settingsHandler.HandleReplace)
	apirouter.RegisterRouteWithMiddleware(api, "/routing", "GET", "", nil, settingsHandler.HandleResolveRouting)

	return nil
}
