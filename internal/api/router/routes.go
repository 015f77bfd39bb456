package router

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================================
// ⚠️ QUAN TRỌNG: FIBER V3 - CÁCH ĐĂNG KÝ MIDDLEWARE
// ============================================================================
//
// Fiber v3 ĐỔI THỨ TỰ tham số so với v2: handler đứng TRƯỚC, middleware đứng SAU.
// Truyền middleware kiểu v2 (trước handler) sẽ khiến middleware KHÔNG được gọi!
//
// ❌ CÁCH SAI (kiểu v2, KHÔNG HOẠT ĐỘNG trên v3):
//    router.Get("/path", middleware.AuthMiddleware(), handler)
//
// ✅ CÁCH ĐÚNG (PHẢI DÙNG):
//    RegisterRouteWithMiddleware(router, "/orders", "PUT", "/:id/status",
//        []fiber.Handler{middleware.AuthMiddleware()}, handler)
//
// Không dùng group.Use() cho middleware xác thực: Use() áp theo path prefix cho
// MỌI method, trong khi API này trộn method public và method bảo vệ trên cùng
// một path (GET /products public, POST /products cần token).
//
// 🔍 KIỂM TRA:
//    Nếu thấy route nào truyền middleware trước handler → PHẢI SỬA NGAY!
//
// ============================================================================

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{
		Base: "/api",
	}
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// RegisterRouteWithMiddleware đăng ký route với middleware theo đúng thứ tự
// tham số của Fiber v3 (handler trước, middleware sau). Dùng từ domain router.
//
// Ví dụ sử dụng:
//
//	authMiddleware := middleware.AuthMiddleware()
//	RegisterRouteWithMiddleware(router, "/orders", "PUT", "/:id/status", []fiber.Handler{authMiddleware}, handler)
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)

	switch method {
	case "GET":
		routeGroup.Get(path, handler, middlewares...)
	case "POST":
		routeGroup.Post(path, handler, middlewares...)
	case "PUT":
		routeGroup.Put(path, handler, middlewares...)
	case "DELETE":
		routeGroup.Delete(path, handler, middlewares...)
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(api fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng.
// Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	api := app.Group(prefix.Base)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(api, r); err != nil {
			return err
		}
	}
	return nil
}
