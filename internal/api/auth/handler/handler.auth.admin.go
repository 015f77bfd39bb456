package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authdto "github.com/syrwx/parfum-djonkoud-sub000/internal/api/auth/dto"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/api/auth/models"
	authsvc "github.com/syrwx/parfum-djonkoud-sub000/internal/api/auth/service"
	basehdl "github.com/syrwx/parfum-djonkoud-sub000/internal/api/base/handler"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/common"
)

// AdminAuthHandler xử lý các yêu cầu đăng nhập/đăng xuất quản trị
type AdminAuthHandler struct {
	*basehdl.BaseHandler[models.AdminUser, authdto.AdminLoginInput, authdto.AdminLoginInput]
	AdminUserService *authsvc.AdminUserService
}

// NewAdminAuthHandler khởi tạo AdminAuthHandler mới
func NewAdminAuthHandler() (*AdminAuthHandler, error) {
	service, err := authsvc.NewAdminUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin user service: %v", err)
	}
	hdl := &AdminAuthHandler{AdminUserService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.AdminUser, authdto.AdminLoginInput, authdto.AdminLoginInput](service.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleLogin xử lý POST /api/auth/login.
// Trả về 401 khi email hoặc mật khẩu sai, không nói rõ trường nào.
func (h *AdminAuthHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.AdminLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.AdminUserService.Login(c.Context(), &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleLogout xử lý POST /api/auth/logout (yêu cầu token hợp lệ).
func (h *AdminAuthHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		token, ok := c.Locals("admin_token").(string)
		if !ok || token == "" {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		err := h.AdminUserService.Logout(c.Context(), token)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
