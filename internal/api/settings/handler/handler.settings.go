package settingshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/syrwx/parfum-djonkoud-sub000/internal/api/base/handler"
	settingsdto "github.com/syrwx/parfum-djonkoud-sub000/internal/api/settings/dto"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/api/settings/models"
	settingssvc "github.com/syrwx/parfum-djonkoud-sub000/internal/api/settings/service"
)

// SettingsHandler xử lý các yêu cầu liên quan đến settings
type SettingsHandler struct {
	*basehdl.BaseHandler[models.Settings, settingsdto.SettingsReplaceInput, settingsdto.SettingsReplaceInput]
	SettingsService *settingssvc.SettingsService
}

// NewSettingsHandler khởi tạo SettingsHandler mới
func NewSettingsHandler() (*SettingsHandler, error) {
	service, err := settingssvc.NewSettingsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create settings service: %v", err)
	}
	hdl := &SettingsHandler{SettingsService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.Settings, settingsdto.SettingsReplaceInput, settingsdto.SettingsReplaceInput](service.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleGet xử lý GET /api/settings (public).
// Trả về document đã lưu hoặc mặc định hard-code nếu chưa có.
func (h *SettingsHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		settings, err := h.SettingsService.GetOrDefault(c.Context())
		h.HandleResponse(c, settings, err)
		return nil
	})
}

// HandleReplace xử lý PUT /api/settings (admin).
// Thay toàn bộ document: caller phải gửi đủ cả contactInfo lẫn siteSettings.
func (h *SettingsHandler) HandleReplace(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input settingsdto.SettingsReplaceInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		settings, err := h.SettingsService.Replace(c.Context(), &input)
		h.HandleResponse(c, settings, err)
		return nil
	})
}
