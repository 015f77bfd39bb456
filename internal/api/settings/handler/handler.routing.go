package settingshdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	settingsdto "github.com/syrwx/parfum-djonkoud-sub000/internal/api/settings/dto"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/common"
)

// HandleResolveRouting xử lý GET /api/routing?country=&total= (public).
// Storefront hỏi server tư vấn viên nào nhận đơn thay vì tự nhân bản quy tắc.
// Không có agent nào phù hợp → 404 với payload "no agent".
func (h *SettingsHandler) HandleResolveRouting(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		country := c.Query("country")
		if country == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu tham số country",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		total, err := strconv.ParseInt(c.Query("total", "0"), 10, 64)
		if err != nil || total < 0 {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Tham số total phải là số nguyên không âm",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		agent, label, ok, err := h.SettingsService.ResolveAgent(c.Context(), country, total)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if !ok {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeBusinessOperation,
				"Hiện không có tư vấn viên nào nhận đơn",
				common.StatusNotFound,
				nil,
			))
			return nil
		}

		h.HandleResponse(c, settingsdto.RoutingQueryOutput{
			Agent: &settingsdto.RoutingAgentOutput{
				AgentId: agent.AgentId,
				Name:    agent.Name,
				Phone:   agent.Phone,
				Role:    agent.Role,
			},
			Label: label,
		}, nil)
		return nil
	})
}
