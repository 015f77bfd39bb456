package settingsdto

import (
	"github.com/syrwx/parfum-djonkoud-sub000/internal/api/settings/models"
)

// SettingsReplaceInput đầu vào thay thế settings.
// PUT thay toàn bộ document: thiếu nửa nào là mất dữ liệu nửa đó,
// nên cả hai phần đều bắt buộc.
type SettingsReplaceInput struct {
	ContactInfo  models.ContactInfo  `json:"contactInfo" validate:"required"`
	SiteSettings models.SiteSettings `json:"siteSettings" validate:"required"`
}

// RoutingQueryOutput kết quả gợi ý tư vấn viên cho storefront.
type RoutingQueryOutput struct {
	Agent *RoutingAgentOutput `json:"agent"` // nil khi không có agent nào phù hợp
	Label string              `json:"label,omitempty"`
}

// RoutingAgentOutput thông tin tư vấn viên trả cho storefront (không lộ trường nội bộ).
type RoutingAgentOutput struct {
	AgentId string `json:"agentId"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Role    string `json:"role"`
}
