// Package settingsdto - Test các rule validate của input thay thế settings.
package settingsdto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syrwx/parfum-djonkoud-sub000/internal/api/settings/models"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/global"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/routing"
)

func init() {
	global.InitValidator()
}

func validReplaceInput() SettingsReplaceInput {
	def := models.DefaultSettings()
	def.ContactInfo.Agents = []routing.Agent{
		{AgentId: "a1", Name: "Aïssata", Phone: "+22376000001", Role: routing.RoleRetail, Active: true},
	}
	return SettingsReplaceInput{
		ContactInfo:  def.ContactInfo,
		SiteSettings: def.SiteSettings,
	}
}

func TestSettingsReplaceInput_HopLe(t *testing.T) {
	input := validReplaceInput()
	assert.NoError(t, global.Validate.Struct(input), "settings đầy đủ với agent hợp lệ phải qua validate")
}

func TestSettingsReplaceInput_SoWhatsAppAgentSaiDinhDang(t *testing.T) {
	input := validReplaceInput()
	input.ContactInfo.Agents[0].Phone = "76 00 00 01"
	assert.Error(t, global.Validate.Struct(input), "số WhatsApp của agent không ở định dạng quốc tế phải bị từ chối (dive vào từng agent)")

	// Agent chưa khai số (phone rỗng) vẫn hợp lệ, chỉ sai định dạng mới bị chặn
	input = validReplaceInput()
	input.ContactInfo.Agents[0].Phone = ""
	assert.NoError(t, global.Validate.Struct(input))
}
