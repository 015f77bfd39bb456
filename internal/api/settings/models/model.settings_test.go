// Package models - Test cấu hình mặc định trả về khi database chưa có settings.
package models

import "testing"

func TestDefaultSettings_DungIdVaCoGiaTriDung(t *testing.T) {
	def := DefaultSettings()

	if def.ID != SettingsID {
		t.Errorf("settings mặc định phải có _id %q, nhận %q", SettingsID, def.ID)
	}
	if def.SiteSettings.WholesaleThreshold <= 0 {
		t.Error("ngưỡng sỉ mặc định phải dương")
	}
	if len(def.SiteSettings.PaymentMethods) == 0 {
		t.Error("mặc định phải bật ít nhất một phương thức thanh toán")
	}
	if def.ContactInfo.Agents == nil {
		t.Error("danh sách agent mặc định phải là mảng rỗng, không phải nil (JSON trả [] thay vì null)")
	}
}
