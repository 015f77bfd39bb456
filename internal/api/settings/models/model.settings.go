// Package models - Settings (document singleton) thuộc domain settings.
package models

import (
	"github.com/syrwx/parfum-djonkoud-sub000/internal/routing"
)

// SettingsID là _id cố định của document settings duy nhất.
const SettingsID = "singleton"

// ContactInfo chứa thông tin liên hệ và danh sách tư vấn viên WhatsApp.
type ContactInfo struct {
	Address   string          `json:"address" bson:"address"`     // Địa chỉ cửa hàng
	Phone     string          `json:"phone" bson:"phone"`         // Số điện thoại
	Email     string          `json:"email" bson:"email"`         // Email liên hệ
	Hours     string          `json:"hours" bson:"hours"`         // Giờ mở cửa
	Facebook  string          `json:"facebook" bson:"facebook"`   // Handle Facebook
	Instagram string          `json:"instagram" bson:"instagram"` // Handle Instagram
	Tiktok    string          `json:"tiktok" bson:"tiktok"`       // Handle TikTok
	Agents    []routing.Agent `json:"agents" bson:"agents" validate:"dive"` // Tư vấn viên WhatsApp (tra theo role khi định tuyến đơn)
}

// SiteSettings chứa các trường giao diện và tham số bán hàng của site.
type SiteSettings struct {
	HeroTitle          string   `json:"heroTitle" bson:"heroTitle"`                   // Tiêu đề hero
	HeroSubtitle       string   `json:"heroSubtitle" bson:"heroSubtitle"`             // Phụ đề hero
	HeroImageUrl       string   `json:"heroImageUrl" bson:"heroImageUrl"`             // Ảnh hero
	WholesaleThreshold int64    `json:"wholesaleThreshold" bson:"wholesaleThreshold"` // Ngưỡng giá trị đơn sỉ (FCFA)
	PaymentMethods     []string `json:"paymentMethods" bson:"paymentMethods"`         // Các phương thức thanh toán bật
}

// Settings là document cấu hình duy nhất của hệ thống.
// Đọc trả về document hoặc DefaultSettings() nếu chưa có; ghi thay thế
// TOÀN BỘ document (upsert, không merge từng phần) — caller phải gửi đủ
// cả contactInfo lẫn siteSettings mỗi lần.
type Settings struct {
	ID           string       `json:"id" bson:"_id"` // Luôn là SettingsID
	ContactInfo  ContactInfo  `json:"contactInfo" bson:"contactInfo"`
	SiteSettings SiteSettings `json:"siteSettings" bson:"siteSettings"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// DefaultSettings trả về cấu hình mặc định hard-code, dùng khi database
// chưa có document settings nào.
func DefaultSettings() Settings {
	return Settings{
		ID: SettingsID,
		ContactInfo: ContactInfo{
			Address: "Bamako, Mali",
			Hours:   "Lun-Sam 09h-19h",
			Agents:  []routing.Agent{},
		},
		SiteSettings: SiteSettings{
			HeroTitle:          "Parfum Djonkoud",
			HeroSubtitle:       "Parfums d'exception, livrés chez vous",
			WholesaleThreshold: 200000,
			PaymentMethods:     []string{"Orange Money", "Moov Money", "Paiement à la livraison"},
		},
	}
}
