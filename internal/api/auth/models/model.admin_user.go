// Package models - AdminUser thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminUser là tài khoản quản trị của cửa hàng.
// Hệ thống chỉ có một bản ghi admin duy nhất, seed từ env khi khởi động.
// Password lưu plaintext theo hợp đồng hiện tại; việc so sánh đi qua
// CredentialChecker để có thể thay bằng scheme hash mà không đổi caller.
type AdminUser struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID trong MongoDB
	Name     string             `json:"name" bson:"name"`                  // Tên hiển thị
	Email    string             `json:"email" bson:"email" index:"unique"` // Email đăng nhập (unique)
	Password string             `json:"-" bson:"password"`                 // Mật khẩu (không trả về qua JSON)
	Token    string             `json:"-" bson:"token,omitempty"`          // JWT của phiên hiện tại, cập nhật mỗi lần login

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
