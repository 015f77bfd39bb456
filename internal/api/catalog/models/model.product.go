// Package models - Product thuộc domain catalog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product là một sản phẩm nước hoa trong catalog.
// ProductId là định danh nghiệp vụ (string, unique, ổn định suốt vòng đời);
// client thao tác qua productId, không qua _id của MongoDB.
// Stock = 0 là trạng thái hết hàng hợp lệ và vẫn hiển thị, không phải xóa.
type Product struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`                     // ID trong MongoDB
	ProductId       string             `json:"productId" bson:"productId" index:"unique"`             // Định danh nghiệp vụ (uuid nếu không cung cấp)
	Name            string             `json:"name" bson:"name"`                                      // Tên sản phẩm
	Price           int64              `json:"price" bson:"price"`                                    // Giá (FCFA, số nguyên)
	Category        string             `json:"category" bson:"category"`                              // Danh mục
	Description     string             `json:"description" bson:"description"`                        // Mô tả
	Story           string             `json:"story" bson:"story"`                                    // Câu chuyện sản phẩm
	Notes           []string           `json:"notes" bson:"notes"`                                    // Các nốt hương (thứ tự hiển thị quan trọng)
	ImageUrl        string             `json:"imageUrl" bson:"imageUrl"`                              // Ảnh chính
	OverlayImageUrl string             `json:"overlayImageUrl,omitempty" bson:"overlayImageUrl,omitempty"` // Ảnh overlay (tùy chọn)
	Rating          float64            `json:"rating" bson:"rating"`                                  // Đánh giá 0-5
	Sku             string             `json:"sku,omitempty" bson:"sku,omitempty"`                    // SKU (tùy chọn)
	UnitLabel       string             `json:"unitLabel,omitempty" bson:"unitLabel,omitempty"`        // Nhãn đơn vị, ví dụ "50ml" (tùy chọn)
	Stock           int64              `json:"stock" bson:"stock"`                                    // Tồn kho (>= 0)

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
