// Package models - Order thuộc domain order.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem là một dòng hàng trong đơn: snapshot sản phẩm tại thời điểm đặt
// cộng số lượng. Denormalize có chủ đích để đơn cũ không bị ảnh hưởng khi
// sản phẩm bị sửa hay xóa về sau.
type OrderItem struct {
	ProductId string `json:"productId" bson:"productId"`                     // productId tại thời điểm đặt
	Name      string `json:"name" bson:"name"`                               // Tên sản phẩm snapshot
	Price     int64  `json:"price" bson:"price"`                             // Đơn giá snapshot (FCFA)
	Quantity  int64  `json:"quantity" bson:"quantity"`                       // Số lượng
	ImageUrl  string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`   // Ảnh snapshot
	UnitLabel string `json:"unitLabel,omitempty" bson:"unitLabel,omitempty"` // Nhãn đơn vị snapshot
}

// Discount là giảm giá đã áp cho đơn (nếu có).
type Discount struct {
	Code   string `json:"code" bson:"code"`     // Mã giảm giá
	Amount int64  `json:"amount" bson:"amount"` // Số tiền giảm (FCFA)
}

// Order là một đơn hàng. Append-only trừ trường status (chỉ admin chuyển,
// qua endpoint riêng và theo máy trạng thái trong model.order.status.go).
type Order struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`                        // ID trong MongoDB
	CustomerName  string             `json:"customerName" bson:"customerName"`                         // Tên khách
	Phone         string             `json:"phone" bson:"phone"`                                       // Số điện thoại liên hệ
	Address       string             `json:"address" bson:"address"`                                   // Địa chỉ giao hàng
	Items         []OrderItem        `json:"items" bson:"items"`                                       // Các dòng hàng (snapshot)
	TotalAmount   int64              `json:"totalAmount" bson:"totalAmount"`                           // Tổng tiền (FCFA)
	PaymentMethod string             `json:"paymentMethod" bson:"paymentMethod"`                       // Tag phương thức thanh toán
	Status        string             `json:"status" bson:"status"`                                     // Trạng thái hiện tại
	Instructions  string             `json:"instructions,omitempty" bson:"instructions,omitempty"`     // Ghi chú giao hàng (tùy chọn)
	Discount      *Discount          `json:"discount,omitempty" bson:"discount,omitempty"`             // Giảm giá đã áp (tùy chọn)

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
