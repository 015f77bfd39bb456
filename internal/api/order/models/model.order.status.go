package models

// Các trạng thái của đơn hàng.
const (
	StatusPending   = "pending"   // Mới tạo, chờ thanh toán
	StatusPaid      = "paid"      // Đã thanh toán
	StatusPreparing = "preparing" // Đang chuẩn bị hàng
	StatusShipped   = "shipped"   // Đã giao cho vận chuyển
	StatusDelivered = "delivered" // Đã giao tới khách (trạng thái cuối)
	StatusCancelled = "cancelled" // Đã hủy (trạng thái cuối)
)

// nextStatus là bước tiến hợp lệ kế tiếp của từng trạng thái.
var nextStatus = map[string]string{
	StatusPending:   StatusPaid,
	StatusPaid:      StatusPreparing,
	StatusPreparing: StatusShipped,
	StatusShipped:   StatusDelivered,
}

// IsValidStatus kiểm tra chuỗi có phải một trạng thái đơn hàng hợp lệ.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPaid, StatusPreparing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransition kiểm tra chuyển trạng thái from → to có hợp lệ:
// tiến từng bước pending → paid → preparing → shipped → delivered;
// hủy được từ mọi trạng thái trừ delivered; delivered và cancelled
// là trạng thái cuối, không chuyển tiếp được nữa.
func CanTransition(from, to string) bool {
	if !IsValidStatus(from) || !IsValidStatus(to) {
		return false
	}
	if from == StatusDelivered || from == StatusCancelled {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	return nextStatus[from] == to
}
