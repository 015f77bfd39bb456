package orderdto

// OrderItemInput một dòng hàng trong đơn gửi lên từ storefront.
type OrderItemInput struct {
	ProductId string `json:"productId" validate:"required"`
	Name      string `json:"name" validate:"required,no_xss"`
	Price     int64  `json:"price" validate:"min=0"`
	Quantity  int64  `json:"quantity" validate:"min=1"`
	ImageUrl  string `json:"imageUrl"`
	UnitLabel string `json:"unitLabel"`
}

// DiscountInput giảm giá áp cho đơn (tùy chọn).
type DiscountInput struct {
	Code   string `json:"code" validate:"required"`
	Amount int64  `json:"amount" validate:"min=0"`
}

// OrderCreateInput đầu vào tạo đơn hàng.
type OrderCreateInput struct {
	CustomerName  string           `json:"customerName" validate:"required,no_xss"`
	Phone         string           `json:"phone" validate:"required,msisdn_intl"`
	Address       string           `json:"address" validate:"required,no_xss"`
	Items         []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string           `json:"paymentMethod" validate:"required"`
	Instructions  string           `json:"instructions" validate:"no_xss"`
	Discount      *DiscountInput   `json:"discount"`
}

// OrderStatusUpdateInput đầu vào chuyển trạng thái đơn (admin).
type OrderStatusUpdateInput struct {
	Status string `json:"status" validate:"required,oneof=pending paid preparing shipped delivered cancelled"`
}
