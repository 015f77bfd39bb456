// Package orderdto - Test các rule validate của input đơn hàng.
package orderdto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syrwx/parfum-djonkoud-sub000/internal/global"
)

func init() {
	global.InitValidator()
}

func validInput() OrderCreateInput {
	return OrderCreateInput{
		CustomerName:  "Fatoumata Keïta",
		Phone:         "+22370000000",
		Address:       "Hamdallaye ACI 2000, Bamako",
		PaymentMethod: "Orange Money",
		Items: []OrderItemInput{
			{ProductId: "p1", Name: "Rêve de Bamako", Price: 15000, Quantity: 2},
		},
	}
}

func TestOrderCreateInput_HopLe(t *testing.T) {
	input := validInput()
	assert.NoError(t, global.Validate.Struct(input), "input đầy đủ phải qua validate")
}

func TestOrderCreateInput_ThieuTruongBatBuoc(t *testing.T) {
	input := validInput()
	input.CustomerName = ""
	assert.Error(t, global.Validate.Struct(input), "thiếu tên khách phải bị từ chối")

	input = validInput()
	input.Items = nil
	assert.Error(t, global.Validate.Struct(input), "đơn không có dòng hàng phải bị từ chối")

	input = validInput()
	input.Items[0].Quantity = 0
	assert.Error(t, global.Validate.Struct(input), "số lượng 0 phải bị từ chối (dive vào từng dòng hàng)")

	input = validInput()
	input.Items[0].Price = -1
	assert.Error(t, global.Validate.Struct(input), "giá âm phải bị từ chối")
}

func TestOrderCreateInput_SoDienThoaiQuocTe(t *testing.T) {
	for _, phone := range []string{"+22370000000", "+33612345678"} {
		input := validInput()
		input.Phone = phone
		assert.NoErrorf(t, global.Validate.Struct(input), "số %q đúng định dạng quốc tế phải qua validate", phone)
	}

	for _, phone := range []string{"70000000", "+0223700000", "+223 70 00 00 00", "0022370000000"} {
		input := validInput()
		input.Phone = phone
		assert.Errorf(t, global.Validate.Struct(input), "số %q sai định dạng quốc tế phải bị từ chối", phone)
	}
}

func TestOrderCreateInput_ChanXSS(t *testing.T) {
	input := validInput()
	input.CustomerName = "<script>alert(1)</script>"
	assert.Error(t, global.Validate.Struct(input), "tên khách chứa script phải bị từ chối")

	input = validInput()
	input.Instructions = "Giao buổi sáng, gọi trước" // text tự do hợp lệ
	assert.NoError(t, global.Validate.Struct(input))
}

func TestOrderStatusUpdateInput_ChiNhanTrangThaiHopLe(t *testing.T) {
	for _, status := range []string{"pending", "paid", "preparing", "shipped", "delivered", "cancelled"} {
		input := OrderStatusUpdateInput{Status: status}
		assert.NoErrorf(t, global.Validate.Struct(input), "trạng thái %q phải qua validate", status)
	}

	input := OrderStatusUpdateInput{Status: "refunded"}
	assert.Error(t, global.Validate.Struct(input), "trạng thái ngoài danh sách phải bị từ chối")

	input = OrderStatusUpdateInput{}
	assert.Error(t, global.Validate.Struct(input), "thiếu trạng thái phải bị từ chối")
}
