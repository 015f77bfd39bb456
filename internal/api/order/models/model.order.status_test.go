// Package models - Test máy trạng thái đơn hàng.
package models

import "testing"

func TestCanTransition_TienTungBuoc(t *testing.T) {
	hopLe := [][2]string{
		{StatusPending, StatusPaid},
		{StatusPaid, StatusPreparing},
		{StatusPreparing, StatusShipped},
		{StatusShipped, StatusDelivered},
	}
	for _, tc := range hopLe {
		if !CanTransition(tc[0], tc[1]) {
			t.Errorf("chuyển %s → %s phải hợp lệ", tc[0], tc[1])
		}
	}
}

func TestCanTransition_KhongNhayCoc(t *testing.T) {
	khongHopLe := [][2]string{
		{StatusPending, StatusPreparing},
		{StatusPending, StatusDelivered},
		{StatusPaid, StatusShipped},
		{StatusShipped, StatusPaid},      // không đi lùi
		{StatusDelivered, StatusPending}, // không ra khỏi delivered
	}
	for _, tc := range khongHopLe {
		if CanTransition(tc[0], tc[1]) {
			t.Errorf("chuyển %s → %s phải bị từ chối", tc[0], tc[1])
		}
	}
}

func TestCanTransition_HuyDon(t *testing.T) {
	huyDuoc := []string{StatusPending, StatusPaid, StatusPreparing, StatusShipped}
	for _, from := range huyDuoc {
		if !CanTransition(from, StatusCancelled) {
			t.Errorf("hủy từ %s phải hợp lệ", from)
		}
	}

	if CanTransition(StatusDelivered, StatusCancelled) {
		t.Error("không được hủy đơn đã giao")
	}
	if CanTransition(StatusCancelled, StatusPending) {
		t.Error("không có chuyển tiếp nào ra khỏi cancelled")
	}
	if CanTransition(StatusCancelled, StatusCancelled) {
		t.Error("cancelled là trạng thái cuối")
	}
}

func TestCanTransition_TrangThaiLa(t *testing.T) {
	if CanTransition("pending", "unknown") {
		t.Error("trạng thái đích lạ phải bị từ chối")
	}
	if CanTransition("unknown", "paid") {
		t.Error("trạng thái nguồn lạ phải bị từ chối")
	}
}
