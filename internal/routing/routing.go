// Package routing chứa quy tắc chọn tư vấn viên WhatsApp cho một đơn checkout.
// Toàn bộ package là pure function: không I/O, không state ẩn, để test độc lập.
package routing

// Các role của tư vấn viên.
const (
	RoleRetail    = "retail"
	RoleWholesale = "wholesale"
	RoleExport    = "export"
	RoleGeneral   = "general"
)

// Các nhãn định tuyến hiển thị cho khách.
const (
	LabelExport  = "Export Service"
	LabelWhole   = "Wholesale"
	LabelAdvisor = "Private Advisor"
)

// Agent là một tư vấn viên bán hàng qua WhatsApp (thuộc Settings).
type Agent struct {
	AgentId string `json:"agentId" bson:"agentId"`                    // Định danh
	Name    string `json:"name" bson:"name"`                          // Tên hiển thị
	Phone   string `json:"phone" bson:"phone" validate:"msisdn_intl"` // Số WhatsApp, định dạng quốc tế +XXX...
	Role    string `json:"role" bson:"role"`                          // retail | wholesale | export | general
	Active  bool   `json:"active" bson:"active"`                      // Đang nhận đơn
}

// SelectAgent chọn đúng một tư vấn viên và nhãn định tuyến theo thứ tự ưu tiên:
//
//  1. Nước đến khác nước nhà và có agent export active → "Export Service".
//  2. Subtotal >= ngưỡng sỉ và có agent wholesale active → "Wholesale".
//  3. Agent retail active, fallback general, fallback agent active đầu tiên
//     theo thứ tự danh sách → "Private Advisor".
//  4. Không còn agent active nào → ok=false; caller PHẢI báo lỗi cho người
//     dùng, không được âm thầm bỏ qua.
//
// Hàm là pure function của đúng các tham số truyền vào.
func SelectAgent(destCountry, homeCountry string, subtotal, wholesaleThreshold int64, agents []Agent) (Agent, string, bool) {
	if destCountry != homeCountry {
		if a, ok := firstActiveWithRole(agents, RoleExport); ok {
			return a, LabelExport, true
		}
	}

	if subtotal >= wholesaleThreshold {
		if a, ok := firstActiveWithRole(agents, RoleWholesale); ok {
			return a, LabelWhole, true
		}
	}

	if a, ok := firstActiveWithRole(agents, RoleRetail); ok {
		return a, LabelAdvisor, true
	}
	if a, ok := firstActiveWithRole(agents, RoleGeneral); ok {
		return a, LabelAdvisor, true
	}
	if a, ok := firstActive(agents); ok {
		return a, LabelAdvisor, true
	}

	return Agent{}, "", false
}

func firstActiveWithRole(agents []Agent, role string) (Agent, bool) {
	for _, a := range agents {
		if a.Active && a.Role == role {
			return a, true
		}
	}
	return Agent{}, false
}

func firstActive(agents []Agent) (Agent, bool) {
	for _, a := range agents {
		if a.Active {
			return a, true
		}
	}
	return Agent{}, false
}
