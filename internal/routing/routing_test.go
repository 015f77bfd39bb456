// Package routing - Test tính tất định của quy tắc chọn tư vấn viên.
package routing

import "testing"

const (
	home      = "Mali"
	threshold = int64(200000)
)

func TestSelectAgent_XuatKhau_ChonExportBatKeTotal(t *testing.T) {
	agents := []Agent{
		{AgentId: "a1", Name: "Aminata", Role: RoleExport, Active: true},
	}

	agent, label, ok := SelectAgent("France", home, 10000, threshold, agents)
	if !ok {
		t.Fatal("phải chọn được agent export")
	}
	if agent.AgentId != "a1" || label != LabelExport {
		t.Errorf("đơn ra nước ngoài phải về Export Service, nhận agent=%s label=%q", agent.AgentId, label)
	}

	// Total lớn cũng không đổi kết quả: export đứng trước wholesale
	agents = append(agents, Agent{AgentId: "a2", Role: RoleWholesale, Active: true})
	agent, label, _ = SelectAgent("France", home, 500000, threshold, agents)
	if agent.AgentId != "a1" || label != LabelExport {
		t.Errorf("export phải thắng wholesale với đơn ra nước ngoài, nhận agent=%s label=%q", agent.AgentId, label)
	}
}

func TestSelectAgent_TrenNguongSi_ChonWholesale(t *testing.T) {
	agents := []Agent{
		{AgentId: "w1", Role: RoleWholesale, Active: true},
		{AgentId: "r1", Role: RoleRetail, Active: true},
	}

	agent, label, ok := SelectAgent(home, home, 250000, threshold, agents)
	if !ok || agent.AgentId != "w1" || label != LabelWhole {
		t.Errorf("đơn nội địa >= ngưỡng phải về Wholesale, nhận agent=%s label=%q ok=%v", agent.AgentId, label, ok)
	}

	// Đúng bằng ngưỡng cũng tính là sỉ
	agent, _, _ = SelectAgent(home, home, threshold, threshold, agents)
	if agent.AgentId != "w1" {
		t.Errorf("subtotal == ngưỡng phải về wholesale, nhận agent=%s", agent.AgentId)
	}
}

func TestSelectAgent_DonLe_ChonRetail(t *testing.T) {
	agents := []Agent{
		{AgentId: "r1", Role: RoleRetail, Active: true},
	}

	agent, label, ok := SelectAgent(home, home, 5000, threshold, agents)
	if !ok || agent.AgentId != "r1" || label != LabelAdvisor {
		t.Errorf("đơn lẻ nội địa phải về Private Advisor, nhận agent=%s label=%q ok=%v", agent.AgentId, label, ok)
	}
}

func TestSelectAgent_KhongCoAgent_TraVeKhong(t *testing.T) {
	_, _, ok := SelectAgent(home, home, 5000, threshold, nil)
	if ok {
		t.Error("danh sách agent rỗng phải trả về no agent")
	}

	// Agent có nhưng inactive cũng là no agent
	agents := []Agent{{AgentId: "r1", Role: RoleRetail, Active: false}}
	if _, _, ok := SelectAgent(home, home, 5000, threshold, agents); ok {
		t.Error("toàn agent inactive phải trả về no agent")
	}
}

func TestSelectAgent_ChuoiFallback(t *testing.T) {
	// Không có retail → general
	agents := []Agent{
		{AgentId: "g1", Role: RoleGeneral, Active: true},
	}
	agent, label, ok := SelectAgent(home, home, 5000, threshold, agents)
	if !ok || agent.AgentId != "g1" || label != LabelAdvisor {
		t.Errorf("thiếu retail phải fallback sang general, nhận agent=%s label=%q", agent.AgentId, label)
	}

	// Không có retail lẫn general → agent active đầu tiên theo thứ tự danh sách
	agents = []Agent{
		{AgentId: "w0", Role: RoleWholesale, Active: false},
		{AgentId: "w1", Role: RoleWholesale, Active: true},
		{AgentId: "w2", Role: RoleWholesale, Active: true},
	}
	agent, label, ok = SelectAgent(home, home, 5000, threshold, agents)
	if !ok || agent.AgentId != "w1" || label != LabelAdvisor {
		t.Errorf("fallback cuối phải là agent active đầu tiên, nhận agent=%s label=%q", agent.AgentId, label)
	}

	// Xuất khẩu nhưng không có export agent → rơi xuống các bước sau
	agents = []Agent{{AgentId: "r1", Role: RoleRetail, Active: true}}
	agent, label, ok = SelectAgent("Senegal", home, 5000, threshold, agents)
	if !ok || agent.AgentId != "r1" || label != LabelAdvisor {
		t.Errorf("không có export agent thì đơn xuất khẩu rơi xuống retail, nhận agent=%s label=%q", agent.AgentId, label)
	}
}
