package model

import "testing"

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name     string
		from     WorkBasketStatus
		to       WorkBasketStatus
		expected bool
	}{
		{name: "编辑中可提交审批", from: StatusEditing, to: StatusAwaitingApproval, expected: true},
		{name: "编辑中可归档", from: StatusEditing, to: StatusArchived, expected: true},
		{name: "编辑中不可直接发送", from: StatusEditing, to: StatusSent, expected: false},
		{name: "待审批可通过", from: StatusAwaitingApproval, to: StatusReadyForExport, expected: true},
		{name: "待审批可驳回", from: StatusAwaitingApproval, to: StatusApprovalRejected, expected: true},
		{name: "待审批可撤回至编辑中", from: StatusAwaitingApproval, to: StatusEditing, expected: true},
		{name: "驳回后只能回到编辑中", from: StatusApprovalRejected, to: StatusEditing, expected: true},
		{name: "驳回后不可再次提交", from: StatusApprovalRejected, to: StatusAwaitingApproval, expected: false},
		{name: "待导出可发送", from: StatusReadyForExport, to: StatusSent, expected: true},
		{name: "已发送可确认发布", from: StatusSent, to: StatusPublished, expected: true},
		{name: "已发送可标记导出失败", from: StatusSent, to: StatusExportError, expected: true},
		{name: "导出失败可回到编辑中", from: StatusExportError, to: StatusEditing, expected: true},
		{name: "已发布为终态", from: StatusPublished, to: StatusEditing, expected: false},
		{name: "已归档为终态", from: StatusArchived, to: StatusEditing, expected: false},
		{name: "非编辑中状态不可归档", from: StatusAwaitingApproval, to: StatusArchived, expected: false},
		{name: "不可原地迁移", from: StatusEditing, to: StatusEditing, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.expected {
				t.Errorf("%s → %s = %v, 期望 %v", tt.from, tt.to, got, tt.expected)
			}
		})
	}
}

func TestStatusApproved(t *testing.T) {
	approved := map[WorkBasketStatus]bool{
		StatusReadyForExport: true,
		StatusSent:           true,
		StatusPublished:      true,
	}
	all := []WorkBasketStatus{
		StatusEditing, StatusAwaitingApproval, StatusApprovalRejected,
		StatusReadyForExport, StatusSent, StatusPublished,
		StatusExportError, StatusArchived,
	}
	for _, s := range all {
		if got := s.Approved(); got != approved[s] {
			t.Errorf("%s.Approved() = %v, 期望 %v", s, got, approved[s])
		}
	}
	if len(ApprovedStatuses()) != 3 {
		t.Errorf("ApprovedStatuses() 应包含 3 个状态, got %d", len(ApprovedStatuses()))
	}
}
