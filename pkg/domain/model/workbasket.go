/*
 * @Description: WorkBasket 领域模型与审批状态机
 * @Author: 安知鱼
 * @Date: 2026-02-10 12:09:55
 */
package model

import "time"

// WorkBasketStatus 表示 workbasket 在审批工作流中的状态
type WorkBasketStatus string

const (
	// StatusEditing 编辑中
	StatusEditing WorkBasketStatus = "editing"
	// StatusAwaitingApproval 已提交，等待审批
	StatusAwaitingApproval WorkBasketStatus = "awaiting_approval"
	// StatusApprovalRejected 审批被驳回
	StatusApprovalRejected WorkBasketStatus = "approval_rejected"
	// StatusReadyForExport 审批通过，等待导出
	StatusReadyForExport WorkBasketStatus = "ready_for_export"
	// StatusSent envelope 已发送至下游
	StatusSent WorkBasketStatus = "sent"
	// StatusPublished 下游确认发布
	StatusPublished WorkBasketStatus = "published"
	// StatusExportError 下游返回错误
	StatusExportError WorkBasketStatus = "export_error"
	// StatusArchived 已归档（仅允许从编辑中归档）
	StatusArchived WorkBasketStatus = "archived"
)

// workflowTransitions 定义状态机允许的全部迁移
var workflowTransitions = map[WorkBasketStatus][]WorkBasketStatus{
	StatusEditing:          {StatusAwaitingApproval, StatusArchived},
	StatusAwaitingApproval: {StatusReadyForExport, StatusApprovalRejected, StatusEditing},
	StatusApprovalRejected: {StatusEditing},
	StatusReadyForExport:   {StatusSent},
	StatusSent:             {StatusPublished, StatusExportError},
	StatusExportError:      {StatusEditing},
}

// CanTransitionTo 判断状态机是否允许从当前状态迁移到 target。
func (s WorkBasketStatus) CanTransitionTo(target WorkBasketStatus) bool {
	for _, allowed := range workflowTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Approved 判断该状态是否属于"已批准"状态集合。
// 只有已批准 workbasket 中的事务才会影响版本组的当前版本指针。
func (s WorkBasketStatus) Approved() bool {
	switch s {
	case StatusReadyForExport, StatusSent, StatusPublished:
		return true
	}
	return false
}

// ApprovedStatuses 返回全部已批准状态。
func ApprovedStatuses() []WorkBasketStatus {
	return []WorkBasketStatus{StatusReadyForExport, StatusSent, StatusPublished}
}

// WorkBasket 把将于同一时刻生效的一组关税变更聚合在一起。
// 一旦拥有已发布的事务即不再删除。
type WorkBasket struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Reason    string           `json:"reason"`
	Status    WorkBasketStatus `json:"status"`
	Author    string           `json:"author"`
	Approver  string           `json:"approver,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// CreateWorkBasketParams 创建 workbasket 的参数
type CreateWorkBasketParams struct {
	Title  string
	Reason string
	Author string
}
