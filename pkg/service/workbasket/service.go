/*
 * @Description: WorkBasket 审批工作流服务
 * @Author: 安知鱼
 * @Date: 2026-02-10
 */
package workbasket

import (
	"context"
	"fmt"
	"log"

	"github.com/anzhiyu-c/tariff-app/internal/pkg/event"
	"github.com/anzhiyu-c/tariff-app/pkg/constant"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/repository"
	transaction_service "github.com/anzhiyu-c/tariff-app/pkg/service/transaction"
)

// TransitionEvent 是状态迁移事件的负载，审计监听器消费。
type TransitionEvent struct {
	WorkBasketID string
	From         model.WorkBasketStatus
	To           model.WorkBasketStatus
	Approver     string
}

// Service workbasket 工作流服务接口。
// 状态机之外不存在任何修改 workbasket 状态的路径。
type Service interface {
	// Create 创建一个新的 workbasket（初始状态 editing）
	Create(ctx context.Context, params *model.CreateWorkBasketParams) (*model.WorkBasket, error)
	// Get 按公共 ID 取 workbasket
	Get(ctx context.Context, id string) (*model.WorkBasket, error)

	// Submit 提交审批：editing → awaiting_approval
	Submit(ctx context.Context, id string) (*model.WorkBasket, error)
	// Withdraw 撤回审批：awaiting_approval → editing
	Withdraw(ctx context.Context, id string) (*model.WorkBasket, error)
	// Reject 驳回：awaiting_approval → approval_rejected
	Reject(ctx context.Context, id string, approver string) (*model.WorkBasket, error)
	// Approve 批准：awaiting_approval → ready_for_export，
	// 同时把草稿事务晋升到 revision 并重算当前版本指针
	Approve(ctx context.Context, id string, approver string) (*model.WorkBasket, error)
	// Archive 归档：editing → archived
	Archive(ctx context.Context, id string) (*model.WorkBasket, error)
	// Transition 通用状态迁移（导出管线用：sent / published / export_error）
	Transition(ctx context.Context, id string, target model.WorkBasketStatus) (*model.WorkBasket, error)

	// CurrentTransaction 返回 workbasket 的尾事务作为调用方会话的
	// "当前事务"，还没有事务时开一个新的草稿事务。
	CurrentTransaction(ctx context.Context, id string) (*model.Transaction, error)
}

type workBasketServiceImpl struct {
	wbRepo     repository.WorkBasketRepository
	txRepo     repository.TransactionRepository
	entityRepo repository.TrackedEntityRepository
	txSvc      transaction_service.Service
	txManager  repository.TransactionManager
	eventBus   *event.EventBus
}

// NewWorkBasketService 创建 workbasket 工作流服务。
func NewWorkBasketService(
	wbRepo repository.WorkBasketRepository,
	txRepo repository.TransactionRepository,
	entityRepo repository.TrackedEntityRepository,
	txSvc transaction_service.Service,
	txManager repository.TransactionManager,
	eventBus *event.EventBus,
) Service {
	return &workBasketServiceImpl{
		wbRepo:     wbRepo,
		txRepo:     txRepo,
		entityRepo: entityRepo,
		txSvc:      txSvc,
		txManager:  txManager,
		eventBus:   eventBus,
	}
}

// Create 创建一个新的 workbasket。
func (s *workBasketServiceImpl) Create(ctx context.Context, params *model.CreateWorkBasketParams) (*model.WorkBasket, error) {
	if params.Title == "" {
		return nil, fmt.Errorf("workbasket 标题不能为空")
	}
	if params.Author == "" {
		return nil, fmt.Errorf("workbasket 创建人不能为空")
	}
	return s.wbRepo.Create(ctx, params)
}

// Get 按公共 ID 取 workbasket。
func (s *workBasketServiceImpl) Get(ctx context.Context, id string) (*model.WorkBasket, error) {
	return s.wbRepo.GetByID(ctx, id)
}

// transition 校验状态机后落库，approver 非空时一并记录。
func (s *workBasketServiceImpl) transition(ctx context.Context, id string, target model.WorkBasketStatus, approver string) (*model.WorkBasket, error) {
	wb, err := s.wbRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !wb.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: %s → %s", constant.ErrWorkflowTransition, wb.Status, target)
	}
	updated, err := s.wbRepo.UpdateStatus(ctx, id, target, approver)
	if err != nil {
		return nil, err
	}
	if s.eventBus != nil {
		s.eventBus.Publish(constant.EventWorkBasketTransitioned, TransitionEvent{
			WorkBasketID: id,
			From:         wb.Status,
			To:           target,
			Approver:     approver,
		})
	}
	return updated, nil
}

// Submit 提交审批。
func (s *workBasketServiceImpl) Submit(ctx context.Context, id string) (*model.WorkBasket, error) {
	return s.transition(ctx, id, model.StatusAwaitingApproval, "")
}

// Withdraw 撤回审批，数据原样保留。
func (s *workBasketServiceImpl) Withdraw(ctx context.Context, id string) (*model.WorkBasket, error) {
	return s.transition(ctx, id, model.StatusEditing, "")
}

// Reject 驳回审批，数据原样保留。
func (s *workBasketServiceImpl) Reject(ctx context.Context, id string, approver string) (*model.WorkBasket, error) {
	return s.transition(ctx, id, model.StatusApprovalRejected, approver)
}

// Archive 归档（仅允许从 editing 归档）。
func (s *workBasketServiceImpl) Archive(ctx context.Context, id string) (*model.WorkBasket, error) {
	return s.transition(ctx, id, model.StatusArchived, "")
}

// Transition 通用状态迁移，导出管线据此推进 sent / published / export_error。
func (s *workBasketServiceImpl) Transition(ctx context.Context, id string, target model.WorkBasketStatus) (*model.WorkBasket, error) {
	return s.transition(ctx, id, target, "")
}

// Approve 批准 workbasket：
// 1. 把 workbasket 的草稿事务按原有顺序晋升到 revision；
// 2. 为每个被碰过的版本组重算当前版本指针；
// 3. 状态迁移到 ready_for_export 并记录审批人。
// 状态落在最后：晋升或重算指针失败时 workbasket 保持 awaiting_approval。
func (s *workBasketServiceImpl) Approve(ctx context.Context, id string, approver string) (*model.WorkBasket, error) {
	if approver == "" {
		return nil, fmt.Errorf("审批人不能为空")
	}
	wb, err := s.wbRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !wb.Status.CanTransitionTo(model.StatusReadyForExport) {
		return nil, fmt.Errorf("%w: %s → %s", constant.ErrWorkflowTransition, wb.Status, model.StatusReadyForExport)
	}

	// 晋升草稿事务
	txs, err := s.txRepo.ListByWorkBasket(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("读取 workbasket 事务失败: %w", err)
	}
	var draftIDs []string
	for _, tx := range txs {
		if tx.Partition == model.PartitionDraft {
			draftIDs = append(draftIDs, tx.ID)
		}
	}
	promoted, err := s.txSvc.Promote(ctx, draftIDs, model.PartitionRevision)
	if err != nil {
		return nil, fmt.Errorf("晋升 workbasket 草稿事务失败: %w", err)
	}

	// 重算当前版本指针：以晋升后的尾事务为可见边界，
	// 每个版本组取可见范围内的最后一个版本
	if err := s.recomputeCurrentVersions(ctx, id); err != nil {
		return nil, err
	}

	updated, err := s.transition(ctx, id, model.StatusReadyForExport, approver)
	if err != nil {
		return nil, err
	}

	log.Printf("workbasket %s 已由 %s 批准，晋升事务 %d 条", id, approver, len(promoted))
	return updated, nil
}

// recomputeCurrentVersions 在批准后为被碰过的版本组重算当前版本指针。
func (s *workBasketServiceImpl) recomputeCurrentVersions(ctx context.Context, workbasketID string) error {
	tail, err := s.txRepo.TailByWorkBasket(ctx, workbasketID)
	if err != nil {
		return fmt.Errorf("读取 workbasket 尾事务失败: %w", err)
	}
	if tail == nil {
		return nil
	}
	groupIDs, err := s.entityRepo.GroupsTouchedByWorkBasket(ctx, workbasketID)
	if err != nil {
		return fmt.Errorf("查询 workbasket 碰过的版本组失败: %w", err)
	}

	return s.txManager.Do(ctx, func(repos repository.Repositories) error {
		for _, groupID := range groupIDs {
			versions, err := repos.TrackedEntity.VersionsUpTo(ctx, groupID, tail)
			if err != nil {
				return fmt.Errorf("读取版本组 %s 的版本序列失败: %w", groupID, err)
			}
			if len(versions) == 0 {
				continue
			}
			latest := versions[len(versions)-1]
			pointer := latest.ID
			if latest.UpdateType == model.UpdateTypeDelete {
				pointer = ""
			}
			if err := repos.TrackedEntity.SetCurrentVersion(ctx, groupID, pointer); err != nil {
				return fmt.Errorf("更新版本组 %s 的当前版本指针失败: %w", groupID, err)
			}
		}
		return nil
	})
}

// CurrentTransaction 返回 workbasket 的尾事务，没有时开一个草稿事务。
func (s *workBasketServiceImpl) CurrentTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	wb, err := s.wbRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tail, err := s.txRepo.TailByWorkBasket(ctx, id)
	if err != nil {
		return nil, err
	}
	if tail != nil {
		return tail, nil
	}
	return s.txSvc.Begin(ctx, wb, false)
}
