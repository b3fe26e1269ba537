package workbasket

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/anzhiyu-c/tariff-app/pkg/constant"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/repository"
)

// fakeWBRepo 内存 workbasket 仓储
type fakeWBRepo struct {
	items map[string]*model.WorkBasket
	seq   int
}

func newFakeWBRepo() *fakeWBRepo {
	return &fakeWBRepo{items: make(map[string]*model.WorkBasket)}
}

func (r *fakeWBRepo) Create(ctx context.Context, params *model.CreateWorkBasketParams) (*model.WorkBasket, error) {
	r.seq++
	wb := &model.WorkBasket{
		ID:     fmt.Sprintf("wb-%d", r.seq),
		Title:  params.Title,
		Reason: params.Reason,
		Author: params.Author,
		Status: model.StatusEditing,
	}
	r.items[wb.ID] = wb
	return wb, nil
}

func (r *fakeWBRepo) GetByID(ctx context.Context, id string) (*model.WorkBasket, error) {
	wb, ok := r.items[id]
	if !ok {
		return nil, constant.ErrNotFound
	}
	copied := *wb
	return &copied, nil
}

func (r *fakeWBRepo) UpdateStatus(ctx context.Context, id string, status model.WorkBasketStatus, approver string) (*model.WorkBasket, error) {
	wb, ok := r.items[id]
	if !ok {
		return nil, constant.ErrNotFound
	}
	wb.Status = status
	if approver != "" {
		wb.Approver = approver
	}
	copied := *wb
	return &copied, nil
}

func (r *fakeWBRepo) ListByStatus(ctx context.Context, status model.WorkBasketStatus) ([]*model.WorkBasket, error) {
	var out []*model.WorkBasket
	for _, wb := range r.items {
		if wb.Status == status {
			out = append(out, wb)
		}
	}
	return out, nil
}

func (r *fakeWBRepo) ListStale(ctx context.Context, status model.WorkBasketStatus, before time.Time) ([]*model.WorkBasket, error) {
	return nil, nil
}

// fakeTxRepo 内存事务仓储，只实现工作流服务用到的方法
type fakeTxRepo struct {
	items []*model.Transaction
}

func (r *fakeTxRepo) Create(ctx context.Context, workbasketID string, partition model.Partition) (*model.Transaction, error) {
	tx := &model.Transaction{
		ID:           fmt.Sprintf("tx-%d", len(r.items)+1),
		Partition:    partition,
		Order:        len(r.items) + 1,
		WorkBasketID: workbasketID,
	}
	r.items = append(r.items, tx)
	return tx, nil
}

func (r *fakeTxRepo) GetByID(ctx context.Context, id string) (*model.Transaction, error) {
	for _, tx := range r.items {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, constant.ErrNotFound
}

func (r *fakeTxRepo) ListByIDs(ctx context.Context, ids []string) ([]*model.Transaction, error) {
	var out []*model.Transaction
	for _, tx := range r.items {
		for _, id := range ids {
			if tx.ID == id {
				out = append(out, tx)
			}
		}
	}
	return out, nil
}

func (r *fakeTxRepo) ListByWorkBasket(ctx context.Context, workbasketID string) ([]*model.Transaction, error) {
	var out []*model.Transaction
	for _, tx := range r.items {
		if tx.WorkBasketID == workbasketID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeTxRepo) TailByWorkBasket(ctx context.Context, workbasketID string) (*model.Transaction, error) {
	var tail *model.Transaction
	for _, tx := range r.items {
		if tx.WorkBasketID != workbasketID {
			continue
		}
		if tail == nil || tail.OrderingKey().Before(tx.OrderingKey()) {
			tail = tx
		}
	}
	return tail, nil
}

func (r *fakeTxRepo) MovePartition(ctx context.Context, ids []string, target model.Partition) ([]*model.Transaction, error) {
	moved, _ := r.ListByIDs(ctx, ids)
	for _, tx := range moved {
		tx.Partition = target
	}
	return moved, nil
}

func (r *fakeTxRepo) CountEntities(ctx context.Context, transactionID string) (int, error) {
	return 0, nil
}

// fakeEntityRepo 只实现批准流程触及的方法，其余桩掉
type fakeEntityRepo struct {
	repository.TrackedEntityRepository

	touchedGroups map[string][]string                 // workbasketID → groupIDs
	versions      map[string][]*model.TrackedEntity   // groupID → 版本序列
	pointers      map[string]string                   // groupID → 当前版本指针
}

func newFakeEntityRepo() *fakeEntityRepo {
	return &fakeEntityRepo{
		touchedGroups: make(map[string][]string),
		versions:      make(map[string][]*model.TrackedEntity),
		pointers:      make(map[string]string),
	}
}

func (r *fakeEntityRepo) GroupsTouchedByWorkBasket(ctx context.Context, workbasketID string) ([]string, error) {
	return r.touchedGroups[workbasketID], nil
}

func (r *fakeEntityRepo) VersionsUpTo(ctx context.Context, groupID string, tx *model.Transaction) ([]*model.TrackedEntity, error) {
	return r.versions[groupID], nil
}

func (r *fakeEntityRepo) SetCurrentVersion(ctx context.Context, groupID, entityID string) error {
	r.pointers[groupID] = entityID
	return nil
}

// fakeTxSvc 事务序列服务的桩，记录晋升调用
type fakeTxSvc struct {
	txRepo     *fakeTxRepo
	promoted   []string
	promoteErr error
}

func (s *fakeTxSvc) Begin(ctx context.Context, wb *model.WorkBasket, seeding bool) (*model.Transaction, error) {
	partition := model.PartitionDraft
	if seeding {
		partition = model.PartitionSeedFile
	}
	return s.txRepo.Create(ctx, wb.ID, partition)
}

func (s *fakeTxSvc) Promote(ctx context.Context, txIDs []string, target model.Partition) ([]*model.Transaction, error) {
	if s.promoteErr != nil {
		return nil, s.promoteErr
	}
	if target != model.PartitionRevision {
		return nil, constant.ErrPartitionTransition
	}
	s.promoted = append(s.promoted, txIDs...)
	return s.txRepo.MovePartition(ctx, txIDs, target)
}

func (s *fakeTxSvc) RevertCurrentVersions(ctx context.Context, wb *model.WorkBasket) error {
	return nil
}

// fakeTxManager 直接在当前 goroutine 里执行，无真实事务边界
type fakeTxManager struct {
	repos repository.Repositories
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(repos repository.Repositories) error) error {
	return fn(m.repos)
}

// newTestService 组装一套基于内存仓储的工作流服务
func newTestService() (Service, *fakeWBRepo, *fakeTxRepo, *fakeEntityRepo, *fakeTxSvc) {
	wbRepo := newFakeWBRepo()
	txRepo := &fakeTxRepo{}
	entityRepo := newFakeEntityRepo()
	txSvc := &fakeTxSvc{txRepo: txRepo}
	txManager := &fakeTxManager{repos: repository.Repositories{
		TrackedEntity: entityRepo,
		Transaction:   txRepo,
		WorkBasket:    wbRepo,
	}}
	svc := NewWorkBasketService(wbRepo, txRepo, entityRepo, txSvc, txManager, nil)
	return svc, wbRepo, txRepo, entityRepo, txSvc
}

func TestCreateValidation(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name    string
		params  *model.CreateWorkBasketParams
		wantErr bool
	}{
		{name: "正常创建", params: &model.CreateWorkBasketParams{Title: "三月关税调整", Author: "alice"}},
		{name: "缺少标题", params: &model.CreateWorkBasketParams{Author: "alice"}, wantErr: true},
		{name: "缺少创建人", params: &model.CreateWorkBasketParams{Title: "无主"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb, err := svc.Create(ctx, tt.params)
			if tt.wantErr {
				if err == nil {
					t.Error("期望报错")
				}
				return
			}
			if err != nil {
				t.Fatalf("Create 失败: %v", err)
			}
			if wb.Status != model.StatusEditing {
				t.Errorf("新建 workbasket 状态 = %s, 期望 editing", wb.Status)
			}
		})
	}
}

func TestWorkflowTransitions(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	wb, err := svc.Create(ctx, &model.CreateWorkBasketParams{Title: "流程测试", Author: "alice"})
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	t.Run("编辑中不可直接发送", func(t *testing.T) {
		_, err := svc.Transition(ctx, wb.ID, model.StatusSent)
		if !errors.Is(err, constant.ErrWorkflowTransition) {
			t.Errorf("err = %v, 期望 ErrWorkflowTransition", err)
		}
	})

	t.Run("提交后撤回再提交", func(t *testing.T) {
		if _, err := svc.Submit(ctx, wb.ID); err != nil {
			t.Fatalf("Submit 失败: %v", err)
		}
		if _, err := svc.Withdraw(ctx, wb.ID); err != nil {
			t.Fatalf("Withdraw 失败: %v", err)
		}
		got, err := svc.Submit(ctx, wb.ID)
		if err != nil {
			t.Fatalf("再次 Submit 失败: %v", err)
		}
		if got.Status != model.StatusAwaitingApproval {
			t.Errorf("状态 = %s, 期望 awaiting_approval", got.Status)
		}
	})

	t.Run("驳回后回到编辑中", func(t *testing.T) {
		rejected, err := svc.Reject(ctx, wb.ID, "bob")
		if err != nil {
			t.Fatalf("Reject 失败: %v", err)
		}
		if rejected.Status != model.StatusApprovalRejected {
			t.Errorf("状态 = %s, 期望 approval_rejected", rejected.Status)
		}
		if rejected.Approver != "bob" {
			t.Errorf("审批人 = %s, 期望 bob", rejected.Approver)
		}
		// 驳回态不可直接再提交，只能先回到编辑中
		if _, err := svc.Submit(ctx, wb.ID); err == nil {
			t.Error("驳回态不可直接提交")
		}
		got, err := svc.Withdraw(ctx, wb.ID)
		if err != nil {
			t.Fatalf("回到编辑中失败: %v", err)
		}
		if got.Status != model.StatusEditing {
			t.Errorf("状态 = %s, 期望 editing", got.Status)
		}
	})

	t.Run("仅编辑中可归档", func(t *testing.T) {
		other, _ := svc.Create(ctx, &model.CreateWorkBasketParams{Title: "待归档", Author: "alice"})
		if _, err := svc.Archive(ctx, other.ID); err != nil {
			t.Fatalf("Archive 失败: %v", err)
		}
		if _, err := svc.Submit(ctx, other.ID); err == nil {
			t.Error("归档后不应允许任何迁移")
		}
	})

	t.Run("不存在的 workbasket", func(t *testing.T) {
		if _, err := svc.Submit(ctx, "wb-missing"); err == nil {
			t.Error("不存在的 workbasket 应报错")
		}
	})
}

func TestApprovePromotesDraftsAndRecomputesPointers(t *testing.T) {
	svc, wbRepo, txRepo, entityRepo, txSvc := newTestService()
	ctx := context.Background()

	wb, _ := svc.Create(ctx, &model.CreateWorkBasketParams{Title: "批准测试", Author: "alice"})

	// 两个草稿事务；g1 以 UPDATE 收尾，g2 以 DELETE 收尾
	tx1, _ := txRepo.Create(ctx, wb.ID, model.PartitionDraft)
	tx2, _ := txRepo.Create(ctx, wb.ID, model.PartitionDraft)
	entityRepo.touchedGroups[wb.ID] = []string{"g1", "g2"}
	entityRepo.versions["g1"] = []*model.TrackedEntity{
		{ID: "e1", UpdateType: model.UpdateTypeCreate},
		{ID: "e2", UpdateType: model.UpdateTypeUpdate},
	}
	entityRepo.versions["g2"] = []*model.TrackedEntity{
		{ID: "e3", UpdateType: model.UpdateTypeCreate},
		{ID: "e4", UpdateType: model.UpdateTypeDelete},
	}

	if _, err := svc.Submit(ctx, wb.ID); err != nil {
		t.Fatalf("Submit 失败: %v", err)
	}
	got, err := svc.Approve(ctx, wb.ID, "bob")
	if err != nil {
		t.Fatalf("Approve 失败: %v", err)
	}

	if got.Status != model.StatusReadyForExport {
		t.Errorf("状态 = %s, 期望 ready_for_export", got.Status)
	}
	if got.Approver != "bob" {
		t.Errorf("审批人 = %s, 期望 bob", got.Approver)
	}
	if len(txSvc.promoted) != 2 {
		t.Errorf("晋升了 %d 条事务, 期望 2", len(txSvc.promoted))
	}
	for _, tx := range []*model.Transaction{tx1, tx2} {
		if tx.Partition != model.PartitionRevision {
			t.Errorf("事务 %s 分区 = %s, 期望 revision", tx.ID, tx.Partition)
		}
	}
	if entityRepo.pointers["g1"] != "e2" {
		t.Errorf("g1 当前版本指针 = %q, 期望 e2", entityRepo.pointers["g1"])
	}
	if entityRepo.pointers["g2"] != "" {
		t.Errorf("以 DELETE 收尾的版本组指针应清空, got %q", entityRepo.pointers["g2"])
	}

	t.Run("编辑中不可批准", func(t *testing.T) {
		svc, _, txRepo, _, txSvc := newTestService()
		wb, _ := svc.Create(ctx, &model.CreateWorkBasketParams{Title: "未提交", Author: "alice"})
		tx, _ := txRepo.Create(ctx, wb.ID, model.PartitionDraft)

		if _, err := svc.Approve(ctx, wb.ID, "bob"); !errors.Is(err, constant.ErrWorkflowTransition) {
			t.Errorf("err = %v, 期望 ErrWorkflowTransition", err)
		}
		if len(txSvc.promoted) != 0 {
			t.Errorf("状态校验失败时不应晋升事务, 晋升了 %d 条", len(txSvc.promoted))
		}
		if tx.Partition != model.PartitionDraft {
			t.Errorf("事务分区 = %s, 期望保持 draft", tx.Partition)
		}
	})

	t.Run("晋升失败时状态保持待审批", func(t *testing.T) {
		svc, wbRepo, txRepo, entityRepo, txSvc := newTestService()
		wb, _ := svc.Create(ctx, &model.CreateWorkBasketParams{Title: "晋升失败", Author: "alice"})
		tx, _ := txRepo.Create(ctx, wb.ID, model.PartitionDraft)
		entityRepo.touchedGroups[wb.ID] = []string{"g1"}
		entityRepo.versions["g1"] = []*model.TrackedEntity{
			{ID: "e1", UpdateType: model.UpdateTypeCreate},
		}
		if _, err := svc.Submit(ctx, wb.ID); err != nil {
			t.Fatalf("Submit 失败: %v", err)
		}

		txSvc.promoteErr = errors.New("数据库连接中断")
		if _, err := svc.Approve(ctx, wb.ID, "bob"); err == nil {
			t.Fatal("晋升失败时 Approve 应报错")
		}
		cur, _ := wbRepo.GetByID(ctx, wb.ID)
		if cur.Status != model.StatusAwaitingApproval {
			t.Errorf("状态 = %s, 期望保持 awaiting_approval", cur.Status)
		}
		if cur.Approver != "" {
			t.Errorf("审批人 = %q, 期望为空", cur.Approver)
		}
		if tx.Partition != model.PartitionDraft {
			t.Errorf("事务分区 = %s, 期望保持 draft", tx.Partition)
		}
		if entityRepo.pointers["g1"] != "" {
			t.Errorf("指针 = %q, 期望未被改写", entityRepo.pointers["g1"])
		}

		// 故障恢复后可重新批准
		txSvc.promoteErr = nil
		got, err := svc.Approve(ctx, wb.ID, "bob")
		if err != nil {
			t.Fatalf("恢复后 Approve 失败: %v", err)
		}
		if got.Status != model.StatusReadyForExport {
			t.Errorf("状态 = %s, 期望 ready_for_export", got.Status)
		}
	})

	t.Run("审批人不能为空", func(t *testing.T) {
		other, _ := svc.Create(ctx, &model.CreateWorkBasketParams{Title: "缺审批人", Author: "alice"})
		svc.Submit(ctx, other.ID)
		if _, err := svc.Approve(ctx, other.ID, ""); err == nil {
			t.Error("空审批人应报错")
		}
		// 校验失败时状态不得改变
		cur, _ := wbRepo.GetByID(ctx, other.ID)
		if cur.Status != model.StatusAwaitingApproval {
			t.Errorf("状态 = %s, 期望保持 awaiting_approval", cur.Status)
		}
	})
}

func TestCurrentTransaction(t *testing.T) {
	svc, _, txRepo, _, _ := newTestService()
	ctx := context.Background()

	wb, _ := svc.Create(ctx, &model.CreateWorkBasketParams{Title: "事务测试", Author: "alice"})

	t.Run("没有事务时开草稿事务", func(t *testing.T) {
		tx, err := svc.CurrentTransaction(ctx, wb.ID)
		if err != nil {
			t.Fatalf("CurrentTransaction 失败: %v", err)
		}
		if tx.Partition != model.PartitionDraft {
			t.Errorf("新开事务分区 = %s, 期望 draft", tx.Partition)
		}
	})

	t.Run("已有事务时返回尾事务", func(t *testing.T) {
		second, _ := txRepo.Create(ctx, wb.ID, model.PartitionDraft)
		tx, err := svc.CurrentTransaction(ctx, wb.ID)
		if err != nil {
			t.Fatalf("CurrentTransaction 失败: %v", err)
		}
		if tx.ID != second.ID {
			t.Errorf("返回事务 = %s, 期望尾事务 %s", tx.ID, second.ID)
		}
	})
}
