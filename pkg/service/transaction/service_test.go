package transaction

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/anzhiyu-c/tariff-app/pkg/constant"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/repository"
)

// fakeTxRepo 内存事务仓储，revision 序号从既有最大值续排
type fakeTxRepo struct {
	repository.TransactionRepository

	items []*model.Transaction
}

func (r *fakeTxRepo) Create(ctx context.Context, workbasketID string, partition model.Partition) (*model.Transaction, error) {
	tx := &model.Transaction{
		ID:           fmt.Sprintf("tx-%d", len(r.items)+1),
		Partition:    partition,
		Order:        r.maxOrder(partition) + 1,
		WorkBasketID: workbasketID,
	}
	r.items = append(r.items, tx)
	return tx, nil
}

func (r *fakeTxRepo) maxOrder(partition model.Partition) int {
	max := 0
	for _, tx := range r.items {
		if tx.Partition == partition && tx.Order > max {
			max = tx.Order
		}
	}
	return max
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

func (r *fakeTxRepo) MovePartition(ctx context.Context, ids []string, target model.Partition) ([]*model.Transaction, error) {
	moved, _ := r.ListByIDs(ctx, ids)
	next := r.maxOrder(target)
	for _, tx := range moved {
		next++
		tx.Partition = target
		tx.Order = next
	}
	return moved, nil
}

// fakeEntityRepo 只实现回退流程触及的方法
type fakeEntityRepo struct {
	repository.TrackedEntityRepository

	touchedGroups map[string][]string
	outside       map[string]*model.TrackedEntity
	pointers      map[string]string
}

func (r *fakeEntityRepo) GroupsTouchedByWorkBasket(ctx context.Context, workbasketID string) ([]string, error) {
	return r.touchedGroups[workbasketID], nil
}

func (r *fakeEntityRepo) LatestApprovedOutside(ctx context.Context, groupID, workbasketID string) (*model.TrackedEntity, error) {
	return r.outside[groupID], nil
}

func (r *fakeEntityRepo) SetCurrentVersion(ctx context.Context, groupID, entityID string) error {
	r.pointers[groupID] = entityID
	return nil
}

type fakeTxManager struct {
	repos repository.Repositories
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(repos repository.Repositories) error) error {
	return fn(m.repos)
}

func newTestService() (Service, *fakeTxRepo, *fakeEntityRepo) {
	txRepo := &fakeTxRepo{}
	entityRepo := &fakeEntityRepo{
		touchedGroups: make(map[string][]string),
		outside:       make(map[string]*model.TrackedEntity),
		pointers:      make(map[string]string),
	}
	txManager := &fakeTxManager{repos: repository.Repositories{
		Transaction:   txRepo,
		TrackedEntity: entityRepo,
	}}
	return NewTransactionService(txRepo, entityRepo, txManager), txRepo, entityRepo
}

func TestBegin(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	wb := &model.WorkBasket{ID: "wb-1"}

	t.Run("常规事务进 draft 分区", func(t *testing.T) {
		tx, err := svc.Begin(ctx, wb, false)
		if err != nil {
			t.Fatalf("Begin 失败: %v", err)
		}
		if tx.Partition != model.PartitionDraft {
			t.Errorf("分区 = %s, 期望 draft", tx.Partition)
		}
	})

	t.Run("批量导入事务进 seed_file 分区", func(t *testing.T) {
		tx, err := svc.Begin(ctx, wb, true)
		if err != nil {
			t.Fatalf("Begin 失败: %v", err)
		}
		if tx.Partition != model.PartitionSeedFile {
			t.Errorf("分区 = %s, 期望 seed_file", tx.Partition)
		}
	})

	t.Run("同分区序号严格递增", func(t *testing.T) {
		first, _ := svc.Begin(ctx, wb, false)
		second, _ := svc.Begin(ctx, wb, false)
		if second.Order <= first.Order {
			t.Errorf("序号未递增: %d → %d", first.Order, second.Order)
		}
	})

	t.Run("workbasket 不能为空", func(t *testing.T) {
		if _, err := svc.Begin(ctx, nil, false); err == nil {
			t.Error("nil workbasket 应报错")
		}
	})
}

func TestPromote(t *testing.T) {
	ctx := context.Background()

	t.Run("晋升保持相对顺序并续排序号", func(t *testing.T) {
		svc, txRepo, _ := newTestService()
		// revision 里已有一条事务，序号占到 1
		txRepo.Create(ctx, "wb-old", model.PartitionRevision)
		d1, _ := txRepo.Create(ctx, "wb-1", model.PartitionDraft)
		d2, _ := txRepo.Create(ctx, "wb-1", model.PartitionDraft)

		moved, err := svc.Promote(ctx, []string{d1.ID, d2.ID}, model.PartitionRevision)
		if err != nil {
			t.Fatalf("Promote 失败: %v", err)
		}
		if len(moved) != 2 {
			t.Fatalf("晋升 %d 条, 期望 2", len(moved))
		}
		if moved[0].Partition != model.PartitionRevision || moved[1].Partition != model.PartitionRevision {
			t.Error("晋升后分区应为 revision")
		}
		if moved[0].Order != 2 || moved[1].Order != 3 {
			t.Errorf("序号 = %d, %d, 期望紧接既有最大值 (2, 3)", moved[0].Order, moved[1].Order)
		}
	})

	t.Run("目标只能是 revision", func(t *testing.T) {
		svc, txRepo, _ := newTestService()
		d, _ := txRepo.Create(ctx, "wb-1", model.PartitionDraft)
		if _, err := svc.Promote(ctx, []string{d.ID}, model.PartitionSeedFile); !errors.Is(err, constant.ErrPartitionTransition) {
			t.Errorf("err = %v, 期望 ErrPartitionTransition", err)
		}
	})

	t.Run("非 draft 事务拒绝晋升", func(t *testing.T) {
		svc, txRepo, _ := newTestService()
		rev, _ := txRepo.Create(ctx, "wb-1", model.PartitionRevision)
		if _, err := svc.Promote(ctx, []string{rev.ID}, model.PartitionRevision); !errors.Is(err, constant.ErrPartitionTransition) {
			t.Errorf("err = %v, 期望 ErrPartitionTransition", err)
		}
		if rev.Partition != model.PartitionRevision || rev.Order != 1 {
			t.Error("校验失败时事务不应被改动")
		}
	})

	t.Run("含不存在的事务时整体拒绝", func(t *testing.T) {
		svc, txRepo, _ := newTestService()
		d, _ := txRepo.Create(ctx, "wb-1", model.PartitionDraft)
		if _, err := svc.Promote(ctx, []string{d.ID, "tx-missing"}, model.PartitionRevision); !errors.Is(err, constant.ErrNotFound) {
			t.Errorf("err = %v, 期望 ErrNotFound", err)
		}
		if d.Partition != model.PartitionDraft {
			t.Error("整体拒绝时不应有事务被迁移")
		}
	})

	t.Run("空输入返回空切片", func(t *testing.T) {
		svc, _, _ := newTestService()
		moved, err := svc.Promote(ctx, nil, model.PartitionRevision)
		if err != nil {
			t.Fatalf("Promote 失败: %v", err)
		}
		if len(moved) != 0 {
			t.Errorf("空输入应返回空切片, got %v", moved)
		}
	})
}

func TestRevertCurrentVersions(t *testing.T) {
	ctx := context.Background()
	wb := &model.WorkBasket{ID: "wb-1"}

	t.Run("回退到外部最新批准版本", func(t *testing.T) {
		svc, _, entityRepo := newTestService()
		entityRepo.touchedGroups["wb-1"] = []string{"g1", "g2", "g3"}
		entityRepo.outside["g1"] = &model.TrackedEntity{ID: "e-old", UpdateType: model.UpdateTypeUpdate}
		entityRepo.outside["g2"] = &model.TrackedEntity{ID: "e-del", UpdateType: model.UpdateTypeDelete}
		// g3 没有外部批准版本

		if err := svc.RevertCurrentVersions(ctx, wb); err != nil {
			t.Fatalf("RevertCurrentVersions 失败: %v", err)
		}
		if entityRepo.pointers["g1"] != "e-old" {
			t.Errorf("g1 指针 = %q, 期望 e-old", entityRepo.pointers["g1"])
		}
		if entityRepo.pointers["g2"] != "" {
			t.Errorf("外部版本为 DELETE 时指针应清空, got %q", entityRepo.pointers["g2"])
		}
		if entityRepo.pointers["g3"] != "" {
			t.Errorf("无外部版本时指针应清空, got %q", entityRepo.pointers["g3"])
		}
	})

	t.Run("未碰过任何版本组时不做任何事", func(t *testing.T) {
		svc, _, entityRepo := newTestService()
		if err := svc.RevertCurrentVersions(ctx, wb); err != nil {
			t.Fatalf("RevertCurrentVersions 失败: %v", err)
		}
		if len(entityRepo.pointers) != 0 {
			t.Errorf("不应有指针被改动, got %v", entityRepo.pointers)
		}
	})

	t.Run("workbasket 不能为空", func(t *testing.T) {
		svc, _, _ := newTestService()
		if err := svc.RevertCurrentVersions(ctx, nil); err == nil {
			t.Error("nil workbasket 应报错")
		}
	})
}
