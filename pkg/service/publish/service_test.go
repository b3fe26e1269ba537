package publish

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/anzhiyu-c/tariff-app/internal/infra/storage"
	"github.com/anzhiyu-c/tariff-app/pkg/constant"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/repository"
	envelope_service "github.com/anzhiyu-c/tariff-app/pkg/service/envelope"
	"github.com/anzhiyu-c/tariff-app/pkg/service/utility"
	workbasket_service "github.com/anzhiyu-c/tariff-app/pkg/service/workbasket"
)

// fakeWBSvc 只维护状态机推进，记录发生过的迁移
type fakeWBSvc struct {
	workbasket_service.Service

	wb          *model.WorkBasket
	transitions []model.WorkBasketStatus
}

func (s *fakeWBSvc) Get(ctx context.Context, id string) (*model.WorkBasket, error) {
	if s.wb == nil || s.wb.ID != id {
		return nil, constant.ErrNotFound
	}
	copied := *s.wb
	return &copied, nil
}

func (s *fakeWBSvc) Transition(ctx context.Context, id string, target model.WorkBasketStatus) (*model.WorkBasket, error) {
	if !s.wb.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: %s → %s", constant.ErrWorkflowTransition, s.wb.Status, target)
	}
	s.wb.Status = target
	s.transitions = append(s.transitions, target)
	copied := *s.wb
	return &copied, nil
}

// fakeTxRepo 事务按 workbasket 分桶，版本行数量取自实体桶
type fakeTxRepo struct {
	repository.TransactionRepository

	txs      []*model.Transaction
	entities map[string][]*model.TrackedEntity
}

func (r *fakeTxRepo) ListByWorkBasket(ctx context.Context, workbasketID string) ([]*model.Transaction, error) {
	var out []*model.Transaction
	for _, tx := range r.txs {
		if tx.WorkBasketID == workbasketID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeTxRepo) CountEntities(ctx context.Context, transactionID string) (int, error) {
	return len(r.entities[transactionID]), nil
}

// fakeEntityRepo 只实现导出流用到的按事务取行
type fakeEntityRepo struct {
	repository.TrackedEntityRepository

	entities map[string][]*model.TrackedEntity
}

func (r *fakeEntityRepo) ListForTransaction(ctx context.Context, transactionID string) ([]*model.TrackedEntity, error) {
	return r.entities[transactionID], nil
}

// fakeEnvRepo 内存 envelope 档案
type fakeEnvRepo struct {
	repository.EnvelopeRepository

	latest   *model.Envelope
	archived []*model.Envelope
}

func (r *fakeEnvRepo) Create(ctx context.Context, envelopeID, xmlFile string) (*model.Envelope, error) {
	env := &model.Envelope{
		ID:         fmt.Sprintf("env-%d", len(r.archived)+1),
		EnvelopeID: envelopeID,
		XMLFile:    xmlFile,
	}
	r.archived = append(r.archived, env)
	return env, nil
}

func (r *fakeEnvRepo) LatestForYear(ctx context.Context, yy string) (*model.Envelope, error) {
	return r.latest, nil
}

// testFixture 组装一套指向临时目录的发布服务
type testFixture struct {
	svc      Service
	wbSvc    *fakeWBSvc
	envRepo  *fakeEnvRepo
	cacheSvc utility.CacheService
	dir      string
}

func newFixture(t *testing.T, status model.WorkBasketStatus, entityCounts []int) *testFixture {
	t.Helper()
	dir := t.TempDir()
	sink, err := storage.NewLocalSink(dir)
	if err != nil {
		t.Fatalf("创建本地落盘失败: %v", err)
	}

	wbSvc := &fakeWBSvc{wb: &model.WorkBasket{ID: "wb-1", Title: "导出测试", Status: status}}
	entities := make(map[string][]*model.TrackedEntity)
	var txs []*model.Transaction
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, n := range entityCounts {
		tx := &model.Transaction{
			ID:           fmt.Sprintf("tx-%d", i+1),
			Partition:    model.PartitionRevision,
			Order:        i + 1,
			WorkBasketID: "wb-1",
		}
		txs = append(txs, tx)
		for j := 0; j < n; j++ {
			entities[tx.ID] = append(entities[tx.ID], &model.TrackedEntity{
				Kind:          "footnote",
				TypeCode:      "TN",
				Code:          fmt.Sprintf("%d%02d", i+1, j+1),
				UpdateType:    model.UpdateTypeCreate,
				ValidityStart: start,
			})
		}
	}

	envRepo := &fakeEnvRepo{}
	cacheSvc := utility.NewMemoryCacheService()
	svc := NewPublishService(
		wbSvc,
		&fakeTxRepo{txs: txs, entities: entities},
		&fakeEntityRepo{entities: entities},
		envRepo,
		sink,
		cacheSvc,
		nil,
		Options{},
	)
	return &testFixture{svc: svc, wbSvc: wbSvc, envRepo: envRepo, cacheSvc: cacheSvc, dir: dir}
}

func TestPublish(t *testing.T) {
	ctx := context.Background()
	yy := time.Now().Format("06")

	t.Run("渲染校验归档并推进到 sent", func(t *testing.T) {
		f := newFixture(t, model.StatusReadyForExport, []int{1, 2})

		result, err := f.svc.Publish(ctx, "wb-1")
		if err != nil {
			t.Fatalf("Publish 失败: %v", err)
		}
		if result.WorkBasketID != "wb-1" {
			t.Errorf("WorkBasketID = %s, 期望 wb-1", result.WorkBasketID)
		}
		if len(result.Envelopes) != 1 {
			t.Fatalf("产出 %d 个 envelope, 期望 1", len(result.Envelopes))
		}
		if len(result.Oversize) != 0 {
			t.Errorf("不应有超限 envelope, got %v", result.Oversize)
		}

		wantID := yy + "0001"
		if result.Envelopes[0].EnvelopeID != wantID {
			t.Errorf("EnvelopeID = %s, 期望 %s", result.Envelopes[0].EnvelopeID, wantID)
		}

		// 文件确实落盘且通过校验
		data, err := os.ReadFile(filepath.Join(f.dir, "DIT"+wantID+".xml"))
		if err != nil {
			t.Fatalf("读取导出文件失败: %v", err)
		}
		if err := envelope_service.NewValidator().Validate(data); err != nil {
			t.Errorf("导出文件未通过校验: %v", err)
		}

		if f.wbSvc.wb.Status != model.StatusSent {
			t.Errorf("workbasket 状态 = %s, 期望 sent", f.wbSvc.wb.Status)
		}
		if len(f.envRepo.archived) != 1 {
			t.Errorf("档案记录 %d 条, 期望 1", len(f.envRepo.archived))
		}

		// 发布结束后互斥标记已清除
		if flag, _ := f.cacheSvc.Get(ctx, "tariff:envelope:processing"); flag != "" {
			t.Errorf("互斥标记应已清除, got %q", flag)
		}
	})

	t.Run("序号衔接当年最新档案", func(t *testing.T) {
		f := newFixture(t, model.StatusReadyForExport, []int{1})
		f.envRepo.latest = &model.Envelope{EnvelopeID: yy + "0007"}

		result, err := f.svc.Publish(ctx, "wb-1")
		if err != nil {
			t.Fatalf("Publish 失败: %v", err)
		}
		wantID := yy + "0008"
		if result.Envelopes[0].EnvelopeID != wantID {
			t.Errorf("EnvelopeID = %s, 期望 %s", result.Envelopes[0].EnvelopeID, wantID)
		}
		if _, err := os.Stat(filepath.Join(f.dir, "DIT"+wantID+".xml")); err != nil {
			t.Errorf("导出文件缺失: %v", err)
		}
	})

	t.Run("非待导出状态拒绝发布", func(t *testing.T) {
		f := newFixture(t, model.StatusEditing, []int{1})

		_, err := f.svc.Publish(ctx, "wb-1")
		if !errors.Is(err, constant.ErrWorkflowTransition) {
			t.Errorf("err = %v, 期望 ErrWorkflowTransition", err)
		}
		if f.wbSvc.wb.Status != model.StatusEditing {
			t.Errorf("状态不应改变, got %s", f.wbSvc.wb.Status)
		}
	})

	t.Run("全部事务为空时拒绝导出", func(t *testing.T) {
		f := newFixture(t, model.StatusReadyForExport, []int{0, 0})

		_, err := f.svc.Publish(ctx, "wb-1")
		if !errors.Is(err, constant.ErrEnvelopeEmpty) {
			t.Errorf("err = %v, 期望 ErrEnvelopeEmpty", err)
		}
		entries, _ := os.ReadDir(f.dir)
		if len(entries) != 0 {
			t.Errorf("空 workbasket 不应落盘任何文件, got %d 个", len(entries))
		}
	})

	t.Run("已有发布在跑时拒绝并发", func(t *testing.T) {
		f := newFixture(t, model.StatusReadyForExport, []int{1})
		f.cacheSvc.Set(ctx, "tariff:envelope:processing", "wb-other", time.Minute)

		_, err := f.svc.Publish(ctx, "wb-1")
		if !errors.Is(err, constant.ErrEnvelopeProcessing) {
			t.Errorf("err = %v, 期望 ErrEnvelopeProcessing", err)
		}
	})

	t.Run("不存在的 workbasket", func(t *testing.T) {
		f := newFixture(t, model.StatusReadyForExport, []int{1})
		if _, err := f.svc.Publish(ctx, "wb-missing"); err == nil {
			t.Error("不存在的 workbasket 应报错")
		}
	})
}
