package version

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/anzhiyu-c/tariff-app/pkg/constant"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/repository"
	"github.com/anzhiyu-c/tariff-app/pkg/service/utility"
)

// fakeEntityRepo 内存版本化实体仓储，版本行按插入顺序排列
type fakeEntityRepo struct {
	repository.TrackedEntityRepository

	groups   map[string][]*model.TrackedEntity
	pointers map[string]string
	approved []*model.TrackedEntity
	seq      int
}

func newFakeEntityRepo() *fakeEntityRepo {
	return &fakeEntityRepo{
		groups:   make(map[string][]*model.TrackedEntity),
		pointers: make(map[string]string),
	}
}

func (r *fakeEntityRepo) CreateGroup(ctx context.Context) (*model.VersionGroup, error) {
	r.seq++
	group := &model.VersionGroup{ID: fmt.Sprintf("g-%d", r.seq)}
	r.groups[group.ID] = nil
	return group, nil
}

func (r *fakeEntityRepo) Insert(ctx context.Context, groupID, transactionID string, updateType model.UpdateType, params *model.CreateEntityParams) (*model.TrackedEntity, error) {
	r.seq++
	e := &model.TrackedEntity{
		ID:             fmt.Sprintf("e-%d", r.seq),
		Kind:           params.Kind,
		VersionGroupID: groupID,
		TransactionID:  transactionID,
		UpdateType:     updateType,
		SID:            params.SID,
		TypeCode:       params.TypeCode,
		Code:           params.Code,
		ValidityStart:  params.ValidityStart,
		ValidityEnd:    params.ValidityEnd,
		Payload:        params.Payload,
		ParentGroupID:  params.ParentGroupID,
	}
	r.groups[groupID] = append(r.groups[groupID], e)
	return e, nil
}

func (r *fakeEntityRepo) GetByID(ctx context.Context, id string) (*model.TrackedEntity, error) {
	for _, versions := range r.groups {
		for _, e := range versions {
			if e.ID == id {
				return e, nil
			}
		}
	}
	return nil, constant.ErrNotFound
}

func (r *fakeEntityRepo) LatestOfGroup(ctx context.Context, groupID string) (*model.TrackedEntity, error) {
	versions := r.groups[groupID]
	if len(versions) == 0 {
		return nil, constant.ErrNotFound
	}
	return versions[len(versions)-1], nil
}

func (r *fakeEntityRepo) SetCurrentVersion(ctx context.Context, groupID, entityID string) error {
	r.pointers[groupID] = entityID
	return nil
}

func (r *fakeEntityRepo) LatestApproved(ctx context.Context, filter repository.EntityFilter) ([]*model.TrackedEntity, error) {
	var out []*model.TrackedEntity
	for _, e := range r.approved {
		if filter.Kind != "" && e.Kind != filter.Kind {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEntityRepo) MaxSID(ctx context.Context, kind string) (int, error) {
	max := 0
	for _, versions := range r.groups {
		for _, e := range versions {
			if e.Kind == kind && e.SID > max {
				max = e.SID
			}
		}
	}
	return max, nil
}

func (r *fakeEntityRepo) DependentsAsAt(ctx context.Context, parentGroupID, kind string, tx *model.Transaction) ([]*model.TrackedEntity, error) {
	var out []*model.TrackedEntity
	for _, versions := range r.groups {
		for _, e := range versions {
			if e.ParentGroupID == parentGroupID && e.Kind == kind {
				out = append(out, e)
			}
		}
	}
	return out, nil
}

func (r *fakeEntityRepo) GetVersions(ctx context.Context, kind string, keys map[string]interface{}) ([]*model.TrackedEntity, error) {
	if len(keys) == 0 {
		return nil, constant.ErrNoIdentifyingValue
	}
	var out []*model.TrackedEntity
	for _, versions := range r.groups {
		for _, e := range versions {
			if e.Kind != kind {
				continue
			}
			match := true
			for k, v := range keys {
				if e.IdentifyingValues()[k] != v {
					match = false
				}
			}
			if match {
				out = append(out, e)
			}
		}
	}
	return out, nil
}

// fakeTxRepo 只实现 Terminate 用到的尾事务与建事务
type fakeTxRepo struct {
	repository.TransactionRepository

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

type fakeTxManager struct {
	repos repository.Repositories
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(repos repository.Repositories) error) error {
	return fn(m.repos)
}

func newTestService() (Service, *fakeEntityRepo, *fakeTxRepo) {
	entityRepo := newFakeEntityRepo()
	txRepo := &fakeTxRepo{}
	txManager := &fakeTxManager{repos: repository.Repositories{
		TrackedEntity: entityRepo,
		Transaction:   txRepo,
	}}
	svc := NewVersionService(entityRepo, txManager, utility.NewMemoryCacheService())
	return svc, entityRepo, txRepo
}

func draftTx(order int) *model.Transaction {
	return &model.Transaction{ID: fmt.Sprintf("draft-%d", order), Partition: model.PartitionDraft, Order: order}
}

func approvedTx(order int) *model.Transaction {
	return &model.Transaction{ID: fmt.Sprintf("rev-%d", order), Partition: model.PartitionRevision, Order: order}
}

func footnoteParams(code string) *model.CreateEntityParams {
	return &model.CreateEntityParams{
		Kind:          "footnote",
		TypeCode:      "TN",
		Code:          code,
		ValidityStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Payload:       map[string]interface{}{"description": "测试脚注"},
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("已批准事务中的创建立即成为当前版本", func(t *testing.T) {
		svc, entityRepo, _ := newTestService()
		created, err := svc.Create(ctx, approvedTx(1), footnoteParams("001"))
		if err != nil {
			t.Fatalf("Create 失败: %v", err)
		}
		if created.UpdateType != model.UpdateTypeCreate {
			t.Errorf("首版本类型 = %s, 期望 create", created.UpdateType)
		}
		if entityRepo.pointers[created.VersionGroupID] != created.ID {
			t.Errorf("当前版本指针未指向新行: %q", entityRepo.pointers[created.VersionGroupID])
		}
	})

	t.Run("草稿事务中的创建不碰当前版本指针", func(t *testing.T) {
		svc, entityRepo, _ := newTestService()
		created, err := svc.Create(ctx, draftTx(1), footnoteParams("002"))
		if err != nil {
			t.Fatalf("Create 失败: %v", err)
		}
		if _, set := entityRepo.pointers[created.VersionGroupID]; set {
			t.Error("草稿写入不应设置当前版本指针")
		}
	})

	t.Run("未注册种类", func(t *testing.T) {
		svc, _, _ := newTestService()
		if _, err := svc.Create(ctx, approvedTx(1), &model.CreateEntityParams{Kind: "bogus"}); err == nil {
			t.Error("未注册种类应报错")
		}
	})

	t.Run("事务不能为空", func(t *testing.T) {
		svc, _, _ := newTestService()
		if _, err := svc.Create(ctx, nil, footnoteParams("003")); err == nil {
			t.Error("nil 事务应报错")
		}
	})
}

func TestNewVersion(t *testing.T) {
	ctx := context.Background()

	t.Run("UPDATE 叠加变更并推进指针", func(t *testing.T) {
		svc, entityRepo, _ := newTestService()
		base, _ := svc.Create(ctx, approvedTx(1), footnoteParams("001"))

		updated, err := svc.NewVersion(ctx, base.ID, approvedTx(2), model.UpdateTypeUpdate,
			map[string]interface{}{"description": "新描述"})
		if err != nil {
			t.Fatalf("NewVersion 失败: %v", err)
		}
		if updated.ID == base.ID {
			t.Error("UPDATE 必须产生新行")
		}
		if updated.VersionGroupID != base.VersionGroupID {
			t.Error("新版本应与基准版本同组")
		}
		if updated.Payload["description"] != "新描述" {
			t.Errorf("description = %v, 期望 新描述", updated.Payload["description"])
		}
		if updated.Code != "001" {
			t.Errorf("未变更的字段应继承, code = %q", updated.Code)
		}
		if entityRepo.pointers[base.VersionGroupID] != updated.ID {
			t.Error("指针应推进到新版本")
		}
		// 基准行保持原样
		if base.Payload["description"] != "测试脚注" {
			t.Error("基准版本行被修改")
		}
	})

	t.Run("DELETE 清空指针并关闭版本组", func(t *testing.T) {
		svc, entityRepo, _ := newTestService()
		base, _ := svc.Create(ctx, approvedTx(1), footnoteParams("001"))

		deleted, err := svc.NewVersion(ctx, base.ID, approvedTx(2), model.UpdateTypeDelete, nil)
		if err != nil {
			t.Fatalf("NewVersion 失败: %v", err)
		}
		if deleted.UpdateType != model.UpdateTypeDelete {
			t.Errorf("版本类型 = %s, 期望 delete", deleted.UpdateType)
		}
		if entityRepo.pointers[base.VersionGroupID] != "" {
			t.Error("DELETE 后指针应清空")
		}

		_, err = svc.NewVersion(ctx, base.ID, approvedTx(3), model.UpdateTypeUpdate, nil)
		if !errors.Is(err, constant.ErrVersionGroupClosed) {
			t.Errorf("err = %v, 期望 ErrVersionGroupClosed", err)
		}
	})

	t.Run("只接受 UPDATE 或 DELETE", func(t *testing.T) {
		svc, _, _ := newTestService()
		base, _ := svc.Create(ctx, approvedTx(1), footnoteParams("001"))

		_, err := svc.NewVersion(ctx, base.ID, approvedTx(2), model.UpdateTypeCreate, nil)
		if !errors.Is(err, constant.ErrUpdateTypeInvalid) {
			t.Errorf("err = %v, 期望 ErrUpdateTypeInvalid", err)
		}
	})

	t.Run("草稿事务中的版本不碰指针", func(t *testing.T) {
		svc, entityRepo, _ := newTestService()
		base, _ := svc.Create(ctx, approvedTx(1), footnoteParams("001"))

		if _, err := svc.NewVersion(ctx, base.ID, draftTx(2), model.UpdateTypeUpdate, nil); err != nil {
			t.Fatalf("NewVersion 失败: %v", err)
		}
		if entityRepo.pointers[base.VersionGroupID] != base.ID {
			t.Error("草稿版本不应推进指针")
		}
	})
}

func TestTerminate(t *testing.T) {
	ctx := context.Background()
	wb := &model.WorkBasket{ID: "wb-1", Status: model.StatusEditing}

	t.Run("生效中实体被截短", func(t *testing.T) {
		svc, _, txRepo := newTestService()
		base, _ := svc.Create(ctx, approvedTx(1), footnoteParams("001"))

		when := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		terminated, err := svc.Terminate(ctx, base.ID, wb, when)
		if err != nil {
			t.Fatalf("Terminate 失败: %v", err)
		}
		if terminated.UpdateType != model.UpdateTypeUpdate {
			t.Errorf("版本类型 = %s, 期望 update", terminated.UpdateType)
		}
		if terminated.ValidityEnd == nil || !terminated.ValidityEnd.Equal(when) {
			t.Errorf("validity_end = %v, 期望 %v", terminated.ValidityEnd, when)
		}
		// workbasket 还没有事务：应自动开一个草稿事务
		if len(txRepo.items) != 1 || txRepo.items[0].Partition != model.PartitionDraft {
			t.Errorf("应自动开草稿事务, got %+v", txRepo.items)
		}
	})

	t.Run("未生效实体直接删除", func(t *testing.T) {
		svc, _, _ := newTestService()
		params := footnoteParams("002")
		params.ValidityStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		base, _ := svc.Create(ctx, approvedTx(1), params)

		terminated, err := svc.Terminate(ctx, base.ID, wb, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("Terminate 失败: %v", err)
		}
		if terminated.UpdateType != model.UpdateTypeDelete {
			t.Errorf("版本类型 = %s, 期望 delete", terminated.UpdateType)
		}
	})

	t.Run("已结束实体原样返回", func(t *testing.T) {
		svc, entityRepo, _ := newTestService()
		params := footnoteParams("003")
		end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
		params.ValidityEnd = &end
		base, _ := svc.Create(ctx, approvedTx(1), params)

		before := len(entityRepo.groups[base.VersionGroupID])
		got, err := svc.Terminate(ctx, base.ID, wb, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("Terminate 失败: %v", err)
		}
		if got.ID != base.ID {
			t.Error("无需处理时应返回基准版本")
		}
		if len(entityRepo.groups[base.VersionGroupID]) != before {
			t.Error("无需处理时不应写入新行")
		}
	})
}

func TestCopy(t *testing.T) {
	ctx := context.Background()

	t.Run("克隆根实体与从属记录到新版本组", func(t *testing.T) {
		svc, entityRepo, _ := newTestService()
		tx := approvedTx(1)

		// 一个 footnote 带两条描述
		root, _ := svc.Create(ctx, tx, footnoteParams("001"))
		for i := 1; i <= 2; i++ {
			entityRepo.Insert(ctx, fmt.Sprintf("dep-g-%d", i), tx.ID, model.UpdateTypeCreate, &model.CreateEntityParams{
				Kind:          "footnote_description",
				SID:           i,
				ValidityStart: root.ValidityStart,
				ParentGroupID: root.VersionGroupID,
				Payload:       map[string]interface{}{"description": fmt.Sprintf("描述 %d", i)},
			})
		}

		clone, err := svc.Copy(ctx, root.ID, approvedTx(2), map[string]interface{}{"code": "002"}, nil)
		if err != nil {
			t.Fatalf("Copy 失败: %v", err)
		}
		if clone.VersionGroupID == root.VersionGroupID {
			t.Error("克隆应获得新版本组")
		}
		if clone.Code != "002" {
			t.Errorf("覆盖字段未生效, code = %q", clone.Code)
		}
		if clone.TypeCode != "TN" {
			t.Errorf("未覆盖字段应继承, type_code = %q", clone.TypeCode)
		}

		// 从属记录跟着克隆，父引用重定向，SID 连续递增
		cloned, _ := entityRepo.DependentsAsAt(ctx, clone.VersionGroupID, "footnote_description", nil)
		if len(cloned) != 2 {
			t.Fatalf("克隆出 %d 条从属记录, 期望 2", len(cloned))
		}
		sids := map[int]bool{}
		for _, dep := range cloned {
			if dep.ParentGroupID != clone.VersionGroupID {
				t.Errorf("从属记录父引用 = %s, 期望 %s", dep.ParentGroupID, clone.VersionGroupID)
			}
			sids[dep.SID] = true
		}
		if !sids[3] || !sids[4] {
			t.Errorf("克隆的 SID 应从最大值后连续分配, got %v", sids)
		}
	})

	t.Run("显式空集合取代自动克隆", func(t *testing.T) {
		svc, entityRepo, _ := newTestService()
		tx := approvedTx(1)
		root, _ := svc.Create(ctx, tx, footnoteParams("001"))
		entityRepo.Insert(ctx, "dep-g", tx.ID, model.UpdateTypeCreate, &model.CreateEntityParams{
			Kind:          "footnote_description",
			SID:           1,
			ValidityStart: root.ValidityStart,
			ParentGroupID: root.VersionGroupID,
		})

		clone, err := svc.Copy(ctx, root.ID, approvedTx(2), nil,
			map[string][]map[string]interface{}{"footnote_description": {}})
		if err != nil {
			t.Fatalf("Copy 失败: %v", err)
		}
		cloned, _ := entityRepo.DependentsAsAt(ctx, clone.VersionGroupID, "footnote_description", nil)
		if len(cloned) != 0 {
			t.Errorf("显式空集合不应克隆从属记录, got %d 条", len(cloned))
		}
	})
}

func TestSnapshotQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("AsAtDate 无当前事务时按有效期过滤最新批准快照", func(t *testing.T) {
		svc, entityRepo, _ := newTestService()
		end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
		entityRepo.approved = []*model.TrackedEntity{
			{ID: "e1", Kind: "footnote", ValidityStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "e2", Kind: "footnote", ValidityStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ValidityEnd: &end},
		}

		got, err := svc.AsAtDate(ctx, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), repository.EntityFilter{Kind: "footnote"})
		if err != nil {
			t.Fatalf("AsAtDate 失败: %v", err)
		}
		if len(got) != 1 || got[0].ID != "e1" {
			t.Errorf("快照 = %v, 期望仅 e1", got)
		}
	})

	t.Run("GetLatestVersion 与 GetFirstVersion", func(t *testing.T) {
		svc, _, _ := newTestService()
		first, _ := svc.Create(ctx, approvedTx(1), footnoteParams("001"))
		latest, _ := svc.NewVersion(ctx, first.ID, approvedTx(2), model.UpdateTypeUpdate, nil)

		keys := map[string]interface{}{"type_code": "TN", "code": "001"}
		got, err := svc.GetLatestVersion(ctx, "footnote", keys)
		if err != nil {
			t.Fatalf("GetLatestVersion 失败: %v", err)
		}
		if got.ID != latest.ID {
			t.Errorf("最新版本 = %s, 期望 %s", got.ID, latest.ID)
		}

		got, err = svc.GetFirstVersion(ctx, "footnote", keys)
		if err != nil {
			t.Fatalf("GetFirstVersion 失败: %v", err)
		}
		if got.ID != first.ID {
			t.Errorf("首个版本 = %s, 期望 %s", got.ID, first.ID)
		}

		if _, err := svc.GetLatestVersion(ctx, "footnote", map[string]interface{}{"type_code": "XX", "code": "999"}); !errors.Is(err, constant.ErrNotFound) {
			t.Errorf("err = %v, 期望 ErrNotFound", err)
		}
	})
}
