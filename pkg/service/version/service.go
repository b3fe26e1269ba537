/*
 * @Description: 版本库服务（copy-on-write 写入与快照查询）
 * @Author: 安知鱼
 * @Date: 2026-02-10
 */
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/anzhiyu-c/tariff-app/pkg/constant"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/repository"
	"github.com/anzhiyu-c/tariff-app/pkg/service/utility"
)

// Service 版本库服务接口。
// 所有写入都走 copy-on-write：版本行只增不改，"修改"即在同一版本组内
// 追加新行，"删除"即追加 DELETE 版本。
type Service interface {
	// Create 为新的逻辑实体分配版本组并写入首个 CREATE 版本
	Create(ctx context.Context, tx *model.Transaction, params *model.CreateEntityParams) (*model.TrackedEntity, error)
	// NewVersion 以 copy-on-write 方式追加 UPDATE / DELETE 版本
	NewVersion(ctx context.Context, entityID string, tx *model.Transaction, updateType model.UpdateType, changes map[string]interface{}) (*model.TrackedEntity, error)
	// Copy 把实体连同从属记录深拷贝为全新的逻辑实体
	Copy(ctx context.Context, entityID string, tx *model.Transaction, overrides map[string]interface{}, dependents map[string][]map[string]interface{}) (*model.TrackedEntity, error)
	// Terminate 以指定日期终止实体的有效期
	Terminate(ctx context.Context, entityID string, workbasket *model.WorkBasket, endDate time.Time) (*model.TrackedEntity, error)

	// LatestApproved 返回最新批准状态（按当前版本指针）
	LatestApproved(ctx context.Context, filter repository.EntityFilter) ([]*model.TrackedEntity, error)
	// AsAt 返回挂在 ctx 上的当前事务处可见的快照；
	// ctx 上没有当前事务时退化为 LatestApproved，不存在任何全局兜底。
	AsAt(ctx context.Context, filter repository.EntityFilter) ([]*model.TrackedEntity, error)
	// AsAtDate 在 AsAt 的基础上再按有效期过滤
	AsAtDate(ctx context.Context, date time.Time, filter repository.EntityFilter) ([]*model.TrackedEntity, error)
	// VersionsUpTo 返回版本组在给定事务及之前的全部版本
	VersionsUpTo(ctx context.Context, groupID string, tx *model.Transaction) ([]*model.TrackedEntity, error)
	// GetLatestVersion 按业务键取最新版本
	GetLatestVersion(ctx context.Context, kind string, keys map[string]interface{}) (*model.TrackedEntity, error)
	// GetFirstVersion 按业务键取首个版本
	GetFirstVersion(ctx context.Context, kind string, keys map[string]interface{}) (*model.TrackedEntity, error)
}

type versionServiceImpl struct {
	entityRepo repository.TrackedEntityRepository
	txManager  repository.TransactionManager
	cacheSvc   utility.CacheService
}

// NewVersionService 创建版本库服务。
func NewVersionService(
	entityRepo repository.TrackedEntityRepository,
	txManager repository.TransactionManager,
	cacheSvc utility.CacheService,
) Service {
	return &versionServiceImpl{
		entityRepo: entityRepo,
		txManager:  txManager,
		cacheSvc:   cacheSvc,
	}
}

// snapshotCacheKey 最新批准快照的缓存键（按种类分键）
const snapshotCacheKeyPrefix = "tariff:snapshot:latest:"

// snapshotCacheTTL 快照缓存过期时间（10分钟）
const snapshotCacheTTL = 10 * time.Minute

// invalidateSnapshot 写入后使相关种类的快照缓存失效
func (s *versionServiceImpl) invalidateSnapshot(ctx context.Context, kinds ...string) {
	keys := make([]string, 0, len(kinds)+1)
	keys = append(keys, snapshotCacheKeyPrefix+"*all*")
	for _, kind := range kinds {
		keys = append(keys, snapshotCacheKeyPrefix+kind)
	}
	if err := s.cacheSvc.Delete(ctx, keys...); err != nil {
		log.Printf("警告：清除快照缓存失败: %v", err)
	}
}

// Create 为新的逻辑实体分配版本组并写入首个 CREATE 版本。
// 当事务属于已批准分区（seed_file / revision）时新行立即成为当前版本；
// 草稿事务的写入要等 workbasket 批准后才会影响当前版本指针。
func (s *versionServiceImpl) Create(ctx context.Context, tx *model.Transaction, params *model.CreateEntityParams) (*model.TrackedEntity, error) {
	if tx == nil {
		return nil, fmt.Errorf("事务不能为空")
	}
	if _, ok := model.KindByName(params.Kind); !ok {
		return nil, fmt.Errorf("未注册的实体种类: %s", params.Kind)
	}

	var created *model.TrackedEntity
	err := s.txManager.Do(ctx, func(repos repository.Repositories) error {
		group, err := repos.TrackedEntity.CreateGroup(ctx)
		if err != nil {
			return err
		}
		created, err = repos.TrackedEntity.Insert(ctx, group.ID, tx.ID, model.UpdateTypeCreate, params)
		if err != nil {
			return err
		}
		if tx.Partition.Approved() {
			return repos.TrackedEntity.SetCurrentVersion(ctx, group.ID, created.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSnapshot(ctx, params.Kind)
	return created, nil
}

// appendVersion 在一个已开启的单元工作内追加版本并维护当前版本指针。
func appendVersion(ctx context.Context, repos repository.Repositories, base *model.TrackedEntity, tx *model.Transaction, updateType model.UpdateType, changes map[string]interface{}) (*model.TrackedEntity, error) {
	if updateType != model.UpdateTypeUpdate && updateType != model.UpdateTypeDelete {
		return nil, constant.ErrUpdateTypeInvalid
	}

	// DELETE 版本关闭版本组，之后只能通过新建版本组"重建"
	latest, err := repos.TrackedEntity.LatestOfGroup(ctx, base.VersionGroupID)
	if err != nil {
		return nil, err
	}
	if latest.UpdateType == model.UpdateTypeDelete {
		return nil, constant.ErrVersionGroupClosed
	}

	params := model.OverlayChanges(base, changes)
	inserted, err := repos.TrackedEntity.Insert(ctx, base.VersionGroupID, tx.ID, updateType, &params)
	if err != nil {
		return nil, err
	}

	if tx.Partition.Approved() {
		pointer := inserted.ID
		if updateType == model.UpdateTypeDelete {
			pointer = ""
		}
		if err := repos.TrackedEntity.SetCurrentVersion(ctx, base.VersionGroupID, pointer); err != nil {
			return nil, err
		}
	}
	return inserted, nil
}

// NewVersion 以 copy-on-write 方式追加 UPDATE / DELETE 版本。
// base 行的字段全集先被完整读出，再叠加 changes 写成新行；
// 任何指向既有行的写入都会被仓储层以 ErrIllegalMutation 拒绝。
func (s *versionServiceImpl) NewVersion(ctx context.Context, entityID string, tx *model.Transaction, updateType model.UpdateType, changes map[string]interface{}) (*model.TrackedEntity, error) {
	if tx == nil {
		return nil, fmt.Errorf("事务不能为空")
	}
	base, err := s.entityRepo.GetByID(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("读取基准版本失败: %w", err)
	}

	var inserted *model.TrackedEntity
	err = s.txManager.Do(ctx, func(repos repository.Repositories) error {
		inserted, err = appendVersion(ctx, repos, base, tx, updateType, changes)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSnapshot(ctx, base.Kind)
	return inserted, nil
}

// sidAllocator 在一次 Copy 内为每个种类维护推进中的 SID 水位，
// 同一次拷贝克隆多条同种类从属记录时序号连续递增。
type sidAllocator struct {
	next map[string]int
}

func newSIDAllocator() *sidAllocator {
	return &sidAllocator{next: make(map[string]int)}
}

func (a *sidAllocator) allocate(ctx context.Context, repos repository.Repositories, kind string) (int, error) {
	if n, ok := a.next[kind]; ok {
		a.next[kind] = n + 1
		return n, nil
	}
	max, err := repos.TrackedEntity.MaxSID(ctx, kind)
	if err != nil {
		return 0, fmt.Errorf("查询种类 %s 的最大SID失败: %w", kind, err)
	}
	a.next[kind] = max + 2
	return max + 1, nil
}

// Copy 把实体连同从属记录深拷贝为全新的逻辑实体。
// 克隆出的是新的版本组（新的逻辑身份），不是旧实体的新版本；
// 克隆集合内部的引用全部重定向到新克隆，集合外的引用原样保留；
// dependents 中给出的种类（即使是空集合）取代该种类的自动克隆。
func (s *versionServiceImpl) Copy(ctx context.Context, entityID string, tx *model.Transaction, overrides map[string]interface{}, dependents map[string][]map[string]interface{}) (*model.TrackedEntity, error) {
	if tx == nil {
		return nil, fmt.Errorf("事务不能为空")
	}
	base, err := s.entityRepo.GetByID(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("读取被拷贝实体失败: %w", err)
	}
	kindInfo, ok := model.KindByName(base.Kind)
	if !ok {
		return nil, fmt.Errorf("未注册的实体种类: %s", base.Kind)
	}

	touchedKinds := []string{base.Kind}
	var root *model.TrackedEntity
	err = s.txManager.Do(ctx, func(repos repository.Repositories) error {
		sids := newSIDAllocator()

		// 1. 克隆根实体到新版本组
		params := model.OverlayChanges(base, overrides)
		if kindInfo.HasSID {
			if _, explicit := overrides["sid"]; !explicit {
				sid, err := sids.allocate(ctx, repos, base.Kind)
				if err != nil {
					return err
				}
				params.SID = sid
			}
		}
		newGroup, err := repos.TrackedEntity.CreateGroup(ctx)
		if err != nil {
			return err
		}
		root, err = repos.TrackedEntity.Insert(ctx, newGroup.ID, tx.ID, model.UpdateTypeCreate, &params)
		if err != nil {
			return err
		}
		if tx.Partition.Approved() {
			if err := repos.TrackedEntity.SetCurrentVersion(ctx, newGroup.ID, root.ID); err != nil {
				return err
			}
		}

		// 2. 克隆从属记录（描述等），父引用重定向到新版本组
		for _, depInfo := range model.DependentKinds(base.Kind) {
			depKind := depInfo.Name
			touchedKinds = append(touchedKinds, depKind)

			var depParams []model.CreateEntityParams
			if explicit, given := dependents[depKind]; given {
				// 显式集合取代自动克隆，空集合表示不克隆
				for _, fields := range explicit {
					blank := &model.TrackedEntity{Kind: depKind, ValidityStart: params.ValidityStart, ValidityEnd: params.ValidityEnd}
					p := model.OverlayChanges(blank, fields)
					depParams = append(depParams, p)
				}
			} else {
				existing, err := repos.TrackedEntity.DependentsAsAt(ctx, base.VersionGroupID, depKind, tx)
				if err != nil {
					return fmt.Errorf("读取从属记录 %s 失败: %w", depKind, err)
				}
				for _, dep := range existing {
					depParams = append(depParams, model.OverlayChanges(dep, nil))
				}
			}

			for i := range depParams {
				depParams[i].ParentGroupID = root.VersionGroupID
				if depInfo.HasSID {
					sid, err := sids.allocate(ctx, repos, depKind)
					if err != nil {
						return err
					}
					depParams[i].SID = sid
				}
				depGroup, err := repos.TrackedEntity.CreateGroup(ctx)
				if err != nil {
					return err
				}
				cloned, err := repos.TrackedEntity.Insert(ctx, depGroup.ID, tx.ID, model.UpdateTypeCreate, &depParams[i])
				if err != nil {
					return err
				}
				if tx.Partition.Approved() {
					if err := repos.TrackedEntity.SetCurrentVersion(ctx, depGroup.ID, cloned.ID); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSnapshot(ctx, touchedKinds...)
	return root, nil
}

// Terminate 以指定日期终止实体的有效期。
// 实体在该日期前已结束时原样返回；生效起点不早于该日期时产生 DELETE 版本；
// 其余情况产生 validity_end = endDate（含当天）的 UPDATE 版本。
// 版本挂在 workbasket 的尾事务上，workbasket 还没有事务时开一个草稿事务。
func (s *versionServiceImpl) Terminate(ctx context.Context, entityID string, workbasket *model.WorkBasket, endDate time.Time) (*model.TrackedEntity, error) {
	if workbasket == nil {
		return nil, fmt.Errorf("workbasket 不能为空")
	}
	base, err := s.entityRepo.GetByID(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("读取待终止实体失败: %w", err)
	}

	decision := model.DecideTermination(base.ValidityStart, base.ValidityEnd, endDate)
	if decision.NoChange {
		return base, nil
	}

	var inserted *model.TrackedEntity
	err = s.txManager.Do(ctx, func(repos repository.Repositories) error {
		tx, err := repos.Transaction.TailByWorkBasket(ctx, workbasket.ID)
		if err != nil {
			return err
		}
		if tx == nil {
			tx, err = repos.Transaction.Create(ctx, workbasket.ID, model.PartitionDraft)
			if err != nil {
				return err
			}
		}

		var changes map[string]interface{}
		if decision.UpdateType == model.UpdateTypeUpdate {
			changes = map[string]interface{}{"validity_end": decision.ValidityEnd}
		}
		inserted, err = appendVersion(ctx, repos, base, tx, decision.UpdateType, changes)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSnapshot(ctx, base.Kind)
	return inserted, nil
}

// LatestApproved 返回最新批准状态（按当前版本指针），带快照缓存。
// 只有不限定版本组的按种类查询会进缓存。
func (s *versionServiceImpl) LatestApproved(ctx context.Context, filter repository.EntityFilter) ([]*model.TrackedEntity, error) {
	cacheable := filter.GroupID == ""
	cacheKey := snapshotCacheKeyPrefix + "*all*"
	if filter.Kind != "" {
		cacheKey = snapshotCacheKeyPrefix + filter.Kind
	}

	if cacheable {
		if cached, err := s.cacheSvc.Get(ctx, cacheKey); err == nil && cached != "" {
			var snapshot []*model.TrackedEntity
			if err := json.Unmarshal([]byte(cached), &snapshot); err == nil {
				return snapshot, nil
			}
		}
	}

	snapshot, err := s.entityRepo.LatestApproved(ctx, filter)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if data, err := json.Marshal(snapshot); err == nil {
			if err := s.cacheSvc.Set(ctx, cacheKey, string(data), snapshotCacheTTL); err != nil {
				log.Printf("警告：写入快照缓存失败: %v", err)
			}
		}
	}
	return snapshot, nil
}

// AsAt 返回挂在 ctx 上的当前事务处可见的快照。
func (s *versionServiceImpl) AsAt(ctx context.Context, filter repository.EntityFilter) ([]*model.TrackedEntity, error) {
	tx, ok := model.CurrentTransactionFrom(ctx)
	if !ok {
		return s.LatestApproved(ctx, filter)
	}
	return s.entityRepo.AsAtTransaction(ctx, tx, filter)
}

// AsAtDate 在 AsAt 的基础上再按有效期过滤。
func (s *versionServiceImpl) AsAtDate(ctx context.Context, date time.Time, filter repository.EntityFilter) ([]*model.TrackedEntity, error) {
	tx, ok := model.CurrentTransactionFrom(ctx)
	if !ok {
		snapshot, err := s.LatestApproved(ctx, filter)
		if err != nil {
			return nil, err
		}
		result := make([]*model.TrackedEntity, 0, len(snapshot))
		for _, e := range snapshot {
			if model.ValidityContains(e.ValidityStart, e.ValidityEnd, date) {
				result = append(result, e)
			}
		}
		return result, nil
	}
	return s.entityRepo.AsAtDate(ctx, tx, date, filter)
}

// VersionsUpTo 返回版本组在给定事务及之前的全部版本。
func (s *versionServiceImpl) VersionsUpTo(ctx context.Context, groupID string, tx *model.Transaction) ([]*model.TrackedEntity, error) {
	return s.entityRepo.VersionsUpTo(ctx, groupID, tx)
}

// GetLatestVersion 按业务键取最新版本。
func (s *versionServiceImpl) GetLatestVersion(ctx context.Context, kind string, keys map[string]interface{}) (*model.TrackedEntity, error) {
	versions, err := s.entityRepo.GetVersions(ctx, kind, keys)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, constant.ErrNotFound
	}
	return versions[len(versions)-1], nil
}

// GetFirstVersion 按业务键取首个版本。
func (s *versionServiceImpl) GetFirstVersion(ctx context.Context, kind string, keys map[string]interface{}) (*model.TrackedEntity, error) {
	versions, err := s.entityRepo.GetVersions(ctx, kind, keys)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, constant.ErrNotFound
	}
	return versions[0], nil
}
