/*
 * @Description: 版本化实体仓储的 Ent 实现
 * @Author: 安知鱼
 * @Date: 2026-02-10
 */
package ent

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/anzhiyu-c/tariff-app/pkg/constant"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/repository"
	"github.com/anzhiyu-c/tariff-app/pkg/idgen"

	"entgo.io/ent/dialect/sql/sqlgraph"

	"github.com/anzhiyu-c/tariff-app/ent"
	"github.com/anzhiyu-c/tariff-app/ent/predicate"
	"github.com/anzhiyu-c/tariff-app/ent/trackedentity"
	"github.com/anzhiyu-c/tariff-app/ent/transaction"
	"github.com/anzhiyu-c/tariff-app/ent/versiongroup"
)

// entTrackedEntityRepository 是 TrackedEntityRepository 接口的 Ent 实现。
type entTrackedEntityRepository struct {
	client *ent.Client
}

// NewEntTrackedEntityRepository 是 entTrackedEntityRepository 的构造函数。
func NewEntTrackedEntityRepository(client *ent.Client) repository.TrackedEntityRepository {
	return &entTrackedEntityRepository{client: client}
}

// === 私有辅助函数 (Private Helpers) ===

// classifyInsertError 把插入版本行的数据库错误归类：
// 唯一约束冲突（原地写入既有行）映射为 ErrIllegalMutation，
// 外键、检查约束等其他错误按普通插入失败包装上抛。
func classifyInsertError(err error) error {
	if sqlgraph.IsUniqueConstraintError(err) {
		return constant.ErrIllegalMutation
	}
	return fmt.Errorf("插入版本行失败: %w", err)
}

// toModel 负责将 ent.TrackedEntity 实体转换为领域模型。
// 如果查询时加载了 transaction 边，会一并转换所属事务。
func toEntityModel(e *ent.TrackedEntity) *model.TrackedEntity {
	if e == nil {
		return nil
	}
	publicID, _ := idgen.GeneratePublicID(e.ID, idgen.EntityTypeTrackedEntity)
	groupID, _ := idgen.GeneratePublicID(e.VersionGroupID, idgen.EntityTypeVersionGroup)
	txID, _ := idgen.GeneratePublicID(e.TransactionID, idgen.EntityTypeTransaction)

	m := &model.TrackedEntity{
		ID:             publicID,
		Kind:           e.Kind,
		VersionGroupID: groupID,
		TransactionID:  txID,
		UpdateType:     model.UpdateType(e.UpdateType),
		SID:            e.Sid,
		TypeCode:       e.TypeCode,
		Code:           e.Code,
		ValidityStart:  e.ValidityStart,
		ValidityEnd:    e.ValidityEnd,
		Payload:        e.Payload,
		CreatedAt:      e.CreatedAt,
	}
	if e.ParentGroupID != 0 {
		m.ParentGroupID, _ = idgen.GeneratePublicID(e.ParentGroupID, idgen.EntityTypeVersionGroup)
	}
	if e.Edges.Transaction != nil {
		m.Transaction = toTransactionModel(e.Edges.Transaction)
	}
	return m
}

// orderingKeyOf 返回版本行所属事务的全序键。
// 调用前提：查询时已通过 WithTransaction 加载事务边。
func orderingKeyOf(e *ent.TrackedEntity) model.OrderingKey {
	tx := e.Edges.Transaction
	if tx == nil {
		return model.OrderingKey{}
	}
	return model.OrderingKey{Partition: model.Partition(tx.Partition), Order: tx.Order}
}

// visibleAt 构造"在事务 tx 处可见"的谓词：
// 更早分区中的全部事务；与 tx 同分区且序号不大于 tx 的事务——
// 同分区为草稿分区时还要求同属一个 workbasket。
func visibleAt(tx *model.Transaction) (predicate.TrackedEntity, error) {
	samePartition := []predicate.Transaction{
		transaction.PartitionEQ(int(tx.Partition)),
		transaction.OrderLTE(tx.Order),
	}
	if !tx.Partition.Approved() {
		wbID, _, err := idgen.DecodePublicID(tx.WorkBasketID)
		if err != nil {
			return nil, fmt.Errorf("解码 workbasket 公共ID '%s' 失败: %w", tx.WorkBasketID, err)
		}
		samePartition = append(samePartition, transaction.WorkbasketID(wbID))
	}
	return trackedentity.HasTransactionWith(
		transaction.Or(
			transaction.PartitionLT(int(tx.Partition)),
			transaction.And(samePartition...),
		),
	), nil
}

// reduceLatest 在内存中做"每个版本组取排序最靠后一行"的归并，
// 并剔除胜出行为 DELETE 的版本组。输入行必须已加载事务边。
func reduceLatest(rows []*ent.TrackedEntity) []*model.TrackedEntity {
	winners := make(map[uint]*ent.TrackedEntity, len(rows))
	for _, row := range rows {
		cur, ok := winners[row.VersionGroupID]
		if !ok || orderingKeyOf(cur).Before(orderingKeyOf(row)) {
			winners[row.VersionGroupID] = row
		}
	}

	result := make([]*model.TrackedEntity, 0, len(winners))
	for _, row := range winners {
		if row.UpdateType == trackedentity.UpdateTypeDelete {
			continue
		}
		result = append(result, toEntityModel(row))
	}
	sort.Slice(result, func(i, j int) bool {
		ki, kj := result[i].OrderingKey(), result[j].OrderingKey()
		if c := ki.Compare(kj); c != 0 {
			return c < 0
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// filterPredicates 把 EntityFilter 转换为查询谓词。
func filterPredicates(filter repository.EntityFilter) ([]predicate.TrackedEntity, error) {
	var preds []predicate.TrackedEntity
	if filter.Kind != "" {
		preds = append(preds, trackedentity.KindEQ(filter.Kind))
	}
	if filter.GroupID != "" {
		gid, _, err := idgen.DecodePublicID(filter.GroupID)
		if err != nil {
			return nil, fmt.Errorf("解码版本组公共ID '%s' 失败: %w", filter.GroupID, err)
		}
		preds = append(preds, trackedentity.VersionGroupIDEQ(gid))
	}
	return preds, nil
}

// === 接口实现 ===

// CreateGroup 分配一个新的版本组。
func (r *entTrackedEntityRepository) CreateGroup(ctx context.Context) (*model.VersionGroup, error) {
	created, err := r.client.VersionGroup.Create().Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("创建版本组失败: %w", err)
	}
	publicID, _ := idgen.GeneratePublicID(created.ID, idgen.EntityTypeVersionGroup)
	return &model.VersionGroup{
		ID:        publicID,
		CreatedAt: created.CreatedAt,
	}, nil
}

// Insert 在指定版本组内插入一个新的版本行。
// 版本行的所有列都是 Immutable 的：指向既有行的写入被唯一约束
// 拦下并映射为 ErrIllegalMutation；外键等其他约束错误原样上抛。
func (r *entTrackedEntityRepository) Insert(ctx context.Context, groupID, transactionID string, updateType model.UpdateType, params *model.CreateEntityParams) (*model.TrackedEntity, error) {
	gid, _, err := idgen.DecodePublicID(groupID)
	if err != nil {
		return nil, fmt.Errorf("解码版本组公共ID '%s' 失败: %w", groupID, err)
	}
	txID, _, err := idgen.DecodePublicID(transactionID)
	if err != nil {
		return nil, fmt.Errorf("解码事务公共ID '%s' 失败: %w", transactionID, err)
	}

	builder := r.client.TrackedEntity.Create().
		SetKind(params.Kind).
		SetVersionGroupID(gid).
		SetTransactionID(txID).
		SetUpdateType(trackedentity.UpdateType(updateType)).
		SetValidityStart(params.ValidityStart)

	if params.SID != 0 {
		builder.SetSid(params.SID)
	}
	if params.TypeCode != "" {
		builder.SetTypeCode(params.TypeCode)
	}
	if params.Code != "" {
		builder.SetCode(params.Code)
	}
	if params.ValidityEnd != nil {
		builder.SetValidityEnd(*params.ValidityEnd)
	}
	if params.Payload != nil {
		builder.SetPayload(params.Payload)
	}
	if params.ParentGroupID != "" {
		pgid, _, err := idgen.DecodePublicID(params.ParentGroupID)
		if err != nil {
			return nil, fmt.Errorf("解码父版本组公共ID '%s' 失败: %w", params.ParentGroupID, err)
		}
		builder.SetParentGroupID(pgid)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, classifyInsertError(err)
	}

	// 补上事务边再转换，调用方依赖排序键
	withTx, err := r.client.TrackedEntity.Query().
		Where(trackedentity.IDEQ(created.ID)).
		WithTransaction().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toEntityModel(withTx), nil
}

// GetByID 按公共 ID 取单个版本行。
func (r *entTrackedEntityRepository) GetByID(ctx context.Context, id string) (*model.TrackedEntity, error) {
	dbID, _, err := idgen.DecodePublicID(id)
	if err != nil {
		return nil, fmt.Errorf("解码版本行公共ID '%s' 失败: %w", id, err)
	}
	row, err := r.client.TrackedEntity.Query().
		Where(trackedentity.IDEQ(dbID)).
		WithTransaction().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return toEntityModel(row), nil
}

// LatestOfGroup 返回版本组内排序最靠后的版本行（不限分区）。
func (r *entTrackedEntityRepository) LatestOfGroup(ctx context.Context, groupID string) (*model.TrackedEntity, error) {
	gid, _, err := idgen.DecodePublicID(groupID)
	if err != nil {
		return nil, fmt.Errorf("解码版本组公共ID '%s' 失败: %w", groupID, err)
	}
	rows, err := r.client.TrackedEntity.Query().
		Where(trackedentity.VersionGroupIDEQ(gid)).
		WithTransaction().
		All(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, constant.ErrNotFound
	}
	latest := rows[0]
	for _, row := range rows[1:] {
		if orderingKeyOf(latest).Before(orderingKeyOf(row)) {
			latest = row
		}
	}
	return toEntityModel(latest), nil
}

// SetCurrentVersion 更新版本组的当前版本指针；entityID 为空表示清空。
func (r *entTrackedEntityRepository) SetCurrentVersion(ctx context.Context, groupID, entityID string) error {
	gid, _, err := idgen.DecodePublicID(groupID)
	if err != nil {
		return fmt.Errorf("解码版本组公共ID '%s' 失败: %w", groupID, err)
	}

	updater := r.client.VersionGroup.UpdateOneID(gid)
	if entityID == "" {
		updater.ClearCurrentVersionID()
	} else {
		eid, _, err := idgen.DecodePublicID(entityID)
		if err != nil {
			return fmt.Errorf("解码版本行公共ID '%s' 失败: %w", entityID, err)
		}
		updater.SetCurrentVersionID(eid)
	}

	if _, err := updater.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("更新当前版本指针失败: %w", err)
	}
	return nil
}

// LatestApproved 返回各版本组的当前版本。
// 指针行在审批时维护，本查询只读指针，不做任何归并。
func (r *entTrackedEntityRepository) LatestApproved(ctx context.Context, filter repository.EntityFilter) ([]*model.TrackedEntity, error) {
	query := r.client.VersionGroup.Query().
		Where(versiongroup.CurrentVersionIDNotNil())

	if filter.Kind != "" {
		query.Where(versiongroup.HasCurrentVersionWith(trackedentity.KindEQ(filter.Kind)))
	}
	if filter.GroupID != "" {
		gid, _, err := idgen.DecodePublicID(filter.GroupID)
		if err != nil {
			return nil, fmt.Errorf("解码版本组公共ID '%s' 失败: %w", filter.GroupID, err)
		}
		query.Where(versiongroup.IDEQ(gid))
	}

	groups, err := query.
		WithCurrentVersion(func(q *ent.TrackedEntityQuery) {
			q.WithTransaction()
		}).
		All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*model.TrackedEntity, 0, len(groups))
	for _, g := range groups {
		cur := g.Edges.CurrentVersion
		if cur == nil || cur.UpdateType == trackedentity.UpdateTypeDelete {
			continue
		}
		result = append(result, toEntityModel(cur))
	}
	sort.Slice(result, func(i, j int) bool {
		ki, kj := result[i].OrderingKey(), result[j].OrderingKey()
		if c := ki.Compare(kj); c != 0 {
			return c < 0
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// AsAtTransaction 返回每个版本组在给定事务处可见的最新版本。
func (r *entTrackedEntityRepository) AsAtTransaction(ctx context.Context, tx *model.Transaction, filter repository.EntityFilter) ([]*model.TrackedEntity, error) {
	visible, err := visibleAt(tx)
	if err != nil {
		return nil, err
	}
	preds, err := filterPredicates(filter)
	if err != nil {
		return nil, err
	}
	preds = append(preds, visible)

	rows, err := r.client.TrackedEntity.Query().
		Where(preds...).
		WithTransaction().
		All(ctx)
	if err != nil {
		return nil, err
	}
	return reduceLatest(rows), nil
}

// AsAtDate 在 AsAtTransaction 的基础上再按有效期过滤。
func (r *entTrackedEntityRepository) AsAtDate(ctx context.Context, tx *model.Transaction, date time.Time, filter repository.EntityFilter) ([]*model.TrackedEntity, error) {
	snapshot, err := r.AsAtTransaction(ctx, tx, filter)
	if err != nil {
		return nil, err
	}
	result := snapshot[:0]
	for _, e := range snapshot {
		if model.ValidityContains(e.ValidityStart, e.ValidityEnd, date) {
			result = append(result, e)
		}
	}
	return result, nil
}

// VersionsUpTo 返回单个版本组内在给定事务及之前引入的全部版本。
func (r *entTrackedEntityRepository) VersionsUpTo(ctx context.Context, groupID string, tx *model.Transaction) ([]*model.TrackedEntity, error) {
	gid, _, err := idgen.DecodePublicID(groupID)
	if err != nil {
		return nil, fmt.Errorf("解码版本组公共ID '%s' 失败: %w", groupID, err)
	}
	visible, err := visibleAt(tx)
	if err != nil {
		return nil, err
	}

	rows, err := r.client.TrackedEntity.Query().
		Where(trackedentity.VersionGroupIDEQ(gid), visible).
		WithTransaction().
		All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*model.TrackedEntity, 0, len(rows))
	for _, row := range rows {
		result = append(result, toEntityModel(row))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OrderingKey().Before(result[j].OrderingKey())
	})
	return result, nil
}

// GetVersions 按业务键取某实体的全部版本，按事务顺序排列。
func (r *entTrackedEntityRepository) GetVersions(ctx context.Context, kind string, keys map[string]interface{}) ([]*model.TrackedEntity, error) {
	if len(keys) == 0 {
		return nil, constant.ErrNoIdentifyingValue
	}

	preds := []predicate.TrackedEntity{trackedentity.KindEQ(kind)}
	payloadKeys := make(map[string]interface{})
	for field, value := range keys {
		switch field {
		case "sid":
			sid, ok := value.(int)
			if !ok {
				return nil, fmt.Errorf("业务键 sid 必须是整数，得到 %T", value)
			}
			preds = append(preds, trackedentity.SidEQ(sid))
		case "type_code":
			s, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("业务键 type_code 必须是字符串，得到 %T", value)
			}
			preds = append(preds, trackedentity.TypeCodeEQ(s))
		case "code":
			s, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("业务键 code 必须是字符串，得到 %T", value)
			}
			preds = append(preds, trackedentity.CodeEQ(s))
		default:
			// payload 内的业务键无法下推到 SQL，取回后在内存中过滤
			payloadKeys[field] = value
		}
	}

	rows, err := r.client.TrackedEntity.Query().
		Where(preds...).
		WithTransaction().
		All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*model.TrackedEntity, 0, len(rows))
	for _, row := range rows {
		matched := true
		for field, want := range payloadKeys {
			if row.Payload == nil || fmt.Sprint(row.Payload[field]) != fmt.Sprint(want) {
				matched = false
				break
			}
		}
		if matched {
			result = append(result, toEntityModel(row))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OrderingKey().Before(result[j].OrderingKey())
	})
	return result, nil
}

// GroupsTouchedByWorkBasket 返回被指定 workbasket 的事务写过的版本组。
func (r *entTrackedEntityRepository) GroupsTouchedByWorkBasket(ctx context.Context, workbasketID string) ([]string, error) {
	wbID, _, err := idgen.DecodePublicID(workbasketID)
	if err != nil {
		return nil, fmt.Errorf("解码 workbasket 公共ID '%s' 失败: %w", workbasketID, err)
	}

	rows, err := r.client.TrackedEntity.Query().
		Where(trackedentity.HasTransactionWith(transaction.WorkbasketID(wbID))).
		Select(trackedentity.FieldVersionGroupID).
		All(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]struct{}, len(rows))
	var groupIDs []string
	for _, row := range rows {
		if _, ok := seen[row.VersionGroupID]; ok {
			continue
		}
		seen[row.VersionGroupID] = struct{}{}
		publicID, _ := idgen.GeneratePublicID(row.VersionGroupID, idgen.EntityTypeVersionGroup)
		groupIDs = append(groupIDs, publicID)
	}
	return groupIDs, nil
}

// LatestApprovedOutside 返回版本组内由指定 workbasket 之外的
// 已批准事务引入的最新版本；不存在时返回 (nil, nil)。
func (r *entTrackedEntityRepository) LatestApprovedOutside(ctx context.Context, groupID, workbasketID string) (*model.TrackedEntity, error) {
	gid, _, err := idgen.DecodePublicID(groupID)
	if err != nil {
		return nil, fmt.Errorf("解码版本组公共ID '%s' 失败: %w", groupID, err)
	}
	wbID, _, err := idgen.DecodePublicID(workbasketID)
	if err != nil {
		return nil, fmt.Errorf("解码 workbasket 公共ID '%s' 失败: %w", workbasketID, err)
	}

	rows, err := r.client.TrackedEntity.Query().
		Where(
			trackedentity.VersionGroupIDEQ(gid),
			trackedentity.HasTransactionWith(
				transaction.PartitionIn(int(model.PartitionSeedFile), int(model.PartitionRevision)),
				transaction.WorkbasketIDNEQ(wbID),
			),
		).
		WithTransaction().
		All(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	latest := rows[0]
	for _, row := range rows[1:] {
		if orderingKeyOf(latest).Before(orderingKeyOf(row)) {
			latest = row
		}
	}
	return toEntityModel(latest), nil
}

// MaxSID 返回某种类当前最大的 SID（无记录时为 0）。
func (r *entTrackedEntityRepository) MaxSID(ctx context.Context, kind string) (int, error) {
	var v []struct {
		Max int `json:"max"`
	}
	err := r.client.TrackedEntity.Query().
		Where(trackedentity.KindEQ(kind), trackedentity.SidNotNil()).
		Aggregate(ent.Max(trackedentity.FieldSid)).
		Scan(ctx, &v)
	if err != nil {
		return 0, err
	}
	if len(v) == 0 {
		return 0, nil
	}
	return v[0].Max, nil
}

// DependentsAsAt 返回回指 parentGroupID 的指定种类从属记录
// 在给定事务处可见的最新版本。
func (r *entTrackedEntityRepository) DependentsAsAt(ctx context.Context, parentGroupID, kind string, tx *model.Transaction) ([]*model.TrackedEntity, error) {
	pgid, _, err := idgen.DecodePublicID(parentGroupID)
	if err != nil {
		return nil, fmt.Errorf("解码父版本组公共ID '%s' 失败: %w", parentGroupID, err)
	}
	visible, err := visibleAt(tx)
	if err != nil {
		return nil, err
	}

	rows, err := r.client.TrackedEntity.Query().
		Where(
			trackedentity.ParentGroupIDEQ(pgid),
			trackedentity.KindEQ(kind),
			visible,
		).
		WithTransaction().
		All(ctx)
	if err != nil {
		return nil, err
	}
	return reduceLatest(rows), nil
}

// ListForTransaction 返回单个事务引入的全部版本行，
// 按 (record_code, subrecord_code) 排序，同码按插入顺序。
func (r *entTrackedEntityRepository) ListForTransaction(ctx context.Context, transactionID string) ([]*model.TrackedEntity, error) {
	txID, _, err := idgen.DecodePublicID(transactionID)
	if err != nil {
		return nil, fmt.Errorf("解码事务公共ID '%s' 失败: %w", transactionID, err)
	}

	rows, err := r.client.TrackedEntity.Query().
		Where(trackedentity.TransactionIDEQ(txID)).
		Order(ent.Asc(trackedentity.FieldID)).
		WithTransaction().
		All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*model.TrackedEntity, 0, len(rows))
	for _, row := range rows {
		result = append(result, toEntityModel(row))
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].RecordCode() != result[j].RecordCode() {
			return result[i].RecordCode() < result[j].RecordCode()
		}
		return result[i].SubrecordCode() < result[j].SubrecordCode()
	})
	return result, nil
}
