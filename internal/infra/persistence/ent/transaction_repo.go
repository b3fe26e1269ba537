/*
 * @Description: 事务仓储的 Ent 实现（排序分配与分区迁移）
 * @Author: 安知鱼
 * @Date: 2026-02-10
 */
package ent

import (
	"context"
	"fmt"
	"sync"

	"github.com/anzhiyu-c/tariff-app/pkg/constant"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/repository"
	"github.com/anzhiyu-c/tariff-app/pkg/idgen"

	"github.com/anzhiyu-c/tariff-app/ent"
	"github.com/anzhiyu-c/tariff-app/ent/trackedentity"
	"github.com/anzhiyu-c/tariff-app/ent/transaction"
)

// orderAllocMu 串行化序号分配。
// max+1 的读和写必须互斥，否则并发创建会拿到相同的序号；
// (partition, order) 上的唯一索引兜底，冲突会在提交时报错。
var orderAllocMu sync.Mutex

// entTransactionRepository 是 TransactionRepository 接口的 Ent 实现。
type entTransactionRepository struct {
	client *ent.Client
}

// NewEntTransactionRepository 是 entTransactionRepository 的构造函数。
func NewEntTransactionRepository(client *ent.Client) repository.TransactionRepository {
	return &entTransactionRepository{client: client}
}

// toModel 负责将 ent.Transaction 实体转换为领域模型。
func toTransactionModel(t *ent.Transaction) *model.Transaction {
	if t == nil {
		return nil
	}
	publicID, _ := idgen.GeneratePublicID(t.ID, idgen.EntityTypeTransaction)
	wbPublicID, _ := idgen.GeneratePublicID(t.WorkbasketID, idgen.EntityTypeWorkBasket)
	return &model.Transaction{
		ID:           publicID,
		Partition:    model.Partition(t.Partition),
		Order:        t.Order,
		WorkBasketID: wbPublicID,
		CompositeKey: t.CompositeKey,
		CreatedAt:    t.CreatedAt,
	}
}

// maxOrderIn 返回指定分区当前最大的序号（分区为空时为 0）。
func (r *entTransactionRepository) maxOrderIn(ctx context.Context, partition model.Partition) (int, error) {
	var v []struct {
		Max int `json:"max"`
	}
	err := r.client.Transaction.Query().
		Where(transaction.PartitionEQ(int(partition))).
		Aggregate(ent.Max(transaction.FieldOrder)).
		Scan(ctx, &v)
	if err != nil {
		return 0, err
	}
	if len(v) == 0 {
		return 0, nil
	}
	return v[0].Max, nil
}

// Create 在指定分区内分配下一个序号并创建新事务。
func (r *entTransactionRepository) Create(ctx context.Context, workbasketID string, partition model.Partition) (*model.Transaction, error) {
	wbID, _, err := idgen.DecodePublicID(workbasketID)
	if err != nil {
		return nil, fmt.Errorf("解码 workbasket 公共ID '%s' 失败: %w", workbasketID, err)
	}

	orderAllocMu.Lock()
	defer orderAllocMu.Unlock()

	maxOrder, err := r.maxOrderIn(ctx, partition)
	if err != nil {
		return nil, fmt.Errorf("查询分区 %s 最大序号失败: %w", partition, err)
	}
	next := maxOrder + 1

	created, err := r.client.Transaction.Create().
		SetPartition(int(partition)).
		SetOrder(next).
		SetWorkbasketID(wbID).
		SetCompositeKey(model.MakeCompositeKey(workbasketID, next)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("创建事务失败: %w", err)
	}
	return toTransactionModel(created), nil
}

// GetByID 按公共 ID 取事务。
func (r *entTransactionRepository) GetByID(ctx context.Context, id string) (*model.Transaction, error) {
	dbID, _, err := idgen.DecodePublicID(id)
	if err != nil {
		return nil, fmt.Errorf("解码事务公共ID '%s' 失败: %w", id, err)
	}
	t, err := r.client.Transaction.Get(ctx, dbID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return toTransactionModel(t), nil
}

// ListByIDs 按公共 ID 批量取事务，保持 (partition, order) 排序。
func (r *entTransactionRepository) ListByIDs(ctx context.Context, ids []string) ([]*model.Transaction, error) {
	if len(ids) == 0 {
		return []*model.Transaction{}, nil
	}
	dbIDs, err := idgen.DecodePublicIDBatch(ids)
	if err != nil {
		return nil, err
	}
	rows, err := r.client.Transaction.Query().
		Where(transaction.IDIn(dbIDs...)).
		Order(ent.Asc(transaction.FieldPartition), ent.Asc(transaction.FieldOrder)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*model.Transaction, len(rows))
	for i, row := range rows {
		result[i] = toTransactionModel(row)
	}
	return result, nil
}

// ListByWorkBasket 返回 workbasket 的全部事务，按 (partition, order) 排序。
func (r *entTransactionRepository) ListByWorkBasket(ctx context.Context, workbasketID string) ([]*model.Transaction, error) {
	wbID, _, err := idgen.DecodePublicID(workbasketID)
	if err != nil {
		return nil, fmt.Errorf("解码 workbasket 公共ID '%s' 失败: %w", workbasketID, err)
	}
	rows, err := r.client.Transaction.Query().
		Where(transaction.WorkbasketID(wbID)).
		Order(ent.Asc(transaction.FieldPartition), ent.Asc(transaction.FieldOrder)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*model.Transaction, len(rows))
	for i, row := range rows {
		result[i] = toTransactionModel(row)
	}
	return result, nil
}

// TailByWorkBasket 返回 workbasket 排序最靠后的事务；没有时返回 (nil, nil)。
func (r *entTransactionRepository) TailByWorkBasket(ctx context.Context, workbasketID string) (*model.Transaction, error) {
	wbID, _, err := idgen.DecodePublicID(workbasketID)
	if err != nil {
		return nil, fmt.Errorf("解码 workbasket 公共ID '%s' 失败: %w", workbasketID, err)
	}
	row, err := r.client.Transaction.Query().
		Where(transaction.WorkbasketID(wbID)).
		Order(ent.Desc(transaction.FieldPartition), ent.Desc(transaction.FieldOrder)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toTransactionModel(row), nil
}

// ensureDraftRows 复核一批事务行全部仍在 draft 分区，
// 有任何一行已被迁走时整体拒绝。
func ensureDraftRows(rows []*ent.Transaction) error {
	for _, row := range rows {
		if model.Partition(row.Partition) != model.PartitionDraft {
			return fmt.Errorf("%w: 事务 %d 已在 %s 分区", constant.ErrPartitionTransition, row.ID, model.Partition(row.Partition))
		}
	}
	return nil
}

// MovePartition 把一批事务迁入目标分区，序号重排为紧接目标分区
// 当前最大值之后的连续值，保持相对顺序。composite_key 跟随新序号更新。
func (r *entTransactionRepository) MovePartition(ctx context.Context, ids []string, target model.Partition) ([]*model.Transaction, error) {
	if len(ids) == 0 {
		return []*model.Transaction{}, nil
	}
	dbIDs, err := idgen.DecodePublicIDBatch(ids)
	if err != nil {
		return nil, err
	}

	orderAllocMu.Lock()
	defer orderAllocMu.Unlock()

	rows, err := r.client.Transaction.Query().
		Where(transaction.IDIn(dbIDs...)).
		Order(ent.Asc(transaction.FieldPartition), ent.Asc(transaction.FieldOrder)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) != len(dbIDs) {
		return nil, constant.ErrNotFound
	}
	// 服务层在锁外校验过分区，并发晋升可能已抢先迁走同一批事务，
	// 持锁重读后必须复核，否则会把已晋升的行重新编号
	if err := ensureDraftRows(rows); err != nil {
		return nil, err
	}

	next, err := r.maxOrderIn(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("查询分区 %s 最大序号失败: %w", target, err)
	}

	result := make([]*model.Transaction, 0, len(rows))
	for _, row := range rows {
		next++
		wbPublicID, _ := idgen.GeneratePublicID(row.WorkbasketID, idgen.EntityTypeWorkBasket)
		updated, err := r.client.Transaction.UpdateOneID(row.ID).
			SetPartition(int(target)).
			SetOrder(next).
			SetCompositeKey(model.MakeCompositeKey(wbPublicID, next)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("迁移事务 %d 到分区 %s 失败: %w", row.ID, target, err)
		}
		result = append(result, toTransactionModel(updated))
	}
	return result, nil
}

// CountEntities 返回事务包含的版本行数量。
func (r *entTransactionRepository) CountEntities(ctx context.Context, transactionID string) (int, error) {
	dbID, _, err := idgen.DecodePublicID(transactionID)
	if err != nil {
		return 0, fmt.Errorf("解码事务公共ID '%s' 失败: %w", transactionID, err)
	}
	n, err := r.client.TrackedEntity.Query().
		Where(trackedentity.TransactionIDEQ(dbID)).
		Count(ctx)
	if err != nil {
		return 0, err
	}
	return n, nil
}
