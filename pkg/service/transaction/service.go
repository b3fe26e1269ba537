/*
 * @Description: 事务序列服务（开启 / 晋升 / 回退当前版本指针）
 * @Author: 安知鱼
 * @Date: 2026-02-10
 */
package transaction

import (
	"context"
	"fmt"
	"log"

	"github.com/anzhiyu-c/tariff-app/pkg/constant"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/repository"
)

// promoteBatchSize 单个数据库事务内晋升的事务条数上限，
// 避免一次审批形成单个巨型提交。
const promoteBatchSize = 200

// Service 事务序列服务接口。
type Service interface {
	// Begin 为 workbasket 开启一个新事务并分配下一个序号。
	// seeding 为 true 时事务进入 seed_file 分区（批量导入），否则进入 draft。
	Begin(ctx context.Context, workbasket *model.WorkBasket, seeding bool) (*model.Transaction, error)

	// Promote 把一批草稿事务晋升到 revision 分区。
	// 仅允许 draft → revision；输入中任何一条不在 draft 分区，
	// 或目标不是 revision，都返回 ErrPartitionTransition。
	Promote(ctx context.Context, txIDs []string, target model.Partition) ([]*model.Transaction, error)

	// RevertCurrentVersions 把 workbasket 碰过的每个版本组的当前版本指针
	// 回退到该 workbasket 之外最新的已批准版本（没有则清空），不删除任何行。
	RevertCurrentVersions(ctx context.Context, workbasket *model.WorkBasket) error
}

type transactionServiceImpl struct {
	txRepo     repository.TransactionRepository
	entityRepo repository.TrackedEntityRepository
	txManager  repository.TransactionManager
}

// NewTransactionService 创建事务序列服务。
func NewTransactionService(
	txRepo repository.TransactionRepository,
	entityRepo repository.TrackedEntityRepository,
	txManager repository.TransactionManager,
) Service {
	return &transactionServiceImpl{
		txRepo:     txRepo,
		entityRepo: entityRepo,
		txManager:  txManager,
	}
}

// Begin 为 workbasket 开启一个新事务并分配下一个序号。
func (s *transactionServiceImpl) Begin(ctx context.Context, workbasket *model.WorkBasket, seeding bool) (*model.Transaction, error) {
	if workbasket == nil {
		return nil, fmt.Errorf("workbasket 不能为空")
	}
	partition := model.PartitionDraft
	if seeding {
		partition = model.PartitionSeedFile
	}
	tx, err := s.txRepo.Create(ctx, workbasket.ID, partition)
	if err != nil {
		return nil, fmt.Errorf("开启事务失败: %w", err)
	}
	return tx, nil
}

// Promote 把一批草稿事务晋升到 revision 分区。
// 序号重排为紧接 revision 当前最大值之后的连续值，保持相对顺序；
// 大批量按固定批次分段提交。
func (s *transactionServiceImpl) Promote(ctx context.Context, txIDs []string, target model.Partition) ([]*model.Transaction, error) {
	if target != model.PartitionRevision {
		return nil, constant.ErrPartitionTransition
	}
	if len(txIDs) == 0 {
		return []*model.Transaction{}, nil
	}

	// 先整体校验再迁移，避免迁移到一半才发现不合法的输入
	candidates, err := s.txRepo.ListByIDs(ctx, txIDs)
	if err != nil {
		return nil, fmt.Errorf("读取待晋升事务失败: %w", err)
	}
	if len(candidates) != len(txIDs) {
		return nil, constant.ErrNotFound
	}
	for _, tx := range candidates {
		if tx.Partition != model.PartitionDraft {
			return nil, fmt.Errorf("%w: 事务 %s 处于 %s 分区", constant.ErrPartitionTransition, tx.ID, tx.Partition)
		}
	}

	ordered := make([]string, len(candidates))
	for i, tx := range candidates {
		ordered[i] = tx.ID
	}

	var moved []*model.Transaction
	for start := 0; start < len(ordered); start += promoteBatchSize {
		end := start + promoteBatchSize
		if end > len(ordered) {
			end = len(ordered)
		}
		batch := ordered[start:end]

		err := s.txManager.Do(ctx, func(repos repository.Repositories) error {
			batchMoved, err := repos.Transaction.MovePartition(ctx, batch, target)
			if err != nil {
				return err
			}
			moved = append(moved, batchMoved...)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("晋升事务批次 [%d, %d) 失败: %w", start, end, err)
		}
	}

	log.Printf("已晋升 %d 条事务到 %s 分区", len(moved), target)
	return moved, nil
}

// RevertCurrentVersions 回退 workbasket 对当前版本指针的全部影响。
func (s *transactionServiceImpl) RevertCurrentVersions(ctx context.Context, workbasket *model.WorkBasket) error {
	if workbasket == nil {
		return fmt.Errorf("workbasket 不能为空")
	}
	groupIDs, err := s.entityRepo.GroupsTouchedByWorkBasket(ctx, workbasket.ID)
	if err != nil {
		return fmt.Errorf("查询 workbasket 碰过的版本组失败: %w", err)
	}
	if len(groupIDs) == 0 {
		return nil
	}

	return s.txManager.Do(ctx, func(repos repository.Repositories) error {
		for _, groupID := range groupIDs {
			outside, err := repos.TrackedEntity.LatestApprovedOutside(ctx, groupID, workbasket.ID)
			if err != nil {
				return fmt.Errorf("查询版本组 %s 的外部批准版本失败: %w", groupID, err)
			}
			pointer := ""
			if outside != nil && outside.UpdateType != model.UpdateTypeDelete {
				pointer = outside.ID
			}
			if err := repos.TrackedEntity.SetCurrentVersion(ctx, groupID, pointer); err != nil {
				return fmt.Errorf("回退版本组 %s 的当前版本指针失败: %w", groupID, err)
			}
		}
		return nil
	})
}
