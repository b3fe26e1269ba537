/*
 * @Description: 事务仓储接口（排序分配与分区迁移）
 * @Author: 安知鱼
 * @Date: 2026-02-10 13:18:03
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
)

// TransactionRepository 定义了事务序列的数据仓储接口。
// Create 是全库唯一需要串行化的点：并发调用者必须拿到严格递增的 order。
type TransactionRepository interface {
	// Create 在指定分区内分配下一个 order 并创建新事务
	Create(ctx context.Context, workbasketID string, partition model.Partition) (*model.Transaction, error)

	// GetByID 按公共 ID 取事务
	GetByID(ctx context.Context, id string) (*model.Transaction, error)

	// ListByIDs 按公共 ID 批量取事务，保持 (partition, order) 排序
	ListByIDs(ctx context.Context, ids []string) ([]*model.Transaction, error)

	// ListByWorkBasket 返回 workbasket 的全部事务，按 (partition, order) 排序
	ListByWorkBasket(ctx context.Context, workbasketID string) ([]*model.Transaction, error)

	// TailByWorkBasket 返回 workbasket 排序最靠后的事务；没有时返回 (nil, nil)
	TailByWorkBasket(ctx context.Context, workbasketID string) (*model.Transaction, error)

	// MovePartition 把一批事务迁入目标分区，order 重排为紧接目标分区
	// 当前最大值之后的连续值，保持相对顺序。迁移前复核所有行仍在
	// draft 分区，已被并发晋升迁走的行触发 ErrPartitionTransition。
	MovePartition(ctx context.Context, ids []string, target model.Partition) ([]*model.Transaction, error)

	// CountEntities 返回事务包含的版本行数量（导出时过滤空事务用）
	CountEntities(ctx context.Context, transactionID string) (int, error)
}
