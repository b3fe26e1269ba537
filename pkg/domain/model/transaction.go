/*
 * @Description: 事务领域模型
 * @Author: 安知鱼
 * @Date: 2026-02-10 12:01:34
 */
package model

import (
	"context"
	"fmt"
	"time"
)

// Transaction 表示一个有序的变更单元。
// (Partition, Order) 在全库范围内构成严格全序；
// 除审批流程中的分区迁移（draft → revision）外，事务创建后不再修改。
type Transaction struct {
	ID           string    `json:"id"`
	Partition    Partition `json:"partition"`
	Order        int       `json:"order"`
	WorkBasketID string    `json:"workbasket_id"`
	CompositeKey string    `json:"composite_key"`
	CreatedAt    time.Time `json:"created_at"`
}

// OrderingKey 返回事务的全序键。
func (t *Transaction) OrderingKey() OrderingKey {
	return OrderingKey{Partition: t.Partition, Order: t.Order}
}

// MakeCompositeKey 生成事务的复合键 "workbasketID-order"。
func MakeCompositeKey(workbasketID string, order int) string {
	return fmt.Sprintf("%s-%d", workbasketID, order)
}

// currentTxKey 是当前事务在 context 中的私有键类型
type currentTxKey struct{}

// WithCurrentTransaction 把"当前事务"挂到 context 上。
// 快照查询用它来界定可见范围；没有挂载时查询退化为仅见最新批准版本，
// 不存在任何全局兜底。
func WithCurrentTransaction(ctx context.Context, tx *Transaction) context.Context {
	return context.WithValue(ctx, currentTxKey{}, tx)
}

// CurrentTransactionFrom 取出 context 上挂载的当前事务。
func CurrentTransactionFrom(ctx context.Context) (*Transaction, bool) {
	tx, ok := ctx.Value(currentTxKey{}).(*Transaction)
	return tx, ok && tx != nil
}
