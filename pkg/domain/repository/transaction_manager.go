/*
 * @Description: 单元工作（数据库事务）管理
 * @Author: 安知鱼
 * @Date: 2026-02-10 13:33:26
 */
package repository

import "context"

// Repositories 结构体聚合了所有在单个数据库事务中可能用到的仓储接口。
type Repositories struct {
	TrackedEntity TrackedEntityRepository
	Transaction   TransactionRepository
	WorkBasket    WorkBasketRepository
	Envelope      EnvelopeRepository
	Setting       SettingRepository
}

// TransactionManager 定义了数据库事务管理器的接口。
// 每个逻辑操作（一次 Create、一次 NewVersion、一次完整导出落库）
// 都在一个数据库事务边界内执行：要么全部提交，要么全部回滚，
// 并发读者永远看不到半截写入。
type TransactionManager interface {
	// Do 方法接收一个函数，该函数会在一个事务中被调用。
	// 它向该函数提供一个包含所有事务性仓储的 Repositories 实例。
	// 如果函数返回错误，事务将回滚；否则，事务将提交。
	Do(ctx context.Context, fn func(repos Repositories) error) error
}
