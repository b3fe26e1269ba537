/*
 * @Description: WorkBasket 仓储接口
 * @Author: 安知鱼
 * @Date: 2026-02-10 13:24:49
 */
package repository

import (
	"context"
	"time"

	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
)

// WorkBasketRepository 定义了 workbasket 的数据仓储接口
type WorkBasketRepository interface {
	// Create 创建一个新的 workbasket（初始状态为 editing）
	Create(ctx context.Context, params *model.CreateWorkBasketParams) (*model.WorkBasket, error)

	// GetByID 按公共 ID 取 workbasket
	GetByID(ctx context.Context, id string) (*model.WorkBasket, error)

	// UpdateStatus 更新状态；approver 非空时一并记录审批人
	UpdateStatus(ctx context.Context, id string, status model.WorkBasketStatus, approver string) (*model.WorkBasket, error)

	// ListByStatus 返回处于指定状态的全部 workbasket
	ListByStatus(ctx context.Context, status model.WorkBasketStatus) ([]*model.WorkBasket, error)

	// ListStale 返回指定状态下、updated_at 早于 before 的 workbasket
	//（定时归档任务用）
	ListStale(ctx context.Context, status model.WorkBasketStatus, before time.Time) ([]*model.WorkBasket, error)
}
