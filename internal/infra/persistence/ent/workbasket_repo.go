/*
 * @Description: WorkBasket 仓储的 Ent 实现
 * @Author: 安知鱼
 * @Date: 2026-02-10
 */
package ent

import (
	"context"
	"fmt"
	"time"

	"github.com/anzhiyu-c/tariff-app/pkg/constant"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/repository"
	"github.com/anzhiyu-c/tariff-app/pkg/idgen"

	"github.com/anzhiyu-c/tariff-app/ent"
	"github.com/anzhiyu-c/tariff-app/ent/workbasket"
)

// entWorkBasketRepository 是 WorkBasketRepository 接口的 Ent 实现。
type entWorkBasketRepository struct {
	client *ent.Client
}

// NewEntWorkBasketRepository 是 entWorkBasketRepository 的构造函数。
func NewEntWorkBasketRepository(client *ent.Client) repository.WorkBasketRepository {
	return &entWorkBasketRepository{client: client}
}

// toModel 负责将 ent.WorkBasket 实体转换为领域模型。
func toWorkBasketModel(wb *ent.WorkBasket) *model.WorkBasket {
	if wb == nil {
		return nil
	}
	publicID, _ := idgen.GeneratePublicID(wb.ID, idgen.EntityTypeWorkBasket)
	return &model.WorkBasket{
		ID:        publicID,
		Title:     wb.Title,
		Reason:    wb.Reason,
		Status:    model.WorkBasketStatus(wb.Status),
		Author:    wb.Author,
		Approver:  wb.Approver,
		CreatedAt: wb.CreatedAt,
		UpdatedAt: wb.UpdatedAt,
	}
}

// Create 创建一个新的 workbasket（初始状态为 editing）。
func (r *entWorkBasketRepository) Create(ctx context.Context, params *model.CreateWorkBasketParams) (*model.WorkBasket, error) {
	created, err := r.client.WorkBasket.Create().
		SetTitle(params.Title).
		SetReason(params.Reason).
		SetAuthor(params.Author).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("创建 workbasket 失败: %w", err)
	}
	return toWorkBasketModel(created), nil
}

// GetByID 按公共 ID 取 workbasket。
func (r *entWorkBasketRepository) GetByID(ctx context.Context, id string) (*model.WorkBasket, error) {
	dbID, _, err := idgen.DecodePublicID(id)
	if err != nil {
		return nil, fmt.Errorf("解码 workbasket 公共ID '%s' 失败: %w", id, err)
	}
	wb, err := r.client.WorkBasket.Get(ctx, dbID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return toWorkBasketModel(wb), nil
}

// UpdateStatus 更新状态；approver 非空时一并记录审批人。
// 状态机合法性由服务层校验，这里只做持久化。
func (r *entWorkBasketRepository) UpdateStatus(ctx context.Context, id string, status model.WorkBasketStatus, approver string) (*model.WorkBasket, error) {
	dbID, _, err := idgen.DecodePublicID(id)
	if err != nil {
		return nil, fmt.Errorf("解码 workbasket 公共ID '%s' 失败: %w", id, err)
	}

	updater := r.client.WorkBasket.UpdateOneID(dbID).
		SetStatus(workbasket.Status(status))
	if approver != "" {
		updater.SetApprover(approver)
	}

	updated, err := updater.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("更新 workbasket 状态失败: %w", err)
	}
	return toWorkBasketModel(updated), nil
}

// ListByStatus 返回处于指定状态的全部 workbasket。
func (r *entWorkBasketRepository) ListByStatus(ctx context.Context, status model.WorkBasketStatus) ([]*model.WorkBasket, error) {
	rows, err := r.client.WorkBasket.Query().
		Where(workbasket.StatusEQ(workbasket.Status(status))).
		Order(ent.Asc(workbasket.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*model.WorkBasket, len(rows))
	for i, row := range rows {
		result[i] = toWorkBasketModel(row)
	}
	return result, nil
}

// ListStale 返回指定状态下、updated_at 早于 before 的 workbasket。
func (r *entWorkBasketRepository) ListStale(ctx context.Context, status model.WorkBasketStatus, before time.Time) ([]*model.WorkBasket, error) {
	rows, err := r.client.WorkBasket.Query().
		Where(
			workbasket.StatusEQ(workbasket.Status(status)),
			workbasket.UpdatedAtLT(before),
		).
		Order(ent.Asc(workbasket.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*model.WorkBasket, len(rows))
	for i, row := range rows {
		result[i] = toWorkBasketModel(row)
	}
	return result, nil
}
