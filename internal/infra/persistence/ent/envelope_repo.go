/*
 * @Description: Envelope 档案仓储的 Ent 实现
 * @Author: 安知鱼
 * @Date: 2026-02-10
 */
package ent

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/tariff-app/pkg/constant"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/repository"
	"github.com/anzhiyu-c/tariff-app/pkg/idgen"

	"github.com/anzhiyu-c/tariff-app/ent"
	"github.com/anzhiyu-c/tariff-app/ent/envelope"
)

// entEnvelopeRepository 是 EnvelopeRepository 接口的 Ent 实现。
type entEnvelopeRepository struct {
	client *ent.Client
}

// NewEntEnvelopeRepository 是 entEnvelopeRepository 的构造函数。
func NewEntEnvelopeRepository(client *ent.Client) repository.EnvelopeRepository {
	return &entEnvelopeRepository{client: client}
}

// toModel 负责将 ent.Envelope 实体转换为领域模型。
func toEnvelopeModel(e *ent.Envelope) *model.Envelope {
	if e == nil {
		return nil
	}
	publicID, _ := idgen.GeneratePublicID(e.ID, idgen.EntityTypeEnvelope)
	return &model.Envelope{
		ID:         publicID,
		EnvelopeID: e.EnvelopeID,
		XMLFile:    e.XMLFile,
		Deleted:    e.Deleted,
		CreatedAt:  e.CreatedAt,
	}
}

// Create 记录一个已生成的 envelope。
func (r *entEnvelopeRepository) Create(ctx context.Context, envelopeID, xmlFile string) (*model.Envelope, error) {
	created, err := r.client.Envelope.Create().
		SetEnvelopeID(envelopeID).
		SetXMLFile(xmlFile).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("创建 envelope 档案失败: %w", err)
	}
	return toEnvelopeModel(created), nil
}

// LatestForYear 返回指定两位年份下序号最大的 envelope；
// 当年还没有 envelope 时返回 (nil, nil)。
// envelope_id 定长且序号零填充，字典序即数值序。
// 已打删除标记的行也参与计算，序号不回收。
func (r *entEnvelopeRepository) LatestForYear(ctx context.Context, yy string) (*model.Envelope, error) {
	row, err := r.client.Envelope.Query().
		Where(envelope.EnvelopeIDHasPrefix(yy)).
		Order(ent.Desc(envelope.FieldEnvelopeID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toEnvelopeModel(row), nil
}

// ListForYear 返回指定两位年份下的全部 envelope，按 envelope_id 排序。
func (r *entEnvelopeRepository) ListForYear(ctx context.Context, yy string) ([]*model.Envelope, error) {
	rows, err := r.client.Envelope.Query().
		Where(envelope.EnvelopeIDHasPrefix(yy)).
		Order(ent.Asc(envelope.FieldEnvelopeID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*model.Envelope, len(rows))
	for i, row := range rows {
		result[i] = toEnvelopeModel(row)
	}
	return result, nil
}

// MarkDeleted 置删除标记。
func (r *entEnvelopeRepository) MarkDeleted(ctx context.Context, id string) error {
	dbID, _, err := idgen.DecodePublicID(id)
	if err != nil {
		return fmt.Errorf("解码 envelope 公共ID '%s' 失败: %w", id, err)
	}
	if _, err := r.client.Envelope.UpdateOneID(dbID).SetDeleted(true).Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("标记 envelope 删除失败: %w", err)
	}
	return nil
}
