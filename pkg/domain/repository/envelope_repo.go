/*
 * @Description: Envelope 仓储接口
 * @Author: 安知鱼
 * @Date: 2026-02-10 13:29:30
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
)

// EnvelopeRepository 定义了导出 envelope 档案的数据仓储接口
type EnvelopeRepository interface {
	// Create 记录一个已生成的 envelope
	Create(ctx context.Context, envelopeID, xmlFile string) (*model.Envelope, error)

	// LatestForYear 返回指定两位年份下序号最大的 envelope；
	// 当年还没有 envelope 时返回 (nil, nil)。
	LatestForYear(ctx context.Context, yy string) (*model.Envelope, error)

	// ListForYear 返回指定两位年份下的全部 envelope，按 envelope_id 排序
	ListForYear(ctx context.Context, yy string) ([]*model.Envelope, error)

	// MarkDeleted 置删除标记（文件已不可立即物理删除的场景）
	MarkDeleted(ctx context.Context, id string) error
}
