/*
 * @Description: 版本化实体仓储接口
 * @Author: 安知鱼
 * @Date: 2026-02-10 13:05:12
 */
package repository

import (
	"context"
	"time"

	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
)

// EntityFilter 限定快照查询的范围；零值表示不过滤。
type EntityFilter struct {
	// Kind 只返回指定种类的实体
	Kind string
	// GroupID 只返回指定版本组
	GroupID string
}

// TrackedEntityRepository 定义了版本化实体的数据仓储接口。
// 版本行只增不改：任何"修改"都表现为同一版本组内的新行。
type TrackedEntityRepository interface {
	// CreateGroup 分配一个新的版本组
	CreateGroup(ctx context.Context) (*model.VersionGroup, error)

	// Insert 在指定版本组内插入一个新的版本行。
	// 目标行 ID 与已有行重合（即原地写入）时必须返回 ErrIllegalMutation。
	Insert(ctx context.Context, groupID, transactionID string, updateType model.UpdateType, params *model.CreateEntityParams) (*model.TrackedEntity, error)

	// GetByID 按公共 ID 取单个版本行
	GetByID(ctx context.Context, id string) (*model.TrackedEntity, error)

	// LatestOfGroup 返回版本组内排序最靠后的版本行（不限分区）
	LatestOfGroup(ctx context.Context, groupID string) (*model.TrackedEntity, error)

	// SetCurrentVersion 更新版本组的当前版本指针；entityID 为空表示清空
	SetCurrentVersion(ctx context.Context, groupID, entityID string) error

	// LatestApproved 返回各版本组的当前版本（仅限当前版本所属事务
	// 处于已批准分区的组），排除 DELETE 版本。
	LatestApproved(ctx context.Context, filter EntityFilter) ([]*model.TrackedEntity, error)

	// AsAtTransaction 返回每个版本组在给定事务处可见的最新版本：
	// 只考虑已批准分区中的事务，以及与 tx 同属一个 workbasket 的
	// draft 事务；排除 DELETE 版本。
	AsAtTransaction(ctx context.Context, tx *model.Transaction, filter EntityFilter) ([]*model.TrackedEntity, error)

	// AsAtDate 在 AsAtTransaction 的基础上再按有效期过滤
	AsAtDate(ctx context.Context, tx *model.Transaction, date time.Time, filter EntityFilter) ([]*model.TrackedEntity, error)

	// VersionsUpTo 返回单个版本组内在给定事务及之前引入的全部版本，
	// 按事务顺序排列。
	VersionsUpTo(ctx context.Context, groupID string, tx *model.Transaction) ([]*model.TrackedEntity, error)

	// GetVersions 按业务键取某实体的全部版本（按事务顺序）。
	// keys 为空时返回 ErrNoIdentifyingValue。
	GetVersions(ctx context.Context, kind string, keys map[string]interface{}) ([]*model.TrackedEntity, error)

	// GroupsTouchedByWorkBasket 返回被指定 workbasket 的事务写过的版本组
	GroupsTouchedByWorkBasket(ctx context.Context, workbasketID string) ([]string, error)

	// LatestApprovedOutside 返回版本组内由指定 workbasket 之外的
	// 已批准事务引入的最新版本；不存在时返回 (nil, nil)。
	LatestApprovedOutside(ctx context.Context, groupID, workbasketID string) (*model.TrackedEntity, error)

	// MaxSID 返回某种类当前最大的 SID（无记录时为 0）
	MaxSID(ctx context.Context, kind string) (int, error)

	// DependentsAsAt 返回回指 parentGroupID 的指定种类从属记录
	// 在给定事务处可见的最新版本。
	DependentsAsAt(ctx context.Context, parentGroupID, kind string, tx *model.Transaction) ([]*model.TrackedEntity, error)

	// ListForTransaction 返回单个事务引入的全部版本行，
	// 按 (record_code, subrecord_code) 排序。
	ListForTransaction(ctx context.Context, transactionID string) ([]*model.TrackedEntity, error)
}
