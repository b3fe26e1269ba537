/*
 * @Description: 版本化实体领域模型（版本组 / 版本行 / 排序键）
 * @Author: 安知鱼
 * @Date: 2026-02-10 11:40:21
 */
package model

import (
	"time"
)

// UpdateType 表示版本行记录的变更类型。
// 一个版本组的第一个版本必须是 CREATE，后续为 UPDATE，
// 最后一个版本可以是 DELETE；DELETE 之后版本组即关闭。
type UpdateType string

const (
	UpdateTypeCreate UpdateType = "create"
	UpdateTypeUpdate UpdateType = "update"
	UpdateTypeDelete UpdateType = "delete"
)

// Partition 表示事务所属的分区，分区值本身编码了时间上的先后：
// seed_file 中的所有事务先于 revision，revision 先于 draft。
type Partition int

const (
	PartitionSeedFile Partition = 1
	PartitionRevision Partition = 2
	PartitionDraft    Partition = 3
)

// Approved 判断该分区是否为已批准分区（seed_file / revision）。
func (p Partition) Approved() bool {
	return p == PartitionSeedFile || p == PartitionRevision
}

func (p Partition) String() string {
	switch p {
	case PartitionSeedFile:
		return "seed_file"
	case PartitionRevision:
		return "revision"
	case PartitionDraft:
		return "draft"
	}
	return "unknown"
}

// OrderingKey 是 (partition, order) 组成的全序键。
type OrderingKey struct {
	Partition Partition
	Order     int
}

// Compare 比较两个排序键，返回 -1/0/1。
func (k OrderingKey) Compare(other OrderingKey) int {
	if k.Partition != other.Partition {
		if k.Partition < other.Partition {
			return -1
		}
		return 1
	}
	if k.Order != other.Order {
		if k.Order < other.Order {
			return -1
		}
		return 1
	}
	return 0
}

// Before 判断 k 是否严格先于 other。
func (k OrderingKey) Before(other OrderingKey) bool {
	return k.Compare(other) < 0
}

// VersionGroup 表示一个业务实体跨越所有版本的逻辑身份。
// CurrentVersionID 指向当前权威版本；当最新批准版本为 DELETE 时为空。
type VersionGroup struct {
	ID               string     `json:"id"`
	CurrentVersionID string     `json:"current_version_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// TrackedEntity 表示业务实体的单个不可变版本行。
// 所有实体种类共用同一张多态表，以 Kind 作为判别字段，
// 种类特有的业务字段存放在 Payload 中。
type TrackedEntity struct {
	ID             string         `json:"id"`
	Kind           string         `json:"kind"`
	VersionGroupID string         `json:"version_group_id"`
	TransactionID  string         `json:"transaction_id"`
	UpdateType     UpdateType     `json:"update_type"`

	// 业务标识字段，按种类取用（见 kinds.go 的 IdentifyingFields）
	SID      int    `json:"sid,omitempty"`
	TypeCode string `json:"type_code,omitempty"`
	Code     string `json:"code,omitempty"`

	// 有效期区间，两端均为闭区间；End 为空表示无限期有效
	ValidityStart time.Time  `json:"validity_start"`
	ValidityEnd   *time.Time `json:"validity_end,omitempty"`

	// 种类特有字段
	Payload map[string]interface{} `json:"payload,omitempty"`

	// 从属记录（如描述）回指其父实体的版本组；非从属记录为空
	ParentGroupID string `json:"parent_group_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	// 查询时解析出的所属事务（用于排序与快照判定），可能为空
	Transaction *Transaction `json:"transaction,omitempty"`
}

// OrderingKey 返回该版本行所属事务的排序键。
// 调用前提：Transaction 已被解析。
func (e *TrackedEntity) OrderingKey() OrderingKey {
	if e.Transaction == nil {
		return OrderingKey{}
	}
	return e.Transaction.OrderingKey()
}

// IdentifyingValues 按种类注册表提取该版本行的业务键值。
func (e *TrackedEntity) IdentifyingValues() map[string]interface{} {
	info, ok := KindByName(e.Kind)
	if !ok {
		return nil
	}
	values := make(map[string]interface{}, len(info.IdentifyingFields))
	for _, field := range info.IdentifyingFields {
		switch field {
		case "sid":
			values[field] = e.SID
		case "type_code":
			values[field] = e.TypeCode
		case "code":
			values[field] = e.Code
		default:
			if e.Payload != nil {
				values[field] = e.Payload[field]
			}
		}
	}
	return values
}

// RecordCode 返回该版本行种类的 TARIC record code。
func (e *TrackedEntity) RecordCode() string {
	info, _ := KindByName(e.Kind)
	return info.RecordCode
}

// SubrecordCode 返回该版本行种类的 TARIC subrecord code。
func (e *TrackedEntity) SubrecordCode() string {
	info, _ := KindByName(e.Kind)
	return info.SubrecordCode
}

// CreateEntityParams 创建首个版本（CREATE）的参数
type CreateEntityParams struct {
	Kind          string
	SID           int
	TypeCode      string
	Code          string
	ValidityStart time.Time
	ValidityEnd   *time.Time
	Payload       map[string]interface{}
	ParentGroupID string
}

// NewVersionParams 追加版本（UPDATE / DELETE）的参数。
// 除 UpdateType 外，零值字段沿用旧版本的值，Changes 中的字段覆盖旧值。
type NewVersionParams struct {
	UpdateType UpdateType
	Changes    map[string]interface{}
}

// OverlayChanges 把 changes 覆盖到 base 版本行的字段全集之上，
// 返回一份用于插入新行的参数（copy-on-write，不触碰 base 本身）。
func OverlayChanges(base *TrackedEntity, changes map[string]interface{}) CreateEntityParams {
	params := CreateEntityParams{
		Kind:          base.Kind,
		SID:           base.SID,
		TypeCode:      base.TypeCode,
		Code:          base.Code,
		ValidityStart: base.ValidityStart,
		ValidityEnd:   base.ValidityEnd,
		ParentGroupID: base.ParentGroupID,
	}
	params.Payload = make(map[string]interface{}, len(base.Payload)+len(changes))
	for k, v := range base.Payload {
		params.Payload[k] = v
	}
	for k, v := range changes {
		switch k {
		case "sid":
			if sid, ok := v.(int); ok {
				params.SID = sid
			}
		case "type_code":
			if s, ok := v.(string); ok {
				params.TypeCode = s
			}
		case "code":
			if s, ok := v.(string); ok {
				params.Code = s
			}
		case "validity_start":
			if t, ok := v.(time.Time); ok {
				params.ValidityStart = t
			}
		case "validity_end":
			switch end := v.(type) {
			case nil:
				params.ValidityEnd = nil
			case time.Time:
				params.ValidityEnd = &end
			case *time.Time:
				params.ValidityEnd = end
			}
		case "parent_group_id":
			if s, ok := v.(string); ok {
				params.ParentGroupID = s
			}
		default:
			params.Payload[k] = v
		}
	}
	return params
}
