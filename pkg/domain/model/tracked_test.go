package model

import (
	"testing"
	"time"
)

func TestOrderingKeyCompare(t *testing.T) {
	tests := []struct {
		name     string
		a        OrderingKey
		b        OrderingKey
		expected int
	}{
		{
			name:     "相同分区相同序号",
			a:        OrderingKey{Partition: PartitionRevision, Order: 5},
			b:        OrderingKey{Partition: PartitionRevision, Order: 5},
			expected: 0,
		},
		{
			name:     "seed_file 先于 revision",
			a:        OrderingKey{Partition: PartitionSeedFile, Order: 999},
			b:        OrderingKey{Partition: PartitionRevision, Order: 1},
			expected: -1,
		},
		{
			name:     "revision 先于 draft",
			a:        OrderingKey{Partition: PartitionRevision, Order: 999},
			b:        OrderingKey{Partition: PartitionDraft, Order: 1},
			expected: -1,
		},
		{
			name:     "同分区按序号比较",
			a:        OrderingKey{Partition: PartitionRevision, Order: 3},
			b:        OrderingKey{Partition: PartitionRevision, Order: 7},
			expected: -1,
		},
		{
			name:     "同分区序号大者在后",
			a:        OrderingKey{Partition: PartitionDraft, Order: 10},
			b:        OrderingKey{Partition: PartitionDraft, Order: 2},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.expected {
				t.Errorf("Compare() = %d, 期望 %d", got, tt.expected)
			}
			// Compare 必须反对称
			if got := tt.b.Compare(tt.a); got != -tt.expected {
				t.Errorf("反向 Compare() = %d, 期望 %d", got, -tt.expected)
			}
		})
	}
}

func TestOrderingKeyBefore(t *testing.T) {
	a := OrderingKey{Partition: PartitionSeedFile, Order: 100}
	b := OrderingKey{Partition: PartitionDraft, Order: 1}
	if !a.Before(b) {
		t.Error("seed_file 分区应先于 draft 分区")
	}
	if b.Before(a) {
		t.Error("draft 分区不应先于 seed_file 分区")
	}
	if a.Before(a) {
		t.Error("Before 对自身应为 false")
	}
}

func TestPartitionApproved(t *testing.T) {
	tests := []struct {
		name      string
		partition Partition
		expected  bool
	}{
		{name: "seed_file 已批准", partition: PartitionSeedFile, expected: true},
		{name: "revision 已批准", partition: PartitionRevision, expected: true},
		{name: "draft 未批准", partition: PartitionDraft, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.partition.Approved(); got != tt.expected {
				t.Errorf("Approved() = %v, 期望 %v", got, tt.expected)
			}
		})
	}
}

func TestOverlayChanges(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	base := &TrackedEntity{
		Kind:          "footnote",
		TypeCode:      "TN",
		Code:          "001",
		ValidityStart: start,
		ValidityEnd:   &end,
		Payload:       map[string]interface{}{"description": "原始描述", "extra": 1},
	}

	t.Run("不给任何变更时完整继承旧版本", func(t *testing.T) {
		params := OverlayChanges(base, nil)
		if params.Kind != "footnote" || params.TypeCode != "TN" || params.Code != "001" {
			t.Errorf("业务键未继承: %+v", params)
		}
		if !params.ValidityStart.Equal(start) || params.ValidityEnd == nil || !params.ValidityEnd.Equal(end) {
			t.Errorf("有效期未继承: %+v", params)
		}
		if params.Payload["description"] != "原始描述" {
			t.Errorf("payload 未继承: %+v", params.Payload)
		}
	})

	t.Run("覆盖业务字段与 payload 字段", func(t *testing.T) {
		params := OverlayChanges(base, map[string]interface{}{
			"code":        "002",
			"description": "新描述",
		})
		if params.Code != "002" {
			t.Errorf("code = %q, 期望 002", params.Code)
		}
		if params.Payload["description"] != "新描述" {
			t.Errorf("description = %v, 期望 新描述", params.Payload["description"])
		}
		if params.Payload["extra"] != 1 {
			t.Errorf("未变更的 payload 字段应保留, got %v", params.Payload["extra"])
		}
	})

	t.Run("validity_end 可显式置空", func(t *testing.T) {
		params := OverlayChanges(base, map[string]interface{}{"validity_end": nil})
		if params.ValidityEnd != nil {
			t.Errorf("validity_end 应为 nil, got %v", params.ValidityEnd)
		}
	})

	t.Run("validity_end 接受 time.Time 值", func(t *testing.T) {
		newEnd := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
		params := OverlayChanges(base, map[string]interface{}{"validity_end": newEnd})
		if params.ValidityEnd == nil || !params.ValidityEnd.Equal(newEnd) {
			t.Errorf("validity_end = %v, 期望 %v", params.ValidityEnd, newEnd)
		}
	})

	t.Run("不修改 base 本身", func(t *testing.T) {
		_ = OverlayChanges(base, map[string]interface{}{"description": "污染"})
		if base.Payload["description"] != "原始描述" {
			t.Errorf("base 被修改: %v", base.Payload["description"])
		}
	})
}

func TestIdentifyingValues(t *testing.T) {
	tests := []struct {
		name     string
		entity   *TrackedEntity
		expected map[string]interface{}
	}{
		{
			name:     "footnote 按 type_code + code 识别",
			entity:   &TrackedEntity{Kind: "footnote", TypeCode: "TN", Code: "001"},
			expected: map[string]interface{}{"type_code": "TN", "code": "001"},
		},
		{
			name:     "measure 按 sid 识别",
			entity:   &TrackedEntity{Kind: "measure", SID: 20001},
			expected: map[string]interface{}{"sid": 20001},
		},
		{
			name:     "未注册种类返回 nil",
			entity:   &TrackedEntity{Kind: "unknown_kind", SID: 1},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.entity.IdentifyingValues()
			if len(got) != len(tt.expected) {
				t.Fatalf("IdentifyingValues() = %v, 期望 %v", got, tt.expected)
			}
			for k, v := range tt.expected {
				if got[k] != v {
					t.Errorf("字段 %s = %v, 期望 %v", k, got[k], v)
				}
			}
		})
	}
}
