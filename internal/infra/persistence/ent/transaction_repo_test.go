package ent

import (
	"errors"
	"strings"
	"testing"

	"github.com/anzhiyu-c/tariff-app/pkg/constant"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"

	"github.com/anzhiyu-c/tariff-app/ent"
)

func TestEnsureDraftRows(t *testing.T) {
	tests := []struct {
		name        string
		rows        []*ent.Transaction
		wantErr     bool
		wantMessage string
	}{
		{name: "空集合", rows: nil},
		{
			name: "全部仍在草稿分区",
			rows: []*ent.Transaction{
				{ID: 1, Partition: int(model.PartitionDraft)},
				{ID: 2, Partition: int(model.PartitionDraft)},
			},
		},
		{
			name: "已被并发晋升到 revision",
			rows: []*ent.Transaction{
				{ID: 1, Partition: int(model.PartitionDraft)},
				{ID: 2, Partition: int(model.PartitionRevision)},
			},
			wantErr:     true,
			wantMessage: "事务 2 已在 revision 分区",
		},
		{
			name: "seed_file 分区的行不可迁移",
			rows: []*ent.Transaction{
				{ID: 3, Partition: int(model.PartitionSeedFile)},
			},
			wantErr:     true,
			wantMessage: "事务 3 已在 seed_file 分区",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ensureDraftRows(tt.rows)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("ensureDraftRows() = %v, 期望 nil", err)
				}
				return
			}
			if !errors.Is(err, constant.ErrPartitionTransition) {
				t.Errorf("err = %v, 期望 ErrPartitionTransition", err)
			}
			if !strings.Contains(err.Error(), tt.wantMessage) {
				t.Errorf("错误信息 = %q, 期望包含 %q", err.Error(), tt.wantMessage)
			}
		})
	}
}
