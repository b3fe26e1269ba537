package ent

import (
	"errors"
	"fmt"
	"testing"

	"github.com/anzhiyu-c/tariff-app/pkg/constant"
)

func TestClassifyInsertError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		wantIllegal     bool
		wantWrapMessage bool
	}{
		{name: "外键约束错误不映射为非法改写", err: errors.New("FOREIGN KEY constraint failed"), wantWrapMessage: true},
		{name: "检查约束错误不映射为非法改写", err: errors.New("CHECK constraint failed: tracked_entities"), wantWrapMessage: true},
		{name: "普通数据库错误按插入失败包装", err: errors.New("database is locked"), wantWrapMessage: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyInsertError(tt.err)
			if errors.Is(got, constant.ErrIllegalMutation) != tt.wantIllegal {
				t.Errorf("classifyInsertError(%v) = %v, 非法改写判定期望 %v", tt.err, got, tt.wantIllegal)
			}
			if tt.wantWrapMessage {
				if !errors.Is(got, tt.err) {
					t.Errorf("包装后的错误应保留原始错误链, got %v", got)
				}
				want := fmt.Sprintf("插入版本行失败: %v", tt.err)
				if got.Error() != want {
					t.Errorf("错误信息 = %q, 期望 %q", got.Error(), want)
				}
			}
		})
	}
}
