package envelope

import (
	"errors"
	"testing"
	"time"

	"github.com/anzhiyu-c/tariff-app/pkg/constant"
)

func TestFormatEnvelopeID(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		counter  int
		expected string
	}{
		{name: "常规年份与序号", year: 24, counter: 1, expected: "240001"},
		{name: "四位序号", year: 24, counter: 9999, expected: "249999"},
		{name: "跨世纪年份取后两位", year: 2031, counter: 7, expected: "310007"},
		{name: "零零年", year: 2100, counter: 1, expected: "000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatEnvelopeID(tt.year, tt.counter); got != tt.expected {
				t.Errorf("FormatEnvelopeID(%d, %d) = %q, 期望 %q", tt.year, tt.counter, got, tt.expected)
			}
		})
	}
}

func TestParseEnvelopeID(t *testing.T) {
	t.Run("合法标识符", func(t *testing.T) {
		year, counter, err := ParseEnvelopeID("240013")
		if err != nil {
			t.Fatalf("解析失败: %v", err)
		}
		if year != 24 || counter != 13 {
			t.Errorf("解析结果 = (%d, %d), 期望 (24, 13)", year, counter)
		}
	})

	for _, bad := range []string{"", "24001", "2400001", "24a001", "DIT240001"} {
		t.Run("非法标识符 "+bad, func(t *testing.T) {
			if _, _, err := ParseEnvelopeID(bad); err == nil {
				t.Errorf("ParseEnvelopeID(%q) 应报错", bad)
			}
		})
	}
}

func TestNextEnvelopeID(t *testing.T) {
	in2024 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	in2025 := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		prev     string
		now      time.Time
		seed     int
		expected string
		wantErr  error
	}{
		{name: "首个 envelope 从 seed 起步", prev: "", now: in2024, seed: 1, expected: "240001"},
		{name: "自定义 seed", prev: "", now: in2024, seed: 200, expected: "240200"},
		{name: "seed 小于 1 时按 1 处理", prev: "", now: in2024, seed: 0, expected: "240001"},
		{name: "同年内序号递增", prev: "240007", now: in2024, seed: 1, expected: "240008"},
		{name: "跨年后序号从 seed 复位", prev: "249999", now: in2025, seed: 1, expected: "250001"},
		{name: "序号耗尽", prev: "249999", now: in2024, seed: 1, wantErr: constant.ErrSequenceExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextEnvelopeID(tt.prev, tt.now, tt.seed)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, 期望 %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NextEnvelopeID 失败: %v", err)
			}
			if got != tt.expected {
				t.Errorf("NextEnvelopeID = %q, 期望 %q", got, tt.expected)
			}
		})
	}

	t.Run("前值非法时报错", func(t *testing.T) {
		if _, err := NextEnvelopeID("bogus!", in2024, 1); err == nil {
			t.Error("非法前值应报错")
		}
	})
}
