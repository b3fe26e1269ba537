package model

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDecideTermination(t *testing.T) {
	when := date(2024, 6, 15)

	tests := []struct {
		name       string
		start      time.Time
		end        *time.Time
		noChange   bool
		updateType UpdateType
		wantEnd    *time.Time
	}{
		{
			name:       "生效中的实体被截短至终止日",
			start:      date(2024, 1, 1),
			end:        nil,
			updateType: UpdateTypeUpdate,
			wantEnd:    &when,
		},
		{
			name:       "结束日在终止日之后的实体同样被截短",
			start:      date(2024, 1, 1),
			end:        ptr(date(2024, 12, 31)),
			updateType: UpdateTypeUpdate,
			wantEnd:    &when,
		},
		{
			name:       "恰好在终止日结束的实体也会重写结束日",
			start:      date(2024, 1, 1),
			end:        &when,
			updateType: UpdateTypeUpdate,
			wantEnd:    &when,
		},
		{
			name:     "终止日前已结束的实体不产生新版本",
			start:    date(2023, 1, 1),
			end:      ptr(date(2024, 6, 14)),
			noChange: true,
		},
		{
			name:       "起点恰为终止日的实体直接删除",
			start:      when,
			end:        nil,
			updateType: UpdateTypeDelete,
		},
		{
			name:       "起点在终止日之后的实体直接删除",
			start:      date(2024, 7, 1),
			end:        ptr(date(2024, 12, 31)),
			updateType: UpdateTypeDelete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecideTermination(tt.start, tt.end, when)
			if got.NoChange != tt.noChange {
				t.Fatalf("NoChange = %v, 期望 %v", got.NoChange, tt.noChange)
			}
			if tt.noChange {
				return
			}
			if got.UpdateType != tt.updateType {
				t.Errorf("UpdateType = %s, 期望 %s", got.UpdateType, tt.updateType)
			}
			if tt.wantEnd == nil {
				if got.ValidityEnd != nil {
					t.Errorf("ValidityEnd = %v, 期望 nil", got.ValidityEnd)
				}
			} else if got.ValidityEnd == nil || !got.ValidityEnd.Equal(*tt.wantEnd) {
				t.Errorf("ValidityEnd = %v, 期望 %v", got.ValidityEnd, tt.wantEnd)
			}
		})
	}
}

func TestValidityContains(t *testing.T) {
	start := date(2024, 1, 1)
	end := date(2024, 12, 31)

	tests := []struct {
		name     string
		end      *time.Time
		date     time.Time
		expected bool
	}{
		{name: "区间内的日期", end: &end, date: date(2024, 6, 15), expected: true},
		{name: "起点当天包含", end: &end, date: start, expected: true},
		{name: "终点当天包含", end: &end, date: end, expected: true},
		{name: "起点之前不包含", end: &end, date: date(2023, 12, 31), expected: false},
		{name: "终点之后不包含", end: &end, date: date(2025, 1, 1), expected: false},
		{name: "无限期包含任意未来日期", end: nil, date: date(2099, 1, 1), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidityContains(start, tt.end, tt.date); got != tt.expected {
				t.Errorf("ValidityContains() = %v, 期望 %v", got, tt.expected)
			}
		})
	}
}

func ptr(t time.Time) *time.Time { return &t }
