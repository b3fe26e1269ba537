/*
 * @Description: 有效期终止的边界判定
 * @Author: 安知鱼
 * @Date: 2026-02-10 12:17:40
 */
package model

import "time"

// TerminationDecision 描述 Terminate 对一个版本行应产生的结果
type TerminationDecision struct {
	// NoChange 为 true 表示实体在指定日期前已经结束，无需任何新版本
	NoChange bool
	// UpdateType 为 DELETE 表示实体在任何剩余区间内都不曾生效，
	// 应以删除版本收尾；为 UPDATE 表示截短有效期
	UpdateType UpdateType
	// ValidityEnd 仅在 UpdateType 为 UPDATE 时有效，取终止日期本身（闭区间）
	ValidityEnd *time.Time
}

// DecideTermination 判定以 when 终止一个有效期为 [start, end] 的实体应产生的版本。
// 约定：有效期两端均为闭区间，终止后 validity_end = when（含当天）；
// 实体的生效起点不早于 when 时直接产生 DELETE 版本；
// 实体在 when 之前已经结束时不做任何事。
func DecideTermination(start time.Time, end *time.Time, when time.Time) TerminationDecision {
	if end != nil && end.Before(when) {
		return TerminationDecision{NoChange: true}
	}
	if !start.Before(when) {
		return TerminationDecision{UpdateType: UpdateTypeDelete}
	}
	endCopy := when
	return TerminationDecision{UpdateType: UpdateTypeUpdate, ValidityEnd: &endCopy}
}

// ValidityContains 判断闭区间 [start, end] 是否包含指定日期。
// end 为空表示无限期。
func ValidityContains(start time.Time, end *time.Time, date time.Time) bool {
	if date.Before(start) {
		return false
	}
	if end != nil && end.Before(date) {
		return false
	}
	return true
}
