/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-11 10:05:12
 */
package constant

import "github.com/anzhiyu-c/tariff-app/internal/pkg/event"

// EventTopic 事件主题类型
type EventTopic = event.Topic

// 导出事件主题常量，供外部使用
const (
	// EventWorkBasketTransitioned workbasket 状态迁移事件
	EventWorkBasketTransitioned EventTopic = event.WorkBasketTransitioned
	// EventEnvelopePublished envelope 导出完成事件
	EventEnvelopePublished EventTopic = event.EnvelopePublished
)
