/*
 * @Description: 统一监听 workbasket 状态迁移事件，输出审计日志。
 * @Author: 安知鱼
 * @Date: 2026-02-11 10:20:00
 */
package listener

import (
	"log"

	"github.com/anzhiyu-c/tariff-app/internal/pkg/event"
	workbasket_service "github.com/anzhiyu-c/tariff-app/pkg/service/workbasket"
)

// WorkBasketAuditListener 监听 workbasket 的状态迁移事件，
// 把每一次工作流推进写成一行审计日志。谁在什么时候把哪个
// workbasket 推到了什么状态，事后都可以从日志里还原。
type WorkBasketAuditListener struct{}

// NewWorkBasketAuditListener 是 WorkBasketAuditListener 的构造函数。
// 它订阅 WorkBasketTransitioned 事件，成为工作流审计日志的唯一入口。
func NewWorkBasketAuditListener(eventBus *event.EventBus) *WorkBasketAuditListener {
	listener := &WorkBasketAuditListener{}
	eventBus.Subscribe(event.WorkBasketTransitioned, listener.handleTransition)
	return listener
}

// handleTransition 是事件处理器，负责格式化并落审计日志。
func (l *WorkBasketAuditListener) handleTransition(payload interface{}) {
	ev, ok := payload.(workbasket_service.TransitionEvent)
	if !ok {
		log.Printf("[WorkBasketAuditListener] 错误：收到的事件负载类型不正确")
		return
	}

	if ev.Approver != "" {
		log.Printf("[审计] workbasket %s: %s → %s (审批人: %s)", ev.WorkBasketID, ev.From, ev.To, ev.Approver)
		return
	}
	log.Printf("[审计] workbasket %s: %s → %s", ev.WorkBasketID, ev.From, ev.To)
}
