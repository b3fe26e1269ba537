/*
 * @Description: 按字节上限切分的多文件 envelope 渲染器
 * @Author: 安知鱼
 * @Date: 2026-02-10
 */
package envelope

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/tariff-app/internal/infra/storage"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
)

// TransactionSource 是渲染器的拉式输入：每次返回下一个事务及其版本行，
// 流结束时返回 (nil, nil)。渲染器不会回头重读。
type TransactionSource interface {
	Next(ctx context.Context) (*model.TransactionRecords, error)
}

// SinkFactory 为新开的 envelope 打开一个写入器。
type SinkFactory func(ctx context.Context, envelopeID string) (storage.EnvelopeWriter, error)

// IDAllocator 为新开的 envelope 分配标识符，标识符在一次渲染内单调递增。
type IDAllocator func(ctx context.Context) (string, error)

// RenderedEnvelope 是一个已完成写入的 envelope 的描述。
type RenderedEnvelope struct {
	// EnvelopeID 形如 YYNNNN
	EnvelopeID string
	// Output 已提交全部内容的写入器（调用方负责 Commit / Abort）
	Output storage.EnvelopeWriter
	// TransactionIDs 该 envelope 包含的事务公共 ID，每个事务只出现在一个 envelope 里
	TransactionIDs []string
	// IsOversize 单个事务体超出上限、独占整个 envelope 时为 true
	IsOversize bool
	// MaxEnvelopeSize 渲染时配置的字节上限
	MaxEnvelopeSize int
}

// MultiFileSerializer 把有序事务流渲染为一串字节数受限的 envelope。
// 不变量：一个事务的记录绝不拆到两个 envelope；空事务整体跳过；
// 单个事务体超限时独占一个 envelope 并打上 IsOversize 标记，由调用方定夺。
type MultiFileSerializer struct {
	serializer *Serializer
	maxSize    int
	newSink    SinkFactory
	nextID     IDAllocator
}

// NewMultiFileSerializer 创建多文件渲染器。
func NewMultiFileSerializer(maxSize int, newSink SinkFactory, nextID IDAllocator) *MultiFileSerializer {
	return &MultiFileSerializer{
		serializer: NewSerializer(),
		maxSize:    maxSize,
		newSink:    newSink,
		nextID:     nextID,
	}
}

// RenderIterator 是 SplitRender 返回的拉式迭代器。
// 调用方可以随时停止消费；未消费的 envelope 不会被写出，
// 半途中断时调用方应 Abort 最后一个返回的 Output。
type RenderIterator struct {
	ms     *MultiFileSerializer
	source TransactionSource

	// 上一轮溢出、待写入下一个 envelope 的事务体
	pendingBody string
	pendingID   string

	exhausted bool
	emitted   int
}

// SplitRender 开始一次渲染，返回拉式迭代器。
// 序列有限、不可重启；即使输入为空也至少产出一个（空的）envelope。
func (ms *MultiFileSerializer) SplitRender(ctx context.Context, source TransactionSource) *RenderIterator {
	return &RenderIterator{ms: ms, source: source}
}

// capacity 返回事务体可用的字节预算。
func (ms *MultiFileSerializer) capacity() int {
	return ms.maxSize - EnvelopeOverhead()
}

// Next 产出下一个完整写入的 envelope；流结束时返回 (nil, nil)。
func (it *RenderIterator) Next(ctx context.Context) (*RenderedEnvelope, error) {
	if it.exhausted && it.pendingBody == "" {
		return nil, nil
	}

	envelopeID, err := it.ms.nextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("分配 envelope 标识符失败: %w", err)
	}
	sink, err := it.ms.newSink(ctx, envelopeID)
	if err != nil {
		return nil, fmt.Errorf("打开 envelope 输出失败: %w", err)
	}

	rendered := &RenderedEnvelope{
		EnvelopeID:      envelopeID,
		Output:          sink,
		MaxEnvelopeSize: it.ms.maxSize,
	}

	if _, err := sink.Write([]byte(xmlHeader)); err != nil {
		sink.Abort()
		return nil, err
	}
	if _, err := sink.Write([]byte(EnvelopeStart(envelopeID))); err != nil {
		sink.Abort()
		return nil, err
	}

	used := 0
	capacity := it.ms.capacity()

	// 先安置上一轮溢出的事务体
	if it.pendingBody != "" {
		if _, err := sink.Write([]byte(it.pendingBody)); err != nil {
			sink.Abort()
			return nil, err
		}
		used = len(it.pendingBody)
		rendered.TransactionIDs = append(rendered.TransactionIDs, it.pendingID)
		rendered.IsOversize = used > capacity
		it.pendingBody, it.pendingID = "", ""

		// 超限事务独占 envelope，直接收尾
		if rendered.IsOversize {
			if _, err := sink.Write([]byte(envelopeEnd)); err != nil {
				sink.Abort()
				return nil, err
			}
			it.emitted++
			return rendered, nil
		}
	}

	for {
		tr, err := it.source.Next(ctx)
		if err != nil {
			sink.Abort()
			return nil, fmt.Errorf("读取事务流失败: %w", err)
		}
		if tr == nil {
			it.exhausted = true
			break
		}
		// 空事务过不了下游 schema 校验，也不携带任何信息
		if len(tr.Entities) == 0 {
			continue
		}

		body := it.ms.serializer.RenderTransaction(tr)
		if used+len(body) > capacity {
			if used == 0 {
				// 该事务体独自超限：独占本 envelope 并打标记
				if _, err := sink.Write([]byte(body)); err != nil {
					sink.Abort()
					return nil, err
				}
				used = len(body)
				rendered.TransactionIDs = append(rendered.TransactionIDs, tr.Transaction.ID)
				rendered.IsOversize = true
				break
			}
			// 本 envelope 已有内容，溢出事务推迟到下一个
			it.pendingBody = body
			it.pendingID = tr.Transaction.ID
			break
		}

		if _, err := sink.Write([]byte(body)); err != nil {
			sink.Abort()
			return nil, err
		}
		used += len(body)
		rendered.TransactionIDs = append(rendered.TransactionIDs, tr.Transaction.ID)
	}

	if _, err := sink.Write([]byte(envelopeEnd)); err != nil {
		sink.Abort()
		return nil, err
	}

	// 输入流已尽且本 envelope 为空：只有首个 envelope 允许空着产出
	if len(rendered.TransactionIDs) == 0 && it.emitted > 0 {
		sink.Abort()
		return nil, nil
	}

	it.emitted++
	return rendered, nil
}
