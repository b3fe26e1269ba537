package envelope

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/anzhiyu-c/tariff-app/internal/infra/storage"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
)

// memWriter 是测试用的内存 envelope 写入器
type memWriter struct {
	name      string
	buf       bytes.Buffer
	committed bool
	aborted   bool
}

func (w *memWriter) Write(p []byte) (int, error) { return w.buf.Write(p) }
func (w *memWriter) Commit() (string, error)     { w.committed = true; return w.name, nil }
func (w *memWriter) Abort() error                { w.aborted = true; return nil }
func (w *memWriter) Name() string                { return w.name }
func (w *memWriter) Written() int64              { return int64(w.buf.Len()) }

// sliceSource 把一组事务包装成拉式输入流
type sliceSource struct {
	items []*model.TransactionRecords
	pos   int
}

func (s *sliceSource) Next(ctx context.Context) (*model.TransactionRecords, error) {
	if s.pos >= len(s.items) {
		return nil, nil
	}
	tr := s.items[s.pos]
	s.pos++
	return tr, nil
}

// newTestSplitter 构造一个渲染器，记录所有打开过的写入器
func newTestSplitter(maxSize int) (*MultiFileSerializer, *[]*memWriter) {
	var writers []*memWriter
	counter := 0
	ms := NewMultiFileSerializer(maxSize,
		func(ctx context.Context, envelopeID string) (storage.EnvelopeWriter, error) {
			w := &memWriter{name: "DIT" + envelopeID + ".xml"}
			writers = append(writers, w)
			return w, nil
		},
		func(ctx context.Context) (string, error) {
			counter++
			return FormatEnvelopeID(24, counter), nil
		},
	)
	return ms, &writers
}

// makeTx 构造一个带 n 个 footnote 版本行的事务
func makeTx(order, n int) *model.TransactionRecords {
	tr := &model.TransactionRecords{
		Transaction: &model.Transaction{
			ID:        fmt.Sprintf("tx-%d", order),
			Partition: model.PartitionRevision,
			Order:     order,
		},
	}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		tr.Entities = append(tr.Entities, &model.TrackedEntity{
			Kind:          "footnote",
			TypeCode:      "TN",
			Code:          fmt.Sprintf("%03d", i+1),
			UpdateType:    model.UpdateTypeCreate,
			ValidityStart: start,
			Payload:       map[string]interface{}{"description": "测试脚注"},
		})
	}
	return tr
}

// bodySize 返回一个事务渲染后的字节数
func bodySize(tr *model.TransactionRecords) int {
	return len(NewSerializer().RenderTransaction(tr))
}

// drain 消费迭代器直到流结束，逐个 Commit
func drain(t *testing.T, it *RenderIterator) []*RenderedEnvelope {
	t.Helper()
	var out []*RenderedEnvelope
	for {
		env, err := it.Next(context.Background())
		if err != nil {
			t.Fatalf("Next 失败: %v", err)
		}
		if env == nil {
			return out
		}
		if _, err := env.Output.Commit(); err != nil {
			t.Fatalf("Commit 失败: %v", err)
		}
		out = append(out, env)
	}
}

func TestSplitRenderSingleEnvelope(t *testing.T) {
	txs := []*model.TransactionRecords{makeTx(1, 1), makeTx(2, 1), makeTx(3, 1)}
	total := 0
	for _, tr := range txs {
		total += bodySize(tr)
	}
	ms, writers := newTestSplitter(EnvelopeOverhead() + total)

	envs := drain(t, ms.SplitRender(context.Background(), &sliceSource{items: txs}))

	if len(envs) != 1 {
		t.Fatalf("产出 %d 个 envelope, 期望 1", len(envs))
	}
	if envs[0].EnvelopeID != "240001" {
		t.Errorf("EnvelopeID = %s, 期望 240001", envs[0].EnvelopeID)
	}
	if len(envs[0].TransactionIDs) != 3 {
		t.Errorf("事务数 = %d, 期望 3", len(envs[0].TransactionIDs))
	}
	if envs[0].IsOversize {
		t.Error("未超限的 envelope 不应带超限标记")
	}

	content := (*writers)[0].buf.String()
	if !strings.HasPrefix(content, xmlHeader) {
		t.Error("输出缺少 XML 文件头")
	}
	if !strings.HasSuffix(content, envelopeEnd) {
		t.Error("输出缺少结束元素")
	}
	if err := NewValidator().Validate([]byte(content)); err != nil {
		t.Errorf("产出未通过校验: %v", err)
	}
}

func TestSplitRenderOverflowToSecondEnvelope(t *testing.T) {
	// 三个等大的事务体，预算只放得下两个
	txs := []*model.TransactionRecords{makeTx(1, 1), makeTx(2, 1), makeTx(3, 1)}
	size := bodySize(txs[0])
	ms, writers := newTestSplitter(EnvelopeOverhead() + 2*size)

	envs := drain(t, ms.SplitRender(context.Background(), &sliceSource{items: txs}))

	if len(envs) != 2 {
		t.Fatalf("产出 %d 个 envelope, 期望 2", len(envs))
	}
	if got := envs[0].TransactionIDs; len(got) != 2 || got[0] != "tx-1" || got[1] != "tx-2" {
		t.Errorf("第一个 envelope 的事务 = %v, 期望 [tx-1 tx-2]", got)
	}
	if got := envs[1].TransactionIDs; len(got) != 1 || got[0] != "tx-3" {
		t.Errorf("第二个 envelope 的事务 = %v, 期望 [tx-3]", got)
	}
	if envs[0].EnvelopeID != "240001" || envs[1].EnvelopeID != "240002" {
		t.Errorf("标识符 = %s, %s, 期望单调递增", envs[0].EnvelopeID, envs[1].EnvelopeID)
	}

	// 事务体绝不拆分：每个事务的开始元素只出现在一个文件里
	for i, w := range *writers {
		for j := 1; j <= 3; j++ {
			tag := fmt.Sprintf("<env:transaction id=\"%d\">", j)
			inThis := strings.Contains(w.buf.String(), tag)
			inEnv := false
			for _, id := range envs[i].TransactionIDs {
				if id == fmt.Sprintf("tx-%d", j) {
					inEnv = true
				}
			}
			if inThis != inEnv {
				t.Errorf("事务 %d 在文件 %d 中的出现与归属不一致", j, i)
			}
		}
	}
}

func TestSplitRenderOversizeTransaction(t *testing.T) {
	big := makeTx(1, 50)
	small := makeTx(2, 1)
	// 预算连小事务都只放得下一个，大事务必然超限
	ms, _ := newTestSplitter(EnvelopeOverhead() + bodySize(small) + 1)

	envs := drain(t, ms.SplitRender(context.Background(), &sliceSource{items: []*model.TransactionRecords{big, small}}))

	if len(envs) != 2 {
		t.Fatalf("产出 %d 个 envelope, 期望 2", len(envs))
	}
	if !envs[0].IsOversize {
		t.Error("超限事务所在的 envelope 应带超限标记")
	}
	if len(envs[0].TransactionIDs) != 1 || envs[0].TransactionIDs[0] != "tx-1" {
		t.Errorf("超限事务应独占 envelope, got %v", envs[0].TransactionIDs)
	}
	if envs[1].IsOversize {
		t.Error("正常事务的 envelope 不应带超限标记")
	}
}

func TestSplitRenderSkipsEmptyTransactions(t *testing.T) {
	txs := []*model.TransactionRecords{makeTx(1, 0), makeTx(2, 1), makeTx(3, 0)}
	ms, writers := newTestSplitter(1 << 20)

	envs := drain(t, ms.SplitRender(context.Background(), &sliceSource{items: txs}))

	if len(envs) != 1 {
		t.Fatalf("产出 %d 个 envelope, 期望 1", len(envs))
	}
	if len(envs[0].TransactionIDs) != 1 || envs[0].TransactionIDs[0] != "tx-2" {
		t.Errorf("空事务应整体跳过, got %v", envs[0].TransactionIDs)
	}
	if strings.Contains((*writers)[0].buf.String(), "<env:transaction id=\"1\">") {
		t.Error("空事务不应出现在输出中")
	}
}

func TestSplitRenderEmptyStream(t *testing.T) {
	ms, _ := newTestSplitter(1 << 20)

	envs := drain(t, ms.SplitRender(context.Background(), &sliceSource{}))

	if len(envs) != 1 {
		t.Fatalf("空输入也应产出一个 envelope, got %d", len(envs))
	}
	if len(envs[0].TransactionIDs) != 0 {
		t.Errorf("空输入的 envelope 不应包含事务, got %v", envs[0].TransactionIDs)
	}
}
