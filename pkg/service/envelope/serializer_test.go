package envelope

import (
	"strings"
	"testing"
	"time"

	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
)

func TestRenderTransactionSortsRecords(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := &model.TransactionRecords{
		Transaction: &model.Transaction{ID: "tx-1", Order: 42},
		Entities: []*model.TrackedEntity{
			{Kind: "measure", SID: 1, UpdateType: model.UpdateTypeCreate, ValidityStart: start},
			{Kind: "footnote", TypeCode: "TN", Code: "001", UpdateType: model.UpdateTypeCreate, ValidityStart: start},
			{Kind: "measure_component", SID: 2, UpdateType: model.UpdateTypeCreate, ValidityStart: start},
			{Kind: "footnote_type", TypeCode: "TN", UpdateType: model.UpdateTypeCreate, ValidityStart: start},
		},
	}

	body := NewSerializer().RenderTransaction(tr)

	// 记录按 (record_code, subrecord_code) 升序：100 00 → 200 00 → 430 00 → 430 05
	order := []string{"<oub:footnote.type>", "<oub:footnote>", "<oub:measure>", "<oub:measure.component>"}
	last := -1
	for _, tag := range order {
		idx := strings.Index(body, tag)
		if idx < 0 {
			t.Fatalf("输出缺少 %s", tag)
		}
		if idx < last {
			t.Errorf("%s 出现在错误的位置", tag)
		}
		last = idx
	}

	if !strings.Contains(body, "<env:transaction id=\"42\">") {
		t.Error("事务元素应携带 order 作为 id")
	}
	// 序号在事务内从 1 起连续
	for _, seq := range []string{"<oub:record.sequence.number>1<", "<oub:record.sequence.number>4<"} {
		if !strings.Contains(body, seq) {
			t.Errorf("输出缺少序号 %s", seq)
		}
	}
}

func TestRenderRecordFields(t *testing.T) {
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	e := &model.TrackedEntity{
		Kind:          "footnote",
		TypeCode:      "TN",
		Code:          "001",
		UpdateType:    model.UpdateTypeUpdate,
		ValidityStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidityEnd:   &end,
		Payload:       map[string]interface{}{"description": "含 <特殊> & \"字符\""},
	}

	out := NewSerializer().RenderRecord(e, 7, 3)

	checks := []string{
		"<oub:record.code>200</oub:record.code>",
		"<oub:subrecord.code>00</oub:subrecord.code>",
		"<oub:update.type>1</oub:update.type>",
		"<oub:transaction.id>7</oub:transaction.id>",
		"<oub:record.sequence.number>3</oub:record.sequence.number>",
		"<oub:validity.start.date>2024-01-01</oub:validity.start.date>",
		"<oub:validity.end.date>2024-12-31</oub:validity.end.date>",
		"<oub:footnote.type.code>TN</oub:footnote.type.code>",
		"&lt;特殊&gt; &amp; &quot;字符&quot;",
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("输出缺少 %s\n%s", want, out)
		}
	}
	if strings.Contains(out, "validity.end.date>0001") {
		t.Error("无限期实体不应渲染结束日期")
	}
}

func TestUpdateTypeCode(t *testing.T) {
	tests := []struct {
		name     string
		t        model.UpdateType
		expected string
	}{
		{name: "update 映射为 1", t: model.UpdateTypeUpdate, expected: "1"},
		{name: "delete 映射为 2", t: model.UpdateTypeDelete, expected: "2"},
		{name: "create 映射为 3", t: model.UpdateTypeCreate, expected: "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := updateTypeCode(tt.t); got != tt.expected {
				t.Errorf("updateTypeCode(%s) = %s, 期望 %s", tt.t, got, tt.expected)
			}
		})
	}
}

func TestEnvelopeOverheadIndependentOfID(t *testing.T) {
	if len(EnvelopeStart("240001")) != len(EnvelopeStart("999999")) {
		t.Error("开始元素的字节数应与标识符取值无关")
	}
	if EnvelopeOverhead() <= 0 {
		t.Error("固定开销应为正数")
	}
}
