package envelope

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// buildEnvelopeXML 按给定的 (record_code, subrecord_code) 序列拼一个单事务 envelope
func buildEnvelopeXML(envelopeID string, codes [][2]string) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(EnvelopeStart(envelopeID))
	sb.WriteString("  <env:transaction id=\"1\">\n")
	for i, c := range codes {
		fmt.Fprintf(&sb, "    <oub:record>\n")
		fmt.Fprintf(&sb, "      <oub:record.code>%s</oub:record.code>\n", c[0])
		fmt.Fprintf(&sb, "      <oub:subrecord.code>%s</oub:subrecord.code>\n", c[1])
		fmt.Fprintf(&sb, "      <oub:record.sequence.number>%d</oub:record.sequence.number>\n", i+1)
		fmt.Fprintf(&sb, "    </oub:record>\n")
	}
	sb.WriteString("  </env:transaction>\n")
	sb.WriteString(envelopeEnd)
	return sb.String()
}

func TestValidateAcceptsWellFormedEnvelope(t *testing.T) {
	tests := []struct {
		name  string
		codes [][2]string
	}{
		{name: "空 envelope", codes: nil},
		{name: "单条记录", codes: [][2]string{{"200", "00"}}},
		{name: "记录非递减", codes: [][2]string{{"100", "00"}, {"200", "00"}, {"200", "10"}, {"430", "05"}}},
		{name: "相邻记录编码相同", codes: [][2]string{{"430", "00"}, {"430", "00"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NewValidator().Validate([]byte(buildEnvelopeXML("240001", tt.codes))); err != nil {
				t.Errorf("校验失败: %v", err)
			}
		})
	}
}

func TestValidateOrderingFault(t *testing.T) {
	xml := buildEnvelopeXML("240001", [][2]string{{"150", "00"}, {"100", "00"}})

	err := NewValidator().Validate([]byte(xml))
	var fault *OrderingFault
	if !errors.As(err, &fault) {
		t.Fatalf("err = %v, 期望 OrderingFault", err)
	}
	if fault.TransactionID != "1" {
		t.Errorf("TransactionID = %s, 期望 1", fault.TransactionID)
	}
	if !strings.Contains(fault.Error(), "100 00 < 150 00") {
		t.Errorf("错误信息应指出顺序违例: %s", fault.Error())
	}
}

func TestValidateOrderingResetsPerTransaction(t *testing.T) {
	// 第二个事务从更小的 record code 重新开始是合法的
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(EnvelopeStart("240001"))
	for i, code := range []string{"430", "100"} {
		fmt.Fprintf(&sb, "  <env:transaction id=\"%d\">\n", i+1)
		fmt.Fprintf(&sb, "    <oub:record>\n")
		fmt.Fprintf(&sb, "      <oub:record.code>%s</oub:record.code>\n", code)
		fmt.Fprintf(&sb, "      <oub:subrecord.code>00</oub:subrecord.code>\n")
		fmt.Fprintf(&sb, "    </oub:record>\n")
		fmt.Fprintf(&sb, "  </env:transaction>\n")
	}
	sb.WriteString(envelopeEnd)

	if err := NewValidator().Validate([]byte(sb.String())); err != nil {
		t.Errorf("跨事务的顺序不应累积: %v", err)
	}
}

func TestValidateSchemaFault(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{
			name: "空文档",
			xml:  "",
		},
		{
			name: "非 XML 内容",
			xml:  "这不是 XML",
		},
		{
			name: "非法 envelope 标识符",
			xml:  xmlHeader + EnvelopeStart("BAD-ID") + envelopeEnd,
		},
		{
			name: "record 缺少编码",
			xml: xmlHeader + EnvelopeStart("240001") +
				"  <env:transaction id=\"1\">\n    <oub:record>\n    </oub:record>\n  </env:transaction>\n" +
				envelopeEnd,
		},
		{
			name: "record 出现在 transaction 之外",
			xml: xmlHeader + EnvelopeStart("240001") +
				"  <oub:record>\n    <oub:record.code>200</oub:record.code>\n    <oub:subrecord.code>00</oub:subrecord.code>\n  </oub:record>\n" +
				envelopeEnd,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidator().Validate([]byte(tt.xml))
			var fault *SchemaFault
			if !errors.As(err, &fault) {
				t.Errorf("err = %v, 期望 SchemaFault", err)
			}
		})
	}
}
