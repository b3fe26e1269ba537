/*
 * @Description: taric 风格 XML 的 envelope 序列化
 * @Author: 安知鱼
 * @Date: 2026-02-10
 */
package envelope

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
)

// taric 导出格式的固定命名空间
const (
	nsEnvelope = "urn:publicid:-:DGTAXUD:GENERAL:ENVELOPE:1.0"
	nsRecord   = "urn:publicid:-:DGTAXUD:TARIC:MESSAGE:1.0"
)

// xmlHeader 每个导出文件的固定文件头
const xmlHeader = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

// envelopeEnd envelope 的结束元素
const envelopeEnd = "</env:envelope>\n"

// dateLayout 有效期日期在导出中的表示
const dateLayout = "2006-01-02"

// updateTypeCode 把变更类型映射为 taric 的数字编码
func updateTypeCode(t model.UpdateType) string {
	switch t {
	case model.UpdateTypeUpdate:
		return "1"
	case model.UpdateTypeDelete:
		return "2"
	case model.UpdateTypeCreate:
		return "3"
	}
	return "0"
}

// EnvelopeStart 渲染 envelope 的开始元素。
// 标识符定宽，开始元素的字节数与具体标识符无关。
func EnvelopeStart(envelopeID string) string {
	return fmt.Sprintf("<env:envelope xmlns=\"%s\" xmlns:env=\"%s\" id=\"%s\">\n", nsRecord, nsEnvelope, envelopeID)
}

// EnvelopeOverhead 返回一个 envelope 除事务体之外的固定字节开销。
func EnvelopeOverhead() int {
	return len(xmlHeader) + len(EnvelopeStart("000000")) + len(envelopeEnd)
}

// Serializer 把事务及其版本行渲染为 taric 风格的 XML 片段。
type Serializer struct{}

// NewSerializer 创建序列化器。
func NewSerializer() *Serializer {
	return &Serializer{}
}

// kindTag 把种类名转成 taric 元素名（下划线换成点）
func kindTag(kind string) string {
	return strings.ReplaceAll(kind, "_", ".")
}

// fieldTag 把字段名转成 taric 元素名
func fieldTag(field string) string {
	return strings.ReplaceAll(field, "_", ".")
}

// xmlEscape 转义 XML 文本内容
func xmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}

// renderEntityBody 渲染实体自身的业务元素：
// 业务键字段在前，有效期次之，payload 字段按名称排序殿后。
func (sz *Serializer) renderEntityBody(sb *strings.Builder, e *model.TrackedEntity) {
	tag := kindTag(e.Kind)
	fmt.Fprintf(sb, "      <oub:%s>\n", tag)

	for _, kv := range identityFields(e) {
		fmt.Fprintf(sb, "        <oub:%s.%s>%s</oub:%s.%s>\n", tag, fieldTag(kv.name), xmlEscape(kv.value), tag, fieldTag(kv.name))
	}

	fmt.Fprintf(sb, "        <oub:validity.start.date>%s</oub:validity.start.date>\n", e.ValidityStart.Format(dateLayout))
	if e.ValidityEnd != nil {
		fmt.Fprintf(sb, "        <oub:validity.end.date>%s</oub:validity.end.date>\n", e.ValidityEnd.Format(dateLayout))
	}

	payloadFields := make([]string, 0, len(e.Payload))
	for field := range e.Payload {
		payloadFields = append(payloadFields, field)
	}
	sort.Strings(payloadFields)
	for _, field := range payloadFields {
		fmt.Fprintf(sb, "        <oub:%s>%s</oub:%s>\n", fieldTag(field), xmlEscape(fmt.Sprint(e.Payload[field])), fieldTag(field))
	}

	fmt.Fprintf(sb, "      </oub:%s>\n", tag)
}

// keyValue 一个已格式化的业务键字段
type keyValue struct {
	name  string
	value string
}

// identityFields 按种类注册表提取非空的业务键字段。
func identityFields(e *model.TrackedEntity) []keyValue {
	info, ok := model.KindByName(e.Kind)
	if !ok {
		return nil
	}
	var fields []keyValue
	for _, field := range info.IdentifyingFields {
		switch field {
		case "sid":
			if e.SID != 0 {
				fields = append(fields, keyValue{"sid", fmt.Sprint(e.SID)})
			}
		case "type_code":
			if e.TypeCode != "" {
				fields = append(fields, keyValue{"type_code", e.TypeCode})
			}
		case "code":
			if e.Code != "" {
				fields = append(fields, keyValue{"code", e.Code})
			}
		default:
			if e.Payload != nil && e.Payload[field] != nil {
				fields = append(fields, keyValue{field, fmt.Sprint(e.Payload[field])})
			}
		}
	}
	return fields
}

// RenderRecord 渲染单条记录。
func (sz *Serializer) RenderRecord(e *model.TrackedEntity, transactionOrder, sequence int) string {
	var sb strings.Builder
	sb.WriteString("    <oub:record>\n")
	fmt.Fprintf(&sb, "      <oub:transaction.id>%d</oub:transaction.id>\n", transactionOrder)
	fmt.Fprintf(&sb, "      <oub:record.code>%s</oub:record.code>\n", e.RecordCode())
	fmt.Fprintf(&sb, "      <oub:subrecord.code>%s</oub:subrecord.code>\n", e.SubrecordCode())
	fmt.Fprintf(&sb, "      <oub:record.sequence.number>%d</oub:record.sequence.number>\n", sequence)
	fmt.Fprintf(&sb, "      <oub:update.type>%s</oub:update.type>\n", updateTypeCode(e.UpdateType))
	sz.renderEntityBody(&sb, e)
	sb.WriteString("    </oub:record>\n")
	return sb.String()
}

// RenderTransaction 渲染一个事务的完整 XML 体。
// 记录按 (record_code, subrecord_code) 排序，同一事务永不拆分。
func (sz *Serializer) RenderTransaction(tr *model.TransactionRecords) string {
	entities := make([]*model.TrackedEntity, len(tr.Entities))
	copy(entities, tr.Entities)
	sort.SliceStable(entities, func(i, j int) bool {
		if entities[i].RecordCode() != entities[j].RecordCode() {
			return entities[i].RecordCode() < entities[j].RecordCode()
		}
		return entities[i].SubrecordCode() < entities[j].SubrecordCode()
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, "  <env:transaction id=\"%d\">\n", tr.Transaction.Order)
	for i, e := range entities {
		sb.WriteString(sz.RenderRecord(e, tr.Transaction.Order, i+1))
	}
	sb.WriteString("  </env:transaction>\n")
	return sb.String()
}
