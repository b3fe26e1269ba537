/*
 * @Description: 导出 XML 的结构与记录顺序校验
 * @Author: 安知鱼
 * @Date: 2026-02-10
 */
package envelope

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// SchemaFault 表示导出 XML 不符合 envelope 结构约定。
type SchemaFault struct {
	Detail string
}

func (e *SchemaFault) Error() string {
	return fmt.Sprintf("schema 校验失败: %s", e.Detail)
}

// OrderingFault 表示某个事务内的记录顺序违反
// record_code ++ subrecord_code 非递减的约定。
type OrderingFault struct {
	TransactionID string
	Code          string
	SubrecordCode string
	LastCode      string
	LastSubrecord string
}

func (e *OrderingFault) Error() string {
	return fmt.Sprintf("事务 %s 内记录顺序错误: %s %s < %s %s",
		e.TransactionID, e.Code, e.SubrecordCode, e.LastCode, e.LastSubrecord)
}

// Validator 校验已渲染的 envelope。
// 校验失败必须把错误交还调用方处置，吞掉并记日志是明确错误的做法：
// 下游消费方同时依赖 schema 与顺序两个不变量。
type Validator struct{}

// NewValidator 创建校验器。
func NewValidator() *Validator {
	return &Validator{}
}

// Validate 对一个完整 envelope 做两层校验：
// (a) 结构校验（根元素、标识符形态、事务与记录的嵌套）⇒ SchemaFault；
// (b) 逐事务断言 record_code ++ subrecord_code 非递减 ⇒ OrderingFault。
func (v *Validator) Validate(xmlBytes []byte) error {
	decoder := xml.NewDecoder(bytes.NewReader(xmlBytes))

	var (
		sawEnvelope   bool
		inTransaction bool
		transactionID string
		lastCode      string
		lastSubrecord string

		// 当前 record 里已读到的编码
		curCode      string
		curSubrecord string
		inRecord     bool
		textTarget   *string
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return &SchemaFault{Detail: fmt.Sprintf("XML 解析失败: %v", err)}
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "envelope":
				if sawEnvelope {
					return &SchemaFault{Detail: "出现了多个 envelope 根元素"}
				}
				sawEnvelope = true
				id := attrValue(t, "id")
				if _, _, err := ParseEnvelopeID(id); err != nil {
					return &SchemaFault{Detail: fmt.Sprintf("envelope 标识符形态非法: %q", id)}
				}
			case "transaction":
				if !sawEnvelope {
					return &SchemaFault{Detail: "transaction 元素出现在 envelope 之外"}
				}
				if inTransaction {
					return &SchemaFault{Detail: "transaction 元素出现了嵌套"}
				}
				inTransaction = true
				transactionID = attrValue(t, "id")
				lastCode, lastSubrecord = "", ""
			case "record":
				if !inTransaction {
					return &SchemaFault{Detail: "record 元素出现在 transaction 之外"}
				}
				inRecord = true
				curCode, curSubrecord = "", ""
			case "record.code":
				if inRecord {
					textTarget = &curCode
				}
			case "subrecord.code":
				if inRecord {
					textTarget = &curSubrecord
				}
			}

		case xml.CharData:
			if textTarget != nil {
				*textTarget += string(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "record.code", "subrecord.code":
				textTarget = nil
			case "record":
				if curCode == "" || curSubrecord == "" {
					return &SchemaFault{Detail: "record 缺少 record.code 或 subrecord.code"}
				}
				curCode = strings.TrimSpace(curCode)
				curSubrecord = strings.TrimSpace(curSubrecord)
				if lastCode != "" && curCode+curSubrecord < lastCode+lastSubrecord {
					return &OrderingFault{
						TransactionID: transactionID,
						Code:          curCode,
						SubrecordCode: curSubrecord,
						LastCode:      lastCode,
						LastSubrecord: lastSubrecord,
					}
				}
				lastCode, lastSubrecord = curCode, curSubrecord
				inRecord = false
			case "transaction":
				inTransaction = false
			}
		}
	}

	if !sawEnvelope {
		return &SchemaFault{Detail: "缺少 envelope 根元素"}
	}
	return nil
}

// attrValue 取元素上指定名称的属性值。
func attrValue(el xml.StartElement, name string) string {
	for _, attr := range el.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}
