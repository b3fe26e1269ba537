/*
 * @Description: Envelope 领域模型
 * @Author: 安知鱼
 * @Date: 2026-02-10 12:24:18
 */
package model

import "time"

// Envelope 表示一次已打包的导出文件。
// EnvelopeID 形如 YYNNNN：两位年份 + 当年从 0001 起的四位序号。
type Envelope struct {
	ID         string    `json:"id"`
	EnvelopeID string    `json:"envelope_id"`
	XMLFile    string    `json:"xml_file"`
	Deleted    bool      `json:"deleted"`
	CreatedAt  time.Time `json:"created_at"`
}

// TransactionRecords 是导出流中的一个事务及其全部版本行，
// 行已按 (record_code, subrecord_code) 排好序。
type TransactionRecords struct {
	Transaction *Transaction
	Entities    []*TrackedEntity
}
