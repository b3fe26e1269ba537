/*
 * @Description: 版本库与导出相关的标准错误定义
 * @Author: 安知鱼
 * @Date: 2026-02-10 11:32:08
 */
package constant

import "errors"

// 定义业务逻辑相关的标准错误
var (
	// ErrNotFound 表示资源未找到
	ErrNotFound = errors.New("资源未找到")

	// ErrIllegalMutation 表示试图原地修改已批准的版本行。
	// 版本行一经写入即不可变，唯一合法的修改路径是 NewVersion / Copy。
	ErrIllegalMutation = errors.New("版本行不可变，禁止原地修改，请通过 NewVersion 创建新版本")

	// ErrNoIdentifyingValue 表示版本查询未提供任何业务键字段
	ErrNoIdentifyingValue = errors.New("未提供任何业务标识字段")

	// ErrPartitionTransition 表示事务分区迁移不合法（仅允许 draft → revision）
	ErrPartitionTransition = errors.New("事务分区迁移不合法")

	// ErrSequenceExhausted 表示当年 envelope 序号已超过 9999，不允许回绕
	ErrSequenceExhausted = errors.New("envelope 序号已耗尽（单年最多 9999 个）")

	// ErrVersionGroupClosed 表示版本组的最新版本是 DELETE，不允许继续追加版本
	ErrVersionGroupClosed = errors.New("版本组已被删除版本关闭，如需重建请新建版本组")

	// ErrEnvelopeEmpty 表示待导出的 workbasket 不包含任何有效事务
	ErrEnvelopeEmpty = errors.New("envelope 不包含任何事务")

	// ErrWorkflowTransition 表示 workbasket 状态机不允许该迁移
	ErrWorkflowTransition = errors.New("workbasket 状态迁移不合法")

	// ErrUpdateTypeInvalid 表示 NewVersion 只接受 UPDATE 或 DELETE
	ErrUpdateTypeInvalid = errors.New("update_type 只能为 UPDATE 或 DELETE")

	// ErrEnvelopeProcessing 表示已有 envelope 正在打包上传，不允许并发打包
	ErrEnvelopeProcessing = errors.New("已有 envelope 正在处理中")
)
