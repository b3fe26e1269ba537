package configdef

import (
	"github.com/anzhiyu-c/tariff-app/pkg/constant"
)

// Definition 定义了单个配置项的所有属性。
type Definition struct {
	Key      constant.SettingKey
	Value    string
	Comment  string
	IsPublic bool
}

// AllSettings 是我们系统中所有配置项的"单一事实来源"
var AllSettings = []Definition{
	// --- 应用基础配置 ---
	{Key: constant.KeyAppName, Value: "Tariff Management", Comment: "应用名称", IsPublic: true},
	{Key: constant.KeyAppVersion, Value: "1.0.0", Comment: "应用版本", IsPublic: true},

	// --- workbasket 工作流配置 ---
	{Key: constant.KeyWorkBasketStaleDays, Value: "90", Comment: "editing 状态的 workbasket 闲置多少天后自动归档", IsPublic: false},
	{Key: constant.KeySeedWorkBasketTitle, Value: "TARIC 初始数据导入", Comment: "种子数据导入用的 workbasket 标题", IsPublic: false},

	// --- 导出配置 ---
	{Key: constant.KeyExportFilePrefix, Value: "DIT", Comment: "导出文件名前缀，下游网关按 {前缀}{YYNNNN}.xml 识别文件", IsPublic: false},
}
