// internal/constant/setting.go
/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-11 10:08:30
 */
package constant

// SettingKey 为所有在应用中使用的配置键定义了类型安全的常量。
type SettingKey string

// ToString 方便地将 SettingKey 转换为 string 类型。
func (k SettingKey) String() string {
	return string(k)
}

const (
	// --- 应用基础配置 ---
	KeyAppName    SettingKey = "APP_NAME"
	KeyAppVersion SettingKey = "APP_VERSION"

	// --- workbasket 工作流配置 ---
	// KeyWorkBasketStaleDays editing 状态超过该天数未更新就会被夜间任务归档
	KeyWorkBasketStaleDays SettingKey = "WORKBASKET_STALE_DAYS"
	// KeySeedWorkBasketTitle 初始数据导入用的种子 workbasket 标题
	KeySeedWorkBasketTitle SettingKey = "SEED_WORKBASKET_TITLE"

	// --- 导出配置 ---
	// KeyExportFilePrefix 导出文件名前缀，下游按 {前缀}{YYNNNN}.xml 识别
	KeyExportFilePrefix SettingKey = "EXPORT_FILE_PREFIX"
)
