// internal/app/bootstrap/bootstrap.go
package bootstrap

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/anzhiyu-c/tariff-app/ent"
	"github.com/anzhiyu-c/tariff-app/ent/setting"
	"github.com/anzhiyu-c/tariff-app/ent/workbasket"
	"github.com/anzhiyu-c/tariff-app/internal/configdef"
)

type Bootstrapper struct {
	entClient *ent.Client
}

func NewBootstrapper(entClient *ent.Client) *Bootstrapper {
	return &Bootstrapper{
		entClient: entClient,
	}
}

func (b *Bootstrapper) InitializeDatabase() error {
	log.Println("--- 开始执行数据库初始化引导程序 (配置注册表模式) ---")

	if err := b.entClient.Schema.Create(context.Background()); err != nil {
		return fmt.Errorf("数据库 schema 创建/更新失败: %w", err)
	}
	log.Println("--- 数据库 Schema 同步成功 ---")

	b.syncSettings()
	b.initSeedWorkBasket()
	b.checkWorkBasketTable()

	log.Println("--- 数据库初始化引导程序执行完成 ---")
	return nil
}

// syncSettings 检查并同步配置项，确保所有在代码中定义的配置项都存在于数据库中。
func (b *Bootstrapper) syncSettings() {
	log.Println("--- 开始同步应用配置 (Setting 表)... ---")
	ctx := context.Background()
	newlyAdded := 0

	// 从 configdef 循环所有定义
	for _, def := range configdef.AllSettings {
		exists, err := b.entClient.Setting.Query().Where(setting.ConfigKey(def.Key.String())).Exist(ctx)
		if err != nil {
			log.Printf("⚠️ 失败: 查询配置项 '%s' 失败: %v", def.Key, err)
			continue
		}

		// 如果配置项在数据库中不存在，则创建它
		if !exists {
			value := def.Value

			// 检查环境变量覆盖
			envKey := "TARIFF_SETTING_DEFAULT_" + strings.ToUpper(string(def.Key))
			if envValue, ok := os.LookupEnv(envKey); ok {
				value = envValue
				log.Printf("    - 配置项 '%s' 由环境变量覆盖。", def.Key)
			}

			_, createErr := b.entClient.Setting.Create().
				SetConfigKey(def.Key.String()).
				SetValue(value).
				SetComment(def.Comment).
				Save(ctx)

			if createErr != nil {
				log.Printf("⚠️ 失败: 新增默认配置项 '%s' 失败: %v", def.Key, createErr)
			} else {
				log.Printf("    -新增配置项: '%s' 已写入数据库。", def.Key)
				newlyAdded++
			}
		}
	}

	if newlyAdded > 0 {
		log.Printf("--- 应用配置同步完成，共新增 %d 个配置项。---", newlyAdded)
	} else {
		log.Println("--- 应用配置同步完成，无需新增配置项。---")
	}
}

// initSeedWorkBasket 确保种子数据导入用的 workbasket 存在。
// TARIC 全量导入的事务都会挂在这个 workbasket 下，标题取配置注册表的默认值。
func (b *Bootstrapper) initSeedWorkBasket() {
	log.Println("--- 开始初始化种子 workbasket (WorkBasket 表) ---")
	ctx := context.Background()

	title := "TARIC 初始数据导入"
	for _, def := range configdef.AllSettings {
		if def.Key.String() == "SEED_WORKBASKET_TITLE" {
			title = def.Value
		}
	}
	row, err := b.entClient.Setting.Query().Where(setting.ConfigKey("SEED_WORKBASKET_TITLE")).Only(ctx)
	if err == nil && row.Value != "" {
		title = row.Value
	}

	exists, err := b.entClient.WorkBasket.Query().Where(workbasket.TitleEQ(title)).Exist(ctx)
	if err != nil {
		log.Printf("⚠️ 失败: 查询种子 workbasket 失败: %v", err)
		return
	}
	if exists {
		log.Println("--- 种子 workbasket 已存在，跳过初始化。---")
		return
	}

	_, err = b.entClient.WorkBasket.Create().
		SetTitle(title).
		SetReason("系统引导时自动创建，用于承载初始 TARIC 数据导入").
		SetAuthor("system").
		SetStatus(workbasket.StatusEditing).
		Save(ctx)
	if err != nil {
		log.Printf("⚠️ 失败: 创建种子 workbasket '%s' 失败: %v", title, err)
		return
	}
	log.Printf("✅ 成功: 种子 workbasket '%s' 已创建。", title)
}

func (b *Bootstrapper) checkWorkBasketTable() {
	ctx := context.Background()
	count, err := b.entClient.WorkBasket.Query().Count(ctx)
	if err != nil {
		log.Printf("❌ 错误: 查询 WorkBasket 表记录数量失败: %v", err)
	} else {
		log.Printf("WorkBasket 表当前共有 %d 条记录。", count)
	}
}
