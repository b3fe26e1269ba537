/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-11 11:02:40
 */
// tariff-app/cmd/server/app.go
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/anzhiyu-c/tariff-app/internal/app/bootstrap"
	"github.com/anzhiyu-c/tariff-app/internal/app/listener"
	"github.com/anzhiyu-c/tariff-app/internal/app/task"
	"github.com/anzhiyu-c/tariff-app/internal/infra/persistence/database"
	ent_impl "github.com/anzhiyu-c/tariff-app/internal/infra/persistence/ent"
	"github.com/anzhiyu-c/tariff-app/internal/infra/storage"
	"github.com/anzhiyu-c/tariff-app/internal/pkg/event"
	appversion "github.com/anzhiyu-c/tariff-app/internal/pkg/version"
	"github.com/anzhiyu-c/tariff-app/pkg/config"
	"github.com/anzhiyu-c/tariff-app/pkg/constant"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/repository"
	"github.com/anzhiyu-c/tariff-app/pkg/idgen"
	publish_service "github.com/anzhiyu-c/tariff-app/pkg/service/publish"
	"github.com/anzhiyu-c/tariff-app/pkg/service/setting"
	transaction_service "github.com/anzhiyu-c/tariff-app/pkg/service/transaction"
	"github.com/anzhiyu-c/tariff-app/pkg/service/utility"
	version_service "github.com/anzhiyu-c/tariff-app/pkg/service/version"
	workbasket_service "github.com/anzhiyu-c/tariff-app/pkg/service/workbasket"
)

// App 结构体，用于封装应用的所有核心组件
type App struct {
	cfg        *config.Config
	scheduler  *task.Scheduler
	sqlDB      *sql.DB
	appVersion string

	settingRepo repository.SettingRepository
	settingSvc  setting.SettingService
	cacheSvc    utility.CacheService
	eventBus    *event.EventBus

	entityRepo repository.TrackedEntityRepository
	txRepo     repository.TransactionRepository
	wbRepo     repository.WorkBasketRepository
	envRepo    repository.EnvelopeRepository

	versionSvc version_service.Service
	txSvc      transaction_service.Service
	wbSvc      workbasket_service.Service
	publishSvc publish_service.Service
}

func (a *App) PrintBanner() {
	log.Println("--------------------------------------------------------")
	log.Printf(" Tariff App - Version: %s", appversion.GetVersionString())
	log.Println("--------------------------------------------------------")
}

// NewApp 是应用的构造函数，它执行所有的初始化和依赖注入工作
func NewApp() (*App, func(), error) {
	// 在初始化早期获取版本信息
	appVersion := appversion.GetVersion()

	// --- Phase 1: 加载外部配置 ---
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("加载配置失败: %w", err)
	}

	// --- Phase 2: 初始化基础设施 ---
	sqlDB, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("创建数据库连接池失败: %w", err)
	}
	entClient, err := database.NewEntClient(sqlDB, cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	// 尝试连接 Redis（如果失败，将自动降级到内存缓存）
	redisClient, err := database.NewRedisClient(context.Background(), cfg)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("redis 初始化失败: %w", err)
	}

	// 临时cleanup函数，后面会被增强版本替换
	tempCleanup := func() {
		log.Println("执行清理操作：关闭数据库连接...")
		sqlDB.Close()
		if redisClient != nil {
			log.Println("关闭 Redis 连接...")
			redisClient.Close()
		}
	}
	eventBus := event.NewEventBus()

	// --- Phase 3: 初始化数据仓库层 ---
	settingRepo := ent_impl.NewEntSettingRepository(entClient)
	entityRepo := ent_impl.NewEntTrackedEntityRepository(entClient)
	txRepo := ent_impl.NewEntTransactionRepository(entClient)
	wbRepo := ent_impl.NewEntWorkBasketRepository(entClient)
	envRepo := ent_impl.NewEntEnvelopeRepository(entClient)

	// --- Phase 4: 初始化应用引导程序 ---
	bootstrapper := bootstrap.NewBootstrapper(entClient)
	if err := bootstrapper.InitializeDatabase(); err != nil {
		return nil, tempCleanup, fmt.Errorf("数据库初始化失败: %w", err)
	}

	// --- Phase 4.5: 初始化 ID 编码器 ---
	if err := idgen.InitSqidsEncoder(); err != nil {
		return nil, tempCleanup, fmt.Errorf("初始化 ID 编码器失败: %w", err)
	}
	log.Println("✅ ID 编码器初始化成功")

	// --- Phase 5: 初始化业务逻辑层 ---
	txManager := ent_impl.NewEntTransactionManager(entClient)
	settingSvc := setting.NewSettingService(settingRepo, eventBus)
	if err := settingSvc.LoadAllSettings(context.Background()); err != nil {
		return nil, tempCleanup, fmt.Errorf("从数据库加载应用配置失败: %w", err)
	}

	// 使用智能缓存工厂，自动选择 Redis 或内存缓存
	cacheSvc := utility.NewCacheServiceWithFallback(redisClient)

	outputDir := cfg.GetString(config.KeyExportOutputDir)
	if outputDir == "" {
		outputDir = "data/envelopes"
	}
	sink, err := storage.NewLocalSink(outputDir)
	if err != nil {
		return nil, tempCleanup, fmt.Errorf("初始化导出目录失败: %w", err)
	}

	versionSvc := version_service.NewVersionService(entityRepo, txManager, cacheSvc)
	txSvc := transaction_service.NewTransactionService(txRepo, entityRepo, txManager)
	wbSvc := workbasket_service.NewWorkBasketService(wbRepo, txRepo, entityRepo, txSvc, txManager, eventBus)

	filePrefix := settingSvc.Get(constant.KeyExportFilePrefix.String())
	publishSvc := publish_service.NewPublishService(
		wbSvc, txRepo, entityRepo, envRepo, sink, cacheSvc, eventBus,
		publish_service.Options{
			MaxEnvelopeSize: cfg.GetInt(config.KeyExportMaxEnvelopeSize),
			SeedEnvelopeID:  cfg.GetInt(config.KeyExportSeedEnvelopeID),
			FilePrefix:      filePrefix,
		},
	)

	// 工作流审计监听器
	_ = listener.NewWorkBasketAuditListener(eventBus)

	// --- Phase 6: 初始化定时任务调度器 ---
	staleDays, _ := strconv.Atoi(settingSvc.Get(constant.KeyWorkBasketStaleDays.String()))
	scheduler := task.NewScheduler(wbRepo, wbSvc, envRepo, sink,
		time.Duration(staleDays)*24*time.Hour, filePrefix)
	scheduler.RegisterJobs()

	// 将所有初始化好的组件装配到 App 实例中
	app := &App{
		cfg:         cfg,
		scheduler:   scheduler,
		sqlDB:       sqlDB,
		appVersion:  appVersion,
		settingRepo: settingRepo,
		settingSvc:  settingSvc,
		cacheSvc:    cacheSvc,
		eventBus:    eventBus,
		entityRepo:  entityRepo,
		txRepo:      txRepo,
		wbRepo:      wbRepo,
		envRepo:     envRepo,
		versionSvc:  versionSvc,
		txSvc:       txSvc,
		wbSvc:       wbSvc,
		publishSvc:  publishSvc,
	}

	// 创建cleanup函数
	cleanup := func() {
		log.Println("执行清理操作：关闭数据库连接...")
		eventBus.Shutdown()
		sqlDB.Close()
		if redisClient != nil {
			log.Println("关闭 Redis 连接...")
			redisClient.Close()
		}
	}

	return app, cleanup, nil
}

func (a *App) Config() *config.Config {
	return a.cfg
}

func (a *App) SettingService() setting.SettingService {
	return a.settingSvc
}

func (a *App) CacheService() utility.CacheService {
	return a.cacheSvc
}

func (a *App) EventBus() *event.EventBus {
	return a.eventBus
}

func (a *App) TrackedEntityRepository() repository.TrackedEntityRepository {
	return a.entityRepo
}

func (a *App) VersionService() version_service.Service {
	return a.versionSvc
}

func (a *App) TransactionService() transaction_service.Service {
	return a.txSvc
}

func (a *App) WorkBasketService() workbasket_service.Service {
	return a.wbSvc
}

func (a *App) PublishService() publish_service.Service {
	return a.publishSvc
}

func (a *App) DB() *sql.DB {
	return a.sqlDB
}

func (a *App) Version() string {
	return a.appVersion
}

// Run 启动调度器并阻塞等待退出信号。
func (a *App) Run() error {
	a.scheduler.Start()
	fmt.Println("应用程序启动成功，后台调度器运行中。")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("收到退出信号: %v，开始优雅停机...", sig)
	return nil
}

func (a *App) Stop() {
	if a.scheduler != nil {
		a.scheduler.Stop()
		log.Println("任务调度器已停止。")
	}
}
