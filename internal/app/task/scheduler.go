/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2026-02-11 09:42:10
 */
package task

import (
	"log/slog"
	"os"
	"time"

	"github.com/anzhiyu-c/tariff-app/internal/infra/storage"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/repository"
	workbasket_service "github.com/anzhiyu-c/tariff-app/pkg/service/workbasket"

	"github.com/robfig/cron/v3"
)

// Scheduler 封装了 cron 实例和其依赖。
// 它是整个定时任务模块的核心协调者，负责任务的注册、启动和停止。
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
	// 在这里注入所有任务可能需要的依赖
	wbRepo  repository.WorkBasketRepository
	wbSvc   workbasket_service.Service
	envRepo repository.EnvelopeRepository
	sink    storage.IEnvelopeSink
	// staleAfter editing workbasket 的闲置归档阈值
	staleAfter time.Duration
	// filePrefix 导出文件名前缀，清扫任务据此识别孤儿文件
	filePrefix string
}

// NewScheduler 是 Scheduler 的构造函数。
// 它使用 slog 创建 logger，并将其传递给任务装饰器。
func NewScheduler(
	wbRepo repository.WorkBasketRepository,
	wbSvc workbasket_service.Service,
	envRepo repository.EnvelopeRepository,
	sink storage.IEnvelopeSink,
	staleAfter time.Duration,
	filePrefix string,
) *Scheduler {
	// 1. 创建一个 slog.Logger 实例，并为其添加一个固定的 "system":"cron" 属性。
	slogHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(slogHandler).With("system", "cron")

	// 2. 创建一个新的 cron 调度器实例，并将新的 logger 传递给装饰器。
	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(
			NewPanicRecoveryWrapper(logger),
			NewLoggingWrapper(logger),
			cron.DelayIfStillRunning(cron.DefaultLogger),
		),
	)

	if staleAfter <= 0 {
		staleAfter = 90 * 24 * time.Hour
	}
	return &Scheduler{
		cron:       c,
		logger:     logger,
		wbRepo:     wbRepo,
		wbSvc:      wbSvc,
		envRepo:    envRepo,
		sink:       sink,
		staleAfter: staleAfter,
		filePrefix: filePrefix,
	}
}

// RegisterJobs 在调度器中注册所有定义好的定时任务。
func (s *Scheduler) RegisterJobs() {
	s.logger.Info("Registering all periodic jobs...")

	// --- 任务1: 归档长期闲置的 editing workbasket ---
	staleJob := NewStaleWorkBasketJob(s.wbRepo, s.wbSvc, s.staleAfter, s.logger)

	_, err := s.cron.AddJob("0 0 3 * * *", staleJob)
	if err != nil {
		s.logger.Error("Failed to add 'StaleWorkBasketJob'", slog.Any("error", err))
		os.Exit(1)
	}
	s.logger.Info("-> Successfully registered 'StaleWorkBasketJob'", "schedule", "every day at 3:00:00 AM")

	// --- 任务2: 清扫导出目录里的孤儿文件和已删除 envelope ---
	sweepJob := NewEnvelopeSweepJob(s.envRepo, s.sink, s.filePrefix, s.logger)
	_, err = s.cron.AddJob("0 30 3 * * *", sweepJob)
	if err != nil {
		s.logger.Error("Failed to add 'EnvelopeSweepJob'", slog.Any("error", err))
		os.Exit(1)
	}
	s.logger.Info("-> Successfully registered 'EnvelopeSweepJob'", "schedule", "every day at 3:30:00 AM")

	s.logger.Info("All periodic jobs registered.")
}

// Start 启动 cron 调度器。
func (s *Scheduler) Start() {
	s.logger.Info("Cron scheduler started.")
	s.cron.Start()
}

// Stop 优雅地停止 cron 调度器。
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler gracefully stopped.")
}
