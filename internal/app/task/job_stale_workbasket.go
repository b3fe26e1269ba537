package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/repository"
	workbasket_service "github.com/anzhiyu-c/tariff-app/pkg/service/workbasket"
)

// StaleWorkBasketJob 定义闲置 workbasket 归档任务。
// 长期停留在 editing 状态且无人更新的 workbasket 会被批量归档，
// 避免编辑人员的废弃草稿一直占着列表。
type StaleWorkBasketJob struct {
	wbRepo  repository.WorkBasketRepository
	wbSvc   workbasket_service.Service
	maxIdle time.Duration
	logger  *slog.Logger
}

// NewStaleWorkBasketJob 创建一个新的闲置 workbasket 归档任务。
func NewStaleWorkBasketJob(wbRepo repository.WorkBasketRepository, wbSvc workbasket_service.Service, maxIdle time.Duration, logger *slog.Logger) *StaleWorkBasketJob {
	if maxIdle <= 0 {
		maxIdle = 90 * 24 * time.Hour
	}
	return &StaleWorkBasketJob{
		wbRepo:  wbRepo,
		wbSvc:   wbSvc,
		maxIdle: maxIdle,
		logger:  logger,
	}
}

// Run 执行闲置 workbasket 归档任务。
func (j *StaleWorkBasketJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	j.logger.Info("Starting stale workbasket archival job...")

	cutoff := time.Now().Add(-j.maxIdle)
	stale, err := j.wbRepo.ListStale(ctx, model.StatusEditing, cutoff)
	if err != nil {
		j.logger.Error("Failed to list stale workbaskets", slog.Any("error", err))
		return
	}
	if len(stale) == 0 {
		j.logger.Info("No stale workbaskets to archive")
		return
	}

	archived := 0
	failed := 0
	for _, wb := range stale {
		if _, err := j.wbSvc.Archive(ctx, wb.ID); err != nil {
			failed++
			j.logger.Error("Failed to archive workbasket",
				slog.String("workbasket_id", wb.ID),
				slog.Any("error", err),
			)
			continue
		}
		archived++
	}

	j.logger.Info("Stale workbasket archival job completed",
		slog.Int("candidates", len(stale)),
		slog.Int("archived", archived),
		slog.Int("failed", failed),
		slog.Time("cutoff", cutoff),
	)
}

// Name 返回任务名称。
func (j *StaleWorkBasketJob) Name() string {
	return "StaleWorkBasketJob"
}
