package task

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/anzhiyu-c/tariff-app/internal/infra/storage"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/repository"
)

// EnvelopeSweepJob 定义导出目录清扫任务。
// 两类文件会被清掉：档案里已标记 deleted 的 envelope 对应的 XML 文件，
// 以及不属于任何档案记录的孤儿文件（例如渲染中途崩溃留下的残件）。
// envelope 序号本身永不回收，清掉文件不影响后续编号。
type EnvelopeSweepJob struct {
	envRepo repository.EnvelopeRepository
	sink    storage.IEnvelopeSink
	prefix  string
	// minAge 文件最短存活时间，太新的文件可能还在写入，跳过
	minAge time.Duration
	logger *slog.Logger
}

// NewEnvelopeSweepJob 创建一个新的导出目录清扫任务。
func NewEnvelopeSweepJob(envRepo repository.EnvelopeRepository, sink storage.IEnvelopeSink, prefix string, logger *slog.Logger) *EnvelopeSweepJob {
	if prefix == "" {
		prefix = "DIT"
	}
	return &EnvelopeSweepJob{
		envRepo: envRepo,
		sink:    sink,
		prefix:  prefix,
		minAge:  24 * time.Hour,
		logger:  logger,
	}
}

// Run 执行导出目录清扫任务。
func (j *EnvelopeSweepJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	j.logger.Info("Starting envelope sweep job...")

	files, err := j.sink.List(ctx)
	if err != nil {
		j.logger.Error("Failed to list export directory", slog.Any("error", err))
		return
	}
	if len(files) == 0 {
		j.logger.Info("Export directory is empty, nothing to sweep")
		return
	}

	// 以当年和去年的档案为准；更早年份的文件不归这个任务管
	keep := make(map[string]bool)
	deleted := make(map[string]bool)
	now := time.Now()
	for _, year := range []string{now.Format("06"), now.AddDate(-1, 0, 0).Format("06")} {
		archived, err := j.envRepo.ListForYear(ctx, year)
		if err != nil {
			j.logger.Error("Failed to list archived envelopes", slog.String("year", year), slog.Any("error", err))
			return
		}
		for _, env := range archived {
			name := path.Base(env.XMLFile)
			if env.Deleted {
				deleted[name] = true
			} else {
				keep[name] = true
			}
		}
	}

	removed := 0
	skipped := 0
	for _, f := range files {
		if now.Sub(f.ModTime) < j.minAge {
			skipped++
			continue
		}
		orphan := strings.HasPrefix(f.Name, j.prefix) && !keep[f.Name] && !deleted[f.Name]
		if !deleted[f.Name] && !orphan {
			continue
		}
		if err := j.sink.Remove(ctx, f.Name); err != nil {
			j.logger.Error("Failed to remove envelope file", slog.String("file", f.Name), slog.Any("error", err))
			continue
		}
		removed++
		j.logger.Info("Removed envelope file", slog.String("file", f.Name), slog.Bool("orphan", orphan))
	}

	j.logger.Info("Envelope sweep job completed",
		slog.Int("scanned", len(files)),
		slog.Int("removed", removed),
		slog.Int("too_recent", skipped),
	)
}

// Name 返回任务名称。
func (j *EnvelopeSweepJob) Name() string {
	return "EnvelopeSweepJob"
}
