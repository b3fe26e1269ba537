/*
 * @Description: 导出发布服务（渲染 → 校验 → 落盘 → 状态推进）
 * @Author: 安知鱼
 * @Date: 2026-02-10
 */
package publish

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/anzhiyu-c/tariff-app/internal/infra/storage"
	"github.com/anzhiyu-c/tariff-app/internal/pkg/event"
	"github.com/anzhiyu-c/tariff-app/pkg/constant"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/repository"
	envelope_service "github.com/anzhiyu-c/tariff-app/pkg/service/envelope"
	"github.com/anzhiyu-c/tariff-app/pkg/service/utility"
	workbasket_service "github.com/anzhiyu-c/tariff-app/pkg/service/workbasket"
)

// Options 发布服务的配置。
type Options struct {
	// MaxEnvelopeSize 单个 envelope 的字节上限
	MaxEnvelopeSize int
	// SeedEnvelopeID 每年首个 envelope 的序号底座（默认 1）
	SeedEnvelopeID int
	// FilePrefix 导出文件名前缀，下游按 {前缀}{YYNNNN}.xml 识别（默认 DIT）
	FilePrefix string
}

// Result 一次发布的产出。
type Result struct {
	WorkBasketID string
	Envelopes    []*model.Envelope
	// Oversize 列出超限独占的 envelope 标识符（发布仍然成功）
	Oversize []string
}

// Service 发布服务接口。
type Service interface {
	// Publish 把一个 ready_for_export 的 workbasket 渲染为一个或多个
	// DIT{YYNNNN}.xml 文件，校验后归档并把 workbasket 推进到 sent。
	Publish(ctx context.Context, workbasketID string) (*Result, error)
}

type publishServiceImpl struct {
	wbSvc      workbasket_service.Service
	txRepo     repository.TransactionRepository
	entityRepo repository.TrackedEntityRepository
	envRepo    repository.EnvelopeRepository
	sink       storage.IEnvelopeSink
	validator  *envelope_service.Validator
	locker     *utility.KeyLocker
	cacheSvc   utility.CacheService
	eventBus   *event.EventBus
	opts       Options
}

// NewPublishService 创建发布服务。
func NewPublishService(
	wbSvc workbasket_service.Service,
	txRepo repository.TransactionRepository,
	entityRepo repository.TrackedEntityRepository,
	envRepo repository.EnvelopeRepository,
	sink storage.IEnvelopeSink,
	cacheSvc utility.CacheService,
	eventBus *event.EventBus,
	opts Options,
) Service {
	if opts.MaxEnvelopeSize <= 0 {
		opts.MaxEnvelopeSize = 40 * 1024 * 1024
	}
	if opts.SeedEnvelopeID < 1 {
		opts.SeedEnvelopeID = 1
	}
	if opts.FilePrefix == "" {
		opts.FilePrefix = "DIT"
	}
	return &publishServiceImpl{
		wbSvc:      wbSvc,
		txRepo:     txRepo,
		entityRepo: entityRepo,
		envRepo:    envRepo,
		sink:       sink,
		validator:  envelope_service.NewValidator(),
		locker:     utility.NewKeyLocker(),
		cacheSvc:   cacheSvc,
		eventBus:   eventBus,
		opts:       opts,
	}
}

// processingCacheKey 发布互斥标记的缓存键
const processingCacheKey = "tariff:envelope:processing"

// processingTTL 发布互斥标记的保底过期时间（30分钟）
const processingTTL = 30 * time.Minute

// txSource 把一个 workbasket 的事务列表适配成拉式事务流。
type txSource struct {
	repo    repository.TrackedEntityRepository
	pending []*model.Transaction
}

// Next 返回下一个事务及其版本行，流结束时返回 (nil, nil)。
func (s *txSource) Next(ctx context.Context) (*model.TransactionRecords, error) {
	if len(s.pending) == 0 {
		return nil, nil
	}
	tx := s.pending[0]
	s.pending = s.pending[1:]

	entities, err := s.repo.ListForTransaction(ctx, tx.ID)
	if err != nil {
		return nil, fmt.Errorf("读取事务 %s 的版本行失败: %w", tx.ID, err)
	}
	return &model.TransactionRecords{Transaction: tx, Entities: entities}, nil
}

// Publish 把一个 ready_for_export 的 workbasket 渲染并归档。
func (s *publishServiceImpl) Publish(ctx context.Context, workbasketID string) (*Result, error) {
	wb, err := s.wbSvc.Get(ctx, workbasketID)
	if err != nil {
		return nil, err
	}
	if wb.Status != model.StatusReadyForExport {
		return nil, fmt.Errorf("%w: workbasket %s 处于 %s，不可导出", constant.ErrWorkflowTransition, workbasketID, wb.Status)
	}

	// 发布全程互斥：同一时刻只允许一个打包任务在跑
	if flag, err := s.cacheSvc.Get(ctx, processingCacheKey); err == nil && flag != "" {
		return nil, constant.ErrEnvelopeProcessing
	}
	yearKey := time.Now().Format("06")
	s.locker.Lock(yearKey)
	defer s.locker.Unlock(yearKey)
	if err := s.cacheSvc.Set(ctx, processingCacheKey, workbasketID, processingTTL); err != nil {
		log.Printf("警告：写入发布互斥标记失败: %v", err)
	}
	defer func() {
		if err := s.cacheSvc.Delete(ctx, processingCacheKey); err != nil {
			log.Printf("警告：清除发布互斥标记失败: %v", err)
		}
	}()

	// 收集待导出的事务，空 workbasket 直接拒绝
	txs, err := s.txRepo.ListByWorkBasket(ctx, workbasketID)
	if err != nil {
		return nil, fmt.Errorf("读取 workbasket 事务失败: %w", err)
	}
	var exportable []*model.Transaction
	for _, tx := range txs {
		n, err := s.txRepo.CountEntities(ctx, tx.ID)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			exportable = append(exportable, tx)
		}
	}
	if len(exportable) == 0 {
		return nil, constant.ErrEnvelopeEmpty
	}

	result, err := s.renderAndArchive(ctx, workbasketID, exportable)
	if err != nil {
		// 导出失败推进到 export_error，失败原因原样上抛
		if _, terr := s.wbSvc.Transition(ctx, workbasketID, model.StatusExportError); terr != nil {
			log.Printf("警告：workbasket %s 推进到 export_error 失败: %v", workbasketID, terr)
		}
		return nil, err
	}

	if _, err := s.wbSvc.Transition(ctx, workbasketID, model.StatusSent); err != nil {
		return nil, fmt.Errorf("workbasket 推进到 sent 失败: %w", err)
	}
	if s.eventBus != nil {
		for _, env := range result.Envelopes {
			s.eventBus.Publish(constant.EventEnvelopePublished, env.EnvelopeID)
		}
	}
	return result, nil
}

// nextIDAllocator 返回一次渲染内单调推进的标识符分配器。
// 起点取数据库里当年最新的 envelope，之后在内存里连续推进。
func (s *publishServiceImpl) nextIDAllocator() envelope_service.IDAllocator {
	var prev string
	var primed bool
	return func(ctx context.Context) (string, error) {
		now := time.Now()
		if !primed {
			latest, err := s.envRepo.LatestForYear(ctx, now.Format("06"))
			if err != nil {
				return "", err
			}
			if latest != nil {
				prev = latest.EnvelopeID
			}
			primed = true
		}
		next, err := envelope_service.NextEnvelopeID(prev, now, s.opts.SeedEnvelopeID)
		if err != nil {
			return "", err
		}
		prev = next
		return next, nil
	}
}

// renderAndArchive 渲染全部 envelope，逐个校验、提交并登记档案。
func (s *publishServiceImpl) renderAndArchive(ctx context.Context, workbasketID string, txs []*model.Transaction) (*Result, error) {
	sinkFactory := func(ctx context.Context, envelopeID string) (storage.EnvelopeWriter, error) {
		return s.sink.Create(ctx, fmt.Sprintf("%s%s.xml", s.opts.FilePrefix, envelopeID))
	}

	ms := envelope_service.NewMultiFileSerializer(s.opts.MaxEnvelopeSize, sinkFactory, s.nextIDAllocator())
	it := ms.SplitRender(ctx, &txSource{repo: s.entityRepo, pending: txs})

	result := &Result{WorkBasketID: workbasketID}
	for {
		rendered, err := it.Next(ctx)
		if err != nil {
			return nil, err
		}
		if rendered == nil {
			break
		}

		path, err := rendered.Output.Commit()
		if err != nil {
			return nil, fmt.Errorf("envelope %s 落盘失败: %w", rendered.EnvelopeID, err)
		}

		// 校验已提交的文件，schema / 顺序错误都是硬失败
		if err := s.validateFile(ctx, rendered.Output.Name()); err != nil {
			if rerr := s.sink.Remove(ctx, rendered.Output.Name()); rerr != nil {
				log.Printf("警告：清理校验失败的 envelope 文件 %s 失败: %v", rendered.Output.Name(), rerr)
			}
			return nil, fmt.Errorf("envelope %s 校验失败: %w", rendered.EnvelopeID, err)
		}

		archived, err := s.envRepo.Create(ctx, rendered.EnvelopeID, path)
		if err != nil {
			return nil, fmt.Errorf("登记 envelope %s 档案失败: %w", rendered.EnvelopeID, err)
		}
		result.Envelopes = append(result.Envelopes, archived)

		if rendered.IsOversize {
			log.Printf("警告：envelope %s 超过配置上限 %d 字节，已独占导出", rendered.EnvelopeID, rendered.MaxEnvelopeSize)
			result.Oversize = append(result.Oversize, rendered.EnvelopeID)
		}
	}
	return result, nil
}

// validateFile 读回已提交的文件并做结构与顺序校验。
func (s *publishServiceImpl) validateFile(ctx context.Context, name string) error {
	reader, err := s.sink.Open(ctx, name)
	if err != nil {
		return err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("读取已落盘的 envelope 失败: %w", err)
	}
	return s.validator.Validate(data)
}
