package task

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/anzhiyu-c/tariff-app/internal/infra/storage"
	"github.com/anzhiyu-c/tariff-app/pkg/constant"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/model"
	"github.com/anzhiyu-c/tariff-app/pkg/domain/repository"
	workbasket_service "github.com/anzhiyu-c/tariff-app/pkg/service/workbasket"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeWBRepo 只实现归档任务用到的 ListStale
type fakeWBRepo struct {
	repository.WorkBasketRepository

	stale []*model.WorkBasket
}

func (r *fakeWBRepo) ListStale(ctx context.Context, status model.WorkBasketStatus, before time.Time) ([]*model.WorkBasket, error) {
	return r.stale, nil
}

// fakeWBSvc 记录归档调用，指定 ID 归档失败
type fakeWBSvc struct {
	workbasket_service.Service

	archived []string
	failID   string
}

func (s *fakeWBSvc) Archive(ctx context.Context, id string) (*model.WorkBasket, error) {
	if id == s.failID {
		return nil, constant.ErrWorkflowTransition
	}
	s.archived = append(s.archived, id)
	return &model.WorkBasket{ID: id, Status: model.StatusArchived}, nil
}

func TestStaleWorkBasketJob(t *testing.T) {
	t.Run("归档全部过期草稿", func(t *testing.T) {
		wbRepo := &fakeWBRepo{stale: []*model.WorkBasket{{ID: "wb-1"}, {ID: "wb-2"}}}
		wbSvc := &fakeWBSvc{}

		NewStaleWorkBasketJob(wbRepo, wbSvc, 90*24*time.Hour, discardLogger()).Run()

		if len(wbSvc.archived) != 2 {
			t.Errorf("归档 %d 个, 期望 2: %v", len(wbSvc.archived), wbSvc.archived)
		}
	})

	t.Run("单个归档失败不影响其余", func(t *testing.T) {
		wbRepo := &fakeWBRepo{stale: []*model.WorkBasket{{ID: "wb-1"}, {ID: "wb-bad"}, {ID: "wb-3"}}}
		wbSvc := &fakeWBSvc{failID: "wb-bad"}

		NewStaleWorkBasketJob(wbRepo, wbSvc, 90*24*time.Hour, discardLogger()).Run()

		if len(wbSvc.archived) != 2 {
			t.Errorf("归档 %d 个, 期望 2: %v", len(wbSvc.archived), wbSvc.archived)
		}
	})

	t.Run("没有过期草稿时不动任何东西", func(t *testing.T) {
		wbSvc := &fakeWBSvc{}
		NewStaleWorkBasketJob(&fakeWBRepo{}, wbSvc, 0, discardLogger()).Run()
		if len(wbSvc.archived) != 0 {
			t.Errorf("不应有归档动作, got %v", wbSvc.archived)
		}
	})
}

// fakeSink 内存导出目录
type fakeSink struct {
	storage.IEnvelopeSink

	files   []storage.EnvelopeFileInfo
	removed []string
}

func (s *fakeSink) List(ctx context.Context) ([]storage.EnvelopeFileInfo, error) {
	return s.files, nil
}

func (s *fakeSink) Remove(ctx context.Context, name string) error {
	s.removed = append(s.removed, name)
	return nil
}

// fakeEnvRepo 按年份返回固定档案
type fakeEnvRepo struct {
	repository.EnvelopeRepository

	byYear map[string][]*model.Envelope
}

func (r *fakeEnvRepo) ListForYear(ctx context.Context, yy string) ([]*model.Envelope, error) {
	return r.byYear[yy], nil
}

func TestEnvelopeSweepJob(t *testing.T) {
	yy := time.Now().Format("06")
	old := time.Now().Add(-48 * time.Hour)
	fresh := time.Now().Add(-time.Hour)

	file := func(name string, mod time.Time) storage.EnvelopeFileInfo {
		return storage.EnvelopeFileInfo{Name: name, Size: 1, ModTime: mod}
	}

	t.Run("清理孤儿与删除标记的文件", func(t *testing.T) {
		sink := &fakeSink{files: []storage.EnvelopeFileInfo{
			file("DIT"+yy+"0001.xml", old), // 在档，保留
			file("DIT"+yy+"0002.xml", old), // 置了删除标记
			file("DIT"+yy+"0099.xml", old), // 孤儿：档案里没有
			file("other.txt", old),         // 前缀不符，不归这个任务管
		}}
		envRepo := &fakeEnvRepo{byYear: map[string][]*model.Envelope{
			yy: {
				{EnvelopeID: yy + "0001", XMLFile: "/data/envelopes/DIT" + yy + "0001.xml"},
				{EnvelopeID: yy + "0002", XMLFile: "/data/envelopes/DIT" + yy + "0002.xml", Deleted: true},
			},
		}}

		NewEnvelopeSweepJob(envRepo, sink, "DIT", discardLogger()).Run()

		want := map[string]bool{"DIT" + yy + "0002.xml": true, "DIT" + yy + "0099.xml": true}
		if len(sink.removed) != len(want) {
			t.Fatalf("删除了 %v, 期望 %v", sink.removed, want)
		}
		for _, name := range sink.removed {
			if !want[name] {
				t.Errorf("不应删除 %s", name)
			}
		}
	})

	t.Run("新文件不碰", func(t *testing.T) {
		sink := &fakeSink{files: []storage.EnvelopeFileInfo{
			file("DIT"+yy+"0099.xml", fresh),
		}}
		NewEnvelopeSweepJob(&fakeEnvRepo{}, sink, "DIT", discardLogger()).Run()
		if len(sink.removed) != 0 {
			t.Errorf("刚写出的文件不应被清理, got %v", sink.removed)
		}
	})

	t.Run("空目录直接返回", func(t *testing.T) {
		sink := &fakeSink{}
		NewEnvelopeSweepJob(&fakeEnvRepo{}, sink, "", discardLogger()).Run()
		if len(sink.removed) != 0 {
			t.Errorf("空目录不应有删除动作, got %v", sink.removed)
		}
	})
}
