/*
 * @Description: 本地磁盘的 envelope 落盘实现
 * @Author: 安知鱼
 * @Date: 2026-02-10
 */
package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalSink 实现了 IEnvelopeSink 接口，用于处理与本机磁盘文件系统的所有交互。
// 写入先落到输出目录下的临时文件（uuid 命名），Commit 时 rename 到最终文件名，
// 同一文件系统内的 rename 是原子的，读者看不到半截文件。
type LocalSink struct {
	baseDir string
}

// NewLocalSink 是 LocalSink 的构造函数，接收导出文件的输出目录。
func NewLocalSink(baseDir string) (IEnvelopeSink, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("输出目录不能为空")
	}
	if err := os.MkdirAll(baseDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("无法创建输出目录 '%s': %w", baseDir, err)
	}
	return &LocalSink{baseDir: baseDir}, nil
}

// localWriter 是 LocalSink 的写入句柄。
type localWriter struct {
	file      *os.File
	tmpPath   string
	finalPath string
	name      string
	written   int64
	closed    bool
}

// Create 在输出目录下打开一个临时文件用于写入。
func (s *LocalSink) Create(ctx context.Context, name string) (EnvelopeWriter, error) {
	if strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("非法的文件名: %s", name)
	}
	tmpPath := filepath.Join(s.baseDir, fmt.Sprintf(".%s.tmp", uuid.NewString()))
	file, err := os.Create(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("无法创建临时文件 '%s': %w", tmpPath, err)
	}
	return &localWriter{
		file:      file,
		tmpPath:   tmpPath,
		finalPath: filepath.Join(s.baseDir, name),
		name:      name,
	}, nil
}

// Write 实现了 io.Writer。
func (w *localWriter) Write(p []byte) (int, error) {
	n, err := w.file.Write(p)
	w.written += int64(n)
	return n, err
}

// Commit 刷盘后把临时文件原子地 rename 到最终文件名。
func (w *localWriter) Commit() (string, error) {
	if w.closed {
		return "", fmt.Errorf("写入器已关闭")
	}
	w.closed = true

	if err := w.file.Sync(); err != nil {
		w.file.Close()
		os.Remove(w.tmpPath)
		return "", fmt.Errorf("同步文件到磁盘失败: %w", err)
	}
	if err := w.file.Close(); err != nil {
		os.Remove(w.tmpPath)
		return "", fmt.Errorf("关闭临时文件失败: %w", err)
	}
	if err := os.Rename(w.tmpPath, w.finalPath); err != nil {
		os.Remove(w.tmpPath)
		return "", fmt.Errorf("发布文件 '%s' 失败: %w", w.finalPath, err)
	}
	return w.finalPath, nil
}

// Abort 丢弃写入内容。
func (w *localWriter) Abort() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.file.Close()
	if err := os.Remove(w.tmpPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("清理临时文件 '%s' 失败: %w", w.tmpPath, err)
	}
	return nil
}

// Name 返回目标文件名。
func (w *localWriter) Name() string {
	return w.name
}

// Written 返回已写入的字节数。
func (w *localWriter) Written() int64 {
	return w.written
}

// Open 返回一个已提交文件的读取流。
func (s *LocalSink) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	path := filepath.Join(s.baseDir, name)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("导出文件不存在: %s", path)
		}
		return nil, fmt.Errorf("无法打开导出文件 '%s': %w", path, err)
	}
	return file, nil
}

// Remove 删除一个已提交的文件。
func (s *LocalSink) Remove(ctx context.Context, name string) error {
	path := filepath.Join(s.baseDir, name)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("删除导出文件 '%s' 失败: %w", path, err)
	}
	return nil
}

// IsExist 检查指定文件是否已提交存在。
func (s *LocalSink) IsExist(ctx context.Context, name string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.baseDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List 列出输出目录下的全部导出文件，临时文件不对外暴露。
func (s *LocalSink) List(ctx context.Context) ([]EnvelopeFileInfo, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []EnvelopeFileInfo{}, nil
		}
		return nil, fmt.Errorf("无法读取输出目录 '%s': %w", s.baseDir, err)
	}

	result := make([]EnvelopeFileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			log.Printf("警告: 无法获取文件 '%s' 的信息: %v", entry.Name(), err)
			continue
		}
		result = append(result, EnvelopeFileInfo{
			Name:    info.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return result, nil
}
