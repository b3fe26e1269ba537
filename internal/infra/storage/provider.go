/*
 * @Description: 定义了 envelope 落盘驱动需要遵守的接口和公共结构
 * @Author: 安知鱼
 * @Date: 2026-02-10
 */
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// EnvelopeFileInfo 封装了 List 操作返回的单个导出文件的信息。
type EnvelopeFileInfo struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// 定义一个错误，用于表示某个功能不被当前 Sink 支持
var ErrFeatureNotSupported = errors.New("feature not supported by this sink")

// IEnvelopeSink 定义了 envelope 输出端必须实现的接口。
// 写入过程面向临时文件，Commit 之前的内容对读者不可见；
// 一个 Writer 只对应一个 envelope 文件。
type IEnvelopeSink interface {
	// Create 为指定文件名打开一个写入器。
	Create(ctx context.Context, name string) (EnvelopeWriter, error)
	// Open 返回一个已提交文件的读取流。
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Remove 删除一个已提交的文件。
	Remove(ctx context.Context, name string) error
	// IsExist 检查指定文件是否已提交存在。
	IsExist(ctx context.Context, name string) (bool, error)
	// List 列出输出目录下的全部导出文件。
	List(ctx context.Context) ([]EnvelopeFileInfo, error)
}

// EnvelopeWriter 是单个 envelope 文件的写入句柄。
// Commit 把写入的内容原子地发布到最终文件名；
// Abort 丢弃已写入的内容。二者只能调用其一。
type EnvelopeWriter interface {
	io.Writer
	// Commit 结束写入并发布文件，返回最终路径。
	Commit() (string, error)
	// Abort 丢弃写入内容，释放底层资源。
	Abort() error
	// Name 返回目标文件名。
	Name() string
	// Written 返回已写入的字节数。
	Written() int64
}
