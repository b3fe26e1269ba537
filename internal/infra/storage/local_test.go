package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalSinkCommit(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	sink, err := NewLocalSink(dir)
	if err != nil {
		t.Fatalf("NewLocalSink 失败: %v", err)
	}

	w, err := sink.Create(ctx, "DIT240001.xml")
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("Write 失败: %v", err)
	}
	if w.Written() != 5 {
		t.Errorf("Written = %d, 期望 5", w.Written())
	}

	// 提交前最终文件不可见
	if ok, _ := sink.IsExist(ctx, "DIT240001.xml"); ok {
		t.Error("提交前最终文件不应存在")
	}

	path, err := w.Commit()
	if err != nil {
		t.Fatalf("Commit 失败: %v", err)
	}
	if path != filepath.Join(dir, "DIT240001.xml") {
		t.Errorf("最终路径 = %s", path)
	}

	reader, err := sink.Open(ctx, "DIT240001.xml")
	if err != nil {
		t.Fatalf("Open 失败: %v", err)
	}
	defer reader.Close()
	data, _ := io.ReadAll(reader)
	if string(data) != "hello" {
		t.Errorf("读回内容 = %q, 期望 hello", data)
	}

	// 重复提交被拒绝
	if _, err := w.Commit(); err == nil {
		t.Error("重复 Commit 应报错")
	}
}

func TestLocalSinkAbort(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	sink, _ := NewLocalSink(dir)

	w, _ := sink.Create(ctx, "DIT240002.xml")
	w.Write([]byte("partial"))
	if err := w.Abort(); err != nil {
		t.Fatalf("Abort 失败: %v", err)
	}

	if ok, _ := sink.IsExist(ctx, "DIT240002.xml"); ok {
		t.Error("丢弃后最终文件不应存在")
	}
	// 临时文件也应被清理
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("丢弃后目录应为空, got %d 个文件", len(entries))
	}
}

func TestLocalSinkList(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	sink, _ := NewLocalSink(dir)

	for _, name := range []string{"DIT240001.xml", "DIT240002.xml"} {
		w, _ := sink.Create(ctx, name)
		w.Write([]byte("x"))
		if _, err := w.Commit(); err != nil {
			t.Fatalf("Commit 失败: %v", err)
		}
	}
	// 一个未提交的写入器：List 不应暴露其临时文件
	pending, _ := sink.Create(ctx, "DIT240003.xml")
	defer pending.Abort()

	files, err := sink.List(ctx)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("List 返回 %d 个文件, 期望 2", len(files))
	}
	for _, f := range files {
		if f.Size != 1 {
			t.Errorf("文件 %s 大小 = %d, 期望 1", f.Name, f.Size)
		}
	}
}

func TestLocalSinkRejectsPathTraversal(t *testing.T) {
	ctx := context.Background()
	sink, _ := NewLocalSink(t.TempDir())

	for _, bad := range []string{"../escape.xml", "a/b.xml", `a\b.xml`} {
		if _, err := sink.Create(ctx, bad); err == nil {
			t.Errorf("文件名 %q 应被拒绝", bad)
		}
	}
}

func TestLocalSinkRemove(t *testing.T) {
	ctx := context.Background()
	sink, _ := NewLocalSink(t.TempDir())

	w, _ := sink.Create(ctx, "DIT240001.xml")
	w.Write([]byte("x"))
	w.Commit()

	if err := sink.Remove(ctx, "DIT240001.xml"); err != nil {
		t.Fatalf("Remove 失败: %v", err)
	}
	if ok, _ := sink.IsExist(ctx, "DIT240001.xml"); ok {
		t.Error("删除后文件不应存在")
	}
	// 删除不存在的文件不报错
	if err := sink.Remove(ctx, "DIT249999.xml"); err != nil {
		t.Errorf("删除不存在的文件不应报错: %v", err)
	}
}
