package utility

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryCacheSetGet(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryCacheService()

	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{name: "字符串值", value: "hello", expected: "hello"},
		{name: "字节切片", value: []byte("bytes"), expected: "bytes"},
		{name: "整数值", value: 42, expected: "42"},
		{name: "int64 值", value: int64(99), expected: "99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.Set(ctx, "key:"+tt.name, tt.value, 0); err != nil {
				t.Fatalf("Set 失败: %v", err)
			}
			got, err := svc.Get(ctx, "key:"+tt.name)
			if err != nil {
				t.Fatalf("Get 失败: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Get = %q, 期望 %q", got, tt.expected)
			}
		})
	}

	t.Run("不存在的键返回空字符串", func(t *testing.T) {
		got, err := svc.Get(ctx, "missing")
		if err != nil || got != "" {
			t.Errorf("Get = (%q, %v), 期望空字符串", got, err)
		}
	})
}

func TestMemoryCacheExpiration(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryCacheService()

	if err := svc.Set(ctx, "short", "v", 10*time.Millisecond); err != nil {
		t.Fatalf("Set 失败: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if got, _ := svc.Get(ctx, "short"); got != "" {
		t.Errorf("过期键应返回空字符串, got %q", got)
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryCacheService()

	svc.Set(ctx, "a", "1", 0)
	svc.Set(ctx, "b", "2", 0)
	if err := svc.Delete(ctx, "a", "b"); err != nil {
		t.Fatalf("Delete 失败: %v", err)
	}
	if got, _ := svc.Get(ctx, "a"); got != "" {
		t.Errorf("已删除的键应返回空字符串, got %q", got)
	}
}

func TestMemoryCacheIncrement(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryCacheService()

	for want := int64(1); want <= 3; want++ {
		got, err := svc.Increment(ctx, "counter")
		if err != nil {
			t.Fatalf("Increment 失败: %v", err)
		}
		if got != want {
			t.Errorf("Increment = %d, 期望 %d", got, want)
		}
	}
}

func TestMemoryCacheScan(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryCacheService()

	svc.Set(ctx, "tariff:envelope:1", "a", 0)
	svc.Set(ctx, "tariff:envelope:2", "b", 0)
	svc.Set(ctx, "other:key", "c", 0)

	keys, err := svc.Scan(ctx, "tariff:envelope:*")
	if err != nil {
		t.Fatalf("Scan 失败: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("Scan 命中 %d 个键, 期望 2: %v", len(keys), keys)
	}
}

func TestKeyLocker(t *testing.T) {
	locker := NewKeyLocker()

	t.Run("同一键互斥", func(t *testing.T) {
		locker.Lock("24")
		acquired := make(chan struct{})
		go func() {
			locker.Lock("24")
			close(acquired)
			locker.Unlock("24")
		}()

		select {
		case <-acquired:
			t.Fatal("锁被持有时不应再次获取成功")
		case <-time.After(20 * time.Millisecond):
		}

		locker.Unlock("24")
		select {
		case <-acquired:
		case <-time.After(time.Second):
			t.Fatal("释放后应能获取到锁")
		}
	})

	t.Run("不同键互不阻塞", func(t *testing.T) {
		locker.Lock("24")
		defer locker.Unlock("24")

		done := make(chan struct{})
		go func() {
			locker.Lock("25")
			locker.Unlock("25")
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("不同键的锁不应互相阻塞")
		}
	})

	t.Run("并发计数", func(t *testing.T) {
		counter := 0
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				locker.Lock("cnt")
				counter++
				locker.Unlock("cnt")
			}()
		}
		wg.Wait()
		if counter != 50 {
			t.Errorf("counter = %d, 期望 50", counter)
		}
	})
}
