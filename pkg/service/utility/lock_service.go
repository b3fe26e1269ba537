/*
 * @Description: 基于字符串键的进程内锁
 * @Author: 安知鱼
 * @Date: 2026-02-10
 */
package utility

import "sync"

// KeyLocker 提供了一个基于字符串键（例如，年份）的锁机制。
// 它能确保对同一个键的耗时操作（如同一年份的 envelope 序号分配与落盘）
// 不会被并发执行。
type KeyLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewKeyLocker 创建一个新的 KeyLocker 实例。
func NewKeyLocker() *KeyLocker {
	return &KeyLocker{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock 为给定的键获取一个锁。
// 如果另一个goroutine已经持有了该键的锁，当前goroutine将会阻塞等待，直到锁被释放。
func (l *KeyLocker) Lock(key string) {
	l.mu.Lock()
	lock, ok := l.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[key] = lock
	}
	l.mu.Unlock()

	lock.Lock()
}

// Unlock 释放给定键的锁。
func (l *KeyLocker) Unlock(key string) {
	l.mu.Lock()
	if lock, ok := l.locks[key]; ok {
		lock.Unlock()
	}
	// 键的数量有限（年份），保留mutex实例以避免重复分配。
	l.mu.Unlock()
}
