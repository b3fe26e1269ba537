/*
 * @Description: 内存缓存服务实现（用于 Redis 不可用时的降级方案）
 * @Author: 安知鱼
 * @Date: 2026-02-10
 */
package utility

import (
	"context"
	"path"
	"strconv"
	"sync"
	"time"
)

// cacheItem 缓存项结构
type cacheItem struct {
	value      string
	expiration time.Time
	hasExpiry  bool
}

// isExpired 检查是否过期
func (item *cacheItem) isExpired() bool {
	if !item.hasExpiry {
		return false
	}
	return time.Now().After(item.expiration)
}

// memoryCacheService 是基于内存的缓存服务实现
type memoryCacheService struct {
	mu     sync.Mutex
	data   map[string]*cacheItem
	ticker *time.Ticker
	done   chan bool
}

// NewMemoryCacheService 创建内存缓存服务实例
func NewMemoryCacheService() CacheService {
	svc := &memoryCacheService{
		data:   make(map[string]*cacheItem),
		ticker: time.NewTicker(1 * time.Minute), // 每分钟清理一次过期数据
		done:   make(chan bool),
	}

	// 启动后台清理任务
	go svc.cleanupExpired()

	return svc
}

// cleanupExpired 定期清理过期的缓存项
func (s *memoryCacheService) cleanupExpired() {
	for {
		select {
		case <-s.ticker.C:
			s.mu.Lock()
			for key, item := range s.data {
				if item.isExpired() {
					delete(s.data, key)
				}
			}
			s.mu.Unlock()
		case <-s.done:
			s.ticker.Stop()
			return
		}
	}
}

// toString 把任意缓存值转成字符串存储
func toString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// Set 实现了设置缓存的方法
func (s *memoryCacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	item := &cacheItem{value: toString(value)}
	if expiration > 0 {
		item.expiration = time.Now().Add(expiration)
		item.hasExpiry = true
	}
	s.mu.Lock()
	s.data[key] = item
	s.mu.Unlock()
	return nil
}

// Get 实现了获取缓存的方法，不存在或已过期时返回空字符串
func (s *memoryCacheService) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.data[key]
	if !ok || item.isExpired() {
		return "", nil
	}
	return item.value, nil
}

// Delete 实现了删除缓存的方法
func (s *memoryCacheService) Delete(ctx context.Context, key ...string) error {
	s.mu.Lock()
	for _, k := range key {
		delete(s.data, k)
	}
	s.mu.Unlock()
	return nil
}

// Increment 实现了原子递增
func (s *memoryCacheService) Increment(ctx context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current int64
	if item, ok := s.data[key]; ok && !item.isExpired() {
		n, err := strconv.ParseInt(item.value, 10, 64)
		if err != nil {
			return 0, err
		}
		current = n
	}
	current++
	if item, ok := s.data[key]; ok {
		item.value = strconv.FormatInt(current, 10)
	} else {
		s.data[key] = &cacheItem{value: strconv.FormatInt(current, 10)}
	}
	return current, nil
}

// Expire 实现了设置键的过期时间
func (s *memoryCacheService) Expire(ctx context.Context, key string, expiration time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item, ok := s.data[key]; ok {
		item.expiration = time.Now().Add(expiration)
		item.hasExpiry = true
	}
	return nil
}

// Scan 实现了按通配符模式查找键（兼容 Redis 的 glob 风格）
func (s *memoryCacheService) Scan(ctx context.Context, pattern string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for key, item := range s.data {
		if item.isExpired() {
			continue
		}
		if ok, _ := path.Match(pattern, key); ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}
