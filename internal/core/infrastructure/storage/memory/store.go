// Package memory 提供基于BigCache的内存缓存实现
//
// 缓存打乱结果：键为 (尺寸, nonce, 区块头摘要)，值为打乱态的
// 规范序列化与线格式转动序列。同一区块头的重复验证可以跳过
// 重新打乱——打乱是确定性的，缓存命中与重算结果必然一致。
package memory

import (
	"context"
	"time"

	"github.com/allegro/bigcache/v3"

	logiface "github.com/rubikpow/v1/pkg/interfaces/infrastructure/log"
)

// 缓存默认参数
const (
	defaultLifeWindow  = 10 * time.Minute
	defaultCleanWindow = 5 * time.Minute
	defaultShards      = 256
)

// Store 基于BigCache的打乱结果缓存
type Store struct {
	cache  *bigcache.BigCache
	logger logiface.Logger
}

// New 创建内存缓存实例
//
// BigCache 内部分片加锁，Store 可被并发使用。创建失败时返回
// 错误而非 nil 实例，调用方可降级为无缓存模式。
func New(logger logiface.Logger) (*Store, error) {
	config := bigcache.DefaultConfig(defaultLifeWindow)
	config.CleanWindow = defaultCleanWindow
	config.Shards = defaultShards

	cache, err := bigcache.New(context.Background(), config)
	if err != nil {
		return nil, err
	}
	return &Store{cache: cache, logger: logger}, nil
}

// Get 读取缓存值
func (s *Store) Get(key string) ([]byte, bool) {
	value, err := s.cache.Get(key)
	if err != nil {
		return nil, false
	}
	return value, true
}

// Set 写入缓存值
func (s *Store) Set(key string, value []byte) {
	if err := s.cache.Set(key, value); err != nil && s.logger != nil {
		s.logger.Warnf("写入缓存失败 key=%s: %v", key, err)
	}
}

// Close 释放缓存资源
func (s *Store) Close() error {
	return s.cache.Close()
}
