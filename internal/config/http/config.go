// Package http 提供 HTTP API 服务配置
package http

import "time"

// 默认服务配置
const (
	defaultListenAddr      = ":8545"
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultShutdownTimeout = 5 * time.Second
)

// Options HTTP服务配置选项
type Options struct {
	ListenAddr      string        `json:"listen_addr"`      // 监听地址
	ReadTimeout     time.Duration `json:"read_timeout"`     // 读超时
	WriteTimeout    time.Duration `json:"write_timeout"`    // 写超时
	ShutdownTimeout time.Duration `json:"shutdown_timeout"` // 优雅关闭超时
}

// Config HTTP服务配置实现
type Config struct {
	options *Options
}

// New 创建HTTP服务配置，userOptions 的非零字段覆盖默认值
func New(userOptions *Options) *Config {
	options := &Options{
		ListenAddr:      defaultListenAddr,
		ReadTimeout:     defaultReadTimeout,
		WriteTimeout:    defaultWriteTimeout,
		ShutdownTimeout: defaultShutdownTimeout,
	}
	if userOptions != nil {
		if userOptions.ListenAddr != "" {
			options.ListenAddr = userOptions.ListenAddr
		}
		if userOptions.ReadTimeout > 0 {
			options.ReadTimeout = userOptions.ReadTimeout
		}
		if userOptions.WriteTimeout > 0 {
			options.WriteTimeout = userOptions.WriteTimeout
		}
		if userOptions.ShutdownTimeout > 0 {
			options.ShutdownTimeout = userOptions.ShutdownTimeout
		}
	}
	return &Config{options: options}
}

// GetListenAddr 获取监听地址
func (c *Config) GetListenAddr() string {
	return c.options.ListenAddr
}

// GetReadTimeout 获取读超时
func (c *Config) GetReadTimeout() time.Duration {
	return c.options.ReadTimeout
}

// GetWriteTimeout 获取写超时
func (c *Config) GetWriteTimeout() time.Duration {
	return c.options.WriteTimeout
}

// GetShutdownTimeout 获取优雅关闭超时
func (c *Config) GetShutdownTimeout() time.Duration {
	return c.options.ShutdownTimeout
}
