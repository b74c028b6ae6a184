// Package log 提供日志管理功能的 fx 模块配置
package log

import (
	"go.uber.org/fx"

	logconfig "github.com/rubikpow/v1/internal/config/log"
	logInterface "github.com/rubikpow/v1/pkg/interfaces/infrastructure/log"
)

// Module 返回日志基础设施的 fx 模块
//
// 需要容器内已有 *logconfig.Config（通常由应用层 fx.Supply 提供）。
// 创建的实例同时注册为全局日志记录器，供早期路径使用。
func Module() fx.Option {
	return fx.Module("log",
		fx.Provide(func(cfg *logconfig.Config) (logInterface.Logger, error) {
			logger, err := New(cfg)
			if err != nil {
				return nil, err
			}
			SetLogger(logger)
			return logger, nil
		}),
	)
}
