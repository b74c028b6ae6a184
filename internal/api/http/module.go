// Package http 提供 HTTP API 的 fx 模块配置
package http

import (
	"context"

	evbus "github.com/asaskevich/EventBus"
	"go.uber.org/fx"

	httpconfig "github.com/rubikpow/v1/internal/config/http"
	"github.com/rubikpow/v1/internal/core/infrastructure/storage/memory"
	logiface "github.com/rubikpow/v1/pkg/interfaces/infrastructure/log"
	puzzleiface "github.com/rubikpow/v1/pkg/interfaces/puzzle"
)

// ModuleInput 定义 HTTP API 模块的输入依赖
type ModuleInput struct {
	fx.In

	Config    *httpconfig.Config
	Logger    logiface.Logger
	Generator puzzleiface.ScrambleGenerator
	Verifier  puzzleiface.SolutionVerifier
	Oracle    puzzleiface.DifficultyOracle
}

// Module 返回 HTTP API 的 fx 模块
//
// 打乱缓存与事件总线在模块内创建：它们只服务于这一层，
// 核心引擎对其一无所知。
func Module() fx.Option {
	return fx.Module("api-http",
		fx.Provide(
			func() evbus.Bus { return evbus.New() },
			func(logger logiface.Logger) (*memory.Store, error) {
				return memory.New(logger)
			},
			func(in ModuleInput, cache *memory.Store, bus evbus.Bus) *Server {
				return NewServer(in.Config, in.Logger, in.Generator, in.Verifier, in.Oracle, cache, bus)
			},
		),
		fx.Invoke(func(lc fx.Lifecycle, server *Server, cache *memory.Store) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					return server.Start()
				},
				OnStop: func(ctx context.Context) error {
					err := server.Stop(ctx)
					_ = cache.Close()
					return err
				},
			})
		}),
	)
}
