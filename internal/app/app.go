// Package app 负责 RubikPoW 服务进程的装配与生命周期管理
//
// 🏗️ **应用装配 (Application Assembly)**
//
// 把各 fx 模块组装成完整的服务进程：
// - 基础设施层：日志
// - 核心层：谜题引擎（打乱/验证/难度）
// - 应用层：HTTP 验证 API
//
// 谜题核心是纯函数库，进程装配只为对外服务形态服务；
// 库模式调用方直接使用 internal/core/puzzle 各包即可。
package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	apihttp "github.com/rubikpow/v1/internal/api/http"
	httpconfig "github.com/rubikpow/v1/internal/config/http"
	logconfig "github.com/rubikpow/v1/internal/config/log"
	infralog "github.com/rubikpow/v1/internal/core/infrastructure/log"
	"github.com/rubikpow/v1/internal/core/puzzle"
)

// Options 应用配置选项
type Options struct {
	LogLevel   string // 日志级别
	LogPath    string // 日志输出路径（stdout/stderr/文件）
	ListenAddr string // HTTP 监听地址
}

// App 运行中的服务进程句柄
type App struct {
	fxApp *fx.App
}

// New 装配服务进程
func New(opts Options) *App {
	logCfg := logconfig.New(&logconfig.LogOptions{
		Level:    opts.LogLevel,
		FilePath: opts.LogPath,
	})
	httpCfg := httpconfig.New(&httpconfig.Options{
		ListenAddr: opts.ListenAddr,
	})

	fxApp := fx.New(
		fx.Supply(logCfg, httpCfg),
		infralog.Module(),
		puzzle.Module(),
		apihttp.Module(),
		fx.NopLogger,
	)
	return &App{fxApp: fxApp}
}

// Start 启动进程内所有模块
func (a *App) Start(ctx context.Context) error {
	return a.fxApp.Start(ctx)
}

// Stop 停止进程内所有模块
func (a *App) Stop(ctx context.Context) error {
	return a.fxApp.Stop(ctx)
}

// Run 启动并阻塞直到收到退出信号
func (a *App) Run(ctx context.Context) error {
	if err := a.Start(ctx); err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sigChan:
	case <-ctx.Done():
	}

	return a.Stop(context.Background())
}
