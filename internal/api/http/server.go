// Package http 实现 RubikPoW 的 HTTP API 服务
//
// 🌐 **HTTP 验证服务 (HTTP Verification Service)**
//
// 对外暴露谜题引擎的操作接口：
// - POST /api/v1/pow/scramble   确定性打乱派生
// - POST /api/v1/pow/verify     候选解验证（可选难度判定）
// - GET  /api/v1/pow/difficulty/:size 组合难度查询
// - GET  /health                存活探测
// - GET  /metrics               Prometheus 指标
//
// 尺寸边界 2..=16 在这一层强制（运行时策略），核心引擎本身
// 对任意 size >= 2 都安全。
package http

import (
	"context"
	"net/http"

	evbus "github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpconfig "github.com/rubikpow/v1/internal/config/http"

	"github.com/rubikpow/v1/internal/api/http/handlers"
	"github.com/rubikpow/v1/internal/api/http/middleware"
	"github.com/rubikpow/v1/internal/core/infrastructure/storage/memory"
	"github.com/rubikpow/v1/pkg/constants/events"
	logiface "github.com/rubikpow/v1/pkg/interfaces/infrastructure/log"
	puzzleiface "github.com/rubikpow/v1/pkg/interfaces/puzzle"
)

// Server HTTP服务器结构
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     *httpconfig.Config
	logger     logiface.Logger
	handler    *handlers.PowHandler
	bus        evbus.Bus
}

// NewServer 创建新的HTTP服务器
func NewServer(
	config *httpconfig.Config,
	logger logiface.Logger,
	generator puzzleiface.ScrambleGenerator,
	verifier puzzleiface.SolutionVerifier,
	oracle puzzleiface.DifficultyOracle,
	cache *memory.Store,
	bus evbus.Bus,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.NewRequestID().Middleware())
	router.Use(middleware.NewLogger(logger).Middleware())
	router.Use(middleware.NewMetrics().Middleware())

	s := &Server{
		router:  router,
		config:  config,
		logger:  logger,
		handler: handlers.NewPowHandler(generator, verifier, oracle, cache, bus, logger),
		bus:     bus,
	}
	s.registerRoutes()
	s.registerEventListeners()
	return s
}

// registerRoutes 注册路由
func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	pow := s.router.Group("/api/v1/pow")
	{
		pow.POST("/scramble", s.handler.Scramble)
		pow.POST("/verify", s.handler.Verify)
		pow.GET("/difficulty/:size", s.handler.Difficulty)
	}
}

// registerEventListeners 注册事件订阅
//
// 验证事件的日志订阅者；外部运行时（奖励发放、难度调整）
// 可以订阅相同主题接管后续处理。
func (s *Server) registerEventListeners() {
	if s.bus == nil {
		return
	}
	_ = s.bus.Subscribe(events.TopicSolutionAccepted, func(ev handlers.SolutionAcceptedEvent) {
		s.logger.Infof("解法通过验证: size=%d nonce=%d 步数=%d digest=%s",
			ev.Size, ev.Nonce, ev.Moves, ev.Digest)
	})
	_ = s.bus.Subscribe(events.TopicSolutionRejected, func(ev handlers.SolutionAcceptedEvent) {
		s.logger.Debugf("解法被拒绝: size=%d nonce=%d 步数=%d", ev.Size, ev.Nonce, ev.Moves)
	})
}

// Start 启动HTTP服务
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.config.GetListenAddr(),
		Handler:      s.router,
		ReadTimeout:  s.config.GetReadTimeout(),
		WriteTimeout: s.config.GetWriteTimeout(),
	}

	s.logger.Infof("HTTP API 监听 %s", s.config.GetListenAddr())
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Errorf("HTTP服务异常退出: %v", err)
		}
	}()
	return nil
}

// Stop 优雅停止HTTP服务
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.GetShutdownTimeout())
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

// Router 暴露路由引擎，供测试注入请求
func (s *Server) Router() *gin.Engine {
	return s.router
}
