// Package puzzle 提供谜题引擎的 fx 模块配置
//
// 🧩 **Puzzle 模块 (Puzzle Module)**
//
// 本包把谜题引擎的三个服务装配进 fx 依赖注入容器：
// - scramble.Generator: 确定性打乱生成器
// - verify.Service: 解法验证服务
// - difficulty.Oracle: 难度预言机
//
// 魔方状态本身（cube.Cube）是纯值，不进容器——每个调用方
// 按需构造或克隆自己的实例，核心内部没有共享可变状态。
package puzzle

import (
	"go.uber.org/fx"

	"github.com/rubikpow/v1/internal/core/puzzle/difficulty"
	"github.com/rubikpow/v1/internal/core/puzzle/scramble"
	"github.com/rubikpow/v1/internal/core/puzzle/verify"
	logiface "github.com/rubikpow/v1/pkg/interfaces/infrastructure/log"
	puzzleiface "github.com/rubikpow/v1/pkg/interfaces/puzzle"
)

// ModuleInput 定义 puzzle 模块的输入依赖
type ModuleInput struct {
	fx.In

	Logger logiface.Logger `optional:"true"` // 日志记录器
}

// Module 返回谜题引擎的 fx 模块
func Module() fx.Option {
	return fx.Module("puzzle",
		fx.Provide(
			func(in ModuleInput) puzzleiface.ScrambleGenerator {
				return scramble.NewGenerator(in.Logger)
			},
			func(in ModuleInput) puzzleiface.SolutionVerifier {
				return verify.NewService(in.Logger)
			},
			func() puzzleiface.DifficultyOracle {
				return difficulty.NewOracle()
			},
		),
	)
}
