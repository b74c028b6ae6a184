// Package scramble 实现确定性打乱派生
//
// 🎲 **确定性打乱生成器 (Deterministic Scramble Generator)**
//
// 本包由 (nonce, 区块头) 派生可复现的打乱序列，专注于：
// - 种子派生：SHA3-256(nonce 小端 ‖ header)
// - 确定性抽取：钉死的 DRBG 与无模偏均匀采样
// - 防冗余规则：相邻两步不取同一个面
//
// 🎯 **职责边界**：
// - 只负责打乱的派生与应用，不涉及解法验证
// - 求解（挖矿）策略完全在引擎之外；InverseSolution 只是
//   打乱序列的代数逆，供测试与工具使用
//
// 🛡️ **确定性契约**：
// 固定 (尺寸, nonce, header) 下，任何平台、任何进程两次独立
// 调用必须产生逐位一致的转动序列与逐位一致的结果状态。
package scramble

import (
	"github.com/rubikpow/v1/internal/core/puzzle/cube"
	"github.com/rubikpow/v1/pkg/constants"
	logiface "github.com/rubikpow/v1/pkg/interfaces/infrastructure/log"
	puzzleiface "github.com/rubikpow/v1/pkg/interfaces/puzzle"
	"github.com/rubikpow/v1/pkg/types"
)

// 确保Generator实现了puzzleiface.ScrambleGenerator接口
var _ puzzleiface.ScrambleGenerator = (*Generator)(nil)

// Generator 确定性打乱生成器
type Generator struct {
	logger logiface.Logger // 可为 nil，核心路径不依赖日志
}

// NewGenerator 创建打乱生成器
//
// 参数:
//   - logger: 日志记录器，允许为 nil（库模式调用）
func NewGenerator(logger logiface.Logger) *Generator {
	return &Generator{logger: logger}
}

// ScrambleDeterministic 由 (nonce, header) 派生打乱序列并就地应用
//
// 派生流程（全部从钉死的 DRBG 抽取，见 drbg.go）：
//  1. 序列长度 = 20 + uintn(11)，均匀落在 [20, 30]
//  2. 每步先抽面（6 个外层面之一），与上一步同面则重抽——
//     防止 R R' / R2 R2 这类立即抵消的冗余
//  3. 再抽次数 1 + uintn(3)，均匀落在 {1,2,3}
//  4. 立即应用到目标魔方并记录，生成器与状态同步推进
//
// 返回实际应用的有序转动序列。
func (g *Generator) ScrambleDeterministic(c *cube.Cube, nonce uint64, header []byte) []types.Move {
	rng := newDRBG(nonce, header)

	length := constants.ScrambleMinMoves +
		int(rng.uintn(constants.ScrambleMaxMoves-constants.ScrambleMinMoves+1))

	moves := make([]types.Move, 0, length)
	prevFace := -1
	for i := 0; i < length; i++ {
		face := int(rng.uintn(types.FaceCount))
		for face == prevFace {
			face = int(rng.uintn(types.FaceCount))
		}
		prevFace = face

		m := types.Move{
			Target: types.MoveTarget(face),
			Turns:  uint8(1 + rng.uintn(3)),
		}
		c.Apply(m)
		moves = append(moves, m)
	}

	if g.logger != nil {
		g.logger.Debugf("打乱完成: size=%d nonce=%d 步数=%d", c.Size(), nonce, len(moves))
	}
	return moves
}

// InverseSolution 返回打乱序列的代数逆
//
// 逆序遍历并对每步取逆转动（次数 k → (4-k) mod 4）。对任何
// 打乱序列，其代数逆必然被验证接受（可解性定律）。
func InverseSolution(moves []types.Move) []types.Move {
	out := make([]types.Move, 0, len(moves))
	for i := len(moves) - 1; i >= 0; i-- {
		out = append(out, moves[i].Inverse())
	}
	return out
}
