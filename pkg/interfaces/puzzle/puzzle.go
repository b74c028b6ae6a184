// Package puzzle 提供 RubikPoW 谜题引擎的公共接口定义
//
// 🧩 **谜题工作量证明引擎 (Puzzle Proof-of-Work Engine)**
//
// 本文件定义了 n×n×n 魔方工作量证明核心的公共接口，专注于：
// - 确定性打乱：由 (nonce, 区块头) 派生可复现的打乱序列
// - 解法验证：回放候选转动序列并判断是否还原
// - 难度判定：组合规模计算与哈希低于目标的判定
//
// 🎯 **设计原则**
// - **纯函数库**：无共享可变状态，所有全局量都以显式参数传入
// - **跨验证者一致**：相同输入在任何平台产生逐位一致的结果
// - **全函数语义**：除构造外不失败，验证与难度判定永远返回布尔值
//
// 📊 **主要使用场景**
// - 外部共识运行时：逐区块调用打乱/验证/难度判定
// - API层：区块提交的验证接口
// - CLI工具：命令行打乱与验证
//
// 🔗 **与其他组件的关系**
// - 内部由 internal/core/puzzle 各子包实现
// - 求解策略（挖矿）完全在引擎之外
package puzzle

import (
	"math/big"

	"github.com/rubikpow/v1/internal/core/puzzle/cube"
	"github.com/rubikpow/v1/pkg/types"
)

// ScrambleGenerator 确定性打乱生成器的公共接口
//
// 🎯 **确定性契约**
// 对固定的 (尺寸, nonce, 区块头)，两次独立调用必须产生
// 逐位一致的转动序列和逐位一致的结果状态——这是跨验证者
// 兼容性的核心要求，也是整个系统最安全攸关的性质。
type ScrambleGenerator interface {
	// ScrambleDeterministic 由 (nonce, 区块头) 派生打乱序列并就地应用
	//
	// 参数:
	//   - c: 目标魔方（通常为刚构造的还原态），转动逐步就地应用
	//   - nonce: 区块 nonce（8 字节小端参与种子派生）
	//   - header: 区块头字节
	//
	// 返回:
	//   - []types.Move: 实际应用的有序转动序列
	ScrambleDeterministic(c *cube.Cube, nonce uint64, header []byte) []types.Move
}

// SolutionVerifier 解法验证服务的公共接口
//
// 验证对调用方状态无副作用（内部克隆回放），结果确定；
// 不做部分认可——序列未还原即整体拒绝。
type SolutionVerifier interface {
	// VerifySolution 回放候选解并判断是否还原
	//
	// 参数:
	//   - ref: 参考状态（已打乱的魔方），调用后保持原样
	//   - moves: 候选转动序列
	//
	// 返回:
	//   - bool: 回放后是否处于还原态
	VerifySolution(ref *cube.Cube, moves []types.Move) bool
}

// DifficultyOracle 难度计算与判定的公共接口
type DifficultyOracle interface {
	// CalculateDifficulty 返回给定尺寸魔方的组合难度值
	//
	// 尺寸 1/2/3 返回精确的状态空间总数；更大尺寸返回
	// 明确标注的数量级近似（并非真实状态计数）。
	CalculateDifficulty(size int) *big.Int

	// MeetsDifficulty 判定状态哈希是否低于目标
	//
	// 对规范序列化计算 SHA3-256，取摘要前 8 字节按大端序
	// 解释为 uint64，当且仅当该值 <= target 时返回 true。
	// 与是否还原无关——对传入的任何状态求值。
	MeetsDifficulty(c *cube.Cube, target uint64) bool
}
