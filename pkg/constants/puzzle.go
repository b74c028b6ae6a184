// Package constants 定义 RubikPoW 系统级常量
package constants

const (
	// MinCubeSize 魔方引擎支持的最小尺寸
	// 核心构造时强制检查；低于该值返回 SizeError
	MinCubeSize = 2

	// MaxCubeSize 对外服务层允许的最大尺寸
	// 这是运行时边界策略（性能保护），核心本身对任意 size >= 2 都安全
	MaxCubeSize = 16

	// ScrambleMinMoves 打乱序列的最小长度
	ScrambleMinMoves = 20

	// ScrambleMaxMoves 打乱序列的最大长度
	ScrambleMaxMoves = 30

	// DifficultyPrefixBytes 难度判定时取摘要前缀的字节数
	// 前 8 字节按大端序解释为 uint64，与目标值比较
	DifficultyPrefixBytes = 8
)
