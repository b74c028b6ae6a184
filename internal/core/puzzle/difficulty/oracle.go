// Package difficulty 实现组合难度计算与哈希目标判定
//
// 📊 **难度预言机 (Difficulty Oracle)**
//
// 本包提供两个独立的判定：
// - CalculateDifficulty：尺寸 → 组合规模（状态空间大小）
// - MeetsDifficulty：规范状态哈希是否低于数值目标
//
// 🎯 **设计说明**：
// 打乱由公开输入完全确定，合法打乱方天然掌握其代数逆，
// 因此转动解法本身不构成计算代价；真正的工作量证明来自
// 哈希低于目标的判定。解法要求定位为格式/防伪门槛还是
// 难度机制，是产品层决策，本包不做假设（见 DESIGN.md）。
package difficulty

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/rubikpow/v1/internal/core/puzzle/cube"
	"github.com/rubikpow/v1/pkg/constants"
	puzzleiface "github.com/rubikpow/v1/pkg/interfaces/puzzle"
)

// 确保Oracle实现了puzzleiface.DifficultyOracle接口
var _ puzzleiface.DifficultyOracle = (*Oracle)(nil)

// 精确的状态空间总数（既定组合数学结论）
var (
	// size2States 2×2×2 口袋魔方：7!·3⁶ = 3,674,160
	size2States = big.NewInt(3674160)

	// size3States 3×3×3 标准魔方：约 4.3×10¹⁹，超出 uint64
	size3States = mustParseBig("43252003274489856000")
)

// mustParseBig 解析十进制大整数常量；仅用于包内字面量
func mustParseBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("difficulty: invalid big integer literal " + s)
	}
	return v
}

// Oracle 难度预言机
type Oracle struct{}

// NewOracle 创建难度预言机
func NewOracle() *Oracle {
	return &Oracle{}
}

// CalculateDifficulty 返回给定尺寸的组合难度值
//
// 尺寸 1、2、3 返回精确的状态空间总数：
//
//	1 → 1
//	2 → 3,674,160
//	3 → 43,252,003,274,489,856,000
//
// 更大尺寸返回近似值：以三阶状态数为基数按 (n-2)² 指数外推，
// size3States^((n-2)²)。这是数量级近似，不是真实状态计数，
// 调用方不得假设精确性。
func (o *Oracle) CalculateDifficulty(size int) *big.Int {
	switch {
	case size <= 1:
		return big.NewInt(1)
	case size == 2:
		return new(big.Int).Set(size2States)
	case size == 3:
		return new(big.Int).Set(size3States)
	default:
		exp := big.NewInt(int64((size - 2) * (size - 2)))
		return new(big.Int).Exp(size3States, exp, nil)
	}
}

// MeetsDifficulty 哈希低于目标判定
//
// 对规范序列化计算 SHA3-256，取摘要前 8 字节按大端序解释为
// uint64，当且仅当该值 <= target 时返回 true。标准的
// hash-below-target 工作量证明检查，与是否还原无关——对传入
// 的任何状态（通常是打乱态）求值。target 为最大值时恒真。
func (o *Oracle) MeetsDifficulty(c *cube.Cube, target uint64) bool {
	digest := sha3.Sum256(c.CanonicalSerialize())
	prefix := binary.BigEndian.Uint64(digest[:constants.DifficultyPrefixBytes])
	return prefix <= target
}

// StateDigest 返回规范序列化的 SHA3-256 摘要
//
// 供服务层展示与缓存键使用；判定逻辑一律走 MeetsDifficulty。
func StateDigest(c *cube.Cube) [32]byte {
	return sha3.Sum256(c.CanonicalSerialize())
}
