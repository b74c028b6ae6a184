// Package testutil 提供谜题引擎测试的共享辅助
package testutil

import (
	"testing"

	"github.com/rubikpow/v1/internal/core/puzzle/cube"
	"github.com/rubikpow/v1/internal/core/puzzle/scramble"
	"github.com/rubikpow/v1/pkg/types"
)

// ==================== 测试数据 Fixtures ====================

// 与基准/原始测试保持一致的固定输入
const (
	TestNonce  = uint64(12345)
	TestHeader = "mock_block_header"
)

// MustCube 创建魔方，失败即终止测试
func MustCube(t *testing.T, size int) *cube.Cube {
	t.Helper()
	c, err := cube.New(size)
	if err != nil {
		t.Fatalf("创建 %d 阶魔方失败: %v", size, err)
	}
	return c
}

// ScrambledCube 创建并用固定输入打乱一个魔方
//
// 返回打乱后的状态与实际应用的转动序列。
func ScrambledCube(t *testing.T, size int) (*cube.Cube, []types.Move) {
	t.Helper()
	c := MustCube(t, size)
	gen := scramble.NewGenerator(nil)
	moves := gen.ScrambleDeterministic(c, TestNonce, []byte(TestHeader))
	return c, moves
}

// OuterMoves 返回六个外层单面转动目标
func OuterMoves() []types.MoveTarget {
	return []types.MoveTarget{
		types.MoveU, types.MoveD, types.MoveL,
		types.MoveR, types.MoveF, types.MoveB,
	}
}

// AllMoveTargets 返回完整转动词表
func AllMoveTargets() []types.MoveTarget {
	out := make([]types.MoveTarget, 0, types.MoveTargetCount)
	for t := types.MoveTarget(0); t < types.MoveTargetCount; t++ {
		out = append(out, t)
	}
	return out
}

// ColorCounts 统计各颜色贴纸数量
//
// 每种颜色应恒为 size²——转动只置换贴纸，多重集不变。
func ColorCounts(c *cube.Cube) map[types.Color]int {
	counts := make(map[types.Color]int, types.ColorCount)
	n := c.Size()
	for _, f := range types.AllFaces {
		for r := 0; r < n; r++ {
			for col := 0; col < n; col++ {
				counts[c.At(f, r, col)]++
			}
		}
	}
	return counts
}
