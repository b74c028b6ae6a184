package cube_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubikpow/v1/internal/core/puzzle/testutil"
	"github.com/rubikpow/v1/pkg/types"
)

// TestInverseLaw 测试逆转动恢复定律
//
// 对任意目标与次数 k，先应用 (target, k) 再应用 (target, (4-k) mod 4)
// 必须逐位恢复先前的规范序列化。
func TestInverseLaw(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5} {
		for _, target := range testutil.AllMoveTargets() {
			for turns := uint8(0); turns <= 3; turns++ {
				c := testutil.MustCube(t, size)
				// 先偏离还原态，避免在平凡状态上空转
				c.ApplyAll([]types.Move{
					types.NewMove(types.MoveR, 1),
					types.NewMove(types.MoveF, 2),
				})
				before := c.CanonicalSerialize()

				m := types.NewMove(target, turns)
				c.Apply(m)
				c.Apply(m.Inverse())

				assert.True(t, bytes.Equal(before, c.CanonicalSerialize()),
					"size=%d target=%v turns=%d", size, target, turns)
			}
		}
	}
}

// TestFourQuarterTurnsIdentity 测试四次四分之一转为恒等
func TestFourQuarterTurnsIdentity(t *testing.T) {
	for _, size := range []int{2, 3, 4} {
		for _, target := range testutil.AllMoveTargets() {
			c := testutil.MustCube(t, size)
			before := c.CanonicalSerialize()
			for i := 0; i < 4; i++ {
				c.Apply(types.NewMove(target, 1))
			}
			assert.True(t, bytes.Equal(before, c.CanonicalSerialize()),
				"size=%d target=%v", size, target)
		}
	}
}

// TestTurnsCongruence 测试次数同余等效
//
// 同轴上归一化次数同余的两个转动值必须有完全相同的效果；
// k 次四分之一转与一次 Turns=k 等效。
func TestTurnsCongruence(t *testing.T) {
	for _, target := range testutil.AllMoveTargets() {
		a := testutil.MustCube(t, 3)
		b := testutil.MustCube(t, 3)

		// NewMove 把 5 归一化为 1
		a.Apply(types.NewMove(target, 5))
		b.Apply(types.NewMove(target, 1))
		assert.True(t, a.Equal(b), "target=%v: 5 与 1 应等效", target)

		// Turns=2 等于连续两次 Turns=1
		a2 := testutil.MustCube(t, 3)
		b2 := testutil.MustCube(t, 3)
		a2.Apply(types.NewMove(target, 2))
		b2.Apply(types.NewMove(target, 1))
		b2.Apply(types.NewMove(target, 1))
		assert.True(t, a2.Equal(b2), "target=%v: 2 与 1+1 应等效", target)
	}
}

// TestZeroTurnsNoop 测试零次转动为空操作
func TestZeroTurnsNoop(t *testing.T) {
	for _, target := range testutil.AllMoveTargets() {
		c := testutil.MustCube(t, 4)
		c.Apply(types.NewMove(types.MoveL, 1))
		before := c.CanonicalSerialize()
		c.Apply(types.NewMove(target, 0))
		assert.True(t, bytes.Equal(before, c.CanonicalSerialize()), "target=%v", target)
	}
}

// TestUpTurnReference 测试 U 转动的基准效果
//
// 还原态应用 U 后，四个侧面的最上行沿 Front←Right←Back←Left←Front
// 流动，Up 面自身只做面内旋转（仍为白色），Down 面不受影响。
func TestUpTurnReference(t *testing.T) {
	c := testutil.MustCube(t, 3)
	c.Apply(types.NewMove(types.MoveU, 1))

	checkRow := func(face types.Face, row int, want types.Color) {
		t.Helper()
		for col := 0; col < 3; col++ {
			assert.Equal(t, want, c.At(face, row, col), "face=%v row=%d col=%d", face, row, col)
		}
	}

	checkRow(types.FaceFront, 0, types.ColorGreen)  // 原 Right
	checkRow(types.FaceRight, 0, types.ColorOrange) // 原 Back
	checkRow(types.FaceBack, 0, types.ColorBlue)    // 原 Left
	checkRow(types.FaceLeft, 0, types.ColorRed)     // 原 Front

	// 只有最上行流动
	checkRow(types.FaceFront, 1, types.ColorRed)
	checkRow(types.FaceFront, 2, types.ColorRed)
	checkRow(types.FaceDown, 0, types.ColorYellow)
	// Up 面面内旋转不变色
	checkRow(types.FaceUp, 0, types.ColorWhite)
}

// TestColorMultisetConserved 测试颜色多重集守恒
//
// 转动只置换贴纸：任何序列之后每种颜色仍然恰好 size² 个。
func TestColorMultisetConserved(t *testing.T) {
	sequence := []types.Move{
		types.NewMove(types.MoveR, 1),
		types.NewMove(types.MoveU, 3),
		types.NewMove(types.MoveFw, 2),
		types.NewMove(types.MoveX, 1),
		types.NewMove(types.MoveDw, 1),
		types.NewMove(types.MoveZ, 3),
		types.NewMove(types.MoveB, 2),
	}
	for _, size := range []int{2, 3, 4, 5, 6} {
		c := testutil.MustCube(t, size)
		c.ApplyAll(sequence)

		counts := testutil.ColorCounts(c)
		require.Len(t, counts, types.ColorCount)
		for color, count := range counts {
			assert.Equal(t, size*size, count, "size=%d color=%v", size, color)
		}
	}
}

// TestWideDegenerateSafe 测试退化宽转安全
//
// 尺寸 2 没有独立的第二层，宽转与单面转动等效且绝不 panic。
func TestWideDegenerateSafe(t *testing.T) {
	pairs := []struct {
		wide  types.MoveTarget
		outer types.MoveTarget
	}{
		{types.MoveUw, types.MoveU},
		{types.MoveDw, types.MoveD},
		{types.MoveLw, types.MoveL},
		{types.MoveRw, types.MoveR},
		{types.MoveFw, types.MoveF},
		{types.MoveBw, types.MoveB},
	}
	for _, p := range pairs {
		wide := testutil.MustCube(t, 2)
		outer := testutil.MustCube(t, 2)
		wide.Apply(types.NewMove(p.wide, 1))
		outer.Apply(types.NewMove(p.outer, 1))
		assert.True(t, wide.Equal(outer), "尺寸2: %v 应与 %v 等效", p.wide, p.outer)
	}
}

// TestWideMovesSecondLayer 测试宽转搬动第二层
//
// 4 阶魔方 Uw 之后，侧面第 0、1 行都已流动，第 2、3 行保持不动。
func TestWideMovesSecondLayer(t *testing.T) {
	c := testutil.MustCube(t, 4)
	c.Apply(types.NewMove(types.MoveUw, 1))

	for col := 0; col < 4; col++ {
		assert.Equal(t, types.ColorGreen, c.At(types.FaceFront, 0, col))
		assert.Equal(t, types.ColorGreen, c.At(types.FaceFront, 1, col))
		assert.Equal(t, types.ColorRed, c.At(types.FaceFront, 2, col))
		assert.Equal(t, types.ColorRed, c.At(types.FaceFront, 3, col))
	}
}

// TestWholeCubeOrientation 测试整体重定向的朝向语义
//
// X 绕 R 轴：原 Front 面翻到 Up。作为位置建模，状态真实变更，
// 规范序列化如实反映。
func TestWholeCubeOrientation(t *testing.T) {
	c := testutil.MustCube(t, 3)
	before := c.CanonicalSerialize()
	c.Apply(types.NewMove(types.MoveX, 1))

	assert.False(t, bytes.Equal(before, c.CanonicalSerialize()), "整体转动是真实状态变更")
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			assert.Equal(t, types.ColorRed, c.At(types.FaceUp, r, col), "X 后 Up 应为原 Front 色")
		}
	}
}

// TestWholeCubeEquivalence 测试整体转动与逐层转动的等价性
//
// Y 与（U 全部层 + Down 面修正)——直接验证 Y 等于 Uw 推广到
// 所有层的效果：对 2 阶，Y 应等价于 U 与 D' 的组合。
func TestWholeCubeEquivalence(t *testing.T) {
	a := testutil.MustCube(t, 2)
	b := testutil.MustCube(t, 2)

	a.Apply(types.NewMove(types.MoveY, 1))
	b.Apply(types.NewMove(types.MoveU, 1))
	b.Apply(types.NewMove(types.MoveD, 3))

	assert.True(t, a.Equal(b), "2 阶 Y 应等价于 U + D'")
}

// TestMoveEngineTotal 测试引擎对全词表全尺寸不失败
func TestMoveEngineTotal(t *testing.T) {
	for size := 2; size <= 8; size++ {
		c := testutil.MustCube(t, size)
		for _, target := range testutil.AllMoveTargets() {
			for turns := uint8(0); turns <= 3; turns++ {
				require.NotPanics(t, func() {
					c.Apply(types.NewMove(target, turns))
				}, "size=%d target=%v turns=%d", size, target, turns)
			}
		}
	}
}
