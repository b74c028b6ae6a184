package scramble_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubikpow/v1/internal/core/puzzle/scramble"
	"github.com/rubikpow/v1/internal/core/puzzle/testutil"
	"github.com/rubikpow/v1/pkg/constants"
	"github.com/rubikpow/v1/pkg/types"
)

// TestDeterminism 测试确定性定律
//
// 固定 (尺寸, nonce, 区块头) 下，两次独立打乱必须产生相同的
// 转动序列与相同的结果状态——整个系统最安全攸关的性质。
func TestDeterminism(t *testing.T) {
	gen := scramble.NewGenerator(nil)
	for _, size := range []int{2, 3, 4, 5} {
		a := testutil.MustCube(t, size)
		b := testutil.MustCube(t, size)

		movesA := gen.ScrambleDeterministic(a, testutil.TestNonce, []byte(testutil.TestHeader))
		movesB := gen.ScrambleDeterministic(b, testutil.TestNonce, []byte(testutil.TestHeader))

		require.Equal(t, movesA, movesB, "尺寸 %d 序列不一致", size)
		assert.True(t, bytes.Equal(a.CanonicalSerialize(), b.CanonicalSerialize()),
			"尺寸 %d 结果状态不一致", size)
	}
}

// TestDistinctInputsDiverge 测试不同输入产生不同序列
func TestDistinctInputsDiverge(t *testing.T) {
	gen := scramble.NewGenerator(nil)

	base := testutil.MustCube(t, 3)
	baseMoves := gen.ScrambleDeterministic(base, testutil.TestNonce, []byte(testutil.TestHeader))

	otherNonce := testutil.MustCube(t, 3)
	otherNonceMoves := gen.ScrambleDeterministic(otherNonce, testutil.TestNonce+1, []byte(testutil.TestHeader))
	assert.NotEqual(t, baseMoves, otherNonceMoves, "nonce 变化应改变序列")

	otherHeader := testutil.MustCube(t, 3)
	otherHeaderMoves := gen.ScrambleDeterministic(otherHeader, testutil.TestNonce, []byte("another_header"))
	assert.NotEqual(t, baseMoves, otherHeaderMoves, "区块头变化应改变序列")
}

// TestScrambleShape 测试打乱序列的结构约束
//
// 长度落在 [20, 30]；每步都是外层单面转动；次数在 {1,2,3}；
// 相邻两步不同面（防冗余规则）。
func TestScrambleShape(t *testing.T) {
	headers := []string{"mock_block_header", "header-a", "header-b", ""}
	gen := scramble.NewGenerator(nil)

	for _, header := range headers {
		for nonce := uint64(0); nonce < 8; nonce++ {
			c := testutil.MustCube(t, 3)
			moves := gen.ScrambleDeterministic(c, nonce, []byte(header))

			require.GreaterOrEqual(t, len(moves), constants.ScrambleMinMoves)
			require.LessOrEqual(t, len(moves), constants.ScrambleMaxMoves)

			for i, m := range moves {
				assert.Less(t, uint8(m.Target), uint8(types.FaceCount),
					"打乱只使用外层单面转动")
				assert.GreaterOrEqual(t, m.Turns, uint8(1))
				assert.LessOrEqual(t, m.Turns, uint8(3))
				if i > 0 {
					assert.NotEqual(t, moves[i-1].Target, m.Target,
						"相邻两步不得同面 (header=%q nonce=%d 步=%d)", header, nonce, i)
				}
			}
		}
	}
}

// TestScrambleUnsolves 测试打乱离开还原态
func TestScrambleUnsolves(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5} {
		c, _ := testutil.ScrambledCube(t, size)
		assert.False(t, c.IsSolved(), "尺寸 %d 打乱后不应还原", size)
	}
}

// TestSolvabilityLaw 测试可解性定律
//
// 打乱序列的代数逆（逆序 + 每步取逆）必然被验证接受。
// 使用与原始基准一致的固定输入 nonce=12345, header="mock_block_header"。
func TestSolvabilityLaw(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5} {
		c, moves := testutil.ScrambledCube(t, size)

		solution := scramble.InverseSolution(moves)
		require.Len(t, solution, len(moves))

		work := c.Clone()
		work.ApplyAll(solution)
		assert.True(t, work.IsSolved(), "尺寸 %d 逆解未还原", size)
	}
}

// TestInverseSolution 测试逆解构造
func TestInverseSolution(t *testing.T) {
	moves := []types.Move{
		types.NewMove(types.MoveR, 1),
		types.NewMove(types.MoveU, 2),
		types.NewMove(types.MoveF, 3),
	}
	want := []types.Move{
		types.NewMove(types.MoveF, 1),
		types.NewMove(types.MoveU, 2),
		types.NewMove(types.MoveR, 3),
	}
	assert.Equal(t, want, scramble.InverseSolution(moves))
	assert.Empty(t, scramble.InverseSolution(nil))
}
