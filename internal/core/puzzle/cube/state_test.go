package cube_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubikpow/v1/internal/core/puzzle/cube"
	"github.com/rubikpow/v1/pkg/types"
)

// TestNew 测试魔方构造
func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "最小尺寸2", size: 2, wantErr: false},
		{name: "标准尺寸3", size: 3, wantErr: false},
		{name: "偶数尺寸4", size: 4, wantErr: false},
		{name: "大尺寸16", size: 16, wantErr: false},
		{name: "尺寸1非法", size: 1, wantErr: true},
		{name: "尺寸0非法", size: 0, wantErr: true},
		{name: "负尺寸非法", size: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := cube.New(tt.size)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, c, "失败时不得返回部分状态")
				assert.True(t, errors.Is(err, types.ErrCubeTooSmall))
				var sizeErr *types.SizeError
				require.True(t, errors.As(err, &sizeErr))
				assert.Equal(t, tt.size, sizeErr.Size)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.size, c.Size())
			assert.True(t, c.IsSolved(), "新建魔方必须处于还原态")
		})
	}
}

// TestNewCanonicalColors 测试规范面色映射
func TestNewCanonicalColors(t *testing.T) {
	c, err := cube.New(3)
	require.NoError(t, err)

	expected := map[types.Face]types.Color{
		types.FaceUp:    types.ColorWhite,
		types.FaceDown:  types.ColorYellow,
		types.FaceFront: types.ColorRed,
		types.FaceBack:  types.ColorOrange,
		types.FaceLeft:  types.ColorBlue,
		types.FaceRight: types.ColorGreen,
	}
	for face, want := range expected {
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				assert.Equal(t, want, c.At(face, r, col), "面 %v 格 (%d,%d)", face, r, col)
			}
		}
	}
}

// TestClone 测试深拷贝独立性
func TestClone(t *testing.T) {
	original, err := cube.New(3)
	require.NoError(t, err)

	copied := original.Clone()
	assert.True(t, original.Equal(copied))

	// 修改副本不得影响原件
	copied.Apply(types.NewMove(types.MoveR, 1))
	assert.False(t, original.Equal(copied))
	assert.True(t, original.IsSolved())
	assert.False(t, copied.IsSolved())
}

// TestCanonicalSerializeGolden 测试规范序列化的固定字节
//
// 2 阶还原态的编码是跨实现契约，逐字节钉死：
// uint16 大端尺寸，随后按面序（U,D,L,R,F,B）各 4 个颜色码。
func TestCanonicalSerializeGolden(t *testing.T) {
	c, err := cube.New(2)
	require.NoError(t, err)

	want := []byte{
		0x00, 0x02, // size = 2
		0, 0, 0, 0, // Up: White
		1, 1, 1, 1, // Down: Yellow
		4, 4, 4, 4, // Left: Blue
		5, 5, 5, 5, // Right: Green
		2, 2, 2, 2, // Front: Red
		3, 3, 3, 3, // Back: Orange
	}
	assert.True(t, bytes.Equal(want, c.CanonicalSerialize()))
}

// TestCanonicalSerializeRoundTrip 测试序列化与反序列化互逆
func TestCanonicalSerializeRoundTrip(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5} {
		c, err := cube.New(size)
		require.NoError(t, err)

		// 打乱几步再序列化，避免只覆盖平凡状态
		c.ApplyAll([]types.Move{
			types.NewMove(types.MoveR, 1),
			types.NewMove(types.MoveU, 2),
			types.NewMove(types.MoveFw, 3),
			types.NewMove(types.MoveX, 1),
		})

		data := c.CanonicalSerialize()
		restored, err := cube.Deserialize(data)
		require.NoError(t, err)
		assert.True(t, c.Equal(restored), "尺寸 %d 往返失败", size)
		assert.True(t, bytes.Equal(data, restored.CanonicalSerialize()))
	}
}

// TestDeserializeRejectsMalformed 测试反序列化的输入校验
func TestDeserializeRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "空输入", data: nil},
		{name: "只有尺寸", data: []byte{0x00, 0x03}},
		{name: "尺寸过小", data: []byte{0x00, 0x01, 0}},
		{name: "长度不匹配", data: append([]byte{0x00, 0x02}, make([]byte, 23)...)},
		{name: "非法颜色码", data: func() []byte {
			c, _ := cube.New(2)
			data := c.CanonicalSerialize()
			data[5] = 9
			return data
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cube.Deserialize(tt.data)
			assert.Error(t, err)
		})
	}
}

// TestSingleMoveUnsolves 测试单步转动破坏还原态
//
// 对 size >= 2，任何非空的面/宽层转动都必须使 IsSolved 变 false；
// 整体重定向是纯换向，还原态保持还原。
func TestSingleMoveUnsolves(t *testing.T) {
	faceTargets := []types.MoveTarget{
		types.MoveU, types.MoveD, types.MoveL, types.MoveR, types.MoveF, types.MoveB,
		types.MoveUw, types.MoveDw, types.MoveLw, types.MoveRw, types.MoveFw, types.MoveBw,
	}
	for _, size := range []int{2, 3, 4, 5} {
		for _, target := range faceTargets {
			for turns := uint8(1); turns <= 3; turns++ {
				c, err := cube.New(size)
				require.NoError(t, err)
				c.Apply(types.NewMove(target, turns))
				assert.False(t, c.IsSolved(), "size=%d move=%v turns=%d", size, target, turns)
			}
		}
	}
}

// TestWholeCubeKeepsSolved 测试整体重定向保持还原态
func TestWholeCubeKeepsSolved(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5} {
		for _, target := range []types.MoveTarget{types.MoveX, types.MoveY, types.MoveZ} {
			for turns := uint8(1); turns <= 3; turns++ {
				c, err := cube.New(size)
				require.NoError(t, err)
				c.Apply(types.NewMove(target, turns))
				assert.True(t, c.IsSolved(), "size=%d move=%v turns=%d", size, target, turns)
			}
		}
	}
}
