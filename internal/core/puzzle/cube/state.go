// Package cube 实现 n×n×n 魔方的状态表示与转动语义
//
// 🧩 **谜题状态机 (Puzzle State Machine)**
//
// 本包是 RubikPoW 引擎的核心，包括：
// - 贴纸网格的状态表示与规范序列化（state.go）
// - 转动词表与置换规则（engine.go）
// - 六个面的邻接关系表（adjacency.go）
//
// 🎯 **职责边界**：
// - 只负责状态与转动，不涉及打乱派生（由 scramble 包负责）
// - 不涉及解法验证流程（由 verify 包负责）
// - 不涉及难度计算（由 difficulty 包负责）
//
// 🛡️ **不变量**：
// - 每个面恰好 size×size 个贴纸；全局颜色多重集恒为每色 size² 个
// - 转动是贴纸多重集上的双射：只置换，不创建、不销毁、不改色
// - 相同逻辑状态在任何平台序列化为相同字节
package cube

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/rubikpow/v1/pkg/constants"
	"github.com/rubikpow/v1/pkg/types"
)

// Cube n×n×n 魔方状态
//
// faces 按 types.Face 的规范序索引（Up, Down, Left, Right, Front, Back），
// 每个面是 size×size 的贴纸网格，faces[f][row][col]。
// 面的存储用定长数组而非 map：序列化与哈希依赖确定的面序。
type Cube struct {
	size  int
	faces [types.FaceCount][][]types.Color
}

// New 创建指定尺寸的还原态魔方
//
// 参数:
//   - size: 边长，必须 >= 2
//
// 返回:
//   - *Cube: 还原态魔方，每个面按规范映射单色
//   - error: size < 2 时返回 *types.SizeError，不产生部分状态
func New(size int) (*Cube, error) {
	if size < constants.MinCubeSize {
		return nil, &types.SizeError{Size: size}
	}
	c := &Cube{size: size}
	for _, f := range types.AllFaces {
		color := types.SolvedColor(f)
		grid := make([][]types.Color, size)
		for r := 0; r < size; r++ {
			row := make([]types.Color, size)
			for i := range row {
				row[i] = color
			}
			grid[r] = row
		}
		c.faces[f] = grid
	}
	return c, nil
}

// Size 返回魔方边长
func (c *Cube) Size() int {
	return c.size
}

// At 返回指定面某个贴纸的颜色
func (c *Cube) At(f types.Face, row, col int) types.Color {
	return c.faces[f][row][col]
}

// IsSolved 判断是否处于还原态
//
// 还原态定义为每个面单色：面内所有贴纸等于参考贴纸
// [size/2][size/2] 的颜色。偶数尺寸没有几何中心，参考贴纸
// 只是任取的一个格子——单色判定与具体取哪个格子无关。
// 注意判定的是"每面单色"，不要求面色等于规范映射：整体
// 重定向后的还原态同样算还原。
func (c *Cube) IsSolved() bool {
	mid := c.size / 2
	for _, f := range types.AllFaces {
		grid := c.faces[f]
		ref := grid[mid][mid]
		for _, row := range grid {
			for _, color := range row {
				if color != ref {
					return false
				}
			}
		}
	}
	return true
}

// Clone 深拷贝
//
// 唯一的状态分支手段：副本与原件值相等且独立可变。
// 验证流程依赖它避免消耗调用方的参考状态。
func (c *Cube) Clone() *Cube {
	out := &Cube{size: c.size}
	for _, f := range types.AllFaces {
		grid := make([][]types.Color, c.size)
		for r := 0; r < c.size; r++ {
			row := make([]types.Color, c.size)
			copy(row, c.faces[f][r])
			grid[r] = row
		}
		out.faces[f] = grid
	}
	return out
}

// Equal 判断两个魔方状态是否逐贴纸相等
func (c *Cube) Equal(other *Cube) bool {
	if other == nil || c.size != other.size {
		return false
	}
	for _, f := range types.AllFaces {
		for r := 0; r < c.size; r++ {
			for col := 0; col < c.size; col++ {
				if c.faces[f][r][col] != other.faces[f][r][col] {
					return false
				}
			}
		}
	}
	return true
}

// CanonicalSerialize 规范序列化
//
// 编码格式（兼容性关键契约，两个一致实现对等价状态必须
// 产生相同字节）：
//
//	uint16 大端 size
//	‖ 按面规范序（Up,Down,Left,Right,Front,Back）
//	  每面 size×size 个单字节颜色码，行优先
//
// 颜色码即 types.Color 的数值（White=0 … Green=5）。
func (c *Cube) CanonicalSerialize() []byte {
	out := make([]byte, 2, 2+types.FaceCount*c.size*c.size)
	binary.BigEndian.PutUint16(out, uint16(c.size))
	for _, f := range types.AllFaces {
		for _, row := range c.faces[f] {
			for _, color := range row {
				out = append(out, byte(color))
			}
		}
	}
	return out
}

// Deserialize 从规范序列化字节还原魔方状态
//
// CanonicalSerialize 的逆操作。字节长度、尺寸下限、颜色码
// 逐项校验，任何不一致返回错误且不产生部分状态。
func Deserialize(data []byte) (*Cube, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("canonical encoding too short: %d bytes", len(data))
	}
	size := int(binary.BigEndian.Uint16(data))
	if size < constants.MinCubeSize {
		return nil, &types.SizeError{Size: size}
	}
	want := 2 + types.FaceCount*size*size
	if len(data) != want {
		return nil, fmt.Errorf("canonical encoding length mismatch: got %d want %d", len(data), want)
	}

	c := &Cube{size: size}
	off := 2
	for _, f := range types.AllFaces {
		grid := make([][]types.Color, size)
		for r := 0; r < size; r++ {
			row := make([]types.Color, size)
			for i := range row {
				code := data[off]
				if code >= types.ColorCount {
					return nil, fmt.Errorf("invalid color code %d at offset %d", code, off)
				}
				row[i] = types.Color(code)
				off++
			}
			grid[r] = row
		}
		c.faces[f] = grid
	}
	return c, nil
}

// String 按面输出贴纸缩写，用于调试与 CLI 展示
func (c *Cube) String() string {
	var b strings.Builder
	for _, f := range types.AllFaces {
		b.WriteString(f.String())
		b.WriteString(": ")
		for r, row := range c.faces[f] {
			if r > 0 {
				b.WriteString(" / ")
			}
			for _, color := range row {
				b.WriteString(color.String())
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
