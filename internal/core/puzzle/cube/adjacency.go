// Package cube 六个面的邻接关系表
package cube

import (
	"github.com/rubikpow/v1/pkg/types"
)

// stripKind 描述一条贴纸带在面网格中的走向与深度定位
//
// 深度 d 从被转动的面向内计数，0 为最外层。带内索引 i 的
// 格子坐标由 kind 决定：
//
//	stripRowTop:    [d][i]        stripRowBottom: [n-1-d][i]
//	stripColLeft:   [i][d]        stripColRight:  [i][n-1-d]
type stripKind uint8

const (
	stripRowTop stripKind = iota
	stripRowBottom
	stripColLeft
	stripColRight
)

// stripRef 邻接条目：某个面上的一条贴纸带
type stripRef struct {
	face     types.Face
	kind     stripKind
	reversed bool // 带内索引 i 映射为 n-1-i
}

// adjacency 每个面的层转动邻接表
//
// 约定的循环语义：保存条目 0 的带，然后 entry[k] ← entry[k+1]
// （k=0..2），最后 entry[3] ← 保存值。即绕该面顺时针转动一层时，
// 贴纸沿 entry[3]→entry[2]→entry[1]→entry[0]→entry[3] 流动。
//
// 深度 0 的效果与经典的六个手写层转动逐位一致；深度参数化后
// 同一张表覆盖任意内层（宽转）乃至整体重定向，这正是把邻接
// 关系做成显式数据而非六段专用代码的意义。
var adjacency = [types.FaceCount][4]stripRef{
	types.FaceUp: {
		{face: types.FaceFront, kind: stripRowTop},
		{face: types.FaceRight, kind: stripRowTop},
		{face: types.FaceBack, kind: stripRowTop},
		{face: types.FaceLeft, kind: stripRowTop},
	},
	types.FaceDown: {
		{face: types.FaceFront, kind: stripRowBottom},
		{face: types.FaceLeft, kind: stripRowBottom},
		{face: types.FaceBack, kind: stripRowBottom},
		{face: types.FaceRight, kind: stripRowBottom},
	},
	types.FaceLeft: {
		{face: types.FaceUp, kind: stripColLeft},
		{face: types.FaceBack, kind: stripColRight, reversed: true},
		{face: types.FaceDown, kind: stripColLeft},
		{face: types.FaceFront, kind: stripColLeft},
	},
	types.FaceRight: {
		{face: types.FaceUp, kind: stripColRight},
		{face: types.FaceFront, kind: stripColRight},
		{face: types.FaceDown, kind: stripColRight},
		{face: types.FaceBack, kind: stripColLeft, reversed: true},
	},
	types.FaceFront: {
		{face: types.FaceUp, kind: stripRowBottom},
		{face: types.FaceLeft, kind: stripColRight, reversed: true},
		{face: types.FaceDown, kind: stripRowTop, reversed: true},
		{face: types.FaceRight, kind: stripColLeft},
	},
	types.FaceBack: {
		{face: types.FaceUp, kind: stripRowTop},
		{face: types.FaceRight, kind: stripColRight},
		{face: types.FaceDown, kind: stripRowBottom, reversed: true},
		{face: types.FaceLeft, kind: stripColLeft, reversed: true},
	},
}

// cell 计算带内索引 i 在深度 d 的格子坐标
func (s stripRef) cell(i, depth, n int) (row, col int) {
	if s.reversed {
		i = n - 1 - i
	}
	switch s.kind {
	case stripRowTop:
		return depth, i
	case stripRowBottom:
		return n - 1 - depth, i
	case stripColLeft:
		return i, depth
	default: // stripColRight
		return i, n - 1 - depth
	}
}

// readStrip 读出一条贴纸带
func (c *Cube) readStrip(s stripRef, depth int) []types.Color {
	n := c.size
	out := make([]types.Color, n)
	grid := c.faces[s.face]
	for i := 0; i < n; i++ {
		row, col := s.cell(i, depth, n)
		out[i] = grid[row][col]
	}
	return out
}

// writeStrip 写回一条贴纸带
func (c *Cube) writeStrip(s stripRef, depth int, strip []types.Color) {
	n := c.size
	grid := c.faces[s.face]
	for i := 0; i < n; i++ {
		row, col := s.cell(i, depth, n)
		grid[row][col] = strip[i]
	}
}

// cycleLayer 绕 face 顺时针转动深度 depth 的一层
//
// 四条带分属四个不同的面，逐条搬移安全；每条带恰好 size 个
// 贴纸，整体是一次 4 路循环置换。depth 允许越过中线（退化
// 情形），效果依然是良定义的带循环，绝不越界。
func (c *Cube) cycleLayer(face types.Face, depth int) {
	entries := &adjacency[face]
	saved := c.readStrip(entries[0], depth)
	for k := 0; k < 3; k++ {
		c.writeStrip(entries[k], depth, c.readStrip(entries[k+1], depth))
	}
	c.writeStrip(entries[3], depth, saved)
}
