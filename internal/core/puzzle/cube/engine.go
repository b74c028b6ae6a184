// Package cube 转动词表到贴纸置换的映射
package cube

import (
	"github.com/rubikpow/v1/pkg/types"
)

// Apply 就地应用一次转动
//
// 次数先归一化到 0..=3，再按四分之一转逐次应用；0 次为空操作。
// 转动对合法词表是全函数：任何 size >= 2 都不会失败或越界。
// 每次转动都是贴纸多重集上的双射，应用 Turns k 后再应用同目标
// 的 (4-k) mod 4 恰好逐位还原先前状态。
func (c *Cube) Apply(m types.Move) {
	turns := int(m.Turns % 4)
	for t := 0; t < turns; t++ {
		c.applyQuarter(m.Target)
	}
}

// ApplyAll 按序应用一组转动
func (c *Cube) ApplyAll(moves []types.Move) {
	for _, m := range moves {
		c.Apply(m)
	}
}

// applyQuarter 应用一次顺时针四分之一转
func (c *Cube) applyQuarter(target types.MoveTarget) {
	switch {
	case target <= types.MoveB:
		// 外层单面：面内旋转 + 外层带循环
		face := types.Face(target)
		c.rotateFaceCW(face)
		c.cycleLayer(face, 0)

	case target <= types.MoveBw:
		// 宽转：外层 + 向内的第二层
		// 第二层只在不与对面外层重合时才存在（size >= 3），
		// 退化时宽转与单面转动等效——空的内层区间安全跳过
		face := types.Face(target - types.MoveUw)
		c.rotateFaceCW(face)
		for depth := 0; depth <= 1 && depth <= c.size-2; depth++ {
			c.cycleLayer(face, depth)
		}

	case target == types.MoveX:
		c.rotateWhole(types.FaceRight, types.FaceLeft)
	case target == types.MoveY:
		c.rotateWhole(types.FaceUp, types.FaceDown)
	case target == types.MoveZ:
		c.rotateWhole(types.FaceFront, types.FaceBack)
	}
}

// rotateWhole 整体重定向：绕 axis 面的轴转动整个魔方
//
// 实现为 axis 面邻接表在全部深度 0..n-1 上的带循环，外加
// axis 面顺时针、对面逆时针的面内旋转——等价于同向转动一个面
// 及其对面的所有层。对还原态应用后仍是还原态（各面整体换色，
// 单色性保持）；本设计按贴纸位置建模，整体转动是真实的状态
// 变更并如实反映进规范序列化。
func (c *Cube) rotateWhole(axis, opposite types.Face) {
	for depth := 0; depth < c.size; depth++ {
		c.cycleLayer(axis, depth)
	}
	c.rotateFaceCW(axis)
	c.rotateFaceCCW(opposite)
}

// rotateFaceCW 面内顺时针旋转（标准二维矩阵原地旋转）
//
// 只置换该面内部的贴纸，不与其他面交换；跨面搬移由
// cycleLayer 完成。
func (c *Cube) rotateFaceCW(f types.Face) {
	grid := c.faces[f]
	n := c.size
	for i := 0; i < n/2; i++ {
		for j := i; j < n-i-1; j++ {
			tmp := grid[i][j]
			grid[i][j] = grid[n-j-1][i]
			grid[n-j-1][i] = grid[n-i-1][n-j-1]
			grid[n-i-1][n-j-1] = grid[j][n-i-1]
			grid[j][n-i-1] = tmp
		}
	}
}

// rotateFaceCCW 面内逆时针旋转（三次顺时针）
func (c *Cube) rotateFaceCCW(f types.Face) {
	for i := 0; i < 3; i++ {
		c.rotateFaceCW(f)
	}
}
