// Package types 定义魔方谜题相关的共享类型
package types

import (
	"fmt"
)

// Face 魔方的六个面
//
// 数值即规范序：Up=0, Down=1, Left=2, Right=3, Front=4, Back=5。
// 规范序列化、哈希计算都依赖这个顺序，任何情况下不得改动。
type Face uint8

const (
	FaceUp Face = iota
	FaceDown
	FaceLeft
	FaceRight
	FaceFront
	FaceBack

	// FaceCount 面的数量
	FaceCount = 6
)

// AllFaces 按规范序排列的全部面
var AllFaces = [FaceCount]Face{FaceUp, FaceDown, FaceLeft, FaceRight, FaceFront, FaceBack}

// String 实现 fmt.Stringer 接口
func (f Face) String() string {
	switch f {
	case FaceUp:
		return "U"
	case FaceDown:
		return "D"
	case FaceLeft:
		return "L"
	case FaceRight:
		return "R"
	case FaceFront:
		return "F"
	case FaceBack:
		return "B"
	default:
		return fmt.Sprintf("Face(%d)", uint8(f))
	}
}

// Color 贴纸颜色
//
// 数值即规范序列化中的单字节颜色码：
// White=0, Yellow=1, Red=2, Orange=3, Blue=4, Green=5。
type Color uint8

const (
	ColorWhite Color = iota
	ColorYellow
	ColorRed
	ColorOrange
	ColorBlue
	ColorGreen

	// ColorCount 颜色的数量
	ColorCount = 6
)

// String 实现 fmt.Stringer 接口，输出单字母缩写（W/Y/R/O/B/G）
func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "W"
	case ColorYellow:
		return "Y"
	case ColorRed:
		return "R"
	case ColorOrange:
		return "O"
	case ColorBlue:
		return "B"
	case ColorGreen:
		return "G"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

// SolvedColor 返回某个面在还原状态下的规范颜色
//
// 规范映射：Up→White, Down→Yellow, Front→Red, Back→Orange, Left→Blue, Right→Green
func SolvedColor(f Face) Color {
	switch f {
	case FaceUp:
		return ColorWhite
	case FaceDown:
		return ColorYellow
	case FaceFront:
		return ColorRed
	case FaceBack:
		return ColorOrange
	case FaceLeft:
		return ColorBlue
	case FaceRight:
		return ColorGreen
	default:
		return ColorWhite
	}
}

// MoveTarget 转动目标：单面、宽层或整体轴
type MoveTarget uint8

const (
	// 外层单面转动
	MoveU MoveTarget = iota
	MoveD
	MoveL
	MoveR
	MoveF
	MoveB

	// 宽层转动（外层 + 第二层），尺寸 > 3 时才有额外效果
	MoveUw
	MoveDw
	MoveLw
	MoveRw
	MoveFw
	MoveBw

	// 整体重定向（绕 R/U/F 轴旋转整个魔方）
	MoveX
	MoveY
	MoveZ

	// MoveTargetCount 转动目标的数量
	MoveTargetCount = 15
)

// moveTargetNames 转动目标的标准记号
var moveTargetNames = [MoveTargetCount]string{
	"U", "D", "L", "R", "F", "B",
	"Uw", "Dw", "Lw", "Rw", "Fw", "Bw",
	"x", "y", "z",
}

// String 实现 fmt.Stringer 接口
func (t MoveTarget) String() string {
	if int(t) < len(moveTargetNames) {
		return moveTargetNames[t]
	}
	return fmt.Sprintf("MoveTarget(%d)", uint8(t))
}

// IsValid 检查转动目标是否在合法词表内
func (t MoveTarget) IsValid() bool {
	return uint8(t) < MoveTargetCount
}

// Move 一次转动：目标 + 顺时针四分之一转的次数
//
// Move 是纯值，不引用任何魔方状态；可序列化、可比较。
// Turns 的规范区间为 0..=3；0 为空操作；k 与 4-k 互为逆操作。
type Move struct {
	Target MoveTarget // 转动目标（面/宽层/整体轴）
	Turns  uint8      // 顺时针四分之一转次数，规范区间 0..=3
}

// NewMove 创建一次转动，Turns 自动归一化到 0..=3
func NewMove(target MoveTarget, turns uint8) Move {
	return Move{Target: target, Turns: turns % 4}
}

// Normalized 返回 Turns 归一化到 0..=3 之后的等价转动
func (m Move) Normalized() Move {
	return Move{Target: m.Target, Turns: m.Turns % 4}
}

// Inverse 返回逆转动：Turns k 映射为 (4-k) mod 4
func (m Move) Inverse() Move {
	return Move{Target: m.Target, Turns: (4 - m.Turns%4) % 4}
}

// String 标准魔方记号：U、U2、U'（3 次顺时针等于 1 次逆时针）
func (m Move) String() string {
	switch m.Turns % 4 {
	case 0:
		return m.Target.String() + "0"
	case 1:
		return m.Target.String()
	case 2:
		return m.Target.String() + "2"
	default:
		return m.Target.String() + "'"
	}
}

// EncodeMoves 将转动序列编码为线格式
//
// 线格式：每个转动 2 字节 (目标标签, 归一化后的次数)，按序拼接。
// 编码方必须先归一化次数，解码方据此逐对还原。
func EncodeMoves(moves []Move) []byte {
	out := make([]byte, 0, len(moves)*2)
	for _, m := range moves {
		n := m.Normalized()
		out = append(out, byte(n.Target), n.Turns)
	}
	return out
}

// DecodeMoves 从线格式解码转动序列
func DecodeMoves(data []byte) ([]Move, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: 长度 %d 不是 2 的倍数", ErrMalformedMoveWire, len(data))
	}
	moves := make([]Move, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		target := MoveTarget(data[i])
		if !target.IsValid() {
			return nil, fmt.Errorf("%w: 未知转动目标 %d（偏移 %d）", ErrMalformedMoveWire, data[i], i)
		}
		if data[i+1] > 3 {
			return nil, fmt.Errorf("%w: 次数 %d 超出规范区间（偏移 %d）", ErrMalformedMoveWire, data[i+1], i+1)
		}
		moves = append(moves, Move{Target: target, Turns: data[i+1]})
	}
	return moves, nil
}
