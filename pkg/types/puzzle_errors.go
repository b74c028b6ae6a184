// Package types 定义谜题相关的错误类型
package types

import (
	"errors"
	"fmt"
)

// 谜题核心的哨兵错误
//
// 核心只有构造阶段会失败；转动应用、验证、难度判定都是全函数，
// 永远返回结果而不返回错误。
var (
	// ErrCubeTooSmall 尺寸低于下限（< 2）
	ErrCubeTooSmall = errors.New("cube size below minimum")

	// ErrMalformedMoveWire 线格式转动序列无法解码
	ErrMalformedMoveWire = errors.New("malformed move wire encoding")
)

// SizeError 构造魔方时的尺寸错误
//
// 携带非法尺寸值，便于调用方（外部运行时）诊断；
// errors.Is(err, ErrCubeTooSmall) 可用于类型判断。
type SizeError struct {
	Size int // 非法的尺寸值
}

// Error 实现 error 接口
func (e *SizeError) Error() string {
	return fmt.Sprintf("invalid cube size %d: minimum is 2", e.Size)
}

// Unwrap 支持 errors.Is 链式匹配
func (e *SizeError) Unwrap() error {
	return ErrCubeTooSmall
}
