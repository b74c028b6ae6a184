// Package types provides HTTP request/response type definitions.
package types

// SuccessResponse 统一成功响应格式
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"requestId,omitempty"`
}

// NewSuccessResponse 创建成功响应
func NewSuccessResponse(data interface{}) *SuccessResponse {
	return &SuccessResponse{Data: data}
}

// WithRequestID 添加请求ID
func (r *SuccessResponse) WithRequestID(requestID string) *SuccessResponse {
	r.RequestID = requestID
	return r
}

// ErrorResponse 统一错误响应格式
type ErrorResponse struct {
	Code      string `json:"code"`    // 机器可读错误码
	Message   string `json:"message"` // 人类可读错误描述
	RequestID string `json:"requestId,omitempty"`
}

// 错误码（与原始运行时的错误语义对齐）
const (
	CodeCubeTooSmall    = "CUBE_TOO_SMALL"
	CodeCubeTooLarge    = "CUBE_TOO_LARGE"
	CodeInvalidSolution = "INVALID_SOLUTION"
	CodeBadRequest      = "BAD_REQUEST"
)

// NewErrorResponse 创建错误响应
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{Code: code, Message: message}
}

// ScrambleRequest 打乱请求
type ScrambleRequest struct {
	Size      int    `json:"size" binding:"required"`
	Nonce     uint64 `json:"nonce"`
	HeaderHex string `json:"headerHex"` // 区块头字节，十六进制编码
}

// ScrambleResponse 打乱响应
type ScrambleResponse struct {
	Size      int      `json:"size"`
	Nonce     uint64   `json:"nonce"`
	Moves     []string `json:"moves"`     // 标准记号
	MovesWire string   `json:"movesWire"` // 线格式，十六进制
	StateHex  string   `json:"stateHex"`  // 打乱态的规范序列化，十六进制
	Digest    string   `json:"digest"`    // 规范状态的 SHA3-256 摘要，十六进制
}

// VerifyRequest 解法验证请求
type VerifyRequest struct {
	Size         int    `json:"size" binding:"required"`
	Nonce        uint64 `json:"nonce"`
	HeaderHex    string `json:"headerHex"`
	SolutionWire string `json:"solutionWire"`     // 候选解，线格式十六进制
	Target       string `json:"target,omitempty"` // 可选：难度目标（十进制 uint64）
}

// VerifyResponse 解法验证响应
type VerifyResponse struct {
	Solved      bool   `json:"solved"`
	MeetsTarget *bool  `json:"meetsTarget,omitempty"` // 仅在请求携带 target 时给出
	Digest      string `json:"digest"`                // 打乱态摘要
}

// DifficultyResponse 难度查询响应
type DifficultyResponse struct {
	Size       int    `json:"size"`
	Difficulty string `json:"difficulty"` // 十进制大整数
	Exact      bool   `json:"exact"`      // false 表示数量级近似
}
