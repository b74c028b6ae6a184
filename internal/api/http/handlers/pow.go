// Package handlers 实现 RubikPoW HTTP API 的请求处理
package handlers

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"

	evbus "github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"

	"github.com/rubikpow/v1/internal/api/http/middleware"
	apitypes "github.com/rubikpow/v1/internal/api/http/types"
	"github.com/rubikpow/v1/internal/core/infrastructure/storage/memory"
	"github.com/rubikpow/v1/internal/core/puzzle/cube"
	"github.com/rubikpow/v1/internal/core/puzzle/difficulty"
	"github.com/rubikpow/v1/pkg/constants"
	"github.com/rubikpow/v1/pkg/constants/events"
	logiface "github.com/rubikpow/v1/pkg/interfaces/infrastructure/log"
	puzzleiface "github.com/rubikpow/v1/pkg/interfaces/puzzle"
	"github.com/rubikpow/v1/pkg/types"
	"golang.org/x/crypto/sha3"
)

// SolutionAcceptedEvent 解法通过验证时发布的事件载荷
type SolutionAcceptedEvent struct {
	Size   int    // 魔方尺寸
	Nonce  uint64 // 区块 nonce
	Digest string // 打乱态摘要（十六进制）
	Moves  int    // 解法步数
}

// PowHandler RubikPoW 接口处理器
//
// 打乱、验证、难度三组接口共用核心引擎服务；打乱结果经
// BigCache 缓存，同一 (尺寸, nonce, 区块头) 的重复请求直接
// 复用——打乱是确定性的，缓存与重算必然一致。
type PowHandler struct {
	generator puzzleiface.ScrambleGenerator
	verifier  puzzleiface.SolutionVerifier
	oracle    puzzleiface.DifficultyOracle
	cache     *memory.Store // 可为 nil：降级为每次重算
	bus       evbus.Bus     // 可为 nil：不发布事件
	logger    logiface.Logger
}

// NewPowHandler 创建处理器
func NewPowHandler(
	generator puzzleiface.ScrambleGenerator,
	verifier puzzleiface.SolutionVerifier,
	oracle puzzleiface.DifficultyOracle,
	cache *memory.Store,
	bus evbus.Bus,
	logger logiface.Logger,
) *PowHandler {
	return &PowHandler{
		generator: generator,
		verifier:  verifier,
		oracle:    oracle,
		cache:     cache,
		bus:       bus,
		logger:    logger,
	}
}

// checkSize 运行时尺寸边界（核心对任意 size>=2 安全，这里是性能保护策略）
func checkSize(size int) (code string, ok bool) {
	if size < constants.MinCubeSize {
		return apitypes.CodeCubeTooSmall, false
	}
	if size > constants.MaxCubeSize {
		return apitypes.CodeCubeTooLarge, false
	}
	return "", true
}

// cacheKey 打乱缓存键：尺寸 + nonce + 区块头摘要
func cacheKey(size int, nonce uint64, header []byte) string {
	h := sha3.Sum256(header)
	return fmt.Sprintf("scramble:%d:%d:%x", size, nonce, h[:8])
}

// scrambledState 取得 (尺寸, nonce, header) 对应的打乱态与打乱序列
//
// 缓存值布局：规范序列化的打乱态（长度由尺寸确定）‖ 线格式转动序列。
func (h *PowHandler) scrambledState(size int, nonce uint64, header []byte) (*cube.Cube, []types.Move, error) {
	key := cacheKey(size, nonce, header)
	stateLen := 2 + types.FaceCount*size*size

	if h.cache != nil {
		if value, ok := h.cache.Get(key); ok && len(value) >= stateLen {
			c, err := cube.Deserialize(value[:stateLen])
			if err == nil {
				moves, err := types.DecodeMoves(value[stateLen:])
				if err == nil {
					return c, moves, nil
				}
			}
			// 缓存损坏时落回重算
		}
	}

	c, err := cube.New(size)
	if err != nil {
		return nil, nil, err
	}
	moves := h.generator.ScrambleDeterministic(c, nonce, header)

	if h.cache != nil {
		value := append(c.CanonicalSerialize(), types.EncodeMoves(moves)...)
		h.cache.Set(key, value)
	}
	return c, moves, nil
}

// Scramble 处理 POST /api/v1/pow/scramble
func (h *PowHandler) Scramble(c *gin.Context) {
	var req apitypes.ScrambleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, apitypes.CodeBadRequest, err.Error())
		return
	}
	if code, ok := checkSize(req.Size); !ok {
		h.badRequest(c, code, fmt.Sprintf("cube size %d out of range [%d, %d]",
			req.Size, constants.MinCubeSize, constants.MaxCubeSize))
		return
	}
	header, err := hex.DecodeString(req.HeaderHex)
	if err != nil {
		h.badRequest(c, apitypes.CodeBadRequest, "headerHex 不是合法的十六进制")
		return
	}

	state, moves, err := h.scrambledState(req.Size, req.Nonce, header)
	if err != nil {
		h.badRequest(c, apitypes.CodeBadRequest, err.Error())
		return
	}

	notation := make([]string, len(moves))
	for i, m := range moves {
		notation[i] = m.String()
	}
	digest := difficulty.StateDigest(state)

	c.JSON(http.StatusOK, apitypes.NewSuccessResponse(&apitypes.ScrambleResponse{
		Size:      req.Size,
		Nonce:     req.Nonce,
		Moves:     notation,
		MovesWire: hex.EncodeToString(types.EncodeMoves(moves)),
		StateHex:  hex.EncodeToString(state.CanonicalSerialize()),
		Digest:    hex.EncodeToString(digest[:]),
	}).WithRequestID(middleware.GetRequestID(c)))
}

// Verify 处理 POST /api/v1/pow/verify
func (h *PowHandler) Verify(c *gin.Context) {
	var req apitypes.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, apitypes.CodeBadRequest, err.Error())
		return
	}
	if code, ok := checkSize(req.Size); !ok {
		h.badRequest(c, code, fmt.Sprintf("cube size %d out of range [%d, %d]",
			req.Size, constants.MinCubeSize, constants.MaxCubeSize))
		return
	}
	header, err := hex.DecodeString(req.HeaderHex)
	if err != nil {
		h.badRequest(c, apitypes.CodeBadRequest, "headerHex 不是合法的十六进制")
		return
	}
	wire, err := hex.DecodeString(req.SolutionWire)
	if err != nil {
		h.badRequest(c, apitypes.CodeBadRequest, "solutionWire 不是合法的十六进制")
		return
	}
	solution, err := types.DecodeMoves(wire)
	if err != nil {
		h.badRequest(c, apitypes.CodeInvalidSolution, err.Error())
		return
	}

	state, _, err := h.scrambledState(req.Size, req.Nonce, header)
	if err != nil {
		h.badRequest(c, apitypes.CodeBadRequest, err.Error())
		return
	}

	solved := h.verifier.VerifySolution(state, solution)
	digest := difficulty.StateDigest(state)
	resp := &apitypes.VerifyResponse{
		Solved: solved,
		Digest: hex.EncodeToString(digest[:]),
	}

	if req.Target != "" {
		target, err := strconv.ParseUint(req.Target, 10, 64)
		if err != nil {
			h.badRequest(c, apitypes.CodeBadRequest, "target 不是合法的十进制 uint64")
			return
		}
		meets := h.oracle.MeetsDifficulty(state, target)
		resp.MeetsTarget = &meets
	}

	if h.bus != nil {
		event := SolutionAcceptedEvent{
			Size:   req.Size,
			Nonce:  req.Nonce,
			Digest: resp.Digest,
			Moves:  len(solution),
		}
		if solved {
			h.bus.Publish(events.TopicSolutionAccepted, event)
		} else {
			h.bus.Publish(events.TopicSolutionRejected, event)
		}
	}

	c.JSON(http.StatusOK, apitypes.NewSuccessResponse(resp).
		WithRequestID(middleware.GetRequestID(c)))
}

// Difficulty 处理 GET /api/v1/pow/difficulty/:size
func (h *PowHandler) Difficulty(c *gin.Context) {
	size, err := strconv.Atoi(c.Param("size"))
	if err != nil {
		h.badRequest(c, apitypes.CodeBadRequest, "size 不是合法整数")
		return
	}
	if code, ok := checkSize(size); !ok {
		h.badRequest(c, code, fmt.Sprintf("cube size %d out of range [%d, %d]",
			size, constants.MinCubeSize, constants.MaxCubeSize))
		return
	}

	c.JSON(http.StatusOK, apitypes.NewSuccessResponse(&apitypes.DifficultyResponse{
		Size:       size,
		Difficulty: h.oracle.CalculateDifficulty(size).String(),
		Exact:      size <= 3,
	}).WithRequestID(middleware.GetRequestID(c)))
}

// badRequest 统一的 400 响应
func (h *PowHandler) badRequest(c *gin.Context, code, message string) {
	resp := apitypes.NewErrorResponse(code, message)
	resp.RequestID = middleware.GetRequestID(c)
	c.JSON(http.StatusBadRequest, resp)
}
