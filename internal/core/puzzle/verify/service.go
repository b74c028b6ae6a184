// Package verify 实现候选解法的验证服务
//
// ✅ **解法验证服务 (Solution Verification Service)**
//
// 对已打乱的参考状态回放候选转动序列，判断是否还原。
// 验证是纯函数：内部克隆参考状态，调用方的状态原封不动；
// 结果确定，不做部分认可。
//
// 🎯 **职责边界**：
// - 不限制序列长度——资源上限是外部运行时的策略
// - 不产生错误——合法词表内的任何序列对任何尺寸都有效
// - 独立候选解的验证天然可并行：各自克隆，零共享可变状态
package verify

import (
	"github.com/rubikpow/v1/internal/core/puzzle/cube"
	logiface "github.com/rubikpow/v1/pkg/interfaces/infrastructure/log"
	puzzleiface "github.com/rubikpow/v1/pkg/interfaces/puzzle"
	"github.com/rubikpow/v1/pkg/types"
)

// 确保Service实现了puzzleiface.SolutionVerifier接口
var _ puzzleiface.SolutionVerifier = (*Service)(nil)

// Service 解法验证服务
type Service struct {
	logger logiface.Logger // 可为 nil
}

// NewService 创建验证服务
func NewService(logger logiface.Logger) *Service {
	return &Service{logger: logger}
}

// VerifySolution 回放候选解并判断是否还原
//
// 克隆参考状态，按序应用全部转动，返回 IsSolved()。
// 空序列对已还原的参考状态返回 true，对未还原的返回 false。
func (s *Service) VerifySolution(ref *cube.Cube, moves []types.Move) bool {
	work := ref.Clone()
	work.ApplyAll(moves)
	solved := work.IsSolved()

	if s.logger != nil {
		s.logger.Debugf("验证完成: size=%d 步数=%d 结果=%v", ref.Size(), len(moves), solved)
	}
	return solved
}
