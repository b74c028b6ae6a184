// Package events 定义事件总线的主题常量
package events

const (
	// TopicSolutionAccepted 候选解通过验证
	TopicSolutionAccepted = "pow:solution_accepted"

	// TopicSolutionRejected 候选解被拒绝
	TopicSolutionRejected = "pow:solution_rejected"
)
