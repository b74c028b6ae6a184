package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	LogLevel string // 日志级别
	Verbose  bool   // 详细模式
}

var globalFlags GlobalFlags

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "rubikpow",
	Short: "RubikPoW 魔方工作量证明引擎命令行工具",
	Long: `RubikPoW CLI - n×n×n 魔方谜题工作量证明引擎

提供引擎核心操作的命令行入口:
- 由 (nonce, 区块头) 派生确定性打乱
- 计算打乱序列的代数逆解并自验证
- 验证候选解法、判定哈希难度目标
- 查询组合难度
- 启动 HTTP 验证服务

打乱对固定输入完全可复现：任何两个节点对同一 (尺寸, nonce,
区块头) 得到逐位一致的打乱序列与状态。`,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalFlags.LogLevel, "log-level", "info", "日志级别: debug|info|warn|error")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "详细输出")
}
