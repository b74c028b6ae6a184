package main

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rubikpow/v1/internal/app"
)

var (
	serveListen  string
	serveLogPath string
)

// serveCmd 启动 HTTP 验证服务
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 HTTP 验证服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.Info.Printf("启动 RubikPoW 验证服务，监听 %s\n", serveListen)

		application := app.New(app.Options{
			LogLevel:   globalFlags.LogLevel,
			LogPath:    serveLogPath,
			ListenAddr: serveListen,
		})
		return application.Run(context.Background())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", ":8545", "HTTP 监听地址")
	serveCmd.Flags().StringVar(&serveLogPath, "log-path", "stdout", "日志输出路径 (stdout/stderr/文件)")
	rootCmd.AddCommand(serveCmd)
}
