package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	logconfig "github.com/rubikpow/v1/internal/config/log"
)

// TestFileLogging 测试文件输出与级别过滤
func TestFileLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	options := &logconfig.LogOptions{
		Level:     "info",
		FilePath:  logPath,
		ToConsole: false,
	}
	logger, err := New(logconfig.New(options))
	if err != nil {
		t.Fatalf("创建日志记录器失败: %v", err)
	}

	logger.Debug("调试日志")
	logger.Info("信息日志")
	logger.Warnf("警告日志 %d", 42)
	logger.Error("错误日志")
	logger.Sync()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("无法读取日志文件: %v", err)
	}
	contentStr := string(content)

	if strings.Contains(contentStr, "调试日志") {
		t.Error("info 级别不应输出调试日志")
	}
	if !strings.Contains(contentStr, "信息日志") {
		t.Error("日志文件中应包含信息日志")
	}
	if !strings.Contains(contentStr, "警告日志 42") {
		t.Error("日志文件中应包含格式化后的警告日志")
	}
	if !strings.Contains(contentStr, "错误日志") {
		t.Error("日志文件中应包含错误日志")
	}
}

// TestWithFields 测试结构化字段
func TestWithFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "fields.log")

	logger, err := New(logconfig.New(&logconfig.LogOptions{
		Level:    "debug",
		FilePath: logPath,
	}))
	if err != nil {
		t.Fatalf("创建日志记录器失败: %v", err)
	}

	logger.With("component", "scramble", "size", 3).Info("结构化日志测试")
	logger.Sync()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("无法读取日志文件: %v", err)
	}
	contentStr := string(content)

	for _, want := range []string{"component", "scramble", "size", "结构化日志测试"} {
		if !strings.Contains(contentStr, want) {
			t.Errorf("日志输出中应包含 %q", want)
		}
	}
}

// TestNewLoggerFromConfig 测试按参数创建
func TestNewLoggerFromConfig(t *testing.T) {
	logger, err := NewLoggerFromConfig("error", "stderr", false, false)
	if err != nil {
		t.Fatalf("创建日志记录器失败: %v", err)
	}
	if logger.GetZapLogger() == nil {
		t.Error("应暴露底层zap记录器")
	}
}

// TestSetLogger 测试全局日志记录器的切换与恢复
func TestSetLogger(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	custom, err := NewLoggerFromConfig("warn", "stderr", false, false)
	if err != nil {
		t.Fatalf("创建日志记录器失败: %v", err)
	}

	SetLogger(custom)
	if GetLogger() != custom {
		t.Error("SetLogger应替换全局日志记录器")
	}

	// nil 不应覆盖现有记录器
	SetLogger(nil)
	if GetLogger() != custom {
		t.Error("SetLogger(nil)不应清空全局日志记录器")
	}

	ResetDefault()
	if GetLogger() == custom {
		t.Error("ResetDefault应恢复默认配置的记录器")
	}
}
