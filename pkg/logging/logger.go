// Package logging 构建项目统一使用的 zap 日志器
//
// 日志器通过依赖注入传递给各个组件，不使用全局实例。
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options 日志配置
type Options struct {
	// Level 最低输出级别: debug / info / warn / error
	Level string
	// Development 使用带颜色的控制台格式，否则输出 JSON
	Development bool
	// OutputPaths 输出位置，默认 stderr
	OutputPaths []string
}

// DefaultOptions 默认只输出警告及以上
func DefaultOptions() Options {
	return Options{Level: "warn"}
}

// New 根据配置创建日志器
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
	}

	outputs := opts.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      opts.Development,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	if opts.Development {
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// Nop 丢弃所有输出的日志器
func Nop() *zap.Logger {
	return zap.NewNop()
}

// Provide 创建日志器并返回退出时刷新缓冲的清理函数
func Provide(opts Options) (*zap.Logger, func(), error) {
	logger, err := New(opts)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}
