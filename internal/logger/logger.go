// Package logger builds the zap logger used by the CLI and dataset loading
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/davidschrooten/open-academic-records/config"
)

// DefaultConfig is used by L() before InitGlobal is called
func DefaultConfig() config.LogConfig {
	return config.LogConfig{
		Level:  "info",
		Format: "console",
		Output: "console",
	}
}

// Validate checks the logger configuration
func Validate(cfg config.LogConfig) error {
	if _, err := zapcore.ParseLevel(cfg.Level); err != nil {
		return fmt.Errorf("invalid log level %q", cfg.Level)
	}

	if cfg.Format != "json" && cfg.Format != "console" {
		return fmt.Errorf("invalid log format %q, must be json or console", cfg.Format)
	}

	switch cfg.Output {
	case "console":
	case "file", "both":
		if cfg.File.Filename == "" {
			return errors.New("log.file.filename is required for file output")
		}
		if cfg.File.MaxSize <= 0 {
			return errors.New("log.file.max_size must be greater than 0")
		}
	default:
		return fmt.Errorf("invalid log output %q, must be console, file or both", cfg.Output)
	}

	return nil
}

// New builds a logger writing console output to stderr
func New(cfg config.LogConfig) (*zap.Logger, error) {
	return build(cfg, os.Stderr)
}

func build(cfg config.LogConfig, console io.Writer) (*zap.Logger, error) {
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid logger configuration: %w", err)
	}
	level, _ := zapcore.ParseLevel(cfg.Level)

	var sinks []zapcore.WriteSyncer
	if cfg.Output == "console" || cfg.Output == "both" {
		sinks = append(sinks, zapcore.AddSync(console))
	}
	if cfg.Output == "file" || cfg.Output == "both" {
		w, err := rotatingFile(cfg.File)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, zapcore.AddSync(w))
	}

	core := zapcore.NewCore(encoder(cfg.Format), zapcore.NewMultiWriteSyncer(sinks...), level)

	opts := []zap.Option{zap.AddCaller()}
	if cfg.EnableStacktrace {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}
	return zap.New(core, opts...), nil
}

func encoder(format string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "time"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeDuration = zapcore.MillisDurationEncoder

	if format == "json" {
		return zapcore.NewJSONEncoder(ec)
	}
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(ec)
}

// rotatingFile opens a lumberjack writer, creating its directory
func rotatingFile(cfg config.LogFileConfig) (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Filename), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxAge,
		MaxBackups: cfg.MaxBackups,
		Compress:   cfg.Compress,
		LocalTime:  true,
	}, nil
}

var (
	globalMu     sync.RWMutex
	globalLogger *zap.Logger
)

// InitGlobal replaces the global logger
func InitGlobal(cfg config.LogConfig) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	globalMu.Lock()
	globalLogger = l
	globalMu.Unlock()
	return nil
}

// L returns the global logger, building a console logger on first use
func L() *zap.Logger {
	globalMu.RLock()
	l := globalLogger
	globalMu.RUnlock()
	if l != nil {
		return l
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		globalLogger, _ = New(DefaultConfig())
	}
	return globalLogger
}

// Sync flushes the global logger
func Sync() error {
	return L().Sync()
}
