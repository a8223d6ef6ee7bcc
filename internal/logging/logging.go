// Package logging builds the zap loggers used by the server and the CLI.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config contains logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Format is console or json.
	Format string
	// Output is stdout, stderr or a file path.
	Output string
	// Development adds stack traces to errors and panics on DPanic.
	Development bool
}

// New builds a logger from cfg. An unknown level falls back to info.
func New(cfg Config) (*zap.Logger, error) {
	var sink zapcore.WriteSyncer
	switch cfg.Output {
	case "", "stderr":
		sink = zapcore.AddSync(os.Stderr)
	case "stdout":
		sink = zapcore.AddSync(os.Stdout)
	default:
		file, err := os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log output: %w", err)
		}
		sink = zapcore.AddSync(file)
	}
	return build(cfg, sink), nil
}

// NewWriter builds a logger that writes to w, for tests and tools that
// capture output.
func NewWriter(cfg Config, w io.Writer) *zap.Logger {
	return build(cfg, zapcore.AddSync(w))
}

func build(cfg Config, sink zapcore.WriteSyncer) *zap.Logger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, sink, level)
	if cfg.Development {
		return zap.New(core, zap.Development(), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	}
	return zap.New(core, zap.AddCaller())
}
