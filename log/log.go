// Package log builds the process-wide zap logger and hosts small logging helpers
// shared by the voter client and the sponsor service.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogEncoder defines a log encoder kind.
type LogEncoder = string

const (
	// ConsoleLogEncoder represents logging with plain text.
	ConsoleLogEncoder LogEncoder = "console"
	// JSONLogEncoder represents logging with JSON.
	JSONLogEncoder LogEncoder = "json"
)

// Config selects encoder and level of the process logger.
type Config struct {
	Encoder LogEncoder `mapstructure:"encoder"`
	Level   string     `mapstructure:"level"`
}

// DefaultConfig logs plain text at info level.
func DefaultConfig() Config {
	return Config{
		Encoder: ConsoleLogEncoder,
		Level:   zapcore.InfoLevel.String(),
	}
}

// where logs go by default.
var logWriter io.Writer = os.Stderr

// New creates the process logger described by cfg. The returned level may be changed at runtime.
func New(name string, cfg Config) (*zap.Logger, zap.AtomicLevel, error) {
	lvl, err := zap.ParseAtomicLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, lvl, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	var encoder zapcore.Encoder
	switch cfg.Encoder {
	case JSONLogEncoder:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case ConsoleLogEncoder, "":
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		return nil, lvl, fmt.Errorf("unknown log encoder %q", cfg.Encoder)
	}
	return NewWithLevel(name, lvl, encoder), lvl, nil
}

// NewWithLevel creates a logger with a fixed level and with a set of (optional) hooks.
func NewWithLevel(name string,
	level zap.AtomicLevel,
	encoder zapcore.Encoder,
	hooks ...func(zapcore.Entry) error,
) *zap.Logger {
	core := zapcore.NewCore(encoder, zapcore.AddSync(logWriter), level)
	return zap.New(zapcore.RegisterHooks(core, hooks...)).Named(name)
}

type shortStringer interface {
	ShortString() string
}

// ZShortStringer logs the short form of ids and addresses.
func ZShortStringer(key string, val shortStringer) zap.Field {
	return zap.String(key, val.ShortString())
}
