package log

import (
	"go.uber.org/zap"
)

// RetryableHTTPLogger is a wrapper around zap.Logger to make it compatible with
// retryablehttp.LeveledLogger interface.
type RetryableHTTPLogger struct {
	Inner *zap.Logger
}

func (r RetryableHTTPLogger) Error(format string, args ...any) {
	r.Inner.Sugar().Errorw(format, args...)
}

func (r RetryableHTTPLogger) Info(format string, args ...any) {
	r.Inner.Sugar().Infow(format, args...)
}

func (r RetryableHTTPLogger) Warn(format string, args ...any) {
	r.Inner.Sugar().Warnw(format, args...)
}

func (r RetryableHTTPLogger) Debug(format string, args ...any) {
	r.Inner.Sugar().Debugw(format, args...)
}
