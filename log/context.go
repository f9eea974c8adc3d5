package log

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type correlationIDType int

const requestIDKey correlationIDType = iota

// WithRequestID returns a context which knows its request ID.
// A request ID tracks the lifecycle of a single request across goroutines, such as
// an incoming call on the sponsor service and the upstream calls it makes.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithNewRequestID does the same thing as WithRequestID but generates a new, random id.
func WithNewRequestID(ctx context.Context) context.Context {
	return WithRequestID(ctx, uuid.NewString())
}

// ExtractRequestID extracts the request id from a context object.
func ExtractRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// ZContext returns the request id field of ctx, or a skip field when there is none.
func ZContext(ctx context.Context) zap.Field {
	if id, ok := ExtractRequestID(ctx); ok {
		return zap.String("request_id", id)
	}
	return zap.Skip()
}
