package async

import (
	"context"
	"time"
)

type contextKey string

const (
	syncModeKey contextKey = "async-sync-mode"
	timeoutKey  contextKey = "async-timeout"
)

// WithSyncMode returns a new context with sync mode enabled.
// When sync mode is enabled, Dispatch executes handlers synchronously.
func WithSyncMode(ctx context.Context) context.Context {
	return context.WithValue(ctx, syncModeKey, true)
}

// WithTimeout overrides DefaultTimeout for handlers dispatched from ctx
func WithTimeout(ctx context.Context, d time.Duration) context.Context {
	return context.WithValue(ctx, timeoutKey, d)
}

func isSyncMode(ctx context.Context) bool {
	if v, ok := ctx.Value(syncModeKey).(bool); ok {
		return v
	}
	return false
}

func timeoutFrom(ctx context.Context) time.Duration {
	if d, ok := ctx.Value(timeoutKey).(time.Duration); ok && d > 0 {
		return d
	}
	return DefaultTimeout
}
