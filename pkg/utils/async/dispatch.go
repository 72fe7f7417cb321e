package async

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/utils/errors"
	"github.com/m-mizutani/mctl/pkg/utils/safe"
)

// DefaultTimeout bounds a dispatched handler when no WithTimeout is given
const DefaultTimeout = 30 * time.Second

// Dispatch runs handler in the background, detached from ctx's cancellation
// but keeping its logger. Errors and panics are logged, never returned.
// If sync mode is enabled in ctx, handler runs on the caller's goroutine.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	if isSyncMode(ctx) {
		run(ctx, handler)
		return
	}

	newCtx, cancel := context.WithTimeout(newBackgroundContext(ctx), timeoutFrom(ctx))
	go func() {
		defer cancel()
		run(newCtx, handler)
	}()
}

func run(ctx context.Context, handler func(ctx context.Context) error) {
	if err := safe.Try(func() error { return handler(ctx) }); err != nil {
		errors.Handle(ctx, goerr.Wrap(err, "async handler failed"))
	}
}

// newBackgroundContext creates a new background context preserving the logger
func newBackgroundContext(ctx context.Context) context.Context {
	return ctxlog.With(context.Background(), ctxlog.From(ctx))
}
