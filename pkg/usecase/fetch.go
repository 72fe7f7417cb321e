package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/domain/model/dashboard"
	"github.com/m-mizutani/mctl/pkg/domain/types/apperr"
	"github.com/m-mizutani/mctl/pkg/utils/safe"
)

// Result is the outcome of one upstream read. Available is false when the
// read failed and Value holds the fallback.
type Result[T any] struct {
	Value     T
	Available bool
}

// fetchWithFallback runs fn once. Any error or panic is logged at warn level
// and replaced by fallback; nothing is retried and nothing is returned to the caller.
func fetchWithFallback[T any](ctx context.Context, src dashboard.Source, fn func(ctx context.Context) (T, error), fallback T) Result[T] {
	started := time.Now()

	var value T
	err := safe.Try(func() error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		value = v
		return nil
	})

	if err != nil {
		ctxlog.From(ctx).Warn("gateway source unavailable, using fallback",
			"source", src,
			"duration", time.Since(started),
			"error", goerr.Wrap(err, "fetch failed", goerr.TV(apperr.SourceKey, string(src))),
		)
		return Result[T]{Value: fallback, Available: false}
	}

	return Result[T]{Value: value, Available: true}
}
