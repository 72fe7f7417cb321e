package errors

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/domain/types/apperr"
)

// Handle logs err through the context logger. Errors caused by the caller or
// by an unreachable gateway are expected in normal operation and go to warn;
// everything else is an error.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	level := slog.LevelError
	if isExpected(err) {
		level = slog.LevelWarn
	}

	ctxlog.From(ctx).Log(ctx, level, "error occurred", "error", err)
}

func isExpected(err error) bool {
	return goerr.HasTag(err, apperr.ErrTagValidation) ||
		goerr.HasTag(err, apperr.ErrTagInvalidInput) ||
		goerr.HasTag(err, apperr.ErrTagInvalidFormat) ||
		goerr.HasTag(err, apperr.ErrTagRequiredField) ||
		goerr.HasTag(err, apperr.ErrTagUnknownAction) ||
		goerr.HasTag(err, apperr.ErrTagNotFound) ||
		goerr.HasTag(err, apperr.ErrTagGateway) ||
		goerr.HasTag(err, apperr.ErrTagRateLimit)
}
