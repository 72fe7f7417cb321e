package types

import (
	"context"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
)

// newUUID returns a time ordered UUID so request IDs sort by arrival in logs
func newUUID(ctx context.Context) string {
	id, err := uuid.NewV7()
	if err != nil {
		ctxlog.From(ctx).Warn("failed to generate uuid V7, fallback to V4", "error", err)
		return uuid.New().String()
	}

	return id.String()
}
