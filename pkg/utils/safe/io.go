package safe

import (
	"context"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/domain/types/apperr"
	"github.com/m-mizutani/mctl/pkg/utils/errors"
)

// Close closes c and logs, but does not return, a failure
func Close(ctx context.Context, c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		errors.Handle(ctx, goerr.Wrap(err, "failed to close by safe.Close", goerr.T(apperr.ErrTagInternal)))
	}
}

// Write writes data to w, typically an http.ResponseWriter whose peer may be gone
func Write(ctx context.Context, w io.Writer, data []byte) {
	if _, err := w.Write(data); err != nil {
		errors.Handle(ctx, goerr.Wrap(err, "failed to write by safe.Write",
			goerr.V("size", len(data)), goerr.T(apperr.ErrTagInternal)))
	}
}
