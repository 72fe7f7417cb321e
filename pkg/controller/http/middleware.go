package http

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/domain/types"
	"github.com/m-mizutani/mctl/pkg/domain/types/apperr"
	"github.com/m-mizutani/mctl/pkg/utils/errors"
)

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware tags every request with an ID, reusing a valid inbound
// X-Request-ID, and binds it to the context logger.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id := types.RequestID(r.Header.Get(requestIDHeader))
		if !id.IsValid() {
			id = types.NewRequestID(ctx)
		}
		w.Header().Set(requestIDHeader, id.String())

		logger := ctxlog.From(ctx).With("request_id", id.String())
		next.ServeHTTP(w, r.WithContext(ctxlog.With(ctx, logger)))
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		ctxlog.From(r.Context()).Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"status", wrapped.statusCode,
			"duration", time.Since(start),
			"remote_addr", r.RemoteAddr,
		)
	})
}

// panicRecoveryMiddleware recovers from panics
func panicRecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				buf := make([]byte, 4096)
				n := runtime.Stack(buf, false)
				errors.Handle(r.Context(), goerr.New(fmt.Sprintf("panic recovered: %v", v),
					goerr.V("stack", string(buf[:n])),
					goerr.T(apperr.ErrTagInternal),
				))
				writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (w *responseWriter) WriteHeader(code int) {
	if !w.written {
		w.statusCode = code
		w.written = true
		w.ResponseWriter.WriteHeader(code)
	}
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.written = true
	}
	return w.ResponseWriter.Write(b)
}
