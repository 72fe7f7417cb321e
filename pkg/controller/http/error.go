package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/domain/types/apperr"
	"github.com/m-mizutani/mctl/pkg/utils/errors"
	"github.com/m-mizutani/mctl/pkg/utils/safe"
)

type errorResponse struct {
	Error string `json:"error"`
}

// handleError logs err and answers {error}. The status comes from the error
// tags; server side failures hide their detail from the client.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	status := apperr.HTTPStatusFromError(err)
	errors.Handle(r.Context(), goerr.Wrap(err, "request failed",
		goerr.TV(apperr.StatusCodeKey, status),
		goerr.V("method", r.Method),
		goerr.V("path", r.URL.Path),
	))

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	writeJSON(w, r, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		errors.Handle(r.Context(), goerr.Wrap(err, "failed to encode response"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		safe.Write(r.Context(), w, []byte(`{"error":"Internal Server Error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, body)
}
