package apperr

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
)

// HTTPStatusFromError returns the appropriate HTTP status code based on error tags
func HTTPStatusFromError(err error) int {
	switch {
	// 404 Not Found
	case goerr.HasTag(err, ErrTagNotFound),
		goerr.HasTag(err, ErrTagAgentNotFound):
		return http.StatusNotFound

	// 400 Bad Request
	case goerr.HasTag(err, ErrTagValidation),
		goerr.HasTag(err, ErrTagInvalidInput),
		goerr.HasTag(err, ErrTagInvalidFormat),
		goerr.HasTag(err, ErrTagRequiredField),
		goerr.HasTag(err, ErrTagUnknownAction):
		return http.StatusBadRequest

	// 401 Unauthorized
	case goerr.HasTag(err, ErrTagUnauthorized):
		return http.StatusUnauthorized

	// 408 Request Timeout
	case goerr.HasTag(err, ErrTagTimeout):
		return http.StatusRequestTimeout

	// 429 Too Many Requests
	case goerr.HasTag(err, ErrTagRateLimit):
		return http.StatusTooManyRequests

	// 502 Bad Gateway
	case goerr.HasTag(err, ErrTagExternal),
		goerr.HasTag(err, ErrTagGateway):
		return http.StatusBadGateway

	// 500 Internal Server Error (default)
	default:
		return http.StatusInternalServerError
	}
}
