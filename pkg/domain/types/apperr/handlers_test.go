package apperr_test

import (
	"net/http"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/mctl/pkg/domain/types/apperr"
)

func TestHTTPStatusFromError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "unknown action is a client error",
			err:      goerr.Wrap(apperr.ErrUnknownAction, "rejected"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "invalid payload is a client error",
			err:      apperr.ErrInvalidActionPayload,
			expected: http.StatusBadRequest,
		},
		{
			name:     "broken body is a client error",
			err:      goerr.Wrap(apperr.ErrInvalidRequestBody, "decode"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "gateway failure is bad gateway",
			err:      goerr.New("list jobs", goerr.T(apperr.ErrTagGateway)),
			expected: http.StatusBadGateway,
		},
		{
			name:     "rate limited",
			err:      goerr.New("slow down", goerr.T(apperr.ErrTagRateLimit)),
			expected: http.StatusTooManyRequests,
		},
		{
			name:     "agent not found",
			err:      apperr.ErrAgentNotFound,
			expected: http.StatusNotFound,
		},
		{
			name:     "untagged error",
			err:      goerr.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, apperr.HTTPStatusFromError(tc.err), tc.expected)
		})
	}
}
