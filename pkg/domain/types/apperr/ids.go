package apperr

import "github.com/m-mizutani/goerr/v2"

// Action related errors
var (
	ErrUnknownAction = goerr.New("Unknown action",
		goerr.T(ErrTagUnknownAction), goerr.T(ErrTagValidation)).ID("ERR_UNKNOWN_ACTION")

	ErrInvalidActionPayload = goerr.New("invalid action payload",
		goerr.T(ErrTagInvalidInput)).ID("ERR_INVALID_ACTION_PAYLOAD")

	ErrInvalidRequestBody = goerr.New("invalid request body",
		goerr.T(ErrTagInvalidFormat)).ID("ERR_INVALID_REQUEST_BODY")
)

// Presenter related errors
var (
	ErrAgentNotFound = goerr.New("agent not found",
		goerr.T(ErrTagAgentNotFound)).ID("ERR_AGENT_NOT_FOUND")
)
