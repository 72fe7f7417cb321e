package apperr

import "github.com/m-mizutani/goerr/v2"

// NotFound errors (HTTP 404)
var (
	ErrTagNotFound      = goerr.NewTag("not_found")
	ErrTagAgentNotFound = goerr.NewTag("agent_not_found")
)

// Validation errors (HTTP 400)
var (
	ErrTagValidation    = goerr.NewTag("validation")
	ErrTagInvalidInput  = goerr.NewTag("invalid_input")
	ErrTagInvalidFormat = goerr.NewTag("invalid_format")
	ErrTagRequiredField = goerr.NewTag("required_field")
	ErrTagUnknownAction = goerr.NewTag("unknown_action")
)

// Permission errors (HTTP 401)
var (
	ErrTagUnauthorized = goerr.NewTag("unauthorized")
)

// External service errors (HTTP 502)
var (
	ErrTagExternal = goerr.NewTag("external")
	ErrTagGateway  = goerr.NewTag("gateway")
)

// System errors
var (
	ErrTagInternal  = goerr.NewTag("internal")
	ErrTagTimeout   = goerr.NewTag("timeout")
	ErrTagRateLimit = goerr.NewTag("rate_limit")
)
