package apperr

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/mctl/pkg/domain/types"
)

// Gateway related keys
var (
	SourceKey     = goerr.NewTypedKey[string]("source")
	URLKey        = goerr.NewTypedKey[string]("url")
	StatusCodeKey = goerr.NewTypedKey[int]("status_code")
)

// Dashboard related keys
var (
	RequestIDKey = goerr.NewTypedKey[types.RequestID]("request_id")
	ActionKey    = goerr.NewTypedKey[string]("action")
	AgentIDKey   = goerr.NewTypedKey[string]("agent_id")
	CronNameKey  = goerr.NewTypedKey[string]("cron_name")
	FilterKey    = goerr.NewTypedKey[string]("filter")
)

// Configuration related keys
var (
	PathKey     = goerr.NewTypedKey[string]("path")
	TimezoneKey = goerr.NewTypedKey[string]("timezone")
)
