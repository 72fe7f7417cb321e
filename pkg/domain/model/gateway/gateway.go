// Package gateway holds the payloads returned by the automation gateway's
// JSON endpoints. Every field is optional on the wire; absent values decode
// to zero values or nil pointers and are defaulted by the dashboard reshape.
package gateway

// SessionList is the body of GET /json/sessions?active=true
type SessionList struct {
	Sessions []Session `json:"sessions"`
	Count    int       `json:"count"`
}

// Session is one in-flight unit of work on the gateway
type Session struct {
	SessionID    string `json:"sessionId"`
	AgentID      string `json:"agentId,omitempty"`
	Model        string `json:"model,omitempty"`
	InputTokens  int64  `json:"inputTokens,omitempty"`
	OutputTokens int64  `json:"outputTokens,omitempty"`
	UpdatedAt    Millis `json:"updatedAt,omitempty"` // epoch milliseconds
	Kind         string `json:"kind,omitempty"`
}

// CronJobList is the body of GET /json/cron/list
type CronJobList struct {
	Jobs  []CronJob `json:"jobs"`
	Total int       `json:"total"`
}

// CronJob is the scheduler's view of one job
type CronJob struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Enabled     bool          `json:"enabled"`
	Schedule    *CronSchedule `json:"schedule,omitempty"`
	State       *CronState    `json:"state,omitempty"`
}

// CronSchedule carries the opaque schedule expression
type CronSchedule struct {
	Kind string `json:"kind,omitempty"`
	Expr string `json:"expr,omitempty"`
	TZ   string `json:"tz,omitempty"`
}

// CronState is the last known execution state of a job
type CronState struct {
	LastRunAtMs    Millis `json:"lastRunAtMs,omitempty"`
	NextRunAtMs    Millis `json:"nextRunAtMs,omitempty"`
	LastStatus     string `json:"lastStatus,omitempty"`
	LastDurationMs Millis `json:"lastDurationMs,omitempty"`
}

// LastStatusOK is the only lastStatus value the gateway uses for a successful run
const LastStatusOK = "ok"

// AgentList is the body of GET /json/agents
type AgentList struct {
	Agents []Agent `json:"agents"`
}

// Agent is one roster entry. Active is a pointer because an absent flag means active.
type Agent struct {
	ID          string   `json:"id"`
	Name        string   `json:"name,omitempty"`
	Role        string   `json:"role,omitempty"`
	Model       string   `json:"model,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	Active      *bool    `json:"active,omitempty"`
	Status      string   `json:"status,omitempty"`
}

// ChannelList is the body of GET /json/channels
type ChannelList struct {
	Channels []Channel `json:"channels"`
}

// Channel is one chat integration configured on the gateway
type Channel struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Provider string `json:"provider"`
	Enabled  bool   `json:"enabled"`
	Status   string `json:"status,omitempty"`
}

// ProviderDiscord is the channel provider that marks the Discord bot as connected
const ProviderDiscord = "discord"
