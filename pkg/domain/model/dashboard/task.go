package dashboard

import "github.com/m-mizutani/mctl/pkg/domain/model/gateway"

// Task is a point-in-time view of one active gateway session
type Task struct {
	ID           string `json:"id"`
	Agent        string `json:"agent"`
	Model        string `json:"model"`
	InputTokens  int64  `json:"inputTokens"`
	OutputTokens int64  `json:"outputTokens"`
	UpdatedAt    string `json:"updatedAt"`
	Kind         string `json:"kind"`
}

const (
	defaultTaskAgent = "main"
	defaultTaskModel = "Unknown"
	defaultTaskKind  = "direct"
	unknownTime      = "Unknown"
)

func NewTask(raw gateway.Session, tf TimeFormatter) Task {
	task := Task{
		ID:           raw.SessionID,
		Agent:        raw.AgentID,
		Model:        raw.Model,
		InputTokens:  max(raw.InputTokens, 0),
		OutputTokens: max(raw.OutputTokens, 0),
		UpdatedAt:    tf.FormatMillis(raw.UpdatedAt.Int64(), unknownTime),
		Kind:         raw.Kind,
	}
	if task.Agent == "" {
		task.Agent = defaultTaskAgent
	}
	if task.Model == "" {
		task.Model = defaultTaskModel
	}
	if task.Kind == "" {
		task.Kind = defaultTaskKind
	}
	return task
}
