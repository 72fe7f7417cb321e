package types

import (
	"context"

	"github.com/google/uuid"
)

// RequestID identifies one inbound dashboard request across log lines
type RequestID string

func NewRequestID(ctx context.Context) RequestID {
	return RequestID(newUUID(ctx))
}

func (id RequestID) String() string {
	return string(id)
}

// IsValid checks if the RequestID is a parseable UUID
func (id RequestID) IsValid() bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(string(id))
	return err == nil
}
