package models

import (
	"time"

	"gorm.io/datatypes"
)

// SystemLog is one ERROR+ record kept in the store's log ring.
type SystemLog struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	UserID    string         `json:"user_id,omitempty"`
	TraceID   string         `json:"trace_id,omitempty"`
	Action    string         `json:"action,omitempty"`
	Error     string         `json:"error,omitempty"`
	Key       string         `json:"key,omitempty"`
	Extra     datatypes.JSON `json:"extra,omitempty"`
}
