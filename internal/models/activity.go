package models

import "time"

type ActivityOutcome string

const (
	ActivitySucceeded ActivityOutcome = "succeeded"
	ActivityFailed    ActivityOutcome = "failed"
)

// ActivityEvent records one admin action against the backend.
type ActivityEvent struct {
	ID         string          `json:"id"`
	Admin      string          `json:"admin"`
	Action     string          `json:"action"`
	Resource   string          `json:"resource"`
	ResourceID string          `json:"resourceId,omitempty"`
	Outcome    ActivityOutcome `json:"outcome"`
	Detail     string          `json:"detail,omitempty"`
	At         time.Time       `json:"at"`
}
