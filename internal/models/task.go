package models

import (
	"fmt"
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority parses a priority name. An empty string yields PriorityLow.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case "", PriorityLow:
		return PriorityLow, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityHigh:
		return PriorityHigh, nil
	default:
		return "", fmt.Errorf("invalid priority: %s (expected low, medium or high)", s)
	}
}

type Task struct {
	ID          int64      `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	Priority    Priority   `json:"priority"`
	DueDate     string     `json:"dueDate"` // YYYY-MM-DD format, empty when unset
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

// SetCompleted updates the completion flag and keeps CompletedAt in step:
// set to at on a false->true transition, cleared on true->false.
func (t *Task) SetCompleted(done bool, at time.Time) {
	if done == t.Completed {
		return
	}
	t.Completed = done
	if done {
		t.CompletedAt = &at
	} else {
		t.CompletedAt = nil
	}
}
