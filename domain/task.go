package domain

import "time"

// Priority classifies a task's urgency. The set is closed; unrecognized
// input is coerced to PriorityMedium at the form boundary, never rejected.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a single to-do item.
//
// Tags holds the normalized comma-joined tag list; the empty string means
// "no tags" and is persisted as NULL, never as an empty string.
type Task struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	Priority  Priority   `json:"priority"`
	DueAt     *time.Time `json:"due_at,omitempty"`
	Tags      string     `json:"tags,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Overdue reports whether the task has a due date in the past and is still open.
func (t *Task) Overdue(now time.Time) bool {
	return t != nil && !t.Completed && t.DueAt != nil && t.DueAt.Before(now)
}
