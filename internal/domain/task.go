package domain

import "time"

// Priority classifies how urgent a task is.
type Priority string

// Task priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Status is the completion state of a task.
type Status string

// Task statuses.
const (
	StatusOpen Status = "open"
	StatusDone Status = "done"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusOpen || s == StatusDone
}

// Task is a single to-do item.
//
// DueDate is optional and nullable; a nil DueDate means the task has no
// deadline and can never be overdue.
type Task struct {
	Timestamps
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    Priority   `json:"priority" validate:"required,oneof=low medium high"`
	Status      Status     `json:"status" validate:"required,oneof=open done"`
	Tags        []string   `json:"tags"`
}

// IsOverdue reports whether the task has a due date in the past and is not
// yet done.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != StatusDone
}
