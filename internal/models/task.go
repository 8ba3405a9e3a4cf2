package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a task
type Status string

// Task status constants
const (
	StatusTodo  Status = "TODO"
	StatusDoing Status = "DOING"
	StatusDone  Status = "DONE"
)

// Statuses lists the closed set of task statuses
var Statuses = []Status{StatusTodo, StatusDoing, StatusDone}

// Priority is the urgency of a task
type Priority string

// Priority constants
const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Priorities lists the closed set of task priorities
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParseStatus converts a raw value into a Status, rejecting unknown values
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q (expected TODO, DOING or DONE)", s)
}

// ParsePriority converts a raw value into a Priority, rejecting unknown values
func ParsePriority(s string) (Priority, error) {
	for _, p := range Priorities {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown priority %q (expected LOW, MEDIUM or HIGH)", s)
}

type Task struct {
	ID          uuid.UUID
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     time.Time
	UserID      uuid.UUID
	CreatedAt   time.Time
	Categories  []Category
}

// CategoryIDs returns the ids of the task's categories
func (t *Task) CategoryIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(t.Categories))
	for i, c := range t.Categories {
		ids[i] = c.ID
	}
	return ids
}

// Owner is the public summary of a task owner shown to administrators
type Owner struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// TaskWithOwner is a task as seen from the admin listing
type TaskWithOwner struct {
	Task
	Owner Owner
}
