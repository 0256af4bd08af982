package domain

import (
	"time"

	"github.com/google/uuid"
)

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var knownPriorities = map[Priority]struct{}{
	PriorityLow:    {},
	PriorityMedium: {},
	PriorityHigh:   {},
}

// IsKnownPriority reports whether p is one of the enumerated priorities.
func IsKnownPriority(p Priority) bool {
	_, ok := knownPriorities[p]
	return ok
}

// Task is a follow-up action owned by exactly one customer. Automated tasks
// are created by the workflow trigger and are subject to replacement on
// re-scoring; user-created tasks are never touched by the trigger.
//
// Task IDs are ULIDs, so sorting by ID reproduces creation order.
type Task struct {
	ID         string
	CustomerID uuid.UUID
	Title      string
	DueAt      time.Time
	Priority   Priority
	Completed  bool
	Automated  bool
	CreatedAt  time.Time
}
