package domain

import "time"

// EventType is the kind of status transition an execution records.
type EventType string

const (
	// EventCompleted records incomplete -> complete.
	EventCompleted EventType = "completed"
	// EventUncompleted records complete -> incomplete.
	EventUncompleted EventType = "uncompleted"
	// EventSkipped records incomplete -> skipped.
	EventSkipped EventType = "skipped"
	// EventUnskipped records skipped -> incomplete.
	EventUnskipped EventType = "unskipped"
)

// TaskExecution is an append-only audit record of one status transition.
// CompletionOrder is the number handed out by a completed event and nil otherwise.
type TaskExecution struct {
	ID              string
	InstanceID      int64
	Event           EventType
	Actor           string
	CompletionOrder *int
	At              time.Time
}

// Transition is the outcome of a completion engine operation. Execution is nil
// when the requested transition was not legal from the instance's current
// status and nothing changed.
type Transition struct {
	Instance  TaskInstance
	Task      Task
	Execution *TaskExecution
}

// Changed reports whether the transition mutated the instance.
func (t Transition) Changed() bool { return t.Execution != nil }
