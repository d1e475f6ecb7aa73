package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// Status is the completion state of a task instance.
type Status string

const (
	// StatusIncomplete is the initial state of every instance.
	StatusIncomplete Status = "incomplete"
	// StatusComplete marks an instance done; it then holds a completion order.
	StatusComplete Status = "complete"
	// StatusSkipped marks an instance deliberately not done for the day.
	StatusSkipped Status = "skipped"
)

// Rank orders statuses in the done group of a day view: complete, then skipped, then anything else.
func (s Status) Rank() int {
	switch s {
	case StatusIncomplete:
		return 0
	case StatusComplete:
		return 1
	case StatusSkipped:
		return 2
	default:
		return 3
	}
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusIncomplete || s == StatusComplete || s == StatusSkipped
}

// Source records how an instance came to exist.
type Source string

const (
	// SourceManual instances were added by hand.
	SourceManual Source = "manual"
	// SourceGenerated instances were materialized from a schedule rule.
	SourceGenerated Source = "generated"
	// SourceRolledOver instances were carried forward from the previous day.
	SourceRolledOver Source = "rolled_over"
)

// Valid reports whether s is a known source.
func (s Source) Valid() bool {
	return s == SourceManual || s == SourceGenerated || s == SourceRolledOver
}

// NewInstance holds the fields needed to create a task instance.
type NewInstance struct {
	TaskID        int64
	Date          Date
	Source        Source
	AssignedOrder int
	CreatedAt     time.Time
}

// TaskInstance is the occurrence of a task on one date.
//
// CompletionOrder is set exactly when Status is StatusComplete. The Mark*
// methods are the only way the engine changes status and each of them
// checks that invariant before returning.
type TaskInstance struct {
	ID              int64
	TaskID          int64
	Date            Date
	Status          Status
	Source          Source
	AssignedOrder   int
	CompletionOrder *int
	CompletedAt     *time.Time
	SkippedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks the status and completion order invariant.
func (i *TaskInstance) Validate() error {
	if !i.Status.Valid() {
		return zerr.With(zerr.Wrap(ErrInvalidInstanceState, "unknown status"), "status", string(i.Status))
	}
	if !i.Source.Valid() {
		return zerr.With(zerr.Wrap(ErrInvalidInstanceState, "unknown source"), "source", string(i.Source))
	}
	if (i.Status == StatusComplete) != (i.CompletionOrder != nil) {
		return zerr.With(zerr.With(zerr.Wrap(ErrInvalidInstanceState, "completion order must be set exactly when complete"),
			"instance_id", i.ID), "status", string(i.Status))
	}
	return nil
}

// MarkComplete moves an incomplete instance to complete with the given completion order.
func (i *TaskInstance) MarkComplete(order int, at time.Time) error {
	if i.Status != StatusIncomplete {
		return i.illegal(StatusComplete)
	}
	i.Status = StatusComplete
	i.CompletionOrder = &order
	i.CompletedAt = &at
	i.SkippedAt = nil
	i.UpdatedAt = at
	return i.Validate()
}

// MarkIncomplete moves a complete or skipped instance back to incomplete and
// clears its completion order and timestamps.
func (i *TaskInstance) MarkIncomplete(at time.Time) error {
	if i.Status == StatusIncomplete {
		return i.illegal(StatusIncomplete)
	}
	i.Status = StatusIncomplete
	i.CompletionOrder = nil
	i.CompletedAt = nil
	i.SkippedAt = nil
	i.UpdatedAt = at
	return i.Validate()
}

// MarkSkipped moves an incomplete instance to skipped. Skipped instances hold no completion order.
func (i *TaskInstance) MarkSkipped(at time.Time) error {
	if i.Status != StatusIncomplete {
		return i.illegal(StatusSkipped)
	}
	i.Status = StatusSkipped
	i.CompletionOrder = nil
	i.CompletedAt = nil
	i.SkippedAt = &at
	i.UpdatedAt = at
	return i.Validate()
}

// Reassign sets the display order of an incomplete instance.
func (i *TaskInstance) Reassign(order int, at time.Time) error {
	if i.Status != StatusIncomplete {
		return i.illegal(i.Status)
	}
	i.AssignedOrder = order
	i.UpdatedAt = at
	return nil
}

func (i *TaskInstance) illegal(to Status) error {
	return zerr.With(zerr.With(zerr.With(zerr.Wrap(ErrIllegalTransition, "change instance status"),
		"instance_id", i.ID), "from", string(i.Status)), "to", string(to))
}

// Entry is an instance joined with its task, the unit a day view is built from.
type Entry struct {
	Instance TaskInstance
	Task     Task
}

// DayView is the ordered worklist of one date.
type DayView struct {
	Date       Date
	Incomplete []Entry
	Done       []Entry
}
