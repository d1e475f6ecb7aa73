package domain

import (
	"regexp"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

var taskKeyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Task is a unit of recurring or one-off household work.
type Task struct {
	ID        int64
	Key       string
	Name      string
	Priority  int
	SortOrder int
	Active    bool
	Due       *Date
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks that the task has a usable key and name.
func (t *Task) Validate() error {
	if !taskKeyPattern.MatchString(t.Key) {
		return zerr.With(zerr.Wrap(ErrInvalidTaskKey, "validate task"), "task", t.Key)
	}
	if strings.TrimSpace(t.Name) == "" {
		return zerr.With(zerr.Wrap(ErrInvalidTask, "task name is required"), "task", t.Key)
	}
	return nil
}

// ScheduleRule describes when a task recurs. A task has at most one rule.
type ScheduleRule struct {
	TaskID   int64
	RRule    string
	Start    Date
	End      *Date
	Active   bool
	Timezone string
}

// Validate rejects rules that could never be evaluated correctly: a malformed
// recurrence expression, a missing start or an end before the start.
func (r *ScheduleRule) Validate() error {
	if _, err := ParseRecurrence(r.RRule); err != nil {
		return err
	}
	if r.Start.IsZero() {
		return zerr.Wrap(ErrInvalidDateRange, "start date is required")
	}
	if r.End != nil && r.End.Before(r.Start) {
		return zerr.With(zerr.With(zerr.Wrap(ErrInvalidDateRange, "end date is before start date"),
			"start", r.Start.String()), "end", r.End.String())
	}
	return nil
}

// TimezoneOrDefault returns the rule's timezone label, falling back to DefaultTimezone.
func (r *ScheduleRule) TimezoneOrDefault() string {
	if r.Timezone == "" {
		return DefaultTimezone
	}
	return r.Timezone
}

// ScheduledTask is an active schedule rule joined with its task.
type ScheduledTask struct {
	Rule ScheduleRule
	Task Task
}
