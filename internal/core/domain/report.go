package domain

import "go.trai.ch/zerr"

// Direction is the way Reorder moves an incomplete instance.
type Direction string

const (
	// Up moves an instance towards the top of the list.
	Up Direction = "up"
	// Down moves an instance towards the bottom of the list.
	Down Direction = "down"
)

// ParseDirection converts a user-supplied word into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Up, Down:
		return Direction(s), nil
	default:
		return "", zerr.With(zerr.Wrap(ErrInvalidDirection, "parse direction"), "direction", s)
	}
}

// Move is the outcome of Reorder. Moved is false at a list boundary or when
// the instance is not incomplete.
type Move struct {
	Entry     Entry
	Direction Direction
	Moved     bool
}

// DayReport summarizes what opening a day created.
type DayReport struct {
	Date      Date
	Generated []Task
	// RolledFrom is the day incomplete work was carried from. It is the zero
	// Date when rollover was disabled.
	RolledFrom Date
	RolledOver []TaskInstance
}

// RolloverRan reports whether the rollover step was part of the open.
func (r DayReport) RolloverRan() bool { return !r.RolledFrom.IsZero() }

// SyncReport counts the catalog changes made by a plan sync.
type SyncReport struct {
	Created     int
	Updated     int
	Deactivated int
	Unchanged   int
}

// BackfillDay is the number of instances generated for one backfilled date.
type BackfillDay struct {
	Date    Date
	Created int
}

// ManualAdd is the result of adding a task to a day by hand. Created is false
// when the task already had an instance on that day.
type ManualAdd struct {
	Entry   Entry
	Created bool
}

// History is the execution log of one instance in append order.
type History struct {
	Entry      Entry
	Executions []TaskExecution
}
