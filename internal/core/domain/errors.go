package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidDate is returned when a calendar date cannot be parsed.
	ErrInvalidDate = zerr.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidRecurrence is returned when a recurrence expression is malformed or unsupported.
	ErrInvalidRecurrence = zerr.New("invalid recurrence rule")

	// ErrInvalidDateRange is returned when a schedule ends before it starts or has no start.
	ErrInvalidDateRange = zerr.New("invalid date range")

	// ErrInvalidTask is returned when a task definition is incomplete.
	ErrInvalidTask = zerr.New("invalid task")

	// ErrInvalidTaskKey is returned when a task key contains characters other than
	// lowercase letters, digits, hyphens and underscores.
	ErrInvalidTaskKey = zerr.New("task key can only contain lowercase alphanumeric characters, hyphens and underscores")

	// ErrTaskNotFound is returned when a referenced task does not exist.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrInstanceNotFound is returned when a referenced task instance does not exist.
	ErrInstanceNotFound = zerr.New("task instance not found")

	// ErrInvalidInstanceID is returned when an instance ID argument is not a positive integer.
	ErrInvalidInstanceID = zerr.New("invalid instance id, expected a positive integer")

	// ErrInstanceExists is returned by the store when a task already has an instance on a date.
	ErrInstanceExists = zerr.New("task instance already exists for date")

	// ErrInvalidInstanceState is returned when an instance would violate the
	// completion order invariant.
	ErrInvalidInstanceState = zerr.New("invalid task instance state")

	// ErrIllegalTransition is returned by instance setters when the current status
	// does not allow the requested change.
	ErrIllegalTransition = zerr.New("illegal status transition")

	// ErrInvalidDirection is returned when a reorder direction is neither up nor down.
	ErrInvalidDirection = zerr.New("invalid direction, expected 'up' or 'down'")

	// ErrInvalidTimezone is returned when a timezone label cannot be loaded.
	ErrInvalidTimezone = zerr.New("invalid timezone")

	// ErrInvalidOpenSchedule is returned when the daemon cron expression is invalid.
	ErrInvalidOpenSchedule = zerr.New("invalid open schedule")

	// ErrConfigNotFound is returned when no plan file can be located.
	ErrConfigNotFound = zerr.New("could not find hearth.yaml or hearth.toml")

	// ErrConfigReadFailed is returned when the plan file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read plan file")

	// ErrConfigParseFailed is returned when the plan file cannot be decoded.
	ErrConfigParseFailed = zerr.New("failed to parse plan file")

	// ErrUnsupportedConfigFormat is returned when the plan file extension is unknown.
	ErrUnsupportedConfigFormat = zerr.New("unsupported plan file format")

	// ErrStoreOpenFailed is returned when the database cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open database")

	// ErrStoreMigrateFailed is returned when the schema cannot be applied.
	ErrStoreMigrateFailed = zerr.New("failed to migrate database")

	// ErrStoreReadFailed is returned when a query fails.
	ErrStoreReadFailed = zerr.New("failed to read from database")

	// ErrStoreWriteFailed is returned when a write fails.
	ErrStoreWriteFailed = zerr.New("failed to write to database")

	// ErrWatcherFailed is returned when the plan file cannot be watched.
	ErrWatcherFailed = zerr.New("failed to watch plan file")
)
