package domain

import (
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
)

// Plan is the household plan read from hearth.yaml or hearth.toml.
type Plan struct {
	// Path is the absolute path of the plan file.
	Path     string
	Settings Settings
	// Tasks are sorted by key.
	Tasks []PlannedTask
}

// PlannedTask is a task definition with its optional schedule.
// Schedule.TaskID is unset until the task is stored.
type PlannedTask struct {
	Task     Task
	Schedule *ScheduleRule
}

// Settings are the plan-wide options.
type Settings struct {
	Database      string
	Timezone      string
	Actor         string
	OpenAt        string
	BackfillLimit int
}

// Dir returns the directory containing the plan file.
func (p *Plan) Dir() string {
	return filepath.Dir(p.Path)
}

// DatabasePath resolves the configured database path against the plan directory.
func (p *Plan) DatabasePath() string {
	db := p.Settings.Database
	if db == "" {
		db = DefaultDatabasePath()
	}
	if filepath.IsAbs(db) {
		return db
	}
	return filepath.Join(p.Dir(), db)
}

// Location loads the plan timezone used to decide which date "today" is.
func (p *Plan) Location() (*time.Location, error) {
	name := p.Settings.Timezone
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(ErrInvalidTimezone, err.Error()), "timezone", name)
	}
	return loc, nil
}
