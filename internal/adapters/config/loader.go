// Package config loads the household plan from hearth.yaml or hearth.toml.
package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
	_ "time/tzdata" // plans name IANA zones; embed the database for hosts without one

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/hearth/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.PlanLoader = (*Loader)(nil)

// Loader implements ports.PlanLoader.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Discover walks up from cwd until it finds a plan file.
func (l *Loader) Discover(cwd string) (string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigNotFound.Error()), "cwd", cwd)
	}
	for {
		for _, name := range domain.PlanFileNames() {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "discover plan"), "cwd", cwd)
		}
		dir = parent
	}
}

// Load reads the plan at path and converts it to a validated domain.Plan.
func (l *Loader) Load(path string) (*domain.Plan, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Planfile
	if err := decodeFile(abs, &file); err != nil {
		return nil, err
	}

	plan := &domain.Plan{
		Path: abs,
		Settings: domain.Settings{
			Database:      file.Settings.Database,
			Timezone:      file.Settings.Timezone,
			Actor:         file.Settings.Actor,
			OpenAt:        file.Settings.OpenAt,
			BackfillLimit: file.Settings.BackfillLimit,
		},
	}
	if plan.Settings.Timezone == "" {
		plan.Settings.Timezone = domain.DefaultTimezone
	}
	if plan.Settings.OpenAt == "" {
		plan.Settings.OpenAt = domain.DefaultOpenSchedule
	}
	if plan.Settings.BackfillLimit <= 0 {
		plan.Settings.BackfillLimit = domain.DefaultBackfillLimit
	}
	if _, err := plan.Location(); err != nil {
		return nil, zerr.With(err, "path", abs)
	}

	for _, key := range slices.Sorted(maps.Keys(file.Tasks)) {
		planned, err := convertTask(key, file.Tasks[key], plan.Settings.Timezone)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "task", key), "path", abs)
		}
		plan.Tasks = append(plan.Tasks, planned)
	}

	if len(plan.Tasks) == 0 && l.Logger != nil {
		l.Logger.Warn(fmt.Sprintf("%s defines no tasks", filepath.Base(abs)))
	}
	return plan, nil
}

func decodeFile(path string, out *Planfile) error {
	//nolint:gosec // path comes from discovery or an explicit --config flag
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, out)
	case ".toml":
		err = toml.Unmarshal(data, out)
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnsupportedConfigFormat, "decode plan"), "path", path)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}

func convertTask(key string, dto *TaskDTO, timezone string) (domain.PlannedTask, error) {
	if dto == nil {
		dto = &TaskDTO{}
	}
	task := domain.Task{
		Key:       key,
		Name:      dto.Name,
		Priority:  dto.Priority,
		SortOrder: dto.SortOrder,
		Active:    boolOr(dto.Active, true),
	}
	if task.Name == "" {
		task.Name = key
	}
	due, err := toDate(dto.Due)
	if err != nil {
		return domain.PlannedTask{}, zerr.With(err, "field", "due")
	}
	task.Due = due
	if err := task.Validate(); err != nil {
		return domain.PlannedTask{}, err
	}

	planned := domain.PlannedTask{Task: task}
	if dto.Schedule == nil {
		return planned, nil
	}

	start, err := toDate(dto.Schedule.Start)
	if err != nil {
		return domain.PlannedTask{}, zerr.With(err, "field", "schedule.start")
	}
	end, err := toDate(dto.Schedule.End)
	if err != nil {
		return domain.PlannedTask{}, zerr.With(err, "field", "schedule.end")
	}
	rule := &domain.ScheduleRule{
		RRule:    dto.Schedule.RRule,
		End:      end,
		Active:   boolOr(dto.Schedule.Active, true),
		Timezone: dto.Schedule.Timezone,
	}
	if start != nil {
		rule.Start = *start
	}
	if rule.Timezone == "" {
		rule.Timezone = timezone
	}
	if err := rule.Validate(); err != nil {
		return domain.PlannedTask{}, err
	}
	planned.Schedule = rule
	return planned, nil
}

// toDate accepts the forms a date takes after decoding into any: a string,
// a YAML timestamp or a TOML local date.
func toDate(v any) (*domain.Date, error) {
	var d domain.Date
	switch value := v.(type) {
	case nil:
		return nil, nil
	case string:
		parsed, err := domain.ParseDate(value)
		if err != nil {
			return nil, err
		}
		d = parsed
	case time.Time:
		d = domain.DateOf(value)
	case toml.LocalDate:
		d = domain.NewDate(value.Year, time.Month(value.Month), value.Day)
	case toml.LocalDateTime:
		d = domain.NewDate(value.Year, time.Month(value.Month), value.Day)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidDate, "unsupported date value"), "value", fmt.Sprintf("%v", v))
	}
	return &d, nil
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
