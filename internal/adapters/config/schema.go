package config

// Planfile is the on-disk shape of hearth.yaml and hearth.toml.
type Planfile struct {
	Settings SettingsDTO         `yaml:"settings" toml:"settings"`
	Tasks    map[string]*TaskDTO `yaml:"tasks"    toml:"tasks"`
}

// SettingsDTO holds plan-wide options.
type SettingsDTO struct {
	Database      string `yaml:"database"       toml:"database"`
	Timezone      string `yaml:"timezone"       toml:"timezone"`
	Actor         string `yaml:"actor"          toml:"actor"`
	OpenAt        string `yaml:"open_at"        toml:"open_at"`
	BackfillLimit int    `yaml:"backfill_limit" toml:"backfill_limit"`
}

// TaskDTO is one task keyed by its slug. Dates may be written as strings or as
// native YAML/TOML dates.
type TaskDTO struct {
	Name      string       `yaml:"name"       toml:"name"`
	Priority  int          `yaml:"priority"   toml:"priority"`
	SortOrder int          `yaml:"sort_order" toml:"sort_order"`
	Active    *bool        `yaml:"active"     toml:"active"`
	Due       any          `yaml:"due"        toml:"due"`
	Schedule  *ScheduleDTO `yaml:"schedule"   toml:"schedule"`
}

// ScheduleDTO is the recurrence of a task.
type ScheduleDTO struct {
	RRule    string `yaml:"rrule"    toml:"rrule"`
	Start    any    `yaml:"start"    toml:"start"`
	End      any    `yaml:"end"      toml:"end"`
	Active   *bool  `yaml:"active"   toml:"active"`
	Timezone string `yaml:"timezone" toml:"timezone"`
}
