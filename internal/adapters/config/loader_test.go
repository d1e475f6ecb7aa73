package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hearth/internal/adapters/config"
	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/hearth/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writePlan(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log), log
}

const yamlPlan = `
settings:
  timezone: UTC
  actor: sam
tasks:
  trash:
    name: Take out the trash
    priority: 1
    schedule:
      rrule: FREQ=WEEKLY;BYDAY=MO,TH
      start: 2026-01-01
      end: "2026-06-30"
  dishes:
    name: Do the dishes
    sort_order: 10
    due: 2026-02-01
    schedule:
      rrule: FREQ=DAILY
      start: "2026-01-01"
      timezone: Europe/Berlin
  gutters:
    active: false
`

func TestLoader_LoadYAML(t *testing.T) {
	loader, _ := newLoader(t)
	path := writePlan(t, t.TempDir(), domain.YAMLPlanFileName, yamlPlan)

	plan, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, plan.Path)
	assert.Equal(t, "UTC", plan.Settings.Timezone)
	assert.Equal(t, "sam", plan.Settings.Actor)
	assert.Equal(t, domain.DefaultOpenSchedule, plan.Settings.OpenAt)
	assert.Equal(t, domain.DefaultBackfillLimit, plan.Settings.BackfillLimit)
	assert.Equal(t, filepath.Join(filepath.Dir(path), ".hearth", "hearth.db"), plan.DatabasePath())

	require.Len(t, plan.Tasks, 3)
	dishes, gutters, trash := plan.Tasks[0], plan.Tasks[1], plan.Tasks[2]

	assert.Equal(t, "dishes", dishes.Task.Key)
	assert.Equal(t, 10, dishes.Task.SortOrder)
	assert.True(t, dishes.Task.Active)
	require.NotNil(t, dishes.Task.Due)
	assert.Equal(t, domain.NewDate(2026, time.February, 1), *dishes.Task.Due)
	require.NotNil(t, dishes.Schedule)
	assert.Equal(t, "Europe/Berlin", dishes.Schedule.Timezone)
	assert.Equal(t, domain.NewDate(2026, time.January, 1), dishes.Schedule.Start)
	assert.True(t, dishes.Schedule.Active)

	assert.Equal(t, "gutters", gutters.Task.Name, "name defaults to the key")
	assert.False(t, gutters.Task.Active)
	assert.Nil(t, gutters.Schedule)

	require.NotNil(t, trash.Schedule)
	assert.Equal(t, "UTC", trash.Schedule.Timezone, "schedules inherit the plan timezone")
	require.NotNil(t, trash.Schedule.End)
	assert.Equal(t, domain.NewDate(2026, time.June, 30), *trash.Schedule.End)
}

func TestLoader_LoadTOML(t *testing.T) {
	loader, _ := newLoader(t)
	path := writePlan(t, t.TempDir(), domain.TOMLPlanFileName, `
[settings]
timezone = "UTC"
database = "/var/lib/hearth/state.db"
backfill_limit = 2

[tasks.laundry]
name = "Laundry"
priority = 2

[tasks.laundry.schedule]
rrule = "FREQ=WEEKLY;BYDAY=SA"
start = 2026-01-03
end = "2026-12-31"
active = false
`)

	plan, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/hearth/state.db", plan.DatabasePath())
	assert.Equal(t, 2, plan.Settings.BackfillLimit)

	require.Len(t, plan.Tasks, 1)
	laundry := plan.Tasks[0]
	assert.Equal(t, 2, laundry.Task.Priority)
	require.NotNil(t, laundry.Schedule)
	assert.Equal(t, domain.NewDate(2026, time.January, 3), laundry.Schedule.Start)
	assert.Equal(t, domain.NewDate(2026, time.December, 31), *laundry.Schedule.End)
	assert.False(t, laundry.Schedule.Active)
}

func TestLoader_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
		wantMsg string
	}{
		{
			name:    "invalid rrule",
			file:    domain.YAMLPlanFileName,
			content: "tasks:\n  dishes:\n    schedule:\n      rrule: FREQ=MONTHLY\n      start: 2026-01-01\n",
			wantErr: domain.ErrInvalidRecurrence,
		},
		{
			name:    "end before start",
			file:    domain.YAMLPlanFileName,
			content: "tasks:\n  dishes:\n    schedule:\n      rrule: FREQ=DAILY\n      start: 2026-02-01\n      end: 2026-01-01\n",
			wantErr: domain.ErrInvalidDateRange,
		},
		{
			name:    "missing start",
			file:    domain.YAMLPlanFileName,
			content: "tasks:\n  dishes:\n    schedule:\n      rrule: FREQ=DAILY\n",
			wantErr: domain.ErrInvalidDateRange,
		},
		{
			name:    "bad due date",
			file:    domain.YAMLPlanFileName,
			content: "tasks:\n  dishes:\n    due: next tuesday\n",
			wantErr: domain.ErrInvalidDate,
		},
		{
			name:    "bad key",
			file:    domain.YAMLPlanFileName,
			content: "tasks:\n  Dishes Now:\n    name: x\n",
			wantErr: domain.ErrInvalidTaskKey,
		},
		{
			name:    "bad timezone",
			file:    domain.YAMLPlanFileName,
			content: "settings:\n  timezone: Mars/Olympus\ntasks:\n  dishes: {}\n",
			wantErr: domain.ErrInvalidTimezone,
		},
		{
			name:    "malformed yaml",
			file:    domain.YAMLPlanFileName,
			content: "tasks: [unclosed\n",
			wantMsg: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "unsupported extension",
			file:    "hearth.json",
			content: "{}",
			wantErr: domain.ErrUnsupportedConfigFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			path := writePlan(t, t.TempDir(), tt.file, tt.content)

			_, err := loader.Load(path)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoader_LoadMissingFile(t *testing.T) {
	loader, _ := newLoader(t)
	_, err := loader.Load(filepath.Join(t.TempDir(), domain.YAMLPlanFileName))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
}

func TestLoader_WarnsOnEmptyPlan(t *testing.T) {
	loader, log := newLoader(t)
	log.EXPECT().Warn("hearth.yaml defines no tasks")
	path := writePlan(t, t.TempDir(), domain.YAMLPlanFileName, "settings:\n  timezone: UTC\n")

	plan, err := loader.Load(path)
	require.NoError(t, err)
	assert.Empty(t, plan.Tasks)
}

func TestLoader_Discover(t *testing.T) {
	loader, _ := newLoader(t)
	root := t.TempDir()
	nested := filepath.Join(root, "kitchen", "pantry")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))
	want := writePlan(t, root, domain.TOMLPlanFileName, "")

	got, err := loader.Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	yamlPath := writePlan(t, root, domain.YAMLPlanFileName, "")
	got, err = loader.Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, yamlPath, got, "yaml wins over toml in the same directory")
}
