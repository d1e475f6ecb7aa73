package scheduler_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/hearth/internal/adapters/clock"
	"go.trai.ch/hearth/internal/adapters/sqlite"
	"go.trai.ch/hearth/internal/adapters/telemetry"
	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/hearth/internal/core/ports"
	"go.trai.ch/hearth/internal/engine/scheduler"
)

var (
	sunday   = domain.NewDate(2026, time.January, 4)
	monday   = domain.NewDate(2026, time.January, 5)
	tuesday  = domain.NewDate(2026, time.January, 6)
	thursday = domain.NewDate(2026, time.January, 8)
	morning  = time.Date(2026, time.January, 5, 8, 0, 0, 0, time.UTC)
)

type fixture struct {
	sched *scheduler.Scheduler
	store *sqlite.Store
	clock *clock.Fixed
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "hearth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	clk := clock.NewFixed(morning)
	return &fixture{
		sched: scheduler.NewScheduler(store, clk, telemetry.NoOpTracer{}),
		store: store,
		clock: clk,
	}
}

type taskSpec struct {
	key       string
	priority  int
	sortOrder int
	rrule     string
	start     domain.Date
	end       *domain.Date
}

// task stores a task and, when rrule is set, its schedule rule.
func (f *fixture) task(t *testing.T, spec taskSpec) domain.Task {
	t.Helper()
	task := domain.Task{
		Key:       spec.key,
		Name:      spec.key,
		Priority:  spec.priority,
		SortOrder: spec.sortOrder,
		Active:    true,
		CreatedAt: morning,
		UpdatedAt: morning,
	}
	f.atomic(t, func(ctx context.Context, tx ports.Tx) {
		require.NoError(t, tx.SaveTask(ctx, &task))
		if spec.rrule == "" {
			return
		}
		start := spec.start
		if start.IsZero() {
			start = sunday
		}
		require.NoError(t, tx.SaveRule(ctx, domain.ScheduleRule{
			TaskID:   task.ID,
			RRule:    spec.rrule,
			Start:    start,
			End:      spec.end,
			Active:   true,
			Timezone: domain.DefaultTimezone,
		}))
	})
	return task
}

func (f *fixture) deactivate(t *testing.T, task domain.Task) {
	t.Helper()
	task.Active = false
	f.atomic(t, func(ctx context.Context, tx ports.Tx) {
		require.NoError(t, tx.SaveTask(ctx, &task))
	})
}

func (f *fixture) atomic(t *testing.T, fn func(ctx context.Context, tx ports.Tx)) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.store.Atomic(ctx, func(tx ports.Tx) error {
		fn(ctx, tx)
		return nil
	}))
}

func (f *fixture) add(t *testing.T, task domain.Task, date domain.Date) domain.TaskInstance {
	t.Helper()
	added, err := f.sched.AddManual(context.Background(), task.ID, date, nil)
	require.NoError(t, err)
	require.True(t, added.Created)
	return added.Entry.Instance
}

func (f *fixture) view(t *testing.T, date domain.Date) domain.DayView {
	t.Helper()
	view, err := f.sched.TodayView(context.Background(), date)
	require.NoError(t, err)
	return view
}

func keys(entries []domain.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Task.Key)
	}
	return out
}

func taskKeys(tasks []domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Key)
	}
	return out
}

func ptr[T any](v T) *T { return &v }
