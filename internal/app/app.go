// Package app implements the application layer for hearth.
package app

import (
	"context"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/hearth/internal/adapters/detector"
	"go.trai.ch/hearth/internal/adapters/linear"
	"go.trai.ch/hearth/internal/adapters/telemetry"
	"go.trai.ch/hearth/internal/adapters/watcher"
	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/hearth/internal/core/ports"
	"go.trai.ch/hearth/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader     ports.PlanLoader
	opener     ports.StoreOpener
	schedulers *scheduler.Factory
	logger     ports.Logger
	clock      ports.Clock
	watchers   watcher.Factory
	mode       detector.OutputMode

	stdout     io.Writer
	renderer   *linear.Renderer
	teaOptions []tea.ProgramOption
	debounce   time.Duration

	configPath string
	actor      string
}

// New creates a new App instance.
func New(
	loader ports.PlanLoader,
	opener ports.StoreOpener,
	schedulers *scheduler.Factory,
	log ports.Logger,
	clock ports.Clock,
	watchers watcher.Factory,
	mode detector.OutputMode,
) *App {
	return &App{
		loader:     loader,
		opener:     opener,
		schedulers: schedulers,
		logger:     log,
		clock:      clock,
		watchers:   watchers,
		mode:       mode,
		stdout:     os.Stdout,
		renderer:   linear.NewRenderer(os.Stdout),
		debounce:   watcher.DefaultDebounceWindow,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput redirects command output to w.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	a.renderer = linear.NewRenderer(w)
	return a
}

// WithDebounce sets how long the daemon waits for the plan file to settle.
func (a *App) WithDebounce(window time.Duration) *App {
	a.debounce = window
	return a
}

// GlobalOptions are the flags shared by every command.
type GlobalOptions struct {
	// ConfigPath is an explicit plan file. Empty means discover from the working directory.
	ConfigPath string
	// JSON switches log output to JSON lines.
	JSON bool
	// Trace reports engine spans through the logger.
	Trace bool
	// Actor overrides the plan's default actor on recorded executions.
	Actor string
}

// Configure applies the global options. The returned function flushes tracing
// and must be called once the command has finished.
func (a *App) Configure(opts GlobalOptions) func(context.Context) error {
	a.configPath = opts.ConfigPath
	a.actor = opts.Actor

	if j, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		j.SetJSON(opts.JSON)
	}
	if !opts.Trace {
		return func(context.Context) error { return nil }
	}
	return telemetry.Setup(a.logger)
}

// loadPlan reads the plan from --config or by walking up from the working directory.
func (a *App) loadPlan() (*domain.Plan, error) {
	path := a.configPath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to get current working directory")
		}
		if path, err = a.loader.Discover(cwd); err != nil {
			return nil, err
		}
	}
	plan, err := a.loader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load plan")
	}
	return plan, nil
}

// session is one command's view of the household: its plan, open store and scheduler.
type session struct {
	plan  *domain.Plan
	store ports.Store
	sched *scheduler.Scheduler
	loc   *time.Location
	actor string
}

// open loads the plan and opens its database. When sync is set the plan is
// written into the catalog first so new and edited tasks take effect at once.
func (a *App) open(ctx context.Context, sync bool) (*session, error) {
	plan, err := a.loadPlan()
	if err != nil {
		return nil, err
	}
	loc, err := plan.Location()
	if err != nil {
		return nil, err
	}

	store, err := a.opener.Open(ctx, plan.DatabasePath())
	if err != nil {
		return nil, err
	}
	if sync {
		if _, err := syncPlan(ctx, store, plan, a.clock.Now()); err != nil {
			_ = store.Close()
			return nil, err
		}
	}

	actor := a.actor
	if actor == "" {
		actor = plan.Settings.Actor
	}
	a.renderer.SetLocation(loc)

	return &session{
		plan:  plan,
		store: store,
		sched: a.schedulers.New(store),
		loc:   loc,
		actor: actor,
	}, nil
}

func (s *session) close(logger ports.Logger) {
	if err := s.store.Close(); err != nil {
		logger.Error(zerr.Wrap(err, "failed to close database"))
	}
}

// today is the current calendar date in the plan's timezone.
func (s *session) today(now time.Time) domain.Date {
	return domain.DateOf(now.In(s.loc))
}

// resolveDate accepts YYYY-MM-DD or one of today, yesterday and tomorrow.
// An empty value means today.
func resolveDate(value string, today domain.Date) (domain.Date, error) {
	switch value {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDays(-1), nil
	case "tomorrow":
		return today.AddDays(1), nil
	default:
		return domain.ParseDate(value)
	}
}
