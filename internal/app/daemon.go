package app

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.trai.ch/hearth/internal/adapters/watcher"
	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/hearth/internal/engine/scheduler"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Daemon opens the day now and then on the plan's open_at schedule, and
// re-syncs the catalog whenever the plan file is saved. It returns when ctx is done.
func (a *App) Daemon(ctx context.Context) error {
	s, err := a.open(ctx, true)
	if err != nil {
		return err
	}
	defer s.close(a.logger)

	spec := s.plan.Settings.OpenAt
	if spec == "" {
		spec = domain.DefaultOpenSchedule
	}
	c := cron.New(cron.WithLocation(s.loc))
	if _, err := c.AddFunc(spec, func() { a.openToday(ctx, s) }); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidOpenSchedule, err.Error()), "open_at", spec)
	}

	w, err := a.watchers()
	if err != nil {
		return err
	}
	if err := w.Start(ctx, s.plan.Path); err != nil {
		_ = w.Stop()
		return err
	}

	a.openToday(ctx, s)
	c.Start()
	a.logger.Info(fmt.Sprintf("Watching %s, opening days at %q (%s)", s.plan.Path, spec, s.loc))

	debouncer := watcher.NewDebouncer(a.debounce, func([]string) { a.reload(ctx, s) })

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer zerr.Defer(a.logger.Error)
		for range w.Events() {
			debouncer.Add(s.plan.Path)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		<-c.Stop().Done()
		return w.Stop()
	})

	err = g.Wait()
	debouncer.Flush()
	return err
}

// openToday runs one day open and logs the outcome. Failures are logged
// rather than returned so the daemon keeps its schedule.
func (a *App) openToday(ctx context.Context, s *session) {
	defer zerr.Defer(a.logger.Error)

	if ctx.Err() != nil {
		return
	}
	today := s.today(a.clock.Now())
	report, err := s.sched.OpenDay(ctx, today, scheduler.OpenOptions{})
	if err != nil {
		a.logger.Error(zerr.With(zerr.Wrap(err, "failed to open day"), "date", today.String()))
		return
	}
	a.logger.Info(fmt.Sprintf("Opened %s: %d generated, %d rolled over",
		today, len(report.Generated), len(report.RolledOver)))
}

// reload re-reads the plan file and syncs it into the catalog. A plan that
// fails to load or validate is logged and the previous catalog stays in place.
func (a *App) reload(ctx context.Context, s *session) {
	defer zerr.Defer(a.logger.Error)

	if ctx.Err() != nil {
		return
	}
	plan, err := a.loader.Load(s.plan.Path)
	if err != nil {
		a.logger.Error(zerr.Wrap(err, "plan reload failed"))
		return
	}
	report, err := syncPlan(ctx, s.store, plan, a.clock.Now())
	if err != nil {
		a.logger.Error(err)
		return
	}
	a.logger.Info(fmt.Sprintf("Reloaded plan: %d created, %d updated, %d deactivated",
		report.Created, report.Updated, report.Deactivated))
}
