package app

import (
	"context"

	"go.trai.ch/hearth/internal/adapters/board"
	"go.trai.ch/hearth/internal/adapters/detector"
	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/hearth/internal/core/ports"
	"go.trai.ch/hearth/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// OpenOptions configuration for the OpenDay method.
type OpenOptions struct {
	// Date is the day to open. Empty means today in the plan's timezone.
	Date       string
	NoRollover bool
}

// OpenDay generates the day's scheduled instances and carries over yesterday's
// incomplete work.
func (a *App) OpenDay(ctx context.Context, opts OpenOptions) error {
	s, err := a.open(ctx, true)
	if err != nil {
		return err
	}
	defer s.close(a.logger)

	date, err := resolveDate(opts.Date, s.today(a.clock.Now()))
	if err != nil {
		return err
	}
	report, err := s.sched.OpenDay(ctx, date, scheduler.OpenOptions{NoRollover: opts.NoRollover})
	if err != nil {
		return err
	}
	a.renderer.DayReport(report)
	return nil
}

// TodayOptions configuration for the Today method.
type TodayOptions struct {
	Date string
	// OutputMode is auto, board or linear.
	OutputMode string
}

// Today shows the ordered worklist of a day, interactively when the terminal allows it.
func (a *App) Today(ctx context.Context, opts TodayOptions) error {
	s, err := a.open(ctx, true)
	if err != nil {
		return err
	}
	defer s.close(a.logger)

	date, err := resolveDate(opts.Date, s.today(a.clock.Now()))
	if err != nil {
		return err
	}

	if detector.ResolveMode(a.mode, opts.OutputMode) == detector.ModeBoard {
		return board.Run(ctx, s.sched, date, s.actor, a.teaOptions...)
	}

	view, err := s.sched.TodayView(ctx, date)
	if err != nil {
		return err
	}
	a.renderer.Day(view)
	return nil
}

// Toggle completes an incomplete instance or reopens a complete one.
func (a *App) Toggle(ctx context.Context, id int64) error {
	return a.transition(ctx, id, (*scheduler.Scheduler).Toggle)
}

// Skip marks an incomplete instance as skipped for its day.
func (a *App) Skip(ctx context.Context, id int64) error {
	return a.transition(ctx, id, (*scheduler.Scheduler).Skip)
}

// Unskip returns a skipped instance to the incomplete list.
func (a *App) Unskip(ctx context.Context, id int64) error {
	return a.transition(ctx, id, (*scheduler.Scheduler).Unskip)
}

type transitionFunc func(*scheduler.Scheduler, context.Context, int64, string) (domain.Transition, error)

func (a *App) transition(ctx context.Context, id int64, fn transitionFunc) error {
	s, err := a.open(ctx, false)
	if err != nil {
		return err
	}
	defer s.close(a.logger)

	tr, err := fn(s.sched, ctx, id, s.actor)
	if err != nil {
		return err
	}
	a.renderer.Transition(tr)
	return nil
}

// Move swaps an incomplete instance with its neighbour in the given direction.
func (a *App) Move(ctx context.Context, id int64, direction string) error {
	dir, err := domain.ParseDirection(direction)
	if err != nil {
		return err
	}

	s, err := a.open(ctx, false)
	if err != nil {
		return err
	}
	defer s.close(a.logger)

	move, err := s.sched.Reorder(ctx, id, dir)
	if err != nil {
		return err
	}
	a.renderer.Move(move)
	return nil
}

// AddOptions configuration for the Add method.
type AddOptions struct {
	Date string
	// Order places the instance explicitly. Nil appends it after the day's last entry.
	Order *int
}

// Add puts a task from the plan on a day by hand.
func (a *App) Add(ctx context.Context, key string, opts AddOptions) error {
	s, err := a.open(ctx, true)
	if err != nil {
		return err
	}
	defer s.close(a.logger)

	date, err := resolveDate(opts.Date, s.today(a.clock.Now()))
	if err != nil {
		return err
	}

	var task *domain.Task
	err = s.store.Atomic(ctx, func(tx ports.Tx) error {
		var findErr error
		task, findErr = tx.FindTaskByKey(ctx, key)
		return findErr
	})
	if err != nil {
		return err
	}
	if task == nil {
		return zerr.With(zerr.Wrap(domain.ErrTaskNotFound, "add task"), "task", key)
	}

	add, err := s.sched.AddManual(ctx, task.ID, date, opts.Order)
	if err != nil {
		return err
	}
	a.renderer.ManualAdd(add)
	return nil
}

// History prints the execution log of an instance.
func (a *App) History(ctx context.Context, id int64) error {
	s, err := a.open(ctx, false)
	if err != nil {
		return err
	}
	defer s.close(a.logger)

	h, err := s.sched.History(ctx, id)
	if err != nil {
		return err
	}
	a.renderer.History(h)
	return nil
}

// Backfill generates scheduled instances for every date from..to inclusive.
func (a *App) Backfill(ctx context.Context, from, to string) error {
	s, err := a.open(ctx, true)
	if err != nil {
		return err
	}
	defer s.close(a.logger)

	today := s.today(a.clock.Now())
	start, err := resolveDate(from, today)
	if err != nil {
		return err
	}
	end, err := resolveDate(to, today)
	if err != nil {
		return err
	}

	days, err := s.sched.Backfill(ctx, start, end, s.plan.Settings.BackfillLimit)
	if err != nil {
		return err
	}
	a.renderer.Backfill(days)
	return nil
}
