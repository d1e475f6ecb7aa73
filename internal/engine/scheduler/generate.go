package scheduler

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"time"

	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/hearth/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// OpenOptions control OpenDay.
type OpenOptions struct {
	// NoRollover skips carrying the previous day's incomplete work forward.
	NoRollover bool
}

// GenerateForDate creates the instances of every active rule matching date and
// returns the tasks that received a new instance. Running it again for the same
// date creates nothing.
func (s *Scheduler) GenerateForDate(ctx context.Context, date domain.Date) (created []domain.Task, err error) {
	ctx, span := s.tracer.Start(ctx, "scheduler.generate", ports.WithAttribute("date", date.String()))
	defer func() { endSpan(span, err) }()

	err = s.atomic(ctx, []domain.Date{date}, func(tx ports.Tx) error {
		var genErr error
		created, genErr = generate(ctx, tx, date, s.clock.Now())
		return genErr
	})
	if err != nil {
		return nil, err
	}
	span.SetAttribute("created", len(created))
	return created, nil
}

func generate(ctx context.Context, tx ports.Tx, date domain.Date, now time.Time) ([]domain.Task, error) {
	rules, err := tx.ListActiveRules(ctx, date)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "generate instances"), "date", date.String())
	}

	matching := slices.DeleteFunc(rules, func(st domain.ScheduledTask) bool {
		return !st.Rule.Active || !st.Task.Active || !domain.Matches(st.Rule, date)
	})
	slices.SortStableFunc(matching, func(a, b domain.ScheduledTask) int {
		return compareTasks(a.Task, b.Task)
	})

	var created []domain.Task
	for seq, st := range matching {
		_, err := tx.CreateInstance(ctx, domain.NewInstance{
			TaskID:        st.Task.ID,
			Date:          date,
			Source:        domain.SourceGenerated,
			AssignedOrder: seq,
			CreatedAt:     now,
		})
		if errors.Is(err, domain.ErrInstanceExists) {
			continue
		}
		if err != nil {
			return nil, zerr.With(zerr.With(zerr.Wrap(err, "generate instances"), "date", date.String()), "task", st.Task.Key)
		}
		created = append(created, st.Task)
	}
	return created, nil
}

// RollForward copies the incomplete instances of from onto to, after the
// instances already there. Tasks that already have an instance on to are left
// alone.
func (s *Scheduler) RollForward(ctx context.Context, from, to domain.Date) (rolled []domain.TaskInstance, err error) {
	ctx, span := s.tracer.Start(ctx, "scheduler.rollover",
		ports.WithAttribute("from", from.String()), ports.WithAttribute("to", to.String()))
	defer func() { endSpan(span, err) }()

	err = s.atomic(ctx, []domain.Date{from, to}, func(tx ports.Tx) error {
		var rollErr error
		rolled, rollErr = rollForward(ctx, tx, from, to, s.clock.Now())
		return rollErr
	})
	if err != nil {
		return nil, err
	}
	span.SetAttribute("rolled_over", len(rolled))
	return rolled, nil
}

func rollForward(ctx context.Context, tx ports.Tx, from, to domain.Date, now time.Time) ([]domain.TaskInstance, error) {
	wrap := func(err error) error {
		return zerr.With(zerr.With(zerr.Wrap(err, "roll over instances"), "from", from.String()), "to", to.String())
	}

	pending, err := tx.ListInstances(ctx, from, domain.StatusIncomplete)
	if err != nil {
		return nil, wrap(err)
	}
	pending = slices.DeleteFunc(pending, func(e domain.Entry) bool { return !e.Task.Active })
	slices.SortStableFunc(pending, compareIncomplete)

	slot := 0
	if highest, ok, err := tx.MaxAssignedOrder(ctx, to); err != nil {
		return nil, wrap(err)
	} else if ok {
		slot = highest + 1
	}

	var rolled []domain.TaskInstance
	for _, e := range pending {
		existing, err := tx.FindInstance(ctx, e.Task.ID, to)
		if err != nil {
			return nil, wrap(err)
		}
		if existing != nil {
			continue
		}
		inst, err := tx.CreateInstance(ctx, domain.NewInstance{
			TaskID:        e.Task.ID,
			Date:          to,
			Source:        domain.SourceRolledOver,
			AssignedOrder: slot,
			CreatedAt:     now,
		})
		if errors.Is(err, domain.ErrInstanceExists) {
			continue
		}
		if err != nil {
			return nil, wrap(err)
		}
		slot++
		rolled = append(rolled, *inst)
	}
	return rolled, nil
}

// OpenDay prepares today: it generates today's instances and then rolls the
// previous day's incomplete work forward, in one transaction.
func (s *Scheduler) OpenDay(ctx context.Context, today domain.Date, opts OpenOptions) (report domain.DayReport, err error) {
	ctx, span := s.tracer.Start(ctx, "scheduler.open_day",
		ports.WithAttribute("date", today.String()), ports.WithAttribute("rollover", !opts.NoRollover))
	defer func() { endSpan(span, err) }()

	yesterday := today.AddDays(-1)
	report = domain.DayReport{Date: today}
	dates := []domain.Date{today}
	if !opts.NoRollover {
		report.RolledFrom = yesterday
		dates = append(dates, yesterday)
	}

	err = s.atomic(ctx, dates, func(tx ports.Tx) error {
		now := s.clock.Now()
		generated, err := generate(ctx, tx, today, now)
		if err != nil {
			return err
		}
		report.Generated = generated
		if opts.NoRollover {
			return nil
		}
		rolled, err := rollForward(ctx, tx, yesterday, today, now)
		if err != nil {
			return err
		}
		report.RolledOver = rolled
		return nil
	})
	if err != nil {
		return domain.DayReport{}, err
	}
	return report, nil
}

// Backfill generates every date in [from, to], at most limit dates at a time.
// A limit of zero or less uses domain.DefaultBackfillLimit.
func (s *Scheduler) Backfill(ctx context.Context, from, to domain.Date, limit int) (days []domain.BackfillDay, err error) {
	ctx, span := s.tracer.Start(ctx, "scheduler.backfill",
		ports.WithAttribute("from", from.String()), ports.WithAttribute("to", to.String()))
	defer func() { endSpan(span, err) }()

	dates := domain.DaysBetween(from, to)
	if len(dates) == 0 {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidDateRange, "backfill"),
			"from", from.String()), "to", to.String())
	}
	if limit <= 0 {
		limit = domain.DefaultBackfillLimit
	}

	days = make([]domain.BackfillDay, len(dates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, date := range dates {
		g.Go(func() (goErr error) {
			defer zerr.Defer(func(perr error) { goErr = perr })

			created, err := s.GenerateForDate(gctx, date)
			if err != nil {
				return err
			}
			days[i] = domain.BackfillDay{Date: date, Created: len(created)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return days, nil
}

// compareTasks orders tasks by precedence: priority, then sort order, then ID.
func compareTasks(a, b domain.Task) int {
	return cmp.Or(
		cmp.Compare(a.Priority, b.Priority),
		cmp.Compare(a.SortOrder, b.SortOrder),
		cmp.Compare(a.ID, b.ID),
	)
}

// compareIncomplete orders the incomplete group by assigned order, then task
// precedence.
func compareIncomplete(a, b domain.Entry) int {
	return cmp.Or(
		cmp.Compare(a.Instance.AssignedOrder, b.Instance.AssignedOrder),
		compareTasks(a.Task, b.Task),
		cmp.Compare(a.Instance.ID, b.Instance.ID),
	)
}

// compareDone orders the done group: complete before skipped, then by
// completion order with unnumbered instances last.
func compareDone(a, b domain.Entry) int {
	if c := cmp.Compare(a.Instance.Status.Rank(), b.Instance.Status.Rank()); c != 0 {
		return c
	}
	ao, bo := a.Instance.CompletionOrder, b.Instance.CompletionOrder
	switch {
	case ao != nil && bo != nil:
		if c := cmp.Compare(*ao, *bo); c != 0 {
			return c
		}
	case ao != nil:
		return -1
	case bo != nil:
		return 1
	}
	return cmp.Compare(a.Instance.ID, b.Instance.ID)
}
