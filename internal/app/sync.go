package app

import (
	"context"
	"time"

	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/hearth/internal/core/ports"
	"go.trai.ch/zerr"
)

// Sync makes the plan file the source of truth for the task catalog and
// prints what changed.
func (a *App) Sync(ctx context.Context) error {
	s, err := a.open(ctx, false)
	if err != nil {
		return err
	}
	defer s.close(a.logger)

	report, err := syncPlan(ctx, s.store, s.plan, a.clock.Now())
	if err != nil {
		return err
	}
	a.renderer.Sync(report)
	return nil
}

// syncPlan upserts planned tasks by key, replaces or removes their schedule
// rules and deactivates stored tasks the plan no longer mentions. Nothing is
// written when any planned task or rule is invalid.
func syncPlan(ctx context.Context, store ports.Store, plan *domain.Plan, now time.Time) (domain.SyncReport, error) {
	for _, pt := range plan.Tasks {
		if err := pt.Task.Validate(); err != nil {
			return domain.SyncReport{}, err
		}
		if pt.Schedule != nil {
			if err := pt.Schedule.Validate(); err != nil {
				return domain.SyncReport{}, zerr.With(err, "task", pt.Task.Key)
			}
		}
	}

	var report domain.SyncReport
	err := store.Atomic(ctx, func(tx ports.Tx) error {
		report = domain.SyncReport{}

		stored, err := tx.ListTasks(ctx)
		if err != nil {
			return err
		}
		byKey := make(map[string]domain.Task, len(stored))
		for _, t := range stored {
			byKey[t.Key] = t
		}

		planned := make(map[string]struct{}, len(plan.Tasks))
		for _, pt := range plan.Tasks {
			planned[pt.Task.Key] = struct{}{}

			taskChanged, err := upsertTask(ctx, tx, byKey, &pt, now, &report)
			if err != nil {
				return err
			}
			ruleChanged, err := syncRule(ctx, tx, pt)
			if err != nil {
				return err
			}
			switch {
			case taskChanged:
			case ruleChanged:
				report.Updated++
			default:
				report.Unchanged++
			}
		}

		for _, t := range stored {
			if _, ok := planned[t.Key]; ok || !t.Active {
				continue
			}
			t.Active = false
			t.UpdatedAt = now
			if err := tx.SaveTask(ctx, &t); err != nil {
				return err
			}
			report.Deactivated++
		}
		return nil
	})
	if err != nil {
		return domain.SyncReport{}, zerr.Wrap(err, "failed to sync plan")
	}
	return report, nil
}

// upsertTask creates or updates the stored task for pt and writes the stored ID
// back into pt. It counts creations and updates into report and reports
// whether it did either.
func upsertTask(
	ctx context.Context,
	tx ports.Tx,
	byKey map[string]domain.Task,
	pt *domain.PlannedTask,
	now time.Time,
	report *domain.SyncReport,
) (bool, error) {
	task := pt.Task
	current, ok := byKey[task.Key]
	if !ok {
		task.ID = 0
		task.CreatedAt = now
		task.UpdatedAt = now
		if err := tx.SaveTask(ctx, &task); err != nil {
			return false, err
		}
		pt.Task = task
		report.Created++
		return true, nil
	}

	task.ID = current.ID
	task.CreatedAt = current.CreatedAt
	pt.Task = task
	if sameTask(current, task) {
		return false, nil
	}
	task.UpdatedAt = now
	if err := tx.SaveTask(ctx, &task); err != nil {
		return false, err
	}
	pt.Task = task
	report.Updated++
	return true, nil
}

// syncRule makes the stored rule of pt.Task match pt.Schedule.
func syncRule(ctx context.Context, tx ports.Tx, pt domain.PlannedTask) (bool, error) {
	current, err := tx.FindRule(ctx, pt.Task.ID)
	if err != nil {
		return false, err
	}

	if pt.Schedule == nil {
		if current == nil {
			return false, nil
		}
		return true, tx.DeleteRule(ctx, pt.Task.ID)
	}

	rule := *pt.Schedule
	rule.TaskID = pt.Task.ID
	if current != nil && sameRule(*current, rule) {
		return false, nil
	}
	return true, tx.SaveRule(ctx, rule)
}

func sameTask(a, b domain.Task) bool {
	return a.Name == b.Name &&
		a.Priority == b.Priority &&
		a.SortOrder == b.SortOrder &&
		a.Active == b.Active &&
		sameDate(a.Due, b.Due)
}

func sameRule(a, b domain.ScheduleRule) bool {
	return a.RRule == b.RRule &&
		a.Start == b.Start &&
		sameDate(a.End, b.End) &&
		a.Active == b.Active &&
		a.TimezoneOrDefault() == b.TimezoneOrDefault()
}

func sameDate(a, b *domain.Date) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
