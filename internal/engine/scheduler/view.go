package scheduler

import (
	"context"
	"errors"
	"slices"

	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/hearth/internal/core/ports"
	"go.trai.ch/zerr"
)

// TodayView returns the instances of date split into the incomplete group, in
// working order, and the done group, in completion order.
func (s *Scheduler) TodayView(ctx context.Context, date domain.Date) (view domain.DayView, err error) {
	ctx, span := s.tracer.Start(ctx, "scheduler.today_view", ports.WithAttribute("date", date.String()))
	defer func() { endSpan(span, err) }()

	var entries []domain.Entry
	err = s.store.Atomic(ctx, func(tx ports.Tx) error {
		var listErr error
		entries, listErr = tx.ListInstances(ctx, date)
		return listErr
	})
	if err != nil {
		return domain.DayView{}, err
	}
	return assemble(date, entries), nil
}

func assemble(date domain.Date, entries []domain.Entry) domain.DayView {
	view := domain.DayView{Date: date}
	for _, e := range entries {
		if e.Instance.Status == domain.StatusIncomplete {
			view.Incomplete = append(view.Incomplete, e)
		} else {
			view.Done = append(view.Done, e)
		}
	}
	slices.SortStableFunc(view.Incomplete, compareIncomplete)
	slices.SortStableFunc(view.Done, compareDone)
	return view
}

// Reorder moves an incomplete instance one place up or down by swapping
// assigned orders with its neighbour. When both orders are equal the moved
// instance is nudged by one instead. Moving past either end, or moving an
// instance that is not incomplete, changes nothing.
func (s *Scheduler) Reorder(ctx context.Context, id int64, dir domain.Direction) (move domain.Move, err error) {
	ctx, span := s.tracer.Start(ctx, "scheduler.reorder",
		ports.WithAttribute("instance_id", id), ports.WithAttribute("direction", string(dir)))
	defer func() { endSpan(span, err) }()

	if dir != domain.Up && dir != domain.Down {
		return domain.Move{}, zerr.With(zerr.Wrap(domain.ErrInvalidDirection, "reorder"), "direction", string(dir))
	}

	date, err := s.instanceDate(ctx, id)
	if err != nil {
		return domain.Move{}, err
	}

	err = s.atomic(ctx, []domain.Date{date}, func(tx ports.Tx) error {
		inst, err := tx.GetInstance(ctx, id)
		if err != nil {
			return err
		}
		task, err := tx.GetTask(ctx, inst.TaskID)
		if err != nil {
			return err
		}
		move = domain.Move{Entry: domain.Entry{Instance: *inst, Task: *task}, Direction: dir}
		if inst.Status != domain.StatusIncomplete {
			return nil
		}

		pending, err := tx.ListInstances(ctx, date, domain.StatusIncomplete)
		if err != nil {
			return err
		}
		slices.SortStableFunc(pending, compareIncomplete)
		idx := slices.IndexFunc(pending, func(e domain.Entry) bool { return e.Instance.ID == id })
		if idx < 0 {
			return nil
		}
		other := idx - 1
		if dir == domain.Down {
			other = idx + 1
		}
		if other < 0 || other >= len(pending) {
			return nil
		}

		now := s.clock.Now()
		moved, neighbour := &pending[idx].Instance, &pending[other].Instance
		if moved.AssignedOrder == neighbour.AssignedOrder {
			nudge := -1
			if dir == domain.Down {
				nudge = 1
			}
			if err := moved.Reassign(moved.AssignedOrder+nudge, now); err != nil {
				return err
			}
		} else {
			mine, theirs := moved.AssignedOrder, neighbour.AssignedOrder
			if err := moved.Reassign(theirs, now); err != nil {
				return err
			}
			if err := neighbour.Reassign(mine, now); err != nil {
				return err
			}
			if err := tx.UpdateInstance(ctx, neighbour); err != nil {
				return err
			}
		}
		if err := tx.UpdateInstance(ctx, moved); err != nil {
			return err
		}
		move.Entry.Instance = *moved
		move.Moved = true
		return nil
	})
	if err != nil {
		return domain.Move{}, err
	}
	span.SetAttribute("moved", move.Moved)
	return move, nil
}

// AddManual puts a task on date by hand. Without an explicit order the
// instance goes after everything already on that date. When the task already
// has an instance on date it is returned unchanged.
func (s *Scheduler) AddManual(ctx context.Context, taskID int64, date domain.Date, order *int) (add domain.ManualAdd, err error) {
	ctx, span := s.tracer.Start(ctx, "scheduler.add_manual",
		ports.WithAttribute("task_id", taskID), ports.WithAttribute("date", date.String()))
	defer func() { endSpan(span, err) }()

	err = s.atomic(ctx, []domain.Date{date}, func(tx ports.Tx) error {
		task, err := tx.GetTask(ctx, taskID)
		if err != nil {
			return err
		}
		existing, err := tx.FindInstance(ctx, taskID, date)
		if err != nil {
			return err
		}
		if existing != nil {
			add = domain.ManualAdd{Entry: domain.Entry{Instance: *existing, Task: *task}}
			return nil
		}

		slot := 0
		if order != nil {
			slot = *order
		} else if highest, ok, err := tx.MaxAssignedOrder(ctx, date); err != nil {
			return err
		} else if ok {
			slot = highest + 1
		}

		inst, err := tx.CreateInstance(ctx, domain.NewInstance{
			TaskID:        taskID,
			Date:          date,
			Source:        domain.SourceManual,
			AssignedOrder: slot,
			CreatedAt:     s.clock.Now(),
		})
		if errors.Is(err, domain.ErrInstanceExists) {
			existing, findErr := tx.FindInstance(ctx, taskID, date)
			if findErr != nil {
				return findErr
			}
			if existing == nil {
				return err
			}
			add = domain.ManualAdd{Entry: domain.Entry{Instance: *existing, Task: *task}}
			return nil
		}
		if err != nil {
			return err
		}
		add = domain.ManualAdd{Entry: domain.Entry{Instance: *inst, Task: *task}, Created: true}
		return nil
	})
	if err != nil {
		return domain.ManualAdd{}, err
	}
	return add, nil
}
