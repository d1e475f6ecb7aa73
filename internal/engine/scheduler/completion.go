package scheduler

import (
	"context"
	"time"

	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/hearth/internal/core/ports"
	"go.trai.ch/zerr"
)

// change is a status mutation applied to an instance inside a transaction.
// It reports the event to record, or an empty event when the mutation is not
// legal from the instance's current status.
type change func(ctx context.Context, tx ports.Tx, inst *domain.TaskInstance, now time.Time) (domain.EventType, error)

// Complete marks an incomplete instance complete and hands it the next
// completion number of its date.
func (s *Scheduler) Complete(ctx context.Context, id int64, actor string) (domain.Transition, error) {
	return s.transition(ctx, "scheduler.complete", id, actor, complete)
}

// Uncomplete returns a complete instance to incomplete and releases its
// completion number. The number is never handed out again.
func (s *Scheduler) Uncomplete(ctx context.Context, id int64, actor string) (domain.Transition, error) {
	return s.transition(ctx, "scheduler.uncomplete", id, actor, uncomplete)
}

// Toggle uncompletes a complete instance and completes anything else.
func (s *Scheduler) Toggle(ctx context.Context, id int64, actor string) (domain.Transition, error) {
	return s.transition(ctx, "scheduler.toggle", id, actor,
		func(ctx context.Context, tx ports.Tx, inst *domain.TaskInstance, now time.Time) (domain.EventType, error) {
			if inst.Status == domain.StatusComplete {
				return uncomplete(ctx, tx, inst, now)
			}
			return complete(ctx, tx, inst, now)
		})
}

// Skip marks an incomplete instance as skipped. Skipping does not use a
// completion number.
func (s *Scheduler) Skip(ctx context.Context, id int64, actor string) (domain.Transition, error) {
	return s.transition(ctx, "scheduler.skip", id, actor,
		func(_ context.Context, _ ports.Tx, inst *domain.TaskInstance, now time.Time) (domain.EventType, error) {
			if inst.Status != domain.StatusIncomplete {
				return "", nil
			}
			return domain.EventSkipped, inst.MarkSkipped(now)
		})
}

// Unskip returns a skipped instance to incomplete.
func (s *Scheduler) Unskip(ctx context.Context, id int64, actor string) (domain.Transition, error) {
	return s.transition(ctx, "scheduler.unskip", id, actor,
		func(_ context.Context, _ ports.Tx, inst *domain.TaskInstance, now time.Time) (domain.EventType, error) {
			if inst.Status != domain.StatusSkipped {
				return "", nil
			}
			return domain.EventUnskipped, inst.MarkIncomplete(now)
		})
}

func complete(ctx context.Context, tx ports.Tx, inst *domain.TaskInstance, now time.Time) (domain.EventType, error) {
	if inst.Status != domain.StatusIncomplete {
		return "", nil
	}
	highest, _, err := tx.MaxCompletionOrder(ctx, inst.Date)
	if err != nil {
		return "", err
	}
	return domain.EventCompleted, inst.MarkComplete(highest+1, now)
}

func uncomplete(_ context.Context, _ ports.Tx, inst *domain.TaskInstance, now time.Time) (domain.EventType, error) {
	if inst.Status != domain.StatusComplete {
		return "", nil
	}
	return domain.EventUncompleted, inst.MarkIncomplete(now)
}

func (s *Scheduler) transition(
	ctx context.Context,
	name string,
	id int64,
	actor string,
	apply change,
) (tr domain.Transition, err error) {
	ctx, span := s.tracer.Start(ctx, name, ports.WithAttribute("instance_id", id))
	defer func() { endSpan(span, err) }()

	date, err := s.instanceDate(ctx, id)
	if err != nil {
		return domain.Transition{}, err
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
		tr = domain.Transition{Instance: *inst, Task: *task}

		now := s.clock.Now()
		event, err := apply(ctx, tx, inst, now)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "change instance status"), "instance_id", id)
		}
		if event == "" {
			return nil
		}

		if err := tx.UpdateInstance(ctx, inst); err != nil {
			return err
		}
		exec, err := tx.AppendExecution(ctx, domain.TaskExecution{
			InstanceID:      inst.ID,
			Event:           event,
			Actor:           actor,
			CompletionOrder: inst.CompletionOrder,
			At:              now,
		})
		if err != nil {
			return err
		}
		tr.Instance = *inst
		tr.Execution = exec
		return nil
	})
	if err != nil {
		return domain.Transition{}, err
	}
	span.SetAttribute("changed", tr.Changed())
	return tr, nil
}

// History returns the execution log of an instance in append order.
func (s *Scheduler) History(ctx context.Context, id int64) (h domain.History, err error) {
	ctx, span := s.tracer.Start(ctx, "scheduler.history", ports.WithAttribute("instance_id", id))
	defer func() { endSpan(span, err) }()

	err = s.store.Atomic(ctx, func(tx ports.Tx) error {
		inst, err := tx.GetInstance(ctx, id)
		if err != nil {
			return err
		}
		task, err := tx.GetTask(ctx, inst.TaskID)
		if err != nil {
			return err
		}
		execs, err := tx.ListExecutions(ctx, id)
		if err != nil {
			return err
		}
		h = domain.History{Entry: domain.Entry{Instance: *inst, Task: *task}, Executions: execs}
		return nil
	})
	if err != nil {
		return domain.History{}, err
	}
	return h, nil
}
