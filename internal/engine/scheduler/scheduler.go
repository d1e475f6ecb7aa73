// Package scheduler generates daily task instances, carries unfinished work
// forward and moves instances through their completion states.
package scheduler

import (
	"context"

	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/hearth/internal/core/ports"
)

// Scheduler is the household worklist engine. Every operation runs in one
// store transaction while holding the locks of the dates it touches.
type Scheduler struct {
	store  ports.Store
	clock  ports.Clock
	tracer ports.Tracer
	locks  *dateLocks
}

// NewScheduler creates a new Scheduler with the given dependencies.
func NewScheduler(store ports.Store, clock ports.Clock, tracer ports.Tracer) *Scheduler {
	return &Scheduler{
		store:  store,
		clock:  clock,
		tracer: tracer,
		locks:  &dateLocks{},
	}
}

// atomic runs fn in a transaction while holding the locks of dates.
func (s *Scheduler) atomic(ctx context.Context, dates []domain.Date, fn func(tx ports.Tx) error) error {
	unlock := s.locks.lock(dates...)
	defer unlock()
	return s.store.Atomic(ctx, fn)
}

// instanceDate looks up the date of an instance so that its lock can be taken
// before the instance is read again for update. The date of an instance never
// changes.
func (s *Scheduler) instanceDate(ctx context.Context, id int64) (domain.Date, error) {
	var date domain.Date
	err := s.store.Atomic(ctx, func(tx ports.Tx) error {
		inst, err := tx.GetInstance(ctx, id)
		if err != nil {
			return err
		}
		date = inst.Date
		return nil
	})
	return date, err
}

func endSpan(span ports.Span, err error) {
	if err != nil {
		span.RecordError(err)
	}
	span.End()
}
