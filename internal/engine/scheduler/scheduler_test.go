package scheduler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hearth/internal/adapters/clock"
	"go.trai.ch/hearth/internal/adapters/telemetry"
	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/hearth/internal/core/ports"
	"go.trai.ch/hearth/internal/core/ports/mocks"
	"go.trai.ch/hearth/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

// mockScheduler returns a scheduler whose store runs every transaction
// against tx.
func mockScheduler(t *testing.T, tracer ports.Tracer) (*scheduler.Scheduler, *mocks.MockTx) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	tx := mocks.NewMockTx(ctrl)
	store.EXPECT().Atomic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(ports.Tx) error) error { return fn(tx) }).
		AnyTimes()
	if tracer == nil {
		tracer = telemetry.NoOpTracer{}
	}
	return scheduler.NewScheduler(store, clock.NewFixed(morning), tracer), tx
}

func daily(id int64, key string) domain.ScheduledTask {
	return domain.ScheduledTask{
		Rule: domain.ScheduleRule{TaskID: id, RRule: "FREQ=DAILY", Start: sunday, Active: true},
		Task: domain.Task{ID: id, Key: key, Name: key, Active: true},
	}
}

func withOrder(order int) gomock.Matcher {
	return gomock.Cond(func(in domain.NewInstance) bool { return in.AssignedOrder == order })
}

func TestGenerateForDate_StoreErrorIsTraced(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	boom := errors.New("disk I/O error")

	tracer.EXPECT().Start(gomock.Any(), "scheduler.generate", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		})
	span.EXPECT().RecordError(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, boom)
	})
	span.EXPECT().End()

	sched, tx := mockScheduler(t, tracer)
	tx.EXPECT().ListActiveRules(gomock.Any(), monday).Return(nil, boom)

	_, err := sched.GenerateForDate(context.Background(), monday)
	require.ErrorIs(t, err, boom)
}

func TestGenerateForDate_ConflictStillConsumesSequence(t *testing.T) {
	sched, tx := mockScheduler(t, nil)

	tx.EXPECT().ListActiveRules(gomock.Any(), monday).
		Return([]domain.ScheduledTask{daily(1, "raced"), daily(2, "dishes")}, nil)
	gomock.InOrder(
		tx.EXPECT().CreateInstance(gomock.Any(), withOrder(0)).Return(nil, domain.ErrInstanceExists),
		tx.EXPECT().CreateInstance(gomock.Any(), withOrder(1)).
			Return(&domain.TaskInstance{ID: 8, TaskID: 2, AssignedOrder: 1}, nil),
	)

	created, err := sched.GenerateForDate(context.Background(), monday)
	require.NoError(t, err)
	assert.Equal(t, []string{"dishes"}, taskKeys(created))
}

func TestGenerateForDate_CreateErrorAborts(t *testing.T) {
	sched, tx := mockScheduler(t, nil)
	boom := errors.New("constraint failed")

	tx.EXPECT().ListActiveRules(gomock.Any(), monday).Return([]domain.ScheduledTask{daily(1, "dishes")}, nil)
	tx.EXPECT().CreateInstance(gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := sched.GenerateForDate(context.Background(), monday)
	require.ErrorIs(t, err, boom)
}

func TestRollForward_ConflictDoesNotConsumeSlot(t *testing.T) {
	sched, tx := mockScheduler(t, nil)

	pending := []domain.Entry{
		{Instance: domain.TaskInstance{ID: 1, TaskID: 1, AssignedOrder: 0}, Task: domain.Task{ID: 1, Active: true}},
		{Instance: domain.TaskInstance{ID: 2, TaskID: 2, AssignedOrder: 1}, Task: domain.Task{ID: 2, Active: true}},
	}
	tx.EXPECT().ListInstances(gomock.Any(), sunday, domain.StatusIncomplete).Return(pending, nil)
	tx.EXPECT().MaxAssignedOrder(gomock.Any(), monday).Return(4, true, nil)
	tx.EXPECT().FindInstance(gomock.Any(), gomock.Any(), monday).Return(nil, nil).Times(2)
	gomock.InOrder(
		tx.EXPECT().CreateInstance(gomock.Any(), withOrder(5)).Return(nil, domain.ErrInstanceExists),
		tx.EXPECT().CreateInstance(gomock.Any(), withOrder(5)).
			Return(&domain.TaskInstance{ID: 9, TaskID: 2, AssignedOrder: 5}, nil),
	)

	rolled, err := sched.RollForward(context.Background(), sunday, monday)
	require.NoError(t, err)
	require.Len(t, rolled, 1)
	assert.Equal(t, int64(2), rolled[0].TaskID)
}

func TestBackfill_PropagatesErrors(t *testing.T) {
	sched, tx := mockScheduler(t, nil)
	boom := errors.New("database is locked")

	tx.EXPECT().ListActiveRules(gomock.Any(), gomock.Any()).Return(nil, boom).MinTimes(1)

	_, err := sched.Backfill(context.Background(), monday, thursday, 1)
	require.ErrorIs(t, err, boom)
}

func TestComplete_StoreErrorRollsBack(t *testing.T) {
	sched, tx := mockScheduler(t, nil)
	boom := errors.New("disk full")
	inst := &domain.TaskInstance{ID: 3, TaskID: 1, Date: monday, Status: domain.StatusIncomplete, Source: domain.SourceGenerated}

	tx.EXPECT().GetInstance(gomock.Any(), int64(3)).DoAndReturn(
		func(context.Context, int64) (*domain.TaskInstance, error) {
			cp := *inst
			return &cp, nil
		}).Times(2)
	tx.EXPECT().GetTask(gomock.Any(), int64(1)).Return(&domain.Task{ID: 1, Name: "dishes"}, nil)
	tx.EXPECT().MaxCompletionOrder(gomock.Any(), monday).Return(0, false, nil)
	tx.EXPECT().UpdateInstance(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().AppendExecution(gomock.Any(), gomock.Any()).Return(nil, boom)

	tr, err := sched.Complete(context.Background(), 3, "sam")
	require.ErrorIs(t, err, boom)
	assert.False(t, tr.Changed())
}
