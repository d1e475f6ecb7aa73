package scheduler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hearth/internal/core/domain"
)

func TestTodayView_Grouping(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var ids []int64
	for _, spec := range []taskSpec{
		{key: "a", priority: 3}, {key: "b", priority: 1}, {key: "c"}, {key: "d"}, {key: "e"},
	} {
		task := f.task(t, spec)
		added, err := f.sched.AddManual(ctx, task.ID, monday, ptr(0))
		require.NoError(t, err)
		ids = append(ids, added.Entry.Instance.ID)
	}

	_, err := f.sched.Skip(ctx, ids[2], "")
	require.NoError(t, err)
	_, err = f.sched.Complete(ctx, ids[4], "")
	require.NoError(t, err)
	_, err = f.sched.Complete(ctx, ids[3], "")
	require.NoError(t, err)

	view := f.view(t, monday)
	assert.Equal(t, monday, view.Date)
	assert.Equal(t, []string{"b", "a"}, keys(view.Incomplete), "equal orders fall back to priority")
	assert.Equal(t, []string{"e", "d", "c"}, keys(view.Done))
}

func TestTodayView_EmptyDay(t *testing.T) {
	f := newFixture(t)
	view := f.view(t, monday)
	assert.Empty(t, view.Incomplete)
	assert.Empty(t, view.Done)
}

func TestReorder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.task(t, taskSpec{key: "a", priority: 0, rrule: "FREQ=DAILY"})
	f.task(t, taskSpec{key: "b", priority: 1, rrule: "FREQ=DAILY"})
	f.task(t, taskSpec{key: "c", priority: 2, rrule: "FREQ=DAILY"})
	_, err := f.sched.GenerateForDate(ctx, monday)
	require.NoError(t, err)

	view := f.view(t, monday)
	b := view.Incomplete[1].Instance

	move, err := f.sched.Reorder(ctx, b.ID, domain.Up)
	require.NoError(t, err)
	assert.True(t, move.Moved)
	assert.Equal(t, 0, move.Entry.Instance.AssignedOrder)
	assert.Equal(t, []string{"b", "a", "c"}, keys(f.view(t, monday).Incomplete))

	move, err = f.sched.Reorder(ctx, b.ID, domain.Up)
	require.NoError(t, err)
	assert.False(t, move.Moved, "already at the top")

	move, err = f.sched.Reorder(ctx, b.ID, domain.Down)
	require.NoError(t, err)
	assert.True(t, move.Moved)
	assert.Equal(t, []string{"a", "b", "c"}, keys(f.view(t, monday).Incomplete))

	c := f.view(t, monday).Incomplete[2].Instance
	move, err = f.sched.Reorder(ctx, c.ID, domain.Down)
	require.NoError(t, err)
	assert.False(t, move.Moved, "already at the bottom")
}

func TestReorder_EqualOrdersAreNudged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.task(t, taskSpec{key: "first", priority: 0})
	second := f.task(t, taskSpec{key: "second", priority: 1})

	_, err := f.sched.AddManual(ctx, first.ID, monday, ptr(4))
	require.NoError(t, err)
	added, err := f.sched.AddManual(ctx, second.ID, monday, ptr(4))
	require.NoError(t, err)

	move, err := f.sched.Reorder(ctx, added.Entry.Instance.ID, domain.Up)
	require.NoError(t, err)
	assert.True(t, move.Moved)
	assert.Equal(t, 3, move.Entry.Instance.AssignedOrder)

	view := f.view(t, monday)
	assert.Equal(t, []string{"second", "first"}, keys(view.Incomplete))
	assert.Equal(t, 4, view.Incomplete[1].Instance.AssignedOrder, "neighbour keeps its order")
}

func TestReorder_OnlyIncomplete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.add(t, f.task(t, taskSpec{key: "a"}), monday)
	f.add(t, f.task(t, taskSpec{key: "b"}), monday)

	_, err := f.sched.Complete(ctx, a.ID, "")
	require.NoError(t, err)

	move, err := f.sched.Reorder(ctx, a.ID, domain.Down)
	require.NoError(t, err)
	assert.False(t, move.Moved)
	assert.Equal(t, domain.StatusComplete, move.Entry.Instance.Status)
}

func TestReorder_InvalidDirection(t *testing.T) {
	f := newFixture(t)
	_, err := f.sched.Reorder(context.Background(), 1, domain.Direction("left"))
	require.ErrorIs(t, err, domain.ErrInvalidDirection)
}

func TestAddManual(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dishes := f.task(t, taskSpec{key: "dishes"})
	bread := f.task(t, taskSpec{key: "bread"})

	first, err := f.sched.AddManual(ctx, dishes.ID, monday, nil)
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, 0, first.Entry.Instance.AssignedOrder, "empty day starts at zero")
	assert.Equal(t, domain.SourceManual, first.Entry.Instance.Source)
	assert.Equal(t, "dishes", first.Entry.Task.Key)

	second, err := f.sched.AddManual(ctx, bread.ID, monday, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Entry.Instance.AssignedOrder)

	again, err := f.sched.AddManual(ctx, dishes.ID, monday, ptr(9))
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, first.Entry.Instance.ID, again.Entry.Instance.ID)
	assert.Equal(t, 0, again.Entry.Instance.AssignedOrder)
}

func TestAddManual_UnknownTask(t *testing.T) {
	f := newFixture(t)
	_, err := f.sched.AddManual(context.Background(), 99, monday, nil)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}
