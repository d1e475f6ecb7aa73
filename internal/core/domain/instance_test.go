package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hearth/internal/core/domain"
)

func newInstance() *domain.TaskInstance {
	return &domain.TaskInstance{
		ID:     7,
		TaskID: 1,
		Date:   domain.NewDate(2026, time.January, 5),
		Status: domain.StatusIncomplete,
		Source: domain.SourceGenerated,
	}
}

func TestTaskInstance_CompleteAndUncomplete(t *testing.T) {
	at := time.Date(2026, time.January, 5, 9, 30, 0, 0, time.UTC)
	inst := newInstance()

	require.NoError(t, inst.MarkComplete(3, at))
	assert.Equal(t, domain.StatusComplete, inst.Status)
	require.NotNil(t, inst.CompletionOrder)
	assert.Equal(t, 3, *inst.CompletionOrder)
	assert.Equal(t, at, *inst.CompletedAt)
	assert.Nil(t, inst.SkippedAt)

	err := inst.MarkComplete(4, at)
	require.ErrorIs(t, err, domain.ErrIllegalTransition)
	assert.Equal(t, 3, *inst.CompletionOrder, "failed transition leaves instance untouched")

	require.NoError(t, inst.MarkIncomplete(at.Add(time.Minute)))
	assert.Equal(t, domain.StatusIncomplete, inst.Status)
	assert.Nil(t, inst.CompletionOrder)
	assert.Nil(t, inst.CompletedAt)
	assert.Equal(t, at.Add(time.Minute), inst.UpdatedAt)
}

func TestTaskInstance_Skip(t *testing.T) {
	at := time.Date(2026, time.January, 5, 9, 30, 0, 0, time.UTC)
	inst := newInstance()

	require.NoError(t, inst.MarkSkipped(at))
	assert.Equal(t, domain.StatusSkipped, inst.Status)
	assert.Nil(t, inst.CompletionOrder)
	assert.Equal(t, at, *inst.SkippedAt)

	assert.ErrorIs(t, inst.MarkComplete(1, at), domain.ErrIllegalTransition)
	assert.ErrorIs(t, inst.Reassign(4, at), domain.ErrIllegalTransition)

	require.NoError(t, inst.MarkIncomplete(at))
	assert.Nil(t, inst.SkippedAt)
	assert.ErrorIs(t, inst.MarkIncomplete(at), domain.ErrIllegalTransition)
}

func TestTaskInstance_Validate(t *testing.T) {
	one := 1

	tests := []struct {
		name   string
		mutate func(*domain.TaskInstance)
		ok     bool
	}{
		{"incomplete without order", func(*domain.TaskInstance) {}, true},
		{"complete with order", func(i *domain.TaskInstance) {
			i.Status = domain.StatusComplete
			i.CompletionOrder = &one
		}, true},
		{"complete without order", func(i *domain.TaskInstance) { i.Status = domain.StatusComplete }, false},
		{"incomplete with order", func(i *domain.TaskInstance) { i.CompletionOrder = &one }, false},
		{"skipped with order", func(i *domain.TaskInstance) {
			i.Status = domain.StatusSkipped
			i.CompletionOrder = &one
		}, false},
		{"unknown status", func(i *domain.TaskInstance) { i.Status = "archived" }, false},
		{"unknown source", func(i *domain.TaskInstance) { i.Source = "imported" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := newInstance()
			tt.mutate(inst)
			err := inst.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidInstanceState)
		})
	}
}

func TestStatus_Rank(t *testing.T) {
	assert.Less(t, domain.StatusComplete.Rank(), domain.StatusSkipped.Rank())
	assert.Less(t, domain.StatusSkipped.Rank(), domain.Status("other").Rank())
}

func TestTask_Validate(t *testing.T) {
	assert.NoError(t, (&domain.Task{Key: "dishes", Name: "Do the dishes"}).Validate())
	assert.ErrorIs(t, (&domain.Task{Key: "Dishes!", Name: "x"}).Validate(), domain.ErrInvalidTaskKey)
	assert.ErrorIs(t, (&domain.Task{Key: "dishes", Name: " "}).Validate(), domain.ErrInvalidTask)
}

func TestTransition_Changed(t *testing.T) {
	assert.False(t, domain.Transition{}.Changed())
	assert.True(t, domain.Transition{Execution: &domain.TaskExecution{Event: domain.EventCompleted}}.Changed())
}

func TestParseDirection(t *testing.T) {
	up, err := domain.ParseDirection("up")
	require.NoError(t, err)
	assert.Equal(t, domain.Up, up)

	down, err := domain.ParseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, domain.Down, down)

	_, err = domain.ParseDirection("sideways")
	require.ErrorIs(t, err, domain.ErrInvalidDirection)
}
