package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hearth/internal/adapters/watcher"
	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/hearth/internal/core/ports"
	"go.trai.ch/hearth/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestWatcher_ReportsPlanChangesOnly(t *testing.T) {
	dir := t.TempDir()
	plan := filepath.Join(dir, domain.YAMLPlanFileName)
	require.NoError(t, os.WriteFile(plan, []byte("tasks: {}\n"), domain.FilePerm))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, plan))
	t.Cleanup(func() { _ = w.Stop() })

	received := make(chan ports.WatchEvent, 8)
	go func() {
		for event := range w.Events() {
			received <- event
		}
		close(received)
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), domain.FilePerm))
	require.NoError(t, os.WriteFile(plan, []byte("tasks:\n  dishes: {}\n"), domain.FilePerm))

	select {
	case event := <-received:
		assert.Equal(t, plan, event.Path)
		assert.Contains(t, []ports.WatchOp{ports.OpWrite, ports.OpCreate}, event.Operation)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for plan file")
	}
}

func TestWatcher_StopClosesEvents(t *testing.T) {
	dir := t.TempDir()
	plan := filepath.Join(dir, domain.TOMLPlanFileName)
	require.NoError(t, os.WriteFile(plan, nil, domain.FilePerm))

	w, err := watcher.NewWatcher(nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background(), plan))

	done := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(done)
	}()

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop(), "stop is idempotent")

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("events not closed after stop")
	}
}

func TestWatcher_StartMissingDirectory(t *testing.T) {
	w, err := watcher.NewWatcher(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	err = w.Start(context.Background(), filepath.Join(t.TempDir(), "missing", domain.YAMLPlanFileName))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrWatcherFailed.Error())
}
