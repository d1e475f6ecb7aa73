package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/hearth/internal/adapters/clock"
	"go.trai.ch/hearth/internal/adapters/config"
	"go.trai.ch/hearth/internal/adapters/detector"
	"go.trai.ch/hearth/internal/adapters/sqlite"
	"go.trai.ch/hearth/internal/adapters/telemetry"
	"go.trai.ch/hearth/internal/app"
	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/hearth/internal/core/ports"
	"go.trai.ch/hearth/internal/core/ports/mocks"
	"go.trai.ch/hearth/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

func newProvider(t *testing.T) (ComponentProvider, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	clk := clock.System{}

	application := app.New(
		config.NewLoader(log),
		sqlite.Opener{},
		scheduler.NewFactory(clk, telemetry.NoOpTracer{}),
		log,
		clk,
		func() (ports.Watcher, error) { return nil, errors.New("not watching") },
		detector.ModeLinear,
	)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: log,
		}, func() {}, nil
	}
	return provider, log
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, _ := newProvider(t)
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "hearth version")
}

// TestRun_SyncWritesToStdout verifies that command output goes to the given writer.
func TestRun_SyncWritesToStdout(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	path := filepath.Join(dir, domain.YAMLPlanFileName)
	assert.NoError(t, os.WriteFile(path, []byte("tasks:\n  dishes:\n    name: Do the dishes\n"), domain.FilePerm))

	provider, _ := newProvider(t)
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"sync", "--config", path}, stdout, stderr, provider)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "Synced plan: 1 created, 0 updated, 0 deactivated, 0 unchanged.\n", stdout.String())
	assert.FileExists(t, filepath.Join(dir, domain.DefaultDatabasePath()))
}

// TestRun_Error verifies that command errors are logged and produce exit code 1.
func TestRun_Error(t *testing.T) {
	provider, log := newProvider(t)
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrInvalidInstanceID)
	})

	exitCode := run(context.Background(), []string{"toggle", "first"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_ProviderError verifies that initialization failures are reported on stderr.
func TestRun_ProviderError(t *testing.T) {
	stderr := new(bytes.Buffer)
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("graph failed")
	}

	exitCode := run(context.Background(), []string{"sync"}, new(bytes.Buffer), stderr, provider)
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: graph failed\n", stderr.String())
}

// TestRun_AppliesOptions verifies that options see the resolved App.
func TestRun_AppliesOptions(t *testing.T) {
	provider, _ := newProvider(t)
	var seen *app.App

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), new(bytes.Buffer), provider,
		func(a *app.App) { seen = a })
	assert.Equal(t, 0, exitCode)
	assert.NotNil(t, seen)
}
