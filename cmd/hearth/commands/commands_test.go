package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hearth/cmd/hearth/commands"
	"go.trai.ch/hearth/internal/app"
	"go.trai.ch/hearth/internal/build"
	"go.trai.ch/hearth/internal/core/domain"
)

// call is one recorded Application method invocation.
type call struct {
	method string
	args   []any
}

type mockApp struct {
	calls     []call
	global    app.GlobalOptions
	err       error
	shutdowns int
}

func (m *mockApp) record(method string, args ...any) error {
	m.calls = append(m.calls, call{method: method, args: args})
	return m.err
}

func (m *mockApp) Configure(opts app.GlobalOptions) func(context.Context) error {
	m.global = opts
	return func(context.Context) error {
		m.shutdowns++
		return nil
	}
}

func (m *mockApp) Sync(context.Context) error { return m.record("Sync") }

func (m *mockApp) OpenDay(_ context.Context, opts app.OpenOptions) error {
	return m.record("OpenDay", opts)
}

func (m *mockApp) Today(_ context.Context, opts app.TodayOptions) error {
	return m.record("Today", opts)
}

func (m *mockApp) Toggle(_ context.Context, id int64) error { return m.record("Toggle", id) }

func (m *mockApp) Skip(_ context.Context, id int64) error { return m.record("Skip", id) }

func (m *mockApp) Unskip(_ context.Context, id int64) error { return m.record("Unskip", id) }

func (m *mockApp) Move(_ context.Context, id int64, direction string) error {
	return m.record("Move", id, direction)
}

func (m *mockApp) Add(_ context.Context, key string, opts app.AddOptions) error {
	return m.record("Add", key, opts)
}

func (m *mockApp) History(_ context.Context, id int64) error { return m.record("History", id) }

func (m *mockApp) Backfill(_ context.Context, from, to string) error {
	return m.record("Backfill", from, to)
}

func (m *mockApp) Daemon(context.Context) error { return m.record("Daemon") }

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Dispatch(t *testing.T) {
	seven := 7

	tests := []struct {
		name string
		args []string
		want call
	}{
		{"sync", []string{"sync"}, call{"Sync", nil}},
		{"open", []string{"open"}, call{"OpenDay", []any{app.OpenOptions{}}}},
		{
			"open with flags",
			[]string{"open", "--date", "2026-01-05", "--no-rollover"},
			call{"OpenDay", []any{app.OpenOptions{Date: "2026-01-05", NoRollover: true}}},
		},
		{"today", []string{"today"}, call{"Today", []any{app.TodayOptions{OutputMode: "auto"}}}},
		{
			"today interactive",
			[]string{"today", "-i", "-d", "yesterday"},
			call{"Today", []any{app.TodayOptions{Date: "yesterday", OutputMode: "board"}}},
		},
		{
			"today linear",
			[]string{"today", "-o", "linear"},
			call{"Today", []any{app.TodayOptions{OutputMode: "linear"}}},
		},
		{"toggle", []string{"toggle", "12"}, call{"Toggle", []any{int64(12)}}},
		{"skip", []string{"skip", "3"}, call{"Skip", []any{int64(3)}}},
		{"unskip", []string{"unskip", "3"}, call{"Unskip", []any{int64(3)}}},
		{"history", []string{"history", "4"}, call{"History", []any{int64(4)}}},
		{"move", []string{"move", "5", "down"}, call{"Move", []any{int64(5), "down"}}},
		{"add", []string{"add", "gutters"}, call{"Add", []any{"gutters", app.AddOptions{}}}},
		{
			"add with order",
			[]string{"add", "gutters", "--date", "tomorrow", "--order", "7"},
			call{"Add", []any{"gutters", app.AddOptions{Date: "tomorrow", Order: &seven}}},
		},
		{
			"add with order zero",
			[]string{"add", "gutters", "--order", "0"},
			call{"Add", []any{"gutters", app.AddOptions{Order: new(int)}}},
		},
		{
			"backfill",
			[]string{"backfill", "2026-01-01", "2026-01-31"},
			call{"Backfill", []any{"2026-01-01", "2026-01-31"}},
		},
		{"daemon", []string{"daemon"}, call{"Daemon", nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockApp{}
			_, err := execute(t, m, tt.args...)
			require.NoError(t, err)
			require.Len(t, m.calls, 1)
			assert.Equal(t, tt.want, m.calls[0])
			assert.Equal(t, 1, m.shutdowns)
		})
	}
}

func TestCommands_GlobalFlags(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "sync", "--config", "/home/hearth.toml", "--json", "--trace", "--actor", "sam")
	require.NoError(t, err)

	assert.Equal(t, app.GlobalOptions{
		ConfigPath: "/home/hearth.toml",
		JSON:       true,
		Trace:      true,
		Actor:      "sam",
	}, m.global)
}

func TestCommands_InvalidID(t *testing.T) {
	for _, arg := range []string{"abc", "0", "-2"} {
		t.Run(arg, func(t *testing.T) {
			m := &mockApp{}
			_, err := execute(t, m, "toggle", "--", arg)
			require.ErrorIs(t, err, domain.ErrInvalidInstanceID)
			assert.Empty(t, m.calls)
		})
	}
}

func TestCommands_ArgumentCounts(t *testing.T) {
	for _, args := range [][]string{
		{"toggle"},
		{"move", "1"},
		{"backfill", "2026-01-01"},
		{"add"},
		{"sync", "extra"},
	} {
		m := &mockApp{}
		_, err := execute(t, m, args...)
		require.Error(t, err, "args %v", args)
		assert.Empty(t, m.calls)
	}
}

func TestCommands_ReturnsAppErrors(t *testing.T) {
	m := &mockApp{err: errors.New("simulated error")}
	_, err := execute(t, m, "sync")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
	assert.Equal(t, 1, m.shutdowns)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hearth version "+build.Version)
}
