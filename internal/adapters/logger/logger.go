// Package logger implements ports.Logger on top of log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/hearth/internal/core/ports"
)

// chainLink is the part of zerr.Error the logger relies on to print a cause chain
// one message per line.
type chainLink interface {
	Message() string
	Metadata() map[string]any
}

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	output   io.Writer
	jsonMode bool
}

// New creates a Logger writing human-readable lines to stderr.
func New() *Logger {
	l := &Logger{output: os.Stderr}
	l.rebuild()
	return l
}

// SetOutput redirects the logger. A nil writer means stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON records and pretty lines. The output is kept.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// rebuild must be called with mu held.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.jsonMode {
		l.logger = slog.New(slog.NewJSONHandler(l.output, opts))
		return
	}
	l.logger = slog.New(NewPrettyHandler(l.output, opts))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err. In JSON mode the error is attached as a structured field;
// otherwise the cause chain is printed one link per line.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}
	l.logger.Error(formatChain(collectChain(err)))
}

type chainEntry struct {
	message  string
	metadata map[string]any
}

func collectChain(err error) []chainEntry {
	var entries []chainEntry
	carried := make(map[string]any)
	for current := err; current != nil; current = errors.Unwrap(current) {
		link, ok := current.(chainLink)
		if !ok {
			entries = append(entries, chainEntry{message: current.Error(), metadata: carried})
			break
		}
		maps.Copy(carried, link.Metadata())
		// zerr.With on a plain error inserts a link without a message of its own.
		if link.Message() == "" {
			continue
		}
		entries = append(entries, chainEntry{message: link.Message(), metadata: carried})
		carried = make(map[string]any)
	}
	return entries
}

func formatChain(entries []chainEntry) string {
	var lines []string
	for i, entry := range entries {
		text := entry.message + formatMetadata(entry.metadata)
		switch i {
		case 0:
			lines = append(lines, "Error: "+text)
		case 1:
			lines = append(lines, "", "  Caused by:", "    → "+text)
		default:
			lines = append(lines, "    → "+text)
		}
	}
	return strings.Join(lines, "\n")
}

func formatMetadata(md map[string]any) string {
	if len(md) == 0 {
		return ""
	}
	parts := make([]string, 0, len(md))
	for _, key := range slices.Sorted(maps.Keys(md)) {
		parts = append(parts, fmt.Sprintf("%s=%v", key, md[key]))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
