package telemetry

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/hearth/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*LogBridge)(nil)

// LogBridge is an sdktrace.SpanProcessor that reports finished spans through a
// ports.Logger. It backs the --trace flag.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a LogBridge writing to logger.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart does nothing; spans are reported when they end.
func (b *LogBridge) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and attributes. Failed spans are logged as warnings.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	var attrs []string
	for _, kv := range s.Attributes() {
		attrs = append(attrs, fmt.Sprintf("%s=%s", kv.Key, kv.Value.Emit()))
	}

	line := fmt.Sprintf("trace %s %s", s.Name(), s.EndTime().Sub(s.StartTime()))
	if len(attrs) > 0 {
		line += " " + strings.Join(attrs, " ")
	}

	if s.Status().Code == codes.Error {
		b.logger.Warn(line + ": " + s.Status().Description)
		return
	}
	b.logger.Info(line)
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(context.Context) error { return nil }

// Shutdown does nothing.
func (b *LogBridge) Shutdown(context.Context) error { return nil }
