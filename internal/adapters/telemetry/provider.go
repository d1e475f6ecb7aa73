package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/hearth/internal/core/ports"
)

// Setup installs a global tracer provider that reports spans through logger.
// The returned function flushes and uninstalls it.
func Setup(logger ports.Logger) func(context.Context) error {
	previous := otel.GetTracerProvider()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewLogBridge(logger)))
	otel.SetTracerProvider(tp)

	return func(ctx context.Context) error {
		err := tp.Shutdown(ctx)
		otel.SetTracerProvider(previous)
		return err
	}
}
