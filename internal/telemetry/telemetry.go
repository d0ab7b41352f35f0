// Package telemetry provides OpenTelemetry tracing exported over OTLP/HTTP.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "minesweeper"
	serviceVersion = "0.2.0"
)

// ShutdownFunc flushes pending spans and releases the exporter.
type ShutdownFunc func(context.Context) error

// BoardInfo describes the configured board. It is attached to every span as
// resource attributes so traces from different board sizes can be told apart.
type BoardInfo struct {
	Width  int
	Height int
	Mines  int
	Seeded bool
	Theme  string
}

func (b BoardInfo) attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("minesweeper.board.width", b.Width),
		attribute.Int("minesweeper.board.height", b.Height),
		attribute.Int("minesweeper.board.mines", b.Mines),
		attribute.Bool("minesweeper.board.seeded", b.Seeded),
		attribute.String("minesweeper.theme", b.Theme),
	}
}

// Setup installs a global tracer provider backed by an OTLP HTTP exporter.
// The exporter reads the standard OTEL_EXPORTER_OTLP_* environment variables.
// Until Setup succeeds, Tracer hands out no-op tracers.
func Setup(ctx context.Context, board BoardInfo) (ShutdownFunc, error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx, board)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// newResource builds the resource by hand instead of resource.Default() to
// avoid schema URL conflicts.
func newResource(ctx context.Context, board BoardInfo) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("host.name", hostname()),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("process.runtime.name", "go"),
		attribute.String("process.runtime.version", runtime.Version()),
	}
	return resource.New(ctx, resource.WithAttributes(append(attrs, board.attributes()...)...))
}

// Tracer returns a tracer named after the calling component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}
