// Package tracing installs the OpenTelemetry tracer provider shared by the
// backend HTTP client and the in-process event bus.
package tracing

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InstrumentationName names the tracer handed out by Setup.
const InstrumentationName = "github.com/nfrund/resumio"

// Config holds configuration for OpenTelemetry tracing.
type Config struct {
	Enabled        bool   // Whether spans are exported
	ServiceName    string // Service name for traces
	ServiceVersion string // Reported as service.version
	ZipkinURL      string // Zipkin collector endpoint
}

// DefaultConfig returns tracing disabled with local Zipkin defaults.
func DefaultConfig() Config {
	return Config{
		ServiceName:    "resumio",
		ServiceVersion: "dev",
		ZipkinURL:      "http://localhost:9411/api/v2/spans",
	}
}

// Setup returns a tracer and a shutdown function. When tracing is disabled the
// tracer is a no-op and the global provider is left untouched. When enabled,
// the provider becomes the global one so otelhttp picks it up.
func Setup(ctx context.Context, cfg Config) (trace.Tracer, func(context.Context), error) {
	if !cfg.Enabled {
		return noop.NewTracerProvider().Tracer(InstrumentationName), func(context.Context) {}, nil
	}

	exporter, err := zipkin.New(cfg.ZipkinURL)
	if err != nil {
		return nil, nil, fmt.Errorf("tracing: creating zipkin exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			semconv.ServiceVersionKey.String(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("tracing: building resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	shutdown := func(ctx context.Context) {
		if err := tp.Shutdown(ctx); err != nil {
			slog.Error("Failed to shut down tracer provider", "error", err)
		}
	}
	return tp.Tracer(InstrumentationName), shutdown, nil
}
