// Package telemetry provides OpenTelemetry instrumentation for Honeycomb.
package telemetry

import (
	"context"
	"errors"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "goblinking"
	serviceVersion = "0.1.0"

	honeycombEndpoint = "https://api.honeycomb.io"
)

// ErrNoAPIKey is returned by Setup when no Honeycomb key is configured.
var ErrNoAPIKey = errors.New("no Honeycomb API key configured")

// Honeycomb identifies where rolls are exported.
type Honeycomb struct {
	APIKey  string
	Dataset string // Defaults to the service name
}

// headers returns the OTLP headers Honeycomb expects.
func (h Honeycomb) headers() map[string]string {
	dataset := h.Dataset
	if dataset == "" {
		dataset = serviceName
	}
	return map[string]string{
		"x-honeycomb-team":    h.APIKey,
		"x-honeycomb-dataset": dataset,
	}
}

// Setup exports goki spans to Honeycomb and registers the global tracer
// provider. Without an API key nothing is exported and ErrNoAPIKey is
// returned; Tracer then hands out no-op tracers.
//
// Returns a shutdown function that flushes pending spans.
func Setup(ctx context.Context, hc Honeycomb) (shutdown func(context.Context) error, err error) {
	if hc.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(honeycombEndpoint),
		otlptracehttp.WithHeaders(hc.headers()),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx, resource.WithAttributes(serviceAttributes()...))
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

// serviceAttributes describes this process on every exported span.
func serviceAttributes() []attribute.KeyValue {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return []attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("host.name", hostname),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("process.runtime.name", "go"),
		attribute.String("process.runtime.version", runtime.Version()),
	}
}

// Tracer returns the tracer for one goki component (e.g., "rando", "app").
func Tracer(component string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + component)
}

// NoopTracer returns a tracer that records nothing, for samplers built
// without telemetry.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}
