// Package telemetry exports odometer rebuilds as OpenTelemetry spans.
package telemetry

import (
	"context"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// SpanRebuild is the name of the span recorded for every rebuild.
const SpanRebuild = "odometer.rebuild"

// Rebuild describes one reconciliation of the row.
type Rebuild struct {
	Value     float64
	Formatted string
	Tracks    int
	Inserted  int
	Removed   int
	Replaced  int
	Animated  bool
	Start     time.Time
	End       time.Time
}

// Recorder records rebuild spans. A nil *Recorder records nothing.
type Recorder struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPRecorder creates a recorder exporting over OTLP/HTTP if
// OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if endpoint not configured (disabled)
func NewOTLPRecorder(ctx context.Context) (*Recorder, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "odometer"
	}
	return newRecorder(sdktrace.WithBatcher(exporter), serviceName), nil
}

// NewRecorder creates a recorder that hands spans to exporter synchronously.
func NewRecorder(exporter sdktrace.SpanExporter) *Recorder {
	return newRecorder(sdktrace.WithSyncer(exporter), "odometer")
}

func newRecorder(opt sdktrace.TracerProviderOption, serviceName string) *Recorder {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	provider := sdktrace.NewTracerProvider(opt, sdktrace.WithResource(res))
	return &Recorder{
		provider: provider,
		tracer:   provider.Tracer("odometer/spinner"),
	}
}

// RecordRebuild records r as a span with explicit start/end times.
func (r *Recorder) RecordRebuild(ctx context.Context, rb Rebuild) {
	if r == nil {
		return
	}
	_, span := r.tracer.Start(ctx, SpanRebuild, oteltrace.WithTimestamp(rb.Start))
	span.SetAttributes(
		attribute.Float64("odometer.value", rb.Value),
		attribute.String("odometer.formatted", rb.Formatted),
		attribute.Int("odometer.tracks", rb.Tracks),
		attribute.Int("odometer.edit.inserted", rb.Inserted),
		attribute.Int("odometer.edit.removed", rb.Removed),
		attribute.Int("odometer.edit.replaced", rb.Replaced),
		attribute.Bool("odometer.animated", rb.Animated),
	)
	end := rb.End
	if end.Before(rb.Start) {
		end = rb.Start
	}
	span.End(oteltrace.WithTimestamp(end))
}

// Shutdown flushes and closes the exporter
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
