package telemetry

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOTLPRecorder_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	r, err := NewOTLPRecorder(context.Background())
	require.NoError(t, err)
	assert.Nil(t, r)

	// A nil recorder is a no-op.
	r.RecordRebuild(context.Background(), Rebuild{})
	assert.NoError(t, r.Shutdown(context.Background()))
}

func TestRecorder_RecordRebuild(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	r := NewRecorder(exp)
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	r.RecordRebuild(context.Background(), Rebuild{
		Value:     10,
		Formatted: "10",
		Tracks:    2,
		Inserted:  1,
		Animated:  true,
		Start:     start,
		End:       start.Add(time.Millisecond),
	})

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	s := spans[0]
	assert.Equal(t, SpanRebuild, s.Name)
	assert.Equal(t, start, s.StartTime)
	assert.Equal(t, start.Add(time.Millisecond), s.EndTime)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range s.Attributes {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "10", attrs["odometer.formatted"].AsString())
	assert.Equal(t, int64(2), attrs["odometer.tracks"].AsInt64())
	assert.Equal(t, int64(1), attrs["odometer.edit.inserted"].AsInt64())
	assert.True(t, attrs["odometer.animated"].AsBool())

	require.NoError(t, r.Shutdown(context.Background()))
}

func TestRecorder_EndNeverBeforeStart(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	r := NewRecorder(exp)
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	r.RecordRebuild(context.Background(), Rebuild{Start: start})

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, start, spans[0].EndTime)
}
