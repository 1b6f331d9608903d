package otel

import (
	"airline/config"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecordingOtel() (Otel, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	return &otelImpl{tracerProvider: provider, shutdown: provider.Shutdown}, recorder
}

func TestScope_RecordsAttributesAndErrors(t *testing.T) {
	ot, recorder := newRecordingOtel()

	_, scope := ot.NewScope(context.Background(), "service", "service.Create")
	scope.SetAttributes(map[string]any{
		"seat_number": "12A",
		"attempt":     2,
		"booked":      true,
		"rows":        int64(1),
	})
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("seat already booked"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "service.Create", span.Name())
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "seat already booked", span.Status().Description)
	assert.Contains(t, span.Attributes(), attribute.String("seat_number", "12A"))
	assert.Contains(t, span.Attributes(), attribute.Int("attempt", 2))
	assert.Contains(t, span.Attributes(), attribute.Bool("booked", true))
	assert.Contains(t, span.Attributes(), attribute.Int64("rows", 1))
	require.NoError(t, ot.Shutdown(context.Background()))
}

func TestToAttribute_Fallback(t *testing.T) {
	kv := toAttribute("ids", []int{1, 2})

	assert.Equal(t, attribute.String("ids", "[1 2]"), kv)
}

func TestNew_WithoutEndpointIsNoop(t *testing.T) {
	cfg := &config.Config{}

	ot := New(cfg)
	_, scope := ot.NewScope(context.Background(), "handler", "handler.Get")
	scope.End()

	assert.NoError(t, ot.Shutdown(context.Background()))
}
