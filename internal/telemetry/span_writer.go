package telemetry

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// SpanWriter implements sdktrace.SpanExporter and writes spans to w as
// indented JSON.
type SpanWriter struct {
	mu sync.Mutex
	w  io.Writer
}

var _ sdktrace.SpanExporter = (*SpanWriter)(nil)

// NewSpanWriter returns a SpanWriter writing to w.
func NewSpanWriter(w io.Writer) *SpanWriter {
	return &SpanWriter{w: w}
}

// ExportSpans implements the sdktrace.SpanExporter interface for SpanWriter.
func (e *SpanWriter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, span := range spans {
		attrs := make(map[string]any, len(span.Attributes()))
		for _, kv := range span.Attributes() {
			attrs[string(kv.Key)] = kv.Value.AsInterface()
		}
		m := map[string]any{
			"name":       span.Name(),
			"trace_id":   span.SpanContext().TraceID().String(),
			"span_id":    span.SpanContext().SpanID().String(),
			"parent_id":  span.Parent().SpanID().String(),
			"start":      span.StartTime().Format(time.RFC3339Nano),
			"end":        span.EndTime().Format(time.RFC3339Nano),
			"attributes": attrs,
			"status":     span.Status().Code.String(),
		}
		b, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return err
		}
		if _, err := e.w.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// Shutdown implements the sdktrace.SpanExporter interface for SpanWriter.
func (e *SpanWriter) Shutdown(_ context.Context) error { return nil }
