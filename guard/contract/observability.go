package contract

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// SpanEventName is the event name used when recording violations on spans.
const SpanEventName = "contract.violation"

// violationsMetricName counts violations by contract kind.
const violationsMetricName = "contract_violations_total"

var (
	violationCounter metric.Int64Counter
	metricsMu        sync.RWMutex
)

// InitMetrics creates the violations counter on the given meter. Call once
// during application startup after telemetry is initialized. Violations
// raised before initialization skip the counter.
func InitMetrics(meter metric.Meter) error {
	metricsMu.Lock()
	defer metricsMu.Unlock()

	if violationCounter != nil {
		return nil
	}

	counter, err := meter.Int64Counter(
		violationsMetricName,
		metric.WithUnit("1"),
		metric.WithDescription("Total number of contract violations"),
	)
	if err != nil {
		return fmt.Errorf("create violations counter: %w", err)
	}

	violationCounter = counter

	return nil
}

// ResetMetrics clears the violations counter (useful for tests).
func ResetMetrics() {
	metricsMu.Lock()
	defer metricsMu.Unlock()

	violationCounter = nil
}

func currentCounter() metric.Int64Counter {
	metricsMu.RLock()
	defer metricsMu.RUnlock()

	return violationCounter
}

func recordViolationObservability(ctx context.Context, v *Violation, stack []byte) {
	if counter := currentCounter(); counter != nil {
		counter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("contract", v.Contract),
		))
	}

	recordViolationToSpan(ctx, v, stack)
}

func recordViolationToSpan(ctx context.Context, v *Violation, stack []byte) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("contract.name", v.Contract),
		attribute.String("contract.message", v.Message),
	}

	if len(stack) > 0 {
		attrs = append(attrs, attribute.String("contract.stack", string(stack)))
	}

	span.AddEvent(SpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(fmt.Errorf("%w: %s", ErrViolated, v.Message))
	span.SetStatus(codes.Error, v.Contract)
}
