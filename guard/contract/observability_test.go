//go:build unit

package contract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestInitMetricsIsIdempotent(t *testing.T) {
	t.Cleanup(ResetMetrics)

	meter := noop.NewMeterProvider().Meter("test")

	require.NoError(t, InitMetrics(meter))
	first := currentCounter()
	require.NotNil(t, first)

	// A second initialization keeps the existing instrument.
	require.NoError(t, InitMetrics(meter))
	assert.Equal(t, first, currentCounter())
}

func TestViolationCountsWithMetricsInitialized(t *testing.T) {
	t.Cleanup(ResetMetrics)

	require.NoError(t, InitMetrics(noop.NewMeterProvider().Meter("test")))

	// The noop counter accepts the add without error; this exercises the
	// metrics path end to end.
	err := Check(context.Background(), false, "counted")
	require.Error(t, err)
}

func TestViolationSkipsCounterWhenUninitialized(t *testing.T) {
	ResetMetrics()

	assert.NotPanics(t, func() {
		_ = Check(context.Background(), false, "uncounted")
	})
}
