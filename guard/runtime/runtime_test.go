//go:build unit

package runtime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	captured error
	tags     map[string]string
}

func (r *recordingReporter) CaptureException(_ context.Context, err error, tags map[string]string) {
	r.captured = err
	r.tags = tags
}

func TestErrorReporterRoundTrip(t *testing.T) {
	reporter := &recordingReporter{}

	SetErrorReporter(reporter)
	t.Cleanup(func() { SetErrorReporter(nil) })

	got := GetErrorReporter()
	require.NotNil(t, got)

	got.CaptureException(context.Background(), assert.AnError, map[string]string{"contract": "Expects"})
	assert.Equal(t, assert.AnError, reporter.captured)
	assert.Equal(t, "Expects", reporter.tags["contract"])
}

func TestProductionModeControlsStacks(t *testing.T) {
	t.Cleanup(func() { SetProductionMode(false) })

	SetProductionMode(true)
	assert.True(t, IsProductionMode())
	assert.False(t, IncludeStackTraces())

	SetProductionMode(false)
	assert.False(t, IsProductionMode())
}

func TestIncludeStackTracesHonorsEnv(t *testing.T) {
	SetProductionMode(false)

	t.Setenv("ENV", "production")
	assert.False(t, IncludeStackTraces())

	t.Setenv("ENV", "")
	t.Setenv("GO_ENV", "Production")
	assert.False(t, IncludeStackTraces())

	t.Setenv("GO_ENV", "development")
	assert.True(t, IncludeStackTraces())
}
