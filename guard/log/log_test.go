//go:build unit

package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "unknown", Level(42).String())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{input: "debug", want: LevelDebug},
		{input: "INFO", want: LevelInfo},
		{input: "warn", want: LevelWarn},
		{input: "warning", want: LevelWarn},
		{input: "Error", want: LevelError},
		{input: "verbose", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(t, Field{Key: "n", Value: 7}, Int("n", 7))
	assert.Equal(t, Field{Key: "ok", Value: true}, Bool("ok", true))
	assert.Equal(t, "error", Err(assert.AnError).Key)
	assert.Equal(t, Field{Key: "any", Value: 1.5}, Any("any", 1.5))
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNop()

	// Must be safe to call with nil context and never report enabled levels.
	logger.Log(context.Background(), LevelError, "dropped")
	assert.False(t, logger.Enabled(LevelError))
	assert.Same(t, logger, logger.With(String("k", "v")))
}
