package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		level         string
		expectedLevel zapcore.Level
		expectedError bool
	}{
		{name: "debug", level: "debug", expectedLevel: zapcore.DebugLevel},
		{name: "info", level: "info", expectedLevel: zapcore.InfoLevel},
		{name: "warn", level: "warn", expectedLevel: zapcore.WarnLevel},
		{name: "unknown level", level: "verbose", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			previous := Logger
			t.Cleanup(func() { Logger = previous })

			err := Init(tt.level)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Same(t, previous, Logger)
				return
			}
			assert.NoError(t, err)
			assert.True(t, Logger.Core().Enabled(tt.expectedLevel))
			assert.False(t, Logger.Core().Enabled(tt.expectedLevel-1))
		})
	}
}

func TestSyncWithoutInit(t *testing.T) {
	previous := Logger
	t.Cleanup(func() { Logger = previous })
	Logger = zap.NewNop()

	assert.NotPanics(t, Sync)
}
