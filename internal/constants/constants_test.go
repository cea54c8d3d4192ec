package constants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoutingDefaults(t *testing.T) {
	t.Run("ResultCacheTTL matches the documented 300,000 ms window", func(t *testing.T) {
		assert.Equal(t, 5*time.Minute, ResultCacheTTL)
		assert.Equal(t, int64(300_000), ResultCacheTTL.Milliseconds())
	})

	t.Run("DefaultMaxWorkloadHours is a standard work week", func(t *testing.T) {
		assert.InDelta(t, 40.0, DefaultMaxWorkloadHours, 0.0001)
	})

	t.Run("SlowCallTarget keeps recommendations interactive", func(t *testing.T) {
		assert.Equal(t, 200*time.Millisecond, SlowCallTarget)
		assert.Less(t, SlowCallTarget, time.Second, "recommendations should stay sub-second")
	})

	t.Run("MaxAlternatives caps the runner-up list", func(t *testing.T) {
		assert.Equal(t, 3, MaxAlternatives)
	})
}

func TestWorkdayConstants(t *testing.T) {
	t.Run("HoursPerWorkday is a standard working day", func(t *testing.T) {
		assert.InDelta(t, 8.0, HoursPerWorkday, 0.0001)
	})
}

func TestFileNameConstants(t *testing.T) {
	tests := []struct {
		name     string
		constant string
		expected string
	}{
		{"ConfigFileName", ConfigFileName, "config.yaml"},
		{"SpecsFileName", SpecsFileName, "specs.yaml"},
		{"PolarisHome", PolarisHome, ".polaris"},
		{"LogsDir", LogsDir, "logs"},
		{"CLILogFileName", CLILogFileName, "polaris.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.constant)
		})
	}
}

func TestLogRotationConstants(t *testing.T) {
	assert.Equal(t, 10, LogMaxSizeMB)
	assert.Equal(t, 3, LogMaxBackups)
	assert.Equal(t, 30, LogMaxAgeDays)
}
