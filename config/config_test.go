package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("NOTIFY_TO", " lead@example.org, ,ops@example.org")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.AnomalyMonths)
	assert.Equal(t, 3, cfg.AbsenceSpanGapDays)
	assert.Equal(t, []string{"lead@example.org", "ops@example.org"}, cfg.NotifyTo)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"no anomaly months", "ANOMALY_MONTHS", "0"},
		{"negative anomaly months", "ANOMALY_MONTHS", "-2"},
		{"negative span gap", "ABSENCE_SPAN_GAP_DAYS", "-1"},
		{"no range", "MAX_RANGE_DAYS", "0"},
		{"unknown driver", "DB_DRIVER", "postgres"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "secret")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadAllowsZeroSpanGap(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ABSENCE_SPAN_GAP_DAYS", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.AbsenceSpanGapDays)
}
