package gamify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCooldownRemaining(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	cooldown := time.Hour

	tests := []struct {
		name    string
		lastRun time.Time
		want    time.Duration
	}{
		{name: "never ran", lastRun: time.Time{}, want: 0},
		{name: "cooldown elapsed", lastRun: now.Add(-2 * time.Hour), want: 0},
		{name: "exactly at boundary", lastRun: now.Add(-time.Hour), want: 0},
		{name: "halfway through", lastRun: now.Add(-30 * time.Minute), want: 30 * time.Minute},
		{name: "just ran", lastRun: now, want: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CooldownRemaining(now, tt.lastRun, cooldown))
		})
	}
}
