package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"Hypeboard/internal/api/config"
)

func TestCeilMinutes(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want int
	}{
		{name: "zero", d: 0, want: 0},
		{name: "negative", d: -time.Minute, want: 0},
		{name: "under a minute rounds up", d: 30 * time.Second, want: 1},
		{name: "exact minute", d: time.Minute, want: 1},
		{name: "just over a minute", d: time.Minute + time.Second, want: 2},
		{name: "exact hour", d: time.Hour, want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ceilMinutes(tt.d))
		})
	}
}

// 冷却没走完时剩余分钟向上取整，不能出现 canRefresh=false 但剩余 0 分钟
func TestRefreshStatusRemainingMinutesCeiled(t *testing.T) {
	config.Cfg = &config.Config{Refresh: config.RefreshConfig{CooldownMinutes: 60}}

	repo := newFakeSettingRepo()
	settingSvc := NewSettingService(repo)
	ctx := context.Background()

	// 还剩约 30 秒冷却
	require.NoError(t, settingSvc.SetLastAutoRefresh(ctx, time.Now().Add(-59*time.Minute-30*time.Second)))

	svc := NewRefreshService(nil, nil, nil, nil, settingSvc, nil, nil)
	status, err := svc.Status(ctx)
	require.NoError(t, err)

	require.False(t, status.CanRefresh)
	require.Equal(t, 1, status.RemainingMinutes)
	require.NotNil(t, status.LastRefresh)
}

func TestRefreshStatusReadyAfterCooldown(t *testing.T) {
	config.Cfg = &config.Config{Refresh: config.RefreshConfig{CooldownMinutes: 60}}

	repo := newFakeSettingRepo()
	settingSvc := NewSettingService(repo)
	ctx := context.Background()

	require.NoError(t, settingSvc.SetLastAutoRefresh(ctx, time.Now().Add(-2*time.Hour)))

	svc := NewRefreshService(nil, nil, nil, nil, settingSvc, nil, nil)
	status, err := svc.Status(ctx)
	require.NoError(t, err)

	require.True(t, status.CanRefresh)
	require.Equal(t, 0, status.RemainingMinutes)
}
