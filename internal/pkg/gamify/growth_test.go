package gamify

import (
	"testing"
	"time"

	"Hypeboard/internal/model"

	"github.com/stretchr/testify/require"
)

func snapAt(recordedAt time.Time, followers int) *model.StatsSnapshot {
	return &model.StatsSnapshot{Followers: followers, RecordedAt: recordedAt}
}

func TestComputeGrowth(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		history   []*model.StatsSnapshot
		followers int
		want      GrowthDeltas
	}{
		{
			name:      "empty history",
			history:   nil,
			followers: 500,
			want:      GrowthDeltas{},
		},
		{
			name: "baselines per window",
			history: []*model.StatsSnapshot{
				snapAt(now.Add(-10*24*time.Hour), 100),
				snapAt(now.Add(-2*24*time.Hour), 400),
				snapAt(now, 500),
			},
			followers: 500,
			// 日基准 = 400（t-2d 在 t-24h 之前最近），周基准 = 100，月退化为最早一条
			want: GrowthDeltas{Daily: 100, Weekly: 400, Monthly: 400},
		},
		{
			name: "short history falls back to earliest",
			history: []*model.StatsSnapshot{
				snapAt(now.Add(-2*time.Hour), 900),
			},
			followers: 1000,
			want:      GrowthDeltas{Daily: 100, Weekly: 100, Monthly: 100},
		},
		{
			name: "regression yields negative deltas",
			history: []*model.StatsSnapshot{
				snapAt(now.Add(-8*24*time.Hour), 2000),
				snapAt(now.Add(-30*time.Hour), 1500),
			},
			followers: 1200,
			// 周基准 = 2000（t-8d 在 t-7d 边界之前），t-30h 那条还在窗口内
			want: GrowthDeltas{Daily: -300, Weekly: -800, Monthly: -800},
		},
		{
			name: "tie at same instant resolves to last inserted",
			history: []*model.StatsSnapshot{
				snapAt(now.Add(-48*time.Hour), 100),
				snapAt(now.Add(-48*time.Hour), 150),
			},
			followers: 200,
			want:      GrowthDeltas{Daily: 50, Weekly: 100, Monthly: 100},
		},
		{
			name: "snapshot exactly on boundary counts as baseline",
			history: []*model.StatsSnapshot{
				snapAt(now.Add(-24*time.Hour), 300),
			},
			followers: 350,
			want:      GrowthDeltas{Daily: 50, Weekly: 50, Monthly: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeGrowth(tt.history, now, tt.followers)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestComputeGrowthIsPure(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	history := []*model.StatsSnapshot{
		snapAt(now.Add(-5*24*time.Hour), 100),
		snapAt(now.Add(-1*time.Hour), 180),
	}

	first := ComputeGrowth(history, now, 200)
	second := ComputeGrowth(history, now, 200)
	require.Equal(t, first, second)
	require.Equal(t, 100, history[0].Followers, "history must not be mutated")
}
