package gamify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetRank(t *testing.T) {
	tests := []struct {
		name string
		xp   int
		want string
	}{
		{name: "zero xp is iron", xp: 0, want: "iron"},
		{name: "just below bronze", xp: 999, want: "iron"},
		{name: "bronze boundary", xp: 1000, want: "bronze"},
		{name: "silver boundary", xp: 5000, want: "silver"},
		{name: "gold", xp: 20000, want: "gold"},
		{name: "platinum", xp: 35000, want: "platinum"},
		{name: "diamond", xp: 100000, want: "diamond"},
		{name: "goat boundary", xp: 150000, want: "goat"},
		{name: "far above goat", xp: 9000000, want: "goat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetRank(tt.xp)
			require.Equal(t, tt.want, got.ID)
			require.LessOrEqual(t, got.MinXP, tt.xp)
		})
	}
}

func TestGetRankMonotonic(t *testing.T) {
	prevMin := -1
	for xp := 0; xp <= 200000; xp += 250 {
		r := GetRank(xp)
		require.GreaterOrEqual(t, r.MinXP, prevMin, "xp=%d", xp)
		prevMin = r.MinXP
	}
}

func TestGetNextRank(t *testing.T) {
	tests := []struct {
		name         string
		xp           int
		wantNil      bool
		wantNext     string
		wantXPNeeded int
	}{
		{name: "iron looking at bronze", xp: 0, wantNext: "bronze", wantXPNeeded: 1000},
		{name: "mid iron", xp: 600, wantNext: "bronze", wantXPNeeded: 400},
		{name: "fresh diamond", xp: 75000, wantNext: "goat", wantXPNeeded: 75000},
		{name: "goat has no next", xp: 150000, wantNil: true},
		{name: "beyond goat", xp: 500000, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetNextRank(tt.xp)
			if tt.wantNil {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.Equal(t, tt.wantNext, got.Rank.ID)
			require.Equal(t, tt.wantXPNeeded, got.XPNeeded)
			require.GreaterOrEqual(t, got.Progress, 0.0)
			require.LessOrEqual(t, got.Progress, 100.0)
		})
	}
}

func TestGetNextRankNilOnlyAtTopTier(t *testing.T) {
	for xp := 0; xp <= 200000; xp += 500 {
		next := GetNextRank(xp)
		if GetRank(xp).ID == Ranks[len(Ranks)-1].ID {
			require.Nil(t, next, "xp=%d", xp)
		} else {
			require.NotNil(t, next, "xp=%d", xp)
		}
	}
}

func TestRanksStrictlyIncreasing(t *testing.T) {
	require.Equal(t, 0, Ranks[0].MinXP)
	for i := 1; i < len(Ranks); i++ {
		require.Greater(t, Ranks[i].MinXP, Ranks[i-1].MinXP)
	}
}
