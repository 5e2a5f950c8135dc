package gamify

import (
	"testing"
	"time"

	"Hypeboard/internal/model"

	"github.com/stretchr/testify/require"
)

var evalNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func activeRoster(n int) []*model.Participant {
	roster := make([]*model.Participant, 0, n)
	for i := 0; i < n; i++ {
		roster = append(roster, &model.Participant{ID: uint64(i + 1), Videos: 5})
	}
	return roster
}

func readyContext(position int) *Context {
	return &Context{
		Position:        position,
		AllParticipants: activeRoster(3),
		ChallengeStart:  evalNow.Add(-72 * time.Hour),
		Now:             evalNow,
	}
}

func TestCheckAchievementsSimpleCategories(t *testing.T) {
	tests := []struct {
		name        string
		participant *model.Participant
		wantHas     []string
		wantMissing []string
	}{
		{
			name:        "fresh participant has nothing",
			participant: &model.Participant{},
			wantMissing: []string{"followers_100", "likes_10k", "videos_10", "views_100k"},
		},
		{
			name:        "follower thresholds",
			participant: &model.Participant{Followers: 1200},
			wantHas:     []string{"followers_100", "followers_500", "followers_1k"},
			wantMissing: []string{"followers_5k"},
		},
		{
			name:        "likes and views",
			participant: &model.Participant{Likes: 150000, MaxVideoViews: 1200000},
			wantHas:     []string{"likes_10k", "likes_100k", "views_100k", "views_1m"},
			wantMissing: []string{"likes_1m", "views_10m"},
		},
		{
			name:        "ratio qualifies with videos",
			participant: &model.Participant{Likes: 5000, Videos: 10},
			wantHas:     []string{"ratio_100", "ratio_500", "videos_10"},
		},
		{
			name:        "ratio never qualifies with zero videos",
			participant: &model.Participant{Likes: 999999, Videos: 0},
			wantMissing: []string{"ratio_100", "ratio_500"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckAchievements(tt.participant, nil)
			for _, id := range tt.wantHas {
				require.Contains(t, got, id)
			}
			for _, id := range tt.wantMissing {
				require.NotContains(t, got, id)
			}
		})
	}
}

func TestCheckAchievementsGrowthCategories(t *testing.T) {
	p := &model.Participant{Followers: 50}

	// 无 gains 上下文时永不达标
	got := CheckAchievements(p, &Context{Now: evalNow})
	require.NotContains(t, got, "growth_daily_100")
	require.NotContains(t, got, "growth_weekly_500")

	got = CheckAchievements(p, &Context{Gains: &GrowthDeltas{Daily: 120, Weekly: 480}, Now: evalNow})
	require.Contains(t, got, "growth_daily_100")
	require.NotContains(t, got, "growth_weekly_500")

	got = CheckAchievements(p, &Context{Gains: &GrowthDeltas{Daily: 20, Weekly: 700}, Now: evalNow})
	require.NotContains(t, got, "growth_daily_100")
	require.Contains(t, got, "growth_weekly_500")
}

func TestCheckAchievementsPositionCategories(t *testing.T) {
	p := &model.Participant{Followers: 20000, Videos: 3}

	tests := []struct {
		name     string
		ctx      *Context
		wantTop1 bool
		wantTop3 bool
	}{
		{name: "first place when ready", ctx: readyContext(1), wantTop1: true, wantTop3: true},
		{name: "third place when ready", ctx: readyContext(3), wantTop3: true},
		{name: "fourth place gets nothing", ctx: readyContext(4)},
		{name: "unknown position gets nothing", ctx: readyContext(0)},
		{name: "nil context", ctx: nil},
		{
			name: "empty roster blocks position awards",
			ctx: &Context{
				Position:       1,
				ChallengeStart: evalNow.Add(-72 * time.Hour),
				Now:            evalNow,
			},
		},
		{
			name: "idle participant in roster blocks position awards",
			ctx: &Context{
				Position: 1,
				AllParticipants: []*model.Participant{
					{ID: 1, Videos: 4},
					{ID: 2, Videos: 0},
				},
				ChallengeStart: evalNow.Add(-72 * time.Hour),
				Now:            evalNow,
			},
		},
		{
			name: "challenge younger than a day blocks position awards",
			ctx: &Context{
				Position:        1,
				AllParticipants: activeRoster(2),
				ChallengeStart:  evalNow.Add(-6 * time.Hour),
				Now:             evalNow,
			},
		},
		{
			name: "missing challenge start blocks position awards",
			ctx: &Context{
				Position:        1,
				AllParticipants: activeRoster(2),
				Now:             evalNow,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckAchievements(p, tt.ctx)
			if tt.wantTop1 {
				require.Contains(t, got, "position_1")
			} else {
				require.NotContains(t, got, "position_1")
			}
			if tt.wantTop3 {
				require.Contains(t, got, "position_top3")
			} else {
				require.NotContains(t, got, "position_top3")
			}
		})
	}
}

func TestCheckAchievementsDeterministic(t *testing.T) {
	p := &model.Participant{Followers: 5200, Likes: 120000, Videos: 12, MaxVideoViews: 200000}
	ctx := readyContext(2)
	ctx.Gains = &GrowthDeltas{Daily: 150, Weekly: 600}

	first := CheckAchievements(p, ctx)
	second := CheckAchievements(p, ctx)
	require.Equal(t, first, second)
	require.NotEmpty(t, first)
}
