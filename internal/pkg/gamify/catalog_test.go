package gamify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindAchievement(t *testing.T) {
	def, ok := FindAchievement("followers_1k")
	require.True(t, ok)
	require.Equal(t, "Thousand Club", def.Name)
	require.Equal(t, CategoryFollowers, def.Category)
	require.Equal(t, 1000, def.Threshold)

	_, ok = FindAchievement("no_such_achievement")
	require.False(t, ok)
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := make(map[string]bool, len(Achievements))
	for _, a := range Achievements {
		require.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
	}
}

func TestAchievementOrdinal(t *testing.T) {
	ordinals := make(map[int]string, len(Achievements))
	for _, a := range Achievements {
		ord := AchievementOrdinal(a.ID)
		require.Greater(t, ord, 0, "id %s", a.ID)
		prev, dup := ordinals[ord]
		require.False(t, dup, "ordinal %d shared by %s and %s", ord, prev, a.ID)
		ordinals[ord] = a.ID
	}

	require.Equal(t, 0, AchievementOrdinal("no_such_achievement"))
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryFollowers, "followers"},
		{CategoryLikes, "likes"},
		{CategoryVideos, "videos"},
		{CategoryViews, "views"},
		{CategoryRatio, "ratio"},
		{CategoryGrowthDaily, "growth_daily"},
		{CategoryGrowthWeekly, "growth_weekly"},
		{CategoryPosition, "position"},
		{Category(255), "unknown"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.category.String())
	}
}
