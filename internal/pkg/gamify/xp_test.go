package gamify

import (
	"testing"

	"Hypeboard/internal/model"

	"github.com/stretchr/testify/require"
)

func TestCalculateXP(t *testing.T) {
	tests := []struct {
		name        string
		followers   int
		unlockedIDs []string
		want        int
	}{
		{name: "no achievements", followers: 1234, unlockedIDs: nil, want: 1234},
		{name: "single achievement", followers: 100, unlockedIDs: []string{"followers_100"}, want: 600},
		{name: "multiple achievements", followers: 1000, unlockedIDs: []string{"followers_100", "followers_500", "followers_1k"}, want: 1000 + 500 + 1000 + 2000},
		{name: "unknown ids contribute nothing", followers: 50, unlockedIDs: []string{"followers_999", "does_not_exist"}, want: 50},
		{name: "mixed known and unknown", followers: 0, unlockedIDs: []string{"likes_10k", "bogus"}, want: 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &model.Participant{Followers: tt.followers}
			require.Equal(t, tt.want, CalculateXP(p, tt.unlockedIDs))
		})
	}
}

func TestCalculateXPLinear(t *testing.T) {
	p := &model.Participant{Followers: 777}

	idsA := []string{"followers_100", "likes_10k"}
	idsB := []string{"videos_10"}

	union := append(append([]string{}, idsA...), idsB...)

	got := CalculateXP(p, union)
	want := p.Followers + (CalculateXP(p, idsA) - p.Followers) + (CalculateXP(p, idsB) - p.Followers)
	require.Equal(t, want, got)
}
