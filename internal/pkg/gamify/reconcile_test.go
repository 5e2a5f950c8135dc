package gamify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewlyQualified(t *testing.T) {
	tests := []struct {
		name       string
		qualifying []string
		unlocked   []string
		want       []string
	}{
		{
			name:       "new ids only",
			qualifying: []string{"a", "b", "c"},
			unlocked:   []string{"a"},
			want:       []string{"b", "c"},
		},
		{
			name:       "rerun after persisting yields nothing",
			qualifying: []string{"a", "b", "c"},
			unlocked:   []string{"a", "b", "c"},
			want:       []string{},
		},
		{
			name:       "nothing qualifying",
			qualifying: nil,
			unlocked:   []string{"a"},
			want:       []string{},
		},
		{
			name:       "nothing unlocked yet",
			qualifying: []string{"x", "y"},
			unlocked:   nil,
			want:       []string{"x", "y"},
		},
		{
			name:       "unlocked superset never produces revokes",
			qualifying: []string{"a"},
			unlocked:   []string{"a", "b", "c"},
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewlyQualified(tt.qualifying, tt.unlocked))
		})
	}
}
