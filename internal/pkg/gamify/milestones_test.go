package gamify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func milestoneCounts(ms []FollowerMilestone) []int {
	counts := make([]int, 0, len(ms))
	for _, m := range ms {
		counts = append(counts, m.Count)
	}
	return counts
}

func TestCrossedMilestones(t *testing.T) {
	tests := []struct {
		name string
		prev int
		curr int
		want []int
	}{
		{name: "crossing one", prev: 80, curr: 120, want: []int{100}},
		{name: "crossing several at once", prev: 400, curr: 2600, want: []int{500, 1000, 2500}},
		{name: "no movement", prev: 150, curr: 150, want: []int{}},
		{name: "regression crosses nothing", prev: 600, curr: 400, want: []int{}},
		{name: "landing exactly on a milestone", prev: 99, curr: 100, want: []int{100}},
		{name: "starting exactly on a milestone", prev: 100, curr: 499, want: []int{}},
		{name: "from zero to the top", prev: 0, curr: 10000, want: []int{100, 500, 1000, 2500, 5000, 7500, 10000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CrossedMilestones(tt.prev, tt.curr)
			require.Equal(t, tt.want, milestoneCounts(got))
		})
	}
}

func TestReachedMilestones(t *testing.T) {
	require.Empty(t, ReachedMilestones(50))
	require.Equal(t, []int{100, 500, 1000}, milestoneCounts(ReachedMilestones(1200)))
	require.Len(t, ReachedMilestones(99999), len(FollowerMilestones))
}
