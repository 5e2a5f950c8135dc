package gamify

// FollowerMilestone 动态播报用的粉丝数节点，与成就目录互相独立
type FollowerMilestone struct {
	Count int    `json:"count"`
	Label string `json:"label"`
}

var FollowerMilestones = []FollowerMilestone{
	{Count: 100, Label: "100 followers"},
	{Count: 500, Label: "500 followers"},
	{Count: 1000, Label: "1K followers"},
	{Count: 2500, Label: "2.5K followers"},
	{Count: 5000, Label: "5K followers"},
	{Count: 7500, Label: "7.5K followers"},
	{Count: 10000, Label: "10K followers"},
}

// CrossedMilestones 本次刷新跨过的节点：prev < count <= curr
func CrossedMilestones(previousFollowers, currentFollowers int) []FollowerMilestone {
	crossed := make([]FollowerMilestone, 0)

	for _, m := range FollowerMilestones {
		if previousFollowers < m.Count && currentFollowers >= m.Count {
			crossed = append(crossed, m)
		}
	}

	return crossed
}

// ReachedMilestones 当前粉丝数已达到的全部节点
func ReachedMilestones(followers int) []FollowerMilestone {
	reached := make([]FollowerMilestone, 0)

	for _, m := range FollowerMilestones {
		if followers >= m.Count {
			reached = append(reached, m)
		}
	}

	return reached
}
