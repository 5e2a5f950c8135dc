package gamify

// RankDefinition 段位定义，MinXP 严格递增
type RankDefinition struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	MinXP int    `json:"minXP"`
	Color string `json:"color"`
}

// Ranks 按 MinXP 升序排列，iron 是保底段位
var Ranks = []RankDefinition{
	{ID: "iron", Name: "Iron", MinXP: 0, Color: "#71717a"},
	{ID: "bronze", Name: "Bronze", MinXP: 1000, Color: "#cd7f32"},
	{ID: "silver", Name: "Silver", MinXP: 5000, Color: "#c0c0c0"},
	{ID: "gold", Name: "Gold", MinXP: 15000, Color: "#ffd700"},
	{ID: "platinum", Name: "Platinum", MinXP: 35000, Color: "#06b6d4"},
	{ID: "diamond", Name: "Diamond", MinXP: 75000, Color: "#3b82f6"},
	{ID: "goat", Name: "GOAT", MinXP: 150000, Color: "#a855f7"},
}

// NextRankInfo 距离下一段位的进度信息
type NextRankInfo struct {
	Rank     RankDefinition `json:"rank"`
	XPNeeded int            `json:"xpNeeded"`
	Progress float64        `json:"progress"`
}

// GetRank 返回 xp 能达到的最高段位，永不失败
func GetRank(xp int) RankDefinition {
	for i := len(Ranks) - 1; i >= 0; i-- {
		if xp >= Ranks[i].MinXP {
			return Ranks[i]
		}
	}
	return Ranks[0]
}

// GetNextRank 已达最高段位时返回 nil
func GetNextRank(xp int) *NextRankInfo {
	current := GetRank(xp)

	currentIndex := 0
	for i, r := range Ranks {
		if r.ID == current.ID {
			currentIndex = i
			break
		}
	}

	if currentIndex >= len(Ranks)-1 {
		return nil
	}

	next := Ranks[currentIndex+1]
	progress := float64(xp-current.MinXP) / float64(next.MinXP-current.MinXP) * 100
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	return &NextRankInfo{
		Rank:     next,
		XPNeeded: next.MinXP - xp,
		Progress: progress,
	}
}
