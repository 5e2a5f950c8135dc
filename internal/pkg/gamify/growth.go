package gamify

import (
	"time"

	"Hypeboard/internal/model"
)

// GrowthDeltas 最近 24h/7d/30d 的粉丝增量，按需从快照历史推导，不落库
type GrowthDeltas struct {
	Daily   int `json:"daily"`
	Weekly  int `json:"weekly"`
	Monthly int `json:"monthly"`
}

// ComputeGrowth 从升序快照历史计算各窗口增量。
// 基准取窗口边界之前最近的一条快照；历史不足时退化为最早一条，
// 宁可低估增长也不高估。历史为空时全部为 0。
func ComputeGrowth(history []*model.StatsSnapshot, now time.Time, currentFollowers int) GrowthDeltas {
	if len(history) == 0 {
		return GrowthDeltas{}
	}

	return GrowthDeltas{
		Daily:   currentFollowers - baselineAt(history, now.Add(-24*time.Hour)),
		Weekly:  currentFollowers - baselineAt(history, now.Add(-7*24*time.Hour)),
		Monthly: currentFollowers - baselineAt(history, now.Add(-30*24*time.Hour)),
	}
}

// baselineAt 边界之前最近一条的粉丝数；同一时刻多条时后出现的覆盖先出现的
func baselineAt(history []*model.StatsSnapshot, boundary time.Time) int {
	base := history[0].Followers

	for _, s := range history {
		if s.RecordedAt.After(boundary) {
			break
		}
		base = s.Followers
	}

	return base
}
