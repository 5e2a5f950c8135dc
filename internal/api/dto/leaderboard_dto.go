package dto

import (
	"time"

	"Hypeboard/internal/pkg/gamify"
)

// LeaderboardEntryDTO 按 XP 排序的榜单条目，附带全部衍生状态
type LeaderboardEntryDTO struct {
	ID                   uint64               `json:"id"`
	Name                 string               `json:"name"`
	Username             string               `json:"username"`
	Avatar               *string              `json:"avatar"`
	Followers            int                  `json:"followers"`
	Likes                int                  `json:"likes"`
	Videos               int                  `json:"videos"`
	MaxVideoViews        int                  `json:"maxVideoViews"`
	UpdatedAt            time.Time            `json:"updatedAt"`
	XP                   int                  `json:"xp"`
	Rank                 string               `json:"rank"`
	RankName             string               `json:"rankName"`
	RankColor            string               `json:"rankColor"`
	NextRank             *gamify.NextRankInfo `json:"nextRank"`
	Gains                gamify.GrowthDeltas  `json:"gains"`
	UnlockedAchievements []string             `json:"unlockedAchievements"`
	Position             int                  `json:"position"`
}

type LeaderboardDTO struct {
	Goal               int                    `json:"goal"`
	ChallengeStartDate string                 `json:"challengeStartDate"`
	Entries            []*LeaderboardEntryDTO `json:"entries"`
}
