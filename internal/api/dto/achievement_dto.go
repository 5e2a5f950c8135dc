package dto

import "time"

// AchievementUnlockerDTO 全局视图里某个成就的解锁者
type AchievementUnlockerDTO struct {
	ParticipantID uint64    `json:"participantId"`
	UnlockedAt    time.Time `json:"unlockedAt"`
}

// AchievementStatusDTO 成就定义加解锁状态。
// 查单人时填 UnlockedAt，查全局时填 UnlockedBy。
type AchievementStatusDTO struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Icon        string                    `json:"icon"`
	Category    string                    `json:"category"`
	Threshold   int                       `json:"threshold"`
	XPReward    int                       `json:"xpReward"`
	Unlocked    bool                      `json:"unlocked"`
	UnlockedAt  *time.Time                `json:"unlockedAt,omitempty"`
	UnlockedBy  []*AchievementUnlockerDTO `json:"unlockedBy,omitempty"`
}
