package model

import "time"

// ParticipantAchievement 成就解锁记录，只增不减
type ParticipantAchievement struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	ParticipantID uint64    `gorm:"not null;uniqueIndex:idx_participant_achievement" json:"participantId"`
	AchievementID string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_participant_achievement" json:"achievementId"`
	UnlockedAt    time.Time `gorm:"not null" json:"unlockedAt"`
}

func (ParticipantAchievement) TableName() string {
	return "participant_achievements"
}
