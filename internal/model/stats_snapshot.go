package model

import "time"

// StatsSnapshot 每个参赛者每天最多一条，同日刷新原地覆盖
type StatsSnapshot struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	ParticipantID uint64    `gorm:"not null;uniqueIndex:idx_participant_date" json:"participantId"`
	SnapshotDate  time.Time `gorm:"type:date;not null;uniqueIndex:idx_participant_date" json:"snapshotDate"`
	Followers     int       `gorm:"not null;default:0" json:"followers"`
	Likes         int       `gorm:"not null;default:0" json:"likes"`
	Videos        int       `gorm:"not null;default:0" json:"videos"`
	RecordedAt    time.Time `gorm:"not null;index" json:"recordedAt"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (StatsSnapshot) TableName() string {
	return "stats_snapshots"
}
