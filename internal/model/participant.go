package model

import (
	"time"
)

type Participant struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(50);not null" json:"name"`
	Username      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_username" json:"username"`
	Avatar        *string   `gorm:"type:varchar(512)" json:"avatar"`
	Followers     int       `gorm:"not null;default:0" json:"followers"`
	Likes         int       `gorm:"not null;default:0" json:"likes"`
	Videos        int       `gorm:"not null;default:0" json:"videos"`
	MaxVideoViews int       `gorm:"not null;default:0;column:max_video_views" json:"maxVideoViews"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Snapshots    []StatsSnapshot          `gorm:"foreignKey:ParticipantID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Achievements []ParticipantAchievement `gorm:"foreignKey:ParticipantID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Milestones   []Milestone              `gorm:"foreignKey:ParticipantID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Participant) TableName() string {
	return "participants"
}
