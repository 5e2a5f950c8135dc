package model

import "time"

const (
	MilestoneTypeFollower    = "follower"
	MilestoneTypeAchievement = "achievement"
	MilestoneTypeRank        = "rank"
)

type Milestone struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	ParticipantID uint64    `gorm:"not null;uniqueIndex:idx_participant_type_value" json:"participantId"`
	Type          string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_participant_type_value" json:"type"`
	Value         int       `gorm:"not null;uniqueIndex:idx_participant_type_value" json:"value"`
	Label         string    `gorm:"type:varchar(100);not null" json:"label"`
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`

	Participant *Participant `gorm:"foreignKey:ParticipantID;references:ID" json:"participant,omitempty"`
}

func (Milestone) TableName() string {
	return "milestones"
}
