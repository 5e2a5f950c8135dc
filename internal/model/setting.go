package model

import "time"

const (
	SettingKeyGoal               = "goal"
	SettingKeyChallengeStartDate = "challengeStartDate"
	SettingKeyLastAutoRefresh    = "lastAutoRefresh"
)

type Setting struct {
	Key       string    `gorm:"type:varchar(50);primaryKey" json:"key"`
	Value     string    `gorm:"type:varchar(255);not null" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Setting) TableName() string {
	return "settings"
}
