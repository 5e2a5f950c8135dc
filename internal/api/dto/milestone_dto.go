package dto

import "time"

type RecordMilestoneDTO struct {
	ParticipantID uint64 `json:"participantId" validate:"required"`
	Type          string `json:"type" validate:"required,oneof=follower achievement rank"`
	Value         int    `json:"value" validate:"gte=0"`
	Label         string `json:"label" validate:"required,max=100"`
}

// CheckMilestonesDTO 检查一次粉丝数变化跨过了哪些节点并落库
type CheckMilestonesDTO struct {
	ParticipantID     uint64 `json:"participantId" validate:"required"`
	Followers         int    `json:"followers" validate:"gte=0"`
	PreviousFollowers int    `json:"previousFollowers" validate:"gte=0"`
}

type MilestoneDTO struct {
	ID                  uint64    `json:"id"`
	ParticipantID       uint64    `json:"participantId"`
	ParticipantName     string    `json:"participantName"`
	ParticipantUsername string    `json:"participantUsername"`
	ParticipantAvatar   *string   `json:"participantAvatar"`
	Type                string    `json:"type"`
	Value               int       `json:"value"`
	Label               string    `json:"label"`
	CreatedAt           time.Time `json:"createdAt"`
}
