package dto

import "Hypeboard/internal/model"

type RegisterParticipantDTO struct {
	Name          string  `json:"name" validate:"required,max=50"`
	Username      string  `json:"username" validate:"required,max=50"`
	Avatar        *string `json:"avatar,omitempty"`
	Followers     int     `json:"followers" validate:"gte=0"`
	Likes         int     `json:"likes" validate:"gte=0"`
	Videos        int     `json:"videos" validate:"gte=0"`
	MaxVideoViews int     `json:"maxVideoViews" validate:"gte=0"`
}

// UpdateStatsDTO 手动改数据，缺省字段不更新
type UpdateStatsDTO struct {
	Followers     *int    `json:"followers,omitempty" validate:"omitempty,gte=0"`
	Likes         *int    `json:"likes,omitempty" validate:"omitempty,gte=0"`
	Videos        *int    `json:"videos,omitempty" validate:"omitempty,gte=0"`
	MaxVideoViews *int    `json:"maxVideoViews,omitempty" validate:"omitempty,gte=0"`
	Avatar        *string `json:"avatar,omitempty"`
}

// ParticipantOverviewDTO 挑战概览：目标、开始日期、粉丝数排序的名单
type ParticipantOverviewDTO struct {
	Goal               int                  `json:"goal"`
	ChallengeStartDate string               `json:"challengeStartDate"`
	Participants       []*model.Participant `json:"participants"`
}
