package dto

type RecordSnapshotDTO struct {
	ParticipantID uint64 `json:"participantId" validate:"required"`
	Followers     int    `json:"followers" validate:"gte=0"`
	Likes         int    `json:"likes" validate:"gte=0"`
	Videos        int    `json:"videos" validate:"gte=0"`
}
