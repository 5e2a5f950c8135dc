package repository

import (
	"context"
	"time"

	"Hypeboard/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepo interface {
	GetUnlockedIDs(ctx context.Context, participantID uint64) ([]string, error)
	GetUnlocksByParticipant(ctx context.Context, participantID uint64) ([]*model.ParticipantAchievement, error)
	GetAllUnlocks(ctx context.Context) ([]*model.ParticipantAchievement, error)
	UnlockIfAbsent(ctx context.Context, participantID uint64, achievementID string, unlockedAt time.Time) error
}

type achievementRepoImpl struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepo {
	return &achievementRepoImpl{db: db}
}

func (s *achievementRepoImpl) GetUnlockedIDs(ctx context.Context, participantID uint64) ([]string, error) {
	ids := make([]string, 0)
	result := s.db.WithContext(ctx).
		Model(&model.ParticipantAchievement{}).
		Where("participant_id = ?", participantID).
		Order("unlocked_at ASC").
		Pluck("achievement_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

func (s *achievementRepoImpl) GetUnlocksByParticipant(ctx context.Context, participantID uint64) ([]*model.ParticipantAchievement, error) {
	unlocks := make([]*model.ParticipantAchievement, 0)
	result := s.db.WithContext(ctx).
		Where("participant_id = ?", participantID).
		Order("unlocked_at ASC").
		Find(&unlocks)
	if result.Error != nil {
		return nil, result.Error
	}
	return unlocks, nil
}

func (s *achievementRepoImpl) GetAllUnlocks(ctx context.Context) ([]*model.ParticipantAchievement, error) {
	unlocks := make([]*model.ParticipantAchievement, 0)
	result := s.db.WithContext(ctx).
		Order("unlocked_at ASC").
		Find(&unlocks)
	if result.Error != nil {
		return nil, result.Error
	}
	return unlocks, nil
}

// UnlockIfAbsent 解锁只增不减，并发重复插入按已解锁处理
func (s *achievementRepoImpl) UnlockIfAbsent(ctx context.Context, participantID uint64, achievementID string, unlockedAt time.Time) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "participant_id"}, {Name: "achievement_id"}},
		DoNothing: true,
	}).Create(&model.ParticipantAchievement{
		ParticipantID: participantID,
		AchievementID: achievementID,
		UnlockedAt:    unlockedAt,
	}).Error
}
