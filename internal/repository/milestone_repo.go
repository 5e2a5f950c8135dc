package repository

import (
	"context"
	"time"

	"Hypeboard/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MilestoneRepo interface {
	RecordIfAbsent(ctx context.Context, milestone *model.Milestone) error
	GetRecent(ctx context.Context, since time.Time, limit int) ([]*model.Milestone, error)
}

type milestoneRepoImpl struct {
	db *gorm.DB
}

func NewMilestoneRepository(db *gorm.DB) MilestoneRepo {
	return &milestoneRepoImpl{db: db}
}

// RecordIfAbsent 同一 (参赛者, 类型, 数值) 只记一次，重复写入静默忽略
func (s *milestoneRepoImpl) RecordIfAbsent(ctx context.Context, milestone *model.Milestone) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "participant_id"}, {Name: "type"}, {Name: "value"}},
		DoNothing: true,
	}).Create(milestone).Error
}

func (s *milestoneRepoImpl) GetRecent(ctx context.Context, since time.Time, limit int) ([]*model.Milestone, error) {
	milestones := make([]*model.Milestone, 0)
	result := s.db.WithContext(ctx).
		Preload("Participant").
		Where("created_at >= ?", since).
		Order("created_at DESC").
		Limit(limit).
		Find(&milestones)
	if result.Error != nil {
		return nil, result.Error
	}
	return milestones, nil
}
