package repository

import (
	"context"
	"errors"
	"strings"

	"Hypeboard/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ParticipantRepo interface {
	CreateParticipant(ctx context.Context, participant *model.Participant) error
	GetParticipantByID(ctx context.Context, id uint64) (*model.Participant, error)
	GetParticipantByUsername(ctx context.Context, username string) (*model.Participant, error)
	GetAllParticipants(ctx context.Context) ([]*model.Participant, error)
	UpdateParticipant(ctx context.Context, participant *model.Participant) error
	UpdateParticipantStats(ctx context.Context, id uint64, updates map[string]interface{}) error
	DeleteParticipant(ctx context.Context, id uint64) error
}

type participantRepoImpl struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepo {
	return &participantRepoImpl{db: db}
}

func (s *participantRepoImpl) CreateParticipant(ctx context.Context, participant *model.Participant) error {
	return s.db.WithContext(ctx).Create(participant).Error
}

func (s *participantRepoImpl) GetParticipantByID(ctx context.Context, id uint64) (*model.Participant, error) {
	var participant model.Participant
	err := s.db.WithContext(ctx).First(&participant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &participant, nil
}

// GetParticipantByUsername 账号唯一性按小写比较
func (s *participantRepoImpl) GetParticipantByUsername(ctx context.Context, username string) (*model.Participant, error) {
	var participant model.Participant
	err := s.db.WithContext(ctx).
		Where("LOWER(username) = ?", strings.ToLower(username)).
		First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &participant, nil
}

func (s *participantRepoImpl) GetAllParticipants(ctx context.Context) ([]*model.Participant, error) {
	participants := make([]*model.Participant, 0)
	result := s.db.WithContext(ctx).
		Order("followers DESC").
		Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}
	return participants, nil
}

func (s *participantRepoImpl) UpdateParticipant(ctx context.Context, participant *model.Participant) error {
	return s.db.WithContext(ctx).Save(participant).Error
}

func (s *participantRepoImpl) UpdateParticipantStats(ctx context.Context, id uint64, updates map[string]interface{}) error {
	return s.db.WithContext(ctx).
		Model(&model.Participant{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// DeleteParticipant 连带删除快照、成就、里程碑
func (s *participantRepoImpl) DeleteParticipant(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&model.Participant{ID: id}).Error
}
