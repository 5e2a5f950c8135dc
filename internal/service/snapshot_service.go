package service

import (
	"context"
	"time"

	"Hypeboard/internal/api/dto"
	"Hypeboard/internal/model"
	"Hypeboard/internal/pkg/gamify"
	"Hypeboard/internal/repository"
)

type SnapshotService interface {
	RecordSnapshot(ctx context.Context, req *dto.RecordSnapshotDTO) error
	GetHistory(ctx context.Context, participantID uint64, days int) ([]*model.StatsSnapshot, error)
	GetAllHistory(ctx context.Context, days int) ([]*model.StatsSnapshot, error)
	GetGrowth(ctx context.Context, participantID uint64) (*gamify.GrowthDeltas, error)
}

type snapshotServiceImpl struct {
	snapshotRepo    repository.SnapshotRepo
	participantRepo repository.ParticipantRepo
}

func NewSnapshotService(snapshotRepo repository.SnapshotRepo, participantRepo repository.ParticipantRepo) SnapshotService {
	return &snapshotServiceImpl{
		snapshotRepo:    snapshotRepo,
		participantRepo: participantRepo,
	}
}

// RecordSnapshot 手动补一条当天快照，同日已有则覆盖
func (s *snapshotServiceImpl) RecordSnapshot(ctx context.Context, req *dto.RecordSnapshotDTO) error {
	participant, err := s.participantRepo.GetParticipantByID(ctx, req.ParticipantID)
	if err != nil {
		return err
	}
	if participant == nil {
		return ErrParticipantNotFound
	}

	now := time.Now()
	return s.snapshotRepo.SaveDailySnapshot(ctx, &model.StatsSnapshot{
		ParticipantID: req.ParticipantID,
		SnapshotDate:  now.Truncate(24 * time.Hour),
		Followers:     req.Followers,
		Likes:         req.Likes,
		Videos:        req.Videos,
		RecordedAt:    now,
	})
}

func (s *snapshotServiceImpl) GetHistory(ctx context.Context, participantID uint64, days int) ([]*model.StatsSnapshot, error) {
	participant, err := s.participantRepo.GetParticipantByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, ErrParticipantNotFound
	}

	since := time.Time{}
	if days > 0 {
		since = time.Now().AddDate(0, 0, -days)
	}
	return s.snapshotRepo.GetHistory(ctx, participantID, since)
}

// GetAllHistory 不限参赛者的快照流水，供总览图表使用
func (s *snapshotServiceImpl) GetAllHistory(ctx context.Context, days int) ([]*model.StatsSnapshot, error) {
	since := time.Time{}
	if days > 0 {
		since = time.Now().AddDate(0, 0, -days)
	}
	return s.snapshotRepo.GetAllSince(ctx, since)
}

func (s *snapshotServiceImpl) GetGrowth(ctx context.Context, participantID uint64) (*gamify.GrowthDeltas, error) {
	participant, err := s.participantRepo.GetParticipantByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, ErrParticipantNotFound
	}

	history, err := s.snapshotRepo.GetHistory(ctx, participantID, time.Time{})
	if err != nil {
		return nil, err
	}

	gains := gamify.ComputeGrowth(history, time.Now(), participant.Followers)
	return &gains, nil
}
