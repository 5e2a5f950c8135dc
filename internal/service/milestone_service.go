package service

import (
	"context"
	"time"

	"Hypeboard/internal/api/dto"
	"Hypeboard/internal/model"
	"Hypeboard/internal/pkg/gamify"
	"Hypeboard/internal/repository"
)

type MilestoneService interface {
	GetFeed(ctx context.Context, hours int, limit int) ([]*dto.MilestoneDTO, error)
	RecordMilestone(ctx context.Context, req *dto.RecordMilestoneDTO) error
	CheckFollowerMilestones(ctx context.Context, req *dto.CheckMilestonesDTO) ([]gamify.FollowerMilestone, error)
}

type milestoneServiceImpl struct {
	milestoneRepo   repository.MilestoneRepo
	participantRepo repository.ParticipantRepo
}

func NewMilestoneService(milestoneRepo repository.MilestoneRepo, participantRepo repository.ParticipantRepo) MilestoneService {
	return &milestoneServiceImpl{
		milestoneRepo:   milestoneRepo,
		participantRepo: participantRepo,
	}
}

// GetFeed 最近动态，时间倒序
func (s *milestoneServiceImpl) GetFeed(ctx context.Context, hours int, limit int) ([]*dto.MilestoneDTO, error) {
	if hours <= 0 {
		hours = 24 * 7
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	milestones, err := s.milestoneRepo.GetRecent(ctx, time.Now().Add(-time.Duration(hours)*time.Hour), limit)
	if err != nil {
		return nil, err
	}

	feed := make([]*dto.MilestoneDTO, 0, len(milestones))
	for _, m := range milestones {
		item := &dto.MilestoneDTO{
			ID:            m.ID,
			ParticipantID: m.ParticipantID,
			Type:          m.Type,
			Value:         m.Value,
			Label:         m.Label,
			CreatedAt:     m.CreatedAt,
		}
		if m.Participant != nil {
			item.ParticipantName = m.Participant.Name
			item.ParticipantUsername = m.Participant.Username
			item.ParticipantAvatar = m.Participant.Avatar
		}
		feed = append(feed, item)
	}
	return feed, nil
}

func (s *milestoneServiceImpl) RecordMilestone(ctx context.Context, req *dto.RecordMilestoneDTO) error {
	participant, err := s.participantRepo.GetParticipantByID(ctx, req.ParticipantID)
	if err != nil {
		return err
	}
	if participant == nil {
		return ErrParticipantNotFound
	}

	return s.milestoneRepo.RecordIfAbsent(ctx, &model.Milestone{
		ParticipantID: req.ParticipantID,
		Type:          req.Type,
		Value:         req.Value,
		Label:         req.Label,
	})
}

// CheckFollowerMilestones 落库本次跨过的粉丝数节点并返回，
// 同一节点重复提交不会产生新记录
func (s *milestoneServiceImpl) CheckFollowerMilestones(ctx context.Context, req *dto.CheckMilestonesDTO) ([]gamify.FollowerMilestone, error) {
	participant, err := s.participantRepo.GetParticipantByID(ctx, req.ParticipantID)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, ErrParticipantNotFound
	}

	crossed := gamify.CrossedMilestones(req.PreviousFollowers, req.Followers)
	for _, m := range crossed {
		err = s.milestoneRepo.RecordIfAbsent(ctx, &model.Milestone{
			ParticipantID: req.ParticipantID,
			Type:          model.MilestoneTypeFollower,
			Value:         m.Count,
			Label:         m.Label,
		})
		if err != nil {
			return nil, err
		}
	}
	return crossed, nil
}
