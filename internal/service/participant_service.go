package service

import (
	"context"

	"Hypeboard/internal/api/dto"
	"Hypeboard/internal/model"
	"Hypeboard/internal/pkg/consts"
	"Hypeboard/internal/pkg/redis"
	"Hypeboard/internal/pkg/tiktok"
	"Hypeboard/internal/repository"
)

type ParticipantService interface {
	RegisterParticipant(ctx context.Context, req *dto.RegisterParticipantDTO) (*model.Participant, error)
	GetOverview(ctx context.Context) (*dto.ParticipantOverviewDTO, error)
	GetParticipantByID(ctx context.Context, id uint64) (*model.Participant, error)
	UpdateStats(ctx context.Context, id uint64, req *dto.UpdateStatsDTO) (*model.Participant, error)
	DeleteParticipant(ctx context.Context, id uint64) error
}

type participantServiceImpl struct {
	participantRepo repository.ParticipantRepo
	settingSvc      SettingService
}

func NewParticipantService(participantRepo repository.ParticipantRepo, settingSvc SettingService) ParticipantService {
	return &participantServiceImpl{
		participantRepo: participantRepo,
		settingSvc:      settingSvc,
	}
}

func (s *participantServiceImpl) RegisterParticipant(ctx context.Context, req *dto.RegisterParticipantDTO) (*model.Participant, error) {
	username := tiktok.CleanUsername(req.Username)
	if username == "" {
		return nil, ErrParamInvalid
	}

	// 账号不区分大小写，重复加入直接拒绝
	existing, err := s.participantRepo.GetParticipantByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrParticipantExist
	}

	participant := &model.Participant{
		Name:          req.Name,
		Username:      username,
		Avatar:        req.Avatar,
		Followers:     req.Followers,
		Likes:         req.Likes,
		Videos:        req.Videos,
		MaxVideoViews: req.MaxVideoViews,
	}

	if err = s.participantRepo.CreateParticipant(ctx, participant); err != nil {
		return nil, err
	}

	s.invalidateLeaderboard(ctx)
	return participant, nil
}

func (s *participantServiceImpl) GetOverview(ctx context.Context) (*dto.ParticipantOverviewDTO, error) {
	participants, err := s.participantRepo.GetAllParticipants(ctx)
	if err != nil {
		return nil, err
	}

	goal, err := s.settingSvc.GetGoal(ctx)
	if err != nil {
		return nil, err
	}

	startDate, err := s.settingSvc.GetChallengeStartDate(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ParticipantOverviewDTO{
		Goal:               goal,
		ChallengeStartDate: startDate,
		Participants:       participants,
	}, nil
}

func (s *participantServiceImpl) GetParticipantByID(ctx context.Context, id uint64) (*model.Participant, error) {
	participant, err := s.participantRepo.GetParticipantByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, ErrParticipantNotFound
	}
	return participant, nil
}

// UpdateStats 手动改数据走这里，缺省字段不动；
// maxVideoViews 只升不降，低于现值的提交直接忽略
func (s *participantServiceImpl) UpdateStats(ctx context.Context, id uint64, req *dto.UpdateStatsDTO) (*model.Participant, error) {
	participant, err := s.GetParticipantByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Followers != nil {
		updates["followers"] = *req.Followers
	}
	if req.Likes != nil {
		updates["likes"] = *req.Likes
	}
	if req.Videos != nil {
		updates["videos"] = *req.Videos
	}
	if req.MaxVideoViews != nil && *req.MaxVideoViews > participant.MaxVideoViews {
		updates["max_video_views"] = *req.MaxVideoViews
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}

	if len(updates) == 0 {
		return participant, nil
	}

	if err = s.participantRepo.UpdateParticipantStats(ctx, id, updates); err != nil {
		return nil, err
	}

	s.invalidateLeaderboard(ctx)
	return s.GetParticipantByID(ctx, id)
}

func (s *participantServiceImpl) DeleteParticipant(ctx context.Context, id uint64) error {
	participant, err := s.participantRepo.GetParticipantByID(ctx, id)
	if err != nil {
		return err
	}
	if participant == nil {
		return ErrParticipantNotFound
	}

	if err = s.participantRepo.DeleteParticipant(ctx, id); err != nil {
		return err
	}

	s.invalidateLeaderboard(ctx)
	return nil
}

func (s *participantServiceImpl) invalidateLeaderboard(ctx context.Context) {
	_ = redis.DeleteKey(ctx, consts.LeaderboardKey)
}
