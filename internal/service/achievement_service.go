package service

import (
	"context"

	"Hypeboard/internal/api/dto"
	"Hypeboard/internal/pkg/gamify"
	"Hypeboard/internal/repository"
)

type AchievementService interface {
	GetCatalog(ctx context.Context) ([]*dto.AchievementStatusDTO, error)
	GetParticipantAchievements(ctx context.Context, participantID uint64) ([]*dto.AchievementStatusDTO, error)
}

type achievementServiceImpl struct {
	participantRepo repository.ParticipantRepo
	achievementRepo repository.AchievementRepo
}

func NewAchievementService(participantRepo repository.ParticipantRepo, achievementRepo repository.AchievementRepo) AchievementService {
	return &achievementServiceImpl{
		participantRepo: participantRepo,
		achievementRepo: achievementRepo,
	}
}

// GetCatalog 全部成就定义加上各自的解锁者列表
func (s *achievementServiceImpl) GetCatalog(ctx context.Context) ([]*dto.AchievementStatusDTO, error) {
	allUnlocks, err := s.achievementRepo.GetAllUnlocks(ctx)
	if err != nil {
		return nil, err
	}

	unlockers := make(map[string][]*dto.AchievementUnlockerDTO)
	for _, u := range allUnlocks {
		unlockers[u.AchievementID] = append(unlockers[u.AchievementID], &dto.AchievementUnlockerDTO{
			ParticipantID: u.ParticipantID,
			UnlockedAt:    u.UnlockedAt,
		})
	}

	statuses := make([]*dto.AchievementStatusDTO, 0, len(gamify.Achievements))
	for _, def := range gamify.Achievements {
		statuses = append(statuses, &dto.AchievementStatusDTO{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
			Category:    def.Category.String(),
			Threshold:   def.Threshold,
			XPReward:    def.XPReward,
			Unlocked:    len(unlockers[def.ID]) > 0,
			UnlockedBy:  unlockers[def.ID],
		})
	}
	return statuses, nil
}

func (s *achievementServiceImpl) GetParticipantAchievements(ctx context.Context, participantID uint64) ([]*dto.AchievementStatusDTO, error) {
	participant, err := s.participantRepo.GetParticipantByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, ErrParticipantNotFound
	}

	unlocks, err := s.achievementRepo.GetUnlocksByParticipant(ctx, participantID)
	if err != nil {
		return nil, err
	}

	unlockedAt := make(map[string]*dto.AchievementStatusDTO, len(unlocks))
	statuses := make([]*dto.AchievementStatusDTO, 0, len(gamify.Achievements))
	for _, def := range gamify.Achievements {
		status := &dto.AchievementStatusDTO{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
			Category:    def.Category.String(),
			Threshold:   def.Threshold,
			XPReward:    def.XPReward,
		}
		unlockedAt[def.ID] = status
		statuses = append(statuses, status)
	}
	for _, u := range unlocks {
		if status, ok := unlockedAt[u.AchievementID]; ok {
			at := u.UnlockedAt
			status.Unlocked = true
			status.UnlockedAt = &at
		}
	}
	return statuses, nil
}
