package service

import (
	"context"
	"sort"
	"time"

	json "github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	log "log/slog"

	"Hypeboard/internal/api/dto"
	"Hypeboard/internal/pkg/consts"
	"Hypeboard/internal/pkg/gamify"
	"Hypeboard/internal/pkg/redis"
	"Hypeboard/internal/repository"
)

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context) (*dto.LeaderboardDTO, error)
	BuildEntries(ctx context.Context, now time.Time) ([]*dto.LeaderboardEntryDTO, error)
}

type leaderboardServiceImpl struct {
	participantRepo repository.ParticipantRepo
	snapshotRepo    repository.SnapshotRepo
	achievementRepo repository.AchievementRepo
	settingSvc      SettingService
}

func NewLeaderboardService(
	participantRepo repository.ParticipantRepo,
	snapshotRepo repository.SnapshotRepo,
	achievementRepo repository.AchievementRepo,
	settingSvc SettingService,
) LeaderboardService {
	return &leaderboardServiceImpl{
		participantRepo: participantRepo,
		snapshotRepo:    snapshotRepo,
		achievementRepo: achievementRepo,
		settingSvc:      settingSvc,
	}
}

func (s *leaderboardServiceImpl) GetLeaderboard(ctx context.Context) (*dto.LeaderboardDTO, error) {
	// 先查缓存，命中直接返回
	if cached, err := redis.GetValue(ctx, consts.LeaderboardKey); err == nil && cached != "" {
		var board dto.LeaderboardDTO
		if err = json.Unmarshal([]byte(cached), &board); err == nil {
			return &board, nil
		}
		log.Warn("leaderboard cache decode failed", "error", err)
	}

	entries, err := s.BuildEntries(ctx, time.Now())
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

	board := &dto.LeaderboardDTO{
		Goal:               goal,
		ChallengeStartDate: startDate,
		Entries:            entries,
	}

	if data, err := json.Marshal(board); err == nil {
		_ = redis.SetWithExpiration(ctx, consts.LeaderboardKey, string(data), consts.LeaderboardCacheTTL)
	}
	return board, nil
}

// BuildEntries 全量计算榜单：增长、XP、段位、名次、已解锁成就
func (s *leaderboardServiceImpl) BuildEntries(ctx context.Context, now time.Time) ([]*dto.LeaderboardEntryDTO, error) {
	participants, err := s.participantRepo.GetAllParticipants(ctx)
	if err != nil {
		return nil, err
	}
	if len(participants) == 0 {
		return []*dto.LeaderboardEntryDTO{}, nil
	}

	allUnlocks, err := s.achievementRepo.GetAllUnlocks(ctx)
	if err != nil {
		return nil, err
	}
	unlocksByParticipant := make(map[uint64][]string, len(participants))
	for _, u := range allUnlocks {
		unlocksByParticipant[u.ParticipantID] = append(unlocksByParticipant[u.ParticipantID], u.AchievementID)
	}

	// 取全量历史，保证缺基准时能回退到最早一条快照；
	// 每人每天一条，数据量可控
	entries := make([]*dto.LeaderboardEntryDTO, 0, len(participants))
	for _, p := range participants {
		history, err := s.snapshotRepo.GetHistory(ctx, p.ID, time.Time{})
		if err != nil {
			return nil, err
		}

		gains := gamify.ComputeGrowth(history, now, p.Followers)
		unlocked := unlocksByParticipant[p.ID]
		if unlocked == nil {
			unlocked = []string{}
		}
		xp := gamify.CalculateXP(p, unlocked)
		rank := gamify.GetRank(xp)

		entry := &dto.LeaderboardEntryDTO{
			XP:                   xp,
			Rank:                 rank.ID,
			RankName:             rank.Name,
			RankColor:            rank.Color,
			NextRank:             gamify.GetNextRank(xp),
			Gains:                gains,
			UnlockedAchievements: unlocked,
		}
		_ = copier.Copy(entry, p)
		entries = append(entries, entry)
	}

	// XP 降序，粉丝数做次级排序，保证名次稳定
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].XP != entries[j].XP {
			return entries[i].XP > entries[j].XP
		}
		return entries[i].Followers > entries[j].Followers
	})
	for i, e := range entries {
		e.Position = i + 1
	}
	return entries, nil
}
