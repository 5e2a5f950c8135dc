package service

import (
	"context"
	"time"

	log "log/slog"

	"github.com/google/uuid"

	"Hypeboard/internal/api/config"
	"Hypeboard/internal/api/dto"
	"Hypeboard/internal/model"
	"Hypeboard/internal/pkg/consts"
	"Hypeboard/internal/pkg/gamify"
	"Hypeboard/internal/pkg/redis"
	"Hypeboard/internal/pkg/tiktok"
	"Hypeboard/internal/repository"
)

type RefreshService interface {
	Status(ctx context.Context) (*dto.RefreshStatusDTO, error)
	RefreshAll(ctx context.Context) (*dto.RefreshReportDTO, error)
	PreviewProfile(ctx context.Context, username string) (*tiktok.ProfileStats, error)
}

type refreshServiceImpl struct {
	participantRepo repository.ParticipantRepo
	snapshotRepo    repository.SnapshotRepo
	achievementRepo repository.AchievementRepo
	milestoneRepo   repository.MilestoneRepo
	settingSvc      SettingService
	leaderboardSvc  LeaderboardService
	tiktokClient    *tiktok.Client
}

func NewRefreshService(
	participantRepo repository.ParticipantRepo,
	snapshotRepo repository.SnapshotRepo,
	achievementRepo repository.AchievementRepo,
	milestoneRepo repository.MilestoneRepo,
	settingSvc SettingService,
	leaderboardSvc LeaderboardService,
	tiktokClient *tiktok.Client,
) RefreshService {
	return &refreshServiceImpl{
		participantRepo: participantRepo,
		snapshotRepo:    snapshotRepo,
		achievementRepo: achievementRepo,
		milestoneRepo:   milestoneRepo,
		settingSvc:      settingSvc,
		leaderboardSvc:  leaderboardSvc,
		tiktokClient:    tiktokClient,
	}
}

func (s *refreshServiceImpl) cooldown() time.Duration {
	return time.Duration(config.Cfg.Refresh.CooldownMinutes) * time.Minute
}

// ceilMinutes 剩余等待时间按分钟向上取整，不满一分钟也算一分钟
func ceilMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Minute - 1) / time.Minute)
}

func (s *refreshServiceImpl) Status(ctx context.Context) (*dto.RefreshStatusDTO, error) {
	lastRefresh, err := s.settingSvc.GetLastAutoRefresh(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	remaining := gamify.CooldownRemaining(now, lastRefresh, s.cooldown())

	status := &dto.RefreshStatusDTO{
		CanRefresh:           remaining == 0,
		NextRefreshAvailable: now.Add(remaining),
		RemainingMinutes:     ceilMinutes(remaining),
	}
	if !lastRefresh.IsZero() {
		status.LastRefresh = &lastRefresh
	}
	return status, nil
}

// RefreshAll 批量刷新全部参赛者。先抓数落库，再统一评估成就，
// 两阶段之间榜单名次才是确定的。冷却期内直接拒绝
func (s *refreshServiceImpl) RefreshAll(ctx context.Context) (*dto.RefreshReportDTO, error) {
	now := time.Now()

	lastRefresh, err := s.settingSvc.GetLastAutoRefresh(ctx)
	if err != nil {
		return nil, err
	}
	if remaining := gamify.CooldownRemaining(now, lastRefresh, s.cooldown()); remaining > 0 {
		return &dto.RefreshReportDTO{
			Success:          false,
			Reason:           "cooldown",
			Message:          "刷新冷却中，请稍后再试",
			LastRefresh:      &lastRefresh,
			RemainingMinutes: ceilMinutes(remaining),
		}, nil
	}

	// 全局互斥，多实例同时触发只允许一个批次执行
	lockValue := uuid.NewString()
	locked, err := redis.TryLock(ctx, consts.RefreshBatchLock, lockValue, consts.RefreshLockTTL, 1)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrRefreshInProgress
	}
	defer redis.UnLock(context.WithoutCancel(ctx), consts.RefreshBatchLock, lockValue)

	// 先写时间戳再干活，失败的批次同样消耗冷却，避免反复打接口
	if err = s.settingSvc.SetLastAutoRefresh(ctx, now); err != nil {
		return nil, err
	}

	participants, err := s.participantRepo.GetAllParticipants(ctx)
	if err != nil {
		return nil, err
	}

	results := s.scrapeAndStore(ctx, participants, now)

	refreshed := 0
	for _, r := range results {
		if r.Success {
			refreshed++
		}
	}

	if err = s.evaluateUnlocks(ctx, now); err != nil {
		log.Error("achievement evaluation after refresh failed", "error", err)
	}

	_ = redis.DeleteKey(ctx, consts.LeaderboardKey)

	return &dto.RefreshReportDTO{
		Success:   true,
		Message:   "刷新完成",
		Refreshed: refreshed,
		Total:     len(participants),
		Results:   results,
	}, nil
}

// scrapeAndStore 第一阶段：逐人抓取主页、更新档案、写当日快照、
// 记录跨过的粉丝数节点。单人失败不影响其他人
func (s *refreshServiceImpl) scrapeAndStore(ctx context.Context, participants []*model.Participant, now time.Time) []*dto.RefreshResultDTO {
	delay := time.Duration(config.Cfg.TikTok.DelayMs) * time.Millisecond
	results := make([]*dto.RefreshResultDTO, 0, len(participants))

	for i, p := range participants {
		if i > 0 && delay > 0 {
			// 串行抓取加固定间隔，避免触发风控
			select {
			case <-ctx.Done():
				results = append(results, &dto.RefreshResultDTO{
					ID: p.ID, Username: p.Username, Success: false, Error: ctx.Err().Error(),
				})
				continue
			case <-time.After(delay):
			}
		}

		stats, err := s.tiktokClient.FetchProfile(ctx, p.Username)
		if err != nil {
			log.Warn("profile fetch failed", "username", p.Username, "error", err)
			results = append(results, &dto.RefreshResultDTO{
				ID: p.ID, Username: p.Username, Success: false, Error: err.Error(),
			})
			continue
		}

		previousFollowers := p.Followers

		updates := map[string]interface{}{
			"followers": stats.Followers,
			"likes":     stats.Likes,
			"videos":    stats.Videos,
		}
		if stats.Avatar != nil {
			updates["avatar"] = *stats.Avatar
		}
		if err = s.participantRepo.UpdateParticipantStats(ctx, p.ID, updates); err != nil {
			results = append(results, &dto.RefreshResultDTO{
				ID: p.ID, Username: p.Username, Success: false, Error: err.Error(),
			})
			continue
		}
		p.Followers = stats.Followers
		p.Likes = stats.Likes
		p.Videos = stats.Videos

		err = s.snapshotRepo.SaveDailySnapshot(ctx, &model.StatsSnapshot{
			ParticipantID: p.ID,
			SnapshotDate:  now.Truncate(24 * time.Hour),
			Followers:     stats.Followers,
			Likes:         stats.Likes,
			Videos:        stats.Videos,
			RecordedAt:    now,
		})
		if err != nil {
			log.Error("snapshot save failed", "participant_id", p.ID, "error", err)
		}

		for _, m := range gamify.CrossedMilestones(previousFollowers, stats.Followers) {
			err = s.milestoneRepo.RecordIfAbsent(ctx, &model.Milestone{
				ParticipantID: p.ID,
				Type:          model.MilestoneTypeFollower,
				Value:         m.Count,
				Label:         m.Label,
			})
			if err != nil {
				log.Error("milestone record failed", "participant_id", p.ID, "value", m.Count, "error", err)
			}
		}

		results = append(results, &dto.RefreshResultDTO{
			ID:        p.ID,
			Username:  p.Username,
			Success:   true,
			Followers: stats.Followers,
			Change:    stats.Followers - previousFollowers,
		})
	}
	return results
}

// evaluateUnlocks 第二阶段：基于落库后的完整榜单评估成就。
// 名次、增长都以全员最新数据为准，解锁只增不减
func (s *refreshServiceImpl) evaluateUnlocks(ctx context.Context, now time.Time) error {
	entries, err := s.leaderboardSvc.BuildEntries(ctx, now)
	if err != nil {
		return err
	}

	participants, err := s.participantRepo.GetAllParticipants(ctx)
	if err != nil {
		return err
	}
	byID := make(map[uint64]*model.Participant, len(participants))
	for _, p := range participants {
		byID[p.ID] = p
	}

	challengeStart, err := s.settingSvc.GetChallengeStartTime(ctx)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		p := byID[entry.ID]
		if p == nil {
			continue
		}

		gains := entry.Gains
		qualifying := gamify.CheckAchievements(p, &gamify.Context{
			Gains:           &gains,
			Position:        entry.Position,
			AllParticipants: participants,
			ChallengeStart:  challengeStart,
			Now:             now,
		})

		newly := gamify.NewlyQualified(qualifying, entry.UnlockedAchievements)
		for _, id := range newly {
			if err = s.achievementRepo.UnlockIfAbsent(ctx, p.ID, id, now); err != nil {
				log.Error("achievement unlock failed", "participant_id", p.ID, "achievement", id, "error", err)
				continue
			}
			def, ok := gamify.FindAchievement(id)
			if !ok {
				continue
			}
			err = s.milestoneRepo.RecordIfAbsent(ctx, &model.Milestone{
				ParticipantID: p.ID,
				Type:          model.MilestoneTypeAchievement,
				Value:         gamify.AchievementOrdinal(id),
				Label:         def.Name,
			})
			if err != nil {
				log.Error("achievement milestone record failed", "participant_id", p.ID, "achievement", id, "error", err)
			}
			log.Info("achievement unlocked", "participant_id", p.ID, "achievement", id)
		}

		// 段位变化也进动态，按段位门槛去重。
		// XP 按累计解锁算，解锁过的成就掉线后依然计分
		newXP := gamify.CalculateXP(p, append(entry.UnlockedAchievements, newly...))
		rank := gamify.GetRank(newXP)
		if rank.MinXP > 0 {
			err = s.milestoneRepo.RecordIfAbsent(ctx, &model.Milestone{
				ParticipantID: p.ID,
				Type:          model.MilestoneTypeRank,
				Value:         rank.MinXP,
				Label:         rank.Name,
			})
			if err != nil {
				log.Error("rank milestone record failed", "participant_id", p.ID, "rank", rank.ID, "error", err)
			}
		}
	}
	return nil
}

// PreviewProfile 注册前预览抓取结果，不落库
func (s *refreshServiceImpl) PreviewProfile(ctx context.Context, username string) (*tiktok.ProfileStats, error) {
	username = tiktok.CleanUsername(username)
	if username == "" {
		return nil, ErrParamInvalid
	}

	stats, err := s.tiktokClient.FetchProfile(ctx, username)
	if err != nil {
		log.Warn("profile preview failed", "username", username, "error", err)
		return nil, ErrProfileUnavailable
	}
	return stats, nil
}
