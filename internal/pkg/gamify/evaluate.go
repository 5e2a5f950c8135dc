package gamify

import (
	"time"

	"Hypeboard/internal/model"
)

// Context 评估成就时的可选上下文。缺失的部分按"永不达标"处理，
// 只传 participant 的调用方会少判几类成就，但结果始终一致。
type Context struct {
	Gains           *GrowthDeltas
	Position        int // 榜单名次，1 起始，0 表示未知
	AllParticipants []*model.Participant
	ChallengeStart  time.Time // 零值表示未知
	Now             time.Time // 零值时取 time.Now()
}

// CheckAchievements 返回当前达标的成就 id 集合。
// 无状态可重入，不关心历史解锁，增量解锁由 NewlyQualified 负责。
func CheckAchievements(p *model.Participant, ctx *Context) []string {
	qualified := make([]string, 0)

	ready := competitionReady(ctx)

	for _, a := range Achievements {
		if qualifies(a, p, ctx, ready) {
			qualified = append(qualified, a.ID)
		}
	}

	return qualified
}

func qualifies(a AchievementDefinition, p *model.Participant, ctx *Context, ready bool) bool {
	switch a.Category {
	case CategoryFollowers:
		return p.Followers >= a.Threshold
	case CategoryLikes:
		return p.Likes >= a.Threshold
	case CategoryVideos:
		return p.Videos >= a.Threshold
	case CategoryViews:
		return p.MaxVideoViews >= a.Threshold
	case CategoryRatio:
		// videos = 0 时永不达标，规避除零
		if p.Videos <= 0 {
			return false
		}
		return float64(p.Likes)/float64(p.Videos) >= float64(a.Threshold)
	case CategoryGrowthDaily:
		return ctx != nil && ctx.Gains != nil && ctx.Gains.Daily >= a.Threshold
	case CategoryGrowthWeekly:
		return ctx != nil && ctx.Gains != nil && ctx.Gains.Weekly >= a.Threshold
	case CategoryPosition:
		if !ready {
			return false
		}
		switch a.ID {
		case "position_1":
			return ctx.Position == 1
		case "position_top3":
			return ctx.Position >= 1 && ctx.Position <= 3
		}
		return false
	}
	return false
}

// competitionReady 名次类成就的前置条件：全员至少发过一条视频，
// 且挑战开始满 24 小时。人没到齐或刚开赛不急着加冕。
func competitionReady(ctx *Context) bool {
	if ctx == nil || len(ctx.AllParticipants) == 0 {
		return false
	}

	for _, p := range ctx.AllParticipants {
		if p.Videos < 1 {
			return false
		}
	}

	if ctx.ChallengeStart.IsZero() {
		return false
	}

	now := ctx.Now
	if now.IsZero() {
		now = time.Now()
	}

	return now.Sub(ctx.ChallengeStart) >= 24*time.Hour
}
