package gamify

import "Hypeboard/internal/model"

// CalculateXP 1 粉丝 = 1 XP，再加上已解锁成就的奖励，未知 id 直接忽略
func CalculateXP(p *model.Participant, unlockedIDs []string) int {
	xp := p.Followers

	for _, id := range unlockedIDs {
		if a, ok := achievementIndex[id]; ok {
			xp += a.XPReward
		}
	}

	return xp
}
