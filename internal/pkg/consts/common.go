package consts

import "time"

const (
	// DefaultGoal 挑战目标粉丝数
	DefaultGoal = 10000

	// DefaultChallengeStartDate 挑战开始日期缺省值
	DefaultChallengeStartDate = "2026-01-24"

	// LeaderboardCacheTTL 榜单缓存过期时间
	LeaderboardCacheTTL = 2 * time.Minute

	// RefreshLockTTL 批量刷新锁的兜底过期时间
	RefreshLockTTL = 10 * time.Minute
)
