package consts

const (
	LeaderboardKey = "leaderboard:enriched"
)

const (
	RefreshBatchLock = "lock:refresh:batch"
)
