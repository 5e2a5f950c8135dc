package api

import "Hypeboard/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	ParticipantHandler *handler.ParticipantHandler
	LeaderboardHandler *handler.LeaderboardHandler
	RefreshHandler     *handler.RefreshHandler
	AchievementHandler *handler.AchievementHandler
	MilestoneHandler   *handler.MilestoneHandler
	SnapshotHandler    *handler.SnapshotHandler
}
