package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Hypeboard/internal/api/middleware"
	"Hypeboard/internal/pkg/logger"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		participantGroup := apiGroup.Group("/participants")
		{
			participantGroup.GET("", group.ParticipantHandler.GetOverview)
			participantGroup.POST("", group.ParticipantHandler.Register)
			participantGroup.GET("/:participant_id", group.ParticipantHandler.GetParticipant)
			participantGroup.PUT("/:participant_id", group.ParticipantHandler.UpdateStats)
			participantGroup.DELETE("/:participant_id", group.ParticipantHandler.Delete)

			participantGroup.GET("/:participant_id/growth", group.SnapshotHandler.GetGrowth)
		}

		apiGroup.GET("/leaderboard", group.LeaderboardHandler.GetLeaderboard)
		apiGroup.GET("/achievements", group.AchievementHandler.GetCatalog)

		refreshGroup := apiGroup.Group("/refresh")
		{
			refreshGroup.GET("/status", group.RefreshHandler.GetStatus)
			refreshGroup.POST("", group.RefreshHandler.RefreshAll)
		}

		// 抓取预览，注册前确认账号可访问
		apiGroup.GET("/tiktok", group.RefreshHandler.PreviewProfile)

		milestoneGroup := apiGroup.Group("/milestones")
		{
			milestoneGroup.GET("", group.MilestoneHandler.GetFeed)
			milestoneGroup.POST("", group.MilestoneHandler.Record)
			milestoneGroup.PUT("/check", group.MilestoneHandler.CheckFollowers)
		}

		snapshotGroup := apiGroup.Group("/snapshots")
		{
			snapshotGroup.GET("", group.SnapshotHandler.GetHistory)
			snapshotGroup.POST("", group.SnapshotHandler.Record)
		}
	}

	return r
}
