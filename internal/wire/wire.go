package wire

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"Hypeboard/internal/api"
	"Hypeboard/internal/api/config"
	"Hypeboard/internal/api/handler"
	"Hypeboard/internal/job"
	"Hypeboard/internal/pkg/cron"
	"Hypeboard/internal/pkg/tiktok"
	"Hypeboard/internal/repository"
	"Hypeboard/internal/service"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	participantRepo := repository.NewParticipantRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	milestoneRepo := repository.NewMilestoneRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	tiktokClient := tiktok.NewClient(cfg.TikTok)

	settingService := service.NewSettingService(settingRepo)
	participantService := service.NewParticipantService(participantRepo, settingService)
	leaderboardService := service.NewLeaderboardService(participantRepo, snapshotRepo, achievementRepo, settingService)
	achievementService := service.NewAchievementService(participantRepo, achievementRepo)
	milestoneService := service.NewMilestoneService(milestoneRepo, participantRepo)
	snapshotService := service.NewSnapshotService(snapshotRepo, participantRepo)
	refreshService := service.NewRefreshService(
		participantRepo, snapshotRepo, achievementRepo, milestoneRepo,
		settingService, leaderboardService, tiktokClient,
	)

	handlers := &api.HandlersGroup{
		ParticipantHandler: handler.NewParticipantHandler(participantService),
		LeaderboardHandler: handler.NewLeaderboardHandler(leaderboardService),
		RefreshHandler:     handler.NewRefreshHandler(refreshService),
		AchievementHandler: handler.NewAchievementHandler(achievementService),
		MilestoneHandler:   handler.NewMilestoneHandler(milestoneService),
		SnapshotHandler:    handler.NewSnapshotHandler(snapshotService),
	}

	router := api.SetupRouter(handlers)

	refreshJob := job.NewRefreshJob(refreshService)
	cronMgr := cron.NewCronManager(refreshJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
