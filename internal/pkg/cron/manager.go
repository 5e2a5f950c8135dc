package cron

import (
	log "log/slog"

	"github.com/robfig/cron/v3"

	"Hypeboard/internal/job"
)

type Manager struct {
	engine     *cron.Cron
	refreshJob *job.RefreshJob
}

func NewCronManager(refreshJob *job.RefreshJob) *Manager {
	return &Manager{
		engine:     cron.New(cron.WithSeconds()),
		refreshJob: refreshJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@hourly", s.refreshJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
