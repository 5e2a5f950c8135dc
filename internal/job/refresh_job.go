package job

import (
	"context"
	log "log/slog"

	"github.com/google/uuid"

	"Hypeboard/internal/pkg/logger"
	"Hypeboard/internal/service"
)

// RefreshJob 周期性触发全员数据刷新。
// 冷却和互斥都在 RefreshService 内处理，任务本身只负责触发
type RefreshJob struct {
	refreshSvc service.RefreshService
}

func NewRefreshJob(refreshSvc service.RefreshService) *RefreshJob {
	return &RefreshJob{refreshSvc: refreshSvc}
}

func (s *RefreshJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	report, err := s.refreshSvc.RefreshAll(ctx)
	if err != nil {
		log.ErrorContext(ctx, "scheduled refresh error", "err", err)
		return
	}
	if !report.Success {
		log.InfoContext(ctx, "scheduled refresh skipped", "reason", report.Reason)
		return
	}
	log.InfoContext(ctx, "scheduled refresh done", "refreshed", report.Refreshed, "total", report.Total)
}
