package repository

import (
	"context"
	"time"

	"Hypeboard/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SnapshotRepo interface {
	SaveDailySnapshot(ctx context.Context, snapshot *model.StatsSnapshot) error
	GetHistory(ctx context.Context, participantID uint64, since time.Time) ([]*model.StatsSnapshot, error)
	GetAllSince(ctx context.Context, since time.Time) ([]*model.StatsSnapshot, error)
}

type snapshotRepoImpl struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepo {
	return &snapshotRepoImpl{db: db}
}

// SaveDailySnapshot 每人每天一条，同日再刷原地覆盖，
// 保证增长基准检索只随天数增长
func (s *snapshotRepoImpl) SaveDailySnapshot(ctx context.Context, snapshot *model.StatsSnapshot) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "participant_id"}, {Name: "snapshot_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"followers", "likes", "videos", "recorded_at"}),
	}).Create(snapshot).Error
}

// GetHistory 升序返回单人快照历史，供增长计算使用。
// since 为零值时取全量
func (s *snapshotRepoImpl) GetHistory(ctx context.Context, participantID uint64, since time.Time) ([]*model.StatsSnapshot, error) {
	snapshots := make([]*model.StatsSnapshot, 0)
	query := s.db.WithContext(ctx).Where("participant_id = ?", participantID)
	if !since.IsZero() {
		query = query.Where("recorded_at >= ?", since)
	}
	result := query.Order("recorded_at ASC, id ASC").Find(&snapshots)
	if result.Error != nil {
		return nil, result.Error
	}
	return snapshots, nil
}

func (s *snapshotRepoImpl) GetAllSince(ctx context.Context, since time.Time) ([]*model.StatsSnapshot, error) {
	snapshots := make([]*model.StatsSnapshot, 0)
	query := s.db.WithContext(ctx)
	if !since.IsZero() {
		query = query.Where("recorded_at >= ?", since)
	}
	result := query.Order("recorded_at ASC, id ASC").Find(&snapshots)
	if result.Error != nil {
		return nil, result.Error
	}
	return snapshots, nil
}
