package repository

import (
	"context"
	"errors"

	"Hypeboard/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepo interface {
	GetSetting(ctx context.Context, key string) (*model.Setting, error)
	UpsertSetting(ctx context.Context, key string, value string) error
}

type settingRepoImpl struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepo {
	return &settingRepoImpl{db: db}
}

func (s *settingRepoImpl) GetSetting(ctx context.Context, key string) (*model.Setting, error) {
	var setting model.Setting
	err := s.db.WithContext(ctx).
		Where("`key` = ?", key).
		First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

// UpsertSetting 写入即生效，key 冲突时覆盖旧值
func (s *settingRepoImpl) UpsertSetting(ctx context.Context, key string, value string) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model.Setting{Key: key, Value: value}).Error
}
