package service

import (
	"context"
	"strconv"
	"time"

	"Hypeboard/internal/model"
	"Hypeboard/internal/pkg/consts"
	"Hypeboard/internal/repository"
)

type SettingService interface {
	GetGoal(ctx context.Context) (int, error)
	GetChallengeStartDate(ctx context.Context) (string, error)
	GetChallengeStartTime(ctx context.Context) (time.Time, error)
	GetLastAutoRefresh(ctx context.Context) (time.Time, error)
	SetLastAutoRefresh(ctx context.Context, at time.Time) error
}

type settingServiceImpl struct {
	settingRepo repository.SettingRepo
}

func NewSettingService(settingRepo repository.SettingRepo) SettingService {
	return &settingServiceImpl{settingRepo: settingRepo}
}

func (s *settingServiceImpl) GetGoal(ctx context.Context) (int, error) {
	setting, err := s.settingRepo.GetSetting(ctx, model.SettingKeyGoal)
	if err != nil {
		return 0, err
	}
	if setting == nil {
		return consts.DefaultGoal, nil
	}
	goal, err := strconv.Atoi(setting.Value)
	if err != nil {
		return consts.DefaultGoal, nil
	}
	return goal, nil
}

func (s *settingServiceImpl) GetChallengeStartDate(ctx context.Context) (string, error) {
	setting, err := s.settingRepo.GetSetting(ctx, model.SettingKeyChallengeStartDate)
	if err != nil {
		return "", err
	}
	if setting == nil {
		return consts.DefaultChallengeStartDate, nil
	}
	return setting.Value, nil
}

// GetChallengeStartTime 解析失败时返回零值，由调用方按"未知"处理
func (s *settingServiceImpl) GetChallengeStartTime(ctx context.Context) (time.Time, error) {
	dateStr, err := s.GetChallengeStartDate(ctx)
	if err != nil {
		return time.Time{}, err
	}
	start, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, nil
	}
	return start, nil
}

func (s *settingServiceImpl) GetLastAutoRefresh(ctx context.Context) (time.Time, error) {
	setting, err := s.settingRepo.GetSetting(ctx, model.SettingKeyLastAutoRefresh)
	if err != nil {
		return time.Time{}, err
	}
	if setting == nil {
		return time.Time{}, nil
	}
	last, err := time.Parse(time.RFC3339, setting.Value)
	if err != nil {
		return time.Time{}, nil
	}
	return last, nil
}

func (s *settingServiceImpl) SetLastAutoRefresh(ctx context.Context, at time.Time) error {
	return s.settingRepo.UpsertSetting(ctx, model.SettingKeyLastAutoRefresh, at.UTC().Format(time.RFC3339))
}
