package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"Hypeboard/internal/model"
	"Hypeboard/internal/pkg/consts"
)

type fakeSettingRepo struct {
	values map[string]string
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{values: make(map[string]string)}
}

func (s *fakeSettingRepo) GetSetting(_ context.Context, key string) (*model.Setting, error) {
	value, ok := s.values[key]
	if !ok {
		return nil, nil
	}
	return &model.Setting{Key: key, Value: value}, nil
}

func (s *fakeSettingRepo) UpsertSetting(_ context.Context, key string, value string) error {
	s.values[key] = value
	return nil
}

func TestSettingServiceDefaults(t *testing.T) {
	svc := NewSettingService(newFakeSettingRepo())
	ctx := context.Background()

	goal, err := svc.GetGoal(ctx)
	require.NoError(t, err)
	require.Equal(t, consts.DefaultGoal, goal)

	startDate, err := svc.GetChallengeStartDate(ctx)
	require.NoError(t, err)
	require.Equal(t, consts.DefaultChallengeStartDate, startDate)

	last, err := svc.GetLastAutoRefresh(ctx)
	require.NoError(t, err)
	require.True(t, last.IsZero())
}

func TestSettingServiceStoredValues(t *testing.T) {
	repo := newFakeSettingRepo()
	repo.values[model.SettingKeyGoal] = "25000"
	repo.values[model.SettingKeyChallengeStartDate] = "2026-03-01"
	svc := NewSettingService(repo)
	ctx := context.Background()

	goal, err := svc.GetGoal(ctx)
	require.NoError(t, err)
	require.Equal(t, 25000, goal)

	start, err := svc.GetChallengeStartTime(ctx)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), start)
}

func TestSettingServiceMalformedValuesFallBack(t *testing.T) {
	repo := newFakeSettingRepo()
	repo.values[model.SettingKeyGoal] = "not-a-number"
	repo.values[model.SettingKeyChallengeStartDate] = "soon"
	repo.values[model.SettingKeyLastAutoRefresh] = "yesterday"
	svc := NewSettingService(repo)
	ctx := context.Background()

	goal, err := svc.GetGoal(ctx)
	require.NoError(t, err)
	require.Equal(t, consts.DefaultGoal, goal)

	start, err := svc.GetChallengeStartTime(ctx)
	require.NoError(t, err)
	require.True(t, start.IsZero())

	last, err := svc.GetLastAutoRefresh(ctx)
	require.NoError(t, err)
	require.True(t, last.IsZero())
}

func TestSettingServiceLastAutoRefreshRoundTrip(t *testing.T) {
	svc := NewSettingService(newFakeSettingRepo())
	ctx := context.Background()

	at := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	require.NoError(t, svc.SetLastAutoRefresh(ctx, at))

	last, err := svc.GetLastAutoRefresh(ctx)
	require.NoError(t, err)
	require.True(t, last.Equal(at))
}
