package dto

import "time"

type RefreshStatusDTO struct {
	CanRefresh           bool       `json:"canRefresh"`
	LastRefresh          *time.Time `json:"lastRefresh"`
	NextRefreshAvailable time.Time  `json:"nextRefreshAvailable"`
	RemainingMinutes     int        `json:"remainingMinutes"`
}

// RefreshResultDTO 单个参赛者的刷新结果，失败不影响其他人
type RefreshResultDTO struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	Success   bool   `json:"success"`
	Followers int    `json:"followers,omitempty"`
	Change    int    `json:"change,omitempty"`
	Error     string `json:"error,omitempty"`
}

type RefreshReportDTO struct {
	Success          bool                `json:"success"`
	Reason           string              `json:"reason,omitempty"`
	Message          string              `json:"message"`
	Refreshed        int                 `json:"refreshed"`
	Total            int                 `json:"total"`
	Results          []*RefreshResultDTO `json:"results,omitempty"`
	LastRefresh      *time.Time          `json:"lastRefresh,omitempty"`
	RemainingMinutes int                 `json:"remainingMinutes,omitempty"`
}
