package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"Hypeboard/internal/pkg/response"
	"Hypeboard/internal/service"
)

type AchievementHandler struct {
	achievementSvc service.AchievementService
}

func NewAchievementHandler(achievementSvc service.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievementSvc: achievementSvc}
}

// GetCatalog 成就目录。带 participant_id 时返回单人解锁状态，
// 否则返回全局解锁情况
func (s *AchievementHandler) GetCatalog(c *gin.Context) {
	if raw := c.Query("participant_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		achievements, err := s.achievementSvc.GetParticipantAchievements(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, achievements)
		return
	}

	catalog, err := s.achievementSvc.GetCatalog(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, catalog)
}
