package handler

import (
	"github.com/gin-gonic/gin"

	"Hypeboard/internal/pkg/response"
	"Hypeboard/internal/service"
)

type LeaderboardHandler struct {
	leaderboardSvc service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardSvc service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardSvc: leaderboardSvc}
}

func (s *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	board, err := s.leaderboardSvc.GetLeaderboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, board)
}
