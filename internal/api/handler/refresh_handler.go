package handler

import (
	"github.com/gin-gonic/gin"

	"Hypeboard/internal/pkg/response"
	"Hypeboard/internal/service"
)

type RefreshHandler struct {
	refreshSvc service.RefreshService
}

func NewRefreshHandler(refreshSvc service.RefreshService) *RefreshHandler {
	return &RefreshHandler{refreshSvc: refreshSvc}
}

func (s *RefreshHandler) GetStatus(c *gin.Context) {
	status, err := s.refreshSvc.Status(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, status)
}

// RefreshAll 手动触发全员刷新，冷却期内返回剩余时间
func (s *RefreshHandler) RefreshAll(c *gin.Context) {
	report, err := s.refreshSvc.RefreshAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}

// PreviewProfile 注册前校验账号是否可抓取
func (s *RefreshHandler) PreviewProfile(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	stats, err := s.refreshSvc.PreviewProfile(c.Request.Context(), username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
