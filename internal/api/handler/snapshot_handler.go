package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"Hypeboard/internal/api/dto"
	"Hypeboard/internal/pkg/response"
	"Hypeboard/internal/pkg/util"
	"Hypeboard/internal/service"
)

type SnapshotHandler struct {
	snapshotSvc service.SnapshotService
}

func NewSnapshotHandler(snapshotSvc service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotSvc: snapshotSvc}
}

func (s *SnapshotHandler) Record(c *gin.Context) {
	var req dto.RecordSnapshotDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	if err = s.snapshotSvc.RecordSnapshot(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetHistory 不带 participant_id 时返回全员流水
func (s *SnapshotHandler) GetHistory(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))

	if raw := c.Query("participant_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		history, err := s.snapshotSvc.GetHistory(c.Request.Context(), id, days)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, history)
		return
	}

	history, err := s.snapshotSvc.GetAllHistory(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, history)
}

func (s *SnapshotHandler) GetGrowth(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("participant_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	gains, err := s.snapshotSvc.GetGrowth(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gains)
}
