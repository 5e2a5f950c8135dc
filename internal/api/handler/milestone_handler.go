package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"Hypeboard/internal/api/dto"
	"Hypeboard/internal/pkg/response"
	"Hypeboard/internal/pkg/util"
	"Hypeboard/internal/service"
)

type MilestoneHandler struct {
	milestoneSvc service.MilestoneService
}

func NewMilestoneHandler(milestoneSvc service.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{milestoneSvc: milestoneSvc}
}

func (s *MilestoneHandler) GetFeed(c *gin.Context) {
	hours, _ := strconv.Atoi(c.DefaultQuery("hours", "168"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	feed, err := s.milestoneSvc.GetFeed(c.Request.Context(), hours, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}

func (s *MilestoneHandler) Record(c *gin.Context) {
	var req dto.RecordMilestoneDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	if err = s.milestoneSvc.RecordMilestone(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *MilestoneHandler) CheckFollowers(c *gin.Context) {
	var req dto.CheckMilestonesDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	crossed, err := s.milestoneSvc.CheckFollowerMilestones(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, crossed)
}
