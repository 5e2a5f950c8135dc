package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"Hypeboard/internal/api/dto"
	"Hypeboard/internal/pkg/response"
	"Hypeboard/internal/pkg/util"
	"Hypeboard/internal/service"
)

type ParticipantHandler struct {
	participantSvc service.ParticipantService
}

func NewParticipantHandler(participantSvc service.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{participantSvc: participantSvc}
}

func (s *ParticipantHandler) Register(c *gin.Context) {
	var req dto.RegisterParticipantDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	participant, err := s.participantSvc.RegisterParticipant(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, participant)
}

func (s *ParticipantHandler) GetOverview(c *gin.Context) {
	overview, err := s.participantSvc.GetOverview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, overview)
}

func (s *ParticipantHandler) GetParticipant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("participant_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	participant, err := s.participantSvc.GetParticipantByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, participant)
}

func (s *ParticipantHandler) UpdateStats(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("participant_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.UpdateStatsDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	participant, err := s.participantSvc.UpdateStats(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, participant)
}

func (s *ParticipantHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("participant_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.participantSvc.DeleteParticipant(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
