package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid        = errors.New("参数错误")
	ErrParticipantNotFound = errors.New("参赛者不存在")
	ErrParticipantExist    = errors.New("该账号已加入挑战")
	ErrProfileUnavailable  = errors.New("无法获取主页数据，账号可能不存在或是私密账号")
	ErrRefreshInProgress   = errors.New("刷新正在进行中")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrParticipantNotFound: NotFound,
	ErrParticipantExist:    BadRequest,
	ErrProfileUnavailable:  NotFound,
	ErrRefreshInProgress:   BadRequest,
	UnExpectedError:        InternalServerError,
}
