package app

import (
	"errors"

	"FoodChain/modules/kit/errx"
)

var (
	// ErrUnavailable 表示会话服务不可用。
	ErrUnavailable = errx.ErrUnavailable
	// ErrInternalServer 表示服务内部技术错误。
	ErrInternalServer = errx.ErrInternal
)

// wrapTechErr 业务错误原样返回，技术错误补上 reason。
func wrapTechErr(err error) error {
	if err == nil {
		return nil
	}
	if errx.IsBiz(err) {
		return err
	}
	switch {
	case errors.Is(err, errx.ErrTimeout):
		return ErrUnavailable.WithReason(ReasonActorTimeout).WithCause(err)
	case errors.Is(err, errx.ErrUnavailable):
		return ErrUnavailable.WithReason(ReasonActorUnavailable).WithCause(err)
	default:
		return ErrInternalServer.WithReason(ReasonActorInternal).WithCause(err)
	}
}

// GetErrorReasonCode 取错误链上的 reason，没有时退回错误码。
func GetErrorReasonCode(err error) string {
	e, ok := errx.As(err)
	if !ok {
		return ""
	}
	if r := e.Reason(); r != "" {
		return r
	}
	return e.CodeText()
}

func GetErrorMessage(err error) string {
	e, ok := errx.As(err)
	if !ok {
		return ""
	}
	return e.Msg()
}
