package handler

import (
	"context"

	"FoodChain/internal/board/domain"
	"FoodChain/internal/game/app"
	"FoodChain/internal/game/entity"
	player "FoodChain/internal/player/entity"
	"FoodChain/internal/shared/transport"
	"FoodChain/modules/kit/errx"
)

var bizCodes = map[errx.Code]int{
	errx.CodeInvalidArgument:        transport.InvalidParam,
	entity.CodePlacementInvalid:     transport.InvalidParam,
	domain.CodeEmptyMenu:            transport.InvalidParam,
	domain.CodeInvalidFoodKind:      transport.InvalidParam,
	player.CodeInvalidAmount:        transport.InvalidParam,
	player.CodeInvalidFood:          transport.InvalidParam,
	errx.CodeUnauthorized:           transport.Unauthorized,
	entity.CodeSessionNotFound:      transport.NotFound,
	entity.CodeNoActivePlacement:    transport.NotFound,
	player.CodePlayerNotFound:       transport.NotFound,
	domain.CodeHouseNotFound:        transport.NotFound,
	entity.CodeRoundInFlight:        transport.Conflict,
	entity.CodeNoRoundInFlight:      transport.Conflict,
	entity.CodeDinnerTimeDisabled:   transport.Conflict,
	entity.CodePlacementDuringRound: transport.Conflict,
}

func mapBizErrToClientCode(e *errx.Error) int {
	if code, ok := bizCodes[e.Code()]; ok {
		return code
	}
	// 其余业务拒绝（重叠、越界、满员、缺货等）统一按 Rejected 返回，msg 说明原因
	return transport.Rejected
}

func mapTechErrToClientCode(err error) int {
	if err == nil {
		return transport.OK
	}
	switch app.GetErrorReasonCode(err) {
	case app.ReasonActorTimeout.Code:
		return transport.Timeout
	case app.ReasonActorUnavailable.Code:
		return transport.Unavailable
	default:
		return transport.SystemError
	}
}

func HandleError(ctx context.Context, err error) (int, string) {
	reason := app.GetErrorReasonCode(err)
	if reason != "" {
		transport.SetErrorReason(ctx, reason)
	}

	if e, ok := errx.As(err); ok && e.IsBiz() {
		return mapBizErrToClientCode(e), e.Msg()
	}

	bizCode := mapTechErrToClientCode(err)
	return bizCode, "系统繁忙，请稍后重试"
}
