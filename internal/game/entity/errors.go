package entity

import "FoodChain/modules/kit/errx"

const (
	CodeSessionNotFound      errx.Code = "SESSION_NOT_FOUND"
	CodeRoundInFlight        errx.Code = "ROUND_IN_FLIGHT"
	CodeDinnerTimeDisabled   errx.Code = "DINNER_TIME_DISABLED"
	CodeNoActivePlacement    errx.Code = "NO_ACTIVE_PLACEMENT"
	CodePlacementInvalid     errx.Code = "PLACEMENT_INVALID"
	CodeNoRoundInFlight      errx.Code = "NO_ROUND_IN_FLIGHT"
	CodePlacementDuringRound errx.Code = "PLACEMENT_DURING_ROUND"
)

var (
	ErrSessionNotFound      = errx.NewBiz(CodeSessionNotFound, "会话不存在")
	ErrRoundInFlight        = errx.NewBiz(CodeRoundInFlight, "晚餐配送进行中")
	ErrDinnerTimeDisabled   = errx.NewBiz(CodeDinnerTimeDisabled, "晚餐时间未开启")
	ErrNoActivePlacement    = errx.NewBiz(CodeNoActivePlacement, "当前没有待摆放的物件")
	ErrPlacementInvalid     = errx.NewBiz(CodePlacementInvalid, "摆放请求无效")
	ErrNoRoundInFlight      = errx.NewBiz(CodeNoRoundInFlight, "没有进行中的配送")
	ErrPlacementDuringRound = errx.NewBiz(CodePlacementDuringRound, "配送进行中不能摆放")
)
