package service

import "FoodChain/modules/kit/errx"

const (
	CodeNoRoute  errx.Code = "DELIVERY_NO_ROUTE"
	CodeNoDemand errx.Code = "DELIVERY_NO_DEMAND"
)

var (
	ErrNoRoute  = errx.NewBiz(CodeNoRoute, "没有可用的餐厅")
	ErrNoDemand = errx.NewBiz(CodeNoDemand, "房屋没有该需求")
)

// 跳过配送时写进业务日志的原因。
const (
	reasonNoDiner   = "NO_ELIGIBLE_DINER"
	reasonFeedFail  = "FEED_FAILED"
	reasonSatisfied = "ALREADY_SATISFIED"
)
