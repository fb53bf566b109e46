package entity

import (
	"FoodChain/modules/kit/errx"
)

const (
	CodePlayerNotFound errx.Code = "PLAYER_NOT_FOUND"
	CodeOutOfStock     errx.Code = "PLAYER_OUT_OF_STOCK"
	CodeInvalidAmount  errx.Code = "PLAYER_INVALID_AMOUNT"
	CodeInvalidFood    errx.Code = "PLAYER_INVALID_FOOD"
	CodeRosterFull     errx.Code = "SESSION_FULL"
)

var (
	ErrPlayerNotFound = errx.NewBiz(CodePlayerNotFound, "player not found")
	ErrOutOfStock     = errx.NewBiz(CodeOutOfStock, "库存不足")
	ErrInvalidAmount  = errx.NewBiz(CodeInvalidAmount, "数量必须为正")
	ErrInvalidFood    = errx.NewBiz(CodeInvalidFood, "食物种类无效")
	ErrRosterFull     = errx.NewBiz(CodeRosterFull, "人数已满")
)
