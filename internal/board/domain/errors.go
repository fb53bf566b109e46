package domain

import "FoodChain/modules/kit/errx"

const (
	CodeUnknownCode     errx.Code = "LAYOUT_UNKNOWN_CODE"
	CodeMalformedCode   errx.Code = "LAYOUT_MALFORMED_CODE"
	CodeOutOfBounds     errx.Code = "PLACEMENT_OUT_OF_BOUNDS"
	CodeOverlap         errx.Code = "PLACEMENT_OVERLAP"
	CodeNoRoadAccess    errx.Code = "PLACEMENT_NO_ROAD_ACCESS"
	CodeNotPlaceable    errx.Code = "PLACEMENT_NOT_PLACEABLE"
	CodeEmptyMenu       errx.Code = "PLACEMENT_EMPTY_MENU"
	CodeHouseNotFound   errx.Code = "HOUSE_NOT_FOUND"
	CodeDinerNotFound   errx.Code = "DINER_NOT_FOUND"
	CodeHouseFull       errx.Code = "HOUSE_DEMAND_FULL"
	CodeInvalidFoodKind errx.Code = "INVALID_FOOD_KIND"
)

var (
	ErrUnknownCode     = errx.NewBiz(CodeUnknownCode, "无法识别的格子编码")
	ErrMalformedCode   = errx.NewBiz(CodeMalformedCode, "格子编码格式错误")
	ErrOutOfBounds     = errx.NewBiz(CodeOutOfBounds, "超出棋盘范围")
	ErrOverlap         = errx.NewBiz(CodeOverlap, "与已有物件重叠")
	ErrNoRoadAccess    = errx.NewBiz(CodeNoRoadAccess, "餐厅必须紧邻道路")
	ErrNotPlaceable    = errx.NewBiz(CodeNotPlaceable, "该物件不能由玩家摆放")
	ErrEmptyMenu       = errx.NewBiz(CodeEmptyMenu, "餐厅菜单不能为空")
	ErrHouseNotFound   = errx.NewBiz(CodeHouseNotFound, "房屋不存在")
	ErrDinerNotFound   = errx.NewBiz(CodeDinerNotFound, "餐厅不存在")
	ErrHouseFull       = errx.NewBiz(CodeHouseFull, "房屋需求已满")
	ErrInvalidFoodKind = errx.NewBiz(CodeInvalidFoodKind, "食物种类无效")
)
