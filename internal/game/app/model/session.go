package model

import "FoodChain/internal/shared/gameconfig/food"

// Caller 令牌里解析出的调用方。
type Caller struct {
	SessionID int64
	PlayerID  int
}

type CreateSessionReq struct {
	Name string `json:"name" binding:"required"`
}

type JoinReq struct {
	SessionID int64  `json:"sid,string" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

type SessionResp struct {
	SessionID int64  `json:"sid,string"`
	PlayerID  int    `json:"pid"`
	Token     string `json:"token"`
}

// PlacementReq kind 取 diner 或 marketing；marketing 需要 campaign 和 food。
type PlacementReq struct {
	Kind     string      `json:"kind" binding:"required"`
	Menu     []food.Kind `json:"menu"`
	Campaign string      `json:"campaign"`
	Food     food.Kind   `json:"food"`
}

type PointReq struct {
	I int `json:"i"`
	J int `json:"j"`
}

type StockReq struct {
	Kind   food.Kind `json:"kind" binding:"required"`
	Amount int       `json:"amount" binding:"required"`
}

type DemandReq struct {
	House int       `json:"house" binding:"required"`
	Kind  food.Kind `json:"kind" binding:"required"`
}
