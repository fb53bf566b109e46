package handler

import (
	"FoodChain/internal/game/app"
	"FoodChain/internal/shared/session"
)

// Game HTTP 和 WS 两套 handler 共用的依赖。
type Game struct {
	Session     session.Manager
	GameService *app.GameService
}

func NewGame(s session.Manager, svc *app.GameService) *Game {
	return &Game{
		Session:     s,
		GameService: svc,
	}
}
