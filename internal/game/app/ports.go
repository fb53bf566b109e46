package app

import (
	"context"

	"FoodChain/internal/shared/actor/messages"
)

// SessionRuntime 由 actor runtime 实现。
type SessionRuntime interface {
	Ask(ctx context.Context, msg any) (any, error)
	CreateSession(ctx context.Context, owner string) (messages.CreateSessionReply, error)
}

// TokenIssuer 为玩家签发令牌，默认是 security.Award。
type TokenIssuer func(sessionID int64, playerID int) (string, error)
