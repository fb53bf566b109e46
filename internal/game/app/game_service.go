package app

import (
	"context"

	"FoodChain/internal/game/app/model"
	"FoodChain/internal/shared/actor/messages"
	"FoodChain/internal/shared/security"
)

type GameService struct {
	runtime SessionRuntime
	award   TokenIssuer
}

func NewGameService(runtime SessionRuntime, award TokenIssuer) *GameService {
	if award == nil {
		award = security.Award
	}
	return &GameService{
		runtime: runtime,
		award:   award,
	}
}

func base(c model.Caller) messages.SessionBaseMessage {
	return messages.SessionBaseMessage{SessionId: c.SessionID, PlayerId: c.PlayerID}
}

func (g *GameService) ask(ctx context.Context, msg any) (any, error) {
	if g.runtime == nil {
		return nil, ErrUnavailable.WithReason(ReasonActorUnavailable)
	}
	data, err := g.runtime.Ask(ctx, msg)
	if err != nil {
		return nil, wrapTechErr(err)
	}
	return data, nil
}

func (g *GameService) issue(sessionID int64, playerID int) (*model.SessionResp, error) {
	token, err := g.award(sessionID, playerID)
	if err != nil {
		return nil, ErrInternalServer.WithReason(ReasonTokenIssue).WithCause(err)
	}
	return &model.SessionResp{SessionID: sessionID, PlayerID: playerID, Token: token}, nil
}

// CreateSession 新开一局，创建者作为第一个玩家加入并拿到令牌。
func (g *GameService) CreateSession(ctx context.Context, req model.CreateSessionReq) (*model.SessionResp, error) {
	if g.runtime == nil {
		return nil, ErrUnavailable.WithReason(ReasonActorUnavailable)
	}
	reply, err := g.runtime.CreateSession(ctx, req.Name)
	if err != nil {
		return nil, wrapTechErr(err)
	}
	return g.issue(reply.SessionId, reply.PlayerId)
}

func (g *GameService) Join(ctx context.Context, req model.JoinReq) (*model.SessionResp, error) {
	msg := &messages.JoinSession{
		SessionBaseMessage: messages.SessionBaseMessage{SessionId: req.SessionID},
		Name:               req.Name,
	}
	data, err := g.ask(ctx, msg)
	if err != nil {
		return nil, err
	}
	reply, ok := data.(messages.JoinSessionReply)
	if !ok {
		return nil, ErrInternalServer.WithReason(ReasonBadReply)
	}
	return g.issue(req.SessionID, reply.PlayerId)
}

func (g *GameService) Board(ctx context.Context, c model.Caller) (any, error) {
	return g.ask(ctx, &messages.GetBoard{SessionBaseMessage: base(c)})
}

func (g *GameService) BeginPlacement(ctx context.Context, c model.Caller, req model.PlacementReq) (any, error) {
	return g.ask(ctx, &messages.BeginPlacement{
		SessionBaseMessage: base(c),
		Kind:               req.Kind,
		Menu:               req.Menu,
		Campaign:           req.Campaign,
		Food:               req.Food,
	})
}

func (g *GameService) PreviewPlacement(ctx context.Context, c model.Caller, req model.PointReq) (any, error) {
	return g.ask(ctx, &messages.PreviewPlacement{SessionBaseMessage: base(c), I: req.I, J: req.J})
}

func (g *GameService) RotatePlacement(ctx context.Context, c model.Caller) (any, error) {
	return g.ask(ctx, &messages.RotatePlacement{SessionBaseMessage: base(c)})
}

func (g *GameService) CommitPlacement(ctx context.Context, c model.Caller, req model.PointReq) (any, error) {
	return g.ask(ctx, &messages.CommitPlacement{SessionBaseMessage: base(c), I: req.I, J: req.J})
}

func (g *GameService) CancelPlacement(ctx context.Context, c model.Caller) (any, error) {
	return g.ask(ctx, &messages.CancelPlacement{SessionBaseMessage: base(c)})
}

func (g *GameService) AddStock(ctx context.Context, c model.Caller, req model.StockReq) (any, error) {
	return g.ask(ctx, &messages.AddStock{SessionBaseMessage: base(c), Kind: req.Kind, Amount: req.Amount})
}

func (g *GameService) CollectDrinks(ctx context.Context, c model.Caller) (any, error) {
	return g.ask(ctx, &messages.CollectDrinks{SessionBaseMessage: base(c)})
}

func (g *GameService) AddDemand(ctx context.Context, c model.Caller, req model.DemandReq) (any, error) {
	return g.ask(ctx, &messages.AddDemand{SessionBaseMessage: base(c), House: req.House, Kind: req.Kind})
}

func (g *GameService) RunMarketing(ctx context.Context, c model.Caller) (any, error) {
	return g.ask(ctx, &messages.RunMarketing{SessionBaseMessage: base(c)})
}

func (g *GameService) EnableDinnerTime(ctx context.Context, c model.Caller) (any, error) {
	return g.ask(ctx, &messages.EnableDinnerTime{SessionBaseMessage: base(c)})
}

// StartDinner 返回本轮编号和需求份数，配送过程通过推送下发。
func (g *GameService) StartDinner(ctx context.Context, c model.Caller) (any, error) {
	return g.ask(ctx, &messages.StartDinner{SessionBaseMessage: base(c)})
}

func (g *GameService) CancelDinner(ctx context.Context, c model.Caller) (any, error) {
	return g.ask(ctx, &messages.CancelDinner{SessionBaseMessage: base(c)})
}
