package actors

import (
	"FoodChain/internal/board/domain"
	"FoodChain/internal/game/entity"
	player "FoodChain/internal/player/entity"
	"FoodChain/internal/shared/actor/messages"

	"github.com/asynkron/protoactor-go/actor"
)

type SessionHandler struct{}

var SH = &SessionHandler{}

func pidOf(req messages.SessionMessage) player.PlayerID {
	return player.PlayerID(req.PlayerID())
}

func (h *SessionHandler) HandleJoin(ctx actor.Context, a *SessionActor, req *messages.JoinSession) {
	p, err := a.session.Join(req.Name)
	if err != nil {
		ctx.Respond(fail(err))
		return
	}
	ctx.Logger().Info("player joined", "session_id", req.SessionId, "player_id", int(p.ID()))
	ctx.Respond(ok(messages.JoinSessionReply{PlayerId: int(p.ID())}))
}

func (h *SessionHandler) HandleGetBoard(ctx actor.Context, a *SessionActor, req *messages.GetBoard) {
	ctx.Respond(ok(a.session.Snapshot()))
}

func (h *SessionHandler) HandleBeginPlacement(ctx actor.Context, a *SessionActor, req *messages.BeginPlacement) {
	var kind domain.ItemKind
	if err := kind.UnmarshalText([]byte(req.Kind)); err != nil {
		ctx.Respond(fail(entity.ErrPlacementInvalid.WithCause(err)))
		return
	}
	pr := entity.PlacementRequest{Kind: kind, Menu: req.Menu, Food: req.Food}
	if kind == domain.KindMarketing {
		if err := pr.Campaign.UnmarshalText([]byte(req.Campaign)); err != nil {
			ctx.Respond(fail(entity.ErrPlacementInvalid.WithCause(err)))
			return
		}
	}
	p, err := a.session.BeginPlacement(pidOf(req), pr)
	if err != nil {
		ctx.Respond(fail(err))
		return
	}
	ctx.Respond(ok(entity.NewPlacementView(p)))
}

func (h *SessionHandler) HandlePreviewPlacement(ctx actor.Context, a *SessionActor, req *messages.PreviewPlacement) {
	pv, err := a.session.PreviewPlacement(pidOf(req), req.I, req.J)
	if err != nil {
		ctx.Respond(fail(err))
		return
	}
	p, _ := a.session.Placement(pidOf(req))
	ctx.Respond(ok(entity.NewPreviewView(p, pv)))
}

func (h *SessionHandler) HandleRotatePlacement(ctx actor.Context, a *SessionActor, req *messages.RotatePlacement) {
	p, err := a.session.RotatePlacement(pidOf(req))
	if err != nil {
		ctx.Respond(fail(err))
		return
	}
	ctx.Respond(ok(entity.NewPlacementView(p)))
}

func (h *SessionHandler) HandleCommitPlacement(ctx actor.Context, a *SessionActor, req *messages.CommitPlacement) {
	it, err := a.session.CommitPlacement(pidOf(req), req.I, req.J)
	if err != nil {
		ctx.Respond(fail(err))
		return
	}
	view := entity.NewItemView(it)
	a.push("board.placed", view)
	ctx.Respond(ok(view))
}

func (h *SessionHandler) HandleCancelPlacement(ctx actor.Context, a *SessionActor, req *messages.CancelPlacement) {
	ctx.Respond(ok(a.session.CancelPlacement(pidOf(req))))
}

func (h *SessionHandler) HandleAddStock(ctx actor.Context, a *SessionActor, req *messages.AddStock) {
	p, err := a.session.Stock(pidOf(req), req.Kind, req.Amount)
	if err != nil {
		ctx.Respond(fail(err))
		return
	}
	ctx.Respond(ok(p.View()))
}

func (h *SessionHandler) HandleCollectDrinks(ctx actor.Context, a *SessionActor, req *messages.CollectDrinks) {
	ctx.Respond(ok(a.session.CollectDrinks()))
}

func (h *SessionHandler) HandleAddDemand(ctx actor.Context, a *SessionActor, req *messages.AddDemand) {
	if err := a.session.AddDemand(req.House, req.Kind); err != nil {
		ctx.Respond(fail(err))
		return
	}
	ctx.Respond(ok(nil))
}

func (h *SessionHandler) HandleRunMarketing(ctx actor.Context, a *SessionActor, req *messages.RunMarketing) {
	ctx.Respond(ok(a.session.RunMarketing()))
}

func (h *SessionHandler) HandleEnableDinnerTime(ctx actor.Context, a *SessionActor, req *messages.EnableDinnerTime) {
	a.session.EnableDinnerTime()
	ctx.Respond(ok(nil))
}

func (h *SessionHandler) HandleStartDinner(ctx actor.Context, a *SessionActor, req *messages.StartDinner) {
	info, err := a.startRound()
	if err != nil {
		ctx.Respond(fail(err))
		return
	}
	ctx.Respond(ok(info))
	a.advance(ctx)
}

func (h *SessionHandler) HandleCancelDinner(ctx actor.Context, a *SessionActor, req *messages.CancelDinner) {
	sum, err := a.finishRound()
	if err != nil {
		ctx.Respond(fail(err))
		return
	}
	ctx.Respond(ok(sum))
}
