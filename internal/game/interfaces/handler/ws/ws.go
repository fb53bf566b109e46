package ws

import (
	"context"

	"FoodChain/internal/game/app/model"
	"FoodChain/internal/game/interfaces/handler"
	"FoodChain/internal/shared/security"
	"FoodChain/internal/shared/session"
	"FoodChain/internal/shared/transport"
	"FoodChain/internal/shared/transport/ws"
)

type WsHandler struct {
	game *handler.Game
}

func NewWsHandler(g *handler.Game) *WsHandler {
	return &WsHandler{game: g}
}

func (h *WsHandler) RegisterRoutes(r *ws.Router) {
	sessionGroup := r.Group("session")
	sessionGroup.Handle("join", h.Join)
	sessionGroup.HandleScoped("board", h.Board)

	dinnerGroup := r.Group("dinner")
	dinnerGroup.HandleScoped("time", h.DinnerTime)
}

// JoinReq 带 token 时绑定已有玩家；否则按 sid + name 新加入一个玩家。
type JoinReq struct {
	Token     string `json:"token"`
	SessionID int64  `json:"sid,string"`
	Name      string `json:"name"`
}

type DinnerTimeReq struct {
	// enable / start / cancel
	Action string `json:"action"`
}

func (h *WsHandler) Join(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	if wsReq == nil || wsReq.Body == nil || wsReq.Conn == nil || wsResp == nil || wsResp.Body == nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}

	var req JoinReq
	if err := ws.BindMsg(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}

	var resp *model.SessionResp
	switch {
	case req.Token != "":
		claims, err := security.ParseToken(req.Token)
		if err != nil {
			h.fail(wsResp, transport.Unauthorized, "令牌无效")
			return
		}
		resp = &model.SessionResp{SessionID: claims.SessionID, PlayerID: claims.PlayerID, Token: req.Token}
	case req.SessionID != 0 && req.Name != "":
		joined, err := h.game.GameService.Join(ctx, model.JoinReq{SessionID: req.SessionID, Name: req.Name})
		if err != nil {
			h.error(ctx, wsResp, err)
			return
		}
		resp = joined
	default:
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}

	h.game.Session.Bind(session.Key{SessionID: resp.SessionID, PlayerID: resp.PlayerID}, wsReq.Conn)
	h.ok(wsResp, resp)
}

func (h *WsHandler) Board(ctx context.Context, scope ws.Scope, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	data, err := h.game.GameService.Board(ctx, caller(scope))
	if err != nil {
		h.error(ctx, wsResp, err)
		return
	}
	h.ok(wsResp, data)
}

func (h *WsHandler) DinnerTime(ctx context.Context, scope ws.Scope, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	cl := caller(scope)
	var req DinnerTimeReq
	if err := ws.BindMsg(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}

	var (
		data any
		err  error
	)
	svc := h.game.GameService
	switch req.Action {
	case "enable":
		data, err = svc.EnableDinnerTime(ctx, cl)
	case "start", "":
		data, err = svc.StartDinner(ctx, cl)
	case "cancel":
		data, err = svc.CancelDinner(ctx, cl)
	default:
		h.fail(wsResp, transport.InvalidParam, "未知的 action")
		return
	}
	if err != nil {
		h.error(ctx, wsResp, err)
		return
	}
	h.ok(wsResp, data)
}

func caller(scope ws.Scope) model.Caller {
	return model.Caller{SessionID: scope.SessionID, PlayerID: scope.PlayerID}
}

// ============ Response Helpers ============

func (h *WsHandler) ok(resp *ws.WsMsgResp, data any) {
	if resp == nil || resp.Body == nil {
		return
	}
	resp.Body.Code = transport.OK
	resp.Body.Msg = data
}

func (h *WsHandler) fail(resp *ws.WsMsgResp, code int, msg string) {
	if resp == nil || resp.Body == nil {
		return
	}
	resp.Body.Code = code
	if msg != "" {
		resp.Body.Msg = msg
	}
}

func (h *WsHandler) error(ctx context.Context, resp *ws.WsMsgResp, err error) {
	code, msg := handler.HandleError(ctx, err)
	h.fail(resp, code, msg)
}
