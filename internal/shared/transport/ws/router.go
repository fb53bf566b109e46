package ws

import (
	"context"
	"strings"

	"FoodChain/internal/shared/logs"
	"FoodChain/internal/shared/transport"
	"FoodChain/modules/kit/logx"
)

// Registrar 业务模块向 WS 路由注册处理器。
type Registrar interface {
	WsRegister(r *Router)
}

type HandlerFunc func(ctx context.Context, req *WsMsgReq, resp *WsMsgResp)

// ScopedHandlerFunc 只在连接已绑定会话时被调用。
type ScopedHandlerFunc func(ctx context.Context, scope Scope, req *WsMsgReq, resp *WsMsgResp)

type route struct {
	open   HandlerFunc
	scoped ScopedHandlerFunc
}

type Group struct {
	routes map[string]route
}

// Handle 注册不需要会话的路由，比如 session.join。
func (g *Group) Handle(name string, h HandlerFunc) {
	g.routes[name] = route{open: h}
}

// HandleScoped 注册会话内的路由，未 join 的连接直接回 Unauthorized。
func (g *Group) HandleScoped(name string, h ScopedHandlerFunc) {
	g.routes[name] = route{scoped: h}
}

type Router struct {
	groups map[string]*Group
	log    logx.Logger
}

func NewRouter(l logx.Logger) *Router {
	if l == nil {
		l = logx.NewZapLogger(logs.Logger())
	}
	return &Router{groups: make(map[string]*Group), log: l}
}

func (r *Router) Group(prefix string) *Group {
	if g, ok := r.groups[prefix]; ok {
		return g
	}
	g := &Group{routes: make(map[string]route)}
	r.groups[prefix] = g
	return g
}

func (r *Router) Register(modules ...Registrar) {
	for _, m := range modules {
		m.WsRegister(r)
	}
}

// Dispatch 按 Body.Name（分组.路由，例如 dinner.time）分发。
// 响应码先置为系统错误，handler 忘记设置时不会被当成成功。
func (r *Router) Dispatch(req *WsMsgReq, resp *WsMsgResp) {
	if resp == nil || resp.Body == nil {
		return
	}
	name := "unknown"
	if req != nil && req.Body != nil {
		name = req.Body.Name
	}
	ctx := transport.NewContext("WS " + name)
	defer func() {
		transport.SetBizCode(ctx, transport.BizCode(resp.Body.Code))
		transport.WriteAccessLog(ctx, r.log)
	}()

	resp.Body.Code = transport.SystemError
	resp.Body.Msg = nil
	if req == nil || req.Body == nil {
		reject(resp, transport.InvalidParam, "参数有误")
		return
	}

	rt, ok := r.lookup(name)
	if !ok {
		reject(resp, transport.InvalidParam, "路由不存在")
		return
	}

	scope, bound := ScopeOf(req.Conn)
	if bound {
		transport.SetCaller(ctx, scope.SessionID, scope.PlayerID)
	}
	if rt.scoped == nil {
		rt.open(ctx, req, resp)
		return
	}
	if !bound {
		reject(resp, transport.Unauthorized, "请先加入会话")
		return
	}
	rt.scoped(ctx, scope, req, resp)
}

func (r *Router) lookup(name string) (route, bool) {
	prefix, handler, ok := strings.Cut(name, ".")
	if !ok || prefix == "" || handler == "" || strings.Contains(handler, ".") {
		return route{}, false
	}
	g, ok := r.groups[prefix]
	if !ok {
		return route{}, false
	}
	rt, ok := g.routes[handler]
	return rt, ok
}

func reject(resp *WsMsgResp, code int, msg string) {
	resp.Body.Code = code
	resp.Body.Msg = msg
}
