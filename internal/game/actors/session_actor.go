package actors

import (
	"context"
	"errors"

	"FoodChain/internal/delivery/narrate"
	"FoodChain/internal/delivery/service"
	"FoodChain/internal/game/entity"
	"FoodChain/internal/shared/actor/messages"
	"FoodChain/modules/kit/logx"
	"FoodChain/modules/kit/tracex"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

type State int

const (
	None State = iota
	Online
	Offline
	Stopping
)

// 晚餐推送的事件名，和配送讲述事件一起发给会话里的所有连接。
const (
	EventDinnerStart = "dinner.start"
	EventDinnerEnd   = "dinner.end"
)

// SessionActor 独占一局游戏的状态。晚餐时段一次只讲述一条配送，
// 讲述结束的通知回到邮箱后再结算下一条，期间其他请求照常处理。
type SessionActor struct {
	state      State
	session    *entity.Session
	deps       Deps
	dispatcher *Dispatcher

	gen      int
	roundCtx context.Context
	cancel   context.CancelFunc
}

// narrationDone 讲述 goroutine 结束后发回给自己。gen 过期说明这一轮已经结束。
type narrationDone struct {
	gen        int
	deliveryID string
	err        error
}

func NewSessionActor(s *entity.Session, deps Deps) *SessionActor {
	return &SessionActor{
		state:      None,
		session:    s,
		deps:       deps,
		dispatcher: NewDispatcher(),
	}
}

func (a *SessionActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		a.state = Online
		return
	case *actor.Stopping:
		a.stopNarration()
		if a.session.InFlight() {
			_, _ = a.finishRound()
		}
		a.state = Stopping
		return
	case *actor.Stopped:
		a.state = Offline
		return
	case *actor.Restarting:
		// 重启后的新实例拿不到这一轮的上下文，这里先把它结束掉
		a.stopNarration()
		if a.session.InFlight() {
			_, _ = a.finishRound()
		}
		a.state = None
		return
	case narrationDone:
		a.onNarrationDone(ctx, msg)
		return
	case messages.SessionMessage:
		if msg == nil {
			ctx.Respond(fail(errNilRequest))
			return
		}
		if a.state != Online {
			ctx.Respond(fail(errSessionOffline))
			return
		}
		a.dispatcher.Dispatch(ctx, a, msg)
	default:
		return
	}
}

func (a *SessionActor) Session() *entity.Session {
	return a.session
}

func (a *SessionActor) startRound() (entity.RoundInfo, error) {
	rctx, _ := tracex.Ensure(context.Background())
	info, err := a.session.StartRound(rctx)
	if err != nil {
		return info, err
	}
	a.roundCtx = rctx
	a.push(EventDinnerStart, info)
	return info, nil
}

// advance 结算下一条配送并开始讲述；没有可配送的需求时结束这一轮。
func (a *SessionActor) advance(ctx actor.Context) {
	if !a.session.InFlight() {
		return
	}
	d, ok := a.session.NextDelivery(a.roundCtx)
	if !ok {
		_, _ = a.finishRound()
		return
	}

	script := service.BuildScript(d, a.session.Rules().Timings)
	n := narrate.Narration{SessionID: int64(a.session.ID()), Script: script}
	nctx, cancel := context.WithCancel(a.roundCtx)
	a.cancel = cancel

	gen := a.gen
	self := ctx.Self()
	root := ctx.ActorSystem().Root
	narrator := a.deps.Narrator
	go func() {
		err := narrator.Narrate(nctx, n)
		root.Send(self, narrationDone{gen: gen, deliveryID: d.ID, err: err})
	}()
}

func (a *SessionActor) onNarrationDone(ctx actor.Context, msg narrationDone) {
	if msg.gen != a.gen || a.roundCtx == nil || !a.session.InFlight() {
		return
	}
	a.stopNarration()
	if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
		// 讲述只是展示，失败不影响已经生效的结算
		a.log().WithContext(a.roundCtx).Warn("delivery narration failed",
			zap.Int64("session_id", int64(a.session.ID())),
			zap.String("delivery_id", msg.deliveryID),
			zap.Error(msg.err))
	}
	a.advance(ctx)
}

func (a *SessionActor) finishRound() (entity.RoundSummary, error) {
	rctx := a.roundCtx
	if rctx == nil {
		rctx = context.Background()
	}
	sum, err := a.session.FinishRound(rctx)
	if err != nil {
		return sum, err
	}
	a.gen++
	a.stopNarration()
	a.roundCtx = nil
	a.push(EventDinnerEnd, sum)
	return sum, nil
}

func (a *SessionActor) stopNarration() {
	if a.cancel == nil {
		return
	}
	a.cancel()
	a.cancel = nil
}

func (a *SessionActor) push(name string, data any) {
	if a.deps.Pusher == nil {
		return
	}
	a.deps.Pusher.PushSession(int64(a.session.ID()), name, data)
}

func (a *SessionActor) log() logx.Logger {
	return logx.OrNop(a.deps.Log)
}
