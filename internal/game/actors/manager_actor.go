package actors

import (
	"FoodChain/internal/board/domain"
	"FoodChain/internal/delivery/narrate"
	"FoodChain/internal/game/entity"
	"FoodChain/internal/shared/actor/messages"
	"FoodChain/internal/shared/gameconfig/layout"
	"FoodChain/internal/shared/utils"
	"FoodChain/modules/kit/logx"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

type SessionID = entity.SessionID

// Deps 会话 actor 共享的依赖。Layout 和 IDs 必填，Narrator 为空时只写日志。
type Deps struct {
	Layout   *layout.Layout
	Rules    entity.Rules
	Narrator narrate.Narrator
	Pusher   narrate.Pusher
	IDs      *utils.Snowflake
	Log      logx.Logger
}

type ManagerActor struct {
	deps     Deps
	sessions map[SessionID]*actor.PID
}

func NewManagerActor(deps Deps) *ManagerActor {
	deps.Log = logx.OrNop(deps.Log)
	if deps.Narrator == nil {
		deps.Narrator = narrate.NewPlayer(narrate.NewLogSink(deps.Log))
	}
	return &ManagerActor{
		deps:     deps,
		sessions: make(map[SessionID]*actor.PID),
	}
}

func (m *ManagerActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Terminated:
		m.forget(msg.Who)
	case *messages.CreateSession:
		m.create(ctx, msg)
	case *messages.StopSession:
		pid, found := m.sessions[SessionID(msg.SessionId)]
		if !found {
			ctx.Respond(fail(entity.ErrSessionNotFound))
			return
		}
		ctx.Stop(pid)
		m.forget(pid)
		ctx.Respond(ok(nil))
	case messages.SessionMessage:
		if msg == nil {
			ctx.Respond(fail(errNilRequest))
			return
		}
		pid, found := m.sessions[SessionID(msg.SessionID())]
		if !found {
			ctx.Respond(fail(entity.ErrSessionNotFound.WithData("session_id", msg.SessionID())))
			return
		}
		ctx.Forward(pid)
	default:
		return
	}
}

func (m *ManagerActor) create(ctx actor.Context, msg *messages.CreateSession) {
	g, issues := domain.BuildGrid(m.deps.Layout, m.deps.Log)
	if len(issues) > 0 {
		m.deps.Log.Warn("layout decoded with issues", zap.Int("issues", len(issues)))
	}
	board := domain.NewBoard(g, m.deps.Rules.Board)

	id := SessionID(m.deps.IDs.NextID())
	s := entity.NewSession(id, board, m.deps.Rules, m.deps.Log)
	owner, err := s.Join(msg.Owner)
	if err != nil {
		ctx.Respond(fail(err))
		return
	}

	deps := m.deps
	props := actor.PropsFromProducer(func() actor.Actor {
		return NewSessionActor(s, deps)
	})
	pid := ctx.Spawn(props)
	m.sessions[id] = pid

	m.deps.Log.Info("session created",
		zap.Int64("session_id", int64(id)),
		zap.String("owner", msg.Owner))
	ctx.Respond(ok(messages.CreateSessionReply{SessionId: int64(id), PlayerId: int(owner.ID())}))
}

func (m *ManagerActor) forget(pid *actor.PID) {
	if pid == nil {
		return
	}
	for id, p := range m.sessions {
		if p.Id == pid.Id && p.Address == pid.Address {
			delete(m.sessions, id)
			return
		}
	}
}
