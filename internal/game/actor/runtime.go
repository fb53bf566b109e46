package actor

import (
	"context"
	"errors"
	"time"

	"FoodChain/internal/game/actors"
	"FoodChain/internal/shared/actor/messages"
	"FoodChain/modules/kit/errx"

	protoactor "github.com/asynkron/protoactor-go/actor"
)

const defaultAskTimeout = 3 * time.Second

type Runtime struct {
	system  *protoactor.ActorSystem
	root    *protoactor.RootContext
	manager *protoactor.PID
	timeout time.Duration
}

func NewRuntime(deps actors.Deps, askTimeout time.Duration) *Runtime {
	if askTimeout <= 0 {
		askTimeout = defaultAskTimeout
	}

	system := protoactor.NewActorSystem()
	root := system.Root
	managerProps := protoactor.PropsFromProducer(func() protoactor.Actor {
		return actors.NewManagerActor(deps)
	})
	manager := root.Spawn(managerProps)

	return &Runtime{
		system:  system,
		root:    root,
		manager: manager,
		timeout: askTimeout,
	}
}

func (r *Runtime) Shutdown() {
	if r == nil {
		return
	}
	if r.root != nil && r.manager != nil {
		_ = r.root.StopFuture(r.manager).Wait()
	}
	if r.system != nil {
		r.system.Shutdown()
	}
}

// Ask 发给 manager，由它转发到对应会话，返回会话 actor 回复里的数据。
func (r *Runtime) Ask(ctx context.Context, msg any) (any, error) {
	res, err := r.request(r.manager, msg, r.timeoutFromContext(ctx))
	if err != nil {
		return nil, err
	}
	reply, ok := res.(messages.Reply)
	if !ok {
		return nil, errx.ErrInternal.WithMsgf("unexpected actor reply %T", res)
	}
	if reply.Err != nil {
		return nil, reply.Err
	}
	return reply.Data, nil
}

func (r *Runtime) CreateSession(ctx context.Context, owner string) (messages.CreateSessionReply, error) {
	data, err := r.Ask(ctx, &messages.CreateSession{Owner: owner})
	if err != nil {
		return messages.CreateSessionReply{}, err
	}
	reply, ok := data.(messages.CreateSessionReply)
	if !ok {
		return messages.CreateSessionReply{}, errx.ErrInternal.WithMsgf("unexpected create reply %T", data)
	}
	return reply, nil
}

func (r *Runtime) request(pid *protoactor.PID, msg any, timeout time.Duration) (any, error) {
	if r == nil || r.root == nil {
		return nil, errx.ErrUnavailable.WithMsg("actor runtime 未初始化")
	}
	if pid == nil {
		return nil, errx.ErrInternal.WithMsg("actor pid 为空")
	}

	future := r.root.RequestFuture(pid, msg, timeout)
	res, err := future.Result()
	if err != nil {
		if errors.Is(err, protoactor.ErrTimeout) {
			return nil, errx.ErrTimeout.WithCause(err)
		}
		return nil, errx.ErrInternal.WithMsg("actor 请求失败").WithCause(err)
	}
	return res, nil
}

func (r *Runtime) timeoutFromContext(ctx context.Context) time.Duration {
	if r == nil || r.timeout <= 0 {
		return defaultAskTimeout
	}
	if ctx == nil {
		return r.timeout
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		return r.timeout
	}
	remain := time.Until(deadline)
	if remain <= 0 {
		return time.Millisecond
	}
	if remain < r.timeout {
		return remain
	}
	return r.timeout
}
