package actors

import (
	"reflect"

	"FoodChain/internal/shared/actor/messages"

	"github.com/asynkron/protoactor-go/actor"
)

type Dispatcher struct {
	handlers map[reflect.Type]Handler
}

type Handler struct {
	fn      reflect.Value
	reqType reflect.Type
}

func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[reflect.Type]Handler),
	}
	d.registerAll()
	return d
}

func (d *Dispatcher) registerAll() {
	register(d, SH.HandleJoin)
	register(d, SH.HandleGetBoard)
	register(d, SH.HandleBeginPlacement)
	register(d, SH.HandlePreviewPlacement)
	register(d, SH.HandleRotatePlacement)
	register(d, SH.HandleCommitPlacement)
	register(d, SH.HandleCancelPlacement)
	register(d, SH.HandleAddStock)
	register(d, SH.HandleCollectDrinks)
	register(d, SH.HandleAddDemand)
	register(d, SH.HandleRunMarketing)
	register(d, SH.HandleEnableDinnerTime)
	register(d, SH.HandleStartDinner)
	register(d, SH.HandleCancelDinner)
}

func register[Req any](
	d *Dispatcher,
	fn func(ctx actor.Context, a *SessionActor, req Req),
) {
	reqType := reflect.TypeOf((*Req)(nil)).Elem()
	if reqType == nil {
		panic("dispatcher req type cannot be nil")
	}

	d.handlers[reqType] = Handler{
		fn:      reflect.ValueOf(fn),
		reqType: reqType,
	}
}

func (d *Dispatcher) Dispatch(ctx actor.Context, a *SessionActor, req messages.SessionMessage) {
	if req == nil {
		ctx.Respond(fail(errNilRequest))
		return
	}

	bodyType := reflect.TypeOf(req)
	handler, ok := d.handlers[bodyType]
	if !ok {
		ctx.Respond(fail(errNoHandler.WithData("type", bodyType.String())))
		return
	}

	handler.fn.Call([]reflect.Value{
		reflect.ValueOf(ctx),
		reflect.ValueOf(a),
		reflect.ValueOf(req),
	})
}
