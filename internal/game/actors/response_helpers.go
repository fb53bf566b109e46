package actors

import (
	"FoodChain/internal/shared/actor/messages"
	"FoodChain/modules/kit/errx"
)

var (
	errNilRequest     = errx.ErrInvalidArgument.WithMsg("nil request")
	errNoHandler      = errx.ErrInternal.WithMsg("no handler for request body")
	errSessionOffline = errx.ErrUnavailable.WithMsg("session not online")
)

func ok(data any) messages.Reply {
	return messages.Reply{Data: data}
}

func fail(err error) messages.Reply {
	return messages.Reply{Err: err}
}
