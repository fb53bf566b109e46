package messages

import "FoodChain/internal/shared/gameconfig/food"

// SessionMessage 由 manager 按会话 ID 转发给会话 actor。
type SessionMessage interface {
	SessionID() int64
	PlayerID() int
}

type SessionBaseMessage struct {
	SessionId int64
	PlayerId  int
}

func (m SessionBaseMessage) SessionID() int64 {
	return m.SessionId
}

func (m SessionBaseMessage) PlayerID() int {
	return m.PlayerId
}

// Reply 会话 actor 的统一回复，Err 为 errx 错误。
type Reply struct {
	Data any
	Err  error
}

// CreateSession 由 manager 直接处理：建棋盘、加入房主、启动会话 actor。
type CreateSession struct {
	Owner string
}

type CreateSessionReply struct {
	SessionId int64
	PlayerId  int
}

type StopSession struct {
	SessionBaseMessage
}

type JoinSession struct {
	SessionBaseMessage
	Name string
}

type JoinSessionReply struct {
	PlayerId int
}

type GetBoard struct {
	SessionBaseMessage
}

type BeginPlacement struct {
	SessionBaseMessage
	Kind     string
	Menu     []food.Kind
	Campaign string
	Food     food.Kind
}

type PreviewPlacement struct {
	SessionBaseMessage
	I, J int
}

type RotatePlacement struct {
	SessionBaseMessage
}

type CommitPlacement struct {
	SessionBaseMessage
	I, J int
}

type CancelPlacement struct {
	SessionBaseMessage
}

type AddStock struct {
	SessionBaseMessage
	Kind   food.Kind
	Amount int
}

type CollectDrinks struct {
	SessionBaseMessage
}

type AddDemand struct {
	SessionBaseMessage
	House int
	Kind  food.Kind
}

type RunMarketing struct {
	SessionBaseMessage
}

type EnableDinnerTime struct {
	SessionBaseMessage
}

type StartDinner struct {
	SessionBaseMessage
}

type CancelDinner struct {
	SessionBaseMessage
}
