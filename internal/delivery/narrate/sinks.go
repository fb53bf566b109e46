package narrate

import (
	"context"

	"FoodChain/modules/kit/logx"

	"go.uber.org/zap"
)

// LogSink 把事件写成 debug 日志，start/end 用 info。
type LogSink struct {
	log logx.Logger
}

func NewLogSink(log logx.Logger) *LogSink {
	return &LogSink{log: logx.OrNop(log)}
}

func (s *LogSink) Emit(ctx context.Context, ev Event) error {
	fields := []zap.Field{
		zap.Int64("session_id", ev.SessionID),
		zap.String("delivery_id", ev.DeliveryID),
	}
	l := s.log.WithContext(ctx)
	switch ev.Name {
	case EventStep:
		st := ev.Step
		l.Debug(ev.Name, append(fields,
			zap.Int("index", ev.Index),
			zap.String("kind", st.Kind.String()),
			zap.Int("i", st.At.I), zap.Int("j", st.At.J), zap.Int("layer", st.At.Layer),
			zap.Int("ticks", st.Ticks))...)
	case EventEnd:
		l.Info(ev.Name, append(fields,
			zap.Int("house", ev.Receipt.House),
			zap.Int("owner", int(ev.Receipt.Owner)),
			zap.Int("reward", ev.Receipt.Reward))...)
	default:
		l.Info(ev.Name, append(fields, zap.Int("steps", ev.Total))...)
	}
	return nil
}

// Pusher 按会话推送消息给所有已绑定的连接，返回推送到的连接数。
type Pusher interface {
	PushSession(sessionID int64, name string, data any) int
}

// PushSink 通过 WebSocket 推给会话里的所有玩家。没有连接时静默丢弃。
type PushSink struct {
	pusher Pusher
}

func NewPushSink(p Pusher) *PushSink {
	return &PushSink{pusher: p}
}

func (s *PushSink) Emit(_ context.Context, ev Event) error {
	if s.pusher == nil {
		return nil
	}
	s.pusher.PushSession(ev.SessionID, ev.Name, ev)
	return nil
}
