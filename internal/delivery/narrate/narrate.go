package narrate

import (
	"context"
	"time"

	"FoodChain/internal/delivery/service"
)

// 推给客户端的事件名。
const (
	EventStart = "delivery.start"
	EventStep  = "delivery.step"
	EventEnd   = "delivery.end"
)

type Event struct {
	Name       string           `json:"name"`
	SessionID  int64            `json:"session_id,string"`
	DeliveryID string           `json:"delivery_id"`
	Index      int              `json:"index"`
	Step       *service.Step    `json:"step,omitempty"`
	Receipt    *service.Receipt `json:"receipt,omitempty"`
	Total      int              `json:"total,omitempty"`
}

// Sink 接收播报事件。
type Sink interface {
	Emit(ctx context.Context, ev Event) error
}

type SinkFunc func(ctx context.Context, ev Event) error

func (f SinkFunc) Emit(ctx context.Context, ev Event) error {
	return f(ctx, ev)
}

// Multi 依次发给每个 sink，出错的 sink 不影响后面的。返回第一个错误。
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(ctx context.Context, ev Event) error {
		var first error
		for _, s := range sinks {
			if s == nil {
				continue
			}
			if err := s.Emit(ctx, ev); err != nil && first == nil {
				first = err
			}
		}
		return first
	})
}

type Narration struct {
	SessionID int64
	Script    service.Script
}

type Narrator interface {
	Narrate(ctx context.Context, n Narration) error
}

// Player 按脚本节奏把事件发给 sink。
type Player struct {
	sink  Sink
	sleep func(ctx context.Context, d time.Duration) error
}

func NewPlayer(sink Sink) *Player {
	return &Player{sink: sink, sleep: sleepCtx}
}

func (p *Player) Narrate(ctx context.Context, n Narration) error {
	return play(ctx, n, p.sink, p.sleep)
}

// Play 逐步发出事件并等待每步时长，ctx 取消时立即返回 ctx.Err()，不再发 end。
func Play(ctx context.Context, n Narration, sink Sink) error {
	return play(ctx, n, sink, sleepCtx)
}

func play(ctx context.Context, n Narration, sink Sink, sleep func(context.Context, time.Duration) error) error {
	s := n.Script
	base := Event{SessionID: n.SessionID, DeliveryID: s.DeliveryID}

	start := base
	start.Name = EventStart
	start.Total = len(s.Steps)
	if err := emit(ctx, sink, start); err != nil {
		return err
	}
	for idx := range s.Steps {
		ev := base
		ev.Name = EventStep
		ev.Index = idx
		ev.Step = &s.Steps[idx]
		if err := emit(ctx, sink, ev); err != nil {
			return err
		}
		if err := sleep(ctx, s.Steps[idx].Wait); err != nil {
			return err
		}
	}
	end := base
	end.Name = EventEnd
	end.Receipt = &s.Receipt
	return emit(ctx, sink, end)
}

func emit(ctx context.Context, sink Sink, ev Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sink == nil {
		return nil
	}
	return sink.Emit(ctx, ev)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
