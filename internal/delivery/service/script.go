package service

import (
	"fmt"
	"time"

	"FoodChain/internal/board/domain"
)

type StepKind uint8

const (
	StepPause StepKind = iota + 1
	StepMove
	StepCash
)

func (k StepKind) String() string {
	switch k {
	case StepPause:
		return "pause"
	case StepMove:
		return "move"
	case StepCash:
		return "cash"
	}
	return fmt.Sprintf("step(%d)", uint8(k))
}

func (k StepKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Timings 播报节奏，以帧计。Tick 为一帧的时长。
type Timings struct {
	Tick       time.Duration
	FirstPause int
	Step       int
	TurnPause  int
	FinalPause int
	ShortPause int
}

func DefaultTimings() Timings {
	return Timings{
		Tick:       time.Second / 60,
		FirstPause: 200,
		Step:       20,
		TurnPause:  100,
		FinalPause: 100,
		ShortPause: 200,
	}
}

type Cell struct {
	I     int `json:"i"`
	J     int `json:"j"`
	Layer int `json:"layer"`
}

func cellOf(r *domain.Road) Cell {
	return Cell{I: r.I, J: r.J, Layer: r.Layer}
}

// Step 播报的一步。Move 表示从上一步所在格子开到 At。
type Step struct {
	Kind   StepKind      `json:"kind"`
	At     Cell          `json:"at"`
	Ticks  int           `json:"ticks"`
	Wait   time.Duration `json:"-"`
	Amount int           `json:"amount,omitempty"`
}

// Script 只读的配送播报脚本，不引用棋盘状态。
type Script struct {
	DeliveryID string  `json:"delivery_id"`
	Steps      []Step  `json:"steps"`
	Receipt    Receipt `json:"receipt"`
}

func (s Script) Duration() time.Duration {
	var d time.Duration
	for _, st := range s.Steps {
		d += st.Wait
	}
	return d
}

// BuildScript 去程：首格停顿、沿路前进、结算、末格停顿；回程：倒序前进、首格停顿。
// 只有一格路时停顿、结算、再停顿；餐厅挨着房屋时脚本为空。
func BuildScript(d Delivery, t Timings) Script {
	s := Script{DeliveryID: d.ID, Receipt: d.Receipt}
	roads := d.Route.Roads
	if len(roads) == 0 {
		return s
	}

	add := func(kind StepKind, r *domain.Road, ticks int) {
		s.Steps = append(s.Steps, Step{Kind: kind, At: cellOf(r), Ticks: ticks, Wait: time.Duration(ticks) * t.Tick})
	}
	cash := func(r *domain.Road) {
		s.Steps = append(s.Steps, Step{Kind: StepCash, At: cellOf(r), Amount: d.Receipt.Reward})
	}

	first, last := roads[0], roads[len(roads)-1]
	if len(roads) == 1 {
		add(StepPause, first, t.ShortPause)
		cash(first)
		add(StepPause, first, t.ShortPause)
		return s
	}

	add(StepPause, first, t.FirstPause)
	for _, r := range roads[1:] {
		add(StepMove, r, t.Step)
	}
	cash(last)
	add(StepPause, last, t.TurnPause)
	for k := len(roads) - 2; k >= 0; k-- {
		add(StepMove, roads[k], t.Step)
	}
	add(StepPause, first, t.FinalPause)
	return s
}
