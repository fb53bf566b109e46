package service

import (
	"context"
	"slices"

	"FoodChain/internal/board/domain"
	"FoodChain/internal/player/entity"
	"FoodChain/internal/shared/gameconfig/food"
	"FoodChain/modules/kit/logx"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Delivery 已完成结算的一次配送，等待播报。
type Delivery struct {
	ID      string
	Route   Route
	Receipt Receipt
}

type unit struct {
	house *domain.House
	kind  food.Kind
}

// Round 一轮晚餐配送。开始时按房屋编号快照所有待满足需求，每份需求单独配送。
type Round struct {
	board   *domain.Board
	players *entity.Roster
	reward  int
	log     logx.Logger

	units   []unit
	next    int
	done    int
	skipped int
}

func NewRound(b *domain.Board, players *entity.Roster, reward int, log logx.Logger) *Round {
	r := &Round{board: b, players: players, reward: reward, log: logx.OrNop(log)}
	for _, h := range b.HousesWithDemand() {
		for _, k := range h.Demand {
			r.units = append(r.units, unit{house: h, kind: k})
		}
	}
	return r
}

// Next 结算下一份能送达的需求。找不到餐厅的需求记业务日志后跳过，留在房屋队列里。
// 全部处理完返回 false。
func (r *Round) Next(ctx context.Context) (Delivery, bool) {
	for r.next < len(r.units) {
		u := r.units[r.next]
		r.next++

		fields := []zap.Field{zap.Int("house", u.house.Number), zap.String("kind", u.kind.String())}
		if !slices.Contains(u.house.Demand, u.kind) {
			r.skip(ctx, reasonSatisfied, "", fields)
			continue
		}
		rt, ok := ChooseDiner(r.board, r.players, u.house, u.kind)
		if !ok {
			r.skip(ctx, reasonNoDiner, "", fields)
			continue
		}
		receipt, err := FeedHouse(rt, r.players, r.reward)
		if err != nil {
			r.skip(ctx, reasonFeedFail, err.Error(), append(fields, zap.Int("diner", rt.Diner.ID)))
			continue
		}
		r.done++
		return Delivery{ID: uuid.NewString(), Route: rt, Receipt: receipt}, true
	}
	return Delivery{}, false
}

func (r *Round) skip(ctx context.Context, reason, msg string, fields []zap.Field) {
	r.skipped++
	logx.ReportBiz(ctx, r.log, logx.NewBizLog("delivery.skip", reason, msg), fields...)
}

// Remaining 尚未处理的需求份数。
func (r *Round) Remaining() int {
	return len(r.units) - r.next
}

func (r *Round) Total() int   { return len(r.units) }
func (r *Round) Done() int    { return r.done }
func (r *Round) Skipped() int { return r.skipped }
