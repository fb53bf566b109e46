package service

import (
	"context"
	"testing"
	"time"

	"FoodChain/internal/board/domain"
	"FoodChain/internal/player/entity"
	"FoodChain/internal/shared/gameconfig/food"
	"FoodChain/internal/shared/gameconfig/layout"
	"FoodChain/modules/kit/logx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// 一条东西向道路；1 号房屋在路南，2 号房屋孤立在左下角。
const strip = `
chunk_width: 8
chunk_height: 7
chunks_wide: 1
chunks:
  - - [b, e, e, e, e, e, c, e]
    - [r3, r13, r13, r13, r13, r13, r13, r1]
    - [e, e, e, h2-1, e, e, e, e]
    - [e, e, e, e, e, e, e, e]
    - [e, e, e, e, e, e, e, e]
    - [h2-2, e, e, e, e, e, e, e]
    - [e, e, e, e, e, e, e, e]
`

type fixture struct {
	board   *domain.Board
	players *entity.Roster
	alice   *entity.Player
	bob     *entity.Player
}

func newFixture(t *testing.T, src string) *fixture {
	t.Helper()
	var (
		l   *layout.Layout
		err error
	)
	if src == "" {
		l, err = layout.Default()
	} else {
		l, err = layout.Parse([]byte(src))
	}
	require.NoError(t, err)
	g, issues := domain.BuildGrid(l, nil)
	require.Empty(t, issues)

	f := &fixture{board: domain.NewBoard(g, domain.Rules{}), players: entity.NewRoster(0)}
	f.alice, _ = f.players.Join("alice", 0)
	f.bob, _ = f.players.Join("bob", 0)
	return f
}

func (f *fixture) diner(t *testing.T, owner *entity.Player, i, j int, menu ...food.Kind) *domain.Diner {
	t.Helper()
	p, err := domain.NewDinerPlacement(int(owner.ID()), menu, f.board.Rules())
	require.NoError(t, err)
	it, err := f.board.Commit(p, i, j)
	require.NoError(t, err)
	d, ok := f.board.Diner(it.ID)
	require.True(t, ok)
	return d
}

func (f *fixture) house(t *testing.T, number int, demand ...food.Kind) *domain.House {
	t.Helper()
	h, ok := f.board.House(number)
	require.True(t, ok)
	for _, k := range demand {
		require.True(t, h.AddDemand(k))
	}
	return h
}

func TestChooseDiner_等长取ID小的(t *testing.T) {
	f := newFixture(t, strip)
	left := f.diner(t, f.alice, 0, 2, food.Burger)
	f.diner(t, f.bob, 6, 2, food.Burger)
	require.NoError(t, f.alice.AddStock(food.Burger, 1))
	require.NoError(t, f.bob.AddStock(food.Burger, 1))
	h := f.house(t, 1, food.Burger)

	rt, ok := ChooseDiner(f.board, f.players, h, food.Burger)
	require.True(t, ok)
	assert.Equal(t, left.ID, rt.Diner.ID)
	assert.Equal(t, 3, rt.Len())

	// 先放右边的，右边 ID 更小
	f = newFixture(t, strip)
	right := f.diner(t, f.bob, 6, 2, food.Burger)
	f.diner(t, f.alice, 0, 2, food.Burger)
	require.NoError(t, f.alice.AddStock(food.Burger, 1))
	require.NoError(t, f.bob.AddStock(food.Burger, 1))
	h = f.house(t, 1, food.Burger)
	rt, ok = ChooseDiner(f.board, f.players, h, food.Burger)
	require.True(t, ok)
	assert.Equal(t, right.ID, rt.Diner.ID)
}

func TestChooseDiner_挨着房屋路长为零(t *testing.T) {
	f := newFixture(t, strip)
	f.diner(t, f.alice, 0, 2, food.Pizza)
	near := f.diner(t, f.bob, 5, 2, food.Pizza)
	require.NoError(t, f.alice.AddStock(food.Pizza, 1))
	require.NoError(t, f.bob.AddStock(food.Pizza, 1))
	h := f.house(t, 1, food.Pizza)

	rt, ok := ChooseDiner(f.board, f.players, h, food.Pizza)
	require.True(t, ok)
	assert.Equal(t, near.ID, rt.Diner.ID)
	assert.Zero(t, rt.Len())
}

func TestChooseDiner_过滤菜单与库存(t *testing.T) {
	f := newFixture(t, strip)
	f.diner(t, f.alice, 0, 2, food.Burger)
	f.diner(t, f.bob, 6, 2, food.Pizza)
	require.NoError(t, f.alice.AddStock(food.Pizza, 5))
	h := f.house(t, 1, food.Pizza)

	// alice 有库存但菜单没有披萨，bob 菜单有但没库存
	_, ok := ChooseDiner(f.board, f.players, h, food.Pizza)
	assert.False(t, ok)

	require.NoError(t, f.bob.AddStock(food.Pizza, 1))
	rt, ok := ChooseDiner(f.board, f.players, h, food.Pizza)
	require.True(t, ok)
	assert.Equal(t, int(f.bob.ID()), rt.Diner.Owner)
}

func TestChooseDiner_内置布局走立交(t *testing.T) {
	f := newFixture(t, "")
	d := f.diner(t, f.alice, 3, 18, food.Burger)
	require.NoError(t, f.alice.AddStock(food.Burger, 1))
	h := f.house(t, 12, food.Burger)

	rt, ok := ChooseDiner(f.board, f.players, h, food.Burger)
	require.True(t, ok)
	assert.Equal(t, d.ID, rt.Diner.ID)
	require.Len(t, rt.Roads, 3)
	assert.Equal(t, 1, rt.Roads[1].Layer)

	// 更近的餐厅只要两格路
	f.diner(t, f.bob, 3, 13, food.Burger)
	require.NoError(t, f.bob.AddStock(food.Burger, 1))
	rt, ok = ChooseDiner(f.board, f.players, h, food.Burger)
	require.True(t, ok)
	assert.Equal(t, 2, rt.Len())
	assert.Equal(t, int(f.bob.ID()), rt.Diner.Owner)
}

func TestFeedHouse_结算(t *testing.T) {
	f := newFixture(t, strip)
	f.diner(t, f.alice, 0, 2, food.Burger)
	require.NoError(t, f.alice.AddStock(food.Burger, 2))
	h := f.house(t, 1, food.Burger, food.Cola)

	rt, ok := ChooseDiner(f.board, f.players, h, food.Burger)
	require.True(t, ok)
	rc, err := FeedHouse(rt, f.players, 10)
	require.NoError(t, err)

	assert.Equal(t, Receipt{House: 1, Diner: rt.Diner.ID, Owner: f.alice.ID(), Kind: food.Burger, Reward: 10, Cash: 10, Roads: 3}, rc)
	assert.Equal(t, 1, f.alice.Stock(food.Burger))
	assert.Equal(t, []food.Kind{food.Cola}, h.Demand)
}

func TestFeedHouse_失败不改状态(t *testing.T) {
	f := newFixture(t, strip)
	f.diner(t, f.alice, 0, 2, food.Burger)
	require.NoError(t, f.alice.AddStock(food.Burger, 1))
	h := f.house(t, 1, food.Burger)
	rt, ok := ChooseDiner(f.board, f.players, h, food.Burger)
	require.True(t, ok)

	require.NoError(t, f.alice.Consume(food.Burger))
	_, err := FeedHouse(rt, f.players, 10)
	assert.ErrorIs(t, err, entity.ErrOutOfStock)
	assert.Equal(t, []food.Kind{food.Burger}, h.Demand)
	assert.Zero(t, f.alice.Cash())
	assert.Zero(t, f.alice.Stock(food.Burger))

	h.TakeDemand(food.Burger)
	require.NoError(t, f.alice.AddStock(food.Burger, 1))
	_, err = FeedHouse(rt, f.players, 10)
	assert.ErrorIs(t, err, ErrNoDemand)
	assert.Equal(t, 1, f.alice.Stock(food.Burger))
}

func TestRound_每份需求单独配送并跳过送不到的(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logx.NewZapLogger(zap.New(core))

	f := newFixture(t, strip)
	f.diner(t, f.alice, 0, 2, food.Burger, food.Pizza)
	require.NoError(t, f.alice.AddStock(food.Burger, 5))
	require.NoError(t, f.alice.AddStock(food.Pizza, 1))
	h1 := f.house(t, 1, food.Burger, food.Pizza, food.Burger)
	h2 := f.house(t, 2, food.Burger)

	r := NewRound(f.board, f.players, 10, log)
	assert.Equal(t, 4, r.Total())

	var got []Delivery
	for {
		d, ok := r.Next(context.Background())
		if !ok {
			break
		}
		got = append(got, d)
	}
	require.Len(t, got, 3)
	assert.NotEqual(t, got[0].ID, got[1].ID)
	assert.Equal(t, []food.Kind{food.Burger, food.Pizza, food.Burger},
		[]food.Kind{got[0].Route.Kind, got[1].Route.Kind, got[2].Route.Kind})

	assert.Empty(t, h1.Demand)
	assert.Equal(t, []food.Kind{food.Burger}, h2.Demand)
	assert.Equal(t, 30, f.alice.Cash())
	assert.Equal(t, 3, f.alice.Stock(food.Burger))
	assert.Equal(t, 1, r.Skipped())
	assert.Zero(t, r.Remaining())

	skips := logs.FilterField(zap.String("reason", reasonNoDiner)).All()
	require.Len(t, skips, 1)
	assert.Equal(t, int64(2), skips[0].ContextMap()["house"])
}

func TestRound_无需求(t *testing.T) {
	f := newFixture(t, strip)
	r := NewRound(f.board, f.players, 10, nil)
	_, ok := r.Next(context.Background())
	assert.False(t, ok)
}

func TestBuildScript(t *testing.T) {
	f := newFixture(t, strip)
	f.diner(t, f.alice, 0, 2, food.Burger)
	require.NoError(t, f.alice.AddStock(food.Burger, 1))
	h := f.house(t, 1, food.Burger)
	rt, _ := ChooseDiner(f.board, f.players, h, food.Burger)
	rc, err := FeedHouse(rt, f.players, 10)
	require.NoError(t, err)

	tm := DefaultTimings()
	s := BuildScript(Delivery{ID: "d1", Route: rt, Receipt: rc}, tm)
	kinds := make([]StepKind, 0, len(s.Steps))
	for _, st := range s.Steps {
		kinds = append(kinds, st.Kind)
	}
	assert.Equal(t, []StepKind{StepPause, StepMove, StepMove, StepCash, StepPause, StepMove, StepMove, StepPause}, kinds)
	assert.Equal(t, Cell{I: 3, J: 1}, s.Steps[0].At)
	assert.Equal(t, Cell{I: 1, J: 1}, s.Steps[3].At)
	assert.Equal(t, 10, s.Steps[3].Amount)
	assert.Equal(t, Cell{I: 3, J: 1}, s.Steps[7].At)
	assert.Equal(t, 480*tm.Tick, s.Duration())

	one := BuildScript(Delivery{Route: Route{Roads: rt.Roads[:1]}}, tm)
	require.Len(t, one.Steps, 3)
	assert.Equal(t, StepCash, one.Steps[1].Kind)
	assert.Equal(t, 400*tm.Tick, one.Duration())

	assert.Empty(t, BuildScript(Delivery{}, tm).Steps)
}

func TestDefaultTimings(t *testing.T) {
	assert.Equal(t, time.Second/60, DefaultTimings().Tick)
}

func TestRunMarketing_受容量限制(t *testing.T) {
	f := newFixture(t, strip)
	p, err := domain.NewMarketingPlacement(int(f.alice.ID()), domain.Mailbox, food.Beer)
	require.NoError(t, err)
	_, err = f.board.Commit(p, 3, 0)
	require.NoError(t, err)

	added := RunMarketing(f.board)
	require.Len(t, added, 1)
	assert.Equal(t, DemandAdded{House: 1, Kind: food.Beer, Marketing: added[0].Marketing}, added[0])

	RunMarketing(f.board)
	RunMarketing(f.board)
	assert.Empty(t, RunMarketing(f.board))
	h, _ := f.board.House(1)
	assert.Len(t, h.Demand, 3)
	h2, _ := f.board.House(2)
	assert.Empty(t, h2.Demand)
}

func TestCollectDrinks_按道路步数(t *testing.T) {
	f := newFixture(t, strip)
	f.diner(t, f.alice, 0, 2, food.Burger)

	got := CollectDrinks(f.board, f.players, 0)
	require.Len(t, got, 1)
	assert.Equal(t, food.Beer, got[0].Kind)
	assert.Equal(t, 1, f.alice.Stock(food.Beer))

	assert.Len(t, CollectDrinks(f.board, f.players, 4), 1)
	got = CollectDrinks(f.board, f.players, 5)
	require.Len(t, got, 2)
	assert.Equal(t, 3, f.alice.Stock(food.Beer))
	assert.Equal(t, 1, f.alice.Stock(food.Cola))
}
