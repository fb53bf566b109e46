package entity

import (
	"context"

	"FoodChain/internal/board/domain"
	"FoodChain/internal/delivery/service"
	player "FoodChain/internal/player/entity"
	"FoodChain/internal/shared/gameconfig/food"
	"FoodChain/modules/kit/logx"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SessionID int64

type Rules struct {
	Board      domain.Rules
	UnitPrice  int
	DrinkRange int
	StartCash  int
	MaxPlayers int
	Timings    service.Timings
}

func DefaultRules() Rules {
	return Rules{
		UnitPrice:  10,
		DrinkRange: 3,
		MaxPlayers: 5,
		Timings:    service.DefaultTimings(),
	}
}

// PlacementRequest 开始摆放时的参数。Kind 为 diner 时用 Menu，为 marketing 时用 Campaign 和 Food。
type PlacementRequest struct {
	Kind     domain.ItemKind
	Menu     []food.Kind
	Campaign domain.Campaign
	Food     food.Kind
}

// Session 一局游戏。只在所属的会话 actor 里访问。
type Session struct {
	id         SessionID
	board      *domain.Board
	players    *player.Roster
	rules      Rules
	placements map[player.PlayerID]*domain.Placement
	dinnerTime bool
	round      *service.Round
	roundID    string
	log        logx.Logger
}

func NewSession(id SessionID, b *domain.Board, rules Rules, log logx.Logger) *Session {
	return &Session{
		id:         id,
		board:      b,
		players:    player.NewRoster(rules.MaxPlayers),
		rules:      rules,
		placements: make(map[player.PlayerID]*domain.Placement),
		log:        logx.OrNop(log),
	}
}

func (s *Session) ID() SessionID           { return s.id }
func (s *Session) Board() *domain.Board    { return s.board }
func (s *Session) Players() *player.Roster { return s.players }
func (s *Session) Rules() Rules            { return s.rules }
func (s *Session) DinnerTime() bool        { return s.dinnerTime }
func (s *Session) InFlight() bool          { return s.round != nil }

func (s *Session) Join(name string) (*player.Player, error) {
	return s.players.Join(name, s.rules.StartCash)
}

// ============ Placement ============

func (s *Session) BeginPlacement(pid player.PlayerID, req PlacementRequest) (*domain.Placement, error) {
	if _, err := s.players.MustPlayer(pid); err != nil {
		return nil, err
	}
	if s.InFlight() {
		return nil, ErrPlacementDuringRound
	}

	var (
		p   *domain.Placement
		err error
	)
	switch req.Kind {
	case domain.KindDiner:
		p, err = domain.NewDinerPlacement(int(pid), req.Menu, s.board.Rules())
	case domain.KindMarketing:
		p, err = domain.NewMarketingPlacement(int(pid), req.Campaign, req.Food)
	default:
		err = domain.ErrNotPlaceable.WithData("kind", req.Kind.String())
	}
	if err != nil {
		return nil, err
	}
	s.placements[pid] = p
	return p, nil
}

func (s *Session) activePlacement(pid player.PlayerID) (*domain.Placement, error) {
	p, ok := s.placements[pid]
	if !ok {
		return nil, ErrNoActivePlacement.WithData("player_id", int(pid))
	}
	return p, nil
}

// Placement 玩家当前的待摆放物件。
func (s *Session) Placement(pid player.PlayerID) (*domain.Placement, bool) {
	p, ok := s.placements[pid]
	return p, ok
}

func (s *Session) PreviewPlacement(pid player.PlayerID, i, j int) (domain.Preview, error) {
	p, err := s.activePlacement(pid)
	if err != nil {
		return domain.Preview{}, err
	}
	return s.board.Preview(p, i, j), nil
}

func (s *Session) RotatePlacement(pid player.PlayerID) (*domain.Placement, error) {
	p, err := s.activePlacement(pid)
	if err != nil {
		return nil, err
	}
	p.Rotate()
	return p, nil
}

// CommitPlacement 成功后退出摆放模式；失败时保留，玩家可以换位置再试。
func (s *Session) CommitPlacement(pid player.PlayerID, i, j int) (*domain.Item, error) {
	p, err := s.activePlacement(pid)
	if err != nil {
		return nil, err
	}
	if s.InFlight() {
		return nil, ErrPlacementDuringRound
	}
	it, err := s.board.Commit(p, i, j)
	if err != nil {
		return nil, err
	}
	delete(s.placements, pid)
	return it, nil
}

func (s *Session) CancelPlacement(pid player.PlayerID) bool {
	_, ok := s.placements[pid]
	delete(s.placements, pid)
	return ok
}

// ============ Economy ============

func (s *Session) Stock(pid player.PlayerID, kind food.Kind, n int) (*player.Player, error) {
	p, err := s.players.MustPlayer(pid)
	if err != nil {
		return nil, err
	}
	if err := p.AddStock(kind, n); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Session) CollectDrinks() []service.Collected {
	return service.CollectDrinks(s.board, s.players, s.rules.DrinkRange)
}

func (s *Session) AddDemand(number int, kind food.Kind) error {
	if !kind.Valid() {
		return domain.ErrInvalidFoodKind.WithData("kind", kind.String())
	}
	h, ok := s.board.House(number)
	if !ok {
		return domain.ErrHouseNotFound.WithData("house", number)
	}
	if !h.AddDemand(kind) {
		return domain.ErrHouseFull.WithData("house", number).WithData("capacity", h.Capacity)
	}
	return nil
}

func (s *Session) RunMarketing() []service.DemandAdded {
	return service.RunMarketing(s.board)
}

// ============ Dinner time ============

func (s *Session) EnableDinnerTime() {
	s.dinnerTime = true
}

type RoundInfo struct {
	ID    string `json:"id"`
	Units int    `json:"units"`
}

// StartRound 开始一轮配送。已有进行中的一轮或晚餐时间未开启时拒绝。
func (s *Session) StartRound(ctx context.Context) (RoundInfo, error) {
	if !s.dinnerTime {
		return RoundInfo{}, ErrDinnerTimeDisabled
	}
	if s.round != nil {
		return RoundInfo{}, ErrRoundInFlight.WithData("round_id", s.roundID)
	}
	s.round = service.NewRound(s.board, s.players, s.rules.UnitPrice, s.log)
	s.roundID = uuid.NewString()
	s.log.WithContext(ctx).Info("dinner round started",
		zap.Int64("session_id", int64(s.id)),
		zap.String("round_id", s.roundID),
		zap.Int("units", s.round.Total()))
	return RoundInfo{ID: s.roundID, Units: s.round.Total()}, nil
}

// NextDelivery 结算下一次配送，经济变化在返回前已生效。
func (s *Session) NextDelivery(ctx context.Context) (service.Delivery, bool) {
	if s.round == nil {
		return service.Delivery{}, false
	}
	return s.round.Next(ctx)
}

type RoundSummary struct {
	ID        string `json:"id"`
	Total     int    `json:"total"`
	Delivered int    `json:"delivered"`
	Skipped   int    `json:"skipped"`
	Cancelled int    `json:"cancelled"`
}

// FinishRound 结束当前一轮，未处理的需求计为取消，仍留在房屋队列里。
func (s *Session) FinishRound(ctx context.Context) (RoundSummary, error) {
	if s.round == nil {
		return RoundSummary{}, ErrNoRoundInFlight
	}
	r := s.round
	sum := RoundSummary{
		ID:        s.roundID,
		Total:     r.Total(),
		Delivered: r.Done(),
		Skipped:   r.Skipped(),
		Cancelled: r.Remaining(),
	}
	s.round = nil
	s.roundID = ""
	s.log.WithContext(ctx).Info("dinner round finished",
		zap.Int64("session_id", int64(s.id)),
		zap.String("round_id", sum.ID),
		zap.Int("delivered", sum.Delivered),
		zap.Int("skipped", sum.Skipped),
		zap.Int("cancelled", sum.Cancelled))
	return sum, nil
}
