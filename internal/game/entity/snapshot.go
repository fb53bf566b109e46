package entity

import (
	"FoodChain/internal/board/domain"
	player "FoodChain/internal/player/entity"
	"FoodChain/internal/shared/gameconfig/food"
)

type RoadView struct {
	ID int `json:"id"`
	domain.Rect
	Dirs  []domain.Dir `json:"dirs"`
	Layer int          `json:"layer"`
}

type HouseView struct {
	ID int `json:"id"`
	domain.Rect
	Number   int         `json:"number"`
	Entrance domain.Dir  `json:"entrance"`
	Capacity int         `json:"capacity"`
	Demand   []food.Kind `json:"demand"`
}

type DrinkView struct {
	ID int `json:"id"`
	domain.Rect
	Kind food.Kind `json:"kind"`
}

type DecorationView struct {
	ID int `json:"id"`
	domain.Rect
	Name string `json:"name"`
}

type DinerView struct {
	ID int `json:"id"`
	domain.Rect
	Owner    int         `json:"owner"`
	Rotation int         `json:"rotation"`
	Menu     []food.Kind `json:"menu"`
}

type MarketingView struct {
	ID int `json:"id"`
	domain.Rect
	Owner    int             `json:"owner"`
	Rotation int             `json:"rotation"`
	Campaign domain.Campaign `json:"campaign"`
	Food     food.Kind       `json:"food"`
	Radius   int             `json:"radius"`
}

type Snapshot struct {
	SessionID   SessionID        `json:"session_id,string"`
	Width       int              `json:"width"`
	Height      int              `json:"height"`
	Roads       []RoadView       `json:"roads"`
	Houses      []HouseView      `json:"houses"`
	Drinks      []DrinkView      `json:"drinks"`
	Decorations []DecorationView `json:"decorations"`
	Diners      []DinerView      `json:"diners"`
	Marketing   []MarketingView  `json:"marketing"`
	Players     []player.View    `json:"players"`
	DinnerTime  bool             `json:"dinner_time"`
	InFlight    bool             `json:"in_flight"`
}

// Snapshot 当前棋盘和玩家的只读拷贝，可以交给其他 goroutine 序列化。
func (s *Session) Snapshot() Snapshot {
	b := s.board
	out := Snapshot{
		SessionID:  s.id,
		Width:      b.Width(),
		Height:     b.Height(),
		DinnerTime: s.dinnerTime,
		InFlight:   s.InFlight(),
	}
	for _, r := range b.Roads {
		out.Roads = append(out.Roads, RoadView{ID: r.ID, Rect: r.Rect, Dirs: r.Dirs.List(), Layer: r.Layer})
	}
	for _, h := range b.Houses {
		out.Houses = append(out.Houses, HouseView{
			ID: h.ID, Rect: h.Rect, Number: h.Number, Entrance: h.Entrance,
			Capacity: h.Capacity, Demand: append([]food.Kind{}, h.Demand...),
		})
	}
	for _, d := range b.Drinks {
		out.Drinks = append(out.Drinks, DrinkView{ID: d.ID, Rect: d.Rect, Kind: d.Food})
	}
	for _, d := range b.Decorations {
		out.Decorations = append(out.Decorations, DecorationView{ID: d.ID, Rect: d.Rect, Name: d.Name})
	}
	for _, d := range b.Diners {
		out.Diners = append(out.Diners, DinerView{ID: d.ID, Rect: d.Rect, Owner: d.Owner, Rotation: d.Rotation, Menu: d.MenuList()})
	}
	for _, m := range b.Marketing {
		out.Marketing = append(out.Marketing, MarketingView{
			ID: m.ID, Rect: m.Rect, Owner: m.Owner, Rotation: m.Rotation,
			Campaign: m.Campaign, Food: m.Food, Radius: m.Radius,
		})
	}
	for _, p := range s.players.All() {
		out.Players = append(out.Players, p.View())
	}
	return out
}

// PreviewView 摆放预览结果。
type PreviewView struct {
	Footprint domain.Rect   `json:"footprint"`
	Rotation  int           `json:"rotation"`
	Valid     bool          `json:"valid"`
	Reason    string        `json:"reason,omitempty"`
	Range     []domain.Rect `json:"range"`
	Houses    []int         `json:"houses"`
}

func NewPreviewView(p *domain.Placement, pv domain.Preview) PreviewView {
	out := PreviewView{
		Footprint: pv.Footprint,
		Rotation:  p.Rotation,
		Valid:     pv.Valid(),
		Range:     pv.Range,
		Houses:    pv.Houses,
	}
	if pv.Err != nil {
		out.Reason = pv.Err.Error()
	}
	return out
}

// PlacementView 玩家当前手上的待摆放物件。
type PlacementView struct {
	Kind     domain.ItemKind `json:"kind"`
	Shape    domain.Rect     `json:"shape"`
	Rotation int             `json:"rotation"`
	Radius   int             `json:"radius"`
	Menu     []food.Kind     `json:"menu,omitempty"`
	Campaign domain.Campaign `json:"campaign,omitempty"`
	Food     food.Kind       `json:"food,omitempty"`
}

func NewPlacementView(p *domain.Placement) PlacementView {
	return PlacementView{
		Kind:     p.Kind,
		Shape:    p.Shape,
		Rotation: p.Rotation,
		Radius:   p.Radius(),
		Menu:     append([]food.Kind(nil), p.Menu...),
		Campaign: p.Campaign,
		Food:     p.Food,
	}
}

type ItemView struct {
	ID   int             `json:"id"`
	Kind domain.ItemKind `json:"kind"`
	domain.Rect
	Rotation int `json:"rotation"`
}

func NewItemView(it *domain.Item) ItemView {
	return ItemView{ID: it.ID, Kind: it.Kind, Rect: it.Rect, Rotation: it.Rotation}
}
