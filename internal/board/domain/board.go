package domain

import (
	"slices"

	"FoodChain/internal/shared/gameconfig/food"

	"github.com/zyedidia/generic/mapset"
)

const houseSize = 2

// Rules 是棋盘相关的可配置项。
type Rules struct {
	HouseCapacity int
	DinerWidth    int
	DinerHeight   int
}

func (r Rules) withDefaults() Rules {
	if r.HouseCapacity <= 0 {
		r.HouseCapacity = 3
	}
	if r.DinerWidth <= 0 {
		r.DinerWidth = 2
	}
	if r.DinerHeight <= 0 {
		r.DinerHeight = 2
	}
	return r
}

// Board 持有一局游戏里全部格子和物件。各列表按 ID 递增（即登记顺序），房屋按编号递增。
type Board struct {
	grid  *Grid
	rules Rules

	Roads       []*Road
	Houses      []*House
	Drinks      []*Drink
	Decorations []*Decoration
	Diners      []*Diner
	Marketing   []*MarketingTile

	nextID int
}

// NewBoard 按行优先顺序把格子里的描述登记为物件。
func NewBoard(g *Grid, rules Rules) *Board {
	b := &Board{grid: g, rules: rules.withDefaults()}
	for _, t := range g.Tiles {
		for _, occ := range t.Occupants {
			b.register(t, occ)
		}
	}
	slices.SortStableFunc(b.Houses, func(a, c *House) int { return a.Number - c.Number })
	return b
}

func (b *Board) register(t Tile, occ Occupant) {
	switch o := occ.(type) {
	case RoadSpec:
		b.Roads = append(b.Roads, &Road{Item: b.newItem(KindRoad, t.Rect()), Dirs: o.Dirs, Layer: o.Layer})
	case HouseSpec:
		r := Rect{I: t.I, J: t.J, W: houseSize, H: houseSize}
		r.W = min(r.W, b.grid.Width-t.I)
		r.H = min(r.H, b.grid.Height-t.J)
		b.Houses = append(b.Houses, &House{
			Item:     b.newItem(KindHouse, r),
			Number:   o.Number,
			Entrance: o.Entrance,
			Capacity: b.rules.HouseCapacity,
		})
	case DrinkSpec:
		b.Drinks = append(b.Drinks, &Drink{Item: b.newItem(KindDrink, t.Rect()), Food: o.Kind})
	case DecorationSpec:
		b.Decorations = append(b.Decorations, &Decoration{Item: b.newItem(KindDecoration, t.Rect()), Name: o.Name})
	}
}

func (b *Board) newItem(kind ItemKind, r Rect) Item {
	b.nextID++
	return Item{ID: b.nextID, Kind: kind, Rect: r}
}

func (b *Board) Grid() *Grid  { return b.grid }
func (b *Board) Rules() Rules { return b.rules }
func (b *Board) Width() int   { return b.grid.Width }
func (b *Board) Height() int  { return b.grid.Height }

func (b *Board) InBounds(r Rect) bool {
	return b.grid.Contains(r)
}

// EachItem 依次访问全部物件：道路、房屋、饮料、装饰、餐厅、营销。
func (b *Board) EachItem(fn func(*Item)) {
	for _, x := range b.Roads {
		fn(&x.Item)
	}
	for _, x := range b.Houses {
		fn(&x.Item)
	}
	for _, x := range b.Drinks {
		fn(&x.Item)
	}
	for _, x := range b.Decorations {
		fn(&x.Item)
	}
	for _, x := range b.Diners {
		fn(&x.Item)
	}
	for _, x := range b.Marketing {
		fn(&x.Item)
	}
}

// Overlapping 返回与 r 重叠的物件。
func (b *Board) Overlapping(r Rect) []*Item {
	var out []*Item
	b.EachItem(func(it *Item) {
		if Collides(it.Rect, r) {
			out = append(out, it)
		}
	})
	return out
}

// AdjacentRoads 与 r 边相邻的道路，按登记顺序。
func (b *Board) AdjacentRoads(r Rect) []*Road {
	var out []*Road
	for _, road := range b.Roads {
		if IsAdjacent(r, road.Rect) {
			out = append(out, road)
		}
	}
	return out
}

// AdjacentDrinks 与 r 边相邻的饮料源。
func (b *Board) AdjacentDrinks(r Rect) []*Drink {
	var out []*Drink
	for _, d := range b.Drinks {
		if IsAdjacent(r, d.Rect) {
			out = append(out, d)
		}
	}
	return out
}

// TilesInRange 棋盘内与 r 的曼哈顿距离在 [1, radius] 的格子，行优先。
func (b *Board) TilesInRange(r Rect, radius int) []Rect {
	if radius <= 0 {
		return nil
	}
	var out []Rect
	for j := max(0, r.J-radius); j < min(b.Height(), r.J+r.H+radius); j++ {
		for i := max(0, r.I-radius); i < min(b.Width(), r.I+r.W+radius); i++ {
			if d := r.Distance(i, j); d >= 1 && d <= radius {
				out = append(out, Cell(i, j))
			}
		}
	}
	return out
}

// RangeOverlapsItem 任一范围格子压到物件上。
func RangeOverlapsItem(item Rect, tiles []Rect) bool {
	for _, t := range tiles {
		if Collides(item, t) {
			return true
		}
	}
	return false
}

// HousesInRange 范围压到的房屋，按编号递增。
func (b *Board) HousesInRange(tiles []Rect) []*House {
	var out []*House
	for _, h := range b.Houses {
		if RangeOverlapsItem(h.Rect, tiles) {
			out = append(out, h)
		}
	}
	return out
}

func (b *Board) House(number int) (*House, bool) {
	for _, h := range b.Houses {
		if h.Number == number {
			return h, true
		}
	}
	return nil, false
}

func (b *Board) Diner(id int) (*Diner, bool) {
	for _, d := range b.Diners {
		if d.ID == id {
			return d, true
		}
	}
	return nil, false
}

// HousesWithDemand 有待满足需求的房屋，按编号递增。
func (b *Board) HousesWithDemand() []*House {
	var out []*House
	for _, h := range b.Houses {
		if h.Pending() > 0 {
			out = append(out, h)
		}
	}
	return out
}

func (b *Board) addDiner(owner int, r Rect, rotation int, menu []food.Kind) *Diner {
	d := &Diner{Item: b.newItem(KindDiner, r), Owner: owner, Menu: mapset.Of(menu...)}
	d.Rotation = rotation
	b.Diners = append(b.Diners, d)
	return d
}

func (b *Board) addMarketing(owner int, r Rect, rotation int, c Campaign, f food.Kind) *MarketingTile {
	m := &MarketingTile{
		Item:     b.newItem(KindMarketing, r),
		Owner:    owner,
		Campaign: c,
		Food:     f,
		Radius:   campaigns[c].radius,
	}
	m.Rotation = rotation
	b.Marketing = append(b.Marketing, m)
	return m
}
