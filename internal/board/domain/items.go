package domain

import (
	"fmt"
	"slices"

	"FoodChain/internal/shared/gameconfig/food"

	"github.com/zyedidia/generic/mapset"
)

type ItemKind uint8

const (
	KindRoad ItemKind = iota + 1
	KindHouse
	KindDrink
	KindDecoration
	KindDiner
	KindMarketing
)

var itemKindNames = map[ItemKind]string{
	KindRoad:       "road",
	KindHouse:      "house",
	KindDrink:      "drink",
	KindDecoration: "decoration",
	KindDiner:      "diner",
	KindMarketing:  "marketing",
}

func (k ItemKind) String() string {
	if n, ok := itemKindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("item(%d)", uint8(k))
}

func (k ItemKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ItemKind) UnmarshalText(text []byte) error {
	for kind, n := range itemKindNames {
		if n == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown item kind %q", text)
}

// Item 是棋盘物件的公共部分。Rotation 以四分之一圈计，取值 0..3。
type Item struct {
	ID   int
	Kind ItemKind
	Rect
	Rotation int
}

func (it *Item) Footprint() Rect {
	return it.Rect
}

// Rotate 顺时针转 90°：宽高互换。
func (it *Item) Rotate() {
	it.W, it.H = it.H, it.W
	it.Rotation = (it.Rotation + 1) % 4
}

// Road 1x1，同一格可叠多层（立交），同格的两层互不连通。
type Road struct {
	Item
	Dirs  DirSet
	Layer int
}

// ConnectsTo 两段道路边相邻，且双方掩码都朝向对方。
func (r *Road) ConnectsTo(o *Road) bool {
	for _, d := range r.Dirs.List() {
		di, dj := d.Delta()
		if o.I == r.I+di && o.J == r.J+dj && o.Dirs.Has(d.Opposite()) {
			return true
		}
	}
	return false
}

// House 2x2。Demand 是待满足需求的先进先出队列。
type House struct {
	Item
	Number   int
	Entrance Dir
	Capacity int
	Demand   []food.Kind
}

// AddDemand 队列未满时追加一份需求。
func (h *House) AddDemand(kind food.Kind) bool {
	if h.Capacity > 0 && len(h.Demand) >= h.Capacity {
		return false
	}
	h.Demand = append(h.Demand, kind)
	return true
}

// TakeDemand 移除最早的一份 kind 需求。
func (h *House) TakeDemand(kind food.Kind) bool {
	idx := slices.Index(h.Demand, kind)
	if idx < 0 {
		return false
	}
	h.Demand = slices.Delete(h.Demand, idx, idx+1)
	return true
}

func (h *House) Pending() int {
	return len(h.Demand)
}

type Diner struct {
	Item
	Owner int
	Menu  mapset.Set[food.Kind]
}

func (d *Diner) Supplies(kind food.Kind) bool {
	return d.Menu.Has(kind)
}

// MenuList 按枚举顺序返回菜单。
func (d *Diner) MenuList() []food.Kind {
	var out []food.Kind
	for _, k := range food.All() {
		if d.Menu.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// Drink 饮料源，1x1。
type Drink struct {
	Item
	Food food.Kind
}

type Decoration struct {
	Item
	Name string
}

// Campaign 营销物件类型，决定尺寸和影响半径。
type Campaign uint8

const (
	Billboard Campaign = iota + 1
	Mailbox
)

type campaignSpec struct {
	name   string
	w, h   int
	radius int
}

var campaigns = map[Campaign]campaignSpec{
	Billboard: {name: "billboard", w: 2, h: 1, radius: 2},
	Mailbox:   {name: "mailbox", w: 1, h: 1, radius: 3},
}

func (c Campaign) String() string {
	if s, ok := campaigns[c]; ok {
		return s.name
	}
	return fmt.Sprintf("campaign(%d)", uint8(c))
}

func (c Campaign) Valid() bool {
	_, ok := campaigns[c]
	return ok
}

func (c Campaign) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Campaign) UnmarshalText(text []byte) error {
	for k, s := range campaigns {
		if s.name == string(text) {
			*c = k
			return nil
		}
	}
	return fmt.Errorf("unknown campaign %q", text)
}

// MarketingTile 营销物件：范围内的房屋会产生 Food 需求。
type MarketingTile struct {
	Item
	Owner    int
	Campaign Campaign
	Food     food.Kind
	Radius   int
}
