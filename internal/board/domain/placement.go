package domain

import (
	"FoodChain/internal/shared/gameconfig/food"
)

// dinerReach 餐厅预览时高亮的范围（紧邻一圈）。
const dinerReach = 1

// Placement 是玩家正在摆放的物件，提交前可以反复预览和旋转。
type Placement struct {
	Player   int
	Kind     ItemKind
	Shape    Rect
	Rotation int
	Menu     []food.Kind
	Campaign Campaign
	Food     food.Kind
}

func NewDinerPlacement(player int, menu []food.Kind, rules Rules) (*Placement, error) {
	if len(menu) == 0 {
		return nil, ErrEmptyMenu
	}
	for _, k := range menu {
		if !k.Valid() {
			return nil, ErrInvalidFoodKind.WithData("kind", k.String())
		}
	}
	rules = rules.withDefaults()
	return &Placement{
		Player: player,
		Kind:   KindDiner,
		Shape:  Rect{W: rules.DinerWidth, H: rules.DinerHeight},
		Menu:   append([]food.Kind(nil), menu...),
	}, nil
}

func NewMarketingPlacement(player int, c Campaign, f food.Kind) (*Placement, error) {
	spec, ok := campaigns[c]
	if !ok {
		return nil, ErrNotPlaceable.WithData("campaign", c.String())
	}
	if !f.Valid() {
		return nil, ErrInvalidFoodKind.WithData("kind", f.String())
	}
	return &Placement{
		Player:   player,
		Kind:     KindMarketing,
		Shape:    Rect{W: spec.w, H: spec.h},
		Campaign: c,
		Food:     f,
	}, nil
}

func (p *Placement) Rotate() {
	p.Shape.W, p.Shape.H = p.Shape.H, p.Shape.W
	p.Rotation = (p.Rotation + 1) % 4
}

func (p *Placement) Radius() int {
	if p.Kind == KindMarketing {
		return campaigns[p.Campaign].radius
	}
	return dinerReach
}

// Preview 是把物件放在 (i, j) 时的结果，不修改棋盘。
type Preview struct {
	Footprint Rect
	Err       error
	Range     []Rect
	Houses    []int
}

func (p Preview) Valid() bool {
	return p.Err == nil
}

func (b *Board) Preview(p *Placement, i, j int) Preview {
	fp := p.Shape.At(i, j)
	out := Preview{Footprint: fp, Err: b.validate(p, fp)}
	out.Range = b.TilesInRange(fp, p.Radius())
	for _, h := range b.HousesInRange(out.Range) {
		out.Houses = append(out.Houses, h.Number)
	}
	return out
}

// Commit 校验通过后登记物件，返回新物件。
func (b *Board) Commit(p *Placement, i, j int) (*Item, error) {
	fp := p.Shape.At(i, j)
	if err := b.validate(p, fp); err != nil {
		return nil, err
	}
	switch p.Kind {
	case KindDiner:
		return &b.addDiner(p.Player, fp, p.Rotation, p.Menu).Item, nil
	case KindMarketing:
		return &b.addMarketing(p.Player, fp, p.Rotation, p.Campaign, p.Food).Item, nil
	}
	return nil, ErrNotPlaceable.WithData("kind", p.Kind.String())
}

func (b *Board) validate(p *Placement, fp Rect) error {
	if p.Kind != KindDiner && p.Kind != KindMarketing {
		return ErrNotPlaceable.WithData("kind", p.Kind.String())
	}
	if !b.InBounds(fp) {
		return ErrOutOfBounds.WithData("i", fp.I).WithData("j", fp.J)
	}
	if hit := b.Overlapping(fp); len(hit) > 0 {
		return ErrOverlap.WithData("item_id", hit[0].ID).WithData("item_kind", hit[0].Kind.String())
	}
	if p.Kind == KindDiner && len(b.AdjacentRoads(fp)) == 0 {
		return ErrNoRoadAccess
	}
	return nil
}
