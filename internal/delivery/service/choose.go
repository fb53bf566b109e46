package service

import (
	"FoodChain/internal/board/domain"
	"FoodChain/internal/board/route"
	"FoodChain/internal/player/entity"
	"FoodChain/internal/shared/gameconfig/food"
)

// Route 一次配送选中的餐厅和路线。Roads 从房屋一侧排到餐厅一侧，
// 为空表示餐厅直接挨着房屋。
type Route struct {
	House *domain.House
	Diner *domain.Diner
	Kind  food.Kind
	Roads []*domain.Road
}

func (r Route) Len() int {
	return len(r.Roads)
}

// ChooseDiner 在能供应 kind 且店主有库存的餐厅里选路最短的，等长取 ID 小的。
// 挨着房屋的餐厅路长为 0；不连通的餐厅不参与。
func ChooseDiner(b *domain.Board, players *entity.Roster, house *domain.House, kind food.Kind) (Route, bool) {
	var (
		best  Route
		found bool
	)
	for _, d := range b.Diners {
		if !d.Supplies(kind) {
			continue
		}
		owner, ok := players.Player(entity.PlayerID(d.Owner))
		if !ok || owner.Stock(kind) <= 0 {
			continue
		}

		var roads []*domain.Road
		if !domain.Touches(house.Rect, d.Rect) {
			roads = route.ShortestRoadPath(b.Roads, house.Rect, d.Rect)
			if len(roads) == 0 {
				continue
			}
		}
		if !found || len(roads) < best.Len() {
			best = Route{House: house, Diner: d, Kind: kind, Roads: roads}
			found = true
		}
	}
	return best, found
}
