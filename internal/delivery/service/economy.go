package service

import (
	"FoodChain/internal/board/domain"
	"FoodChain/internal/board/route"
	"FoodChain/internal/player/entity"
	"FoodChain/internal/shared/gameconfig/food"

	"github.com/zyedidia/generic/mapset"
)

// DemandAdded 营销新增的一份需求。
type DemandAdded struct {
	House     int       `json:"house"`
	Kind      food.Kind `json:"kind"`
	Marketing int       `json:"marketing"`
}

// RunMarketing 按营销物件 ID 顺序，范围内每个房屋在容量允许时加一份广告食物。
func RunMarketing(b *domain.Board) []DemandAdded {
	var out []DemandAdded
	for _, m := range b.Marketing {
		for _, h := range b.HousesInRange(b.TilesInRange(m.Rect, m.Radius)) {
			if h.AddDemand(m.Food) {
				out = append(out, DemandAdded{House: h.Number, Kind: m.Food, Marketing: m.ID})
			}
		}
	}
	return out
}

// Collected 店主从一个饮料源领到的一份饮料。
type Collected struct {
	Diner int             `json:"diner"`
	Owner entity.PlayerID `json:"owner"`
	Drink int             `json:"drink"`
	Kind  food.Kind       `json:"kind"`
}

// CollectDrinks 每家餐厅沿道路走 hops 步以内，路边每个饮料源给店主一份。
// 同一饮料源对同一餐厅只算一次，不同餐厅各算各的。
func CollectDrinks(b *domain.Board, players *entity.Roster, hops int) []Collected {
	var out []Collected
	for _, d := range b.Diners {
		owner, ok := players.Player(entity.PlayerID(d.Owner))
		if !ok {
			continue
		}
		seen := mapset.New[int]()
		for _, r := range route.Reachable(b.Roads, d.Rect, hops) {
			for _, dr := range b.AdjacentDrinks(r.Rect) {
				if seen.Has(dr.ID) {
					continue
				}
				seen.Put(dr.ID)
				if err := owner.AddStock(dr.Food, 1); err != nil {
					continue
				}
				out = append(out, Collected{Diner: d.ID, Owner: owner.ID(), Drink: dr.ID, Kind: dr.Food})
			}
		}
	}
	return out
}
