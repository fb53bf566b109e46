package service

import (
	"slices"

	"FoodChain/internal/player/entity"
	"FoodChain/internal/shared/gameconfig/food"
)

// Receipt 一份需求被满足后的结果。
type Receipt struct {
	House  int             `json:"house"`
	Diner  int             `json:"diner"`
	Owner  entity.PlayerID `json:"owner"`
	Kind   food.Kind       `json:"kind"`
	Reward int             `json:"reward"`
	Cash   int             `json:"cash"`
	Roads  int             `json:"roads"`
}

// FeedHouse 从房屋需求里去掉一份 kind，扣店主库存，给店主加 reward。
// 先全部校验再修改，失败时状态不变。
func FeedHouse(rt Route, players *entity.Roster, reward int) (Receipt, error) {
	if rt.House == nil || rt.Diner == nil {
		return Receipt{}, ErrNoRoute
	}
	if !slices.Contains(rt.House.Demand, rt.Kind) {
		return Receipt{}, ErrNoDemand.WithData("house", rt.House.Number).WithData("kind", rt.Kind.String())
	}
	owner, err := players.MustPlayer(entity.PlayerID(rt.Diner.Owner))
	if err != nil {
		return Receipt{}, err
	}
	// 库存是最后一项校验，扣减失败时房屋和现金都还没动
	if err := owner.Consume(rt.Kind); err != nil {
		return Receipt{}, err
	}
	rt.House.TakeDemand(rt.Kind)
	owner.Credit(reward)

	return Receipt{
		House:  rt.House.Number,
		Diner:  rt.Diner.ID,
		Owner:  owner.ID(),
		Kind:   rt.Kind,
		Reward: reward,
		Cash:   owner.Cash(),
		Roads:  rt.Len(),
	}, nil
}
