package entity

import (
	"FoodChain/internal/shared/gameconfig/food"
)

type PlayerID int

// Player 是一局里的玩家经济状态。只在所属会话的 actor 里读写。
type Player struct {
	id        PlayerID
	name      string
	cash      int
	inventory map[food.Kind]int
}

func NewPlayer(id PlayerID, name string, cash int) *Player {
	return &Player{
		id:        id,
		name:      name,
		cash:      cash,
		inventory: make(map[food.Kind]int),
	}
}

func (p *Player) ID() PlayerID {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Cash() int {
	return p.cash
}

func (p *Player) Stock(kind food.Kind) int {
	return p.inventory[kind]
}

// AddStock 增加库存，n 必须为正。
func (p *Player) AddStock(kind food.Kind, n int) error {
	if !kind.Valid() {
		return ErrInvalidFood.WithData("kind", kind.String())
	}
	if n <= 0 {
		return ErrInvalidAmount.WithData("amount", n)
	}
	p.inventory[kind] += n
	return nil
}

// Consume 扣一份库存，库存为 0 时不修改。
func (p *Player) Consume(kind food.Kind) error {
	if p.inventory[kind] <= 0 {
		return ErrOutOfStock.WithData("player_id", int(p.id)).WithData("kind", kind.String())
	}
	p.inventory[kind]--
	return nil
}

func (p *Player) Credit(amount int) {
	p.cash += amount
}

// View 对外只读视图。
type View struct {
	ID        PlayerID          `json:"id"`
	Name      string            `json:"name"`
	Cash      int               `json:"cash"`
	Inventory map[food.Kind]int `json:"inventory"`
}

func (p *Player) View() View {
	inv := make(map[food.Kind]int, len(p.inventory))
	for k, n := range p.inventory {
		if n > 0 {
			inv[k] = n
		}
	}
	return View{ID: p.id, Name: p.name, Cash: p.cash, Inventory: inv}
}
