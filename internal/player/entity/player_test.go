package entity

import (
	"errors"
	"testing"

	"FoodChain/internal/shared/gameconfig/food"
)

func TestPlayer_库存与现金(t *testing.T) {
	p := NewPlayer(1, "alice", 0)
	if err := p.AddStock(food.Burger, 2); err != nil {
		t.Fatalf("AddStock err=%v", err)
	}
	if err := p.Consume(food.Burger); err != nil {
		t.Fatalf("Consume err=%v", err)
	}
	if got := p.Stock(food.Burger); got != 1 {
		t.Fatalf("Stock=%d, want 1", got)
	}
	p.Credit(10)
	if p.Cash() != 10 {
		t.Fatalf("Cash=%d, want 10", p.Cash())
	}
}

func TestPlayer_库存为零不扣减(t *testing.T) {
	p := NewPlayer(1, "alice", 0)
	err := p.Consume(food.Pizza)
	if !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("err=%v, want ErrOutOfStock", err)
	}
	if p.Stock(food.Pizza) != 0 {
		t.Fatalf("Stock=%d, want 0", p.Stock(food.Pizza))
	}
}

func TestPlayer_AddStock_参数校验(t *testing.T) {
	p := NewPlayer(1, "alice", 0)
	if err := p.AddStock(food.Cola, 0); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("err=%v, want ErrInvalidAmount", err)
	}
	if err := p.AddStock(food.Unknown, 1); !errors.Is(err, ErrInvalidFood) {
		t.Fatalf("err=%v, want ErrInvalidFood", err)
	}
}

func TestPlayer_View_隐藏零库存(t *testing.T) {
	p := NewPlayer(2, "bob", 5)
	_ = p.AddStock(food.Beer, 1)
	_ = p.Consume(food.Beer)
	_ = p.AddStock(food.Cola, 3)
	v := p.View()
	if len(v.Inventory) != 1 || v.Inventory[food.Cola] != 3 {
		t.Fatalf("Inventory=%v", v.Inventory)
	}
	if v.Cash != 5 || v.Name != "bob" {
		t.Fatalf("view=%+v", v)
	}
}

func TestRoster(t *testing.T) {
	r := NewRoster(2)
	a, _ := r.Join("a", 0)
	b, _ := r.Join("b", 0)
	if a.ID() != 1 || b.ID() != 2 {
		t.Fatalf("ids=%d,%d", a.ID(), b.ID())
	}
	if _, err := r.Join("c", 0); !errors.Is(err, ErrRosterFull) {
		t.Fatalf("err=%v, want ErrRosterFull", err)
	}
	if _, err := r.MustPlayer(3); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("err=%v, want ErrPlayerNotFound", err)
	}
	all := r.All()
	if len(all) != 2 || all[0] != a || all[1] != b {
		t.Fatalf("All=%v", all)
	}
}
