package domain

import (
	"errors"
	"testing"

	"FoodChain/internal/shared/gameconfig/food"
	"FoodChain/internal/shared/gameconfig/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultBoard(t *testing.T) *Board {
	t.Helper()
	l, err := layout.Default()
	require.NoError(t, err)
	g, issues := BuildGrid(l, nil)
	require.Empty(t, issues)
	return NewBoard(g, Rules{})
}

func TestNewBoard_内置布局登记物件(t *testing.T) {
	b := defaultBoard(t)
	assert.Equal(t, 25, b.Width())
	assert.Equal(t, 20, b.Height())
	assert.Len(t, b.Roads, 179)
	assert.Len(t, b.Drinks, 13)
	require.Len(t, b.Houses, 11)

	nums := make([]int, 0, len(b.Houses))
	for _, h := range b.Houses {
		nums = append(nums, h.Number)
		assert.Equal(t, 2, h.W)
		assert.Equal(t, 3, h.Capacity)
	}
	assert.Equal(t, []int{2, 4, 5, 7, 8, 10, 12, 13, 15, 16, 18}, nums)

	h, ok := b.House(12)
	require.True(t, ok)
	assert.Equal(t, Rect{I: 0, J: 15, W: 2, H: 2}, h.Rect)
}

func TestNewBoard_房屋入口朝向道路(t *testing.T) {
	b := defaultBoard(t)
	for _, h := range b.Houses {
		di, dj := h.Entrance.Delta()
		found := false
		for _, r := range b.AdjacentRoads(h.Rect) {
			c := r.Rect
			if (di < 0 && c.I < h.I) || (di > 0 && c.I >= h.I+h.W) || (dj < 0 && c.J < h.J) || (dj > 0 && c.J >= h.J+h.H) {
				found = true
			}
		}
		assert.True(t, found, "house %d entrance %v", h.Number, h.Entrance)
	}
}

func TestRoad_立交两层互不连通(t *testing.T) {
	b := defaultBoard(t)
	var layers []*Road
	for _, r := range b.Roads {
		if r.I == 2 && r.J == 17 {
			layers = append(layers, r)
		}
	}
	require.Len(t, layers, 2)
	assert.False(t, layers[0].ConnectsTo(layers[1]))
	assert.Equal(t, 1, layers[1].Layer)
}

func TestTilesInRange_与RangeOverlapsItem(t *testing.T) {
	b := defaultBoard(t)
	tiles := b.TilesInRange(Cell(0, 0), 1)
	assert.ElementsMatch(t, []Rect{Cell(1, 0), Cell(0, 1)}, tiles)

	h, _ := b.House(4)
	assert.True(t, RangeOverlapsItem(h.Rect, b.TilesInRange(Cell(3, 9), 1)))
	assert.False(t, RangeOverlapsItem(h.Rect, b.TilesInRange(Cell(0, 0), 2)))
}

func TestPlacement_校验规则(t *testing.T) {
	b := defaultBoard(t)
	p, err := NewDinerPlacement(1, []food.Kind{food.Burger}, b.Rules())
	require.NoError(t, err)

	// (0,0)-(1,1) 全空，(0,2) 有道路紧邻
	assert.True(t, b.Preview(p, 0, 0).Valid())
	assert.True(t, errors.Is(b.Preview(p, 24, 0).Err, ErrOutOfBounds))
	assert.True(t, errors.Is(b.Preview(p, 1, 0).Err, ErrOverlap))
	// (9,4)-(10,5) 四周只有空地和一处饮料
	assert.True(t, errors.Is(b.Preview(p, 9, 4).Err, ErrNoRoadAccess))

	item, err := b.Commit(p, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, KindDiner, item.Kind)
	require.Len(t, b.Diners, 1)
	assert.True(t, b.Diners[0].Supplies(food.Burger))

	// 同一位置再放一次会重叠
	_, err = b.Commit(p, 0, 0)
	assert.True(t, errors.Is(err, ErrOverlap))
}

func TestPlacement_旋转与营销范围(t *testing.T) {
	b := defaultBoard(t)
	p, err := NewMarketingPlacement(2, Billboard, food.Pizza)
	require.NoError(t, err)
	assert.Equal(t, Rect{W: 2, H: 1}, p.Shape)
	p.Rotate()
	assert.Equal(t, Rect{W: 1, H: 2}, p.Shape)

	// 2 号房屋在 (20,8)，广告牌紧贴它西侧
	pv := b.Preview(p, 19, 8)
	require.True(t, pv.Valid(), "err=%v", pv.Err)
	assert.Equal(t, []int{2, 10}, pv.Houses)

	_, err = b.Commit(p, 19, 8)
	require.NoError(t, err)
	require.Len(t, b.Marketing, 1)
	assert.Equal(t, 1, b.Marketing[0].Rotation)
	assert.Equal(t, 2, b.Marketing[0].Radius)
}

func TestNewDinerPlacement_空菜单(t *testing.T) {
	_, err := NewDinerPlacement(1, nil, Rules{})
	assert.True(t, errors.Is(err, ErrEmptyMenu))
}

func TestHouse_需求队列(t *testing.T) {
	h := &House{Capacity: 2}
	assert.True(t, h.AddDemand(food.Pizza))
	assert.True(t, h.AddDemand(food.Beer))
	assert.False(t, h.AddDemand(food.Cola))
	assert.False(t, h.TakeDemand(food.Cola))
	assert.True(t, h.TakeDemand(food.Beer))
	assert.Equal(t, []food.Kind{food.Pizza}, h.Demand)
}
