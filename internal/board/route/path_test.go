package route

import (
	"testing"

	"FoodChain/internal/board/domain"
	"FoodChain/internal/shared/gameconfig/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func road(id, i, j int, layer int, dirs ...domain.Dir) *domain.Road {
	return &domain.Road{
		Item:  domain.Item{ID: id, Kind: domain.KindRoad, Rect: domain.Cell(i, j)},
		Dirs:  domain.Dirs(dirs...),
		Layer: layer,
	}
}

type pos struct{ I, J, Layer int }

func positions(path []*domain.Road) []pos {
	out := make([]pos, 0, len(path))
	for _, r := range path {
		out = append(out, pos{r.I, r.J, r.Layer})
	}
	return out
}

// 十字路口中间是立交：东西向在下层，南北向在上层
func bridgeRoads() []*domain.Road {
	return []*domain.Road{
		road(1, 2, 1, 0, domain.South),
		road(2, 1, 2, 0, domain.East),
		road(3, 2, 2, 0, domain.West, domain.East),
		road(4, 2, 2, 1, domain.North, domain.South),
		road(5, 3, 2, 0, domain.West),
		road(6, 2, 3, 0, domain.North),
	}
}

func TestShortestRoadPath_穿过立交(t *testing.T) {
	path := ShortestRoadPath(bridgeRoads(), domain.Cell(0, 2), domain.Cell(4, 2))
	assert.Equal(t, []pos{{1, 2, 0}, {2, 2, 0}, {3, 2, 0}}, positions(path))

	path = ShortestRoadPath(bridgeRoads(), domain.Cell(2, 0), domain.Cell(2, 4))
	assert.Equal(t, []pos{{2, 1, 0}, {2, 2, 1}, {2, 3, 0}}, positions(path))
}

func TestShortestRoadPath_立交上下层不连通(t *testing.T) {
	path := ShortestRoadPath(bridgeRoads(), domain.Cell(0, 2), domain.Cell(2, 4))
	assert.Empty(t, path)
}

func TestShortestRoadPath_等长按西北东南取第一条(t *testing.T) {
	roads := []*domain.Road{
		road(1, 1, 1, 0, domain.East, domain.South),
		road(2, 2, 1, 0, domain.West, domain.South),
		road(3, 1, 2, 0, domain.North, domain.East),
		road(4, 2, 2, 0, domain.West, domain.North),
	}
	path := ShortestRoadPath(roads, domain.Cell(0, 1), domain.Cell(3, 2))
	assert.Equal(t, []pos{{1, 1, 0}, {2, 1, 0}, {2, 2, 0}}, positions(path))
}

func TestShortestRoadPath_不连通返回空(t *testing.T) {
	roads := []*domain.Road{
		road(1, 1, 0, 0, domain.East),
		road(2, 3, 0, 0, domain.West),
	}
	assert.Empty(t, ShortestRoadPath(roads, domain.Cell(0, 0), domain.Cell(4, 0)))
	assert.Empty(t, ShortestRoadPath(roads, domain.Cell(9, 9), domain.Cell(4, 0)))
	assert.Empty(t, ShortestRoadPath(nil, domain.Cell(0, 0), domain.Cell(4, 0)))
}

func TestShortestRoadPath_同一道路同时紧邻两端(t *testing.T) {
	roads := []*domain.Road{road(1, 1, 0, 0, domain.West, domain.East)}
	path := ShortestRoadPath(roads, domain.Cell(0, 0), domain.Cell(2, 0))
	assert.Equal(t, []pos{{1, 0, 0}}, positions(path))
}

func TestShortestRoadPath_不修改道路(t *testing.T) {
	roads := bridgeRoads()
	before := make([]domain.Road, len(roads))
	for k, r := range roads {
		before[k] = *r
	}
	ShortestRoadPath(roads, domain.Cell(0, 2), domain.Cell(4, 2))
	for k, r := range roads {
		assert.Equal(t, before[k], *r)
	}
}

func defaultRoads(t *testing.T) (*domain.Board, []*domain.Road) {
	t.Helper()
	l, err := layout.Default()
	require.NoError(t, err)
	g, _ := domain.BuildGrid(l, nil)
	b := domain.NewBoard(g, domain.Rules{})
	return b, b.Roads
}

func TestShortestRoadPath_内置布局(t *testing.T) {
	b, roads := defaultRoads(t)
	house, ok := b.House(12)
	require.True(t, ok)
	diner := domain.Rect{I: 0, J: 0, W: 2, H: 2}

	path := ShortestRoadPath(roads, house.Rect, diner)
	require.Len(t, path, 16)
	assert.Equal(t, pos{2, 15, 0}, positions(path)[0])
	assert.Equal(t, pos{0, 2, 0}, positions(path)[15])
	for k := 1; k < len(path); k++ {
		assert.True(t, path[k-1].ConnectsTo(path[k]), "step %d", k)
	}

	house, _ = b.House(2)
	assert.Len(t, ShortestRoadPath(roads, house.Rect, diner), 26)
}

func TestReachable(t *testing.T) {
	_, roads := defaultRoads(t)
	diner := domain.Rect{I: 0, J: 0, W: 2, H: 2}
	assert.Len(t, Reachable(roads, diner, 0), 2)
	assert.Len(t, Reachable(roads, diner, 2), 6)
	assert.Len(t, Reachable(roads, diner, -1), 179)

	assert.Len(t, Reachable(bridgeRoads(), domain.Cell(0, 2), -1), 3)
}

// meshRoads 在 i∈[1,4]、j∈[1,3] 铺满道路，mask 的每一位决定一条相邻边是否打通。
func meshRoads(mask uint32) []*domain.Road {
	dirs := make(map[[2]int][]domain.Dir)
	bit := 0
	link := func(i, j int, d domain.Dir) {
		if mask&(1<<bit) != 0 {
			di, dj := d.Delta()
			dirs[[2]int{i, j}] = append(dirs[[2]int{i, j}], d)
			dirs[[2]int{i + di, j + dj}] = append(dirs[[2]int{i + di, j + dj}], d.Opposite())
		}
		bit++
	}
	for j := 1; j <= 3; j++ {
		for i := 1; i <= 4; i++ {
			if i < 4 {
				link(i, j, domain.East)
			}
			if j < 3 {
				link(i, j, domain.South)
			}
		}
	}

	var roads []*domain.Road
	for j := 1; j <= 3; j++ {
		for i := 1; i <= 4; i++ {
			roads = append(roads, road(len(roads)+1, i, j, 0, dirs[[2]int{i, j}]...))
		}
	}
	return roads
}

func linked(a, b *domain.Road) bool {
	for _, d := range domain.Directions {
		di, dj := d.Delta()
		if a.Dirs.Has(d) && b.Dirs.Has(d.Opposite()) && a.I+di == b.I && a.J+dj == b.J {
			return true
		}
	}
	return false
}

// bruteShortest 枚举所有简单路径，返回最少道路数；不连通返回 -1。
func bruteShortest(roads []*domain.Road, from, to domain.Rect) int {
	best := -1
	visited := make([]bool, len(roads))
	var dfs func(u, depth int)
	dfs = func(u, depth int) {
		if domain.IsAdjacent(to, roads[u].Rect) && (best < 0 || depth < best) {
			best = depth
		}
		for v := range roads {
			if !visited[v] && linked(roads[u], roads[v]) {
				visited[v] = true
				dfs(v, depth+1)
				visited[v] = false
			}
		}
	}
	for s, r := range roads {
		if domain.IsAdjacent(from, r.Rect) {
			visited[s] = true
			dfs(s, 1)
			visited[s] = false
		}
	}
	return best
}

func TestShortestRoadPath_与穷举最短一致(t *testing.T) {
	from := domain.Rect{I: 0, J: 1, W: 1, H: 2}
	to := domain.Cell(5, 3)
	for seed := uint32(0); seed < 64; seed++ {
		roads := meshRoads(seed * 0x9E3779B1 >> 15)
		want := bruteShortest(roads, from, to)
		path := ShortestRoadPath(roads, from, to)
		if want < 0 {
			assert.Empty(t, path, "seed %d", seed)
			continue
		}
		require.Len(t, path, want, "seed %d", seed)
		require.True(t, domain.IsAdjacent(from, path[0].Rect), "seed %d", seed)
		require.True(t, domain.IsAdjacent(to, path[len(path)-1].Rect), "seed %d", seed)
		for k := 1; k < len(path); k++ {
			require.True(t, linked(path[k-1], path[k]), "seed %d step %d", seed, k)
		}
	}
	// 全部打通时一定连通
	require.Len(t, ShortestRoadPath(meshRoads(1<<17-1), from, to), 5)
}
