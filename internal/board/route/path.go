package route

import (
	"slices"

	"FoodChain/internal/board/domain"

	"github.com/zyedidia/generic/mapset"
)

type cellKey struct{ i, j int }

// graph 是一次查询用的道路图，节点为 roads 下标。
type graph struct {
	roads []*domain.Road
	cells map[cellKey][]int // 同一格按层递增
}

func newGraph(roads []*domain.Road) *graph {
	g := &graph{roads: roads, cells: make(map[cellKey][]int, len(roads))}
	for idx, r := range roads {
		k := cellKey{r.I, r.J}
		g.cells[k] = append(g.cells[k], idx)
	}
	for _, idxs := range g.cells {
		slices.SortStableFunc(idxs, func(a, b int) int { return roads[a].Layer - roads[b].Layer })
	}
	return g
}

// neighbours 按 西、北、东、南 再按层的顺序给出相连道路。
func (g *graph) neighbours(u int, fn func(v int)) {
	r := g.roads[u]
	for _, d := range domain.Directions {
		if !r.Dirs.Has(d) {
			continue
		}
		di, dj := d.Delta()
		for _, v := range g.cells[cellKey{r.I + di, r.J + dj}] {
			if g.roads[v].Dirs.Has(d.Opposite()) {
				fn(v)
			}
		}
	}
}

func (g *graph) adjacentTo(rect domain.Rect) []int {
	var out []int
	for idx, r := range g.roads {
		if domain.IsAdjacent(rect, r.Rect) {
			out = append(out, idx)
		}
	}
	return out
}

// ShortestRoadPath 从紧邻 from 的道路出发做多源 BFS，遇到第一条紧邻 to 的道路即停止。
// 结果从 from 一侧排到 to 一侧；不连通返回空切片。
func ShortestRoadPath(roads []*domain.Road, from, to domain.Rect) []*domain.Road {
	g := newGraph(roads)
	targets := mapset.Of(g.adjacentTo(to)...)
	if targets.Size() == 0 {
		return nil
	}

	prev := make([]int, len(roads))
	seen := make([]bool, len(roads))
	queue := make([]int, 0, len(roads))
	for _, s := range g.adjacentTo(from) {
		seen[s] = true
		prev[s] = -1
		queue = append(queue, s)
	}

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		if targets.Has(u) {
			return g.walkBack(prev, u)
		}
		g.neighbours(u, func(v int) {
			if seen[v] {
				return
			}
			seen[v] = true
			prev[v] = u
			queue = append(queue, v)
		})
	}
	return nil
}

func (g *graph) walkBack(prev []int, end int) []*domain.Road {
	var path []*domain.Road
	for u := end; u >= 0; u = prev[u] {
		path = append(path, g.roads[u])
	}
	slices.Reverse(path)
	return path
}

// Reachable 从紧邻 from 的道路出发，maxHops 步以内能到达的道路（紧邻的算 0 步），按到达顺序。
// maxHops < 0 时不限步数。
func Reachable(roads []*domain.Road, from domain.Rect, maxHops int) []*domain.Road {
	g := newGraph(roads)
	dist := make([]int, len(roads))
	for idx := range dist {
		dist[idx] = -1
	}
	var queue []int
	for _, s := range g.adjacentTo(from) {
		dist[s] = 0
		queue = append(queue, s)
	}
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		if maxHops >= 0 && dist[u] >= maxHops {
			continue
		}
		g.neighbours(u, func(v int) {
			if dist[v] >= 0 {
				return
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		})
	}

	out := make([]*domain.Road, 0, len(queue))
	for _, idx := range queue {
		out = append(out, roads[idx])
	}
	return out
}
