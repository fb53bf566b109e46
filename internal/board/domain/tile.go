package domain

import (
	"FoodChain/internal/shared/gameconfig/layout"
	"FoodChain/modules/kit/logx"

	"go.uber.org/zap"
)

// Tile 是 1x1 的格子。建好之后只读，寻路状态不写在格子上。
type Tile struct {
	I         int
	J         int
	Occupants []Occupant
}

func (t Tile) Rect() Rect {
	return Cell(t.I, t.J)
}

// DecodeIssue 记录一个被跳过的编码，坐标为棋盘绝对坐标。
type DecodeIssue struct {
	I     int
	J     int
	Layer int
	Code  string
	Err   error
}

// BuildChunk 解码一块布局，坐标相对于块左上角。无法识别的编码记日志并跳过。
func BuildChunk(chunk layout.Chunk, log logx.Logger) ([]Tile, []DecodeIssue) {
	log = logx.OrNop(log)
	var (
		tiles  []Tile
		issues []DecodeIssue
	)
	for j, row := range chunk {
		for i, cell := range row {
			t := Tile{I: i, J: j}
			for layer, code := range cell.Codes {
				occ, err := ParseCell(code, layer)
				if err != nil {
					issues = append(issues, DecodeIssue{I: i, J: j, Layer: layer, Code: code, Err: err})
					log.Warn("layout cell skipped",
						zap.Int("i", i), zap.Int("j", j), zap.String("code", code), zap.Error(err))
					continue
				}
				if occ != nil {
					t.Occupants = append(t.Occupants, occ)
				}
			}
			tiles = append(tiles, t)
		}
	}
	return tiles, issues
}

// Grid 是拼好的整张棋盘，Tiles 行优先存放。
type Grid struct {
	Width  int
	Height int
	Tiles  []Tile
}

// BuildGrid 按从左到右、从上到下拼块，第 k 块偏移
// ((k % chunksWide) * chunkWidth, (k / chunksWide) * chunkHeight)。
func BuildGrid(l *layout.Layout, log logx.Logger) (*Grid, []DecodeIssue) {
	g := &Grid{
		Width:  l.ChunksWide * l.ChunkWidth,
		Height: l.ChunksHigh() * l.ChunkHeight,
	}
	g.Tiles = make([]Tile, g.Width*g.Height)
	for idx := range g.Tiles {
		g.Tiles[idx] = Tile{I: idx % g.Width, J: idx / g.Width}
	}

	var issues []DecodeIssue
	for k, chunk := range l.Chunks {
		oi := (k % l.ChunksWide) * l.ChunkWidth
		oj := (k / l.ChunksWide) * l.ChunkHeight
		tiles, chunkIssues := BuildChunk(chunk, log)
		for _, t := range tiles {
			t.I += oi
			t.J += oj
			g.Tiles[t.J*g.Width+t.I] = t
		}
		for _, is := range chunkIssues {
			is.I += oi
			is.J += oj
			issues = append(issues, is)
		}
	}
	return g, issues
}

func (g *Grid) Tile(i, j int) (Tile, bool) {
	if i < 0 || j < 0 || i >= g.Width || j >= g.Height {
		return Tile{}, false
	}
	return g.Tiles[j*g.Width+i], true
}

// Contains 矩形是否完全落在棋盘内。
func (g *Grid) Contains(r Rect) bool {
	return r.W > 0 && r.H > 0 && r.I >= 0 && r.J >= 0 && r.I+r.W <= g.Width && r.J+r.H <= g.Height
}
