package domain

// Rect 是格子坐标上的轴对齐矩形，占据 [I, I+W) × [J, J+H)。
type Rect struct {
	I int `json:"i"`
	J int `json:"j"`
	W int `json:"w"`
	H int `json:"h"`
}

func Cell(i, j int) Rect {
	return Rect{I: i, J: j, W: 1, H: 1}
}

func (r Rect) Shift(di, dj int) Rect {
	r.I += di
	r.J += dj
	return r
}

func (r Rect) At(i, j int) Rect {
	r.I, r.J = i, j
	return r
}

func (r Rect) Contains(i, j int) bool {
	return i >= r.I && i < r.I+r.W && j >= r.J && j < r.J+r.H
}

// Collides 两个矩形是否重叠（对称）。
func Collides(a, b Rect) bool {
	return a.I < b.I+b.W && b.I < a.I+a.W && a.J < b.J+b.H && b.J < a.J+a.H
}

// IsAdjacent b 沿四个方向之一平移一格后与 a 重叠，且原本不重叠。斜角不算。
func IsAdjacent(a, b Rect) bool {
	if Collides(a, b) {
		return false
	}
	for _, d := range Directions {
		di, dj := d.Delta()
		if Collides(a, b.Shift(di, dj)) {
			return true
		}
	}
	return false
}

// Touches 相邻或重叠。
func Touches(a, b Rect) bool {
	return Collides(a, b) || IsAdjacent(a, b)
}

// Distance 点 (i, j) 到矩形的曼哈顿距离，在矩形内为 0。
func (r Rect) Distance(i, j int) int {
	return axisGap(i, r.I, r.I+r.W-1) + axisGap(j, r.J, r.J+r.H-1)
}

func axisGap(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo - v
	case v > hi:
		return v - hi
	default:
		return 0
	}
}

// Dir 是道路连通方向，编号与布局文件一致。
type Dir uint8

const (
	West  Dir = 1
	North Dir = 2
	East  Dir = 3
	South Dir = 4
)

// Directions 固定的遍历顺序：西、北、东、南。寻路平局按这个顺序决出。
var Directions = [4]Dir{West, North, East, South}

func (d Dir) Delta() (di, dj int) {
	switch d {
	case West:
		return -1, 0
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	}
	return 0, 0
}

func (d Dir) Opposite() Dir {
	switch d {
	case West:
		return East
	case East:
		return West
	case North:
		return South
	case South:
		return North
	}
	return 0
}

func (d Dir) Valid() bool {
	return d >= West && d <= South
}

func (d Dir) String() string {
	switch d {
	case West:
		return "west"
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	}
	return "none"
}

// MarshalText 让 []Dir 编码成 ["west", ...] 而不是 base64。
func (d Dir) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DirSet 道路连通掩码。
type DirSet uint8

func Dirs(ds ...Dir) DirSet {
	var s DirSet
	for _, d := range ds {
		s = s.With(d)
	}
	return s
}

func (s DirSet) With(d Dir) DirSet {
	if !d.Valid() {
		return s
	}
	return s | 1<<(d-1)
}

func (s DirSet) Has(d Dir) bool {
	return d.Valid() && s&(1<<(d-1)) != 0
}

// List 按 Directions 顺序列出。
func (s DirSet) List() []Dir {
	out := make([]Dir, 0, 4)
	for _, d := range Directions {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}
