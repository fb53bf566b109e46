package domain

import (
	"regexp"
	"strconv"

	"FoodChain/internal/shared/gameconfig/food"
)

// Occupant 是布局格子解码出的描述，封闭集合：RoadSpec / HouseSpec / DrinkSpec / DecorationSpec。
type Occupant interface {
	occupant()
}

type RoadSpec struct {
	Dirs  DirSet
	Layer int
}

// HouseSpec 房屋编码 h<入口方向>-<编号>，编号全局唯一。
type HouseSpec struct {
	Entrance Dir
	Number   int
}

type DrinkSpec struct {
	Kind  food.Kind
	Layer int
}

type DecorationSpec struct {
	Name  string
	Layer int
}

func (RoadSpec) occupant()       {}
func (HouseSpec) occupant()      {}
func (DrinkSpec) occupant()      {}
func (DecorationSpec) occupant() {}

var cellCodeRe = regexp.MustCompile(`^([a-z])(\d*)(?:-(\d+))?$`)

var decorations = map[byte]string{
	't': "tree",
	'p': "pond",
}

const emptyCode = "e"

// ParseCell 解码单个编码。空地返回 (nil, nil)；无法识别返回 ErrUnknownCode / ErrMalformedCode，
// 调用方记录后跳过。
func ParseCell(code string, layer int) (Occupant, error) {
	m := cellCodeRe.FindStringSubmatch(code)
	if m == nil {
		return nil, ErrMalformedCode.WithData("code", code)
	}
	prefix, digits, suffix := m[1][0], m[2], m[3]

	switch {
	case code == emptyCode:
		return nil, nil
	case prefix == 'r':
		return parseRoad(code, digits, suffix, layer)
	case prefix == 'h':
		return parseHouse(code, digits, suffix)
	}

	if digits != "" || suffix != "" {
		return nil, ErrMalformedCode.WithData("code", code)
	}
	if kind, ok := food.FromLetter(prefix); ok {
		return DrinkSpec{Kind: kind, Layer: layer}, nil
	}
	if name, ok := decorations[prefix]; ok {
		return DecorationSpec{Name: name, Layer: layer}, nil
	}
	return nil, ErrUnknownCode.WithData("code", code)
}

func parseRoad(code, digits, suffix string, layer int) (Occupant, error) {
	if digits == "" || suffix != "" || len(digits) > 4 {
		return nil, ErrMalformedCode.WithData("code", code)
	}
	var dirs DirSet
	for i := 0; i < len(digits); i++ {
		d := Dir(digits[i] - '0')
		if !d.Valid() || dirs.Has(d) {
			return nil, ErrMalformedCode.WithData("code", code)
		}
		dirs = dirs.With(d)
	}
	return RoadSpec{Dirs: dirs, Layer: layer}, nil
}

func parseHouse(code, digits, suffix string) (Occupant, error) {
	if len(digits) != 1 || suffix == "" {
		return nil, ErrMalformedCode.WithData("code", code)
	}
	entrance := Dir(digits[0] - '0')
	number, err := strconv.Atoi(suffix)
	if !entrance.Valid() || err != nil || number <= 0 {
		return nil, ErrMalformedCode.WithData("code", code)
	}
	return HouseSpec{Entrance: entrance, Number: number}, nil
}
