package food

import "fmt"

// Kind 是食物/饮料种类。文本形式为小写名称，JSON 与配置里都用名称。
type Kind uint8

const (
	Unknown Kind = iota
	Burger
	Pizza
	Cola
	Beer
	Lemonade
)

type meta struct {
	name   string
	letter byte // 布局文件里的单字母编码，只有饮料有
	drink  bool
}

var kinds = map[Kind]meta{
	Burger:   {name: "burger"},
	Pizza:    {name: "pizza"},
	Cola:     {name: "cola", letter: 'c', drink: true},
	Beer:     {name: "beer", letter: 'b', drink: true},
	Lemonade: {name: "lemonade", letter: 'l', drink: true},
}

// All 按枚举顺序返回全部种类。
func All() []Kind {
	return []Kind{Burger, Pizza, Cola, Beer, Lemonade}
}

func (k Kind) String() string {
	if m, ok := kinds[k]; ok {
		return m.name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

func (k Kind) IsDrink() bool {
	return kinds[k].drink
}

// FromLetter 解析布局里的饮料字母。
func FromLetter(c byte) (Kind, bool) {
	for k, m := range kinds {
		if m.letter != 0 && m.letter == c {
			return k, true
		}
	}
	return Unknown, false
}

func Parse(name string) (Kind, error) {
	for k, m := range kinds {
		if m.name == name {
			return k, nil
		}
	}
	return Unknown, fmt.Errorf("unknown food kind %q", name)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid food kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
