package serverconfig

import "time"

type Config struct {
	HTTPServer HTTPServerConfig `yaml:"httpserver" mapstructure:"httpserver"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	JWTSecret  string           `yaml:"jwt_secret" mapstructure:"jwt_secret"`
	Actor      ActorConfig      `yaml:"actor" mapstructure:"actor"`
	Game       GameConfig       `yaml:"game" mapstructure:"game"`
}

type HTTPServerConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port"`
	// NeedSecret 为 false 时 WS 不做握手加密，仅用于本地调试
	NeedSecret bool `yaml:"need_secret" mapstructure:"need_secret"`
}

type LogConfig struct {
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"` // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level"`
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}

type ActorConfig struct {
	AskTimeout time.Duration `yaml:"ask_timeout" mapstructure:"ask_timeout"`
}

type GameConfig struct {
	// Layout 为空时使用内置布局
	Layout        string          `yaml:"layout" mapstructure:"layout"`
	UnitPrice     int             `yaml:"unit_price" mapstructure:"unit_price"`
	HouseCapacity int             `yaml:"house_capacity" mapstructure:"house_capacity"`
	DinerWidth    int             `yaml:"diner_width" mapstructure:"diner_width"`
	DinerHeight   int             `yaml:"diner_height" mapstructure:"diner_height"`
	DrinkRange    int             `yaml:"drink_range" mapstructure:"drink_range"`
	StartCash     int             `yaml:"start_cash" mapstructure:"start_cash"`
	MaxPlayers    int             `yaml:"max_players" mapstructure:"max_players"`
	Narration     NarrationConfig `yaml:"narration" mapstructure:"narration"`
}

// NarrationConfig 的停顿/步进以 tick 计，tick 换算成真实时长。
type NarrationConfig struct {
	Tick       time.Duration `yaml:"tick" mapstructure:"tick"`
	FirstPause int           `yaml:"first_pause" mapstructure:"first_pause"`
	Step       int           `yaml:"step" mapstructure:"step"`
	TurnPause  int           `yaml:"turn_pause" mapstructure:"turn_pause"`
	FinalPause int           `yaml:"final_pause" mapstructure:"final_pause"`
	// ShortPause 只有一格道路时去程和回程各停一次
	ShortPause int `yaml:"short_pause" mapstructure:"short_pause"`
}
