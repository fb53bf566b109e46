package serverconfig

import (
	"os"
	"sync/atomic"
	"time"

	"FoodChain/internal/shared/config"
)

const defaultConfigRelPath = "configs/conf.yml"

var current atomic.Pointer[Config]

// Defaults 是配置文件缺省时的取值。
func Defaults() map[string]any {
	return map[string]any{
		"httpserver.host":            "0.0.0.0",
		"httpserver.port":            8080,
		"httpserver.need_secret":     true,
		"log.level":                  "info",
		"actor.ask_timeout":          3 * time.Second,
		"game.unit_price":            10,
		"game.house_capacity":        3,
		"game.diner_width":           2,
		"game.diner_height":          2,
		"game.drink_range":           3,
		"game.start_cash":            0,
		"game.max_players":           5,
		"game.narration.tick":        time.Second / 60,
		"game.narration.first_pause": 200,
		"game.narration.step":        20,
		"game.narration.turn_pause":  100,
		"game.narration.final_pause": 100,
		"game.narration.short_pause": 200,
	}
}

// Load 查找并加载配置。path 为空时从工作目录向上查找 configs/conf.yml。
// 文件变更后重新解码，Conf() 返回最新快照。
func Load(path string) (*Config, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		if path, err = config.Find(wd, defaultConfigRelPath); err != nil {
			return nil, err
		}
	}

	var c Config
	err := config.Load(path, &c,
		config.WithDefaults(Defaults()),
		config.WithEnv("jwt_secret", "JWT_SECRET"),
		config.WithWatch(func(err error) {
			if err != nil {
				return
			}
			snapshot := c
			current.Store(&snapshot)
		}),
	)
	if err != nil {
		return nil, err
	}
	snapshot := c
	current.Store(&snapshot)

	// 签发令牌只认环境变量，配置里的 jwt_secret 回填到环境，方便本地开发
	if os.Getenv("JWT_SECRET") == "" && c.JWTSecret != "" {
		_ = os.Setenv("JWT_SECRET", c.JWTSecret)
	}
	return &snapshot, nil
}

// Conf 返回最近一次加载的配置，未加载时为 nil。
func Conf() *Config {
	return current.Load()
}
