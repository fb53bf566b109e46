package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Option 调整一次加载行为。
type Option func(*options)

type options struct {
	defaults map[string]any
	watch    bool
	onChange func(error)
	envs     map[string]string
}

// WithDefaults 为缺省的 key 提供默认值，key 使用点号路径，例如 "game.unit_price"。
func WithDefaults(defaults map[string]any) Option {
	return func(o *options) { o.defaults = defaults }
}

// WithWatch 开启文件热更新，onChange 收到重新解码的结果。
func WithWatch(onChange func(error)) Option {
	return func(o *options) {
		o.watch = true
		o.onChange = onChange
	}
}

// WithEnv 把环境变量绑定到 key，环境变量优先。
func WithEnv(key, env string) Option {
	return func(o *options) {
		if o.envs == nil {
			o.envs = make(map[string]string)
		}
		o.envs[key] = env
	}
}

var reloadMu sync.Mutex

// Load 读取 path 指向的配置文件并解码到 out（结构体指针，按 mapstructure tag 解码）。
func Load(path string, out any, opts ...Option) error {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if !fileExist(path) {
		return fmt.Errorf("config file not exist, path=%s", path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	for k, val := range o.defaults {
		v.SetDefault(k, val)
	}
	for k, env := range o.envs {
		if err := v.BindEnv(k, env); err != nil {
			return fmt.Errorf("bind env %s: %w", env, err)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := decode(v, out); err != nil {
		return err
	}

	if o.watch {
		v.OnConfigChange(func(e fsnotify.Event) {
			reloadMu.Lock()
			defer reloadMu.Unlock()
			err := decode(v, out)
			if o.onChange != nil {
				o.onChange(err)
			}
		})
		v.WatchConfig()
	}
	return nil
}

func decode(v *viper.Viper, out any) error {
	err := v.Unmarshal(out, func(c *mapstructure.DecoderConfig) {
		c.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

// Find 从 startDir 向上查找 rel，找不到返回错误。
func Find(startDir, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		if fileExist(rel) {
			return rel, nil
		}
		return "", fmt.Errorf("config file not exist, path=%s", rel)
	}
	dir := startDir
	for {
		candidate := filepath.Join(dir, rel)
		if fileExist(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("config file not exist, searched %s from %s", rel, startDir)
		}
		dir = parent
	}
}

func fileExist(name string) bool {
	st, err := os.Stat(name)
	return err == nil && !st.IsDir()
}
