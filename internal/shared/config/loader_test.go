package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type sample struct {
	Game struct {
		UnitPrice int           `mapstructure:"unit_price"`
		Tick      time.Duration `mapstructure:"tick"`
		Layout    string        `mapstructure:"layout"`
	} `mapstructure:"game"`
	Secret string `mapstructure:"jwt_secret"`
}

func writeConf(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, "configs", "conf.yml")
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoad_默认值与duration解码(t *testing.T) {
	dir := t.TempDir()
	p := writeConf(t, dir, "game:\n  tick: 50ms\n")

	var s sample
	err := Load(p, &s, WithDefaults(map[string]any{"game.unit_price": 10, "game.layout": "embedded"}))
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if s.Game.UnitPrice != 10 || s.Game.Layout != "embedded" {
		t.Fatalf("默认值未生效: %+v", s.Game)
	}
	if s.Game.Tick != 50*time.Millisecond {
		t.Fatalf("duration 解码失败: %v", s.Game.Tick)
	}
}

func TestLoad_环境变量优先(t *testing.T) {
	dir := t.TempDir()
	p := writeConf(t, dir, "jwt_secret: from-file\n")
	t.Setenv("FOODCHAIN_TEST_SECRET", "from-env")

	var s sample
	if err := Load(p, &s, WithEnv("jwt_secret", "FOODCHAIN_TEST_SECRET")); err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if s.Secret != "from-env" {
		t.Fatalf("期望环境变量优先, got=%q", s.Secret)
	}
}

func TestFind_向上查找(t *testing.T) {
	dir := t.TempDir()
	want := writeConf(t, dir, "game: {}\n")
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	got, err := Find(nested, "configs/conf.yml")
	if err != nil || got != want {
		t.Fatalf("Find got=%q err=%v want=%q", got, err, want)
	}
	if _, err := Find(nested, "configs/missing.yml"); err == nil {
		t.Fatalf("期望找不到时报错")
	}
}
