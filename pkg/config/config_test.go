package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/showviz/pkg/errors"
	"github.com/matzehuels/showviz/pkg/store"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Target != "auto" || !cfg.Cache.Enabled || cfg.Store.Backend != store.BackendFile {
		t.Errorf("Default() = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
target = "browser"
client_dir = "/opt/showviz/bin"

[cache]
enabled = false

[store]
backend = "redis"
redis_addr = "redis:6379"
redis_db = 2

[viewer]
addr = "0.0.0.0:9000"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Target != "browser" || cfg.ClientDir != "/opt/showviz/bin" {
		t.Errorf("top-level keys: %+v", cfg)
	}
	if cfg.Cache.Enabled {
		t.Error("cache.enabled should be false")
	}
	sc := cfg.StoreConfig()
	if sc.Backend != store.BackendRedis || sc.RedisAddr != "redis:6379" || sc.RedisDB != 2 {
		t.Errorf("StoreConfig() = %+v", sc)
	}
	if cfg.ViewerBaseURL() != "http://0.0.0.0:9000" {
		t.Errorf("ViewerBaseURL() = %q", cfg.ViewerBaseURL())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"bad target", `target = "notebook"`, errors.ErrCodeInvalidTarget},
		{"bad backend", "[store]\nbackend = \"sqlite\"", errors.ErrCodeInvalidInput},
		{"unknown key", `colour = "blue"`, errors.ErrCodeInvalidInput},
		{"bad toml", `target = `, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("missing default file should not fail: %v", err)
	}
	if cfg.Target != "auto" {
		t.Errorf("Target = %q", cfg.Target)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing explicit file should fail")
	}
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(dir, "showviz", "config.toml") {
		t.Errorf("DefaultPath() = %q", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	if got := expandHome("~/plots"); got != filepath.Join(home, "plots") {
		t.Errorf("expandHome = %q", got)
	}
	if got := expandHome("/abs"); got != "/abs" {
		t.Errorf("expandHome(/abs) = %q", got)
	}
}
