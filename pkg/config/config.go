// Package config loads the showviz configuration file.
//
// The file is TOML and every key is optional:
//
//	target     = "auto"            # auto | gui | browser | none
//	client_dir = "/opt/showviz/bin" # overrides the locator's install dir
//
//	[cache]
//	enabled = true
//	dir     = "~/.cache/showviz/artifacts"
//
//	[store]
//	backend = "file"               # memory | file | redis | mongo
//	dir     = ""
//	redis_addr = "localhost:6379"
//	redis_db   = 0
//	mongo_uri      = "mongodb://localhost:27017"
//	mongo_database = "showviz"
//
//	[viewer]
//	addr     = "127.0.0.1:8765"
//	base_url = "http://127.0.0.1:8765"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/showviz/pkg/errors"
	"github.com/matzehuels/showviz/pkg/plot"
	"github.com/matzehuels/showviz/pkg/store"
	"github.com/matzehuels/showviz/pkg/viewer"
)

// Config is the showviz configuration.
type Config struct {
	Target    string `toml:"target"`
	ClientDir string `toml:"client_dir"`

	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
	Viewer ViewerConfig `toml:"viewer"`
}

// CacheConfig configures the export artifact cache.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// StoreConfig configures the plot store used by the viewer.
type StoreConfig struct {
	Backend       string `toml:"backend"`
	Dir           string `toml:"dir"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// ViewerConfig configures the plot viewer.
type ViewerConfig struct {
	Addr    string `toml:"addr"`
	BaseURL string `toml:"base_url"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Target: plot.TargetAuto,
		Cache:  CacheConfig{Enabled: true},
		Store:  StoreConfig{Backend: store.BackendFile},
		Viewer: ViewerConfig{Addr: viewer.DefaultAddr},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/showviz/config.toml, falling back to
// ~/.config/showviz/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "showviz", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "showviz", "config.toml"), nil
}

// Load reads the configuration at path over the defaults.
// An empty path means DefaultPath. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidInput, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	cfg.expandPaths()
	return cfg, cfg.Validate()
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	if !plot.ValidTarget(c.Target) {
		return errors.New(errors.ErrCodeInvalidTarget,
			"unknown target %q (valid: %s)", c.Target, strings.Join(plot.Targets, ", "))
	}
	for _, b := range store.Backends {
		if c.Store.Backend == b {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidInput,
		"unknown store backend %q (valid: %s)", c.Store.Backend, strings.Join(store.Backends, ", "))
}

// StoreConfig converts the [store] table into a store.Config.
func (c Config) StoreConfig() store.Config {
	return store.Config{
		Backend:       c.Store.Backend,
		Dir:           c.Store.Dir,
		RedisAddr:     c.Store.RedisAddr,
		RedisPassword: c.Store.RedisPassword,
		RedisDB:       c.Store.RedisDB,
		MongoURI:      c.Store.MongoURI,
		MongoDatabase: c.Store.MongoDatabase,
	}
}

// ViewerBaseURL returns the URL plots are linked under.
func (c Config) ViewerBaseURL() string {
	if c.Viewer.BaseURL != "" {
		return c.Viewer.BaseURL
	}
	return "http://" + c.Viewer.Addr
}

func (c *Config) expandPaths() {
	c.ClientDir = expandHome(c.ClientDir)
	c.Cache.Dir = expandHome(c.Cache.Dir)
	c.Store.Dir = expandHome(c.Store.Dir)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
