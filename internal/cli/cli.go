// Package cli implements the showviz command-line interface.
//
// The commands read CSV files into Arrow tables, pick columns, and hand them
// to the viz dispatcher:
//   - show: choose an encoding automatically and display it
//   - scatter, heatmap, categorical-heatmap, box-plot, histogram,
//     item-frequency, summary: force an encoding
//   - explain: show why an encoding was chosen, as a decision diagram
//   - serve: run the plot viewer used by the "browser" target
//   - locate: print where the rendering client is expected
//   - cache: manage the export cache
//
// All commands support --verbose (-v) for debug-level logging, --config for
// an alternate configuration file and --target to override the display
// target for one invocation.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/showviz/pkg/cache"
	"github.com/matzehuels/showviz/pkg/client"
	"github.com/matzehuels/showviz/pkg/config"
	"github.com/matzehuels/showviz/pkg/plot"
	"github.com/matzehuels/showviz/pkg/store"
	"github.com/matzehuels/showviz/pkg/viewer"
	"github.com/matzehuels/showviz/pkg/viz"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "showviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	target     string
	verbose    bool

	// closers run after the command finishes.
	closers []io.Closer
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// setup loads the configuration and applies the display target.
func (c *CLI) setup(ctx context.Context) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.target != "" {
		cfg.Target = c.target
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.Config = cfg

	if err := plot.SetTarget(cfg.Target); err != nil {
		return err
	}
	plot.SetLauncher(plot.NewLauncher(c.Logger))

	if cfg.Target == plot.TargetBrowser {
		s, err := c.openStore(ctx)
		if err != nil {
			return err
		}
		plot.RegisterBrowser(viewer.NewPublisher(s, cfg.ViewerBaseURL()))
	}
	return nil
}

// Close releases resources opened by commands.
func (c *CLI) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			c.Logger.Debug("close", "error", err)
		}
	}
	c.closers = nil
}

// =============================================================================
// Factories
// =============================================================================

// newDispatcher creates a dispatcher wired to the configured client
// location and export cache.
func (c *CLI) newDispatcher() (*viz.Dispatcher, error) {
	d := viz.NewDispatcher(c.Logger)
	d.Locator = c.locator()

	ch, err := c.newCache()
	if err != nil {
		return nil, err
	}
	d.PlotOptions = []plot.Option{plot.WithCache(ch), plot.WithLogger(c.Logger)}
	return d, nil
}

// locator honours client_dir from the config; otherwise the client is
// located next to the running executable, recomputed on every call.
func (c *CLI) locator() viz.Locator {
	if c.Config.ClientDir == "" {
		return viz.LocatorFunc(client.Locate)
	}
	return client.Locator{Platform: client.CurrentPlatform(), InstallDir: c.Config.ClientDir}
}

func (c *CLI) newCache() (cache.Cache, error) {
	if !c.Config.Cache.Enabled {
		return cache.NewNullCache(), nil
	}
	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, fc)
	return fc, nil
}

func (c *CLI) openStore(ctx context.Context) (store.Store, error) {
	s, err := store.Open(ctx, c.Config.StoreConfig())
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, s)
	return s, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the export cache directory: the configured one, or
// $XDG_CACHE_HOME/showviz/artifacts, or ~/.cache/showviz/artifacts.
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName, "artifacts"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName, "artifacts"), nil
}
