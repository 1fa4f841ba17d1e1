// Package cli implements the camo command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/andreaperaltro/camo/pkg/buildinfo"
	"github.com/andreaperaltro/camo/pkg/cache"
	"github.com/andreaperaltro/camo/pkg/config"
	"github.com/andreaperaltro/camo/pkg/gallery"
	"github.com/andreaperaltro/camo/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "camo"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath is an explicit profile path; empty means the default
	// location, where a missing file is fine.
	ConfigPath string

	cfgOnce sync.Once
	cfg     *config.Config
	cfgErr  error
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "camo",
		Short:        "Camo generates seamless camouflage textures",
		Long:         `Camo is a CLI tool for generating procedural camouflage textures: six pattern families driven by seeded noise, post-processed and verified to tile without visible seams.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config profile (default ~/.config/camo/camo.toml)")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.galleryCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig loads the profile once and caches the result.
func (c *CLI) loadConfig() (*config.Config, error) {
	c.cfgOnce.Do(func() {
		c.cfg, c.cfgErr = config.Load(c.ConfigPath)
	})
	return c.cfg, c.cfgErr
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cch, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cch, nil, c.Logger), nil
}

// newCache builds the artifact cache selected by the profile.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(cfg.Cache.Backend) {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Pass,
			DB:       cfg.Cache.DB,
		})
	default:
		dir := cfg.Cache.Dir
		if dir == "" {
			dir, err = cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
		}
		return cache.NewFileCache(dir)
	}
}

// newGallery builds the gallery store selected by the profile.
func (c *CLI) newGallery(ctx context.Context) (gallery.Store, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(cfg.Gallery.Backend) {
	case "memory":
		return gallery.NewMemoryStore(), nil
	case "mongo":
		return gallery.NewMongoStore(ctx, gallery.MongoConfig{
			URI:        cfg.Gallery.URI,
			Database:   cfg.Gallery.Database,
			Collection: cfg.Gallery.Collection,
		})
	default:
		return gallery.NewFileStore(cfg.Gallery.Dir)
	}
}

// cacheDir returns the cache directory using XDG standard (~/.cache/camo/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatPNG}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
