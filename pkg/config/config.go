// Package config loads the optional TOML configuration profile.
//
// The profile sets defaults shared by the CLI and the server: where cached
// artifacts and the gallery live, what address the server binds to, and any
// user-defined palettes. Command-line flags always override profile values.
//
// Example profile (~/.config/camo/camo.toml):
//
//	[cache]
//	backend = "file"          # file, redis, none
//	dir = "~/.cache/camo"
//
//	[gallery]
//	backend = "file"          # file, mongo, memory
//
//	[server]
//	addr = ":8080"
//
//	[palettes.alpine]
//	colors = ["#E8E8E4", "#9AA5A8", "#4F5B5E", "#2A3132"]
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/andreaperaltro/camo/pkg/errors"
)

// Config is the decoded profile.
type Config struct {
	Cache    CacheConfig        `toml:"cache"`
	Gallery  GalleryConfig      `toml:"gallery"`
	Server   ServerConfig       `toml:"server"`
	Palettes map[string]Palette `toml:"palettes"`
}

// CacheConfig selects and configures the artifact cache backend.
type CacheConfig struct {
	Backend string `toml:"backend"` // file, redis, none
	Dir     string `toml:"dir"`
	Addr    string `toml:"addr"` // redis only
	Pass    string `toml:"pass"` // redis only
	DB      int    `toml:"db"`   // redis only
}

// GalleryConfig selects and configures the gallery backend.
type GalleryConfig struct {
	Backend    string `toml:"backend"` // file, mongo, memory
	Dir        string `toml:"dir"`
	URI        string `toml:"uri"`      // mongo only
	Database   string `toml:"database"` // mongo only
	Collection string `toml:"collection"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Palette is a user-defined color set usable anywhere a family palette is.
type Palette struct {
	Colors []string `toml:"colors"`
}

// Default returns the configuration used when no profile exists.
func Default() *Config {
	return &Config{
		Cache:   CacheConfig{Backend: "file"},
		Gallery: GalleryConfig{Backend: "file"},
		Server:  ServerConfig{Addr: ":8080"},
	}
}

// DefaultPath returns the standard profile location,
// ~/.config/camo/camo.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "camo", "camo.toml"), nil
}

// Load reads the profile at path. If path is empty the default location is
// used, and a missing file there is not an error: defaults are returned.
// An explicitly named file that is missing or malformed is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return nil, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return Default(), nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProfile, err, "read config %s", path)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProfile, err, "parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Cache.Backend) {
	case "", "file", "redis", "none":
	default:
		return errors.New(errors.ErrCodeInvalidProfile, "unknown cache backend %q", c.Cache.Backend)
	}
	switch strings.ToLower(c.Gallery.Backend) {
	case "", "file", "mongo", "memory":
	default:
		return errors.New(errors.ErrCodeInvalidProfile, "unknown gallery backend %q", c.Gallery.Backend)
	}
	for name, p := range c.Palettes {
		if len(p.Colors) == 0 {
			return errors.New(errors.ErrCodeInvalidProfile, "palette %q has no colors", name)
		}
	}
	return nil
}
