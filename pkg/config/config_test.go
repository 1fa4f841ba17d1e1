package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/andreaperaltro/camo/pkg/errors"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "camo.toml")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, `
[cache]
backend = "redis"
addr = "redis:6379"
db = 2

[gallery]
backend = "mongo"
uri = "mongodb://db:27017"

[server]
addr = ":9090"

[palettes.alpine]
colors = ["#E8E8E4", "#9AA5A8", "#4F5B5E"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := cfg.Cache.Backend, "redis"; got != want {
		t.Errorf("cache backend = %q, want %q", got, want)
	}
	if got, want := cfg.Cache.Addr, "redis:6379"; got != want {
		t.Errorf("cache addr = %q, want %q", got, want)
	}
	if got, want := cfg.Gallery.URI, "mongodb://db:27017"; got != want {
		t.Errorf("gallery uri = %q, want %q", got, want)
	}
	if got, want := cfg.Server.Addr, ":9090"; got != want {
		t.Errorf("server addr = %q, want %q", got, want)
	}
	if got := len(cfg.Palettes["alpine"].Colors); got != 3 {
		t.Errorf("alpine palette has %d colors, want 3", got)
	}
}

func TestLoadPartialProfileKeepsDefaults(t *testing.T) {
	path := writeProfile(t, `
[server]
addr = ":3000"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := cfg.Cache.Backend, "file"; got != want {
		t.Errorf("cache backend = %q, want default %q", got, want)
	}
	if got, want := cfg.Server.Addr, ":3000"; got != want {
		t.Errorf("server addr = %q, want %q", got, want)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeProfile(t, "[cache\nbackend =")
	if _, err := Load(path); !errors.Is(err, errors.ErrCodeInvalidProfile) {
		t.Errorf("err = %v, want INVALID_PROFILE", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad cache backend", "[cache]\nbackend = \"memcached\""},
		{"bad gallery backend", "[gallery]\nbackend = \"sqlite\""},
		{"empty palette", "[palettes.bare]\ncolors = []"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeProfile(t, tc.body)
			if _, err := Load(path); !errors.Is(err, errors.ErrCodeInvalidProfile) {
				t.Errorf("err = %v, want INVALID_PROFILE", err)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Cache.Backend != "file" || cfg.Gallery.Backend != "file" || cfg.Server.Addr != ":8080" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
