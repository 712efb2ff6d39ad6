package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "mapcards"

type Config struct {
	Server ServerConfig `koanf:"server"`
	Fetch  FetchConfig  `koanf:"fetch"`
	Fonts  FontsConfig  `koanf:"fonts"`
	Assets AssetsConfig `koanf:"assets"`
	Log    LogConfig    `koanf:"log"`
}

type ServerConfig struct {
	Addr string `koanf:"addr"` // listen address, e.g. ":8080"
	Mode string `koanf:"mode"` // gin mode: "release", "debug" or "test"
}

type FetchConfig struct {
	Timeout   string `koanf:"timeout"`    // Go duration, default "12s"
	UserAgent string `koanf:"user_agent"` // sent on every outbound request
}

type FontsConfig struct {
	Dirs   []string `koanf:"dirs"`   // extra font directories registered at startup
	System *bool    `koanf:"system"` // look up host fonts (default: true)
}

type AssetsConfig struct {
	Logo string `koanf:"logo"` // raster logo replacing the built-in mark
	Root string `koanf:"root"` // directory the server may read image files from; empty disables file sources
}

type LogConfig struct {
	Level       string `koanf:"level"`
	Development bool   `koanf:"development"`
}

// Load reads the config files that exist, later files overriding earlier ones,
// then applies the PORT environment override.
func Load() (*Config, error) {
	return LoadFiles(configPaths()...)
}

// LoadFiles is Load with explicit file paths. Missing files are skipped.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	for i, d := range cfg.Fonts.Dirs {
		cfg.Fonts.Dirs[i] = expandPath(d)
	}
	cfg.Assets.Logo = expandPath(cfg.Assets.Logo)
	cfg.Assets.Root = expandPath(cfg.Assets.Root)

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Addr = ":" + strings.TrimPrefix(port, ":")
	}
	return cfg, nil
}

func configPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/mapcards/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ListenAddr returns the server address with its default applied.
func (c *Config) ListenAddr() string {
	if c.Server.Addr == "" {
		return ":8080"
	}
	return c.Server.Addr
}

// GinMode returns the gin mode with its default applied.
func (c *Config) GinMode() string {
	switch c.Server.Mode {
	case "debug", "test", "release":
		return c.Server.Mode
	}
	return "release"
}

// FetchTimeout parses fetch.timeout, defaulting to 12s.
func (c *Config) FetchTimeout() time.Duration {
	d, err := time.ParseDuration(c.Fetch.Timeout)
	if err != nil || d <= 0 {
		return 12 * time.Second
	}
	return d
}

func (c *Config) UserAgent() string {
	if c.Fetch.UserAgent == "" {
		return appName + "/1.0"
	}
	return c.Fetch.UserAgent
}

// UseSystemFonts reports whether host fonts are consulted (default true).
func (c *Config) UseSystemFonts() bool {
	return c.Fonts.System == nil || *c.Fonts.System
}
