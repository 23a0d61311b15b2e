package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config file locations.
const (
	LocalFileName = ".gloss.yaml"
	XDGFileName   = "gloss/config.yaml"
)

// AppConfig represents the application's configuration from .gloss.yaml.
type AppConfig struct {
	Theme          string `yaml:"theme,omitempty"`
	ThemeFile      string `yaml:"theme_file,omitempty"`
	Profile        string `yaml:"profile,omitempty"`
	DarkBackground *bool  `yaml:"dark_background,omitempty"`
	NoColor        bool   `yaml:"no_color"`
	Width          int    `yaml:"width,omitempty"`
	Debug          bool   `yaml:"debug"`
}

// DefaultThemeName is used when nothing selects a theme.
const DefaultThemeName = "default"

// LoadConfig finds and loads the config file for dir. It returns the
// defaults and an empty path when there is no config file.
func LoadConfig(dir string, log zerolog.Logger) (*AppConfig, string) {
	path := FindConfig(dir)
	if path == "" {
		log.Debug().Str("dir", dir).Msg("no config file found, using defaults")
		return &AppConfig{}, ""
	}
	return LoadConfigFrom(path, log), path
}

// LoadConfigFrom loads a config file. Read and parse errors are logged as
// warnings and yield the defaults.
func LoadConfigFrom(path string, log zerolog.Logger) *AppConfig {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", path).Msg("error reading config file, using defaults")
		} else {
			log.Debug().Str("path", path).Msg("config file not found, using defaults")
		}
		return &AppConfig{}
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("error parsing config file, using defaults")
		return &AppConfig{}
	}

	if cfg.Width < 0 {
		log.Warn().Int("width", cfg.Width).Str("path", path).Msg("negative width ignored")
		cfg.Width = 0
	}

	log.Debug().Str("path", path).Str("theme", cfg.Theme).Str("profile", cfg.Profile).Msg("loaded config file")
	return &cfg
}

// FindConfig returns the config file for dir: .gloss.yaml in dir itself,
// then gloss/config.yaml in the XDG config directories. It returns "" when
// neither exists.
func FindConfig(dir string) string {
	local := filepath.Join(dir, LocalFileName)
	if fi, err := os.Stat(local); err == nil && !fi.IsDir() {
		return local
	}
	if p, err := xdg.SearchConfigFile(XDGFileName); err == nil {
		return p
	}
	return ""
}
