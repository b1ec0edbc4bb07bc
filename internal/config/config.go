package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration.
type Config struct {
	Store StoreConfig `yaml:"store"`
	Log   LogConfig   `yaml:"log"`
	UI    UIConfig    `yaml:"ui"`
}

// StoreConfig selects where cards and subjects live.
type StoreConfig struct {
	Backend string `yaml:"backend" env:"STUDYCARDS_BACKEND" env-default:"file"`
	Dir     string `yaml:"dir"     env:"STUDYCARDS_DIR"`
}

// LogConfig holds logging settings. Logging is off without a file.
type LogConfig struct {
	Level string `yaml:"level" env:"STUDYCARDS_LOG_LEVEL" env-default:"info"`
	File  string `yaml:"file"  env:"STUDYCARDS_LOG_FILE"`
}

type UIConfig struct {
	Theme string `yaml:"theme" env:"STUDYCARDS_THEME" env-default:"classic"`
}

const configEnv = "STUDYCARDS_CONFIG"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The file is path, else $STUDYCARDS_CONFIG, else <home>/.studycards/config.yaml.
// A missing file is only an error when it was named explicitly.
func Load(path string) (*Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = os.Getenv(configEnv)
		explicit = path != ""
	}
	if !explicit {
		if dir, err := defaultDir(); err == nil {
			path = filepath.Join(dir, "config.yaml")
		}
	}

	if _, err := os.Stat(path); path != "" && err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if cfg.Store.Dir == "" {
		dir, err := defaultDir()
		if err != nil {
			return nil, err
		}
		cfg.Store.Dir = dir
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	if !slices.Contains([]string{"file", "sqlite"}, c.Store.Backend) {
		return fmt.Errorf("store.backend must be file or sqlite, got %q", c.Store.Backend)
	}
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	if !slices.Contains([]string{"classic", "neon", "mono"}, c.UI.Theme) {
		return fmt.Errorf("ui.theme must be classic, neon or mono, got %q", c.UI.Theme)
	}
	return nil
}

func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".studycards"), nil
}
