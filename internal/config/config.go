package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// APIKeyEnv is consulted when the config file carries no api_key.
const APIKeyEnv = "NEWSAPI_KEY"

type Config struct {
	BaseURL  string `yaml:"base_url"`
	Country  string `yaml:"country"`
	Category string `yaml:"category"`
	APIKey   string `yaml:"api_key,omitempty"`
	Timeout  string `yaml:"timeout,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// Key returns the resolved API key (config or env var).
func (c *Config) Key() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return os.Getenv(APIKeyEnv)
}

// TimeoutDuration returns the request timeout. Zero means the request is
// never cut short.
func (c *Config) TimeoutDuration() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

func (c *Config) Level() string {
	if c.LogLevel == "" {
		return "info"
	}
	return c.LogLevel
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "headlines", "config.yaml")
}

func LogPath() string {
	return filepath.Join(xdg.StateHome, "headlines", "headlines.log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// loadDotEnv loads path into the environment. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Load reads the config at path (or the default location), filling unset
// keys from the embedded defaults. A .env file in the working directory is
// loaded into the environment first; variables already set win.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Non-fatal: embedded defaults are still usable
			_ = writeDefaults(path)
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	mergeDefaults(&cfg, defaults)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func mergeDefaults(cfg, defaults *Config) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.Country == "" {
		cfg.Country = defaults.Country
	}
	if cfg.Category == "" {
		cfg.Category = defaults.Category
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o600)
}

func validate(cfg *Config) error {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url: scheme must be http or https, got %q", u.Scheme)
	}
	if cfg.Country == "" {
		return fmt.Errorf("country is required")
	}
	if cfg.Category == "" {
		return fmt.Errorf("category is required")
	}
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("timeout must not be negative, got %s", cfg.Timeout)
		}
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if cfg.LogLevel != "" && !validLevels[cfg.LogLevel] {
		return fmt.Errorf("unknown log_level %q (valid: debug, info, warn, error)", cfg.LogLevel)
	}
	return nil
}
