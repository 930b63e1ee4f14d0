package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Placeholder credentials used when neither config nor environment provides
// a real value. Requests made with them fail at the remote end; the agent
// degrades to its sentinel output instead of refusing to start.
const (
	PlaceholderSearchKey = "YOUR_GOOGLE_API_KEY"
	PlaceholderSearchCX  = "YOUR_GOOGLE_CX"
	PlaceholderNASAKey   = "YOUR_NASA_API_KEY"
)

type SearchConfig struct {
	APIKey string `yaml:"api_key"`
	CX     string `yaml:"cx"`
}

type NASAConfig struct {
	APIKey string `yaml:"api_key"`
}

// Endpoints allows overriding the remote service URLs, mainly for tests and
// self-hosted mirrors. Empty fields mean the real services.
type Endpoints struct {
	Search string `yaml:"search,omitempty"`
	NASA   string `yaml:"nasa,omitempty"`
	Arxiv  string `yaml:"arxiv,omitempty"`
}

type Config struct {
	MaxRetries int          `yaml:"max_retries"`
	RetryDelay string       `yaml:"retry_delay"`
	Search     SearchConfig `yaml:"search"`
	NASA       NASAConfig   `yaml:"nasa"`
	Endpoints  Endpoints    `yaml:"endpoints,omitempty"`
}

// SearchKey resolves the Google API key: config, then GOOGLE_API_KEY,
// then the placeholder.
func (c *Config) SearchKey() string {
	if c.Search.APIKey != "" {
		return c.Search.APIKey
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		return v
	}
	return PlaceholderSearchKey
}

// SearchCX resolves the Google custom-search context id.
func (c *Config) SearchCX() string {
	if c.Search.CX != "" {
		return c.Search.CX
	}
	if v := os.Getenv("GOOGLE_CX"); v != "" {
		return v
	}
	return PlaceholderSearchCX
}

// NASAKey resolves the NASA API key.
func (c *Config) NASAKey() string {
	if c.NASA.APIKey != "" {
		return c.NASA.APIKey
	}
	if v := os.Getenv("NASA_API_KEY"); v != "" {
		return v
	}
	return PlaceholderNASAKey
}

// RetryCount returns the retry attempt budget, defaulting to 2.
func (c *Config) RetryCount() int {
	if c.MaxRetries <= 0 {
		return 2
	}
	return c.MaxRetries
}

// RetryDelayDuration returns the fixed inter-attempt delay, defaulting to 1s.
func (c *Config) RetryDelayDuration() time.Duration {
	d, err := time.ParseDuration(c.RetryDelay)
	if err != nil || d < 0 {
		return time.Second
	}
	return d
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "secondmind", "config.yaml")
}

func MemoryPath() string {
	return filepath.Join(xdg.CacheHome, "secondmind", "memory.db")
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

func Load(path string) (*Config, error) {
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
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	endpoints := map[string]string{
		"search": cfg.Endpoints.Search,
		"nasa":   cfg.Endpoints.NASA,
		"arxiv":  cfg.Endpoints.Arxiv,
	}
	for name, raw := range endpoints {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("endpoint %q: invalid url: %w", name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("endpoint %q: url scheme must be http or https, got %q", name, u.Scheme)
		}
	}
	if cfg.RetryDelay != "" {
		if _, err := time.ParseDuration(cfg.RetryDelay); err != nil {
			return fmt.Errorf("retry_delay: %w", err)
		}
	}
	return nil
}
