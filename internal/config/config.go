package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/shristy0611/Wisdom-Bridge/internal/quote"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// BackendConfig configures the primary Gemini backend.
type BackendConfig struct {
	Model  string `yaml:"model"`
	APIKey string `yaml:"api_key,omitempty"`
}

// OllamaConfig configures the optional local backend tried ahead of Gemini.
type OllamaConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Model   string `yaml:"model"`
}

type Config struct {
	Language  quote.Language `yaml:"language"`
	Retention string         `yaml:"retention"`
	Backend   BackendConfig  `yaml:"backend"`
	Ollama    OllamaConfig   `yaml:"ollama"`
}

// APIKey returns the resolved Gemini credential: config value first, then the
// GEMINI_API_KEY environment variable (a .env file in the working directory
// is folded into the environment at Load time). Empty means unconfigured.
func (c *Config) APIKey() string {
	if c.Backend.APIKey != "" {
		return c.Backend.APIKey
	}
	return os.Getenv("GEMINI_API_KEY")
}

// APIKeyAvailable reports whether a credential is configured at all.
func (c *Config) APIKeyAvailable() bool {
	return c.APIKey() != ""
}

// RetentionDuration parses the retention window, supporting "Nd" day syntax.
func (c *Config) RetentionDuration() time.Duration {
	if c.Retention == "" {
		return 90 * 24 * time.Hour
	}
	if len(c.Retention) > 1 && c.Retention[len(c.Retention)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(c.Retention, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour
		}
	}
	d, err := time.ParseDuration(c.Retention)
	if err != nil {
		return 90 * 24 * time.Hour
	}
	return d
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "wisdombridge", "config.yaml")
}

// StorePath is the persistent store location. Data home, not cache home:
// favorites and journal entries are user data, not rebuildable cache.
func StorePath() string {
	return filepath.Join(xdg.DataHome, "wisdombridge", "wisdombridge.db")
}

// LogPath is the log file location, kept out of the terminal where it would
// corrupt the TUI.
func LogPath() string {
	return filepath.Join(xdg.StateHome, "wisdombridge", "wisdombridge.log")
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
	// Best-effort .env; absence is the normal case.
	_ = godotenv.Load()

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

	applyFallbacks(&cfg, defaults)
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

func applyFallbacks(cfg, defaults *Config) {
	if cfg.Language == "" {
		cfg.Language = defaults.Language
	}
	if cfg.Backend.Model == "" {
		cfg.Backend.Model = defaults.Backend.Model
	}
	if cfg.Ollama.URL == "" {
		cfg.Ollama.URL = defaults.Ollama.URL
	}
	if cfg.Ollama.Model == "" {
		cfg.Ollama.Model = defaults.Ollama.Model
	}
}

func validate(cfg *Config) error {
	if !cfg.Language.Valid() {
		return fmt.Errorf("unknown language %q (valid: en, ja)", cfg.Language)
	}
	u, err := url.Parse(cfg.Ollama.URL)
	if err != nil {
		return fmt.Errorf("ollama: invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("ollama: url scheme must be http or https, got %q", u.Scheme)
	}
	return nil
}
