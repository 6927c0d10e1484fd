package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const DefaultPath = "config.json"

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Defaults struct {
	Signature         string `json:"signature"`
	BufferMinutes     int    `json:"bufferMinutes"`
	Headless          bool   `json:"headless"`
	TimeoutSeconds    int    `json:"timeout"`
	BookInAdvanceDays int    `json:"bookInAdvanceDays"`
}

type Facility struct {
	SpaceID string `json:"spaceId"`
	Name    string `json:"name"`
}

type URLs struct {
	BaseURL  string `json:"baseUrl"`
	LoginURL string `json:"loginUrl"`
}

type Config struct {
	Credentials Credentials         `json:"credentials"`
	Defaults    Defaults            `json:"defaults"`
	Facilities  map[string]Facility `json:"facilities"`
	URLs        URLs                `json:"urls"`
}

// envOverrides are the static (non-profile) credential overrides.
type envOverrides struct {
	Email     string `env:"SKEDDA_EMAIL"`
	Password  string `env:"SKEDDA_PASSWORD"`
	Signature string `env:"SKEDDA_SIGNATURE"`
}

// Load reads the JSON config file, loads a .env sitting next to it if there is
// one, and applies SKEDDA_* environment overrides on top of the file values.
func Load(path string) (*Config, error) {
	envPath := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return nil, fmt.Errorf("reading environment overrides: %w", err)
	}
	if ov.Email != "" {
		cfg.Credentials.Email = ov.Email
	}
	if ov.Password != "" {
		cfg.Credentials.Password = ov.Password
	}
	if ov.Signature != "" {
		cfg.Defaults.Signature = ov.Signature
	}

	if cfg.Defaults.BufferMinutes == 0 {
		cfg.Defaults.BufferMinutes = 15
	}
	if cfg.Defaults.TimeoutSeconds == 0 {
		cfg.Defaults.TimeoutSeconds = 30
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.URLs.BaseURL == "" {
		return fmt.Errorf("urls.baseUrl is required")
	}
	if c.URLs.LoginURL == "" {
		c.URLs.LoginURL = c.URLs.BaseURL
	}
	if len(c.Facilities) == 0 {
		return fmt.Errorf("at least one facility is required")
	}
	for key, f := range c.Facilities {
		if f.SpaceID == "" {
			return fmt.Errorf("facility %q is missing spaceId", key)
		}
	}
	return nil
}

// Facility looks up a facility by its config key.
func (c *Config) Facility(key string) (Facility, error) {
	f, ok := c.Facilities[key]
	if !ok {
		return Facility{}, fmt.Errorf("unknown facility %q (known: %v)", key, c.FacilityKeys())
	}
	return f, nil
}

// FacilityKeys returns the configured facility keys in stable order.
func (c *Config) FacilityKeys() []string {
	keys := make([]string, 0, len(c.Facilities))
	for k := range c.Facilities {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
