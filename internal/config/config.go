package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all configuration for the SmartSales admin console.
type Config struct {
	API      APIConfig
	Poll     PollConfig
	Export   ExportConfig
	Settings SettingsConfig
	Env      string
}

type APIConfig struct {
	// BaseURL is the SmartSales365 backend root, e.g. https://host/api.
	BaseURL string
	// DataToken optionally authorizes the demo-data endpoint via the
	// X-Data-Token header.
	DataToken string
	Timeout   time.Duration
}

type PollConfig struct {
	// Interval between training-status fetches while a job runs.
	Interval time.Duration
}

type ExportConfig struct {
	// Dir receives downloaded reports and receipt PDFs.
	Dir string
}

type SettingsConfig struct {
	// RedisURL, when set, keeps the store configuration in Redis instead of
	// the local file.
	RedisURL string
	// FilePath overrides the default per-user settings file location.
	FilePath string
}

// Load reads configuration from environment variables and returns a
// validated Config. Returns an error with a descriptive message if any
// required value is missing or invalid.
func Load() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			BaseURL:   os.Getenv("SMARTSALES_API_URL"),
			DataToken: os.Getenv("SMARTSALES_DATA_TOKEN"),
			Timeout:   envDuration("SMARTSALES_HTTP_TIMEOUT", 30*time.Second),
		},
		Poll: PollConfig{
			Interval: envDuration("SMARTSALES_POLL_INTERVAL", 3*time.Second),
		},
		Export: ExportConfig{
			Dir: envString("SMARTSALES_DOWNLOAD_DIR", "."),
		},
		Settings: SettingsConfig{
			RedisURL: os.Getenv("SMARTSALES_SETTINGS_REDIS_URL"),
			FilePath: os.Getenv("SMARTSALES_SETTINGS_PATH"),
		},
		Env: envString("SMARTSALES_ENV", "development"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("SMARTSALES_API_URL is required")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("SMARTSALES_API_URL must start with http:// or https://, got %q", c.API.BaseURL)
	}

	if c.Poll.Interval <= 0 {
		return fmt.Errorf("SMARTSALES_POLL_INTERVAL must be positive, got %v", c.Poll.Interval)
	}

	return nil
}

func envString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
