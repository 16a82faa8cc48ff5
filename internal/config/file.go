package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig is the TOML config file schema. Durations are strings like
// "1h" or "30m". The file carries operational settings only; mode
// enforcement comes from CLI flags and environment variables.
type fileConfig struct {
	Listen        string   `toml:"listen"`
	APIKey        string   `toml:"api_key"`
	BaseURL       string   `toml:"base_url"`
	SessionTTL    Duration `toml:"session_ttl"`
	MaxSessions   int      `toml:"max_sessions"`
	SweepInterval Duration `toml:"sweep_interval"`
	LogLevel      string   `toml:"log_level"`
	LogFormat     string   `toml:"log_format"`
	LogOutput     string   `toml:"log_output"`
}

func loadFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("%w: parsing %s: %w", ErrFailedToLoadConfig, path, err)
	}
	return fc, nil
}
