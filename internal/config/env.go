package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
)

// envConfig mirrors the environment variables the server reads. Dynamic is
// kept as the raw string so the override resolver can apply its own boolean
// validation rules.
type envConfig struct {
	APIKey      string        `env:"FMP_ACCESS_TOKEN"`
	ToolSets    string        `env:"FMP_TOOL_SETS"`
	Dynamic     string        `env:"DYNAMIC_TOOL_DISCOVERY"`
	Port        string        `env:"PORT"`
	BaseURL     string        `env:"FMP_BASE_URL"`
	SessionTTL  time.Duration `env:"SESSION_TTL"`
	MaxSessions int           `env:"MAX_SESSIONS"`
	LogLevel    string        `env:"LOG_LEVEL"`
	LogFormat   string        `env:"LOG_FORMAT"`
}

// fromEnv decodes the environment. A fully unset environment is not an
// error; malformed values (an unparsable duration, say) are.
func fromEnv() (envConfig, error) {
	var e envConfig
	if err := envdecode.Decode(&e); err != nil &&
		!errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return envConfig{}, fmt.Errorf("reading environment: %w", err)
	}
	return e, nil
}
