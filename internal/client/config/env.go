package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// envConfig mirrors Config with env tags for cleanenv. Unset variables keep
// the zero value and are skipped during the copy, so the environment only
// overrides what it sets.
type envConfig struct {
	BaseURL        string        `env:"LOSTLINK_BASE_URL"`
	RequestTimeout time.Duration `env:"LOSTLINK_REQUEST_TIMEOUT"`
	SessionDBPath  string        `env:"LOSTLINK_SESSION_DB"`
}

func parseEnv(cfg *Config) {
	var ec envConfig
	if err := cleanenv.ReadEnv(&ec); err != nil {
		panic(fmt.Errorf("reading LOSTLINK_* environment config: %w", err))
	}

	if ec.BaseURL != "" {
		cfg.BaseURL = ec.BaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.SessionDBPath != "" {
		cfg.SessionDBPath = ec.SessionDBPath
	}
}
