package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the environment-level defaults of a gluebind run.
type Settings struct {
	LogLevel  string `env:"GLUEBIND_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"GLUEBIND_LOG_FORMAT" envDefault:"text"`
	// Messages is the message output target; empty disables it.
	Messages string `env:"GLUEBIND_MESSAGES"`
	Workers  int    `env:"GLUEBIND_WORKERS" envDefault:"1"`
	FailFast bool   `env:"GLUEBIND_FAIL_FAST" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the settings found in the environment.
func Load() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
