package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Environment holds defaults that can be supplied through NUMQUEST_* variables.
// Command-line flags take precedence over these values.
type Environment struct {
	FPS        int    `env:"NUMQUEST_FPS" envDefault:"60"`
	Seed       int64  `env:"NUMQUEST_SEED" envDefault:"0"`
	Operator   string `env:"NUMQUEST_OPERATOR" envDefault:"less"`
	Difficulty string `env:"NUMQUEST_DIFFICULTY"`
	ConfigPath string `env:"NUMQUEST_CONFIG"`
	LogFile    string `env:"NUMQUEST_LOG_FILE"`
	SSHAddr    string `env:"NUMQUEST_SSH_ADDR" envDefault:"localhost:2222"`
	HostKey    string `env:"NUMQUEST_HOST_KEY" envDefault:".ssh/numquest_ed25519"`
}

// ParseEnv reads the process environment into an Environment.
func ParseEnv() (Environment, error) {
	var cfg Environment
	if err := env.Parse(&cfg); err != nil {
		return Environment{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
