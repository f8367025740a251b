package config

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	lconfig "github.com/dozr-cli/dozr/pkg/config"
)

type Config struct {
	LogLevel string `env:"DOZR_LOG_LEVEL" envDefault:"warning"`
	// Unset means a fresh seed per run.
	Seed *uint64 `env:"DOZR_SEED"`
}

func NewConfigFromEnv() (*Config, error) {
	var cfg Config
	err := lconfig.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, errors.Wrap(err, "DOZR_LOG_LEVEL")
	}
	return level, nil
}
