package wait

import (
	"time"

	"github.com/pkg/errors"

	lconfig "github.com/dozr-cli/dozr/pkg/config"
)

type Config struct {
	// Cap on a single distribution sample. Heavy tailed distributions can
	// otherwise produce waits of years.
	MaxSleep time.Duration `env:"DOZR_MAX_SLEEP" envDefault:"24h"`
}

var ErrInvalidMaxSleep = errors.New("invalid maximum sleep")

func NewConfigFromEnv() (*Config, error) {
	var cfg Config
	err := lconfig.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	if cfg.MaxSleep <= 0 {
		return nil, errors.Wrapf(ErrInvalidMaxSleep, "DOZR_MAX_SLEEP must be positive, got %s", cfg.MaxSleep)
	}
	return &cfg, nil
}
