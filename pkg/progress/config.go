package progress

import (
	"time"

	"github.com/pkg/errors"

	lconfig "github.com/dozr-cli/dozr/pkg/config"
)

type Config struct {
	// Lower bound on a single sleep slice, so a nearly finished wait yields
	// instead of spinning.
	MinSlice time.Duration `env:"DOZR_MIN_SLICE" envDefault:"1ms"`
}

var ErrInvalidMinSlice = errors.New("invalid minimum sleep slice")

func NewConfigFromEnv() (*Config, error) {
	var cfg Config
	err := lconfig.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	err = validateConfig(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateConfig(config *Config) error {
	if config.MinSlice <= 0 || config.MinSlice > time.Second {
		return errors.Wrapf(ErrInvalidMinSlice, "%s is outside (0, 1s]", config.MinSlice)
	}
	return nil
}
