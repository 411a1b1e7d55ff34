package statemachine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds machine settings that can be supplied through the environment.
type Config struct {
	HistorySize int `env:"STATEMACHINE_HISTORY_SIZE" envDefault:"3"`
}

var defaultEnvLoaded sync.Once

// DefaultConfig returns the settings New uses when no options are given.
func DefaultConfig() Config {
	return Config{HistorySize: DefaultHistorySize}
}

// Validate checks that the config can be applied to a machine.
func (c Config) Validate() error {
	if c.HistorySize < 1 {
		return errors.Join(ErrInvalidHistorySize, fmt.Errorf("got %d", c.HistorySize))
	}
	return nil
}

// LoadConfig reads Config from the process environment.
// A .env file in the working directory is loaded once if present;
// variables already set in the environment take precedence over it.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads Config from an env file without touching the
// process environment. Keys missing from the file fall back to defaults.
func LoadConfigFile(path string) (Config, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return Config{}, errors.Join(ErrReadingConfigFile, err)
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: values}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig creates a machine like New after validating cfg.
// Options are applied after cfg and may override it.
func NewFromConfig[S comparable](states []S, starting S, cfg Config, opts ...Option) (*Machine[S], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New(states, starting, append([]Option{WithConfig(cfg)}, opts...)...), nil
}
