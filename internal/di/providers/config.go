// Package providers contains the dependency injection providers for all
// application components.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/cemcobancem/notevault/internal/config"
	"github.com/cemcobancem/notevault/internal/logger"
	"github.com/cemcobancem/notevault/internal/validation"
)

// ProvideConfig loads and validates the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ProvideLogger provides the application logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	level, err := logger.ParseLevel(cfg.Logger.Level)
	if err != nil {
		return nil, err
	}

	return logger.New(logger.Config{
		Environment: cfg.App.Environment,
		Level:       level,
	}), nil
}

// ProvideValidator provides the struct validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}
