package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

var errEnvConfig = errors.New("error getting env configs")

func parseEnv(cfg *StructuredConfig) error {
	return parseEnvFrom(cfg, nil)
}

// parseEnvFrom fills cfg from environ, or from the process environment
// when environ is nil. Every offending variable is reported, not only the
// first one.
func parseEnvFrom(cfg *StructuredConfig, environ map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: environ})
	if err == nil {
		return nil
	}

	var agg env.AggregateError
	if errors.As(err, &agg) {
		return fmt.Errorf("%w: %w", errEnvConfig, errors.Join(agg.Errors...))
	}
	return fmt.Errorf("%w: %w", errEnvConfig, err)
}
