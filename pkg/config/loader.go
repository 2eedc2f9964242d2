package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Validatable is implemented by configuration structs that carry
// cross-field rules which `env` tags cannot express.
type Validatable interface {
	Validate() error
}

// Load populates cfg from environment variables using `env` struct tags
// and, when cfg implements Validatable, runs its Validate method.
func Load(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	if v, ok := cfg.(Validatable); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("validate config: %w", err)
		}
	}
	return nil
}
