// Package config loads the operator-tunable settings for the govcheck CLI
// from GOVCHECK_* environment variables, so CI jobs can adjust behavior
// without flags.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	goverrors "github.com/nsd23387/campaign-governance/pkg/errors"
)

// Settings carries every environment-driven knob.
type Settings struct {
	// LogLevel controls logging verbosity on stderr. Empty behaves like
	// info.
	LogLevel string `env:"GOVCHECK_LOG_LEVEL" envDefault:"info" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	// GlobalKillSwitch halts sending platform-wide. It feeds straight into
	// the readiness kill-switch check and outranks campaign-level signals.
	GlobalKillSwitch bool `env:"GOVCHECK_GLOBAL_KILL_SWITCH" envDefault:"false"`
	// NoColor disables colored report output even on a terminal.
	NoColor bool `env:"GOVCHECK_NO_COLOR" envDefault:"false"`
	// TrustedSources overrides the provenance classifier's canonical-source
	// allowlist. Empty keeps the built-in defaults.
	TrustedSources []string `env:"GOVCHECK_TRUSTED_SOURCES" envSeparator:","`
}

// Load parses Settings from the environment and validates them.
func Load() (Settings, error) {
	var settings Settings
	if err := env.Parse(&settings); err != nil {
		return Settings{}, goverrors.NewValidationError("environment", err.Error(), err)
	}
	if err := validator.New().Struct(settings); err != nil {
		return Settings{}, convertValidationError(err)
	}
	return settings, nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		msg := fmt.Sprintf("%s failed validation for tag '%s'", ve.Field(), ve.Tag())
		return goverrors.NewValidationError(ve.Field(), msg, err)
	}
	return goverrors.NewValidationError("environment", err.Error(), err)
}
