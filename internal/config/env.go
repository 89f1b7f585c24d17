package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"hackpulse/internal/ui/preferences"
)

// Overrides are settings supplied through the environment. Unset variables
// leave the file and default values untouched.
type Overrides struct {
	Deadline   string `env:"HACKPULSE_DEADLINE"`
	Timezone   string `env:"HACKPULSE_TIMEZONE"`
	Sound      *bool  `env:"HACKPULSE_SOUND"`
	Fullscreen *bool  `env:"HACKPULSE_FULLSCREEN"`
	Particles  *int   `env:"HACKPULSE_PARTICLES"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadOverrides reads the HACKPULSE_* variables.
func LoadOverrides() (Overrides, error) {
	var overrides Overrides
	if err := ParseEnv(&overrides); err != nil {
		return Overrides{}, err
	}
	return overrides, nil
}

// Apply returns settings with the overrides layered on top.
func (overrides Overrides) Apply(settings preferences.Settings) preferences.Settings {
	if overrides.Deadline != "" {
		settings.Deadline = overrides.Deadline
	}
	if overrides.Timezone != "" {
		settings.Timezone = overrides.Timezone
	}
	if overrides.Sound != nil {
		settings.SoundEnabled = *overrides.Sound
	}
	if overrides.Fullscreen != nil {
		settings.Fullscreen = *overrides.Fullscreen
	}
	if overrides.Particles != nil && *overrides.Particles >= 0 {
		settings.Particles = *overrides.Particles
	}
	return settings
}
