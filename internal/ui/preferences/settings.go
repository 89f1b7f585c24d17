package preferences

import (
	"fmt"
	"strings"
	"time"

	"hackpulse/internal/core/countdown"
	"hackpulse/internal/core/model"
	"hackpulse/internal/core/particles"
	"hackpulse/internal/core/typewriter"
)

// DefaultDeadline is the hackathon kickoff in the event's local time.
const DefaultDeadline = "2025-03-21T13:00:00"

// Settings defines editable user preferences.
type Settings struct {
	Deadline string
	// Timezone is an IANA zone name. Empty means the local zone.
	Timezone string
	Phrases  []string

	SoundEnabled bool
	Fullscreen   bool
	Particles    int
}

// DefaultSettings returns default settings for the page.
func DefaultSettings() Settings {
	return Settings{
		Deadline: DefaultDeadline,
		Phrases: []string{
			"Code. Create. Conquer.",
			"Innovate. Collaborate. Win.",
			"Design. Develop. Disrupt.",
			"Build. Break. Rebuild.",
		},
		SoundEnabled: true,
		Fullscreen:   false,
		Particles:    2500,
	}
}

// Location resolves the configured timezone.
func (settings Settings) Location() (*time.Location, error) {
	name := strings.TrimSpace(settings.Timezone)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return location, nil
}

// CountdownConfig parses the deadline in the configured timezone. An
// unparseable deadline or zone is reported as countdown.ErrInvalidTarget.
func (settings Settings) CountdownConfig() (model.CountdownConfig, error) {
	location, err := settings.Location()
	if err != nil {
		return model.CountdownConfig{}, fmt.Errorf("%w: %v", countdown.ErrInvalidTarget, err)
	}
	target, err := countdown.ParseTarget(strings.TrimSpace(settings.Deadline), location)
	if err != nil {
		return model.CountdownConfig{}, err
	}
	return model.CountdownConfig{Target: target, TickInterval: time.Second}, nil
}

// TypewriterConfig converts settings to a TypewriterConfig.
func (settings Settings) TypewriterConfig() model.TypewriterConfig {
	phrases := make([]string, 0, len(settings.Phrases))
	for _, phrase := range settings.Phrases {
		if trimmed := strings.TrimSpace(phrase); trimmed != "" {
			phrases = append(phrases, trimmed)
		}
	}
	return model.TypewriterConfig{
		Phrases: phrases,
		Timing:  typewriter.DefaultTiming(),
	}
}

// ParticleConfig converts settings to a ParticleConfig. Circuit lines scale
// with the star count so a sparse field stays uncluttered.
func (settings Settings) ParticleConfig() model.ParticleConfig {
	config := particles.DefaultConfig()
	if settings.Particles < 0 {
		settings.Particles = 0
	}
	if settings.Particles < config.Stars {
		config.CircuitLines = config.CircuitLines * settings.Particles / config.Stars
	}
	config.Stars = settings.Particles
	return config
}
