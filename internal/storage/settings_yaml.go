package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"hackpulse/internal/platform"
	"hackpulse/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	Deadline     string   `yaml:"deadline,omitempty"`
	Timezone     string   `yaml:"timezone,omitempty"`
	Phrases      []string `yaml:"phrases,omitempty"`
	SoundEnabled *bool    `yaml:"sound_enabled,omitempty"`
	Fullscreen   *bool    `yaml:"fullscreen,omitempty"`
	Particles    *int     `yaml:"particles,omitempty"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SettingsPath returns where appName keeps its settings file.
func SettingsPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir(appName)
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, settingsFileName), nil
}

// LoadSettingsFile layers the file at configPath over the defaults.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettingsFile writes settings to configPath, creating its directory.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		Deadline:     settings.Deadline,
		Timezone:     settings.Timezone,
		Phrases:      settings.Phrases,
		SoundEnabled: &settings.SoundEnabled,
		Fullscreen:   &settings.Fullscreen,
		Particles:    &settings.Particles,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// applyYamlSettings copies the keys present in the file. The deadline is
// copied verbatim so a malformed value is reported when the countdown is
// built instead of silently falling back to the default.
func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.Deadline != "" {
		settings.Deadline = fileData.Deadline
	}
	if fileData.Timezone != "" {
		settings.Timezone = fileData.Timezone
	}

	phrases := make([]string, 0, len(fileData.Phrases))
	for _, phrase := range fileData.Phrases {
		if strings.TrimSpace(phrase) != "" {
			phrases = append(phrases, phrase)
		}
	}
	if len(phrases) > 0 {
		settings.Phrases = phrases
	}

	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	if fileData.Fullscreen != nil {
		settings.Fullscreen = *fileData.Fullscreen
	}
	if fileData.Particles != nil && *fileData.Particles >= 0 {
		settings.Particles = *fileData.Particles
	}
}
