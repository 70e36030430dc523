// Package config loads the optional hopper settings file.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zhubert/hopper/internal/errors"
)

// SettingsFilename is the settings file inside the data directory.
const SettingsFilename = "settings.yaml"

// Settings are optional user overrides. The zero value is a fully working
// configuration; a missing settings file means defaults.
type Settings struct {
	WeztermBin    string `yaml:"wezterm_bin"`    // terminal binary (default: wezterm)
	ZellijBin     string `yaml:"zellij_bin"`     // multiplexer binary (default: zellij)
	DefaultLayout string `yaml:"default_layout"` // layout applied to entries without one
	Debug         bool   `yaml:"debug"`          // enable debug logging without the flag
}

func applyDefaults(s *Settings) {
	if s.WeztermBin == "" {
		s.WeztermBin = "wezterm"
	}
	if s.ZellijBin == "" {
		s.ZellijBin = "zellij"
	}
}

// settingsPath returns the path to the settings file
func settingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".hopper", SettingsFilename), nil
}

// LoadSettings reads the settings file from the default location.
func LoadSettings() (*Settings, error) {
	path, err := settingsPath()
	if err != nil {
		return nil, errors.E(errors.Op("config.LoadSettings"), errors.KindConfig, err)
	}
	return LoadSettingsFrom(path)
}

// LoadSettingsFrom reads the settings file at path. A missing file yields
// the defaults.
func LoadSettingsFrom(path string) (*Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		applyDefaults(&s)
		return &s, nil
	}
	if err != nil {
		return nil, errors.E(errors.Op("config.LoadSettings"), errors.KindConfig, "failed to read "+path, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.E(errors.Op("config.LoadSettings"), errors.KindConfig, "failed to parse "+path, err)
	}
	applyDefaults(&s)
	return &s, nil
}
