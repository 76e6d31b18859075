package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Languages the app offers
var Languages = []string{"en", "iw"}

// FontSizes the app offers
var FontSizes = []string{"small", "normal", "large"}

// Preferences are user settings that are stored for the presentation layer.
// Nothing in the core applies them.
type Preferences struct {
	DarkMode bool   `yaml:"dark_mode"`
	Language string `yaml:"language"`
	FontSize string `yaml:"font_size"`
}

// DefaultPreferences returns the settings of a fresh install
func DefaultPreferences() Preferences {
	return Preferences{
		DarkMode: false,
		Language: "en",
		FontSize: "normal",
	}
}

// Validate checks language and font size against the offered values
func (p Preferences) Validate() error {
	if !slices.Contains(Languages, p.Language) {
		return fmt.Errorf("language %q: must be one of %v", p.Language, Languages)
	}
	if !slices.Contains(FontSizes, p.FontSize) {
		return fmt.Errorf("font_size %q: must be one of %v", p.FontSize, FontSizes)
	}
	return nil
}

func (p *Preferences) applyDefaults() {
	defaults := DefaultPreferences()

	if p.Language == "" {
		p.Language = defaults.Language
	}
	if p.FontSize == "" {
		p.FontSize = defaults.FontSize
	}
}

// SavePreferences writes p to the config file. Every other key is kept as
// written in the file; environment overrides and defaults are not persisted.
func SavePreferences(p Preferences) error {
	if err := p.Validate(); err != nil {
		return err
	}

	configPath, err := Path()
	if err != nil {
		return err
	}

	raw := map[string]interface{}{}
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse %s: %w", configPath, err)
		}
		if raw == nil {
			raw = map[string]interface{}{}
		}
	case !os.IsNotExist(err):
		return fmt.Errorf("failed to read %s: %w", configPath, err)
	}
	raw["preferences"] = p

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}
	out, err := yaml.Marshal(raw)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, out, 0o644)
}
