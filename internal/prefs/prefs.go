package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Prefs represents persisted UI preferences.
type Prefs struct {
	// Filter is the last selected category filter ("" means all).
	Filter string `yaml:"filter,omitempty"`
	// Theme is the base theme name ("dark" or "light").
	Theme string `yaml:"theme,omitempty"`
}

// Path returns the preferences file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, "wishtree", "prefs.yaml"), nil
}

// Load reads preferences, returning zero prefs when no file exists or it
// cannot be parsed. Preferences are a convenience, never an error source.
func Load() Prefs {
	var p Prefs
	path, err := Path()
	if err != nil {
		return p
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Prefs{}
	}
	return p
}

// Save writes preferences, creating the config directory if needed.
func Save(p Prefs) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("prefs dir: %w", err)
	}
	b, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
