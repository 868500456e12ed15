// Package config reads the optional TOML settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/abhisek/mathquest/internal/problemgen"
)

// FileConfig mirrors the TOML file. Pointer fields distinguish "unset"
// from explicit zero values.
type FileConfig struct {
	Player   PlayerConfig   `toml:"player"`
	Sound    SoundConfig    `toml:"sound"`
	Practice PracticeConfig `toml:"practice"`
}

// PlayerConfig holds learner identity settings.
type PlayerConfig struct {
	Name *string `toml:"name"`
}

// SoundConfig holds feedback-sound settings.
type SoundConfig struct {
	Enabled *bool `toml:"enabled"`
}

// PracticeConfig holds practice defaults.
type PracticeConfig struct {
	Difficulty  *string `toml:"difficulty"`
	RoundLength *int    `toml:"round-length"`
}

// Settings is the resolved configuration with defaults applied.
type Settings struct {
	PlayerName   string
	SoundEnabled bool
	Difficulty   problemgen.Difficulty
	RoundLength  int
}

// Load reads a TOML config from the given path. A missing file is not
// an error; the zero FileConfig resolves to defaults.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Resolve applies defaults over the file values.
func (c FileConfig) Resolve() Settings {
	s := Settings{
		SoundEnabled: true,
		Difficulty:   problemgen.Easy,
		RoundLength:  10,
	}
	if c.Player.Name != nil {
		s.PlayerName = *c.Player.Name
	}
	if c.Sound.Enabled != nil {
		s.SoundEnabled = *c.Sound.Enabled
	}
	if c.Practice.Difficulty != nil {
		if d := problemgen.Difficulty(*c.Practice.Difficulty); d.Valid() {
			s.Difficulty = d
		}
	}
	if c.Practice.RoundLength != nil && *c.Practice.RoundLength > 0 {
		s.RoundLength = *c.Practice.RoundLength
	}
	return s
}

// DefaultPath returns the XDG config file location.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			return "config.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "mathquest", "config.toml")
}
