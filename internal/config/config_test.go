package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/mathquest/internal/problemgen"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}

	s := cfg.Resolve()
	if !s.SoundEnabled || s.Difficulty != problemgen.Easy || s.RoundLength != 10 {
		t.Errorf("defaults = %+v", s)
	}
	if s.PlayerName != "" {
		t.Errorf("player name = %q", s.PlayerName)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("empty path accepted")
	}
}

func TestLoadAndResolve(t *testing.T) {
	path := writeConfig(t, `
[player]
name = "Mira"

[sound]
enabled = false

[practice]
difficulty = "hard"
round-length = 15
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	s := cfg.Resolve()
	if s.PlayerName != "Mira" {
		t.Errorf("player name = %q", s.PlayerName)
	}
	if s.SoundEnabled {
		t.Error("sound should be disabled")
	}
	if s.Difficulty != problemgen.Hard {
		t.Errorf("difficulty = %s", s.Difficulty)
	}
	if s.RoundLength != 15 {
		t.Errorf("round length = %d", s.RoundLength)
	}
}

func TestResolveRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
[practice]
difficulty = "impossible"
round-length = -3
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	s := cfg.Resolve()
	if s.Difficulty != problemgen.Easy {
		t.Errorf("invalid difficulty accepted: %s", s.Difficulty)
	}
	if s.RoundLength != 10 {
		t.Errorf("invalid round length accepted: %d", s.RoundLength)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, `[player` + "\n")
	if _, err := Load(path); err == nil {
		t.Error("malformed TOML accepted")
	}
}
