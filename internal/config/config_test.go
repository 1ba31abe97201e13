package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg := DefaultHopperConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("Embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultHopperConfig() {
		t.Errorf("Embedded YAML differs from DefaultHopperConfig:\n%+v\n%+v", cfg, DefaultHopperConfig())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := DefaultHopperConfig().Validate(); err != nil {
		t.Errorf("Default config invalid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HopperConfig)
	}{
		{"zero gravity", func(c *HopperConfig) { c.Physics.Gravity = 0 }},
		{"downward jump", func(c *HopperConfig) { c.Physics.JumpVelocity = 100 }},
		{"floor outside", func(c *HopperConfig) { c.Playfield.Floor = 500 }},
		{"inverted speed range", func(c *HopperConfig) { c.Enemy.MinSpeed = -100 }},
		{"rightward enemy", func(c *HopperConfig) { c.Enemy.StartSpeed = 50 }},
		{"no lives", func(c *HopperConfig) { c.Lives.Max = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHopperConfig()
			tc.mutate(&cfg)
			if cfg.Validate() == nil {
				t.Error("Validate() accepted an invalid config")
			}
		})
	}
}

func TestLoadHopperCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hopper.yaml")
	data := []byte("physics:\n  gravity: 1000\nlives:\n  max: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHopper(path)
	if err != nil {
		t.Fatalf("LoadHopper() failed: %v", err)
	}

	if cfg.Physics.Gravity != 1000 {
		t.Errorf("Gravity = %v, expected 1000", cfg.Physics.Gravity)
	}
	if cfg.Lives.Max != 5 {
		t.Errorf("Lives.Max = %d, expected 5", cfg.Lives.Max)
	}
	// Keys not in the file keep their defaults
	if cfg.Physics.JumpVelocity != -400 {
		t.Errorf("JumpVelocity = %v, expected default -400", cfg.Physics.JumpVelocity)
	}
}

func TestLoadHopperErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadHopper(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for a missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("physics: [oops"), 0o600)
	cfg, err := LoadHopper(bad)
	if err == nil {
		t.Error("Expected error for malformed YAML")
	}
	if cfg != DefaultHopperConfig() {
		t.Error("Malformed config should fall back to defaults")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("lives:\n  max: 0\n"), 0o600)
	if _, err := LoadHopper(invalid); err == nil {
		t.Error("Expected validation error")
	}
}

func TestApplyHopperPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		cfg := DefaultHopperConfig()
		ApplyHopperPreset(&cfg, tc.preset)
		if cfg.Difficulty.Enabled != tc.enabled || cfg.Difficulty.InitialLevel != tc.level {
			t.Errorf("%s: enabled=%v level=%v, expected %v %v",
				tc.preset, cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel, tc.enabled, tc.level)
		}
	}

	cfg := DefaultHopperConfig()
	ApplyHopperPreset(&cfg, "")
	if cfg != DefaultHopperConfig() {
		t.Error("Empty preset should leave config unchanged")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("Expected error for unknown preset")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultHopperConfig().Difficulty

	dm := NewDifficultyManager(cfg)
	if dm.IsEnabled() {
		t.Error("Progression should be disabled by default")
	}
	if got := dm.Speed(-300, 1000, 0); got != -300 {
		t.Errorf("Disabled Speed = %v, expected base -300", got)
	}

	cfg.Enabled = true
	dm = NewDifficultyManager(cfg)

	if got := dm.Level(0, 0); got != 0 {
		t.Errorf("Level at score 0 = %v, expected 0", got)
	}
	if got := dm.Level(25, 0); got != 0.5 {
		t.Errorf("Level at score 25 = %v, expected 0.5", got)
	}
	if got := dm.Level(500, 0); got != 1 {
		t.Errorf("Level past max_at = %v, expected 1", got)
	}
	if got := dm.Speed(-200, 50, 0); got != -300 {
		t.Errorf("Speed at max = %v, expected -300", got)
	}

	cfg.InitialLevel = 0.5
	cfg.Progression.Type = "none"
	if got := NewDifficultyManager(cfg).Level(50, 0); got != 0.5 {
		t.Errorf("Level with no progression = %v, expected initial 0.5", got)
	}
}
