// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// HopperConfig contains all tunables of the hopper scene.
type HopperConfig struct {
	Physics    HopperPhysics    `yaml:"physics"`
	Playfield  Playfield        `yaml:"playfield"`
	Player     HopperPlayer     `yaml:"player"`
	Enemy      HopperEnemy      `yaml:"enemy"`
	Ground     Box              `yaml:"ground"`
	Lives      LivesConfig      `yaml:"lives"`
	HUD        HUDConfig        `yaml:"hud"`
	Background BackgroundConfig `yaml:"background"`
	Camera     CameraConfig     `yaml:"camera"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// HopperPhysics defines world physics parameters.
type HopperPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration, px/s²
	JumpVelocity float64 `yaml:"jump_velocity"` // Vertical velocity set by a jump (negative = up)
	OverlapBias  float64 `yaml:"overlap_bias"`
}

// Playfield defines the virtual canvas and the playable floor line.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Floor  float64 `yaml:"floor"` // Bottom world bound
}

// Box is a centered rectangle.
type Box struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HopperPlayer defines player parameters.
type HopperPlayer struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Bounce float64 `yaml:"bounce"`
	DeathX float64 `yaml:"death_x"` // Run ends when the player's center reaches this x
}

// HopperEnemy defines enemy parameters.
type HopperEnemy struct {
	SpawnX       float64 `yaml:"spawn_x"`
	Y            float64 `yaml:"y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	StartSpeed   float64 `yaml:"start_speed"`
	MinSpeed     int     `yaml:"min_speed"` // Most negative respawn velocity
	MaxSpeed     int     `yaml:"max_speed"` // Least negative respawn velocity
	RespawnX     float64 `yaml:"respawn_x"`
	RecycleRight float64 `yaml:"recycle_right"` // Recycle once the right edge reaches this x
	Spin         float64 `yaml:"spin"`          // Degrees per frame
}

// LivesConfig defines the life count and the icon strip.
type LivesConfig struct {
	Max      int     `yaml:"max"`
	IconX    float64 `yaml:"icon_x"`
	IconY    float64 `yaml:"icon_y"`
	IconStep float64 `yaml:"icon_step"`
}

// HUDConfig places the score text and the start button.
type HUDConfig struct {
	ScoreX  float64 `yaml:"score_x"`
	ScoreY  float64 `yaml:"score_y"`
	ButtonX float64 `yaml:"button_x"`
	ButtonY float64 `yaml:"button_y"`
}

// BackgroundConfig controls the scrolling background.
type BackgroundConfig struct {
	Scroll float64 `yaml:"scroll"` // px per frame
}

// CameraConfig controls the camera shake on a scoring hit.
type CameraConfig struct {
	ShakeMS        int     `yaml:"shake_ms"`
	ShakeIntensity float64 `yaml:"shake_intensity"`
}

// AudioConfig controls sound levels.
type AudioConfig struct {
	AmbienceVolume float64 `yaml:"ambience_volume"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the enemy speed factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate reports configuration values the scene cannot run with.
func (c HopperConfig) Validate() error {
	var errs []error
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.JumpVelocity >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_velocity must be negative, got %v", c.Physics.JumpVelocity))
	}
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, errors.New("playfield size must be positive"))
	}
	if c.Playfield.Floor <= 0 || c.Playfield.Floor > c.Playfield.Height {
		errs = append(errs, fmt.Errorf("playfield.floor must be within the playfield, got %v", c.Playfield.Floor))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Enemy.Width <= 0 || c.Enemy.Height <= 0 {
		errs = append(errs, errors.New("player and enemy sizes must be positive"))
	}
	if c.Enemy.MinSpeed > c.Enemy.MaxSpeed {
		errs = append(errs, fmt.Errorf("enemy.min_speed %d is above enemy.max_speed %d", c.Enemy.MinSpeed, c.Enemy.MaxSpeed))
	}
	if c.Enemy.MaxSpeed >= 0 || c.Enemy.StartSpeed >= 0 {
		errs = append(errs, errors.New("enemy speeds must be negative (leftward)"))
	}
	if c.Lives.Max < 1 {
		errs = append(errs, fmt.Errorf("lives.max must be at least 1, got %d", c.Lives.Max))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid hopper config: %w", err)
	}
	return nil
}
