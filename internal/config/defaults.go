package config

import (
	_ "embed"
)

//go:embed defaults/hopper.yaml
var defaultHopperYAML []byte

// DefaultHopperConfig returns the default hopper configuration.
// It matches defaults/hopper.yaml and is used if the embedded file is unusable.
func DefaultHopperConfig() HopperConfig {
	return HopperConfig{
		Physics: HopperPhysics{
			Gravity:      800,
			JumpVelocity: -400,
			OverlapBias:  4,
		},
		Playfield: Playfield{
			Width:  400,
			Height: 300,
			Floor:  230,
		},
		Player: HopperPlayer{
			X:      100,
			Y:      206,
			Width:  48,
			Height: 48,
			Bounce: 0.3,
			DeathX: -100,
		},
		Enemy: HopperEnemy{
			SpawnX:       600,
			Y:            206,
			Width:        48,
			Height:       48,
			StartSpeed:   -200,
			MinSpeed:     -400,
			MaxSpeed:     -200,
			RespawnX:     500,
			RecycleRight: -100,
			Spin:         -5,
		},
		Ground: Box{
			X:      200,
			Y:      265,
			Width:  400,
			Height: 70,
		},
		Lives: LivesConfig{
			Max:      3,
			IconX:    320,
			IconY:    30,
			IconStep: 25,
		},
		HUD: HUDConfig{
			ScoreX:  20,
			ScoreY:  20,
			ButtonX: 200,
			ButtonY: 150,
		},
		Background: BackgroundConfig{
			Scroll: 0.5,
		},
		Camera: CameraConfig{
			ShakeMS:        200,
			ShakeIntensity: 0.01,
		},
		Audio: AudioConfig{
			AmbienceVolume: 0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHopperYAML
}
