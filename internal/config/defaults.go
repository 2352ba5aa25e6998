package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration. It matches the
// embedded defaults/breakout.yaml and is used when that file cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Screen:    ScreenConfig{Width: 1280, Height: 720},
		GameRate:  1.0,
		Countdown: 3.0,
		Paddle: PaddleConfig{
			Width:  86,
			Height: 26,
			Speed:  250,
			Boost:  2,
			Clamp:  true,
			Asset:  "Bat.png",
		},
		Ball: BallConfig{
			Radius: 8,
			Speed:  250,
			Asset:  "TinyBall.png",
		},
		Bricks: BricksConfig{
			OffsetX: 448,
			OffsetY: 64,
			Width:   64,
			Height:  32,
			MaxRows: 16,
			MaxCols: 6,
			Points:  10,
			Visuals: []string{"Block2.png", "Block3.png", "Block4.png", "Block5.png", "Block6.png", "Block7.png"},
		},
		Walls: WallsConfig{
			Size:   32,
			Bounce: BounceSource,
			Asset:  "Unbreakable.png",
		},
		Maps: MapsConfig{
			Pattern: "level%d.map",
		},
		Media: MediaConfig{
			Dir: "sprites",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 300,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
