// Package config provides YAML-based game configuration loading and
// difficulty management for Breakout.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// BreakoutConfig contains all tunables of a Breakout session.
// Distances are playfield pixels, speeds are pixels per second.
type BreakoutConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	GameRate   float64          `yaml:"game_rate"` // global speed multiplier
	Countdown  float64          `yaml:"countdown"` // seconds before play starts on each map
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Bricks     BricksConfig     `yaml:"bricks"`
	Walls      WallsConfig      `yaml:"walls"`
	Maps       MapsConfig       `yaml:"maps"`
	Media      MediaConfig      `yaml:"media"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScreenConfig is the logical playfield size.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PaddleConfig defines the player's bat.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Boost  float64 `yaml:"boost"` // speed factor while the boost key is held
	Clamp  bool    `yaml:"clamp"` // keep the paddle between the side walls
	Asset  string  `yaml:"asset"`
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	Asset  string  `yaml:"asset"`
}

// BricksConfig defines the brick grid. Visuals[i] is the image of a brick
// with strength i+1, so len(Visuals) is the maximum strength.
type BricksConfig struct {
	OffsetX float64  `yaml:"offset_x"`
	OffsetY float64  `yaml:"offset_y"`
	Width   float64  `yaml:"width"`
	Height  float64  `yaml:"height"`
	MaxRows int      `yaml:"max_rows"`
	MaxCols int      `yaml:"max_cols"`
	Points  int      `yaml:"points"` // score per hit
	Visuals []string `yaml:"visuals"`
}

// Wall bounce modes.
const (
	BounceSource  = "source"  // East/West flip X, North flips Y
	BounceSwapped = "swapped" // East/West flip Y, North flips X
)

// WallsConfig defines the unbreakable frame around the grid.
type WallsConfig struct {
	Size   float64 `yaml:"size"` // square tile edge
	Bounce string  `yaml:"bounce"`
	Asset  string  `yaml:"asset"`
}

// MapsConfig locates level files. An empty Dir selects the built-in maps.
type MapsConfig struct {
	Dir     string `yaml:"dir"`
	Pattern string `yaml:"pattern"`
}

// MediaConfig locates sprite images for backends that draw them.
type MediaConfig struct {
	Dir string `yaml:"dir"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to the game rate at max difficulty
}

// Validate reports the first setting that would make the game unplayable.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("config: screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height)
	case c.GameRate <= 0:
		return errors.New("config: game_rate must be positive")
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return errors.New("config: paddle size must be positive")
	case c.Ball.Radius <= 0:
		return errors.New("config: ball radius must be positive")
	case c.Bricks.Width <= 0 || c.Bricks.Height <= 0:
		return errors.New("config: brick size must be positive")
	case c.Bricks.MaxRows <= 0 || c.Bricks.MaxCols <= 0:
		return errors.New("config: brick grid must have at least one cell")
	case c.Walls.Size <= 0:
		return errors.New("config: wall tile size must be positive")
	case len(c.Bricks.Visuals) == 0:
		return errors.New("config: at least one brick visual is required")
	}
	switch c.Walls.Bounce {
	case BounceSource, BounceSwapped:
	default:
		return fmt.Errorf("config: unknown walls.bounce %q", c.Walls.Bounce)
	}
	if !validPattern(c.Maps.Pattern) {
		return fmt.Errorf("config: maps.pattern %q must contain exactly one verb such as %%d", c.Maps.Pattern)
	}
	return nil
}

// validPattern accepts a file name pattern that formats the level number
// with exactly one verb, e.g. "level%d.map".
func validPattern(p string) bool {
	one, two := fmt.Sprintf(p, 1), fmt.Sprintf(p, 2)
	return one != two && !strings.Contains(one, "%!")
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. The empty string means none.
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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
