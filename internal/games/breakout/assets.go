package breakout

import (
	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/engine"
)

// Glyphs used when sprites are drawn as character cells.
const (
	PaddleChar = '='
	BallChar   = '●'
	WallChar   = '▓'
	BrickChar  = '█'
)

// brickColors tint bricks by strength in cell renderers.
var brickColors = []core.Color{
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorYellow,
	core.ColorOrange,
}

// Assets describes every image the game creates sprites from, sized from cfg.
func Assets(cfg config.BreakoutConfig) []engine.Asset {
	d := 2 * cfg.Ball.Radius
	assets := []engine.Asset{
		{Name: cfg.Paddle.Asset, W: cfg.Paddle.Width, H: cfg.Paddle.Height, Glyph: PaddleChar, Color: core.ColorWhite, Framed: true},
		{Name: cfg.Ball.Asset, W: d, H: d, Glyph: BallChar, Color: core.ColorWhite, Point: true},
		{Name: cfg.Walls.Asset, W: cfg.Walls.Size, H: cfg.Walls.Size, Glyph: WallChar, Color: core.ColorGray},
	}
	for i, name := range cfg.Bricks.Visuals {
		assets = append(assets, engine.Asset{
			Name:   name,
			W:      cfg.Bricks.Width,
			H:      cfg.Bricks.Height,
			Glyph:  BrickChar,
			Color:  brickColors[i%len(brickColors)],
			Framed: true,
		})
	}
	return assets
}
