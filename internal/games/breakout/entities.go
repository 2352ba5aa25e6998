package breakout

import (
	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/engine"
)

// Ball is the single ball in play. Its position is the sprite's top-left.
type Ball struct {
	eng    engine.Engine
	sprite engine.Sprite
	prevX  float64
	prevY  float64
	lastX  float64 // position at Release
	lastY  float64
	VX, VY float64 // each is +1 or -1
	Radius float64
}

// NewBall creates the ball sprite at (x, y) moving down and right.
func NewBall(eng engine.Engine, asset string, x, y, radius float64) *Ball {
	return &Ball{
		eng:    eng,
		sprite: eng.CreateSprite(asset, x, y),
		prevX:  x,
		prevY:  y,
		VX:     1,
		VY:     1,
		Radius: radius,
	}
}

func (b *Ball) X() float64 {
	if b.sprite == nil {
		return b.lastX
	}
	return b.sprite.X()
}

func (b *Ball) Y() float64 {
	if b.sprite == nil {
		return b.lastY
	}
	return b.sprite.Y()
}

// Position returns the sprite's top-left, or where it was when released.
func (b *Ball) Position() (float64, float64) {
	return b.X(), b.Y()
}

// Move remembers the current position and advances by v*dt*speed*rate.
func (b *Ball) Move(dt, speed, rate float64) {
	b.prevX, b.prevY = b.Position()
	step := dt * speed * rate
	b.sprite.Move(b.VX*step, b.VY*step)
}

// StepBack returns the ball to where the last Move started.
func (b *Ball) StepBack() {
	b.sprite.SetPosition(b.prevX, b.prevY)
}

// Bounce negates one velocity component.
func (b *Ball) Bounce(axis Axis) {
	if axis == AxisX {
		b.VX = -b.VX
	} else {
		b.VY = -b.VY
	}
}

// PushUp moves the ball vertically by d without touching its velocity.
// Negative d moves it up the screen.
func (b *Ball) PushUp(d float64) {
	b.sprite.MoveY(d)
}

// Respawn places the ball at (x, y) with its initial velocity.
func (b *Ball) Respawn(x, y float64) {
	b.sprite.SetPosition(x, y)
	b.prevX, b.prevY = x, y
	b.VX, b.VY = 1, 1
}

// Release frees the sprite.
func (b *Ball) Release() {
	if b.sprite != nil {
		b.lastX, b.lastY = b.Position()
		b.eng.RemoveSprite(b.sprite)
		b.sprite = nil
	}
}

// Paddle is the player's bat. It moves horizontally only.
type Paddle struct {
	eng          engine.Engine
	sprite       engine.Sprite
	lastX, lastY float64 // position at Release
	W, H         float64
}

// NewPaddle creates the paddle sprite at (x, y).
func NewPaddle(eng engine.Engine, asset string, x, y, w, h float64) *Paddle {
	return &Paddle{eng: eng, sprite: eng.CreateSprite(asset, x, y), W: w, H: h}
}

func (p *Paddle) X() float64 {
	if p.sprite == nil {
		return p.lastX
	}
	return p.sprite.X()
}

func (p *Paddle) Y() float64 {
	if p.sprite == nil {
		return p.lastY
	}
	return p.sprite.Y()
}

// Position returns the sprite's top-left, or where it was when released.
func (p *Paddle) Position() (float64, float64) {
	return p.X(), p.Y()
}

// MoveX translates the paddle by a signed delta.
func (p *Paddle) MoveX(delta float64) {
	p.sprite.MoveX(delta)
}

// SetPosition places the paddle.
func (p *Paddle) SetPosition(x, y float64) {
	p.sprite.SetPosition(x, y)
}

// Box returns the paddle's bounds.
func (p *Paddle) Box() Box {
	return Box{X: p.X(), Y: p.Y(), W: p.W, H: p.H}
}

// Release frees the sprite.
func (p *Paddle) Release() {
	if p.sprite != nil {
		p.lastX, p.lastY = p.Position()
		p.eng.RemoveSprite(p.sprite)
		p.sprite = nil
	}
}

// BrickGrid holds brick strengths and their sprites. A cell with strength
// n > 0 always has exactly one sprite showing visuals[n-1]; a cell with
// strength 0 has none.
type BrickGrid struct {
	eng      engine.Engine
	cfg      config.BricksConfig
	strength [][]int
	sprites  [][]engine.Sprite
}

// NewBrickGrid creates an empty grid.
func NewBrickGrid(eng engine.Engine, cfg config.BricksConfig) *BrickGrid {
	g := &BrickGrid{
		eng:      eng,
		cfg:      cfg,
		strength: make([][]int, cfg.MaxRows),
		sprites:  make([][]engine.Sprite, cfg.MaxRows),
	}
	for r := range cfg.MaxRows {
		g.strength[r] = make([]int, cfg.MaxCols)
		g.sprites[r] = make([]engine.Sprite, cfg.MaxCols)
	}
	return g
}

func (g *BrickGrid) Rows() int { return g.cfg.MaxRows }
func (g *BrickGrid) Cols() int { return g.cfg.MaxCols }

// Limits returns what a map may place into this grid.
func (g *BrickGrid) Limits() Limits {
	return Limits{MaxRows: g.cfg.MaxRows, MaxCols: g.cfg.MaxCols, MaxStrength: len(g.cfg.Visuals)}
}

// Strength returns the remaining hits of a cell, 0 if empty.
func (g *BrickGrid) Strength(row, col int) int {
	return g.strength[row][col]
}

// Box returns the bounds of a cell.
func (g *BrickGrid) Box(row, col int) Box {
	return Box{
		X: float64(col)*g.cfg.Width + g.cfg.OffsetX,
		Y: float64(row)*g.cfg.Height + g.cfg.OffsetY,
		W: g.cfg.Width,
		H: g.cfg.Height,
	}
}

// Place sets a cell, replacing any brick already there.
func (g *BrickGrid) Place(row, col, strength int) {
	g.set(row, col, strength)
}

// Hit takes one strength from a brick and returns what is left.
func (g *BrickGrid) Hit(row, col int) int {
	n := g.strength[row][col] - 1
	if n < 0 {
		n = 0
	}
	g.set(row, col, n)
	return n
}

func (g *BrickGrid) set(row, col, strength int) {
	if sp := g.sprites[row][col]; sp != nil {
		g.eng.RemoveSprite(sp)
		g.sprites[row][col] = nil
	}
	g.strength[row][col] = strength
	if strength > 0 {
		b := g.Box(row, col)
		g.sprites[row][col] = g.eng.CreateSprite(g.cfg.Visuals[strength-1], b.X, b.Y)
	}
}

// Remaining returns the number of bricks still standing.
func (g *BrickGrid) Remaining() int {
	n := 0
	for _, row := range g.strength {
		for _, s := range row {
			if s > 0 {
				n++
			}
		}
	}
	return n
}

// Clear removes every brick.
func (g *BrickGrid) Clear() {
	for r := range g.strength {
		for c := range g.strength[r] {
			g.set(r, c, 0)
		}
	}
}

// Walls are the unbreakable frame around the grid and the lines the ball
// bounces off.
type Walls struct {
	eng     engine.Engine
	East    float64 // inner edge of the left column
	West    float64 // inner edge of the right column
	North   float64 // lower edge of the top row
	South   float64 // bottom of the screen
	swapped bool
	sprites []engine.Sprite
}

// NewWalls lays out the frame tiles and computes the wall lines.
func NewWalls(eng engine.Engine, cfg config.BreakoutConfig) *Walls {
	b, size := cfg.Bricks, cfg.Walls.Size
	gridW := float64(b.MaxCols) * b.Width
	w := &Walls{
		eng:     eng,
		East:    b.OffsetX - size,
		West:    b.OffsetX + gridW + size,
		North:   b.OffsetY - size,
		South:   float64(cfg.Screen.Height),
		swapped: cfg.Walls.Bounce == config.BounceSwapped,
	}

	column := cfg.Screen.Height/int(size) + 1
	for i := range column {
		w.add(cfg.Walls.Asset, b.OffsetX-2*size, size*float64(i))
	}
	top := int(gridW/size) + 2
	for i := range top {
		w.add(cfg.Walls.Asset, size*float64(i-1)+b.OffsetX, 0)
	}
	for i := range column {
		w.add(cfg.Walls.Asset, w.West, size*float64(i))
	}
	return w
}

func (w *Walls) add(asset string, x, y float64) {
	w.sprites = append(w.sprites, w.eng.CreateSprite(asset, x, y))
}

// Tiles returns the number of frame sprites.
func (w *Walls) Tiles() int { return len(w.sprites) }

// BounceAxis returns the velocity component a wall flips.
func (w *Walls) BounceAxis(d Direction) Axis {
	side := d == East || d == West
	if side != w.swapped {
		return AxisX
	}
	return AxisY
}

// Release frees every tile.
func (w *Walls) Release() {
	for _, sp := range w.sprites {
		w.eng.RemoveSprite(sp)
	}
	w.sprites = nil
}
