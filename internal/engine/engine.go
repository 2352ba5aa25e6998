// Package engine defines the collaborator the game drives every frame:
// positioned sprites, text, frame timing, keyboard state and the run flag.
// Scene is an in-memory implementation shared by all backends; a backend
// only feeds it input and presents the frames it publishes.
package engine

import "github.com/vovakirdan/breakout/internal/core"

// HAlign is the horizontal anchor of a text label.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCentre
	AlignRight
)

// VAlign is the vertical anchor of a text label.
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// Font selects one of the two faces a backend offers.
type Font int

const (
	FontNormal Font = iota
	FontTitle
)

// Text is a label queued for the next presented frame.
type Text struct {
	Content string
	X, Y    float64
	Color   core.Color
	Font    Font
	H       HAlign
	V       VAlign
}

// Asset describes an image resource by name.
// Backends that cannot load the named image draw a W x H box instead,
// using Glyph and Color in a terminal.
type Asset struct {
	Name   string
	W, H   float64
	Glyph  rune
	Color  core.Color
	Framed bool // draw end caps in cell renderers
	Point  bool // draw as a single cell at the centre in cell renderers
}

// Sprite is an opaque handle to a positioned image owned by the engine.
// Position is the top-left corner in playfield pixels.
type Sprite interface {
	Asset() string
	X() float64
	Y() float64
	SetPosition(x, y float64)
	Move(dx, dy float64)
	MoveX(dx float64)
	MoveY(dy float64)
}

// Engine is everything the game needs from its host.
type Engine interface {
	// CreateSprite places a new image at (x, y).
	CreateSprite(asset string, x, y float64) Sprite
	// RemoveSprite releases a sprite. Removing twice is a no-op.
	RemoveSprite(s Sprite)
	// DrawScene presents the current sprites together with the text queued
	// since the previous call.
	DrawScene()
	// Timer returns the seconds elapsed since it was last called.
	Timer() float64
	// KeyHeld reports whether the action's key is down.
	KeyHeld(a core.Action) bool
	// KeyHit reports whether the action's key went down this frame.
	KeyHit(a core.Action) bool
	// DrawText queues a label for the next DrawScene.
	DrawText(t Text)
	IsRunning() bool
	Stop()
}
