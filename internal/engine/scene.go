package engine

import (
	"sort"
	"time"

	"github.com/vovakirdan/breakout/internal/core"
)

// SpriteView is a read-only copy of a sprite taken when a frame is published.
type SpriteView struct {
	ID    int
	Asset Asset
	X, Y  float64
}

// Frame is what a backend presents: the sprites at DrawScene time in
// creation order, plus the text queued before it.
type Frame struct {
	Seq     uint64
	Sprites []SpriteView
	Texts   []Text
}

// Scene is an in-memory Engine. It is driven from a single goroutine.
type Scene struct {
	assets  map[string]Asset
	sprites map[int]*sprite
	nextID  int

	clock func() time.Time
	last  time.Time

	input   core.InputFrame
	pending []Text
	frame   Frame
	running bool
}

var _ Engine = (*Scene)(nil)

// NewScene creates a running scene. A nil clock means time.Now.
func NewScene(clock func() time.Time) *Scene {
	if clock == nil {
		clock = time.Now
	}
	return &Scene{
		assets:  make(map[string]Asset),
		sprites: make(map[int]*sprite),
		clock:   clock,
		last:    clock(),
		input:   core.NewInputFrame(),
		running: true,
	}
}

// RegisterAssets adds image descriptions to the catalog.
func (s *Scene) RegisterAssets(assets ...Asset) {
	for _, a := range assets {
		s.assets[a.Name] = a
	}
}

// Assets returns the catalog sorted by name.
func (s *Scene) Assets() []Asset {
	out := make([]Asset, 0, len(s.assets))
	for _, a := range s.assets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// BeginFrame installs the keyboard state for the frame about to run.
func (s *Scene) BeginFrame(in core.InputFrame) {
	s.input = in.Clone()
}

// CreateSprite implements Engine. Unknown asset names get an empty
// placeholder so the call never fails.
func (s *Scene) CreateSprite(asset string, x, y float64) Sprite {
	a, ok := s.assets[asset]
	if !ok {
		a = Asset{Name: asset, Glyph: '?'}
	}
	s.nextID++
	sp := &sprite{id: s.nextID, asset: a, x: x, y: y}
	s.sprites[sp.id] = sp
	return sp
}

// RemoveSprite implements Engine.
func (s *Scene) RemoveSprite(handle Sprite) {
	sp, ok := handle.(*sprite)
	if !ok || sp == nil {
		return
	}
	delete(s.sprites, sp.id)
}

// Len returns the number of live sprites.
func (s *Scene) Len() int {
	return len(s.sprites)
}

// Sprites returns the live sprites in creation order.
func (s *Scene) Sprites() []SpriteView {
	views := make([]SpriteView, 0, len(s.sprites))
	for _, sp := range s.sprites {
		views = append(views, SpriteView{ID: sp.id, Asset: sp.asset, X: sp.x, Y: sp.y})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views
}

// DrawScene implements Engine.
func (s *Scene) DrawScene() {
	s.frame = Frame{
		Seq:     s.frame.Seq + 1,
		Sprites: s.Sprites(),
		Texts:   s.pending,
	}
	s.pending = nil
}

// LastFrame returns the most recently published frame.
func (s *Scene) LastFrame() Frame {
	return s.frame
}

// Timer implements Engine.
func (s *Scene) Timer() float64 {
	now := s.clock()
	dt := now.Sub(s.last).Seconds()
	s.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// KeyHeld implements Engine.
func (s *Scene) KeyHeld(a core.Action) bool {
	return s.input.IsHeld(a)
}

// KeyHit implements Engine.
func (s *Scene) KeyHit(a core.Action) bool {
	return s.input.IsHit(a)
}

// DrawText implements Engine.
func (s *Scene) DrawText(t Text) {
	s.pending = append(s.pending, t)
}

// IsRunning implements Engine.
func (s *Scene) IsRunning() bool {
	return s.running
}

// Stop implements Engine.
func (s *Scene) Stop() {
	s.running = false
}

type sprite struct {
	id    int
	asset Asset
	x, y  float64
}

func (sp *sprite) Asset() string { return sp.asset.Name }
func (sp *sprite) X() float64    { return sp.x }
func (sp *sprite) Y() float64    { return sp.y }

func (sp *sprite) SetPosition(x, y float64) {
	sp.x, sp.y = x, y
}

func (sp *sprite) Move(dx, dy float64) {
	sp.x += dx
	sp.y += dy
}

func (sp *sprite) MoveX(dx float64) { sp.x += dx }
func (sp *sprite) MoveY(dy float64) { sp.y += dy }
