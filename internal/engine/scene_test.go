package engine

import (
	"testing"
	"time"

	"github.com/vovakirdan/breakout/internal/core"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestScene() (*Scene, *fakeClock) {
	clk := &fakeClock{now: time.Unix(1000, 0)}
	s := NewScene(clk.Now)
	s.RegisterAssets(
		Asset{Name: "Bat.png", W: 86, H: 16, Glyph: '=', Color: core.ColorWhite},
		Asset{Name: "TinyBall.png", W: 16, H: 16, Glyph: 'o', Point: true},
	)
	return s, clk
}

func TestSceneSpriteLifecycle(t *testing.T) {
	s, _ := newTestScene()

	bat := s.CreateSprite("Bat.png", 592, 694)
	ball := s.CreateSprite("TinyBall.png", 627, 678)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	bat.MoveX(-10)
	ball.Move(3, -4)
	ball.MoveY(1)

	views := s.Sprites()
	if views[0].Asset.Name != "Bat.png" || views[0].X != 582 {
		t.Errorf("bat view = %+v", views[0])
	}
	if views[1].X != 630 || views[1].Y != 675 {
		t.Errorf("ball at (%v,%v), want (630,675)", views[1].X, views[1].Y)
	}

	s.RemoveSprite(ball)
	s.RemoveSprite(ball)
	if s.Len() != 1 {
		t.Errorf("Len() after remove = %d, want 1", s.Len())
	}
}

func TestSceneUnknownAsset(t *testing.T) {
	s, _ := newTestScene()
	sp := s.CreateSprite("Missing.png", 1, 2)
	if sp.Asset() != "Missing.png" {
		t.Errorf("Asset() = %q", sp.Asset())
	}
	if got := s.Sprites()[0].Asset.Glyph; got != '?' {
		t.Errorf("placeholder glyph = %q, want '?'", got)
	}
}

func TestSceneDrawScenePublishesText(t *testing.T) {
	s, _ := newTestScene()
	s.CreateSprite("Bat.png", 0, 0)

	s.DrawText(Text{Content: "Paused", X: 640, Y: 360, H: AlignCentre, V: AlignMiddle})
	if len(s.LastFrame().Texts) != 0 {
		t.Fatal("text visible before DrawScene")
	}

	s.DrawScene()
	f := s.LastFrame()
	if f.Seq != 1 || len(f.Texts) != 1 || f.Texts[0].Content != "Paused" {
		t.Errorf("frame = %+v", f)
	}
	if len(f.Sprites) != 1 {
		t.Errorf("frame sprites = %d, want 1", len(f.Sprites))
	}

	s.DrawScene()
	if got := s.LastFrame(); got.Seq != 2 || len(got.Texts) != 0 {
		t.Errorf("second frame = %+v, want no text", got)
	}
}

func TestSceneTimer(t *testing.T) {
	s, clk := newTestScene()

	clk.Advance(16 * time.Millisecond)
	if got := s.Timer(); got < 0.0159 || got > 0.0161 {
		t.Errorf("Timer() = %v, want 0.016", got)
	}
	if got := s.Timer(); got != 0 {
		t.Errorf("Timer() without time passing = %v, want 0", got)
	}

	clk.Advance(-time.Second)
	if got := s.Timer(); got != 0 {
		t.Errorf("Timer() with clock going back = %v, want 0", got)
	}
}

func TestSceneInput(t *testing.T) {
	s, _ := newTestScene()

	in := core.NewInputFrame()
	in.Press(core.ActionClose)
	in.SetHeld(core.ActionLeft)
	s.BeginFrame(in)
	clear(in.Held)
	clear(in.Hit)

	if !s.KeyHit(core.ActionClose) || !s.KeyHeld(core.ActionLeft) {
		t.Error("scene lost input after caller reused its frame")
	}
	if s.KeyHit(core.ActionLeft) {
		t.Error("held key reported as hit")
	}
}

func TestSceneStop(t *testing.T) {
	s, _ := newTestScene()
	if !s.IsRunning() {
		t.Fatal("new scene not running")
	}
	s.Stop()
	if s.IsRunning() {
		t.Error("scene still running after Stop")
	}
}

func TestSceneAssetsSorted(t *testing.T) {
	s, _ := newTestScene()
	s.RegisterAssets(Asset{Name: "Block2.png", W: 64, H: 32})

	got := s.Assets()
	want := []string{"Bat.png", "Block2.png", "TinyBall.png"}
	if len(got) != len(want) {
		t.Fatalf("Assets() has %d entries, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("Assets()[%d] = %q, want %q", i, got[i].Name, name)
		}
	}
}
