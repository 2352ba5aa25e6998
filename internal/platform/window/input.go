package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/breakout/internal/core"
)

// bindings lists the physical keys behind each action.
var bindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:     {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:    {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionBoost:    {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	core.ActionClose:    {ebiten.KeyEscape},
	core.ActionContinue: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.ActionUp:       {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:     {ebiten.KeyArrowDown, ebiten.KeyS},
}

// readInput builds an input frame from two key probes, so it can be fed
// from ebiten or from a test.
func readInput(pressed, justPressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for a, keys := range bindings {
		for _, k := range keys {
			if pressed(k) {
				in.SetHeld(a)
			}
			if justPressed(k) {
				in.SetHit(a)
			}
		}
	}
	return in
}

func pollInput() core.InputFrame {
	return readInput(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}
