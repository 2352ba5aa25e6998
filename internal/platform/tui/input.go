package tui

import (
	"slices"
	"time"

	"github.com/vovakirdan/breakout/internal/core"
)

// Terminals send key presses but no releases. A key counts as held for a
// while after each press: long enough after the first press to bridge the
// keyboard's auto-repeat delay, then only across the gap between repeats.
const (
	firstHold  = 550 * time.Millisecond
	repeatHold = 120 * time.Millisecond
)

// keyState accumulates key presses between frames.
type keyState struct {
	until map[core.Action]time.Time
	hits  map[core.Action]bool
}

func newKeyState() *keyState {
	return &keyState{
		until: make(map[core.Action]time.Time),
		hits:  make(map[core.Action]bool),
	}
}

// press records a key press at now.
func (k *keyState) press(now time.Time, actions ...core.Action) {
	for _, a := range actions {
		hold := firstHold
		if k.heldAt(a, now) {
			hold = repeatHold
		}
		k.until[a] = now.Add(hold)
		k.hits[a] = true

		// Pressing one direction lets go of the other.
		switch a {
		case core.ActionLeft:
			delete(k.until, core.ActionRight)
		case core.ActionRight:
			delete(k.until, core.ActionLeft)
		}
	}
	if !slices.Contains(actions, core.ActionBoost) {
		// a plain arrow press ends a boost
		for _, a := range actions {
			if a == core.ActionLeft || a == core.ActionRight {
				delete(k.until, core.ActionBoost)
			}
		}
	}
}

func (k *keyState) heldAt(a core.Action, now time.Time) bool {
	t, ok := k.until[a]
	return ok && now.Before(t)
}

// frame returns the input for a frame starting at now and forgets the hits.
func (k *keyState) frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a, t := range k.until {
		if now.Before(t) {
			in.SetHeld(a)
		} else {
			delete(k.until, a)
		}
	}
	for a := range k.hits {
		in.SetHit(a)
	}
	clear(k.hits)
	return in
}
