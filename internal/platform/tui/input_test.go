package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/breakout/internal/core"
)

func TestKeyStateHitsLastOneFrame(t *testing.T) {
	k := newKeyState()
	t0 := time.Unix(100, 0)

	k.press(t0, core.ActionClose)
	in := k.frame(t0)
	if !in.IsHit(core.ActionClose) {
		t.Fatal("press not reported as hit")
	}
	if in = k.frame(t0.Add(time.Millisecond)); in.IsHit(core.ActionClose) {
		t.Error("hit repeated on the next frame")
	}
}

func TestKeyStateHoldWindow(t *testing.T) {
	k := newKeyState()
	t0 := time.Unix(100, 0)

	k.press(t0, core.ActionLeft)
	if !k.frame(t0.Add(500 * time.Millisecond)).IsHeld(core.ActionLeft) {
		t.Error("key released before auto-repeat could start")
	}

	// auto-repeat shortens the window
	t1 := t0.Add(520 * time.Millisecond)
	k.press(t1, core.ActionLeft)
	if !k.frame(t1.Add(100 * time.Millisecond)).IsHeld(core.ActionLeft) {
		t.Error("repeat did not keep the key held")
	}
	if k.frame(t1.Add(200 * time.Millisecond)).IsHeld(core.ActionLeft) {
		t.Error("key still held after repeats stopped")
	}
}

func TestKeyStateDirectionsExclusive(t *testing.T) {
	k := newKeyState()
	t0 := time.Unix(100, 0)

	k.press(t0, core.ActionLeft, core.ActionBoost)
	k.press(t0.Add(10*time.Millisecond), core.ActionRight)

	in := k.frame(t0.Add(20 * time.Millisecond))
	if in.IsHeld(core.ActionLeft) {
		t.Error("left still held after pressing right")
	}
	if !in.IsHeld(core.ActionRight) {
		t.Error("right not held")
	}
	if in.IsHeld(core.ActionBoost) {
		t.Error("plain arrow kept the boost")
	}
}
