package breakout

import (
	"errors"
	"fmt"
)

// ErrModeUnsupported is returned for modes that have no implementation.
var ErrModeUnsupported = errors.New("breakout: mode not supported")

// ErrClosed is returned by Frame once the session has been closed.
var ErrClosed = errors.New("breakout: game closed")

// Mode is the number of players and how they share the field.
type Mode int

const (
	ModeSingle Mode = iota
	ModeCoop
	ModeVs
)

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeCoop:
		return "coop"
	case ModeVs:
		return "vs"
	default:
		return "unknown"
	}
}

// ParseMode maps a flag value to a mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "single":
		return ModeSingle, nil
	case "coop":
		return ModeCoop, nil
	case "vs":
		return ModeVs, nil
	default:
		return ModeSingle, fmt.Errorf("breakout: unknown mode %q (want single, coop or vs)", s)
	}
}
