package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, Cell{Rune: 'X', Color: ColorRed})
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", c)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, Cell{Rune: 'A'})
	s.SetCell(100, 0, Cell{Rune: 'A'})
	s.SetCell(0, -1, Cell{Rune: 'A'})
	s.SetCell(0, 100, Cell{Rune: 'A'})

	if s.GetCell(-1, 0).Rune != ' ' || s.GetCell(100, 0).Rune != ' ' {
		t.Error("out of bounds GetCell should return a blank cell")
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorYellow)

	for i, ch := range "Hello" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorYellow {
			t.Errorf("DrawText: expected yellow %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	s.DrawText(18, 0, "Hello", ColorDefault)
	if s.Row(0)[18:] != "He" {
		t.Errorf("text should be clipped at right boundary, row = %q", s.Row(0))
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(0, 0, "●ab", ColorDefault)

	if s.GetCell(0, 0).Rune != '●' || s.GetCell(1, 0).Rune != 'a' || s.GetCell(2, 0).Rune != 'b' {
		t.Errorf("multibyte runes should occupy one cell each, row = %q", s.Row(0))
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(8, 8, 5, 5), Cell{Rune: '#'})

	for y := 8; y < 10; y++ {
		for x := 8; x < 10; x++ {
			if s.GetCell(x, y).Rune != '#' {
				t.Errorf("FillRect: expected '#' at (%d, %d)", x, y)
			}
		}
	}
	if s.GetCell(7, 7).Rune != ' ' {
		t.Error("FillRect should not affect outside area")
	}

	s.FillRect(NewRect(20, 20, 3, 3), Cell{Rune: '@'})
	if strings.ContainsRune(s.String(), '@') {
		t.Error("FillRect entirely off screen should draw nothing")
	}
}

func TestScreenClearAndString(t *testing.T) {
	s := NewScreen(3, 2)
	s.FillRect(s.Bounds(), Cell{Rune: 'x'})
	if s.String() != "xxx\nxxx" {
		t.Errorf("String() = %q", s.String())
	}

	s.Clear()
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("after Clear, String() = %q", s.String())
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Errorf("Resize: got %dx%d, expected 6x2", s.Width(), s.Height())
	}
	s.SetCell(5, 1, Cell{Rune: 'Z'})
	if s.GetCell(5, 1).Rune != 'Z' {
		t.Error("resized screen should accept writes at the new edge")
	}
}
