package tui

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/engine"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Projection maps playfield pixels onto terminal cells.
type Projection struct {
	SX, SY float64 // pixels per cell
}

// NewProjection fits a fieldW x fieldH playfield into cols x rows cells.
func NewProjection(fieldW, fieldH, cols, rows int) Projection {
	cols = max(cols, 1)
	rows = max(rows, 1)
	return Projection{
		SX: float64(fieldW) / float64(cols),
		SY: float64(fieldH) / float64(rows),
	}
}

// Cell returns the cell containing pixel (x, y).
func (p Projection) Cell(x, y float64) (int, int) {
	return int(math.Floor(x / p.SX)), int(math.Floor(y / p.SY))
}

// Compose draws a published frame onto dst: sprites in creation order,
// then the text on top.
func Compose(dst *core.Screen, f engine.Frame, p Projection) {
	dst.Clear()
	for _, sv := range f.Sprites {
		drawSprite(dst, sv, p)
	}
	for _, t := range f.Texts {
		drawText(dst, t, p)
	}
}

func drawSprite(dst *core.Screen, sv engine.SpriteView, p Projection) {
	a := sv.Asset
	if a.Point || a.W <= 0 || a.H <= 0 {
		cx, cy := p.Cell(sv.X+a.W/2, sv.Y+a.H/2)
		dst.SetCell(cx, cy, core.Cell{Rune: a.Glyph, Color: a.Color})
		return
	}

	r := core.Scale(sv.X, sv.Y, a.W, a.H, p.SX, p.SY)
	dst.FillRect(r, core.Cell{Rune: a.Glyph, Color: a.Color})
	if a.Framed && r.W >= 3 {
		for y := r.Y; y < r.Bottom(); y++ {
			dst.SetCell(r.X, y, core.Cell{Rune: '[', Color: a.Color})
			dst.SetCell(r.Right()-1, y, core.Cell{Rune: ']', Color: a.Color})
		}
	}
}

func drawText(dst *core.Screen, t engine.Text, p Projection) {
	s := t.Content
	if t.Font == engine.FontTitle {
		s = spaced(strings.ToUpper(s))
	}
	n := utf8.RuneCountInString(s)

	x, y := p.Cell(t.X, t.Y)
	switch t.H {
	case engine.AlignCentre:
		x -= n / 2
	case engine.AlignRight:
		x -= n
	}
	if t.V == engine.AlignBottom {
		y--
	}
	dst.DrawText(x, y, s, t.Color)
}

// spaced puts a space between letters, the terminal's stand-in for a big font.
func spaced(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
