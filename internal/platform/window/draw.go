package window

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/engine"
)

var (
	colorBackground = color.RGBA{20, 20, 28, 255}
	colorFrame      = color.RGBA{0, 0, 0, 90}
)

// palette maps core.Color to RGBA for boxes and labels.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {220, 220, 220, 255},
	core.ColorRed:     {235, 64, 52, 255},
	core.ColorGreen:   {100, 200, 100, 255},
	core.ColorYellow:  {255, 220, 90, 255},
	core.ColorBlue:    {90, 130, 255, 255},
	core.ColorMagenta: {200, 100, 255, 255},
	core.ColorCyan:    {100, 230, 230, 255},
	core.ColorWhite:   {250, 250, 250, 255},
	core.ColorOrange:  {255, 150, 60, 255},
	core.ColorGray:    {130, 130, 140, 255},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// Title labels are the normal face drawn at this scale.
const titleScale = 3

func face() font.Face { return basicfont.Face7x13 }

func fontScale(f engine.Font) float64 {
	if f == engine.FontTitle {
		return titleScale
	}
	return 1
}

// origin returns where text.Draw must start so that a label whose unscaled
// bounds are b lands anchored at (x, y). The y coordinate is the baseline.
func origin(b image.Rectangle, x, y, scale float64, h engine.HAlign, v engine.VAlign) (float64, float64) {
	w := float64(b.Dx()) * scale
	switch h {
	case engine.AlignCentre:
		x -= w / 2
	case engine.AlignRight:
		x -= w
	}

	ascent := float64(-b.Min.Y) * scale
	descent := float64(b.Max.Y) * scale
	switch v {
	case engine.AlignTop:
		y += ascent
	case engine.AlignMiddle:
		y += (ascent - descent) / 2
	case engine.AlignBottom:
		y -= descent
	}
	return x, y
}

func drawLabel(dst *ebiten.Image, t engine.Text) {
	f := face()
	scale := fontScale(t.Font)
	x, y := origin(text.BoundString(f, t.Content), t.X, t.Y, scale, t.H, t.V)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(rgba(t.Color))
	text.DrawWithOptions(dst, t.Content, f, op)
}

// images caches sprite images by asset name. A nil entry means the file
// could not be loaded and the sprite is drawn as a box.
type images struct {
	dir    string
	cache  map[string]*ebiten.Image
	logger *log.Logger
}

func newImages(dir string, logger *log.Logger) *images {
	return &images{dir: dir, cache: make(map[string]*ebiten.Image), logger: logger}
}

// preload loads every catalog image up front so missing files are
// reported once at startup.
func (im *images) preload(assets []engine.Asset) int {
	loaded := 0
	for _, a := range assets {
		if im.get(a.Name) != nil {
			loaded++
		}
	}
	return loaded
}

func (im *images) get(name string) *ebiten.Image {
	if img, ok := im.cache[name]; ok {
		return img
	}
	path := filepath.Join(im.dir, name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		level := log.WarnLevel
		if errors.Is(err, fs.ErrNotExist) {
			level = log.DebugLevel
		}
		im.logger.Log(level, "sprite image unavailable, drawing boxes", "path", path, "error", err)
		img = nil
	}
	im.cache[name] = img
	return img
}

func drawSprite(dst *ebiten.Image, sv engine.SpriteView, img *ebiten.Image) {
	a := sv.Asset
	if img != nil {
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		if a.W > 0 && a.H > 0 {
			op.GeoM.Scale(a.W/float64(b.Dx()), a.H/float64(b.Dy()))
		}
		op.GeoM.Translate(sv.X, sv.Y)
		dst.DrawImage(img, op)
		return
	}

	x, y := float32(sv.X), float32(sv.Y)
	w, h := float32(a.W), float32(a.H)
	c := rgba(a.Color)
	if a.Point {
		vector.DrawFilledCircle(dst, x+w/2, y+h/2, w/2, c, true)
		return
	}
	vector.DrawFilledRect(dst, x, y, w, h, c, false)
	if a.Framed {
		vector.StrokeRect(dst, x, y, w, h, 1, colorFrame, false)
	}
}
