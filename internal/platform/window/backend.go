// Package window runs Breakout in a desktop window through Ebitengine.
package window

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/breakout/internal/engine"
	"github.com/vovakirdan/breakout/internal/games/breakout"
	"github.com/vovakirdan/breakout/internal/registry"
)

// host adapts a session to ebiten.Game.
type host struct {
	scene  *engine.Scene
	game   *breakout.Game
	images *images
	width  int
	height int
	logger *log.Logger
	err    error
}

func (h *host) Update() error {
	h.scene.BeginFrame(pollInput())
	if err := h.game.Frame(); err != nil {
		h.err = err
		return err
	}
	if !h.scene.IsRunning() {
		h.logger.Info("game stopped", "level", h.game.Level(), "score", h.game.Stats().Score)
		return ebiten.Termination
	}
	return nil
}

func (h *host) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	f := h.scene.LastFrame()
	for _, sv := range f.Sprites {
		drawSprite(screen, sv, h.images.get(sv.Asset.Name))
	}
	for _, t := range f.Texts {
		drawLabel(screen, t)
	}
}

func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.width, h.height
}

// Backend runs sessions in a resizable window.
type Backend struct{}

func init() {
	registry.Register("window", func() registry.Backend { return Backend{} })
}

// Name implements registry.Backend.
func (Backend) Name() string { return "window" }

// Title implements registry.Backend.
func (Backend) Title() string { return "Desktop window (Ebitengine)" }

// Run implements registry.Backend.
func (Backend) Run(opts registry.RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Game.Config
	scene := engine.NewScene(nil)
	scene.RegisterAssets(breakout.Assets(cfg)...)

	game, err := breakout.New(scene, opts.Game)
	if err != nil {
		return err
	}
	defer game.Close()

	h := &host{
		scene:  scene,
		game:   game,
		images: newImages(cfg.Media.Dir, logger),
		width:  cfg.Screen.Width,
		height: cfg.Screen.Height,
		logger: logger,
	}

	n := h.images.preload(scene.Assets())
	logger.Info("sprite images loaded", "dir", cfg.Media.Dir, "loaded", n, "assets", len(scene.Assets()))

	if opts.FPS > 0 {
		ebiten.SetTPS(opts.FPS)
	}
	ebiten.SetWindowSize(h.width, h.height)
	ebiten.SetWindowTitle("Breakout")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(h); err != nil && h.err == nil {
		return fmt.Errorf("window: %w", err)
	}
	return h.err
}
