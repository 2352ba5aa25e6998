// Package tui runs Breakout in a terminal through Bubble Tea. It maps keys to
// game actions, drives one game frame per tick, and draws the engine's
// published frames as colored character cells.
package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/engine"
	"github.com/vovakirdan/breakout/internal/games/breakout"
	"github.com/vovakirdan/breakout/internal/registry"
)

// Rows reserved below the playfield for the status and help lines.
const footerRows = 2

// TickMsg is sent to trigger a game frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Model is the Bubble Tea model hosting one Breakout session.
type Model struct {
	scene  *engine.Scene
	game   *breakout.Game
	cfg    config.BreakoutConfig
	screen *core.Screen
	proj   Projection
	keys   KeyMap
	input  *keyState
	help   help.Model
	logger *log.Logger

	runtime  core.RuntimeConfig
	err      error
	quitting bool
}

// NewModel wraps a session. rc carries the terminal size and tick rate.
func NewModel(scene *engine.Scene, game *breakout.Game, cfg config.BreakoutConfig, rc core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		scene:   scene,
		game:    game,
		cfg:     cfg,
		keys:    DefaultKeyMap(),
		input:   newKeyState(),
		help:    help.New(),
		logger:  logger,
		runtime: rc,
	}
	m.resize(rc.ScreenW, rc.ScreenH)
	return m
}

func (m *Model) resize(w, h int) {
	m.runtime.ScreenW, m.runtime.ScreenH = w, h
	rows := max(h-footerRows, 1)
	if m.screen == nil {
		m.screen = core.NewScreen(w, rows)
	} else {
		m.screen.Resize(w, rows)
	}
	m.proj = NewProjection(m.cfg.Screen.Width, m.cfg.Screen.Height, w, rows)
	m.help.Width = w
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.press(time.Now(), m.keys.Actions(msg)...)
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.scene.BeginFrame(m.input.frame(now))
	if err := m.game.Frame(); err != nil {
		m.logger.Error("frame failed", "error", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if !m.scene.IsRunning() {
		m.logger.Info("game stopped", "level", m.game.Level(), "score", m.game.Stats().Score)
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.runtime.TickRate)
}

// View renders the last presented frame plus a status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	Compose(m.screen, m.scene.LastFrame(), m.proj)
	return RenderScreen(m.screen) + "\n" + m.statusLine() + "\n" + m.help.View(m.keys)
}

func (m Model) statusLine() string {
	st := m.game.Stats()
	line := statusStyle.Render(fmt.Sprintf("Level %d  Score %d  Time %.1fs  Lives %d",
		m.game.Level(), st.Score, st.Time, st.Lives))
	switch {
	case m.game.State() == breakout.StatePaused:
		line += "  " + alertStyle.Render("PAUSED")
	case m.game.BallLost():
		line += "  " + alertStyle.Render("Ball lost: esc twice to quit")
	}
	return line
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error { return m.err }

// Backend runs sessions in the controlling terminal.
type Backend struct{}

func init() {
	registry.Register("terminal", func() registry.Backend { return Backend{} })
}

// Name implements registry.Backend.
func (Backend) Name() string { return "terminal" }

// Title implements registry.Backend.
func (Backend) Title() string { return "Terminal (Bubble Tea)" }

// Run implements registry.Backend.
func (Backend) Run(opts registry.RunOptions) error {
	cfg := opts.Game.Config
	scene := engine.NewScene(nil)
	scene.RegisterAssets(breakout.Assets(cfg)...)

	game, err := breakout.New(scene, opts.Game)
	if err != nil {
		return err
	}
	defer game.Close()

	rc := core.DefaultConfig()
	if opts.FPS > 0 {
		rc.TickRate = opts.FPS
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}

	p := tea.NewProgram(NewModel(scene, game, cfg, rc, opts.Logger), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
