// Package breakout implements a single-player brick breaker on top of an
// engine.Engine: map loading, the brick grid, ball and paddle physics, and
// the playing/paused/menu state machine.
package breakout

import (
	"fmt"
	"io"
	"io/fs"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/engine"
)

// countdownEpsilon is the smallest countdown still shown (FLT_EPSILON).
const countdownEpsilon = 1.1920929e-07

// Vertical spacing of stacked menu and pause labels.
const lineSpacing = 30

// State is the phase of the game loop.
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateMainMenu
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateMainMenu:
		return "mainmenu"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Options configures a Game.
type Options struct {
	Config     config.BreakoutConfig
	Maps       fs.FS // nil selects BuiltinMaps
	StartLevel int   // first level to load; values below 1 mean 1
	Mode       Mode
	Logger     *log.Logger
}

// Game is one Breakout session. It owns every sprite it creates.
type Game struct {
	eng    engine.Engine
	cfg    config.BreakoutConfig
	logger *log.Logger
	loader Loader
	mode   Mode

	state     State
	level     int
	countdown float64
	frames    uint64
	ballLost  bool
	closed    bool

	stats      Stats
	difficulty *config.DifficultyManager

	walls  *Walls
	paddle *Paddle
	ball   *Ball
	bricks *BrickGrid
}

// New builds the playfield on eng and loads the first map.
func New(eng engine.Engine, opts Options) (*Game, error) {
	if opts.Mode != ModeSingle {
		return nil, fmt.Errorf("%w: %s", ErrModeUnsupported, opts.Mode)
	}
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	start := opts.StartLevel
	if start < 1 {
		start = 1
	}

	g := &Game{
		eng:        eng,
		cfg:        cfg,
		logger:     logger,
		mode:       opts.Mode,
		state:      StatePlaying,
		level:      start - 1,
		stats:      NewStats(),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}

	g.walls = NewWalls(eng, cfg)
	px, py := g.paddleStart()
	g.paddle = NewPaddle(eng, cfg.Paddle.Asset, px, py, cfg.Paddle.Width, cfg.Paddle.Height)
	bx, by := g.ballStart()
	g.ball = NewBall(eng, cfg.Ball.Asset, bx, by, cfg.Ball.Radius)
	g.bricks = NewBrickGrid(eng, cfg.Bricks)
	g.loader = NewLoader(cfg, opts.Maps, logger)

	if err := g.LoadMap(); err != nil {
		g.Close()
		return nil, err
	}
	return g, nil
}

func (g *Game) paddleStart() (float64, float64) {
	return (float64(g.cfg.Screen.Width)-g.cfg.Paddle.Width)/2 - 5,
		float64(g.cfg.Screen.Height) - g.cfg.Paddle.Height
}

// ballStart centres the ball just above the paddle.
func (g *Game) ballStart() (float64, float64) {
	r := g.cfg.Ball.Radius
	return g.paddle.X() + g.cfg.Paddle.Width/2 - r, g.paddle.Y() - 2*r
}

// LoadMap advances to the next level and rebuilds the brick grid from its
// map. When the next map does not exist play wraps to level 1.
func (g *Game) LoadMap() error {
	md, level, err := g.loader.Load(g.level + 1)
	if err != nil {
		return err
	}
	g.bricks.Clear()
	for _, p := range md.Placements {
		g.bricks.Place(p.Row, p.Col, p.Strength)
	}
	g.level = level
	g.countdown = g.cfg.Countdown
	g.logger.Info("map loaded", "level", level, "file", md.Name,
		"bricks", g.bricks.Remaining(), "skipped", len(md.Skipped))
	return nil
}

// Frame runs one iteration of the game loop.
func (g *Game) Frame() error {
	if g.closed {
		return ErrClosed
	}
	g.frames++
	switch g.state {
	case StatePlaying:
		return g.framePlaying()
	case StatePaused:
		g.framePaused()
	case StateMainMenu:
		g.frameMainMenu()
	case StateGameOver:
		// nothing is drawn and no input is read
	}
	return nil
}

func (g *Game) framePlaying() error {
	dt := g.eng.Timer()
	g.stats.AddTime(dt)
	g.eng.DrawScene()

	if g.countdown > countdownEpsilon {
		g.drawCentred(strconv.Itoa(int(g.countdown+0.5)), 0, engine.FontNormal)
		g.countdown -= dt
		return nil
	}

	rate := g.difficulty.Rate(g.cfg.GameRate, g.stats.Score, g.stats.Time)
	g.ball.Move(dt, g.cfg.Ball.Speed, rate)

	g.collidePaddle()
	g.collideBricks()
	g.collideWalls()

	if g.eng.KeyHit(core.ActionClose) {
		g.state = StatePaused
	}
	g.movePaddle(dt, rate)

	if g.bricks.Remaining() == 0 {
		return g.nextLevel()
	}
	return nil
}

func (g *Game) collidePaddle() {
	b := g.paddle.Box()
	r := g.ball.Radius
	if !BoxOverlap(g.ball.X(), g.ball.Y(), r, b) {
		return
	}
	g.ball.StepBack()
	switch Classify(g.ball.X(), g.ball.Y(), r, b) {
	case HitFace:
		g.ball.Bounce(AxisY)
	case HitSide:
		// lift the ball clear of the paddle's end instead of bouncing
		for SideContact(g.ball.X(), g.ball.Y(), r, b) {
			g.ball.PushUp(-1)
		}
		g.ball.PushUp(-8)
	case HitCorner:
		g.ball.Bounce(AxisY)
		g.ball.Bounce(AxisX)
	}
}

// collideBricks tests every standing brick in row-major order. Each overlap
// is resolved on its own, so one frame may bounce off several bricks.
func (g *Game) collideBricks() {
	r := g.ball.Radius
	for row := range g.bricks.Rows() {
		for col := range g.bricks.Cols() {
			if g.bricks.Strength(row, col) == 0 {
				continue
			}
			b := g.bricks.Box(row, col)
			if !BoxOverlap(g.ball.X(), g.ball.Y(), r, b) {
				continue
			}
			g.ball.StepBack()
			switch Classify(g.ball.X(), g.ball.Y(), r, b) {
			case HitFace:
				g.ball.Bounce(AxisY)
			case HitSide:
				g.ball.Bounce(AxisX)
			case HitCorner:
				g.ball.Bounce(AxisY)
				g.ball.Bounce(AxisX)
			}
			left := g.bricks.Hit(row, col)
			g.stats.AddScore(g.cfg.Bricks.Points)
			g.logger.Debug("brick hit", "row", row, "col", col, "left", left)
		}
	}
}

func (g *Game) collideWalls() {
	r := g.ball.Radius
	for _, wall := range []struct {
		dir  Direction
		line float64
	}{
		{East, g.walls.East},
		{West, g.walls.West},
		{North, g.walls.North},
	} {
		if WallCrossed(g.ball.X(), g.ball.Y(), r, wall.line, wall.dir) {
			g.ball.StepBack()
			g.ball.Bounce(g.walls.BounceAxis(wall.dir))
		}
	}

	if !g.ballLost && WallCrossed(g.ball.X(), g.ball.Y(), r, g.walls.South, South) {
		g.ballLost = true
		g.logger.Info("ball left the playfield", "level", g.level, "score", g.stats.Score)
	}
}

func (g *Game) movePaddle(dt, rate float64) {
	var dir float64
	switch {
	case g.eng.KeyHeld(core.ActionLeft):
		dir = -1
	case g.eng.KeyHeld(core.ActionRight):
		dir = 1
	default:
		return
	}
	travel := dir * g.cfg.Paddle.Speed * dt * rate
	if g.eng.KeyHeld(core.ActionBoost) {
		travel *= g.cfg.Paddle.Boost
	}
	g.paddle.MoveX(travel)

	if g.cfg.Paddle.Clamp {
		x := core.ClampF(g.paddle.X(), g.walls.East, g.walls.West-g.paddle.W)
		g.paddle.SetPosition(x, g.paddle.Y())
	}
}

// nextLevel loads the following map and serves again from the start
// position.
func (g *Game) nextLevel() error {
	g.logger.Info("level cleared", "level", g.level, "score", g.stats.Score)
	if err := g.LoadMap(); err != nil {
		return err
	}
	g.paddle.SetPosition(g.paddleStart())
	g.ball.Respawn(g.ballStart())
	g.ballLost = false
	return nil
}

func (g *Game) framePaused() {
	// Discard the time spent paused so play resumes without a jump.
	g.eng.Timer()
	g.eng.DrawScene()
	g.drawCentred("Paused", 0, engine.FontNormal)
	g.drawCentred("Press Enter to continue", lineSpacing, engine.FontNormal)
	g.drawCentred("Press Escape to quit", 2*lineSpacing, engine.FontNormal)

	if g.eng.KeyHit(core.ActionClose) {
		g.logger.Info("quit from pause", "score", g.stats.Score, "time", g.stats.Time)
		g.eng.Stop()
	}
	if g.eng.KeyHit(core.ActionContinue) {
		g.state = StatePlaying
	}
}

func (g *Game) frameMainMenu() {
	g.eng.DrawScene()
	w, h := float64(g.cfg.Screen.Width), float64(g.cfg.Screen.Height)
	g.eng.DrawText(engine.Text{Content: "Breakout", X: w / 2, Y: h / 3, Color: core.ColorRed,
		Font: engine.FontTitle, H: engine.AlignCentre, V: engine.AlignMiddle})
	g.drawCentred("New Game", 0, engine.FontNormal)
	g.drawCentred("Quit", lineSpacing, engine.FontNormal)
}

// drawCentred queues red text centred on the screen, dy pixels below the middle.
func (g *Game) drawCentred(s string, dy float64, font engine.Font) {
	g.eng.DrawText(engine.Text{
		Content: s,
		X:       float64(g.cfg.Screen.Width) / 2,
		Y:       float64(g.cfg.Screen.Height)/2 + dy,
		Color:   core.ColorRed,
		Font:    font,
		H:       engine.AlignCentre,
		V:       engine.AlignMiddle,
	})
}

// State returns the current phase.
func (g *Game) State() State { return g.state }

// SetState forces the state machine into s.
func (g *Game) SetState(s State) { g.state = s }

// Level returns the level being played.
func (g *Game) Level() int { return g.level }

// Countdown returns the seconds left before play starts.
func (g *Game) Countdown() float64 { return g.countdown }

// Stats returns the session statistics.
func (g *Game) Stats() Stats { return g.stats }

// Mode returns the session's mode.
func (g *Game) Mode() Mode { return g.mode }

// BallLost reports whether the ball has passed the bottom of the screen.
// The game keeps running; there is no life-loss handling.
func (g *Game) BallLost() bool { return g.ballLost }

// Ball returns the ball.
func (g *Game) Ball() *Ball { return g.ball }

// Paddle returns the paddle.
func (g *Game) Paddle() *Paddle { return g.paddle }

// Bricks returns the brick grid.
func (g *Game) Bricks() *BrickGrid { return g.bricks }

// Walls returns the frame.
func (g *Game) Walls() *Walls { return g.walls }

// Close releases every sprite the game created. A closed game keeps its
// last snapshot but Frame returns ErrClosed.
func (g *Game) Close() {
	g.closed = true
	if g.bricks != nil {
		g.bricks.Clear()
	}
	if g.ball != nil {
		g.ball.Release()
	}
	if g.paddle != nil {
		g.paddle.Release()
	}
	if g.walls != nil {
		g.walls.Release()
	}
}
