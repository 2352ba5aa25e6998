package breakout

import "math"

// Snapshot is a flat copy of the session state, used to compare runs.
type Snapshot struct {
	Frame     uint64
	State     State
	Level     int
	Countdown float64
	BallLost  bool

	BallX, BallY   float64
	BallVX, BallVY float64
	PaddleX        float64
	PaddleY        float64

	Score int
	Time  float64
	Lives int

	// Strengths row-major, one int per cell
	Bricks []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]int, 0, g.bricks.Rows()*g.bricks.Cols())
	for row := range g.bricks.Rows() {
		for col := range g.bricks.Cols() {
			bricks = append(bricks, g.bricks.Strength(row, col))
		}
	}

	return Snapshot{
		Frame:     g.frames,
		State:     g.state,
		Level:     g.level,
		Countdown: g.countdown,
		BallLost:  g.ballLost,
		BallX:     g.ball.X(),
		BallY:     g.ball.Y(),
		BallVX:    g.ball.VX,
		BallVY:    g.ball.VY,
		PaddleX:   g.paddle.X(),
		PaddleY:   g.paddle.Y(),
		Score:     g.stats.Score,
		Time:      g.stats.Time,
		Lives:     g.stats.Lives,
		Bricks:    bricks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.State) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	if snap.BallLost {
		h = h*31 + 1
	}
	for _, f := range []float64{
		snap.Countdown,
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY,
		snap.PaddleX, snap.PaddleY,
		snap.Time,
	} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation

	for _, v := range snap.Bricks {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
