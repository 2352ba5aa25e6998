package breakout

// StartingLives is the number of lives a session starts with.
const StartingLives = 3

// Stats tracks score, time played and lives.
type Stats struct {
	Score int
	Time  float64 // seconds spent in the playing state
	Lives int // shown to the player; losing the ball does not take one
}

// NewStats returns stats for a fresh session.
func NewStats() Stats {
	return Stats{Lives: StartingLives}
}

// AddTime adds dt seconds of play.
func (s *Stats) AddTime(dt float64) { s.Time += dt }

// AddScore adds points.
func (s *Stats) AddScore(points int) { s.Score += points }
