package engine

// Scoring holds the streak-bonus constants of a game variant. Points accrue
// into the session; consecutive scoring hits build a streak whose bonus is
// monotone and saturating: bonus = min(streak, Cap).
type Scoring struct {
	Base int // default base points when a pair rule carries none
	Cap  int // streak bonus saturation
}

// addScore adds plain points with no streak interaction.
func (e *Engine) addScore(points int) {
	e.session.Score += points
	if e.session.Score < 0 {
		e.session.Score = 0
	}
}

// scoreHit records a scoring event: the streak increments first, then the
// award is base + min(streak, cap). Returns the points awarded.
func (e *Engine) scoreHit(base int) int {
	if base == 0 {
		base = e.cfg.Scoring.Base
	}
	e.session.Streak++
	bonus := e.session.Streak
	if bonus > e.cfg.Scoring.Cap {
		bonus = e.cfg.Scoring.Cap
	}
	pts := base + bonus
	e.session.Score += pts
	return pts
}

// scoreMiss resets the streak. Any non-scoring terminal collision counts
// as a miss.
func (e *Engine) scoreMiss() {
	e.session.Streak = 0
}

// AddScore adds plain points from the game layer (survival ticks, wave
// clear bonuses).
func (e *Engine) AddScore(points int) {
	e.addScore(points)
}

// ScoreHit records a scoring event from the game layer and returns the
// awarded points.
func (e *Engine) ScoreHit(base int) int {
	return e.scoreHit(base)
}

// ScoreMiss resets the streak from the game layer.
func (e *Engine) ScoreMiss() {
	e.scoreMiss()
}
