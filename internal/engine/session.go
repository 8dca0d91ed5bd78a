package engine

// State is the session state, re-evaluated once per tick.
//
// Idle → Playing ⇄ Paused → {LevelComplete → Playing, GameOver}.
// GameOver is terminal: store and timer updates stop and only a reset
// transition is accepted.
type State uint8

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
	StateLevelComplete
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateLevelComplete:
		return "level_complete"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session is the authoritative per-session record: score, lives, wave,
// streak, elapsed ticks, and state. It is mutated exclusively by the
// engine's state machine and scoring paths.
type Session struct {
	Score  int
	Lives  int
	Level  int
	Streak int
	Ticks  uint64
	State  State
}

// evalState runs the session predicates once per tick and applies the
// resulting transition. Loss wins over win when both fire in the same
// tick, matching the fixed rule ordering used for collisions.
func (e *Engine) evalState() {
	if e.session.State != StatePlaying {
		return
	}

	if e.cfg.Rules.Loss != nil && e.cfg.Rules.Loss(e) {
		e.gameOver()
		return
	}

	if e.cfg.Rules.Win != nil && e.cfg.Rules.Win(e) {
		if e.cfg.Rules.AdvanceOnWin {
			e.session.State = StateLevelComplete
			e.waveTimer = e.cfg.Rules.WaveDelay
			return
		}
		e.gameOver()
	}
}

// gameOver enters the terminal state and reports the final score (with end
// bonuses) through the host callback exactly once.
func (e *Engine) gameOver() {
	e.session.State = StateGameOver

	if e.reported {
		return
	}
	e.reported = true

	final := e.session.Score
	if e.cfg.Rules.EndBonus != nil {
		final += e.cfg.Rules.EndBonus(e.session)
	}
	e.session.Score = final
	if e.cfg.OnGameOver != nil {
		e.cfg.OnGameOver(final)
	}
}

// loseLife decrements lives and resets the scoring streak. The loss
// predicate, not this path, decides whether the session ends.
func (e *Engine) loseLife() {
	e.session.Lives--
	e.scoreMiss()
}

// LoseLife records a life loss from the game layer (ball past the paddle,
// invader past the baseline).
func (e *Engine) LoseLife() {
	e.loseLife()
}

// AddLife grants an extra life from the game layer (1-up pickups).
func (e *Engine) AddLife() {
	e.session.Lives++
}
