package engine

import (
	"testing"
	"time"

	"github.com/dkarpov/arcadium/internal/core"
)

func fsmConfig() Config {
	return Config{
		Width: 100, Height: 100, DT: 1, Seed: 7,
		Kinds: map[Kind]KindParams{
			KindPlayer: {Shape: CircleShape(2), Drag: 1, InputDriven: true, Accel: 1},
		},
		Rules: Rules{
			Lives: 3,
			Loss:  func(e *Engine) bool { return e.Session().Lives <= 0 },
		},
	}
}

func TestStateMachineIdleUntilStart(t *testing.T) {
	e := New(fsmConfig())
	if s := e.Session().State; s != StateIdle {
		t.Fatalf("initial state = %v, want idle", s)
	}

	// Directional input in Idle must not run the simulation.
	in := core.NewInputFrame()
	in.Hold(core.ActionRight)
	e.Tick(in)
	if e.Session().Ticks != 0 {
		t.Error("simulation advanced while idle")
	}

	in = core.NewInputFrame()
	in.Press(core.ActionConfirm)
	e.Tick(in)
	if s := e.Session().State; s != StatePlaying {
		t.Fatalf("state after confirm = %v, want playing", s)
	}
}

func TestStateMachinePauseFreezesSimulation(t *testing.T) {
	e := newRunning(fsmConfig())
	player := e.SpawnAt(KindPlayer, core.Vec(50, 50))
	player.Vel = core.Vec(1, 0)

	e.Tick(core.NewInputFrame())
	posAfterOne := player.Pos
	ticksAfterOne := e.Session().Ticks

	pause := core.NewInputFrame()
	pause.Press(core.ActionPause)
	e.Tick(pause)
	if s := e.Session().State; s != StatePaused {
		t.Fatalf("state = %v, want paused", s)
	}

	// Paused ticks mutate nothing.
	in := core.NewInputFrame()
	in.Hold(core.ActionRight)
	for i := 0; i < 5; i++ {
		e.Tick(in)
	}
	if player.Pos != posAfterOne {
		t.Error("entity moved while paused")
	}
	if e.Session().Ticks != ticksAfterOne {
		t.Error("tick counter advanced while paused")
	}

	// Resume picks up where it left off.
	e.Tick(pause)
	e.Tick(core.NewInputFrame())
	if player.Pos == posAfterOne {
		t.Error("entity did not move after resume")
	}
}

func TestStateMachineGameOverIsTerminal(t *testing.T) {
	finals := []int{}
	cfg := fsmConfig()
	cfg.Rules.EndBonus = func(s Session) int { return int(s.Ticks) }
	cfg.OnGameOver = func(final int) { finals = append(finals, final) }
	e := newRunning(cfg)
	e.AddScore(100)

	// Drain lives.
	e.session.Lives = 0
	e.Tick(core.NewInputFrame())

	if s := e.Session().State; s != StateGameOver {
		t.Fatalf("state = %v, want game over", s)
	}
	ticks := e.Session().Ticks

	// Further ticks and inputs change nothing; the callback never re-fires.
	in := core.NewInputFrame()
	in.Press(core.ActionConfirm)
	for i := 0; i < 5; i++ {
		e.Tick(in)
	}
	if e.Session().Ticks != ticks {
		t.Error("simulation advanced after game over")
	}
	if len(finals) != 1 {
		t.Fatalf("final score reported %d times, want exactly 1", len(finals))
	}
	if want := 100 + int(ticks); finals[0] != want {
		t.Errorf("final score = %d, want %d (score + end bonus)", finals[0], want)
	}
}

func TestLevelCompleteAdvancesAfterDelay(t *testing.T) {
	waves := []int{}
	cfg := fsmConfig()
	cfg.Rules.Win = func(e *Engine) bool { return e.Session().Score >= 10 }
	cfg.Rules.AdvanceOnWin = true
	cfg.Rules.WaveDelay = 3
	cfg.OnWave = func(e *Engine, level int) { waves = append(waves, level) }
	e := newRunning(cfg)

	e.AddScore(10)
	in := core.NewInputFrame()
	e.Tick(in)
	if s := e.Session().State; s != StateLevelComplete {
		t.Fatalf("state = %v, want level complete", s)
	}

	e.Tick(in)
	e.Tick(in)
	if s := e.Session().State; s != StateLevelComplete {
		t.Fatal("advanced before the wave delay elapsed")
	}
	e.Tick(in)
	if s := e.Session().State; s != StatePlaying {
		t.Fatalf("state = %v, want playing after the wave delay", s)
	}
	if e.Session().Level != 2 {
		t.Errorf("level = %d, want 2", e.Session().Level)
	}
	if len(waves) != 2 || waves[1] != 2 {
		t.Errorf("wave callbacks = %v, want [1 2]", waves)
	}
}

func TestResetIsAtomicAndIdempotent(t *testing.T) {
	e := newRunning(fsmConfig())
	e.SpawnAt(KindPlayer, core.Vec(50, 50))
	e.AddScore(42)
	e.Timers().Start("shield", GlobalOwner, 10, nil)
	e.Tick(core.NewInputFrame())

	e.Reset()
	first := e.Snapshot()

	if first.Session.State != StateIdle {
		t.Errorf("state after reset = %v, want idle", first.Session.State)
	}
	if len(first.Entities) != 0 {
		t.Errorf("entities after reset = %d, want 0", len(first.Entities))
	}
	if first.Session.Score != 0 || first.Session.Ticks != 0 {
		t.Error("session record not cleared by reset")
	}
	if e.Timers().Len() != 0 {
		t.Error("timers survived reset")
	}
	if e.Session().Lives != 3 || e.Session().Level != 1 {
		t.Errorf("session = %+v, want lives 3 level 1", e.Session())
	}

	// Reset from the reset state yields the identical snapshot.
	e.Reset()
	second := e.Snapshot()
	if first.Session != second.Session || len(second.Entities) != 0 {
		t.Error("double reset produced a different snapshot")
	}
}

func TestResetRestoresDeterminism(t *testing.T) {
	run := func(e *Engine) []core.Vec2 {
		e.Start()
		in := core.NewInputFrame()
		for i := 0; i < 30; i++ {
			e.Tick(in)
		}
		var out []core.Vec2
		e.Store().ForEach(func(ent *Entity) {
			out = append(out, ent.Pos)
		})
		return out
	}

	cfg := spawnerConfig(SpawnRule{
		Kind: KindObstacle, Every: 2, Band: [2]float64{0, 100}, Y: 0,
	})
	e := New(cfg)
	first := run(e)
	e.Reset()
	second := run(e)

	if len(first) != len(second) {
		t.Fatalf("runs spawned %d vs %d entities", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entity %d at %v vs %v across reset", i, first[i], second[i])
		}
	}
}

func TestAdvanceRunsAccumulatedTicks(t *testing.T) {
	cfg := fsmConfig()
	cfg.DT = 0.1 // 10Hz
	e := newRunning(cfg)

	base := time.Unix(0, 0)
	e.Advance(base, core.NewInputFrame())

	n := e.Advance(base.Add(350*time.Millisecond), core.NewInputFrame())
	if n != 3 {
		t.Errorf("350ms at 10Hz ran %d ticks, want 3", n)
	}
	if e.Session().Ticks != 3 {
		t.Errorf("Ticks = %d, want 3", e.Session().Ticks)
	}
}

func TestAdvanceConsumesPressEdgesOnce(t *testing.T) {
	cfg := fsmConfig()
	cfg.DT = 0.1
	e := newRunning(cfg)

	base := time.Unix(0, 0)
	e.Advance(base, core.NewInputFrame())

	// One frame affording several ticks carries a single pause press: it
	// must toggle once, not flap on every tick.
	in := core.NewInputFrame()
	in.Press(core.ActionPause)
	e.Advance(base.Add(300*time.Millisecond), in)

	if s := e.Session().State; s != StatePaused {
		t.Errorf("state = %v, want paused exactly once", s)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	e := newRunning(fsmConfig())
	player := e.SpawnAt(KindPlayer, core.Vec(50, 50))

	snap := e.Snapshot()
	if len(snap.Entities) != 1 {
		t.Fatalf("snapshot holds %d entities, want 1", len(snap.Entities))
	}

	player.Pos = core.Vec(99, 99)
	if snap.Entities[0].Pos != core.Vec(50, 50) {
		t.Error("snapshot shares storage with the live entity")
	}
}

func TestScoreStreakProgression(t *testing.T) {
	cfg := fsmConfig()
	cfg.Scoring = Scoring{Base: 10, Cap: 10}
	e := newRunning(cfg)

	want := []int{11, 12, 13, 14, 15}
	for i, w := range want {
		if got := e.ScoreHit(0); got != w {
			t.Errorf("hit %d awarded %d, want %d", i+1, got, w)
		}
	}
	if s := e.Session(); s.Score != 65 {
		t.Errorf("score = %d, want 65", s.Score)
	}

	e.ScoreMiss()
	if got := e.ScoreHit(0); got != 11 {
		t.Errorf("hit after miss awarded %d, want streak restart at 11", got)
	}
}

func TestScoreStreakSaturatesAtCap(t *testing.T) {
	cfg := fsmConfig()
	cfg.Scoring = Scoring{Base: 10, Cap: 3}
	e := newRunning(cfg)

	var last int
	for i := 0; i < 10; i++ {
		last = e.ScoreHit(0)
	}
	if last != 13 {
		t.Errorf("saturated award = %d, want 13 (base 10 + cap 3)", last)
	}
}

func TestScoreNeverNegative(t *testing.T) {
	e := newRunning(fsmConfig())
	e.AddScore(5)
	e.AddScore(-50)
	if s := e.Session(); s.Score != 0 {
		t.Errorf("score = %d, want floored at 0", s.Score)
	}
}
