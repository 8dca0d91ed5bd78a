package engine

import (
	"testing"

	"github.com/dkarpov/arcadium/internal/core"
)

func spawnerConfig(rules ...SpawnRule) Config {
	return Config{
		Width: 100, Height: 100, DT: 1, Seed: 42,
		Kinds: map[Kind]KindParams{
			KindObstacle: {Shape: CircleShape(2), Drag: 1},
		},
		Spawns: rules,
	}
}

func TestSpawnerInterval(t *testing.T) {
	e := newRunning(spawnerConfig(
		SpawnRule{Kind: KindObstacle, Every: 5, Lanes: []float64{50}, Y: 0},
	))

	in := core.NewInputFrame()
	for i := 0; i < 4; i++ {
		e.Tick(in)
	}
	if n := e.Store().CountKind(KindObstacle); n != 0 {
		t.Fatalf("spawned %d entities before the interval elapsed", n)
	}

	e.Tick(in)
	if n := e.Store().CountKind(KindObstacle); n != 1 {
		t.Errorf("spawned %d entities at the interval, want 1", n)
	}

	for i := 0; i < 5; i++ {
		e.Tick(in)
	}
	if n := e.Store().CountKind(KindObstacle); n != 2 {
		t.Errorf("spawned %d entities after two intervals, want 2", n)
	}
}

func TestSpawnerInitialDelay(t *testing.T) {
	e := newRunning(spawnerConfig(
		SpawnRule{Kind: KindObstacle, Every: 3, InitialDelay: 10, Lanes: []float64{50}, Y: 0},
	))

	in := core.NewInputFrame()
	for i := 0; i < 9; i++ {
		e.Tick(in)
	}
	if n := e.Store().CountKind(KindObstacle); n != 0 {
		t.Errorf("spawned %d entities during the initial delay", n)
	}
	e.Tick(in)
	if n := e.Store().CountKind(KindObstacle); n != 1 {
		t.Errorf("spawned %d entities after the initial delay, want 1", n)
	}
}

func TestSpawnerMinSeparationSkips(t *testing.T) {
	// One lane and a blocker sitting on it: every candidate is rejected
	// and the rule just skips, tick after tick.
	e := newRunning(spawnerConfig(
		SpawnRule{
			Kind: KindObstacle, Every: 1, Lanes: []float64{50}, Y: 0,
			MinSeparation: 10, MaxAttempts: 5,
		},
	))
	blocker := e.SpawnAt(KindObstacle, core.Vec(50, 0))

	in := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		e.Tick(in)
	}
	if n := e.Store().CountKind(KindObstacle); n != 1 {
		t.Errorf("live entities = %d, want only the blocker while the lane is occupied", n)
	}

	// Move the blocker away: the very next attempt succeeds.
	blocker.Pos = core.Vec(50, 90)
	e.Tick(in)
	if n := e.Store().CountKind(KindObstacle); n != 2 {
		t.Errorf("live entities = %d, want 2 after the lane cleared", n)
	}
}

func TestSpawnerSeparationCountsOtherKinds(t *testing.T) {
	// The margin holds against every live entity, not just the spawned
	// kind: a collectible rule must not drop its pickup inside an obstacle.
	e := newRunning(Config{
		Width: 100, Height: 100, DT: 1, Seed: 42,
		Kinds: map[Kind]KindParams{
			KindObstacle:    {Shape: CircleShape(2), Drag: 1},
			KindCollectible: {Shape: CircleShape(1), Drag: 1},
		},
		Spawns: []SpawnRule{
			{
				Kind: KindCollectible, Every: 1, Band: [2]float64{49, 51}, Y: 10,
				MinSeparation: 30, MaxAttempts: 5,
			},
		},
	})
	blocker := e.SpawnAt(KindObstacle, core.Vec(50, 10))

	in := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		e.Tick(in)
	}
	if n := e.Store().CountKind(KindCollectible); n != 0 {
		t.Errorf("spawned %d collectibles within the margin of a live obstacle", n)
	}

	blocker.Pos = core.Vec(50, 90)
	e.Tick(in)
	if n := e.Store().CountKind(KindCollectible); n != 1 {
		t.Errorf("live collectibles = %d, want 1 after the obstacle moved away", n)
	}
}

func TestSpawnerBandRespectsSeparation(t *testing.T) {
	e := newRunning(spawnerConfig(
		SpawnRule{
			Kind: KindObstacle, Every: 1, Band: [2]float64{0, 100}, Y: 0,
			MinSeparation: 8, MaxAttempts: 10,
		},
	))

	in := core.NewInputFrame()
	for i := 0; i < 30; i++ {
		e.Tick(in)
	}

	var placed []core.Vec2
	e.Store().ForEachKind(KindObstacle, func(ent *Entity) {
		placed = append(placed, ent.Pos)
	})
	for i := range placed {
		for j := i + 1; j < len(placed); j++ {
			if d := placed[i].Sub(placed[j]).Len(); d < 8 {
				t.Fatalf("entities %d and %d placed %v apart, want >= 8", i, j, d)
			}
		}
	}
}

func TestSpawnerMaxLive(t *testing.T) {
	e := newRunning(spawnerConfig(
		SpawnRule{Kind: KindObstacle, Every: 1, Band: [2]float64{0, 100}, Y: 0, MaxLive: 3},
	))

	in := core.NewInputFrame()
	for i := 0; i < 20; i++ {
		e.Tick(in)
	}
	if n := e.Store().CountKind(KindObstacle); n != 3 {
		t.Errorf("live entities = %d, want capped at 3", n)
	}
}

func TestSpawnerDifficultyScaling(t *testing.T) {
	rule := SpawnRule{
		Kind: KindObstacle, Every: 10, Lanes: []float64{50}, Y: 0,
		Vel: core.Vec(0, 2), RateScale: 0.5, SpeedScale: 1,
	}

	// Difficulty 0: base interval and base speed.
	slow := newRunning(spawnerConfig(rule))
	in := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		slow.Tick(in)
	}
	if n := slow.Store().CountKind(KindObstacle); n != 1 {
		t.Fatalf("difficulty 0 spawned %d in 10 ticks, want 1", n)
	}

	// Difficulty 1: interval halves, spawn velocity doubles.
	fast := newRunning(spawnerConfig(rule))
	fast.SetDifficulty(1)
	for i := 0; i < 16; i++ {
		fast.Tick(in)
	}
	if n := fast.Store().CountKind(KindObstacle); n != 2 {
		t.Errorf("difficulty 1 spawned %d in 16 ticks, want 2", n)
	}

	var speed float64
	fast.Store().ForEachKind(KindObstacle, func(ent *Entity) {
		speed = ent.Vel.Len()
	})
	if !almostEqual(speed, 4) {
		t.Errorf("spawn speed = %v at difficulty 1, want doubled to 4", speed)
	}
}

func TestSpawnerDeterministicUnderSeed(t *testing.T) {
	rule := SpawnRule{
		Kind: KindObstacle, Every: 2, Band: [2]float64{0, 100}, Y: 0,
		MinSeparation: 5, MaxAttempts: 5,
	}

	run := func() []core.Vec2 {
		e := newRunning(spawnerConfig(rule))
		in := core.NewInputFrame()
		for i := 0; i < 40; i++ {
			e.Tick(in)
		}
		var out []core.Vec2
		e.Store().ForEachKind(KindObstacle, func(ent *Entity) {
			out = append(out, ent.Pos)
		})
		return out
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("runs spawned %d vs %d entities under the same seed", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("spawn %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
