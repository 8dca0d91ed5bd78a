// Package drift implements a top-down steering game on the shared
// simulation engine: a car with heading-based physics, solid barriers to
// slide along, and boost gates that reward clean lines.
package drift

import (
	"github.com/dkarpov/arcadium/internal/config"
	"github.com/dkarpov/arcadium/internal/core"
	"github.com/dkarpov/arcadium/internal/engine"
	"github.com/dkarpov/arcadium/internal/registry"
)

// EffectBoost is the timed top-speed raise granted by a gate.
const EffectBoost engine.Effect = "boost"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// Game implements the Drift game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.DriftConfig
	difficulty *config.DifficultyManager

	eng *engine.Engine
	car engine.ID

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Drift game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "drift" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Drift" }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDrift(configPath)
	if err != nil {
		cfg = config.DefaultDriftConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.minScreenW = 30
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	w := float64(runtime.ScreenW)
	h := float64(runtime.ScreenH)
	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	dt := 1.0 / float64(tickRate)

	ecfg := engine.Config{
		Width: w, Height: h, DT: dt, Seed: runtime.Seed,
		Kinds: map[engine.Kind]engine.KindParams{
			engine.KindPlayer: {
				Shape:       engine.CircleShape(1),
				InputDriven: true,
				Steering:    true,
				Accel:       cfg.Physics.Accel,
				MaxSpeed:    cfg.Physics.MaxSpeed,
				Drag:        cfg.Physics.Drag,
				TurnRate:    cfg.Physics.TurnRate,
				Edges:       engine.AllEdges(engine.BoundaryWrap),
			},
			engine.KindObstacle: {
				Shape: engine.RectShape(4, 2),
			},
			engine.KindCollectible: {
				Shape:    engine.CircleShape(1.5),
				Lifetime: cfg.Track.GateLife,
			},
		},
		Pairs: []engine.PairRule{
			{
				A: engine.KindPlayer, B: engine.KindObstacle,
				Resolve: engine.ResolveBlock,
			},
			{
				A: engine.KindPlayer, B: engine.KindCollectible,
				Resolve: engine.ResolveAbsorb, Destroy: engine.TargetB,
				Effect: EffectBoost, EffectTicks: cfg.Gameplay.BoostTicks,
				Scored: true, Points: cfg.Gameplay.GatePoints,
			},
		},
		Scoring: engine.Scoring{Base: cfg.Gameplay.GatePoints, Cap: cfg.Gameplay.StreakCap},
		Spawns:  gateRules(cfg, w, h),
		Rules: engine.Rules{
			Win: func(e *engine.Engine) bool {
				return cfg.Gameplay.TimeLimit > 0 &&
					e.Session().Ticks >= uint64(cfg.Gameplay.TimeLimit)
			},
		},
		OnWave: func(e *engine.Engine, level int) {
			g.placeBarriers(e)
		},
		OnEffectExpire: func(eff engine.Effect, owner engine.ID) {
			if eff == EffectBoost {
				g.setBoost(false)
			}
		},
	}

	g.eng = engine.New(ecfg)

	car := g.eng.SpawnAt(engine.KindPlayer, core.Vec(w/2, h-4))
	g.car = car.ID

	g.eng.Start()
}

// gateRules builds staggered spawn streams so gates appear across three
// bands of the track.
func gateRules(cfg config.DriftConfig, w, h float64) []engine.SpawnRule {
	rows := []float64{h * 0.25, h * 0.5, h * 0.75}
	rules := make([]engine.SpawnRule, 0, len(rows))
	for i, y := range rows {
		rules = append(rules, engine.SpawnRule{
			Kind:          engine.KindCollectible,
			Every:         cfg.Track.GateEvery,
			InitialDelay:  cfg.Track.GateEvery * (i + 1) / len(rows),
			Band:          [2]float64{4, w - 4},
			Y:             y,
			RateScale:     cfg.Difficulty.Scaling.RateScale,
			MinSeparation: cfg.Track.MinSeparation,
			MaxAttempts:   5,
			MaxLive:       2,
		})
	}
	return rules
}

// placeBarriers scatters solid barriers across the track, keeping a clear
// margin around the car's start position.
func (g *Game) placeBarriers(e *engine.Engine) {
	w := float64(g.runtime.ScreenW)
	h := float64(g.runtime.ScreenH)
	rng := e.Rand()

	// Bounded rejection sampling: small screens may not fit every barrier.
	var placed []core.Vec2
	for attempts := 0; len(placed) < g.cfg.Track.Barriers && attempts < g.cfg.Track.Barriers*20; attempts++ {
		pos := core.Vec(4+rng.Float64()*(w-8), 3+rng.Float64()*(h-9))

		ok := pos.Sub(core.Vec(w/2, h-4)).Len() >= g.cfg.Track.MinSeparation
		for _, p := range placed {
			if pos.Sub(p).Len() < g.cfg.Track.MinSeparation {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		e.SpawnAt(engine.KindObstacle, pos)
		placed = append(placed, pos)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	s := g.eng.Session()

	if in.WasPressed(core.ActionRestart) && s.State == engine.StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	g.eng.SetDifficulty(g.difficulty.Level(s.Score, int(s.Ticks)))
	g.eng.Tick(in)

	for _, ev := range g.eng.Events() {
		if ev.Kind == engine.EventPickup && ev.Effect == EffectBoost {
			g.setBoost(true)
		}
	}

	// Survival trickle: a point for every interval stayed alive.
	s = g.eng.Session()
	if s.State == engine.StatePlaying && g.cfg.Gameplay.SurvivalEvery > 0 &&
		s.Ticks > 0 && s.Ticks%uint64(g.cfg.Gameplay.SurvivalEvery) == 0 {
		g.eng.AddScore(1)
	}

	return core.StepResult{State: g.State()}
}

// setBoost raises or restores the car's top speed.
func (g *Game) setBoost(on bool) {
	p := g.eng.Kind(engine.KindPlayer)
	if on {
		p.MaxSpeed = g.cfg.Physics.MaxSpeed * g.cfg.Physics.BoostScale
	} else {
		p.MaxSpeed = g.cfg.Physics.MaxSpeed
	}
	g.eng.SetKind(engine.KindPlayer, p)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.eng.Session()
	return core.GameState{
		Score:    s.Score,
		GameOver: s.State == engine.StateGameOver,
		Paused:   s.State == engine.StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("drift", func() registry.Game {
		return New()
	})
}
