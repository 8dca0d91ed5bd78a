// Package invaders implements a lane-based shooter on the shared
// simulation engine: a ship at the baseline, a descending invader stream
// fed by the spawner, and a timed shield pickup.
package invaders

import (
	"github.com/dkarpov/arcadium/internal/config"
	"github.com/dkarpov/arcadium/internal/core"
	"github.com/dkarpov/arcadium/internal/engine"
	"github.com/dkarpov/arcadium/internal/registry"
)

// EffectShield is the timed invulnerability granted by the pickup.
const EffectShield engine.Effect = "shield"

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

// Game implements the Invaders game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.InvadersConfig
	difficulty *config.DifficultyManager

	eng  *engine.Engine
	ship engine.ID

	fireCooldown int
	baselineY    float64

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Invaders game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "invaders" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Invaders" }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
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

	g.baselineY = h - 2
	g.fireCooldown = 0

	// Lane centers spread evenly across the playfield.
	lanes := make([]float64, cfg.Spawning.Lanes)
	for i := range lanes {
		lanes[i] = w * (float64(i) + 0.5) / float64(cfg.Spawning.Lanes)
	}

	ecfg := engine.Config{
		Width: w, Height: h, DT: dt, Seed: runtime.Seed,
		Kinds: map[engine.Kind]engine.KindParams{
			engine.KindPlayer: {
				Shape:       engine.RectShape(3, 1),
				InputDriven: true,
				Accel:       cfg.Physics.ShipAccel,
				MaxSpeed:    cfg.Physics.ShipSpeed,
				Drag:        cfg.Physics.ShipDrag,
				Edges: [4]engine.BoundaryPolicy{
					engine.EdgeLeft:  engine.BoundaryClamp,
					engine.EdgeRight: engine.BoundaryClamp,
				},
			},
			engine.KindProjectile: {
				Shape:    engine.CircleShape(0.4),
				Lifetime: cfg.Gameplay.BulletLife,
			},
			engine.KindNPC: {
				Shape: engine.RectShape(3, 1).WithShrink(0.2),
			},
			engine.KindCollectible: {
				Shape:    engine.CircleShape(0.5),
				Lifetime: int(h/(8*dt)) + tickRate,
			},
			engine.KindParticle: {
				Shape:    engine.CircleShape(0.2),
				Lifetime: 15,
			},
		},
		Pairs: []engine.PairRule{
			{
				A: engine.KindProjectile, B: engine.KindNPC,
				Resolve: engine.ResolveDestroyBoth,
				Scored:  true, Burst: true,
			},
			{
				A: engine.KindNPC, B: engine.KindPlayer,
				Resolve: engine.ResolveDestroyOneScore, Destroy: engine.TargetA,
			},
			{
				A: engine.KindCollectible, B: engine.KindPlayer,
				Resolve: engine.ResolveAbsorb, Destroy: engine.TargetA,
				Effect: EffectShield, EffectTicks: cfg.Gameplay.ShieldTicks,
			},
		},
		Scoring: engine.Scoring{Base: cfg.Gameplay.InvaderPoints, Cap: cfg.Gameplay.StreakCap},
		Spawns: []engine.SpawnRule{
			{
				Kind:          engine.KindNPC,
				Every:         cfg.Spawning.EveryTicks,
				InitialDelay:  cfg.Spawning.InitialDelay,
				Lanes:         lanes,
				Y:             1,
				Vel:           core.Vec(0, cfg.Physics.InvaderSpeed),
				RateScale:     cfg.Difficulty.Scaling.RateScale,
				SpeedScale:    cfg.Difficulty.Scaling.SpeedScale,
				MinSeparation: cfg.Spawning.MinSeparation,
				MaxAttempts:   cfg.Spawning.MaxAttempts,
				MaxLive:       cfg.Spawning.MaxLive,
			},
			{
				Kind:         engine.KindCollectible,
				Every:        tickRate * 15,
				InitialDelay: tickRate * 20,
				Band:         [2]float64{4, w - 4},
				Y:            1,
				Vel:          core.Vec(0, 8),
				MaxLive:      1,
			},
		},
		Rules: engine.Rules{
			Lives: cfg.Gameplay.Lives,
			Loss: func(e *engine.Engine) bool {
				return e.Session().Lives <= 0
			},
			Win: func(e *engine.Engine) bool {
				return cfg.Gameplay.WaveScore > 0 &&
					e.Session().Score >= e.Session().Level*cfg.Gameplay.WaveScore
			},
			AdvanceOnWin: true,
			WaveDelay:    tickRate,
		},
	}

	g.eng = engine.New(ecfg)

	ship := g.eng.SpawnAt(engine.KindPlayer, core.Vec(w/2, g.baselineY))
	g.ship = ship.ID

	g.eng.Start()
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

	if s.State == engine.StatePlaying {
		g.handleFire(in)
	}

	g.eng.SetDifficulty(g.difficulty.Level(s.Score, int(s.Ticks)))
	g.eng.Tick(in)

	g.handleEvents()
	g.checkBaseline()

	return core.StepResult{State: g.State()}
}

// handleFire spawns a bullet from the ship, rate-limited by the cooldown.
func (g *Game) handleFire(in core.InputFrame) {
	if g.fireCooldown > 0 {
		g.fireCooldown--
	}
	if !in.IsHeld(core.ActionFire) || g.fireCooldown > 0 {
		return
	}
	ship := g.eng.Store().Get(g.ship)
	if ship == nil || !ship.Active {
		return
	}

	bullet := g.eng.SpawnAt(engine.KindProjectile, core.Vec(ship.Pos.X, ship.Pos.Y-1))
	bullet.Vel = core.Vec(0, -g.cfg.Physics.BulletSpeed)
	g.fireCooldown = g.cfg.Gameplay.FireCooldown
}

// handleEvents reacts to this tick's engine events: ship hits and kill
// bursts.
func (g *Game) handleEvents() {
	for _, ev := range g.eng.Events() {
		switch {
		case ev.Kind == engine.EventDestroyed && ev.EntityKind == engine.KindNPC && ev.Other == g.ship:
			// A rammed ship costs a life unless the shield is running.
			if !g.eng.Timers().Active(EffectShield, g.ship) {
				g.eng.LoseLife()
			}

		case ev.Kind == engine.EventBurst:
			g.spawnBurst(ev.At)
		}
	}
}

// spawnBurst scatters short-lived particles at a destroyed invader.
func (g *Game) spawnBurst(at core.Vec2) {
	rng := g.eng.Rand()
	for i := 0; i < 4; i++ {
		p := g.eng.SpawnAt(engine.KindParticle, at)
		p.Vel = core.Vec(rng.Float64()*20-10, rng.Float64()*10-5)
	}
}

// checkBaseline reaps invaders that slipped past the ship, each costing a
// life.
func (g *Game) checkBaseline() {
	if g.eng.Session().State != engine.StatePlaying {
		return
	}
	breached := []engine.ID{}
	g.eng.Store().ForEachKind(engine.KindNPC, func(ent *engine.Entity) {
		if ent.Pos.Y >= g.baselineY+1 {
			breached = append(breached, ent.ID)
		}
	})
	for _, id := range breached {
		g.eng.Store().Deactivate(id)
		g.eng.LoseLife()
	}
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
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}
