// Package bricks implements a brick-breaking game on the shared simulation
// engine: a paddle, a bouncing ball, a brick wall rebuilt each wave, and
// timed power-up drops.
package bricks

import (
	"github.com/dkarpov/arcadium/internal/config"
	"github.com/dkarpov/arcadium/internal/core"
	"github.com/dkarpov/arcadium/internal/engine"
	"github.com/dkarpov/arcadium/internal/registry"
)

// Power-up types carried in the pickup entity's Tag.
const (
	PowerWide = iota + 1
	PowerSlow
	PowerLife
)

const slowFactor = 0.6

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

// Game implements the Bricks game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.BricksConfig
	difficulty *config.DifficultyManager

	eng    *engine.Engine
	paddle engine.ID
	ball   engine.ID

	serving     bool
	launchSpeed float64

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Bricks game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "bricks" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Bricks" }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBricks(configPath)
	if err != nil {
		cfg = config.DefaultBricksConfig()
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

	// Pickups fall off the bottom; reap them shortly after.
	pickupLife := int(h/(cfg.PowerUps.FallSpeed*dt)) + tickRate

	ecfg := engine.Config{
		Width: w, Height: h, DT: dt, Seed: runtime.Seed,
		Kinds: map[engine.Kind]engine.KindParams{
			engine.KindPlayer: {
				Shape:       engine.RectShape(cfg.Paddle.Width, cfg.Paddle.Height),
				InputDriven: true,
				Accel:       cfg.Physics.PaddleAccel,
				MaxSpeed:    cfg.Physics.PaddleSpeed,
				Drag:        cfg.Physics.PaddleDrag,
				Edges: [4]engine.BoundaryPolicy{
					engine.EdgeLeft:  engine.BoundaryClamp,
					engine.EdgeRight: engine.BoundaryClamp,
				},
			},
			engine.KindProjectile: {
				Shape:       engine.CircleShape(0.5),
				MaxSpeed:    cfg.Physics.MaxBallSpeed,
				Restitution: 1,
				Edges: [4]engine.BoundaryPolicy{
					engine.EdgeLeft:  engine.BoundaryReflect,
					engine.EdgeRight: engine.BoundaryReflect,
					engine.EdgeTop:   engine.BoundaryReflect,
				},
			},
			engine.KindObstacle: {
				Shape: engine.RectShape(cfg.Layout.BrickW, cfg.Layout.BrickH),
			},
			engine.KindCollectible: {
				Shape:    engine.CircleShape(0.5),
				Lifetime: pickupLife,
			},
		},
		Pairs: []engine.PairRule{
			{
				A: engine.KindProjectile, B: engine.KindObstacle,
				Resolve: engine.ResolveDestroyOneScore, Destroy: engine.TargetB,
				Scored: true, Restitution: 1,
			},
			{
				A: engine.KindProjectile, B: engine.KindPlayer,
				Resolve: engine.ResolveBounce, Restitution: 1,
			},
			{
				A: engine.KindCollectible, B: engine.KindPlayer,
				Resolve: engine.ResolveDestroyOneScore, Destroy: engine.TargetA,
			},
		},
		Scoring: engine.Scoring{Base: cfg.Gameplay.BrickPoints, Cap: cfg.Gameplay.StreakCap},
		Rules: engine.Rules{
			Lives: cfg.Gameplay.Lives,
			Loss: func(e *engine.Engine) bool {
				return e.Session().Lives <= 0
			},
			Win: func(e *engine.Engine) bool {
				return e.Store().CountKind(engine.KindObstacle) == 0
			},
			AdvanceOnWin: true,
			WaveDelay:    cfg.Gameplay.WaveDelayTicks,
			EndBonus: func(s engine.Session) int {
				if s.Lives <= 0 {
					return 0
				}
				return s.Lives * cfg.Gameplay.LifeBonus
			},
		},
		OnWave: func(e *engine.Engine, level int) {
			g.populateWave(e, level)
		},
	}

	g.eng = engine.New(ecfg)
	g.launchSpeed = cfg.Physics.BallSpeed

	paddle := g.eng.SpawnAt(engine.KindPlayer, core.Vec(w/2, h-3))
	g.paddle = paddle.ID

	g.eng.Start()
}

// populateWave rebuilds the brick wall and puts the ball back on the
// paddle. Runs at session start and after every cleared wave.
func (g *Game) populateWave(e *engine.Engine, level int) {
	lay := g.cfg.Layout
	w := float64(g.runtime.ScreenW)

	usable := w - 2*lay.SideMargin
	gapX := usable / float64(lay.Cols)

	// Later waves harden more rows from the top.
	hardRows := lay.HardRows + level - 1
	if hardRows > lay.Rows {
		hardRows = lay.Rows
	}

	for row := 0; row < lay.Rows; row++ {
		y := lay.TopOffset + float64(row)*(lay.BrickH+0.5)
		for col := 0; col < lay.Cols; col++ {
			x := lay.SideMargin + gapX*(float64(col)+0.5)
			brick := e.SpawnAt(engine.KindObstacle, core.Vec(x, y))
			brick.Tag = row
			if row < hardRows {
				brick.Hits = 2
			}
		}
	}

	// Ball speed grows with the difficulty level at launch time.
	lvl := g.difficulty.Level(e.Session().Score, int(e.Session().Ticks))
	g.launchSpeed = g.cfg.Physics.BallSpeed * (1 + lvl*g.difficulty.SpeedScale())

	g.stickBall()
}

// stickBall places a ball on the paddle and enters the serve phase.
func (g *Game) stickBall() {
	paddle := g.eng.Store().Get(g.paddle)
	if paddle == nil {
		return
	}
	ball := g.eng.Store().Get(g.ball)
	if ball == nil {
		ball = g.eng.SpawnAt(engine.KindProjectile, paddle.Pos)
		g.ball = ball.ID
	}
	ball.Pos = core.Vec(paddle.Pos.X, paddle.Pos.Y-g.cfg.Paddle.Height/2-1)
	ball.Vel = core.Vec2{}
	g.serving = true
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

	if g.serving {
		g.followPaddle()
		if in.WasPressed(core.ActionFire) {
			g.launch()
		}
	}

	g.eng.SetDifficulty(g.difficulty.Level(s.Score, int(s.Ticks)))
	g.eng.Tick(in)

	g.handleEvents()
	g.checkBallLost()

	return core.StepResult{State: g.State()}
}

// followPaddle keeps the stuck ball on top of the paddle during serve.
func (g *Game) followPaddle() {
	paddle := g.eng.Store().Get(g.paddle)
	ball := g.eng.Store().Get(g.ball)
	if paddle == nil || ball == nil {
		return
	}
	ball.Pos = core.Vec(paddle.Pos.X, paddle.Pos.Y-g.cfg.Paddle.Height/2-1)
	ball.Vel = core.Vec2{}
}

// launch releases the stuck ball upward with a slight horizontal bias.
func (g *Game) launch() {
	ball := g.eng.Store().Get(g.ball)
	if ball == nil {
		return
	}
	ball.Vel = core.Vec(g.launchSpeed/4, -g.launchSpeed)
	g.serving = false
}

// handleEvents applies game-specific reactions to this tick's engine
// events: power-up drops, pickup collection, and paddle english.
func (g *Game) handleEvents() {
	for _, ev := range g.eng.Events() {
		switch {
		case ev.Kind == engine.EventDestroyed && ev.EntityKind == engine.KindObstacle:
			g.maybeDropPickup(ev.At)

		case ev.Kind == engine.EventDestroyed && ev.EntityKind == engine.KindCollectible && ev.Other == g.paddle:
			g.applyPower(ev.Tag)

		case ev.Kind == engine.EventBounce && ev.EntityKind == engine.KindProjectile && ev.OtherKind == engine.KindPlayer:
			g.applyEnglish(ev.Entity)
		}
	}
}

// maybeDropPickup rolls the drop chance and spawns a falling power-up.
func (g *Game) maybeDropPickup(at core.Vec2) {
	rng := g.eng.Rand()
	if rng.Float64() >= g.cfg.PowerUps.DropChance {
		return
	}
	pickup := g.eng.SpawnAt(engine.KindCollectible, at)
	pickup.Tag = PowerWide + rng.Intn(3)
	pickup.Vel = core.Vec(0, g.cfg.PowerUps.FallSpeed)
}

// applyEnglish skews the reflected ball by where it struck the paddle, so
// the player can aim.
func (g *Game) applyEnglish(ballID engine.ID) {
	ball := g.eng.Store().Get(ballID)
	paddle := g.eng.Store().Get(g.paddle)
	if ball == nil || paddle == nil {
		return
	}

	speed := ball.Vel.Len()
	if speed == 0 {
		return
	}
	halfW := g.paddleHalfWidth()
	offset := core.ClampF((ball.Pos.X-paddle.Pos.X)/halfW, -1, 1)

	v := core.Vec(ball.Vel.X+offset*speed*0.6, ball.Vel.Y)
	ball.Vel = v.Normalized().Scale(speed)
}

func (g *Game) paddleHalfWidth() float64 {
	return g.eng.Kind(engine.KindPlayer).Shape.W / 2
}

// applyPower activates a collected power-up.
func (g *Game) applyPower(tag int) {
	timers := g.eng.Timers()
	d := g.cfg.PowerUps.DurationTicks

	switch tag {
	case PowerWide:
		if !timers.Active("wide", engine.GlobalOwner) {
			p := g.eng.Kind(engine.KindPlayer)
			p.Shape = engine.RectShape(g.cfg.Paddle.Width+g.cfg.Paddle.WideBonus, g.cfg.Paddle.Height)
			g.eng.SetKind(engine.KindPlayer, p)
		}
		timers.Start("wide", engine.GlobalOwner, d, func() {
			p := g.eng.Kind(engine.KindPlayer)
			p.Shape = engine.RectShape(g.cfg.Paddle.Width, g.cfg.Paddle.Height)
			g.eng.SetKind(engine.KindPlayer, p)
		})

	case PowerSlow:
		if !timers.Active("slow", engine.GlobalOwner) {
			g.scaleBall(slowFactor)
		}
		timers.Start("slow", engine.GlobalOwner, d, func() {
			g.scaleBall(1 / slowFactor)
		})

	case PowerLife:
		g.eng.AddLife()
	}
}

// scaleBall scales the live ball's velocity, respecting the speed cap.
func (g *Game) scaleBall(f float64) {
	ball := g.eng.Store().Get(g.ball)
	if ball == nil {
		return
	}
	ball.Vel = ball.Vel.Scale(f).ClampLen(g.cfg.Physics.MaxBallSpeed)
}

// checkBallLost detects the ball leaving through the bottom and spends a
// life.
func (g *Game) checkBallLost() {
	if g.serving {
		return
	}
	s := g.eng.Session()
	if s.State != engine.StatePlaying {
		return
	}

	ball := g.eng.Store().Get(g.ball)
	if ball != nil && ball.Active && ball.Pos.Y <= float64(g.runtime.ScreenH)+2 {
		return
	}
	if ball != nil {
		g.eng.Store().Deactivate(g.ball)
	}

	g.eng.LoseLife()
	if g.eng.Session().Lives > 0 {
		g.ball = 0
		g.stickBall()
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
	registry.Register("bricks", func() registry.Game {
		return New()
	})
}
