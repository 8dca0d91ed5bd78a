// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// BricksConfig contains all configuration for the Bricks game.
type BricksConfig struct {
	Physics    BricksPhysics    `yaml:"physics"`
	Paddle     BricksPaddle     `yaml:"paddle"`
	Layout     BricksLayout     `yaml:"layout"`
	PowerUps   BricksPowerUps   `yaml:"powerups"`
	Gameplay   BricksGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BricksPhysics defines ball and paddle kinematics for Bricks.
type BricksPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed"`
	PaddleAccel  float64 `yaml:"paddle_accel"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	PaddleDrag   float64 `yaml:"paddle_drag"`
}

// BricksPaddle defines paddle dimensions for Bricks.
type BricksPaddle struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	WideBonus float64 `yaml:"wide_bonus"` // extra width while the wide power-up runs
}

// BricksLayout defines the brick wall for Bricks.
type BricksLayout struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	TopOffset  float64 `yaml:"top_offset"`
	SideMargin float64 `yaml:"side_margin"`
	BrickW     float64 `yaml:"brick_width"`
	BrickH     float64 `yaml:"brick_height"`
	HardRows   int     `yaml:"hard_rows"` // topmost rows that take two hits
}

// BricksPowerUps defines power-up drops for Bricks.
type BricksPowerUps struct {
	DropChance    float64 `yaml:"drop_chance"`
	FallSpeed     float64 `yaml:"fall_speed"`
	DurationTicks int     `yaml:"duration_ticks"`
}

// BricksGameplay defines scoring and session rules for Bricks.
type BricksGameplay struct {
	Lives          int `yaml:"lives"`
	BrickPoints    int `yaml:"brick_points"`
	StreakCap      int `yaml:"streak_cap"`
	LifeBonus      int `yaml:"life_bonus"` // end bonus per remaining life
	WaveDelayTicks int `yaml:"wave_delay_ticks"`
}

// InvadersConfig contains all configuration for the Invaders game.
type InvadersConfig struct {
	Physics    InvadersPhysics  `yaml:"physics"`
	Spawning   InvadersSpawning `yaml:"spawning"`
	Gameplay   InvadersGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// InvadersPhysics defines ship, bullet, and invader kinematics.
type InvadersPhysics struct {
	ShipAccel    float64 `yaml:"ship_accel"`
	ShipSpeed    float64 `yaml:"ship_speed"`
	ShipDrag     float64 `yaml:"ship_drag"`
	BulletSpeed  float64 `yaml:"bullet_speed"`
	InvaderSpeed float64 `yaml:"invader_speed"`
}

// InvadersSpawning defines the invader spawn stream.
type InvadersSpawning struct {
	Lanes         int     `yaml:"lanes"`
	EveryTicks    int     `yaml:"every_ticks"`
	InitialDelay  int     `yaml:"initial_delay"`
	MinSeparation float64 `yaml:"min_separation"`
	MaxAttempts   int     `yaml:"max_attempts"`
	MaxLive       int     `yaml:"max_live"`
}

// InvadersGameplay defines scoring and session rules for Invaders.
type InvadersGameplay struct {
	Lives         int `yaml:"lives"`
	InvaderPoints int `yaml:"invader_points"`
	StreakCap     int `yaml:"streak_cap"`
	ShieldTicks   int `yaml:"shield_ticks"`
	FireCooldown  int `yaml:"fire_cooldown"`
	BulletLife    int `yaml:"bullet_life"`
	WaveScore     int `yaml:"wave_score"` // score at which the next wave starts
}

// DriftConfig contains all configuration for the Drift game.
type DriftConfig struct {
	Physics    DriftPhysics     `yaml:"physics"`
	Track      DriftTrack       `yaml:"track"`
	Gameplay   DriftGameplay    `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DriftPhysics defines the steering model for Drift.
type DriftPhysics struct {
	Accel      float64 `yaml:"accel"`
	MaxSpeed   float64 `yaml:"max_speed"`
	Drag       float64 `yaml:"drag"`
	TurnRate   float64 `yaml:"turn_rate"`
	BoostScale float64 `yaml:"boost_scale"` // max speed multiplier while boosting
}

// DriftTrack defines barrier and gate placement for Drift.
type DriftTrack struct {
	Barriers      int     `yaml:"barriers"`
	GateEvery     int     `yaml:"gate_every"` // ticks between gate spawns
	GateLife      int     `yaml:"gate_life"`
	MinSeparation float64 `yaml:"min_separation"`
}

// DriftGameplay defines scoring and session rules for Drift.
type DriftGameplay struct {
	GatePoints    int `yaml:"gate_points"`
	StreakCap     int `yaml:"streak_cap"`
	BoostTicks    int `yaml:"boost_ticks"`
	SurvivalEvery int `yaml:"survival_every"` // ticks per survival point
	TimeLimit     int `yaml:"time_limit"`     // session length in ticks, 0 = endless
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	RateScale  float64 `yaml:"rate_scale"`  // spawn interval reduction at max difficulty
	SpeedScale float64 `yaml:"speed_scale"` // spawn speed increase at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies a difficulty config based on a named preset.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Enabled = false
		return
	}
	cfg.Enabled = true
	cfg.InitialLevel = InitialLevelForPreset(preset)
}
