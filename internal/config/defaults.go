package config

import (
	_ "embed"
)

//go:embed defaults/bricks.yaml
var defaultBricksYAML []byte

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

//go:embed defaults/drift.yaml
var defaultDriftYAML []byte

// DefaultBricksConfig returns the default Bricks configuration.
func DefaultBricksConfig() BricksConfig {
	return BricksConfig{
		Physics: BricksPhysics{
			BallSpeed:    28,
			MaxBallSpeed: 55,
			PaddleAccel:  400,
			PaddleSpeed:  45,
			PaddleDrag:   0.82,
		},
		Paddle: BricksPaddle{
			Width:     10,
			Height:    1,
			WideBonus: 6,
		},
		Layout: BricksLayout{
			Rows:       5,
			Cols:       10,
			TopOffset:  3,
			SideMargin: 4,
			BrickW:     6,
			BrickH:     1,
			HardRows:   1,
		},
		PowerUps: BricksPowerUps{
			DropChance:    0.15,
			FallSpeed:     10,
			DurationTicks: 600,
		},
		Gameplay: BricksGameplay{
			Lives:          3,
			BrickPoints:    10,
			StreakCap:      10,
			LifeBonus:      50,
			WaveDelayTicks: 90,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				RateScale:  0,
				SpeedScale: 0.5,
			},
		},
	}
}

// DefaultInvadersConfig returns the default Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Physics: InvadersPhysics{
			ShipAccel:    500,
			ShipSpeed:    40,
			ShipDrag:     0.8,
			BulletSpeed:  60,
			InvaderSpeed: 6,
		},
		Spawning: InvadersSpawning{
			Lanes:         10,
			EveryTicks:    45,
			InitialDelay:  30,
			MinSeparation: 6,
			MaxAttempts:   5,
			MaxLive:       12,
		},
		Gameplay: InvadersGameplay{
			Lives:         3,
			InvaderPoints: 10,
			StreakCap:     10,
			ShieldTicks:   300,
			FireCooldown:  12,
			BulletLife:    120,
			WaveScore:     200,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 800,
			},
			Scaling: ScalingConfig{
				RateScale:  0.6,
				SpeedScale: 1.0,
			},
		},
	}
}

// DefaultDriftConfig returns the default Drift configuration.
func DefaultDriftConfig() DriftConfig {
	return DriftConfig{
		Physics: DriftPhysics{
			Accel:      30,
			MaxSpeed:   35,
			Drag:       0.96,
			TurnRate:   3.2,
			BoostScale: 1.5,
		},
		Track: DriftTrack{
			Barriers:      8,
			GateEvery:     120,
			GateLife:      360,
			MinSeparation: 10,
		},
		Gameplay: DriftGameplay{
			GatePoints:    10,
			StreakCap:     10,
			BoostTicks:    180,
			SurvivalEvery: 60,
			TimeLimit:     0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7200, // 2 minutes at 60fps
			},
			Scaling: ScalingConfig{
				RateScale:  0.4,
				SpeedScale: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "bricks":
		return defaultBricksYAML
	case "invaders":
		return defaultInvadersYAML
	case "drift":
		return defaultDriftYAML
	default:
		return nil
	}
}
