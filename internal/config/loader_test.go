package config

import "testing"

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	// The embedded YAML is the canonical default; the hardcoded structs
	// exist as a parse-failure fallback and must stay in sync.
	bricks, err := LoadBricks("")
	if err != nil {
		t.Fatalf("LoadBricks: %v", err)
	}
	if bricks != DefaultBricksConfig() {
		t.Errorf("embedded bricks defaults drifted from DefaultBricksConfig:\n%+v\nvs\n%+v", bricks, DefaultBricksConfig())
	}

	invaders, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders: %v", err)
	}
	if invaders != DefaultInvadersConfig() {
		t.Errorf("embedded invaders defaults drifted from DefaultInvadersConfig")
	}

	drift, err := LoadDrift("")
	if err != nil {
		t.Fatalf("LoadDrift: %v", err)
	}
	if drift != DefaultDriftConfig() {
		t.Errorf("embedded drift defaults drifted from DefaultDriftConfig")
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := LoadBricks("/nonexistent/bricks.yaml"); err == nil {
		t.Error("expected an error for a missing custom config path")
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	m := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})

	if got := m.Level(0, 0); got != 0 {
		t.Errorf("Level at score 0 = %v, want 0", got)
	}
	if got := m.Level(50, 0); got != 0.5 {
		t.Errorf("Level at score 50 = %v, want 0.5", got)
	}
	if got := m.Level(500, 0); got != 1.0 {
		t.Errorf("Level past max = %v, want clamped to 1", got)
	}
}

func TestDifficultyPresets(t *testing.T) {
	var cfg DifficultyConfig

	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Enabled || cfg.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v, want enabled at 0.7", cfg)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Enabled {
		t.Error("fixed preset must disable progression")
	}
}

func TestDifficultyDisabledHoldsInitialLevel(t *testing.T) {
	m := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})
	if got := m.Level(1000, 1000); got != 0.3 {
		t.Errorf("Level = %v, want initial 0.3 while disabled", got)
	}
}
