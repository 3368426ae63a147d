package config

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *AxionConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Rules.TargetPercentage = 65
		cfg.Balls.AreaPerBall = 400
		cfg.Balls.Base = 1
	case DifficultyHard:
		cfg.Rules.TargetPercentage = 80
		cfg.Balls.PerLevel = 2
	}
}

// DifficultyManager derives the tick speed of a level.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty (0.0 to 1.0) of a 1-indexed game level.
// Difficulty rises linearly from initial_level at level 1 to 1.0 at max_at.
func (d *DifficultyManager) Level(gameLevel int) float64 {
	initial := clampF(d.cfg.InitialLevel, 0, 1)
	if !d.IsEnabled() {
		return initial
	}

	span := float64(d.cfg.Progression.MaxAt - 1)
	if span <= 0 {
		span = 1
	}
	progress := clampF(float64(gameLevel-1)/span, 0, 1)
	return initial + progress*(1-initial)
}

// TickInterval returns the simulation tick for a level given the base tick.
// A non-positive base means lockstep and is returned as zero.
func (d *DifficultyManager) TickInterval(baseMS, gameLevel int) time.Duration {
	if baseMS <= 0 {
		return 0
	}
	speed := 1 + d.Level(gameLevel)*d.cfg.Scaling.SpeedMultiplier
	ms := int(math.Round(float64(baseMS) / speed))
	if floor := d.cfg.Scaling.MinTickMS; floor > 0 && ms < floor {
		ms = floor
	}
	return time.Duration(ms) * time.Millisecond
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
