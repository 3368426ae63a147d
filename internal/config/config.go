// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/axion/internal/engine"
)

// AxionConfig contains all tunables of a game session.
type AxionConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Rules      RulesConfig      `yaml:"rules"`
	Balls      BallsConfig      `yaml:"balls"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig sizes the grid. A zero width or height fits the terminal,
// clamped to the min/max values.
type BoardConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	MinWidth  int `yaml:"min_width"`
	MinHeight int `yaml:"min_height"`
	MaxWidth  int `yaml:"max_width"`
	MaxHeight int `yaml:"max_height"`
}

// RulesConfig defines win conditions and capture behaviour.
type RulesConfig struct {
	TargetPercentage int    `yaml:"target_percentage"`
	SealPolicy       string `yaml:"seal_policy"`
	StartLevel       int    `yaml:"start_level"`
}

// BallsConfig mirrors engine.BallPolicy.
type BallsConfig struct {
	AreaPerBall      int `yaml:"area_per_ball"`
	Base             int `yaml:"base"`
	PerLevel         int `yaml:"per_level"`
	MinSpawnDistance int `yaml:"min_spawn_distance"`
	DangerZone       int `yaml:"danger_zone"`
}

// TimingConfig defines simulation and drawing rates.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"` // Milliseconds per simulation tick
	FPS    int `yaml:"fps"`     // Frames drawn per second
}

// DifficultyConfig defines how the game speeds up with the level.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines when maximum difficulty is reached.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra speed at max difficulty
	MinTickMS       int     `yaml:"min_tick_ms"`      // Fastest allowed tick
}

// Validate rejects configurations the engine or loop cannot run.
func (c AxionConfig) Validate() error {
	var errs []error

	if c.Board.MinWidth < engine.MinBoardSize || c.Board.MinHeight < engine.MinBoardSize {
		errs = append(errs, fmt.Errorf("config: board minimum %dx%d is below %dx%d",
			c.Board.MinWidth, c.Board.MinHeight, engine.MinBoardSize, engine.MinBoardSize))
	}
	if c.Board.MaxWidth < c.Board.MinWidth || c.Board.MaxHeight < c.Board.MinHeight {
		errs = append(errs, errors.New("config: board maximum is below the minimum"))
	}
	if c.Board.Width < 0 || c.Board.Height < 0 {
		errs = append(errs, errors.New("config: board size must not be negative"))
	}
	if c.Rules.TargetPercentage <= 0 || c.Rules.TargetPercentage > 100 {
		errs = append(errs, fmt.Errorf("config: target_percentage %d outside (0, 100]", c.Rules.TargetPercentage))
	}
	if _, err := engine.ParseSealPolicy(c.Rules.SealPolicy); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	if c.Rules.StartLevel < 1 {
		errs = append(errs, fmt.Errorf("config: start_level %d must be >= 1", c.Rules.StartLevel))
	}
	if c.Balls.AreaPerBall < 0 || c.Balls.Base < 0 || c.Balls.PerLevel < 0 ||
		c.Balls.MinSpawnDistance < 0 || c.Balls.DangerZone < 0 {
		errs = append(errs, errors.New("config: ball values must not be negative"))
	}
	if c.Timing.TickMS < 0 || c.Timing.FPS < 0 {
		errs = append(errs, errors.New("config: timing values must not be negative"))
	}
	switch c.Difficulty.Progression.Type {
	case "", "level", "none":
	default:
		errs = append(errs, fmt.Errorf("config: unknown progression type %q", c.Difficulty.Progression.Type))
	}

	return errors.Join(errs...)
}

// BoardSize resolves the grid size for a terminal of termW×termH characters.
// Each cell takes two columns; hudRows lines are kept for the HUD.
func (c AxionConfig) BoardSize(termW, termH, hudRows int) (w, h int) {
	w, h = c.Board.Width, c.Board.Height
	if w == 0 {
		w = clamp(termW/2, c.Board.MinWidth, c.Board.MaxWidth)
	}
	if h == 0 {
		h = clamp(termH-hudRows, c.Board.MinHeight, c.Board.MaxHeight)
	}
	return w, h
}

// EngineOptions builds engine options for a board and seed.
func (c AxionConfig) EngineOptions(w, h int, seed int64) engine.Options {
	opts := engine.DefaultOptions(w, h)
	opts.Seed = seed
	opts.StartLevel = c.Rules.StartLevel
	opts.TargetPercentage = c.Rules.TargetPercentage
	opts.SealPolicy = engine.SealPolicy(c.Rules.SealPolicy)
	opts.Balls = engine.BallPolicy{
		AreaPerBall:      c.Balls.AreaPerBall,
		Base:             c.Balls.Base,
		PerLevel:         c.Balls.PerLevel,
		MinSpawnDistance: c.Balls.MinSpawnDistance,
		DangerZone:       c.Balls.DangerZone,
	}
	return opts
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
