package config

import (
	_ "embed"

	"github.com/vovakirdan/axion/internal/engine"
)

//go:embed defaults/axion.yaml
var defaultAxionYAML []byte

// DefaultConfig returns the hard-coded configuration used when even the
// embedded YAML cannot be parsed.
func DefaultConfig() AxionConfig {
	return AxionConfig{
		Board: BoardConfig{
			MinWidth:  20,
			MinHeight: 12,
			MaxWidth:  60,
			MaxHeight: 40,
		},
		Rules: RulesConfig{
			TargetPercentage: engine.DefaultTargetPercentage,
			SealPolicy:       string(engine.SealKeep),
			StartLevel:       1,
		},
		Balls: BallsConfig{
			AreaPerBall:      267,
			Base:             2,
			PerLevel:         1,
			MinSpawnDistance: 5,
			DangerZone:       10,
		},
		Timing: TimingConfig{
			TickMS: 100,
			FPS:    30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				MinTickMS:       40,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultAxionYAML
}
