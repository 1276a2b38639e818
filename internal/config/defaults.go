package config

import (
	_ "embed"
)

//go:embed defaults/numquest.yaml
var defaultNumQuestYAML []byte

// DefaultNumQuestConfig returns the built-in Number Quest configuration.
// It matches defaults/numquest.yaml and is used when the embedded file
// can not be parsed.
func DefaultNumQuestConfig() NumQuestConfig {
	return NumQuestConfig{
		Physics: Physics{
			Gravity:      0.05,
			JumpImpulse:  -0.65,
			MaxFallSpeed: 1.0,
			WalkTicks:    12,
			StepEvery:    3,
		},
		Layout: Layout{
			TileWidth:      4,
			TileGap:        2,
			ObstacleHeight: 6,
			PlatformWidth:  8,
			PlatformRise:   3,
		},
		Hazards: Hazards{
			Bombs: 2,
		},
		Effects: Effects{
			FlashTicks: 12,
			PopTicks:   10,
			ShakeTicks: 12,
		},
		Scoring: Scoring{
			CorrectTile: 10,
			Win:         50,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultNumQuestYAML
}
