// Package config provides YAML-based game configuration loading and
// difficulty presets for Number Quest.
package config

// NumQuestConfig contains all configuration for the Number Quest scene.
type NumQuestConfig struct {
	Physics Physics `yaml:"physics"`
	Layout  Layout  `yaml:"layout"`
	Hazards Hazards `yaml:"hazards"`
	Effects Effects `yaml:"effects"`
	Scoring Scoring `yaml:"scoring"`
}

// Physics defines player movement parameters. Velocities are in cells per tick.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Negative = up
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity
	WalkTicks    int     `yaml:"walk_ticks"`     // Ticks a single key press keeps the player walking
	StepEvery    int     `yaml:"step_every"`     // Ticks between one-cell steps while walking
}

// Layout defines the scene geometry in cells.
type Layout struct {
	TileWidth      int `yaml:"tile_width"`
	TileGap        int `yaml:"tile_gap"`
	ObstacleHeight int `yaml:"obstacle_height"` // Must be taller than a jump
	PlatformWidth  int `yaml:"platform_width"`
	PlatformRise   int `yaml:"platform_rise"` // Height difference between platform steps
}

// Hazards defines how many bombs guard the platforms.
type Hazards struct {
	Bombs int `yaml:"bombs"` // 0..3, one per platform from the bottom
}

// Effects defines the duration of cosmetic effects in ticks.
type Effects struct {
	FlashTicks int `yaml:"flash_ticks"`
	PopTicks   int `yaml:"pop_ticks"`
	ShakeTicks int `yaml:"shake_ticks"`
}

// Scoring defines the points awarded during a session.
type Scoring struct {
	CorrectTile int `yaml:"correct_tile"`
	Win         int `yaml:"win"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset resolves a preset name; unknown names yield "".
func ParseDifficultyPreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name)
	default:
		return ""
	}
}
