package config

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the loaded config untouched.
func ApplyPreset(cfg *NumQuestConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Hazards.Bombs = 1
		cfg.Physics.JumpImpulse = -0.7 // A little more air time
		cfg.Physics.WalkTicks = 15
	case DifficultyNormal:
		cfg.Hazards.Bombs = 2
	case DifficultyHard:
		cfg.Hazards.Bombs = 3
		cfg.Physics.WalkTicks = 9
	}
}
