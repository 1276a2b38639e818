package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the user and local config directories.
const ConfigFileName = "numquest.yaml"

// LoadNumQuest loads the scene configuration.
// Search order: customPath -> ~/.numquest/configs/numquest.yaml -> ./configs/numquest.yaml -> embedded default
func LoadNumQuest(customPath string) (NumQuestConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return NumQuestConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return NumQuestConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultNumQuestYAML)
	if err != nil {
		return DefaultNumQuestConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the hardcoded defaults, so partial files only
// override the keys they mention, then validates the result.
func parse(data []byte) (NumQuestConfig, error) {
	cfg := DefaultNumQuestConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable scene.
func (c NumQuestConfig) Validate() error {
	var errs []error

	if c.Physics.Gravity <= 0 {
		errs = append(errs, errors.New("physics.gravity must be positive"))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, errors.New("physics.jump_impulse must be negative"))
	}
	if c.Physics.MaxFallSpeed <= 0 {
		errs = append(errs, errors.New("physics.max_fall_speed must be positive"))
	}
	if c.Physics.WalkTicks < 1 || c.Physics.StepEvery < 1 {
		errs = append(errs, errors.New("physics.walk_ticks and physics.step_every must be at least 1"))
	}
	if c.Layout.TileWidth < 2 {
		errs = append(errs, errors.New("layout.tile_width must be at least 2"))
	}
	if c.Layout.TileGap < 1 {
		errs = append(errs, errors.New("layout.tile_gap must be at least 1"))
	}
	if c.Layout.PlatformWidth < 3 {
		errs = append(errs, errors.New("layout.platform_width must be at least 3"))
	}
	if c.Layout.PlatformRise < 1 {
		errs = append(errs, errors.New("layout.platform_rise must be at least 1"))
	}
	if jump := c.JumpHeight(); float64(c.Layout.ObstacleHeight) <= jump {
		errs = append(errs, fmt.Errorf("layout.obstacle_height %d must exceed the jump height %.1f", c.Layout.ObstacleHeight, jump))
	}
	if jump := c.JumpHeight(); float64(c.Layout.PlatformRise) >= jump {
		errs = append(errs, fmt.Errorf("layout.platform_rise %d must be below the jump height %.1f", c.Layout.PlatformRise, jump))
	}
	if c.Hazards.Bombs < 0 || c.Hazards.Bombs > 3 {
		errs = append(errs, errors.New("hazards.bombs must be between 0 and 3"))
	}
	if c.Effects.FlashTicks < 0 || c.Effects.PopTicks < 0 || c.Effects.ShakeTicks < 0 {
		errs = append(errs, errors.New("effects durations must not be negative"))
	}

	return errors.Join(errs...)
}

// JumpHeight returns the apex of a standing jump in cells, following the
// same integration the scene uses: velocity first, then position.
func (c NumQuestConfig) JumpHeight() float64 {
	if c.Physics.Gravity <= 0 || c.Physics.JumpImpulse >= 0 {
		return 0
	}
	height := 0.0
	vel := c.Physics.JumpImpulse
	for {
		vel += c.Physics.Gravity
		if vel >= 0 {
			return height
		}
		height -= vel
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".numquest", "configs", filename)
}
