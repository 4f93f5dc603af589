// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// GameConfig contains all tuning parameters for Gem Dash.
// Both variants share one config; variant-specific sections are ignored
// by the variant that does not use them.
type GameConfig struct {
	Arena     ArenaConfig     `yaml:"arena"`
	Character CharacterConfig `yaml:"character"`
	Items     ItemsConfig     `yaml:"items"`
	Maze      MazeConfig      `yaml:"maze"`
	Survival  SurvivalConfig  `yaml:"survival"`
}

// ArenaConfig defines the simulation arena dimensions.
// Arena units are virtual; the renderer scales them to screen cells.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CharacterConfig defines the player character parameters.
type CharacterConfig struct {
	Size  float64 `yaml:"size"`  // Edge length of the square bounding box
	Speed float64 `yaml:"speed"` // Arena units moved per tick per held direction
}

// ItemsConfig defines collectible parameters.
type ItemsConfig struct {
	Size      float64 `yaml:"size"`       // Edge length of an item's bounding box
	Heal      int     `yaml:"heal"`       // Health gained per gem, capped at 100
	Damage    int     `yaml:"damage"`     // Health lost per hazard, floored at 0
	GemChance float64 `yaml:"gem_chance"` // Probability an item rolls as a gem (survival)
}

// MazeConfig defines parameters for the fixed-grid maze variant.
type MazeConfig struct {
	ExitMargin float64 `yaml:"exit_margin"` // Distance from the right edge that counts as the exit
	ExitWidth  float64 `yaml:"exit_width"`  // Width of the rendered exit strip
}

// SurvivalConfig defines parameters for the randomized survival variant.
type SurvivalConfig struct {
	TimeLimit     int     `yaml:"time_limit"`     // Countdown seconds per level
	BaseWalls     int     `yaml:"base_walls"`     // Wall count at level 1
	MaxWalls      int     `yaml:"max_walls"`      // Wall count cap
	BaseItems     int     `yaml:"base_items"`     // Item count at level 1
	MaxItems      int     `yaml:"max_items"`      // Item count cap
	PlaceAttempts int     `yaml:"place_attempts"` // Rejection-sampling retry budget
	MinWallLen    float64 `yaml:"min_wall_len"`   // Shortest wall, arena units
	MaxWallLen    float64 `yaml:"max_wall_len"`   // Longest wall, arena units
	WallThickness float64 `yaml:"wall_thickness"`
	SafeZone      float64 `yaml:"safe_zone"` // Edge length of the spawn safe zone
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyGamePreset modifies the config based on a difficulty preset.
// Unknown or empty presets leave the config untouched.
func ApplyGamePreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Items.Heal = 15
		cfg.Items.Damage = 20
		cfg.Survival.TimeLimit = 90
	case DifficultyHard:
		cfg.Items.Heal = 5
		cfg.Items.Damage = 35
		cfg.Survival.TimeLimit = 45
		cfg.Survival.MaxWalls += 2
	}
}
