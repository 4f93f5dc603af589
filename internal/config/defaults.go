package config

import (
	_ "embed"
)

//go:embed defaults/gemdash.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default Gem Dash configuration.
// Mirrors defaults/gemdash.yaml; used as a last-resort fallback.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Character: CharacterConfig{
			Size:  30,
			Speed: 5,
		},
		Items: ItemsConfig{
			Size:      20,
			Heal:      10,
			Damage:    25,
			GemChance: 0.6,
		},
		Maze: MazeConfig{
			ExitMargin: 10,
			ExitWidth:  40,
		},
		Survival: SurvivalConfig{
			TimeLimit:     60,
			BaseWalls:     3,
			MaxWalls:      8,
			BaseItems:     5,
			MaxItems:      15,
			PlaceAttempts: 50,
			MinWallLen:    80,
			MaxWallLen:    220,
			WallThickness: 20,
			SafeZone:      160,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGameYAML
}
