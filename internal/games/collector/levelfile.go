package collector

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// gridLevelFile is the on-disk format for custom maze level packs.
type gridLevelFile struct {
	Levels []GridLevel `yaml:"levels"`
}

// LoadGridLevels reads a YAML level pack for the maze variant.
//
// File format:
//
//	levels:
//	  - name: My Level
//	    layout:
//	      - "#####"
//	      - "#S..E"
//	      - "#####"
//	    gems: [[1, 2]]
//	    hazards: [[1, 3]]
//
// Malformed files are a load-time error; a loaded pack never fails
// during level generation.
func LoadGridLevels(path string) ([]GridLevel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("collector: cannot read level pack %s: %w", path, err)
	}

	var f gridLevelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("collector: cannot parse level pack %s: %w", path, err)
	}

	if len(f.Levels) == 0 {
		return nil, fmt.Errorf("collector: level pack %s defines no levels", path)
	}

	for i := range f.Levels {
		if err := f.Levels[i].Validate(); err != nil {
			return nil, fmt.Errorf("collector: level %d (%s): %w", i+1, f.Levels[i].Name, err)
		}
	}

	return f.Levels, nil
}
