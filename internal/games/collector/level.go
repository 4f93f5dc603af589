// Package collector implements Gem Dash, an arcade collector game with
// two variants: fixed-grid maze levels and randomized survival arenas.
// The package is UI-agnostic; the platform drives it through ticks and
// raw key events.
package collector

import (
	"fmt"
	"strings"

	"github.com/gemdash/gemdash/internal/config"
	"github.com/gemdash/gemdash/internal/core"
)

// ItemKind classifies a collectible.
type ItemKind uint8

const (
	KindGem    ItemKind = iota // Beneficial: positive points, heals
	KindHazard                 // Harmful: negative points, damages
)

// String returns a human-readable name for the kind.
func (k ItemKind) String() string {
	if k == KindGem {
		return "gem"
	}
	return "hazard"
}

// PaletteEntry pairs a visual tag with a point value.
type PaletteEntry struct {
	Tag    string
	Points int
}

// Palettes cycled by designator index (fixed grid) or rolled at random
// (survival). Point values are signed: hazards subtract score.
var (
	GemPalette = []PaletteEntry{
		{Tag: "coin", Points: 10},
		{Tag: "gem", Points: 25},
		{Tag: "star", Points: 50},
		{Tag: "heart", Points: 15},
	}
	HazardPalette = []PaletteEntry{
		{Tag: "spike", Points: -10},
		{Tag: "skull", Points: -25},
		{Tag: "fire", Points: -15},
	}
)

// Item is an active collectible. IDs are unique within a level; an item
// is removed from the active set the tick it is picked up and never
// reused.
type Item struct {
	ID     int
	Kind   ItemKind
	Tag    string
	Points int
	Box    core.Box
}

// CellRef identifies a grid cell by row and column.
type CellRef struct {
	Row, Col int
}

// Layout is the output of level generation: everything the engine needs
// to start a level.
type Layout struct {
	Walls   []core.Box
	Items   []Item
	Start   core.Vec  // Top-left corner of the character's spawn box
	EndZone *core.Box // Exit strip at the right edge (maze only)

	// TotalGems is the effective gem count after skipped designators.
	// The maze win condition checks against this, not the designer's
	// nominal list length.
	TotalGems int

	// Skipped records designer item cells that landed on wall cells and
	// were dropped. A diagnostic, never an error.
	Skipped []CellRef
}

// Generator produces level layouts. The two strategies (fixed grid,
// randomized) are interchangeable behind this contract.
type Generator interface {
	// Generate builds the layout for a 1-based level index.
	Generate(level int) *Layout

	// LevelCount returns the number of defined levels, or 0 when the
	// generator can produce arbitrarily many.
	LevelCount() int
}

// Grid cell symbols for fixed layouts.
const (
	cellWall  = '#'
	cellOpen  = '.'
	cellStart = 'S'
	cellEnd   = 'E'
)

// GridLevel is a designer-authored maze level: an ASCII layout plus two
// designator lists of (row, col) cells for gem and hazard placement.
// This is configuration data, loadable from YAML level packs.
type GridLevel struct {
	Name    string   `yaml:"name"`
	Layout  []string `yaml:"layout"`
	Gems    [][2]int `yaml:"gems"`
	Hazards [][2]int `yaml:"hazards"`
}

// Validate checks structural soundness: non-empty rectangular layout,
// known symbols only, exactly one start cell. Designators pointing at
// wall cells are legal; generation skips them.
func (l *GridLevel) Validate() error {
	if len(l.Layout) == 0 {
		return fmt.Errorf("empty layout")
	}

	width := len(l.Layout[0])
	starts := 0
	for r, row := range l.Layout {
		if len(row) != width {
			return fmt.Errorf("row %d has length %d, expected %d", r, len(row), width)
		}
		for c, ch := range row {
			switch ch {
			case cellWall, cellOpen, cellEnd:
			case cellStart:
				starts++
			default:
				return fmt.Errorf("unknown symbol %q at (%d, %d)", ch, r, c)
			}
		}
	}

	if starts != 1 {
		return fmt.Errorf("expected exactly one start cell, found %d", starts)
	}
	return nil
}

// openCell reports whether (row, col) is inside the layout and not a wall.
func (l *GridLevel) openCell(row, col int) bool {
	if row < 0 || row >= len(l.Layout) {
		return false
	}
	if col < 0 || col >= len(l.Layout[row]) {
		return false
	}
	return l.Layout[row][col] != cellWall
}

// startCell returns the (row, col) of the start cell.
func (l *GridLevel) startCell() (int, int) {
	for r, row := range l.Layout {
		if c := strings.IndexByte(row, cellStart); c >= 0 {
			return r, c
		}
	}
	return 0, 0
}

// FixedGridGenerator produces layouts from a static table of grid
// levels. Fully deterministic given the level index.
type FixedGridGenerator struct {
	levels   []GridLevel
	arenaW   float64
	arenaH   float64
	charSize float64
	itemSize float64
	exitW    float64
}

// NewFixedGridGenerator creates a generator over the given level table.
func NewFixedGridGenerator(levels []GridLevel, cfg config.GameConfig) *FixedGridGenerator {
	return &FixedGridGenerator{
		levels:   levels,
		arenaW:   cfg.Arena.Width,
		arenaH:   cfg.Arena.Height,
		charSize: cfg.Character.Size,
		itemSize: cfg.Items.Size,
		exitW:    cfg.Maze.ExitWidth,
	}
}

// LevelCount returns the number of defined levels.
func (g *FixedGridGenerator) LevelCount() int {
	return len(g.levels)
}

// Generate builds the layout for the given 1-based level index.
// Indexes past the table clamp to the last level.
func (g *FixedGridGenerator) Generate(level int) *Layout {
	idx := core.Clamp(level-1, 0, len(g.levels)-1)
	lvl := &g.levels[idx]

	rows := len(lvl.Layout)
	cols := len(lvl.Layout[0])
	cellW := g.arenaW / float64(cols)
	cellH := g.arenaH / float64(rows)

	lay := &Layout{}

	for r, row := range lvl.Layout {
		for c := range row {
			if row[c] == cellWall {
				lay.Walls = append(lay.Walls, core.NewBox(
					float64(c)*cellW, float64(r)*cellH, cellW, cellH))
			}
		}
	}

	// Start position centers the character in the start cell.
	sr, sc := lvl.startCell()
	lay.Start = core.Vec{
		X: float64(sc)*cellW + cellW/2 - g.charSize/2,
		Y: float64(sr)*cellH + cellH/2 - g.charSize/2,
	}

	end := core.NewBox(g.arenaW-g.exitW, 0, g.exitW, g.arenaH)
	lay.EndZone = &end

	id := 0
	place := func(cells [][2]int, palette []PaletteEntry, kind ItemKind) {
		for i, cell := range cells {
			row, col := cell[0], cell[1]
			if !lvl.openCell(row, col) {
				// Designers may reference wall cells; skip, never fail.
				lay.Skipped = append(lay.Skipped, CellRef{Row: row, Col: col})
				continue
			}
			entry := palette[i%len(palette)]
			lay.Items = append(lay.Items, Item{
				ID:     id,
				Kind:   kind,
				Tag:    entry.Tag,
				Points: entry.Points,
				Box: core.NewBox(
					float64(col)*cellW+cellW/2-g.itemSize/2,
					float64(row)*cellH+cellH/2-g.itemSize/2,
					g.itemSize, g.itemSize),
			})
			id++
			if kind == KindGem {
				lay.TotalGems++
			}
		}
	}

	place(lvl.Gems, GemPalette, KindGem)
	place(lvl.Hazards, HazardPalette, KindHazard)

	return lay
}
