package collector

import (
	"math/rand"

	"github.com/gemdash/gemdash/internal/config"
	"github.com/gemdash/gemdash/internal/core"
)

// RandomizedGenerator produces survival arenas: randomly placed walls
// and collectibles, denser at higher levels (capped). Placement uses
// rejection sampling with a bounded attempt budget; when the budget is
// exhausted the last candidate is accepted as-is, so layouts at high
// levels may contain overlapping rectangles. Best-effort by design.
type RandomizedGenerator struct {
	rng *rand.Rand
	cfg config.GameConfig
}

// NewRandomizedGenerator creates a generator seeded for reproducibility.
func NewRandomizedGenerator(seed int64, cfg config.GameConfig) *RandomizedGenerator {
	return &RandomizedGenerator{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// LevelCount returns 0: the survival variant has no last level.
func (g *RandomizedGenerator) LevelCount() int {
	return 0
}

// Generate builds a randomized layout for the given 1-based level index.
func (g *RandomizedGenerator) Generate(level int) *Layout {
	if level < 1 {
		level = 1
	}

	arenaW := g.cfg.Arena.Width
	arenaH := g.cfg.Arena.Height
	charSize := g.cfg.Character.Size

	lay := &Layout{
		Start: core.Vec{
			X: arenaW/2 - charSize/2,
			Y: arenaH/2 - charSize/2,
		},
	}

	// Walls must not crowd the spawn point.
	safe := g.cfg.Survival.SafeZone
	safeZone := core.NewBox(arenaW/2-safe/2, arenaH/2-safe/2, safe, safe)

	wallCount := core.Min(g.cfg.Survival.BaseWalls+(level-1), g.cfg.Survival.MaxWalls)
	for i := 0; i < wallCount; i++ {
		wall := g.placeBox(g.wallCandidate, func(b core.Box) bool {
			if b.Overlaps(safeZone) {
				return false
			}
			for _, w := range lay.Walls {
				if b.Overlaps(w) {
					return false
				}
			}
			return true
		})
		lay.Walls = append(lay.Walls, wall)
	}

	itemCount := core.Min(g.cfg.Survival.BaseItems+2*(level-1), g.cfg.Survival.MaxItems)
	for i := 0; i < itemCount; i++ {
		kind := KindHazard
		palette := HazardPalette
		if g.rng.Float64() < g.cfg.Items.GemChance {
			kind = KindGem
			palette = GemPalette
		}
		entry := palette[g.rng.Intn(len(palette))]

		box := g.placeBox(g.itemCandidate, func(b core.Box) bool {
			for _, w := range lay.Walls {
				if b.Overlaps(w) {
					return false
				}
			}
			return true
		})

		lay.Items = append(lay.Items, Item{
			ID:     i,
			Kind:   kind,
			Tag:    entry.Tag,
			Points: entry.Points,
			Box:    box,
		})
		if kind == KindGem {
			lay.TotalGems++
		}
	}

	return lay
}

// placeBox draws candidates until one is accepted or the attempt budget
// runs out, in which case the last candidate is returned regardless.
// The bounded budget guarantees termination (never an error).
func (g *RandomizedGenerator) placeBox(candidate func() core.Box, accept func(core.Box) bool) core.Box {
	attempts := g.cfg.Survival.PlaceAttempts
	if attempts < 1 {
		attempts = 1
	}

	var box core.Box
	for i := 0; i < attempts; i++ {
		box = candidate()
		if accept(box) {
			return box
		}
	}
	return box
}

// wallCandidate draws a random horizontal or vertical wall within the
// arena, with length inside the configured band.
func (g *RandomizedGenerator) wallCandidate() core.Box {
	s := g.cfg.Survival
	length := s.MinWallLen + g.rng.Float64()*(s.MaxWallLen-s.MinWallLen)

	w, h := length, s.WallThickness
	if g.rng.Intn(2) == 0 {
		w, h = s.WallThickness, length
	}

	return core.NewBox(
		g.rng.Float64()*(g.cfg.Arena.Width-w),
		g.rng.Float64()*(g.cfg.Arena.Height-h),
		w, h)
}

// itemCandidate draws a random item position within the arena.
func (g *RandomizedGenerator) itemCandidate() core.Box {
	size := g.cfg.Items.Size
	return core.NewBox(
		g.rng.Float64()*(g.cfg.Arena.Width-size),
		g.rng.Float64()*(g.cfg.Arena.Height-size),
		size, size)
}
