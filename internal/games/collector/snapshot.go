package collector

import "github.com/gemdash/gemdash/internal/core"

// Snapshot is a read-only copy of the game state, safe to hold across
// ticks. Slices are copied; mutating a snapshot never affects the game.
type Snapshot struct {
	Tick      uint64
	Variant   Variant
	Status    Status
	Score     int
	Health    int
	Level     int
	Collected int
	TotalGems int
	TimeLeft  int

	Character core.Box
	Walls     []core.Box
	Items     []Item
	EndZone   *core.Box
	Skipped   []CellRef
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Variant:   g.variant,
		Status:    g.status,
		Score:     g.score,
		Health:    g.health,
		Level:     g.level,
		Collected: g.collected,
		TotalGems: g.totalGems,
		TimeLeft:  g.timeLeft,
		Character: g.char,
		Walls:     append([]core.Box(nil), g.walls...),
		Items:     append([]Item(nil), g.items...),
		Skipped:   append([]CellRef(nil), g.skipped...),
	}
	if g.endZone != nil {
		end := *g.endZone
		s.EndZone = &end
	}
	return s
}
