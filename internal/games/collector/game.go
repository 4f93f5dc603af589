package collector

import (
	"github.com/gemdash/gemdash/internal/config"
	"github.com/gemdash/gemdash/internal/core"
	"github.com/gemdash/gemdash/internal/registry"
)

// Variant selects the level-generation strategy and win condition.
type Variant uint8

const (
	// VariantMaze plays fixed grid levels: collect every gem, then reach
	// the exit strip at the right edge.
	VariantMaze Variant = iota

	// VariantSurvival plays randomized arenas against a countdown: clear
	// all gems before time runs out.
	VariantSurvival
)

// Game owns the authoritative session state for one playthrough.
// All mutation happens inside Step/TickSecond (tick callbacks) and the
// explicit Start/NextLevel transitions; the held-input set is the only
// state touched by asynchronous key events.
type Game struct {
	variant Variant
	cfg     core.RuntimeConfig
	tuning  config.GameConfig
	gen     Generator
	held    core.Held

	tick   uint64
	status Status

	level     int // 1-based, monotonic within a playthrough
	score     int // signed, unbounded
	health    int // clamped to [0, 100]
	collected int // gems picked up this level
	totalGems int // effective gem count for this level
	timeLeft  int // survival countdown, seconds

	char    core.Box
	walls   []core.Box
	items   []Item
	endZone *core.Box
	skipped []CellRef

	screenW  int
	screenH  int
	tooSmall bool
}

// Package-level settings applied at Reset, set by the CLI before the
// game is created (same pattern for every game on the platform).
var (
	configPath       string
	difficultyPreset string
	levelsPath       string
)

// SetConfigPath sets the tuning config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLevelsPath sets a custom YAML level pack for the maze variant.
func SetLevelsPath(path string) {
	levelsPath = path
}

// New creates a maze variant game.
func New() *Game {
	return &Game{variant: VariantMaze}
}

// NewSurvival creates a survival variant game.
func NewSurvival() *Game {
	return &Game{variant: VariantSurvival}
}

func init() {
	registry.Register("maze", func() registry.Game {
		return New()
	})
	registry.Register("survival", func() registry.Game {
		return NewSurvival()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantSurvival {
		return "survival"
	}
	return "maze"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantSurvival {
		return "Gem Dash (Survival)"
	}
	return "Gem Dash (Maze)"
}

// Reset initializes the session: loads tuning, builds the generator for
// the variant, and leaves the game at the menu status. Start begins play.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = cfg.ScreenW < minScreenW || cfg.ScreenH < minScreenH

	tuning, err := config.LoadGame(configPath)
	if err != nil {
		tuning = config.DefaultGameConfig()
	}
	config.ApplyGamePreset(&tuning, config.DifficultyPreset(difficultyPreset))
	g.tuning = tuning

	switch g.variant {
	case VariantMaze:
		levels := BuiltinGridLevels()
		if levelsPath != "" {
			if custom, err := LoadGridLevels(levelsPath); err == nil {
				levels = custom
			}
		}
		g.gen = NewFixedGridGenerator(levels, tuning)
	case VariantSurvival:
		g.gen = NewRandomizedGenerator(cfg.Seed, tuning)
	}

	g.tick = 0
	g.status = StatusMenu
	g.held.Clear()
}

// Start begins or restarts a playthrough: score to 0, health to 100,
// level to 1, level 1 generated. Restarting is equivalent to starting
// fresh.
func (g *Game) Start() {
	g.score = 0
	g.health = 100
	g.level = 1
	g.loadLevel()
	g.status = StatusPlaying
}

// NextLevel advances past a completed level. Score and health persist.
// In the maze variant, advancing past the last defined level wins the
// game instead of generating another level.
func (g *Game) NextLevel() {
	if g.status != StatusLevelComplete {
		return
	}

	g.level++
	if n := g.gen.LevelCount(); n > 0 && g.level > n {
		g.status = StatusGameWon
		return
	}

	g.loadLevel()
	g.status = StatusPlaying
}

// loadLevel generates and installs the current level's layout.
func (g *Game) loadLevel() {
	lay := g.gen.Generate(g.level)

	size := g.tuning.Character.Size
	g.char = core.NewBox(lay.Start.X, lay.Start.Y, size, size)
	g.walls = lay.Walls
	g.items = lay.Items
	g.endZone = lay.EndZone
	g.skipped = lay.Skipped
	g.collected = 0
	g.totalGems = lay.TotalGems
	g.timeLeft = g.tuning.Survival.TimeLimit
}

// KeyDown feeds a raw key-press event into the held-input set.
// Unrecognized keys are ignored.
func (g *Game) KeyDown(name string) {
	if d, ok := core.MapKey(name); ok {
		g.held.Press(d)
	}
}

// KeyUp feeds a raw key-release event. A release always clears the
// direction, regardless of the current status.
func (g *Game) KeyUp(name string) {
	if d, ok := core.MapKey(name); ok {
		g.held.Release(d)
	}
}

// Step advances the simulation by one tick. A no-op unless playing.
func (g *Game) Step() core.StepResult {
	g.tick++

	if g.status != StatusPlaying {
		return core.StepResult{State: g.State()}
	}

	// One stable snapshot per tick; key events may interleave freely.
	held := g.held.Snapshot()

	g.moveCharacter(held)
	g.resolvePickups()
	g.evaluateStatus()

	return core.StepResult{State: g.State()}
}

// TickSecond decrements the survival countdown. Driven by the
// platform's one-per-second scheduler, independent of the frame tick.
func (g *Game) TickSecond() {
	if g.variant != VariantSurvival || g.status != StatusPlaying {
		return
	}
	if g.timeLeft > 0 {
		g.timeLeft--
	}
}

// moveCharacter resolves each held direction on its own axis: the
// candidate position is clamped to arena bounds and rejected if it
// overlaps any wall. Axis separation keeps sliding along a wall
// possible when only one axis is blocked.
func (g *Game) moveCharacter(held core.DirSet) {
	speed := g.tuning.Character.Speed
	arenaW := g.tuning.Arena.Width
	arenaH := g.tuning.Arena.Height

	for _, d := range core.Directions {
		if !held.Has(d) {
			continue
		}

		cand := g.char
		switch d {
		case core.DirLeft:
			cand.X = core.ClampF(cand.X-speed, 0, arenaW-cand.W)
		case core.DirRight:
			cand.X = core.ClampF(cand.X+speed, 0, arenaW-cand.W)
		case core.DirUp:
			cand.Y = core.ClampF(cand.Y-speed, 0, arenaH-cand.H)
		case core.DirDown:
			cand.Y = core.ClampF(cand.Y+speed, 0, arenaH-cand.H)
		}

		if !g.hitsWall(cand) {
			g.char = cand
		}
	}
}

// hitsWall reports whether the box overlaps any wall of the level.
func (g *Game) hitsWall(b core.Box) bool {
	for _, w := range g.walls {
		if b.Overlaps(w) {
			return true
		}
	}
	return false
}

// resolvePickups collects every active item overlapping the character's
// new position. Each item triggers at most once: it leaves the active
// set the tick it is picked up.
func (g *Game) resolvePickups() {
	kept := g.items[:0]
	for _, it := range g.items {
		if !it.Box.Overlaps(g.char) {
			kept = append(kept, it)
			continue
		}

		g.score += it.Points
		if it.Kind == KindGem {
			g.health = core.Min(g.health+g.tuning.Items.Heal, 100)
			g.collected++
		} else {
			g.health = core.Max(g.health-g.tuning.Items.Damage, 0)
		}
	}
	g.items = kept
}

// evaluateStatus applies the terminal conditions in priority order.
// Health loss wins over any other outcome on the same tick.
func (g *Game) evaluateStatus() {
	if g.health <= 0 {
		g.status = StatusGameOver
		return
	}

	switch g.variant {
	case VariantMaze:
		if g.char.X+g.char.W >= g.tuning.Arena.Width-g.tuning.Maze.ExitMargin {
			if g.collected == g.totalGems {
				g.status = StatusLevelComplete
			} else {
				// Reaching the exit without full collection is a loss.
				g.status = StatusGameOver
			}
		}
	case VariantSurvival:
		// Depletion is evaluated before timer expiry within the tick.
		if g.gemsRemaining() == 0 && len(g.items) > 0 {
			g.status = StatusLevelComplete
			return
		}
		if g.timeLeft <= 0 {
			g.status = StatusTimeUp
		}
	}
}

// gemsRemaining counts gems still in the active set.
func (g *Game) gemsRemaining() int {
	n := 0
	for _, it := range g.items {
		if it.Kind == KindGem {
			n++
		}
	}
	return n
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Health: g.health,
		Level:  g.level,
		Over:   g.status.Final(),
		Won:    g.status == StatusGameWon,
	}
}
