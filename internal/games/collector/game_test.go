package collector

import (
	"reflect"
	"testing"

	"github.com/gemdash/gemdash/internal/config"
	"github.com/gemdash/gemdash/internal/core"
	"github.com/gemdash/gemdash/internal/registry"
)

// stubGenerator hands out a fixed layout, letting tests control every
// wall and item position exactly.
type stubGenerator struct {
	layout Layout
	count  int
}

func (s *stubGenerator) Generate(level int) *Layout {
	lay := s.layout
	lay.Walls = append([]core.Box(nil), s.layout.Walls...)
	lay.Items = append([]Item(nil), s.layout.Items...)
	return &lay
}

func (s *stubGenerator) LevelCount() int {
	return s.count
}

func newTestGame(v Variant, gen Generator, tuning config.GameConfig) *Game {
	return &Game{
		variant: v,
		tuning:  tuning,
		gen:     gen,
		status:  StatusMenu,
	}
}

func openArena(start core.Vec) *stubGenerator {
	return &stubGenerator{layout: Layout{Start: start}}
}

func TestStartResetsSession(t *testing.T) {
	g := newTestGame(VariantMaze, openArena(core.Vec{X: 100, Y: 100}), config.DefaultGameConfig())

	g.score = 999
	g.health = 1
	g.level = 7

	g.Start()

	if g.score != 0 || g.health != 100 || g.level != 1 {
		t.Errorf("Start: score=%d health=%d level=%d, expected 0/100/1",
			g.score, g.health, g.level)
	}
	if g.status != StatusPlaying {
		t.Errorf("Start: status = %v, expected playing", g.status)
	}
}

func TestStepIsNoOpOutsidePlaying(t *testing.T) {
	g := newTestGame(VariantMaze, openArena(core.Vec{X: 100, Y: 100}), config.DefaultGameConfig())
	g.Start()
	g.status = StatusGameOver
	before := g.char

	g.KeyDown("right")
	g.Step()

	if g.char != before {
		t.Error("Step should not move the character when not playing")
	}
}

func TestMovement(t *testing.T) {
	cfg := config.DefaultGameConfig()
	speed := cfg.Character.Speed

	tests := []struct {
		name string
		keys []string
		want core.Vec
	}{
		{"right", []string{"right"}, core.Vec{X: 100 + speed, Y: 100}},
		{"left", []string{"left"}, core.Vec{X: 100 - speed, Y: 100}},
		{"up", []string{"up"}, core.Vec{X: 100, Y: 100 - speed}},
		{"down", []string{"down"}, core.Vec{X: 100, Y: 100 + speed}},
		{"diagonal", []string{"right", "down"}, core.Vec{X: 100 + speed, Y: 100 + speed}},
		{"opposing keys cancel out", []string{"left", "right"}, core.Vec{X: 100, Y: 100}},
		{"no keys", nil, core.Vec{X: 100, Y: 100}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(VariantMaze, openArena(core.Vec{X: 100, Y: 100}), cfg)
			g.Start()
			for _, k := range tc.keys {
				g.KeyDown(k)
			}

			g.Step()

			if g.char.X != tc.want.X || g.char.Y != tc.want.Y {
				t.Errorf("char at (%v, %v), expected (%v, %v)",
					g.char.X, g.char.Y, tc.want.X, tc.want.Y)
			}
		})
	}
}

func TestMovementClampedToArena(t *testing.T) {
	cfg := config.DefaultGameConfig()
	g := newTestGame(VariantMaze, openArena(core.Vec{X: 1, Y: 1}), cfg)
	g.Start()

	g.KeyDown("left")
	g.KeyDown("up")
	g.Step()

	if g.char.X != 0 || g.char.Y != 0 {
		t.Errorf("char at (%v, %v), expected clamped to (0, 0)", g.char.X, g.char.Y)
	}
}

func TestWallBlocksMovement(t *testing.T) {
	cfg := config.DefaultGameConfig()
	gen := &stubGenerator{layout: Layout{
		Start: core.Vec{X: 100, Y: 100},
		// Wall flush against the character's right edge.
		Walls: []core.Box{core.NewBox(130, 0, 20, 600)},
	}}
	g := newTestGame(VariantMaze, gen, cfg)
	g.Start()

	g.KeyDown("right")
	g.Step()

	if g.char.X != 100 {
		t.Errorf("char.X = %v, expected blocked at 100", g.char.X)
	}
}

func TestWallSlideAlongBlockedAxis(t *testing.T) {
	cfg := config.DefaultGameConfig()
	gen := &stubGenerator{layout: Layout{
		Start: core.Vec{X: 100, Y: 100},
		Walls: []core.Box{core.NewBox(130, 0, 20, 600)},
	}}
	g := newTestGame(VariantMaze, gen, cfg)
	g.Start()

	// X axis is blocked, Y axis is free: the character slides down.
	g.KeyDown("right")
	g.KeyDown("down")
	g.Step()

	if g.char.X != 100 {
		t.Errorf("char.X = %v, expected blocked at 100", g.char.X)
	}
	if g.char.Y != 100+cfg.Character.Speed {
		t.Errorf("char.Y = %v, expected sliding to %v", g.char.Y, 100+cfg.Character.Speed)
	}
}

func TestGemPickup(t *testing.T) {
	cfg := config.DefaultGameConfig()
	gen := &stubGenerator{layout: Layout{
		Start: core.Vec{X: 100, Y: 100},
		Items: []Item{{
			ID: 0, Kind: KindGem, Tag: "gem", Points: 25,
			Box: core.NewBox(105, 105, 20, 20),
		}},
		TotalGems: 1,
	}}
	g := newTestGame(VariantMaze, gen, cfg)
	g.Start()
	g.health = 50

	g.Step()

	if g.score != 25 {
		t.Errorf("score = %d, expected 25", g.score)
	}
	if g.health != 50+cfg.Items.Heal {
		t.Errorf("health = %d, expected %d", g.health, 50+cfg.Items.Heal)
	}
	if g.collected != 1 {
		t.Errorf("collected = %d, expected 1", g.collected)
	}
	if len(g.items) != 0 {
		t.Errorf("%d items remain, expected the gem removed", len(g.items))
	}
}

func TestPickupTriggersOnce(t *testing.T) {
	cfg := config.DefaultGameConfig()
	gen := &stubGenerator{layout: Layout{
		Start: core.Vec{X: 100, Y: 100},
		Items: []Item{{
			ID: 0, Kind: KindGem, Tag: "coin", Points: 10,
			Box: core.NewBox(105, 105, 20, 20),
		}},
		TotalGems: 1,
	}}
	g := newTestGame(VariantMaze, gen, cfg)
	g.Start()

	g.Step()
	g.Step()

	if g.score != 10 {
		t.Errorf("score = %d after two ticks on the same spot, expected 10", g.score)
	}
}

func TestHealthCapsAtHundred(t *testing.T) {
	cfg := config.DefaultGameConfig()
	gen := &stubGenerator{layout: Layout{
		Start: core.Vec{X: 100, Y: 100},
		Items: []Item{{
			ID: 0, Kind: KindGem, Tag: "heart", Points: 15,
			Box: core.NewBox(105, 105, 20, 20),
		}},
		TotalGems: 1,
	}}
	g := newTestGame(VariantMaze, gen, cfg)
	g.Start()
	g.health = 95

	g.Step()

	if g.health != 100 {
		t.Errorf("health = %d, expected capped at 100", g.health)
	}
}

func TestHazardFloorsHealthAndEndsGame(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Items.Damage = 15
	gen := &stubGenerator{layout: Layout{
		Start: core.Vec{X: 100, Y: 100},
		Items: []Item{{
			ID: 0, Kind: KindHazard, Tag: "spike", Points: -10,
			Box: core.NewBox(105, 105, 20, 20),
		}},
	}}
	g := newTestGame(VariantMaze, gen, cfg)
	g.Start()
	g.health = 10

	// Damage 15 against health 10: floored at 0, game over the same tick.
	g.Step()

	if g.health != 0 {
		t.Errorf("health = %d, expected floored at 0", g.health)
	}
	if g.status != StatusGameOver {
		t.Errorf("status = %v, expected game over on the pickup tick", g.status)
	}
}

func TestScoreCanGoNegative(t *testing.T) {
	cfg := config.DefaultGameConfig()
	gen := &stubGenerator{layout: Layout{
		Start: core.Vec{X: 100, Y: 100},
		Items: []Item{{
			ID: 0, Kind: KindHazard, Tag: "skull", Points: -25,
			Box: core.NewBox(105, 105, 20, 20),
		}},
	}}
	g := newTestGame(VariantMaze, gen, cfg)
	g.Start()

	g.Step()

	if g.score != -25 {
		t.Errorf("score = %d, expected -25", g.score)
	}
}

func TestMazeExitCompletesLevelWhenAllGemsCollected(t *testing.T) {
	cfg := config.DefaultGameConfig()
	// Spawn just left of the exit threshold.
	gen := &stubGenerator{layout: Layout{Start: core.Vec{X: 758, Y: 100}}, count: 3}
	g := newTestGame(VariantMaze, gen, cfg)
	g.Start()

	g.KeyDown("right")
	g.Step()

	if g.status != StatusLevelComplete {
		t.Errorf("status = %v, expected level complete at the exit", g.status)
	}
}

func TestMazeExitWithoutFullCollectionIsLoss(t *testing.T) {
	cfg := config.DefaultGameConfig()
	gen := &stubGenerator{layout: Layout{
		Start: core.Vec{X: 758, Y: 100},
		Items: []Item{{
			ID: 0, Kind: KindGem, Tag: "gem", Points: 25,
			Box: core.NewBox(50, 50, 20, 20),
		}},
		TotalGems: 1,
	}, count: 3}
	g := newTestGame(VariantMaze, gen, cfg)
	g.Start()

	g.KeyDown("right")
	g.Step()

	if g.status != StatusGameOver {
		t.Errorf("status = %v, expected game over when gems remain", g.status)
	}
}

func TestNextLevelPreservesScoreAndHealth(t *testing.T) {
	cfg := config.DefaultGameConfig()
	gen := &stubGenerator{layout: Layout{Start: core.Vec{X: 100, Y: 100}}, count: 3}
	g := newTestGame(VariantMaze, gen, cfg)
	g.Start()
	g.score = 85
	g.health = 70
	g.status = StatusLevelComplete

	g.NextLevel()

	if g.level != 2 {
		t.Errorf("level = %d, expected 2", g.level)
	}
	if g.score != 85 || g.health != 70 {
		t.Errorf("score=%d health=%d, expected 85/70 preserved", g.score, g.health)
	}
	if g.status != StatusPlaying {
		t.Errorf("status = %v, expected playing", g.status)
	}
}

func TestNextLevelIgnoredUnlessLevelComplete(t *testing.T) {
	cfg := config.DefaultGameConfig()
	gen := &stubGenerator{layout: Layout{Start: core.Vec{X: 100, Y: 100}}, count: 3}
	g := newTestGame(VariantMaze, gen, cfg)
	g.Start()

	g.NextLevel()

	if g.level != 1 || g.status != StatusPlaying {
		t.Errorf("level=%d status=%v, expected NextLevel to be a no-op", g.level, g.status)
	}
}

func TestMazePastLastLevelWinsGame(t *testing.T) {
	cfg := config.DefaultGameConfig()
	gen := &stubGenerator{layout: Layout{Start: core.Vec{X: 100, Y: 100}}, count: 2}
	g := newTestGame(VariantMaze, gen, cfg)
	g.Start()
	g.level = 2
	g.status = StatusLevelComplete

	g.NextLevel()

	if g.status != StatusGameWon {
		t.Errorf("status = %v, expected game won past the last level", g.status)
	}
	if !g.State().Won {
		t.Error("State().Won should be true")
	}
}

func TestSurvivalAdvancesForever(t *testing.T) {
	cfg := config.DefaultGameConfig()
	g := newTestGame(VariantSurvival, NewRandomizedGenerator(7, cfg), cfg)
	g.Start()
	g.level = 30
	g.status = StatusLevelComplete

	g.NextLevel()

	if g.status != StatusPlaying || g.level != 31 {
		t.Errorf("level=%d status=%v, expected survival to keep going", g.level, g.status)
	}
}

func TestSurvivalDepletionBeatsTimer(t *testing.T) {
	cfg := config.DefaultGameConfig()
	gen := &stubGenerator{layout: Layout{
		Start: core.Vec{X: 100, Y: 100},
		Items: []Item{{
			ID: 0, Kind: KindHazard, Tag: "fire", Points: -15,
			Box: core.NewBox(700, 500, 20, 20),
		}},
	}}
	g := newTestGame(VariantSurvival, gen, cfg)
	g.Start()
	g.timeLeft = 0

	// No gems remain but hazards do, and the clock just hit zero: the
	// depletion check runs first, so this is a win.
	g.Step()

	if g.status != StatusLevelComplete {
		t.Errorf("status = %v, expected level complete to beat time up", g.status)
	}
}

func TestSurvivalTimeUp(t *testing.T) {
	cfg := config.DefaultGameConfig()
	gen := &stubGenerator{layout: Layout{
		Start: core.Vec{X: 100, Y: 100},
		Items: []Item{{
			ID: 0, Kind: KindGem, Tag: "gem", Points: 25,
			Box: core.NewBox(700, 500, 20, 20),
		}},
		TotalGems: 1,
	}}
	g := newTestGame(VariantSurvival, gen, cfg)
	g.Start()
	g.timeLeft = 0

	g.Step()

	if g.status != StatusTimeUp {
		t.Errorf("status = %v, expected time up with gems remaining", g.status)
	}
}

func TestTickSecondCountsDownOnlyWhilePlaying(t *testing.T) {
	cfg := config.DefaultGameConfig()
	g := newTestGame(VariantSurvival, openArena(core.Vec{X: 100, Y: 100}), cfg)
	g.Start()
	g.timeLeft = 5

	g.TickSecond()
	if g.timeLeft != 4 {
		t.Errorf("timeLeft = %d, expected 4", g.timeLeft)
	}

	g.status = StatusTimeUp
	g.TickSecond()
	if g.timeLeft != 4 {
		t.Error("TickSecond should not count down outside playing")
	}
}

func TestTickSecondIgnoredInMaze(t *testing.T) {
	cfg := config.DefaultGameConfig()
	g := newTestGame(VariantMaze, openArena(core.Vec{X: 100, Y: 100}), cfg)
	g.Start()
	before := g.timeLeft

	g.TickSecond()

	if g.timeLeft != before {
		t.Error("maze variant has no countdown")
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	cfg := config.DefaultGameConfig()
	g := newTestGame(VariantMaze, openArena(core.Vec{X: 100, Y: 100}), cfg)
	g.Start()

	g.KeyDown("x")
	g.KeyDown("enter")
	g.Step()

	if g.char.X != 100 || g.char.Y != 100 {
		t.Error("unmapped keys should not move the character")
	}
}

func TestKeyUpStopsMovement(t *testing.T) {
	cfg := config.DefaultGameConfig()
	g := newTestGame(VariantMaze, openArena(core.Vec{X: 100, Y: 100}), cfg)
	g.Start()

	g.KeyDown("right")
	g.Step()
	g.KeyUp("right")
	g.Step()

	if g.char.X != 100+cfg.Character.Speed {
		t.Errorf("char.X = %v, expected movement to stop after release", g.char.X)
	}
}

func TestSurvivalLockstepDeterminism(t *testing.T) {
	cfg := config.DefaultGameConfig()

	run := func() Snapshot {
		g := newTestGame(VariantSurvival, NewRandomizedGenerator(42, cfg), cfg)
		g.Start()
		g.KeyDown("right")
		for i := 0; i < 20; i++ {
			g.Step()
		}
		g.KeyUp("right")
		g.KeyDown("down")
		for i := 0; i < 20; i++ {
			g.Step()
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("identical seed and inputs should produce identical state")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	cfg := config.DefaultGameConfig()
	gen := &stubGenerator{layout: Layout{
		Start: core.Vec{X: 100, Y: 100},
		Walls: []core.Box{core.NewBox(300, 300, 80, 20)},
		Items: []Item{{
			ID: 0, Kind: KindGem, Tag: "gem", Points: 25,
			Box: core.NewBox(700, 500, 20, 20),
		}},
		TotalGems: 1,
	}}
	g := newTestGame(VariantMaze, gen, cfg)
	g.Start()

	snap := g.Snapshot()
	snap.Walls[0].X = -1
	snap.Items[0].Points = 0

	if g.walls[0].X == -1 || g.items[0].Points == 0 {
		t.Error("mutating a snapshot must not affect the game")
	}
}

func TestRegistryRegistration(t *testing.T) {
	for _, id := range []string{"maze", "survival"} {
		t.Run(id, func(t *testing.T) {
			if !registry.Exists(id) {
				t.Fatalf("game %q not registered", id)
			}
			g, err := registry.Create(id)
			if err != nil {
				t.Fatalf("Create(%q): %v", id, err)
			}
			if g.ID() != id {
				t.Errorf("ID() = %q, expected %q", g.ID(), id)
			}
			if g.Title() == "" {
				t.Error("Title() should not be empty")
			}
		})
	}
}
