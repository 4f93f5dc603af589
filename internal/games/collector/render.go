package collector

import (
	"fmt"

	"github.com/gemdash/gemdash/internal/core"
)

// Minimum terminal size for a playable field.
const (
	minScreenW = 40
	minScreenH = 16
)

// hudRows is the number of text rows above the playfield border.
const hudRows = 2

// Visual appearance by item tag.
var itemGlyphs = map[string]struct {
	Rune  rune
	Color core.Color
}{
	"coin":  {'\'', core.ColorBrightYellow},
	"gem":   {'◆', core.ColorBrightCyan},
	"star":  {'*', core.ColorBrightWhite},
	"heart": {'♥', core.ColorBrightGreen},
	"spike": {'^', core.ColorRed},
	"skull": {'☠', core.ColorBrightRed},
	"fire":  {'§', core.ColorOrange},
}

// Render draws the full frame: HUD, bordered playfield, entities, and
// any status overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
		return
	}

	g.drawHUD(dst)

	field := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)
	dst.DrawBox(field)
	g.drawField(dst, field)

	g.drawOverlay(dst)
}

// drawHUD writes the two score rows above the playfield.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0,
		fmt.Sprintf("SCORE: %d", g.score), core.ColorBrightWhite)
	dst.DrawTextColored(18, 0,
		fmt.Sprintf("HEALTH: %d", g.health), healthColor(g.health))
	dst.DrawTextColored(34, 0,
		fmt.Sprintf("LEVEL: %d", g.level), core.ColorBrightCyan)

	dst.DrawTextColored(1, 1,
		fmt.Sprintf("GEMS: %d/%d", g.collected, g.totalGems), core.ColorBrightYellow)
	if g.variant == VariantSurvival {
		c := core.ColorBrightGreen
		if g.timeLeft <= 10 {
			c = core.ColorBrightRed
		}
		dst.DrawTextColored(18, 1, fmt.Sprintf("TIME: %ds", g.timeLeft), c)
	}
}

// healthColor shifts from green to red as health drops.
func healthColor(health int) core.Color {
	switch {
	case health > 60:
		return core.ColorBrightGreen
	case health > 30:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightRed
	}
}

// drawField projects arena-space entities into the playfield cells.
func (g *Game) drawField(dst *core.Screen, field core.Rect) {
	inner := core.NewRect(field.X+1, field.Y+1, field.W-2, field.H-2)

	arenaW := g.tuning.Arena.Width
	arenaH := g.tuning.Arena.Height
	sx := float64(inner.W) / arenaW
	sy := float64(inner.H) / arenaH

	// Boxes shrink to at least one cell so thin walls stay visible.
	toCell := func(b core.Box) core.Rect {
		x := inner.X + int(b.X*sx)
		y := inner.Y + int(b.Y*sy)
		w := core.Max(1, int(b.W*sx))
		h := core.Max(1, int(b.H*sy))
		return core.NewRect(x, y, w, h)
	}

	if g.endZone != nil && g.variant == VariantMaze {
		r := toCell(*g.endZone)
		dst.DrawRect(r, '░', core.ColorBrightGreen)
	}

	for _, w := range g.walls {
		dst.DrawRect(toCell(w), '█', core.ColorGray)
	}

	for _, it := range g.items {
		glyph, ok := itemGlyphs[it.Tag]
		if !ok {
			glyph.Rune, glyph.Color = '?', core.ColorWhite
		}
		c := it.Box.Center()
		dst.SetCell(inner.X+int(c.X*sx), inner.Y+int(c.Y*sy), glyph.Rune, glyph.Color)
	}

	ch := toCell(g.char)
	dst.DrawRect(ch, '@', core.ColorBrightYellow)
}

// drawOverlay renders the status banner over the playfield.
func (g *Game) drawOverlay(dst *core.Screen) {
	switch g.status {
	case StatusMenu:
		g.overlay(dst,
			g.Title(),
			"Arrows/WASD to move",
			menuGoal(g.variant),
			"Press ENTER to start")
	case StatusLevelComplete:
		g.overlay(dst,
			"LEVEL COMPLETE",
			fmt.Sprintf("Score: %d", g.score),
			"Press ENTER for next level")
	case StatusGameOver:
		g.overlay(dst,
			"GAME OVER",
			fmt.Sprintf("Score: %d  Level: %d", g.score, g.level),
			"Press R to restart, Q to quit")
	case StatusGameWon:
		g.overlay(dst,
			"YOU WIN!",
			fmt.Sprintf("Final score: %d", g.score),
			"Press R to play again, Q to quit")
	case StatusTimeUp:
		g.overlay(dst,
			"TIME'S UP",
			fmt.Sprintf("Score: %d  Level: %d", g.score, g.level),
			"Press R to restart, Q to quit")
	}
}

func menuGoal(v Variant) string {
	if v == VariantSurvival {
		return "Clear all gems before the clock runs out"
	}
	return "Collect every gem, then reach the exit"
}

// overlay draws centered lines in a cleared band mid-screen.
func (g *Game) overlay(dst *core.Screen, lines ...string) {
	top := dst.Height()/2 - len(lines)/2 - 1

	band := core.NewRect(1, top-1, dst.Width()-2, len(lines)+2)
	dst.DrawRect(band, ' ', core.ColorDefault)

	for i, line := range lines {
		dst.DrawTextCentered(top+i, line)
	}
}
