package drift

import (
	"fmt"
	"math"

	"github.com/dkarpov/arcadium/internal/core"
	"github.com/dkarpov/arcadium/internal/engine"
)

const (
	BarrierChar = '█'
	GateChar    = '◎'
)

// carGlyphs maps the car heading to an eight-way arrow.
var carGlyphs = []rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// carGlyph picks the arrow closest to the heading. Heading zero points up
// and grows clockwise.
func carGlyph(angle float64) rune {
	sector := int(math.Round(angle/(math.Pi/4))) % 8
	if sector < 0 {
		sector += 8
	}
	return carGlyphs[sector]
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := fmt.Sprintf("Screen too small: need %dx%d", g.minScreenW, g.minScreenH)
		hint := "Resize your terminal"
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderEntities(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, streak, boost, and the remaining time.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.eng.Session()

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.Score))

	if s.Streak > 1 {
		dst.DrawTextCentered(0, fmt.Sprintf("Streak x%d", s.Streak))
	}

	if g.cfg.Gameplay.TimeLimit > 0 {
		left := g.cfg.Gameplay.TimeLimit - int(s.Ticks)
		if left < 0 {
			left = 0
		}
		text := fmt.Sprintf("Time: %ds", left/g.tickRate())
		dst.DrawText(dst.Width()-len(text)-1, 0, text)
	}

	if rem := g.eng.Timers().Remaining(EffectBoost, g.car); rem > 0 {
		dst.DrawTextColored(1, 1, fmt.Sprintf("BOOST %.1fs", float64(rem)/float64(g.tickRate())),
			core.ColorBrightCyan)
	}
}

func (g *Game) renderEntities(dst *core.Screen) {
	boosted := g.eng.Timers().Active(EffectBoost, g.car)
	barrier := g.eng.Kind(engine.KindObstacle).Shape

	g.eng.Store().ForEach(func(ent *engine.Entity) {
		x := int(ent.Pos.X)
		y := int(ent.Pos.Y)

		switch ent.Kind {
		case engine.KindPlayer:
			color := core.ColorBrightYellow
			if boosted {
				color = core.ColorBrightCyan
			}
			dst.SetColored(x, y, carGlyph(ent.Angle), color)

		case engine.KindObstacle:
			hw := int(barrier.W / 2)
			hh := int(barrier.H / 2)
			for dy := -hh; dy <= hh; dy++ {
				for dx := -hw; dx <= hw; dx++ {
					dst.SetColored(x+dx, y+dy, BarrierChar, core.ColorGray)
				}
			}

		case engine.KindCollectible:
			color := core.ColorBrightGreen
			// Flash a gate about to despawn.
			if ent.Lifetime > 0 && ent.Lifetime < 60 && (ent.Lifetime/6)%2 == 0 {
				color = core.ColorWhite
			}
			dst.SetColored(x, y, GateChar, color)
		}
	})
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.eng.Session().State {
	case engine.StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case engine.StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.eng.Session().Score)
		drawCenteredBox(dst, "RUN COMPLETE", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// tickRate returns the runtime tick rate with the default fallback.
func (g *Game) tickRate() int {
	if g.runtime.TickRate <= 0 {
		return 60
	}
	return g.runtime.TickRate
}
