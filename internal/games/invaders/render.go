package invaders

import (
	"fmt"

	"github.com/dkarpov/arcadium/internal/core"
	"github.com/dkarpov/arcadium/internal/engine"
)

// Visual characters for rendering
const (
	ShipChar     = '▲'
	BulletChar   = '|'
	InvaderChar  = '▼'
	ShieldChar   = '◊'
	ParticleChar = '·'
	BaselineChar = '─'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)

	// Baseline the invaders must not cross.
	dst.DrawHLine(0, int(g.baselineY)+1, dst.Width(), BaselineChar)

	g.renderEntities(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, lives, wave, and the shield countdown.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.eng.Session()

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", s.Lives))

	waveText := fmt.Sprintf("Wave: %d", s.Level)
	dst.DrawText(dst.Width()-len(waveText)-1, 0, waveText)

	if s.Streak > 1 {
		dst.DrawTextColored(1, 1, fmt.Sprintf("Streak x%d", s.Streak), core.ColorYellow)
	}
	if r := g.eng.Timers().Remaining(EffectShield, g.ship); r > 0 {
		text := fmt.Sprintf("shield(%d)", r/60+1)
		dst.DrawTextColored(dst.Width()-len(text)-1, 1, text, core.ColorBrightCyan)
	}
}

// renderEntities draws every live entity by kind.
func (g *Game) renderEntities(dst *core.Screen) {
	shielded := g.eng.Timers().Active(EffectShield, g.ship)

	g.eng.Store().ForEach(func(ent *engine.Entity) {
		x, y := int(ent.Pos.X), int(ent.Pos.Y)

		switch ent.Kind {
		case engine.KindPlayer:
			color := core.ColorBrightGreen
			if shielded {
				color = core.ColorBrightCyan
			}
			dst.SetColored(x-1, y, '/', color)
			dst.SetColored(x, y, ShipChar, color)
			dst.SetColored(x+1, y, '\\', color)

		case engine.KindProjectile:
			dst.SetColored(x, y, BulletChar, core.ColorBrightYellow)

		case engine.KindNPC:
			dst.SetColored(x-1, y, '<', core.ColorRed)
			dst.SetColored(x, y, InvaderChar, core.ColorRed)
			dst.SetColored(x+1, y, '>', core.ColorRed)

		case engine.KindCollectible:
			dst.SetColored(x, y, ShieldChar, core.ColorBrightCyan)

		case engine.KindParticle:
			dst.SetColored(x, y, ParticleChar, core.ColorGray)
		}
	})
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	s := g.eng.Session()

	switch s.State {
	case engine.StateLevelComplete:
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Wave %d cleared!", s.Level))

	case engine.StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case engine.StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", s.Score)
		drawCenteredBox(dst, "GAME OVER", subtitle)
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
