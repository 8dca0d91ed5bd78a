package bricks

import (
	"fmt"

	"github.com/dkarpov/arcadium/internal/core"
	"github.com/dkarpov/arcadium/internal/engine"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
)

// Brick glyphs by row (cycling through)
var BrickGlyphs = []rune{'█', '▓', '▒', '░', '#', '+'}

// Brick colors by row (cycling through)
var BrickColors = []core.Color{
	core.ColorRed, core.ColorYellow, core.ColorGreen, core.ColorCyan, core.ColorMagenta,
}

// Hard brick glyph
const HardBrickGlyph = '▓'

// Power-up glyphs by type
var powerGlyphs = map[int]rune{
	PowerWide: 'W',
	PowerSlow: 'S',
	PowerLife: 'L',
}

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
	g.renderEntities(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, and wave indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.eng.Session()

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", s.Lives))

	waveText := fmt.Sprintf("Wave: %d", s.Level)
	dst.DrawText(dst.Width()-len(waveText)-1, 0, waveText)

	if s.Streak > 1 {
		dst.DrawTextColored(1, 1, fmt.Sprintf("Streak x%d", s.Streak), core.ColorYellow)
	}
	g.renderEffects(dst)
}

// renderEffects shows the running power-up countdowns.
func (g *Game) renderEffects(dst *core.Screen) {
	timers := g.eng.Timers()
	text := ""
	for _, eff := range []engine.Effect{"wide", "slow"} {
		if r := timers.Remaining(eff, engine.GlobalOwner); r > 0 {
			if text != "" {
				text += " "
			}
			text += fmt.Sprintf("%s(%d)", eff, r/60+1)
		}
	}
	if text != "" {
		dst.DrawText(dst.Width()-len(text)-1, 1, text)
	}
}

// renderEntities draws every live entity by kind.
func (g *Game) renderEntities(dst *core.Screen) {
	g.eng.Store().ForEach(func(ent *engine.Entity) {
		x, y := int(ent.Pos.X), int(ent.Pos.Y)

		switch ent.Kind {
		case engine.KindObstacle:
			glyph := BrickGlyphs[ent.Tag%len(BrickGlyphs)]
			if ent.Hits > 1 {
				glyph = HardBrickGlyph
			}
			color := BrickColors[ent.Tag%len(BrickColors)]
			halfW := int(g.cfg.Layout.BrickW / 2)
			for dx := -halfW; dx <= halfW; dx++ {
				dst.SetColored(x+dx, y, glyph, color)
			}

		case engine.KindPlayer:
			halfW := int(g.paddleHalfWidth())
			for dx := -halfW; dx <= halfW; dx++ {
				dst.SetColored(x+dx, y, PaddleChar, core.ColorWhite)
			}

		case engine.KindProjectile:
			dst.SetColored(x, y, BallChar, core.ColorBrightWhite)

		case engine.KindCollectible:
			if glyph, ok := powerGlyphs[ent.Tag]; ok {
				dst.SetColored(x, y, glyph, core.ColorBrightCyan)
			}
		}
	})
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	s := g.eng.Session()

	switch s.State {
	case engine.StatePlaying:
		if g.serving {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
		}

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
