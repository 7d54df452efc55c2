package dodge

import (
	"fmt"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/weather"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	RainChar   = '│'
	CloudChar  = '▓'
	SunChar    = '●'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.mode {
	case core.ModeMenu:
		g.renderMenu(dst)
	case core.ModePlaying:
		g.renderPlayfield(dst)
		g.renderHUD(dst)
	case core.ModeGameOver:
		g.renderPlayfield(dst)
		g.renderHUD(dst)
		g.drawCenteredMessage(dst,
			"GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d", int(g.score), g.best),
			"R to restart, Esc for menu")
	}
}

// renderMenu draws the title screen.
func (g *Game) renderMenu(dst *core.Screen) {
	h := dst.Height()

	dst.DrawTextCentered(h/4, "DODGE THE WEATHER")
	dst.DrawTextCentered(h/4+2, "Move with WASD or Arrow Keys")
	dst.DrawTextCentered(h/4+3, "Avoid the falling obstacles")
	dst.DrawTextCentered(h/4+5, "Press SPACE to start")

	dst.DrawTextColored(2, 0, fmt.Sprintf("Best: %d", g.best), core.ColorGray)
}

// renderPlayfield scales the world to the terminal and draws the player and
// every obstacle. Obstacle glyph and color follow the kind the slot was
// spawned with, not the current weather signal.
func (g *Game) renderPlayfield(dst *core.Screen) {
	for _, o := range g.field.Obstacles() {
		r, c := glyphFor(o.Kind)
		dst.DrawRect(g.worldToCells(dst, o.Rect), r, c)
	}
	dst.DrawRect(g.worldToCells(dst, g.player.Rect), PlayerChar, core.ColorGreen)
}

// renderHUD draws score and the weather label on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", int(g.score)), core.ColorBrightWhite)

	label := fmt.Sprintf(" Weather: %s ", weather.Current())
	dst.DrawTextColored(dst.Width()-len(label)-2, 0, label, core.ColorGray)
}

// worldToCells maps a world-pixel box to terminal cells. Anything visible
// occupies at least one cell so thin rain drops do not vanish.
func (g *Game) worldToCells(dst *core.Screen, r core.RectF) core.Rect {
	sx := float64(dst.Width()) / g.cfg.World.Width
	sy := float64(dst.Height()) / g.cfg.World.Height

	x := int(r.X * sx)
	y := int(r.Y * sy)
	w := core.Max(1, int(r.W*sx+0.5))
	h := core.Max(1, int(r.H*sy+0.5))

	// Off-screen boxes (above the world) keep a negative y; Screen clips.
	return core.NewRect(x, y, w, h)
}

// glyphFor maps an obstacle kind to its glyph and color.
func glyphFor(k weather.Kind) (rune, core.Color) {
	switch k {
	case weather.Precipitation:
		return RainChar, core.ColorBrightBlue
	case weather.Overcast:
		return CloudChar, core.ColorWhite
	default:
		return SunChar, core.ColorBrightYellow
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len(title)
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len(l))/2, boxY+2+i, l)
	}
}
