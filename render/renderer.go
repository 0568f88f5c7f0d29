package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pellet-run/core"
	"github.com/lixenwraith/pellet-run/engine"
	"github.com/lixenwraith/pellet-run/maze"
)

// Cell glyphs
const (
	glyphWall       = '█'
	glyphDot        = '·'
	glyphPellet     = '●'
	glyphBonus      = '◆'
	glyphTeleporter = '◊'
	glyphSafeZone   = '░'
	glyphPlayer     = '@'
	glyphAdversary  = 'M'
	glyphScared     = 'm'
)

const hudHeight = 2

// Renderer draws the whole frame onto a tcell screen. The maze is
// centered; the HUD occupies the top rows.
type Renderer struct {
	screen tcell.Screen

	pelletPulse *pulse
	scaredPulse *pulse

	showDiag bool
}

// NewRenderer creates a renderer over an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:      screen,
		pelletPulse: newPulse(0.45, 1.0, 0.5),
		scaredPulse: newPulse(0.3, 1.0, 0.35),
	}
}

// ToggleDiagnostics flips the pathfinder cache readout
func (r *Renderer) ToggleDiagnostics() {
	r.showDiag = !r.showDiag
}

// RenderFrame draws one frame; dt is real time since the previous frame
// and drives the glow animations
func (r *Renderer) RenderFrame(w *engine.World, dt time.Duration) {
	r.screen.Clear()

	pelletGlow := r.pelletPulse.Update(float32(dt.Seconds()))
	scaredGlow := r.scaredPulse.Update(float32(dt.Seconds()))

	sw, sh := r.screen.Size()
	g := w.Grid()
	offX := (sw - g.Width) / 2
	offY := hudHeight + (sh-hudHeight-g.Height)/2
	if offX < 0 {
		offX = 0
	}
	if offY < hudHeight {
		offY = hudHeight
	}

	state := w.State()
	r.drawGrid(g, state.Level, offX, offY, pelletGlow)
	r.drawAdversaries(w, offX, offY, scaredGlow)
	r.drawPlayer(w, offX, offY)
	r.drawHUD(w)

	switch state.Phase {
	case engine.PhasePaused:
		r.drawPauseOverlay(sw, sh)
	case engine.PhaseUpgrading:
		r.drawUpgradeOverlay(w, sw, sh)
	case engine.PhaseGameOver:
		r.drawGameOverOverlay(w, sw, sh)
	}

	if r.showDiag {
		r.drawDiagnostics(w, sh)
	}

	r.screen.Show()
}

func (r *Renderer) drawGrid(g *maze.Grid, level int, offX, offY int, pelletGlow float32) {
	base := tcell.StyleDefault.Background(RgbBackground)
	wallStyle := base.Foreground(WallColor(maze.ThemeFor(level)))
	pelletStyle := base.Foreground(scaleColor(RgbPellet, pelletGlow))

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := core.Point{X: x, Y: y}
			var ch rune
			style := base
			switch g.At(p) {
			case maze.Wall:
				ch, style = glyphWall, wallStyle
			case maze.Dot:
				ch, style = glyphDot, base.Foreground(RgbDot)
			case maze.PowerPellet:
				ch, style = glyphPellet, pelletStyle
			case maze.BonusDot:
				ch, style = glyphBonus, base.Foreground(RgbBonus)
			case maze.Teleporter:
				ch, style = glyphTeleporter, base.Foreground(RgbTeleporter)
			case maze.SafeZone:
				ch, style = glyphSafeZone, base.Foreground(RgbSafeZone)
			default:
				ch = ' '
			}
			r.screen.SetContent(offX+x, offY+y, ch, nil, style)
		}
	}
}

func (r *Renderer) drawAdversaries(w *engine.World, offX, offY int, scaredGlow float32) {
	base := tcell.StyleDefault.Background(RgbBackground)
	for _, adv := range w.Adversaries() {
		ch := glyphAdversary
		style := base.Foreground(KindColor(adv.Kind))
		if adv.Scared {
			ch = glyphScared
			style = base.Foreground(scaleColor(RgbScared, scaredGlow))
		}
		r.screen.SetContent(offX+adv.Pos.X, offY+adv.Pos.Y, ch, nil, style)
	}
}

func (r *Renderer) drawPlayer(w *engine.World, offX, offY int) {
	color := RgbPlayer
	if w.State().Boosted {
		color = RgbBoosted
	}
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(color).Bold(true)
	p := w.Player().Pos
	r.screen.SetContent(offX+p.X, offY+p.Y, glyphPlayer, nil, style)
}

func (r *Renderer) drawHUD(w *engine.World) {
	s := w.State()
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbHUD)
	dim := style.Foreground(RgbHUDDim)

	line := fmt.Sprintf(" SCORE %-8d  x%d  LVL %-3d  LIVES %d", s.Score, s.Multiplier, s.Level, s.Lives)
	r.drawText(0, 0, line, style)

	status := fmt.Sprintf(" DOTS %d/%d", s.DotsCollected, s.TotalDots)
	if s.Combo > 1 {
		status += fmt.Sprintf("  COMBO x%d", s.Combo)
	}
	if s.Boosted {
		status += "  BOOST"
	}
	if s.PowerTicks > 0 {
		status += "  POWER"
	}
	r.drawText(0, 1, status, dim)
}

func (r *Renderer) drawDiagnostics(w *engine.World, sh int) {
	hits, misses := w.CacheStats()
	total := hits + misses
	ratio := 0.0
	if total > 0 {
		ratio = float64(hits) / float64(total)
	}
	line := fmt.Sprintf(" path cache: %d hits / %d misses (%.0f%%)", hits, misses, ratio*100)
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbHUDDim)
	r.drawText(0, sh-1, line, style)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// scaleColor dims a color toward black by factor 0..1
func scaleColor(c tcell.Color, factor float32) tcell.Color {
	if factor > 1 {
		factor = 1
	}
	if factor < 0 {
		factor = 0
	}
	cr, cg, cb := c.RGB()
	return tcell.NewRGBColor(
		int32(float32(cr)*factor),
		int32(float32(cg)*factor),
		int32(float32(cb)*factor),
	)
}
