package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pellet-run/engine"
)

// drawBox clears a centered region and frames it
func (r *Renderer) drawBox(sw, sh, w, h int) (x, y int) {
	x = (sw - w) / 2
	y = (sh - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	bg := tcell.StyleDefault.Background(RgbBackground)
	frame := bg.Foreground(RgbOverlayFrame)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			ch := ' '
			style := bg
			border := dy == 0 || dy == h-1 || dx == 0 || dx == w-1
			if border {
				ch = '─'
				if dx == 0 || dx == w-1 {
					ch = '│'
				}
				switch {
				case dx == 0 && dy == 0:
					ch = '┌'
				case dx == w-1 && dy == 0:
					ch = '┐'
				case dx == 0 && dy == h-1:
					ch = '└'
				case dx == w-1 && dy == h-1:
					ch = '┘'
				}
				style = frame
			}
			r.screen.SetContent(x+dx, y+dy, ch, nil, style)
		}
	}
	return x, y
}

func (r *Renderer) drawPauseOverlay(sw, sh int) {
	x, y := r.drawBox(sw, sh, 24, 5)
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbHUD).Bold(true)
	dim := style.Foreground(RgbHUDDim).Bold(false)
	r.drawText(x+9, y+1, "PAUSED", style)
	r.drawText(x+3, y+3, "p or space resumes", dim)
}

// drawUpgradeOverlay lists the catalogue with affordability; slots are
// bought with the number keys
func (r *Renderer) drawUpgradeOverlay(w *engine.World, sw, sh int) {
	catalogue := engine.Catalogue()
	height := 7 + len(catalogue)
	x, y := r.drawBox(sw, sh, 40, height)

	base := tcell.StyleDefault.Background(RgbBackground)
	title := base.Foreground(RgbHUD).Bold(true)
	body := base.Foreground(RgbHUD)
	dim := base.Foreground(RgbHUDDim)
	off := base.Foreground(RgbDisabled)

	s := w.State()
	r.drawText(x+12, y+1, "LEVEL COMPLETE", title)
	r.drawText(x+3, y+3, fmt.Sprintf("score %d", s.Score), body)

	for i, u := range catalogue {
		line := fmt.Sprintf("%d) %-18s %5d", i+1, u.Name, u.Cost)
		style := body
		if !w.CanAfford(u) {
			style = off
		}
		r.drawText(x+3, y+5+i, line, style)
	}
	r.drawText(x+3, y+height-2, "enter starts the next level", dim)
}

func (r *Renderer) drawGameOverOverlay(w *engine.World, sw, sh int) {
	x, y := r.drawBox(sw, sh, 32, 7)
	base := tcell.StyleDefault.Background(RgbBackground)
	s := w.State()
	r.drawText(x+11, y+1, "GAME OVER", base.Foreground(RgbAlert).Bold(true))
	r.drawText(x+3, y+3, fmt.Sprintf("final score %d", s.Score), base.Foreground(RgbHUD))
	r.drawText(x+3, y+4, fmt.Sprintf("reached level %d", s.Level), base.Foreground(RgbHUD))
	r.drawText(x+3, y+5, "q quits", base.Foreground(RgbHUDDim))
}
